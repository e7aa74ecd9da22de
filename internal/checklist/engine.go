// Package checklist builds the science checklist table from a reference
// catalog and writes it out as HTML, with optional JSON, checksums and a run
// log alongside.
package checklist

import (
	"fmt"
	"os"
	"strings"

	"github.com/tkbletsc/ksp-science-checklist/internal/refdata"
	"github.com/tkbletsc/ksp-science-checklist/internal/report"
	"go.uber.org/zap"
)

const StdoutPath = "-"

func Run(cfg Config) (Result, error) {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if strings.TrimSpace(cfg.RunLogPath) != "" {
		audit, err := report.NewAuditLogger(cfg.RunLogPath)
		if err != nil {
			log.Warn("run.run_log.error", zap.String("path", cfg.RunLogPath), zap.Error(err))
			return Result{}, fmt.Errorf("open run log: %w", err)
		}
		defer audit.Close()
		log = audit.Tee(log)
	}
	log.Info("run.start",
		zap.String("data", firstNonEmpty(cfg.DataPath, refdata.DefaultSource)),
		zap.String("out_html", firstNonEmpty(cfg.OutHTMLPath, StdoutPath)),
		zap.String("out_json", cfg.OutJSONPath),
		zap.String("checksums", cfg.ChecksumsPath),
	)

	cat, in, err := refdata.Load(cfg.DataPath)
	if err != nil {
		log.Warn("run.load_data.error", zap.Error(err))
		return Result{Input: in}, err
	}
	log.Info("run.load_data.ok",
		zap.String("path", in.Path),
		zap.String("sha256", in.SHA256),
		zap.Int("bodies", len(cat.Bodies)),
		zap.Int("tests", len(cat.Tests)),
	)

	table, err := BuildTable(cat)
	if err != nil {
		log.Warn("run.layout.error", zap.Error(err))
		return Result{Input: in}, fmt.Errorf("layout failed: %w", err)
	}
	result := summarize(table, in, len(cat.Bodies))
	log.Info("run.layout.ok",
		zap.Int("rows", result.Rows),
		zap.Int("value_cells", result.ValueCells),
		zap.Int("disallowed_cells", result.DisallowedCells),
	)

	page := renderReportHTML(table)
	if isStdout(cfg.OutHTMLPath) {
		if _, err := cfg.Stdout.Write(page); err != nil {
			log.Warn("run.report_html.error", zap.String("path", StdoutPath), zap.Error(err))
			return result, fmt.Errorf("write html: %w", err)
		}
	} else {
		if err := report.WriteFile(cfg.OutHTMLPath, page); err != nil {
			log.Warn("run.report_html.error", zap.String("path", cfg.OutHTMLPath), zap.Error(err))
			return result, fmt.Errorf("write html: %w", err)
		}
		result.Artifacts = append(result.Artifacts, cfg.OutHTMLPath)
	}
	log.Info("run.report_html.ok", zap.String("path", firstNonEmpty(cfg.OutHTMLPath, StdoutPath)), zap.Int("bytes", len(page)))

	if strings.TrimSpace(cfg.OutJSONPath) != "" {
		doc := tableDocument{SchemaVersion: refdata.SchemaVersion, Input: in, Table: table}
		if err := report.WriteJSON(cfg.OutJSONPath, doc); err != nil {
			log.Warn("run.report_json.error", zap.String("path", cfg.OutJSONPath), zap.Error(err))
			return result, fmt.Errorf("write json: %w", err)
		}
		result.Artifacts = append(result.Artifacts, cfg.OutJSONPath)
		log.Info("run.report_json.ok", zap.String("path", cfg.OutJSONPath))
	}

	if strings.TrimSpace(cfg.ChecksumsPath) != "" {
		if len(result.Artifacts) == 0 {
			log.Warn("run.checksums.skipped", zap.String("reason", "no files written"))
		} else if err := report.WriteChecksums(cfg.ChecksumsPath, result.Artifacts); err != nil {
			log.Warn("run.checksums.error", zap.Error(err))
			return result, err
		} else {
			log.Info("run.checksums.ok", zap.String("path", cfg.ChecksumsPath), zap.Strings("artifacts", result.Artifacts))
		}
	}

	log.Info("run.complete",
		zap.Int("bodies", result.Bodies),
		zap.Int("rows", result.Rows),
		zap.Strings("artifacts", result.Artifacts),
	)
	return result, nil
}

func summarize(t Table, in refdata.Input, bodies int) Result {
	r := Result{Input: in, Bodies: bodies, Rows: len(t.Rows)}
	for _, row := range t.Rows {
		for _, c := range row.Cells {
			switch c.Kind {
			case CellMergedValue, CellSingleValue:
				r.ValueCells++
			case CellMergedDisallowed, CellSingleDisallowed:
				r.DisallowedCells++
			}
		}
	}
	return r
}

func isStdout(path string) bool {
	p := strings.TrimSpace(path)
	return p == "" || p == StdoutPath
}

func firstNonEmpty(v ...string) string {
	for _, s := range v {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}
