package checklist

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tkbletsc/ksp-science-checklist/internal/refdata"
)

func TestRunWritesHTMLToStdoutByDefault(t *testing.T) {
	var out bytes.Buffer
	res, err := Run(Config{Stdout: &out})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bodies != 17 || res.Rows == 0 || res.ValueCells == 0 || res.DisallowedCells == 0 {
		t.Fatalf("unexpected summary: %+v", res)
	}
	if len(res.Artifacts) != 0 {
		t.Fatalf("stdout run should write no files, got %v", res.Artifacts)
	}
	if res.Input.Path != refdata.DefaultSource {
		t.Fatalf("unexpected input %+v", res.Input)
	}
	page := out.String()
	if !strings.HasPrefix(page, "<!DOCTYPE html>") || !strings.HasSuffix(page, "</html>\n") {
		t.Fatalf("stdout does not hold a full html document")
	}
	if got := strings.Count(page, "<tr"); got != res.Rows+1 {
		t.Fatalf("html has %d rows, want %d body rows plus the header", got, res.Rows)
	}
}

func TestRunWritesChecksumsAndRunLog(t *testing.T) {
	dir := t.TempDir()
	outHTML := filepath.Join(dir, "checklist.html")
	outJSON := filepath.Join(dir, "checklist.json")
	outChecksums := filepath.Join(dir, "checksums.sha256")
	outRunLog := filepath.Join(dir, "logs", "run.log")

	res, err := Run(Config{
		OutHTMLPath:   outHTML,
		OutJSONPath:   outJSON,
		ChecksumsPath: outChecksums,
		RunLogPath:    outRunLog,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Artifacts) != 2 {
		t.Fatalf("expected html and json artifacts, got %v", res.Artifacts)
	}

	rawChecksums, err := os.ReadFile(outChecksums)
	if err != nil {
		t.Fatalf("checksums file missing: %v", err)
	}
	sums := string(rawChecksums)
	if !strings.Contains(sums, "  checklist.html\n") || !strings.Contains(sums, "  checklist.json\n") {
		t.Fatalf("checksums do not list both artifacts: %q", sums)
	}

	rawJSON, err := os.ReadFile(outJSON)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		SchemaVersion string        `json:"schema_version"`
		Input         refdata.Input `json:"input"`
		Columns       []string      `json:"columns"`
		Rows          []struct {
			Body  string `json:"body"`
			Cells []struct {
				Kind       string `json:"kind"`
				Resolution *struct {
					Scope    string `json:"scope"`
					Override string `json:"override"`
				} `json:"resolution"`
			} `json:"cells"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(rawJSON, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.SchemaVersion != refdata.SchemaVersion || len(doc.Rows) != res.Rows {
		t.Fatalf("unexpected json document header: version=%s rows=%d", doc.SchemaVersion, len(doc.Rows))
	}
	if len(doc.Columns) != 11 || doc.Columns[0] != "Surf" || doc.Columns[10] != "Recover" {
		t.Fatalf("unexpected columns %v", doc.Columns)
	}
	first := doc.Rows[0]
	if first.Body != "Kerbol" {
		t.Fatalf("first body = %s", first.Body)
	}
	baro := first.Cells[6].Resolution
	if baro == nil || baro.Scope != "disallowed_body" || baro.Override != "no_atmosphere" {
		t.Fatalf("Kerbol pressure cell = %+v", baro)
	}

	f, err := os.Open(outRunLog)
	if err != nil {
		t.Fatalf("run log missing: %v", err)
	}
	defer f.Close()
	seen := map[string]bool{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var evt struct {
			Event string `json:"event"`
		}
		if err := json.Unmarshal(sc.Bytes(), &evt); err != nil {
			t.Fatalf("invalid run log json line: %v", err)
		}
		seen[evt.Event] = true
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	for _, e := range []string{"run.start", "run.load_data.ok", "run.layout.ok", "run.report_html.ok", "run.report_json.ok", "run.checksums.ok", "run.complete"} {
		if !seen[e] {
			t.Fatalf("run log missing %s event, saw %v", e, seen)
		}
	}
}

func TestRunStdoutChecksumsSkipped(t *testing.T) {
	dir := t.TempDir()
	outChecksums := filepath.Join(dir, "checksums.sha256")
	var out bytes.Buffer
	if _, err := Run(Config{Stdout: &out, ChecksumsPath: outChecksums}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(outChecksums); !os.IsNotExist(err) {
		t.Fatalf("checksums should not be written when no files are, stat err=%v", err)
	}
}

func TestRunRejectsInvalidData(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "refdata.yaml")
	if err := os.WriteFile(p, []byte("schema_version: \"1.0\"\nbodies: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	res, err := Run(Config{DataPath: p, Stdout: &out})
	if err == nil {
		t.Fatalf("expected error for incomplete data file")
	}
	if !strings.Contains(err.Error(), "missing required field") {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("no html should be written on a data error")
	}
	if res.Input.SHA256 == "" {
		t.Fatalf("input digest should be reported even on failure")
	}
}

func TestRunFailsWhenRunLogCannotBeOpened(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	_, err := Run(Config{Stdout: &out, RunLogPath: filepath.Join(blocker, "run.log")})
	if err == nil || !strings.Contains(err.Error(), "open run log") {
		t.Fatalf("expected run log error, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be rendered when the run log cannot be opened")
	}
}
