package checklist

import (
	"errors"
	"io"

	"github.com/tkbletsc/ksp-science-checklist/internal/refdata"
	"github.com/tkbletsc/ksp-science-checklist/internal/science"
	"go.uber.org/zap"
)

var ErrSpanMisaligned = errors.New("spanning cell outside its anchor row")

type CellKind string

const (
	CellMergedDisallowed CellKind = "merged-disallowed"
	CellMergedValue      CellKind = "merged-value"
	CellSingleValue      CellKind = "single-value"
	CellSingleDisallowed CellKind = "single-disallowed"
	CellEmpty            CellKind = "empty"
)

type Config struct {
	DataPath      string
	OutHTMLPath   string
	OutJSONPath   string
	ChecksumsPath string
	RunLogPath    string
	Stdout        io.Writer
	Logger        *zap.Logger
}

type Cell struct {
	Kind       CellKind            `json:"kind"`
	RowSpan    int                 `json:"row_span,omitempty"`
	Display    string              `json:"display,omitempty"`
	Values     *science.Values     `json:"values,omitempty"`
	Resolution *science.Resolution `json:"resolution,omitempty"`
}

// Row is one (zone, biome) line of a body. Body and Zone are blank except on
// the first row they label.
type Row struct {
	Body        string `json:"body,omitempty"`
	BodyRowSpan int    `json:"body_row_span,omitempty"`
	IconWidth   int    `json:"icon_width,omitempty"`
	Zone        string `json:"zone,omitempty"`
	ZoneRowSpan int    `json:"zone_row_span,omitempty"`
	Biome       string `json:"biome"`
	PageBreak   bool   `json:"page_break,omitempty"`
	Cells       []Cell `json:"cells"`
}

type Table struct {
	Columns []science.Test `json:"columns"`
	Rows    []Row          `json:"rows"`
}

type Result struct {
	Input           refdata.Input `json:"input"`
	Bodies          int           `json:"bodies"`
	Rows            int           `json:"rows"`
	ValueCells      int           `json:"value_cells"`
	DisallowedCells int           `json:"disallowed_cells"`
	Artifacts       []string      `json:"artifacts,omitempty"`
}

type tableDocument struct {
	SchemaVersion string        `json:"schema_version"`
	Input         refdata.Input `json:"input"`
	Table
}
