// Package refdata loads the science reference tables from YAML. The default
// tables are compiled into the binary; a user file with the same schema can
// replace them.
package refdata

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tkbletsc/ksp-science-checklist/internal/science"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultData []byte

const (
	DefaultSource = "embedded://default.yaml"
	SchemaVersion = "1.0"
)

// Input identifies the data a catalog was loaded from.
type Input struct {
	Path   string `json:"path"`
	SHA256 string `json:"sha256"`
}

type document struct {
	SchemaVersion string                              `yaml:"schema_version"`
	Tests         []testDoc                           `yaml:"tests"`
	Permissions   map[string]map[string]string        `yaml:"permissions"`
	Multipliers   map[string]map[string]multiplierDoc `yaml:"multipliers"`
	Bodies        []bodyDoc                           `yaml:"bodies"`
}

type testDoc struct {
	ID              string  `yaml:"id"`
	BasePoints      float64 `yaml:"base_points"`
	TransmitRate    float64 `yaml:"transmit_rate"`
	LabBonus        float64 `yaml:"lab_bonus"`
	NeedsAtmosphere bool    `yaml:"needs_atmosphere"`
	NoWater         bool    `yaml:"no_water"`
}

type bodyDoc struct {
	Name       string   `yaml:"name"`
	Biomes     []string `yaml:"biomes"`
	Atmosphere bool     `yaml:"atmosphere"`
	Surface    bool     `yaml:"surface"`
	Home       bool     `yaml:"home"`
	PageBreak  bool     `yaml:"page_break"`
	Size       string   `yaml:"size"`
}

type multiplierDoc struct {
	science.Multiplier
}

func (m *multiplierDoc) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode && strings.EqualFold(strings.TrimSpace(n.Value), "n/a") {
		m.Multiplier = science.NotApplicable
		return nil
	}
	var f float64
	if err := n.Decode(&f); err != nil {
		return fmt.Errorf("line %d: multiplier must be a number or n/a", n.Line)
	}
	m.Multiplier = science.Factor(f)
	return nil
}

// Default returns the compiled-in KSP tables.
func Default() (*science.Catalog, Input, error) {
	return Parse(DefaultSource, defaultData)
}

// Load reads path, or the compiled-in tables when path is empty.
func Load(path string) (*science.Catalog, Input, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, Input{Path: path}, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(path, b)
}

// Parse decodes and validates one reference document. Every problem found is
// reported in the returned error.
func Parse(name string, b []byte) (*science.Catalog, Input, error) {
	sum := sha256.Sum256(b)
	in := Input{Path: name, SHA256: hex.EncodeToString(sum[:])}

	var root yaml.Node
	if err := yaml.Unmarshal(b, &root); err != nil {
		return nil, in, fmt.Errorf("parse %s: %w", name, err)
	}
	var checker schemaChecker
	checker.document(&root)
	if err := checker.err(name); err != nil {
		return nil, in, err
	}
	var doc document
	if err := root.Content[0].Decode(&doc); err != nil {
		return nil, in, fmt.Errorf("decode %s: %w", name, err)
	}
	cat, errs := toCatalog(doc)
	errs = append(errs, cat.Validate()...)
	if len(errs) > 0 {
		sort.Strings(errs)
		return nil, in, fmt.Errorf("invalid reference data %s:\n- %s", name, strings.Join(errs, "\n- "))
	}
	return cat, in, nil
}

func toCatalog(doc document) (*science.Catalog, []string) {
	var errs []string
	if doc.SchemaVersion != SchemaVersion {
		errs = append(errs, fmt.Sprintf("unsupported schema_version %q", doc.SchemaVersion))
	}
	cat := &science.Catalog{
		Permissions: science.PermissionMatrix{},
		Multipliers: science.MultiplierTable{},
	}
	for _, td := range doc.Tests {
		t, err := science.ParseTest(td.ID)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		cat.Tests = append(cat.Tests, science.TestSpec{
			Test:            t,
			BasePoints:      td.BasePoints,
			TransmitRate:    td.TransmitRate,
			LabBonus:        td.LabBonus,
			NeedsAtmosphere: td.NeedsAtmosphere,
			NoWater:         td.NoWater,
		})
	}
	for zoneLabel, row := range doc.Permissions {
		zone, err := science.ParseZone(zoneLabel)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		scopes := map[science.Test]science.Scope{}
		for testLabel, scopeLabel := range row {
			t, err := science.ParseTest(testLabel)
			if err != nil {
				errs = append(errs, err.Error())
				continue
			}
			s, err := science.ParseScope(scopeLabel)
			if err != nil {
				errs = append(errs, fmt.Sprintf("permissions.%s.%s: %v", zoneLabel, testLabel, err))
				continue
			}
			scopes[t] = s
		}
		cat.Permissions[zone] = scopes
	}
	for body, row := range doc.Multipliers {
		factors := map[science.ZoneCategory]science.Multiplier{}
		for catLabel, m := range row {
			c, err := science.ParseZoneCategory(catLabel)
			if err != nil {
				errs = append(errs, err.Error())
				continue
			}
			factors[c] = m.Multiplier
		}
		cat.Multipliers[body] = factors
	}
	for _, bd := range doc.Bodies {
		size, err := science.ParseSizeClass(bd.Size)
		if err != nil {
			errs = append(errs, fmt.Sprintf("body %s: %v", bd.Name, err))
		}
		cat.Bodies = append(cat.Bodies, science.Body{
			Name:       bd.Name,
			Biomes:     append([]string{}, bd.Biomes...),
			Atmosphere: bd.Atmosphere,
			Surface:    bd.Surface,
			Home:       bd.Home,
			PageBreak:  bd.PageBreak,
			Size:       size,
		})
	}
	return cat, errs
}
