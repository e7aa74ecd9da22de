package science

import "fmt"

type Body struct {
	Name       string
	Biomes     []string
	Atmosphere bool
	Surface    bool
	Home       bool
	PageBreak  bool
	Size       SizeClass
}

// Zones returns the zones shown for the body. Flight zones need an
// atmosphere; the surface zone is always listed, even when it is ruled out.
func (b Body) Zones() []Zone {
	out := make([]Zone, 0, len(AllZones))
	for _, z := range AllZones {
		if z.Category() == CategoryFly && !b.Atmosphere {
			continue
		}
		out = append(out, z)
	}
	return out
}

type TestSpec struct {
	Test            Test
	BasePoints      float64
	TransmitRate    float64
	LabBonus        float64
	NeedsAtmosphere bool
	NoWater         bool
}

// Multiplier is a per-body value factor. The zero value is not applicable.
type Multiplier struct {
	Factor     float64
	Applicable bool
}

func Factor(f float64) Multiplier { return Multiplier{Factor: f, Applicable: true} }

var NotApplicable = Multiplier{}

type PermissionMatrix map[Zone]map[Test]Scope

type MultiplierTable map[string]map[ZoneCategory]Multiplier

// Catalog is the frozen reference snapshot a checklist is built from.
// Bodies and Tests are in display order.
type Catalog struct {
	Bodies      []Body
	Tests       []TestSpec
	Permissions PermissionMatrix
	Multipliers MultiplierTable
}

func (c *Catalog) Body(name string) (Body, error) {
	for _, b := range c.Bodies {
		if b.Name == name {
			return b, nil
		}
	}
	return Body{}, fmt.Errorf("%q: %w", name, ErrUnknownBody)
}

func (c *Catalog) TestSpec(t Test) (TestSpec, error) {
	for _, s := range c.Tests {
		if s.Test == t {
			return s, nil
		}
	}
	return TestSpec{}, fmt.Errorf("%s: %w", t, ErrUnknownTest)
}

func (c *Catalog) Permission(zone Zone, test Test) (Scope, error) {
	if row, ok := c.Permissions[zone]; ok {
		if s, ok := row[test]; ok {
			return s, nil
		}
	}
	return 0, fmt.Errorf("zone %s test %s: %w", zone, test, ErrMissingPermission)
}

func (c *Catalog) Multiplier(body string, cat ZoneCategory) (Multiplier, error) {
	if row, ok := c.Multipliers[body]; ok {
		if m, ok := row[cat]; ok {
			return m, nil
		}
	}
	return Multiplier{}, fmt.Errorf("body %s category %s: %w", body, cat, ErrMissingMultiplier)
}
