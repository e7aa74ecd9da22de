package science

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownLabel            = errors.New("unknown label")
	ErrUnknownBody             = errors.New("unknown body")
	ErrUnknownTest             = errors.New("test not in catalog")
	ErrMissingPermission       = errors.New("missing permission entry")
	ErrMissingMultiplier       = errors.New("missing multiplier entry")
	ErrMultiplierNotApplicable = errors.New("multiplier not applicable")
)

// WaterBiome is the one biome label with surface restrictions of its own.
const WaterBiome = "Water"

// Zone is an altitude/location band.
type Zone int

const (
	ZoneSurface Zone = iota
	ZoneFlyLow
	ZoneFlyHigh
	ZoneSpaceLow
	ZoneSpaceHigh
)

// AllZones is the fixed row order of zones within a body.
var AllZones = []Zone{ZoneSurface, ZoneFlyLow, ZoneFlyHigh, ZoneSpaceLow, ZoneSpaceHigh}

var zoneLabels = [...]string{"Surface", "FlyLow", "FlyHigh", "SpaceLow", "SpaceHigh"}

func (z Zone) String() string {
	if z < 0 || int(z) >= len(zoneLabels) {
		return fmt.Sprintf("Zone(%d)", int(z))
	}
	return zoneLabels[z]
}

func (z Zone) MarshalText() ([]byte, error) { return []byte(z.String()), nil }

func (z Zone) Category() ZoneCategory {
	switch z {
	case ZoneSurface:
		return CategorySurface
	case ZoneFlyLow, ZoneFlyHigh:
		return CategoryFly
	default:
		return CategorySpace
	}
}

func ParseZone(s string) (Zone, error) {
	for i, l := range zoneLabels {
		if l == s {
			return Zone(i), nil
		}
	}
	return 0, fmt.Errorf("zone %q: %w", s, ErrUnknownLabel)
}

// ZoneCategory groups zones for multiplier lookups.
type ZoneCategory int

const (
	CategorySurface ZoneCategory = iota
	CategoryFly
	CategorySpace
)

var AllCategories = []ZoneCategory{CategorySurface, CategoryFly, CategorySpace}

var categoryLabels = [...]string{"Surface", "Fly", "Space"}

func (c ZoneCategory) String() string {
	if c < 0 || int(c) >= len(categoryLabels) {
		return fmt.Sprintf("ZoneCategory(%d)", int(c))
	}
	return categoryLabels[c]
}

func (c ZoneCategory) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func ParseZoneCategory(s string) (ZoneCategory, error) {
	for i, l := range categoryLabels {
		if l == s {
			return ZoneCategory(i), nil
		}
	}
	return 0, fmt.Errorf("zone category %q: %w", s, ErrUnknownLabel)
}

// Test is a kind of scientific measurement.
type Test int

const (
	TestSurfaceSample Test = iota
	TestEVAReport
	TestCrewReport
	TestGoo
	TestMaterials
	TestTemperature
	TestPressure
	TestGravity
	TestSeismic
	TestNosecone
	TestRecovery
)

var AllTests = []Test{
	TestSurfaceSample, TestEVAReport, TestCrewReport, TestGoo, TestMaterials,
	TestTemperature, TestPressure, TestGravity, TestSeismic, TestNosecone, TestRecovery,
}

var testLabels = [...]string{"Surf", "EVA", "Crew", "Goo", "Matl", "Temp", "Baro", "Grav", "Seis", "Nose", "Recover"}

func (t Test) String() string {
	if t < 0 || int(t) >= len(testLabels) {
		return fmt.Sprintf("Test(%d)", int(t))
	}
	return testLabels[t]
}

func (t Test) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func ParseTest(s string) (Test, error) {
	for i, l := range testLabels {
		if l == s {
			return Test(i), nil
		}
	}
	return 0, fmt.Errorf("test %q: %w", s, ErrUnknownLabel)
}

// Scope says how widely one computed value applies, or how widely a
// measurement is ruled out.
type Scope int

const (
	ScopePerBiome Scope = iota
	ScopePerZone
	ScopeMultizonal
	ScopeDisallowedRow
	ScopeDisallowedZone
	ScopeDisallowedBody
)

// Data-file notation; the dashes match the printed checklist tables.
var scopeLabels = [...]string{"Biome", "Global", "Multizonal", "--", "-", "---"}

func (s Scope) String() string {
	if s < 0 || int(s) >= len(scopeLabels) {
		return fmt.Sprintf("Scope(%d)", int(s))
	}
	return scopeLabels[s]
}

func (s Scope) MarshalText() ([]byte, error) {
	switch s {
	case ScopePerBiome:
		return []byte("per_biome"), nil
	case ScopePerZone:
		return []byte("per_zone"), nil
	case ScopeMultizonal:
		return []byte("multizonal"), nil
	case ScopeDisallowedRow:
		return []byte("disallowed_row"), nil
	case ScopeDisallowedZone:
		return []byte("disallowed_zone"), nil
	case ScopeDisallowedBody:
		return []byte("disallowed_body"), nil
	}
	return nil, fmt.Errorf("scope %d: %w", int(s), ErrUnknownLabel)
}

func (s Scope) Disallowed() bool {
	return s == ScopeDisallowedRow || s == ScopeDisallowedZone || s == ScopeDisallowedBody
}

// width orders disallowances by how many rows they cover.
func (s Scope) width() int {
	switch s {
	case ScopeDisallowedRow:
		return 1
	case ScopeDisallowedZone:
		return 2
	case ScopeDisallowedBody:
		return 3
	}
	return 0
}

func ParseScope(s string) (Scope, error) {
	for i, l := range scopeLabels {
		if l == s {
			return Scope(i), nil
		}
	}
	return 0, fmt.Errorf("scope %q: %w", s, ErrUnknownLabel)
}

// Override names the body/biome rule that replaced the matrix scope.
type Override int

const (
	OverrideNone Override = iota
	OverrideNoSurface
	OverrideWater
	OverrideNoAtmosphere
	OverrideHomeRecovery
	OverrideNoAirspace
)

var overrideLabels = [...]string{"none", "no_surface", "water", "no_atmosphere", "home_recovery", "no_airspace"}

func (o Override) String() string {
	if o < 0 || int(o) >= len(overrideLabels) {
		return fmt.Sprintf("Override(%d)", int(o))
	}
	return overrideLabels[o]
}

func (o Override) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Reason is the human-readable form used in report tooltips.
func (o Override) Reason() string {
	switch o {
	case OverrideNoSurface:
		return "no surface to land on"
	case OverrideWater:
		return "not possible in water"
	case OverrideNoAtmosphere:
		return "requires an atmosphere"
	case OverrideHomeRecovery:
		return "no recovery credit from the home world surface"
	case OverrideNoAirspace:
		return "no atmosphere to fly in"
	}
	return ""
}

// SizeClass selects the icon size of a body in the report.
type SizeClass int

const (
	SizePlanet SizeClass = iota
	SizeMoon
	SizeStar
)

var sizeLabels = [...]string{"planet", "moon", "star"}

func (s SizeClass) String() string {
	if s < 0 || int(s) >= len(sizeLabels) {
		return fmt.Sprintf("SizeClass(%d)", int(s))
	}
	return sizeLabels[s]
}

func (s SizeClass) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s SizeClass) IconWidth() int {
	switch s {
	case SizeMoon:
		return 32
	case SizeStar:
		return 96
	default:
		return 64
	}
}

func ParseSizeClass(s string) (SizeClass, error) {
	if s == "" {
		return SizePlanet, nil
	}
	for i, l := range sizeLabels {
		if l == s {
			return SizeClass(i), nil
		}
	}
	return 0, fmt.Errorf("size class %q: %w", s, ErrUnknownLabel)
}
