package science

import "fmt"

// Validate reports every broken invariant of the catalog. An empty result
// means every lookup the checklist performs has an entry to find.
func (c *Catalog) Validate() []string {
	var errs []string
	if len(c.Tests) == 0 {
		errs = append(errs, "at least one test is required")
	}
	if len(c.Bodies) == 0 {
		errs = append(errs, "at least one body is required")
	}

	seenTests := map[Test]bool{}
	for _, s := range c.Tests {
		if seenTests[s.Test] {
			errs = append(errs, fmt.Sprintf("test %s listed twice", s.Test))
		}
		seenTests[s.Test] = true
		if s.Test == TestRecovery {
			continue
		}
		if s.BasePoints <= 0 {
			errs = append(errs, fmt.Sprintf("test %s base_points must be positive", s.Test))
		}
		if s.TransmitRate < 0 || s.TransmitRate > 100 {
			errs = append(errs, fmt.Sprintf("test %s transmit_rate must be within [0,100]", s.Test))
		}
		if s.LabBonus < 0 {
			errs = append(errs, fmt.Sprintf("test %s lab_bonus cannot be negative", s.Test))
		}
	}

	for _, z := range AllZones {
		for _, s := range c.Tests {
			if _, err := c.Permission(z, s.Test); err != nil {
				errs = append(errs, err.Error())
			}
		}
	}

	seenBodies := map[string]bool{}
	homes := 0
	for _, b := range c.Bodies {
		if b.Name == "" {
			errs = append(errs, "body name required")
			continue
		}
		if seenBodies[b.Name] {
			errs = append(errs, fmt.Sprintf("body %s listed twice", b.Name))
		}
		seenBodies[b.Name] = true
		if b.Home {
			homes++
		}
		if len(b.Biomes) == 0 {
			errs = append(errs, fmt.Sprintf("body %s needs at least one biome", b.Name))
		}
		for _, cat := range zoneCategories(b.Zones()) {
			m, err := c.Multiplier(b.Name, cat)
			if err != nil {
				errs = append(errs, err.Error())
				continue
			}
			if m.Applicable && m.Factor <= 0 {
				errs = append(errs, fmt.Sprintf("body %s category %s multiplier must be positive", b.Name, cat))
			}
		}
	}
	if homes > 1 {
		errs = append(errs, "at most one home world is allowed")
	}
	for name := range c.Multipliers {
		if !seenBodies[name] {
			errs = append(errs, fmt.Sprintf("multipliers given for unknown body %s", name))
		}
	}
	return errs
}

func zoneCategories(zones []Zone) []ZoneCategory {
	seen := map[ZoneCategory]bool{}
	var out []ZoneCategory
	for _, z := range zones {
		if c := z.Category(); !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
