package science

type Resolution struct {
	Scope    Scope    `json:"scope"`
	Override Override `json:"override"`
}

// ResolveScope decides whether test may run on body in zone/biome, and how
// widely its value applies. The matrix scope is the default; body and biome
// rules replace it. Flight zones of an airless body are ruled out even though
// Body.Zones never lists them. A rule never narrows an existing disallowance, so a
// body-wide cell always starts on the body's first row.
func (c *Catalog) ResolveScope(body Body, zone Zone, biome string, test Test) (Resolution, error) {
	base, err := c.Permission(zone, test)
	if err != nil {
		return Resolution{}, err
	}
	spec, err := c.TestSpec(test)
	if err != nil {
		return Resolution{}, err
	}

	res := Resolution{Scope: base}
	apply := func(s Scope, o Override) {
		if s.width() >= res.Scope.width() {
			res = Resolution{Scope: s, Override: o}
		}
	}
	if !body.Atmosphere && zone.Category() == CategoryFly {
		apply(ScopeDisallowedZone, OverrideNoAirspace)
	}
	if !body.Surface && zone == ZoneSurface {
		apply(ScopeDisallowedZone, OverrideNoSurface)
	}
	if zone == ZoneSurface && biome == WaterBiome && spec.NoWater {
		apply(ScopeDisallowedRow, OverrideWater)
	}
	if !body.Atmosphere && spec.NeedsAtmosphere {
		apply(ScopeDisallowedBody, OverrideNoAtmosphere)
	}
	// Matches the game: landed recovery on the home world pays nothing.
	if body.Home && zone == ZoneSurface && test == TestRecovery {
		apply(ScopeDisallowedZone, OverrideHomeRecovery)
	}
	return res, nil
}
