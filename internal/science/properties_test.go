package science_test

import (
	"testing"

	"github.com/tkbletsc/ksp-science-checklist/internal/refdata"
	"github.com/tkbletsc/ksp-science-checklist/internal/science"
)

func defaultCatalog(t *testing.T) *science.Catalog {
	t.Helper()
	cat, _, err := refdata.Default()
	if err != nil {
		t.Fatalf("default reference data: %v", err)
	}
	return cat
}

func TestAirlessBodiesRuleOutAtmosphericTests(t *testing.T) {
	cat := defaultCatalog(t)
	checked := 0
	for _, b := range cat.Bodies {
		if b.Atmosphere {
			continue
		}
		for _, z := range b.Zones() {
			if z.Category() == science.CategoryFly {
				t.Fatalf("%s exposes flight zone %s without an atmosphere", b.Name, z)
			}
		}
		// Resolve every zone, including the flight zones Zones() hides.
		for _, z := range science.AllZones {
			for _, biome := range b.Biomes {
				for _, spec := range cat.Tests {
					res, err := cat.ResolveScope(b, z, biome, spec.Test)
					if err != nil {
						t.Fatal(err)
					}
					switch {
					case spec.NeedsAtmosphere:
						if res.Scope != science.ScopeDisallowedBody || res.Override != science.OverrideNoAtmosphere {
							t.Fatalf("%s/%s/%s/%s: got %+v want disallowed body", b.Name, z, biome, spec.Test, res)
						}
						checked++
					case z.Category() == science.CategoryFly:
						if res.Scope != science.ScopeDisallowedZone || res.Override != science.OverrideNoAirspace {
							t.Fatalf("%s/%s/%s/%s: got %+v want disallowed zone", b.Name, z, biome, spec.Test, res)
						}
						checked++
					}
				}
			}
		}
	}
	if checked == 0 {
		t.Fatalf("no airless bodies in default data")
	}
}

func TestMunFlightZonesAreRuledOut(t *testing.T) {
	cat := defaultCatalog(t)
	mun, err := cat.Body("Mun")
	if err != nil {
		t.Fatal(err)
	}
	for _, z := range []science.Zone{science.ZoneFlyLow, science.ZoneFlyHigh} {
		for _, test := range []science.Test{science.TestEVAReport, science.TestGoo, science.TestRecovery} {
			res, err := cat.ResolveScope(mun, z, mun.Biomes[0], test)
			if err != nil {
				t.Fatal(err)
			}
			if res.Scope != science.ScopeDisallowedZone {
				t.Fatalf("Mun/%s/%s: got %+v", z, test, res)
			}
		}
	}
}

func TestSurfacelessBodiesRuleOutSurfaceZone(t *testing.T) {
	cat := defaultCatalog(t)
	for _, name := range []string{"Jool", "Kerbol"} {
		b, err := cat.Body(name)
		if err != nil {
			t.Fatal(err)
		}
		if b.Surface {
			t.Fatalf("%s should have no surface", name)
		}
		for _, spec := range cat.Tests {
			res, err := cat.ResolveScope(b, science.ZoneSurface, b.Biomes[0], spec.Test)
			if err != nil {
				t.Fatal(err)
			}
			want := science.ScopeDisallowedZone
			// Kerbol has no atmosphere either; the body-wide rule is wider.
			if !b.Atmosphere && spec.NeedsAtmosphere {
				want = science.ScopeDisallowedBody
			}
			if res.Scope != want {
				t.Fatalf("%s/Surface/%s: got %s want %s", name, spec.Test, res.Scope, want)
			}
		}
	}
}

func TestHomeWorldSurfaceRecoveryIsRuledOut(t *testing.T) {
	cat := defaultCatalog(t)
	kerbin, err := cat.Body("Kerbin")
	if err != nil {
		t.Fatal(err)
	}
	base, err := cat.Permission(science.ZoneSurface, science.TestRecovery)
	if err != nil {
		t.Fatal(err)
	}
	if base.Disallowed() {
		t.Fatalf("matrix should allow surface recovery, got %s", base)
	}
	for _, biome := range kerbin.Biomes {
		res, err := cat.ResolveScope(kerbin, science.ZoneSurface, biome, science.TestRecovery)
		if err != nil {
			t.Fatal(err)
		}
		if res.Scope != science.ScopeDisallowedZone || res.Override != science.OverrideHomeRecovery {
			t.Fatalf("Kerbin/Surface/%s/Recover: got %+v", biome, res)
		}
	}

	mun, err := cat.Body("Mun")
	if err != nil {
		t.Fatal(err)
	}
	res, err := cat.ResolveScope(mun, science.ZoneSurface, mun.Biomes[0], science.TestRecovery)
	if err != nil {
		t.Fatal(err)
	}
	if res.Scope != science.ScopeMultizonal {
		t.Fatalf("Mun surface recovery: got %s want Multizonal", res.Scope)
	}
}

// Kerbin lists a "Water" biome, so the water rule is live in the default data.
func TestKerbinWaterBiomeRulesOutSeismicAndNosecone(t *testing.T) {
	cat := defaultCatalog(t)
	kerbin, err := cat.Body("Kerbin")
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []science.Test{science.TestSeismic, science.TestNosecone} {
		res, err := cat.ResolveScope(kerbin, science.ZoneSurface, science.WaterBiome, test)
		if err != nil {
			t.Fatal(err)
		}
		if res.Scope != science.ScopeDisallowedRow || res.Override != science.OverrideWater {
			t.Fatalf("Kerbin/Surface/Water/%s: got %+v", test, res)
		}
	}
	res, err := cat.ResolveScope(kerbin, science.ZoneSurface, "Shores", science.TestSeismic)
	if err != nil {
		t.Fatal(err)
	}
	if res.Scope != science.ScopePerBiome {
		t.Fatalf("Kerbin/Surface/Shores/Seis: got %s", res.Scope)
	}
}

func TestDefaultRecoveryValueIsBodyIndependent(t *testing.T) {
	cat := defaultCatalog(t)
	a, err := cat.Values("Mun", science.CategorySurface, science.TestRecovery)
	if err != nil {
		t.Fatal(err)
	}
	b, err := cat.Values("Eeloo", science.CategorySpace, science.TestRecovery)
	if err != nil {
		t.Fatal(err)
	}
	if a != b || a.Recover != 5 || a.Base != 5 || a.Multiplier != 1 {
		t.Fatalf("recovery values differ or are wrong: %+v vs %+v", a, b)
	}
}
