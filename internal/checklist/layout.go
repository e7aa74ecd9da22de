package checklist

import (
	"fmt"

	"github.com/tkbletsc/ksp-science-checklist/internal/science"
)

// BuildTable lays out every body of the catalog, in catalog order, as rows of
// one cell per test column. A cell that spans rows is emitted on its first row
// and the rows it covers get CellEmpty in that column.
func BuildTable(cat *science.Catalog) (Table, error) {
	t := Table{Columns: make([]science.Test, 0, len(cat.Tests))}
	for _, spec := range cat.Tests {
		t.Columns = append(t.Columns, spec.Test)
	}
	for _, body := range cat.Bodies {
		rows, err := bodyRows(cat, body)
		if err != nil {
			return Table{}, fmt.Errorf("body %s: %w", body.Name, err)
		}
		t.Rows = append(t.Rows, rows...)
	}
	return t, nil
}

func bodyRows(cat *science.Catalog, body science.Body) ([]Row, error) {
	zones := body.Zones()
	numBiomes := len(body.Biomes)
	total := len(zones) * numBiomes
	pending := make([]int, len(cat.Tests))
	rows := make([]Row, 0, total)

	for zi, zone := range zones {
		for bi, biome := range body.Biomes {
			pos := zi*numBiomes + bi
			row := Row{Biome: biome, Cells: make([]Cell, len(cat.Tests))}
			if pos == 0 {
				row.Body = body.Name
				row.BodyRowSpan = total
				row.IconWidth = body.Size.IconWidth()
				row.PageBreak = body.PageBreak
			}
			if bi == 0 {
				row.Zone = zone.String()
				row.ZoneRowSpan = numBiomes
			}

			for ci, spec := range cat.Tests {
				if pending[ci] > 0 {
					pending[ci]--
					row.Cells[ci] = Cell{Kind: CellEmpty}
					continue
				}
				res, err := cat.ResolveScope(body, zone, biome, spec.Test)
				if err != nil {
					return nil, err
				}
				span, err := rowSpan(res.Scope, zone, zi, bi, numBiomes, total)
				if err != nil {
					return nil, fmt.Errorf("zone %s biome %q test %s: %w", zone, biome, spec.Test, err)
				}
				if pos+span > total {
					return nil, fmt.Errorf("zone %s test %s: span of %d rows runs past the body: %w", zone, spec.Test, span, ErrSpanMisaligned)
				}
				cell, err := buildCell(cat, body.Name, zone, spec.Test, res, span)
				if err != nil {
					return nil, fmt.Errorf("zone %s biome %q test %s: %w", zone, biome, spec.Test, err)
				}
				row.Cells[ci] = cell
				pending[ci] = span - 1
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// rowSpan returns how many rows a scope covers from (zi, bi), and fails when
// the position is not where such a span starts.
func rowSpan(scope science.Scope, zone science.Zone, zi, bi, numBiomes, total int) (int, error) {
	switch scope {
	case science.ScopePerBiome, science.ScopeDisallowedRow:
		return 1, nil
	case science.ScopePerZone, science.ScopeDisallowedZone:
		if bi != 0 {
			return 0, ErrSpanMisaligned
		}
		return numBiomes, nil
	case science.ScopeDisallowedBody:
		if zi != 0 || bi != 0 {
			return 0, ErrSpanMisaligned
		}
		return total, nil
	case science.ScopeMultizonal:
		if bi != 0 {
			return 0, ErrSpanMisaligned
		}
		switch zone {
		case science.ZoneSurface:
			return numBiomes, nil
		case science.ZoneFlyLow, science.ZoneSpaceLow:
			// The low zone and the high zone after it share one value.
			return 2 * numBiomes, nil
		}
		return 0, ErrSpanMisaligned
	}
	return 0, fmt.Errorf("scope %d: %w", int(scope), science.ErrUnknownLabel)
}

func buildCell(cat *science.Catalog, body string, zone science.Zone, test science.Test, res science.Resolution, span int) (Cell, error) {
	resolution := res
	if res.Scope.Disallowed() {
		kind := CellMergedDisallowed
		if res.Scope == science.ScopeDisallowedRow {
			kind = CellSingleDisallowed
		}
		return Cell{Kind: kind, RowSpan: span, Resolution: &resolution}, nil
	}
	values, err := cat.Values(body, zone.Category(), test)
	if err != nil {
		return Cell{}, err
	}
	kind := CellMergedValue
	if res.Scope == science.ScopePerBiome {
		kind = CellSingleValue
	}
	return Cell{
		Kind:       kind,
		RowSpan:    span,
		Display:    science.FormatValue(values.Recover),
		Values:     &values,
		Resolution: &resolution,
	}, nil
}
