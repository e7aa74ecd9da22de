package checklist

import (
	"fmt"
	"html"
	"strings"

	"github.com/tkbletsc/ksp-science-checklist/internal/science"
)

const reportStyle = `<style>
    body {
        font-family: "Trebuchet MS", Helvetica, sans-serif;
        font-size: 12pt;
    }
    div.header { text-align: center; }
    div.footer {
        margin-top: 48px;
        text-align: center;
        color: #888;
        font-size: 80%;
    }
    table { border-collapse: collapse; border: none; }
    thead { display: table-header-group; }
    tr.newpage { page-break-before: always; }
    td.null { background-color: #fff; border: none; }
    th.row {
        text-align: left;
        border-top: 1px solid #aaa;
        border-left: none;
        border-right: none;
        border-bottom: 1px solid #aaa;
    }
    th.planet { text-align: center; }
    td, th {
        padding: 2px;
        border: 1px solid #aaa;
        background-color: #e4e4e4;
    }
    th.test { width: 3em; vertical-align: bottom; }
    td.valid {
        background-color: #fff;
        border: 1px solid #888;
        vertical-align: top;
        font-size: 70%;
        color: #aaa;
    }
    td.invalid { background-color: #888; border: 1px solid #888; }
</style>`

func renderReportHTML(t Table) []byte {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\"><title>Science Checklist</title>\n")
	b.WriteString(reportStyle)
	b.WriteString("\n</head><body>\n")
	b.WriteString("<div class=\"header\"><img src=\"img/logo.png\" width=\"300\"><br>\n<h1>Science Checklist</h1>\nRevision 3 &mdash; KSP version 1.0 &mdash; 2015 April 27.\n<p></p></div>\n")

	b.WriteString("<table border=\"1\">\n<thead><tr><td colspan=\"3\" class=\"null\"></td>")
	for _, test := range t.Columns {
		fmt.Fprintf(&b, "<th class=\"test\"><img src=\"img/tests/%s.png\" width=\"48\"><br>%s</th>", esc(test.String()), esc(test.String()))
	}
	b.WriteString("</tr></thead>\n<tbody>\n")

	for _, row := range t.Rows {
		if row.PageBreak {
			b.WriteString("<tr class=\"newpage\">")
		} else {
			b.WriteString("<tr>")
		}
		if row.Body != "" {
			fmt.Fprintf(&b, "<th class=\"row planet\" rowspan=\"%d\"><img src=\"img/planets/%s.png\" width=\"%d\"><br>%s</th>", row.BodyRowSpan, esc(row.Body), row.IconWidth, esc(row.Body))
		}
		if row.Zone != "" {
			fmt.Fprintf(&b, "<th class=\"row\" rowspan=\"%d\">%s</th>", row.ZoneRowSpan, esc(row.Zone))
		}
		fmt.Fprintf(&b, "<th class=\"row\">%s</th>", biomeLabel(row.Biome))
		for _, c := range row.Cells {
			writeCell(&b, c)
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")

	b.WriteString("<div class=\"footer\">Created by Tyler Bletsch &mdash; <a href=\"http://discspace.org/\">discspace.org</a><br>\nModified for 1.0 by Dimitri Molenaars &mdash; <a href=\"http://tyrope.nl/\">tyrope.nl</a></div>\n")
	b.WriteString("</body></html>\n")
	return []byte(b.String())
}

func writeCell(b *strings.Builder, c Cell) {
	switch c.Kind {
	case CellEmpty:
		return
	case CellMergedDisallowed, CellSingleDisallowed:
		b.WriteString("<td class=\"invalid\"")
		writeRowSpan(b, c)
		if c.Resolution != nil && c.Resolution.Override != science.OverrideNone {
			fmt.Fprintf(b, " title=\"%s\"", esc(c.Resolution.Override.Reason()))
		}
		b.WriteString("></td>")
	case CellMergedValue, CellSingleValue:
		b.WriteString("<td class=\"valid\"")
		writeRowSpan(b, c)
		if c.Values != nil {
			fmt.Fprintf(b, " title=\"%s\"", esc(valueTooltip(*c.Values)))
		}
		fmt.Fprintf(b, ">%s</td>", esc(c.Display))
	}
}

func writeRowSpan(b *strings.Builder, c Cell) {
	if c.Kind == CellMergedDisallowed || c.Kind == CellMergedValue {
		fmt.Fprintf(b, " rowspan=\"%d\"", c.RowSpan)
	}
}

func valueTooltip(v science.Values) string {
	return fmt.Sprintf("recover %s, transmit %s, transmit with lab %s",
		science.FormatValue(v.Recover), science.FormatValue(v.Transmit), science.FormatValue(v.TransmitLab))
}

// biomeLabel keeps multi-word biomes on one line and fills placeholder biomes.
func biomeLabel(biome string) string {
	if strings.TrimSpace(biome) == "" {
		return "&nbsp;"
	}
	return strings.ReplaceAll(esc(biome), " ", "&nbsp;")
}

func esc(s string) string {
	return html.EscapeString(s)
}
