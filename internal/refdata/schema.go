package refdata

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/tkbletsc/ksp-science-checklist/internal/science"
	"gopkg.in/yaml.v3"
)

var (
	topFields      = []string{"schema_version", "tests", "permissions", "multipliers", "bodies"}
	testFields     = []string{"id", "base_points", "transmit_rate", "lab_bonus", "needs_atmosphere", "no_water"}
	bodyFields     = []string{"name", "biomes", "atmosphere", "surface", "home", "page_break", "size"}
	zoneLabels     = labels(science.AllZones)
	testLabels     = labels(science.AllTests)
	categoryLabels = labels(science.AllCategories)
)

func labels[T fmt.Stringer](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.String())
	}
	return out
}

type schemaProblem struct {
	path string
	line int
	msg  string
}

// schemaChecker walks a reference document node by node and collects every
// structural problem with the line it was found on.
type schemaChecker struct {
	problems []schemaProblem
}

func (c *schemaChecker) report(path string, line int, format string, args ...any) {
	c.problems = append(c.problems, schemaProblem{path: path, line: line, msg: fmt.Sprintf(format, args...)})
}

// mapping returns the values of a mapping node by key. A nil allowed list
// accepts any key.
func (c *schemaChecker) mapping(node *yaml.Node, path string, allowed, required []string) map[string]*yaml.Node {
	fields := map[string]*yaml.Node{}
	switch {
	case node == nil:
		c.report(path, 0, "missing object")
		return fields
	case node.Kind != yaml.MappingNode:
		c.report(path, node.Line, "must be a mapping/object")
		return fields
	}
	firstLine := map[string]int{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		name := path + "." + key.Value
		if prev, dup := firstLine[key.Value]; dup {
			c.report(name, key.Line, "duplicate key (already defined at line %d)", prev)
			continue
		}
		firstLine[key.Value] = key.Line
		if allowed != nil && !slices.Contains(allowed, key.Value) {
			c.report(name, key.Line, "unknown field")
		}
		fields[key.Value] = node.Content[i+1]
	}
	for _, req := range required {
		if _, ok := fields[req]; !ok {
			c.report(path+"."+req, node.Line, "missing required field")
		}
	}
	return fields
}

func (c *schemaChecker) sequence(node *yaml.Node, path string) []*yaml.Node {
	if node == nil || node.Kind != yaml.SequenceNode {
		line := 0
		if node != nil {
			line = node.Line
		}
		c.report(path, line, "must be a sequence/array")
		return nil
	}
	return node.Content
}

func (c *schemaChecker) document(root *yaml.Node) {
	if root == nil || len(root.Content) == 0 {
		c.report("refdata", 0, "empty YAML document")
		return
	}
	top := c.mapping(root.Content[0], "refdata", topFields, topFields)

	if v, ok := top["tests"]; ok {
		for i, item := range c.sequence(v, "refdata.tests") {
			c.mapping(item, fmt.Sprintf("refdata.tests[%d]", i), testFields, []string{"id"})
		}
	}
	if v, ok := top["permissions"]; ok {
		for zone, row := range c.mapping(v, "refdata.permissions", zoneLabels, nil) {
			if slices.Contains(zoneLabels, zone) {
				c.mapping(row, "refdata.permissions."+zone, testLabels, nil)
			}
		}
	}
	if v, ok := top["multipliers"]; ok {
		for body, row := range c.mapping(v, "refdata.multipliers", nil, nil) {
			c.mapping(row, "refdata.multipliers."+body, categoryLabels, nil)
		}
	}
	if v, ok := top["bodies"]; ok {
		for i, item := range c.sequence(v, "refdata.bodies") {
			path := fmt.Sprintf("refdata.bodies[%d]", i)
			if biomes, ok := c.mapping(item, path, bodyFields, []string{"name", "biomes"})["biomes"]; ok {
				c.sequence(biomes, path+".biomes")
			}
		}
	}
}

// err folds the collected problems into one error, ordered by line.
func (c *schemaChecker) err(source string) error {
	if len(c.problems) == 0 {
		return nil
	}
	sort.SliceStable(c.problems, func(i, j int) bool {
		a, b := c.problems[i], c.problems[j]
		if a.line != b.line {
			return a.line < b.line
		}
		if a.path != b.path {
			return a.path < b.path
		}
		return a.msg < b.msg
	})
	var b strings.Builder
	fmt.Fprintf(&b, "schema validation failed for %s", source)
	for _, p := range c.problems {
		if p.line > 0 {
			fmt.Fprintf(&b, "\n- line %d field %s: %s", p.line, p.path, p.msg)
		} else {
			fmt.Fprintf(&b, "\n- field %s: %s", p.path, p.msg)
		}
	}
	return errors.New(b.String())
}
