// Package render writes entities as a table or as YAML.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/forge/entity"
	"github.com/katalvlaran/forge/prototype"
)

// Output formats.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// Formats lists the accepted output formats, default first.
func Formats() []string { return []string{FormatTable, FormatYAML} }

// Options controls presentation.
type Options struct {
	// Color highlights family tags in tables.
	Color bool
}

// entityView is the serialized shape of an Entity.
type entityView struct {
	Name       string            `json:"name"`
	Category   string            `json:"category"`
	Family     string            `json:"family,omitempty"`
	AccessoryA string            `json:"accessoryA,omitempty"`
	AccessoryB string            `json:"accessoryB,omitempty"`
	Traits     map[string]string `json:"traits,omitempty"`
}

func viewOf(e entity.Entity) entityView {
	v := entityView{
		Name:       e.Name(),
		Category:   e.Category(),
		Family:     e.Family(),
		AccessoryA: e.AccessoryA(),
		AccessoryB: e.AccessoryB(),
	}
	if traits := e.Traits(); len(traits) > 0 {
		v.Traits = make(map[string]string, len(traits))
		for _, t := range traits {
			v.Traits[t.Key] = t.Value
		}
	}

	return v
}

// Entities writes entities to w in format. A single entity is written as a
// YAML object, several as a YAML list.
func Entities(w io.Writer, format string, entities []entity.Entity, opts Options) error {
	var data []byte
	var err error
	switch format {
	case FormatYAML:
		data, err = entitiesAsYAML(entities)
	case FormatTable:
		data = entitiesAsTable(entities, opts)
	default:
		err = fmt.Errorf("unknown output format: %q", format)
	}
	if err != nil {
		return fmt.Errorf("encoding entities as %q failed: %w", format, err)
	}
	_, err = w.Write(data)

	return err
}

// Catalog writes every prototype in r keyed by its tag.
func Catalog(w io.Writer, format string, r *prototype.Registry, opts Options) error {
	tags := r.Tags()
	protos := make([]entity.Entity, 0, len(tags))
	for _, tag := range tags {
		e, err := r.Create(tag)
		if err != nil {
			return fmt.Errorf("reading prototype %q failed: %w", tag, err)
		}
		protos = append(protos, e)
	}

	var data []byte
	var err error
	switch format {
	case FormatYAML:
		views := make(map[string]entityView, len(tags))
		for i, tag := range tags {
			views[tag] = viewOf(protos[i])
		}
		data, err = yaml.Marshal(views)
	case FormatTable:
		data = catalogAsTable(tags, protos, opts)
	default:
		err = fmt.Errorf("unknown output format: %q", format)
	}
	if err != nil {
		return fmt.Errorf("encoding catalog as %q failed: %w", format, err)
	}
	_, err = w.Write(data)

	return err
}

func entitiesAsYAML(entities []entity.Entity) ([]byte, error) {
	if len(entities) == 1 {
		return yaml.Marshal(viewOf(entities[0]))
	}
	views := make([]entityView, len(entities))
	for i, e := range entities {
		views[i] = viewOf(e)
	}

	return yaml.Marshal(views)
}

var entityHeader = table.Row{"Name", "Category", "Family", "Accessory A", "Accessory B", "Traits"}

func entityRow(e entity.Entity, opts Options) table.Row {
	return table.Row{e.Name(), e.Category(), paintFamily(e.Family(), opts.Color), e.AccessoryA(), e.AccessoryB(), formatTraits(e)}
}

func entitiesAsTable(entities []entity.Entity, opts Options) []byte {
	t := newTable()
	t.AppendHeader(entityHeader)
	for _, e := range entities {
		t.AppendRow(entityRow(e, opts))
	}

	return renderTable(t)
}

func catalogAsTable(tags []string, protos []entity.Entity, opts Options) []byte {
	t := newTable()
	t.AppendHeader(append(table.Row{"Tag"}, entityHeader...))
	for i, tag := range tags {
		t.AppendRow(append(table.Row{tag}, entityRow(protos[i], opts)...))
	}

	return renderTable(t)
}

func newTable() table.Writer {
	t := table.NewWriter()
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)

	return t
}

func renderTable(t table.Writer) []byte {
	var buf bytes.Buffer
	t.SetOutputMirror(&buf)
	t.Render()

	return buf.Bytes()
}

func formatTraits(e entity.Entity) string {
	traits := e.Traits()
	parts := make([]string, len(traits))
	for i, t := range traits {
		parts[i] = t.Key + "=" + t.Value
	}

	return strings.Join(parts, " ")
}

var familyColors = map[string]color.Attribute{
	"Good": color.FgGreen,
	"Evil": color.FgRed,
}

// paintFamily colors a family tag: Good green, Evil red, anything else cyan.
func paintFamily(family string, colorize bool) string {
	if !colorize || family == "" {
		return family
	}
	attr, ok := familyColors[family]
	if !ok {
		attr = color.FgCyan
	}
	c := color.New(attr)
	c.EnableColor()

	return c.Sprint(family)
}
