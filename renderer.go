package optable

import (
	"strings"

	"github.com/napalu/optable/errs"
	"github.com/napalu/optable/layout"
)

// Renderer formats help output for the options of a Registry. Each option is rendered as two columns:
// its signature and its description, both word-wrapped to the display width.
type Renderer struct {
	registry *Registry
	header   HeaderFunc
}

// NewRenderer creates a Renderer for registry
func NewRenderer(registry *Registry, configs ...ConfigureRendererFunc) *Renderer {
	r := &Renderer{registry: registry}
	for _, config := range configs {
		config(r)
	}
	if r.header == nil {
		r.header = plainHeader
	}

	return r
}

// WithHeaderFunc decorates group headers, e.g. to colorize them
func WithHeaderFunc(header HeaderFunc) ConfigureRendererFunc {
	return func(renderer *Renderer) {
		renderer.header = header
	}
}

func plainHeader(header string) string {
	return header
}

// RenderAll renders every group in first-seen order: the group label, one entry per option and a blank line
func (r *Renderer) RenderAll(width int) (string, error) {
	var sb strings.Builder
	for _, group := range r.registry.groups {
		sb.WriteString(r.header(group.Label + ":"))
		sb.WriteByte('\n')
		for _, info := range group.Options {
			usage, err := r.OptionUsage(info, width)
			if err != nil {
				return "", err
			}
			sb.WriteString(usage)
		}
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

// RenderOne renders the option identified by id - a short flag, long name or keyword, with or without
// its dashes. An error of kind types.KindLookup is returned when no option matches.
func (r *Renderer) RenderOne(id string, width int) (string, error) {
	index, found := r.registry.Lookup(id)
	if !found {
		return "", errs.ErrOptionNotFound.WithArgs(id)
	}

	return r.OptionUsage(OptionInfo{
		Index:       index,
		Signature:   r.registry.Signature(index),
		Description: r.registry.options[index].Description,
	}, width)
}

// OptionUsage renders a single option entry. The signature column is min(width/2, indent+6) wide,
// where indent is the length of the longest signature in the registry, and the description takes
// the remaining width. Widths below MinWidth are raised to MinWidth.
func (r *Renderer) OptionUsage(info OptionInfo, width int) (string, error) {
	if width < MinWidth {
		width = MinWidth
	}

	column := r.registry.indent + 6
	if half := width / 2; half < column {
		column = half
	}

	return renderEntry(info, column, width-column)
}

// renderEntry wraps the signature into a column of width left, indented and padded by two spaces,
// and the description into a column of width right
func renderEntry(info OptionInfo, left, right int) (string, error) {
	signature, err := layout.Wrap(info.Signature, left, "  ", "  ")
	if err != nil {
		return "", err
	}
	description, err := layout.Wrap(info.Description, right, "", "")
	if err != nil {
		return "", err
	}

	return layout.Join(signature, description, left), nil
}
