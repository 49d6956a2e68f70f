package prompt

import (
	"fmt"
	"strings"

	"github.com/bdurrett/joke-poc-mcp-server/pkg/errors"
)

// Result carries a composed prompt and the resolution metadata the caller
// logs. Constructed per request and discarded after the response.
type Result struct {
	Text           string
	Topic          string
	Style          string
	RequestedStyle string
	Fallback       bool
	Length         int
}

// StyleOption is the {identifier, description} projection returned by
// ListStyles.
type StyleOption struct {
	ID          string
	Description string
}

// Builder composes joke-writing instructions from a topic and a style. It is
// stateless apart from the immutable catalog and safe for concurrent use.
type Builder struct {
	catalog *Catalog
}

func NewBuilder(catalog *Catalog) *Builder {
	return &Builder{catalog: catalog}
}

// Build trims and validates the topic, resolves the style, and assembles the
// instruction text. The same (topic, resolved style) pair always yields
// byte-identical output. An empty topic is the only failure.
func (b *Builder) Build(topic, style string) (*Result, error) {
	trimmed := strings.TrimSpace(topic)
	if trimmed == "" {
		return nil, errors.NewInvalidArgumentError("missing required argument: topic", "topic")
	}

	def, matched := b.catalog.Resolve(style)

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an expert comedian specializing in %s dad jokes. ", def.Name)
	sb.WriteString(def.Fragment)
	fmt.Fprintf(&sb, " Write a single dad joke about %s.", trimmed)
	sb.WriteString(" Keep it family-friendly and appropriate for a workplace. ")
	sb.WriteString(def.Format)

	text := sb.String()
	return &Result{
		Text:           text,
		Topic:          trimmed,
		Style:          def.ID,
		RequestedStyle: strings.TrimSpace(style),
		Fallback:       !matched,
		Length:         len(text),
	}, nil
}

// ListStyles enumerates the selectable styles in catalog order.
func (b *Builder) ListStyles() []StyleOption {
	defs := b.catalog.Styles()
	options := make([]StyleOption, len(defs))
	for i, def := range defs {
		options[i] = StyleOption{ID: def.ID, Description: def.Description}
	}
	return options
}
