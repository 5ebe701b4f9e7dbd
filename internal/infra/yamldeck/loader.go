// Package yamldeck loads slide decks from YAML files.
package yamldeck

import (
	"fmt"
	"os"
	"strings"

	"github.com/aalvaropc/slidey/internal/domain"
	"github.com/aalvaropc/slidey/internal/ports"
	"gopkg.in/yaml.v3"
)

// maxAliasDepth bounds alias expansion so self-referencing anchors fail fast.
const maxAliasDepth = 64

type Loader struct{}

func NewLoader() *Loader { return &Loader{} }

var _ ports.DeckLoader = (*Loader)(nil)

func (l *Loader) LoadDeck(path string) (domain.Deck, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Deck{}, &domain.OpError{
			Op:   "yamldeck.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return Parse(path, b)
}

// Parse decodes a deck document. path is only used for error reporting and
// to resolve relative resources later on.
func Parse(path string, b []byte) (domain.Deck, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return domain.Deck{}, &domain.OpError{
			Op:   "yamldeck.load",
			Kind: domain.KindInvalidDeck,
			Path: path,
			Err:  err,
		}
	}

	root, err := convert(&doc, 0)
	if err != nil {
		return domain.Deck{}, &domain.OpError{
			Op:   "yamldeck.load",
			Kind: domain.KindInvalidDeck,
			Path: path,
			Err:  err,
		}
	}

	return mapAndValidate(path, root)
}

// convert turns a yaml.v3 node into a domain node, resolving aliases and
// merge keys.
func convert(n *yaml.Node, depth int) (*domain.Node, error) {
	if depth > maxAliasDepth {
		return nil, fmt.Errorf("line %d: document nests too deeply", n.Line)
	}

	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return convert(n.Content[0], depth)

	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("line %d: unknown alias %q", n.Line, n.Value)
		}
		return convert(n.Alias, depth+1)

	case yaml.ScalarNode:
		return &domain.Node{
			Kind:   domain.ScalarNode,
			Value:  n.Value,
			Tag:    scalarTag(n),
			Line:   n.Line,
			Column: n.Column,
		}, nil

	case yaml.SequenceNode:
		out := &domain.Node{Kind: domain.SequenceNode, Line: n.Line, Column: n.Column}
		for _, c := range n.Content {
			item, err := convert(c, depth+1)
			if err != nil {
				return nil, err
			}
			out.Items = append(out.Items, item)
		}
		return out, nil

	case yaml.MappingNode:
		return convertMapping(n, depth)

	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}

func convertMapping(n *yaml.Node, depth int) (*domain.Node, error) {
	out := &domain.Node{Kind: domain.MappingNode, Line: n.Line, Column: n.Column}

	var merged []domain.Entry
	seen := map[string]bool{}

	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]

		if k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge" {
			entries, err := mergeEntries(v, depth)
			if err != nil {
				return nil, err
			}
			merged = append(merged, entries...)
			continue
		}

		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
		}
		if seen[k.Value] {
			return nil, fmt.Errorf("line %d: duplicate key %q", k.Line, k.Value)
		}
		seen[k.Value] = true

		val, err := convert(v, depth+1)
		if err != nil {
			return nil, err
		}
		if val == nil {
			val = &domain.Node{Kind: domain.ScalarNode, Tag: domain.TagNull, Line: v.Line, Column: v.Column}
		}
		out.Entries = append(out.Entries, domain.Entry{Key: k.Value, Value: val})
	}

	// Merged keys never override explicit ones; the first merge source wins.
	for _, e := range merged {
		if seen[e.Key] {
			continue
		}
		seen[e.Key] = true
		out.Entries = append(out.Entries, e)
	}

	return out, nil
}

func mergeEntries(v *yaml.Node, depth int) ([]domain.Entry, error) {
	src, err := convert(v, depth+1)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, nil
	}

	switch src.Kind {
	case domain.MappingNode:
		return src.Entries, nil
	case domain.SequenceNode:
		var out []domain.Entry
		for _, item := range src.Items {
			if item == nil || item.Kind != domain.MappingNode {
				return nil, fmt.Errorf("line %d: merge sequence items must be mappings", v.Line)
			}
			out = append(out, item.Entries...)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("line %d: merge value must be a mapping", v.Line)
	}
}

func scalarTag(n *yaml.Node) domain.ScalarTag {
	switch n.ShortTag() {
	case "!!int":
		return domain.TagInt
	case "!!float":
		return domain.TagFloat
	case "!!bool":
		return domain.TagBool
	case "!!null":
		return domain.TagNull
	default:
		return domain.TagString
	}
}

func mapAndValidate(path string, root *domain.Node) (domain.Deck, error) {
	if root == nil || root.IsNull() {
		return domain.Deck{}, invalidField(path, "slides", "deck is empty")
	}
	if root.Kind != domain.MappingNode {
		return domain.Deck{}, invalidField(path, "(root)", "expected a mapping with a slides key")
	}

	deck := domain.Deck{Path: path, Vars: domain.Vars{}}

	var slides *domain.Node
	for _, e := range root.Entries {
		switch e.Key {
		case "units":
			if e.Value.IsNull() {
				continue
			}
			s, err := e.Value.Text()
			if err != nil {
				return domain.Deck{}, invalidField(path, "units", err.Error())
			}
			u, err := domain.ParseUnits(s)
			if err != nil {
				return domain.Deck{}, invalidField(path, "units", err.Error())
			}
			deck.Units = u
		case "vars":
			vars, err := mapVars(path, e.Value)
			if err != nil {
				return domain.Deck{}, err
			}
			deck.Vars = vars
		case "properties":
			props, err := mapProperties(path, e.Value)
			if err != nil {
				return domain.Deck{}, err
			}
			deck.Properties = props
		case "slides":
			slides = e.Value
		default:
			return domain.Deck{}, invalidField(path, e.Key, "unknown top-level key (expected units, vars, properties, slides)")
		}
	}

	if slides == nil || slides.IsNull() {
		return domain.Deck{}, invalidField(path, "slides", "at least one slide is required")
	}
	if slides.Kind != domain.SequenceNode {
		return domain.Deck{}, invalidField(path, "slides", "expected a sequence of slides")
	}

	deck.Slides = make([]domain.SlideSpec, 0, len(slides.Items))
	for i, item := range slides.Items {
		spec, err := mapSlide(path, i, item)
		if err != nil {
			return domain.Deck{}, err
		}
		deck.Slides = append(deck.Slides, spec)
	}

	return deck, nil
}

func mapSlide(path string, idx int, n *domain.Node) (domain.SlideSpec, error) {
	field := fmt.Sprintf("slides[%d]", idx)

	spec := domain.SlideSpec{Index: idx}
	if n == nil || n.IsNull() {
		return spec, nil
	}
	spec.Line = n.Line

	if n.Kind != domain.MappingNode {
		return domain.SlideSpec{}, invalidField(path, field, "expected a mapping of commands")
	}

	for _, e := range n.Entries {
		if e.Key != "layout" {
			spec.Commands = append(spec.Commands, e)
			continue
		}
		ref, err := layoutRef(e.Value)
		if err != nil {
			return domain.SlideSpec{}, invalidField(path, field+".layout", err.Error())
		}
		spec.Layout = ref
	}

	return spec, nil
}

func layoutRef(n *domain.Node) (*domain.LayoutRef, error) {
	if n.IsNull() {
		return nil, nil
	}
	if n.Kind == domain.ScalarNode && n.Tag == domain.TagInt {
		i, err := n.Int()
		if err != nil {
			return nil, err
		}
		if i < 0 {
			return nil, fmt.Errorf("layout index must not be negative, got %d", i)
		}
		ref := domain.LayoutByIndex(i)
		return &ref, nil
	}

	s, err := n.Text()
	if err != nil {
		return nil, fmt.Errorf("expected a layout index or name")
	}
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("layout name must not be empty")
	}
	ref := domain.LayoutByName(s)
	return &ref, nil
}

func mapVars(path string, n *domain.Node) (domain.Vars, error) {
	out := domain.Vars{}
	if n.IsNull() {
		return out, nil
	}
	if n.Kind != domain.MappingNode {
		return nil, invalidField(path, "vars", "expected a mapping")
	}
	for _, e := range n.Entries {
		if strings.TrimSpace(e.Key) == "" {
			return nil, invalidField(path, "vars", "variable name must not be empty")
		}
		if e.Value.IsNull() {
			out[e.Key] = ""
			continue
		}
		s, err := e.Value.Text()
		if err != nil {
			return nil, invalidField(path, "vars."+e.Key, err.Error())
		}
		out[e.Key] = s
	}
	return out, nil
}

func mapProperties(path string, n *domain.Node) (domain.Properties, error) {
	var p domain.Properties
	if n.IsNull() {
		return p, nil
	}
	if n.Kind != domain.MappingNode {
		return p, invalidField(path, "properties", "expected a mapping")
	}
	for _, e := range n.Entries {
		var dst *string
		switch e.Key {
		case "title":
			dst = &p.Title
		case "author":
			dst = &p.Author
		default:
			return p, invalidField(path, "properties."+e.Key, "unknown property (expected title, author)")
		}
		if e.Value.IsNull() {
			continue
		}
		s, err := e.Value.Text()
		if err != nil {
			return p, invalidField(path, "properties."+e.Key, err.Error())
		}
		*dst = s
	}
	return p, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamldeck.validate",
		Kind: domain.KindInvalidDeck,
		Path: path,
		Err:  fmt.Errorf("field %s: %s", field, msg),
	}
}
