package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Layout is a slide template from the presentation library's built-in set.
// Title and Body are the placeholders the interpreter can write into;
// nil means the layout has no such placeholder.
type Layout struct {
	Index int
	Name  string
	Title *Frame
	Body  *Frame
}

// HasTitle reports whether the layout carries a title placeholder.
func (l Layout) HasTitle() bool { return l.Title != nil }

// HasBody reports whether the layout carries body placeholder #1.
func (l Layout) HasBody() bool { return l.Body != nil }

// LayoutRef selects a layout either by index or by name.
type LayoutRef struct {
	Index int
	Name  string
}

// LayoutByIndex builds a reference to the layout at idx.
func LayoutByIndex(idx int) LayoutRef {
	return LayoutRef{Index: idx}
}

// LayoutByName builds a reference to the layout named name.
func LayoutByName(name string) LayoutRef {
	return LayoutRef{Index: -1, Name: name}
}

func (r LayoutRef) String() string {
	if r.Name != "" {
		return strconv.Quote(r.Name)
	}
	return strconv.Itoa(r.Index)
}

// ResolveLayout finds ref inside layouts. Names match case-insensitively.
func ResolveLayout(layouts []Layout, ref LayoutRef) (Layout, error) {
	if ref.Name != "" {
		for _, l := range layouts {
			if strings.EqualFold(l.Name, strings.TrimSpace(ref.Name)) {
				return l, nil
			}
		}
		return Layout{}, fmt.Errorf("unknown layout %s", ref)
	}
	for _, l := range layouts {
		if l.Index == ref.Index {
			return l, nil
		}
	}
	return Layout{}, fmt.Errorf("layout index %d out of range (0..%d)", ref.Index, len(layouts)-1)
}
