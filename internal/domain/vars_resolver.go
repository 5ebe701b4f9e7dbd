package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// VarResolver resolves {{var}} placeholders in deck strings.
// It supports built-ins: {{$slide}}, {{$slides}} and {{$date}}.
//
// This lives in domain because it does not depend on YAML/FS. Only stdlib.
type VarResolver struct {
	now func() time.Time
}

// VarResolverOption configures VarResolver.
type VarResolverOption func(*VarResolver)

// WithNow overrides the clock (useful for tests).
func WithNow(now func() time.Time) VarResolverOption {
	return func(r *VarResolver) { r.now = now }
}

func NewVarResolver(opts ...VarResolverOption) *VarResolver {
	r := &VarResolver{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SlideResolver resolves placeholders for a single slide, so built-ins such as
// {{$slide}} carry that slide's number.
type SlideResolver struct {
	base     Vars
	builtins Vars
}

// ForSlide returns a resolver for the slide at zero-based index idx out of total.
func (r *VarResolver) ForSlide(vars Vars, idx, total int) *SlideResolver {
	baseCopy := Vars{}
	for k, v := range vars {
		baseCopy[k] = v
	}

	return &SlideResolver{
		base: baseCopy,
		builtins: Vars{
			"$slide":  strconv.Itoa(idx + 1),
			"$slides": strconv.Itoa(total),
			"$date":   r.now().Format("2006-01-02"),
		},
	}
}

// ResolveString resolves placeholders in a string.
func (sr *SlideResolver) ResolveString(s string) (string, error) {
	// Fast path: no token start.
	if !strings.Contains(s, "{{") {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s) + 16)

	for i := 0; i < len(s); {
		if i+1 < len(s) && s[i] == '{' && s[i+1] == '{' {
			start := i + 2

			end := strings.Index(s[start:], "}}")
			if end < 0 {
				return "", &OpError{
					Op:   "vars.resolve",
					Kind: KindInvalidDeck,
					Err:  errors.New("unclosed placeholder"),
				}
			}
			end = start + end

			name := strings.TrimSpace(s[start:end])
			if name == "" {
				return "", &OpError{
					Op:   "vars.resolve",
					Kind: KindInvalidDeck,
					Err:  errors.New("empty placeholder"),
				}
			}

			val, ok := sr.builtins[name]
			if !ok {
				val, ok = sr.base[name]
			}
			if !ok {
				return "", &OpError{
					Op:   "vars.resolve",
					Kind: KindMissingVar,
					Err:  fmt.Errorf("missing variable: %s: %w", name, ErrMissingVar),
				}
			}

			b.WriteString(val)
			i = end + 2
			continue
		}

		b.WriteByte(s[i])
		i++
	}

	return b.String(), nil
}
