package interpret

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/slidey/internal/domain"
)

type param struct {
	name     string
	required bool
}

// args are the named arguments of one command call.
type args struct {
	values map[string]*domain.Node
	vars   *domain.SlideResolver
}

// bind maps a mapping or scalar node onto the command's parameters.
func bind(cmd command, v *domain.Node, vars *domain.SlideResolver) (args, error) {
	a := args{values: map[string]*domain.Node{}, vars: vars}

	if v != nil && v.Kind == domain.MappingNode {
		for _, e := range v.Entries {
			if !cmd.accepts(e.Key) {
				return args{}, fmt.Errorf("unexpected argument %q (accepted: %s)", e.Key, cmd.paramList())
			}
			a.values[e.Key] = e.Value
		}
	} else if len(cmd.params) > 0 {
		a.values[cmd.params[0].name] = v
	}

	for _, p := range cmd.params {
		if !p.required {
			continue
		}
		if n, ok := a.values[p.name]; !ok || n == nil {
			return args{}, fmt.Errorf("missing required argument %q", p.name)
		}
	}
	return a, nil
}

func (a args) has(name string) bool {
	n, ok := a.values[name]
	return ok && !n.IsNull()
}

// text returns a string argument with {{vars}} resolved.
func (a args) text(name string) (string, error) {
	n := a.values[name]
	s, err := n.Text()
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	out, err := a.vars.ResolveString(s)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// optionalText is like text but returns "" for absent or null arguments.
func (a args) optionalText(name string) (string, error) {
	if !a.has(name) {
		return "", nil
	}
	return a.text(name)
}

func (a args) number(name string) (float64, error) {
	f, err := a.values[name].Float()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// numberOr returns the argument or def when absent.
func (a args) numberOr(name string, def float64) (float64, error) {
	if !a.has(name) {
		return def, nil
	}
	return a.number(name)
}

// optionalLength converts a present argument to EMU; nil when absent.
func (a args) optionalLength(name string, units domain.Units) (*domain.Length, error) {
	if !a.has(name) {
		return nil, nil
	}
	f, err := a.number(name)
	if err != nil {
		return nil, err
	}
	l := units.ToEMU(f)
	return &l, nil
}

// node returns the raw node for arguments with structured values.
func (a args) node(name string) *domain.Node {
	return a.values[name]
}

func (c command) accepts(name string) bool {
	for _, p := range c.params {
		if p.name == name {
			return true
		}
	}
	return false
}

func (c command) paramList() string {
	names := make([]string, 0, len(c.params))
	for _, p := range c.params {
		names = append(names, p.name)
	}
	return strings.Join(names, ", ")
}
