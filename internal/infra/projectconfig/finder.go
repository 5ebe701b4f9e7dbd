// Package projectconfig locates a slidey project and loads its slidey.yaml.
package projectconfig

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/slidey/internal/domain"
	"github.com/aalvaropc/slidey/internal/ports"
)

// FileName is the project config file searched for.
const FileName = "slidey.yaml"

// Locator finds a project root by searching for slidey.yaml upward.
type Locator struct {
	ConfigFile string // defaults to "slidey.yaml"
}

func NewLocator() *Locator {
	return &Locator{ConfigFile: FileName}
}

var _ ports.ConfigLocator = (*Locator)(nil)

func (l *Locator) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "projectconfig.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "projectconfig.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// A deck path starts the search at its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		if _, err := os.Stat(filepath.Join(cur, l.ConfigFile)); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "projectconfig.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

func (l *Locator) LoadConfig(root string) (domain.Config, error) {
	return LoadConfig(filepath.Join(root, l.ConfigFile))
}

// Resolve finds the project around startDir and loads its config. Without a
// project the defaults are returned with an empty root.
func Resolve(loc ports.ConfigLocator, startDir string) (root string, cfg domain.Config, err error) {
	root, err = loc.FindRoot(startDir)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return "", domain.DefaultConfig(), nil
		}
		return "", domain.DefaultConfig(), err
	}

	cfg, err = loc.LoadConfig(root)
	return root, cfg, err
}
