package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/slidey/internal/domain"
	"github.com/aalvaropc/slidey/internal/infra/projectconfig"
)

// projectCtx is what a command needs to know about the project around a deck.
type projectCtx struct {
	root string
	cfg  domain.Config
}

func loadProject(deckPath string) (*projectCtx, error) {
	root, cfg, err := projectconfig.Resolve(projectconfig.NewLocator(), filepath.Dir(deckPath))
	if err != nil {
		return nil, err
	}
	return &projectCtx{root: root, cfg: cfg}, nil
}

func hasYAMLExt(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	return ext == ".yaml" || ext == ".yml"
}

func checkDeckPath(p string) error {
	if !hasYAMLExt(p) {
		return fmt.Errorf("input must be a .yaml or .yml file, got %q", p)
	}
	return nil
}

// outputPath names the presentation after the deck: talk.yaml -> talk.pptx,
// next to the deck or inside outDir. A relative outDir is taken from the
// project root when there is one.
func outputPath(deckPath, outDir, root string) string {
	name := strings.TrimSuffix(filepath.Base(deckPath), filepath.Ext(deckPath)) + ".pptx"

	switch {
	case outDir == "":
		return filepath.Join(filepath.Dir(deckPath), name)
	case filepath.IsAbs(outDir):
		return filepath.Join(outDir, name)
	case root != "":
		return filepath.Join(root, outDir, name)
	default:
		return filepath.Join(filepath.Dir(deckPath), outDir, name)
	}
}

// writeAtomic writes through a temp file in the target directory and renames
// it into place only when write succeeds.
func writeAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{Op: "cli.output", Kind: domain.KindExecution, Path: dir, Err: err}
	}

	f, err := os.CreateTemp(dir, ".slidey-*.tmp")
	if err != nil {
		return &domain.OpError{Op: "cli.output", Kind: domain.KindExecution, Path: dir, Err: err}
	}
	tmp := f.Name()

	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "cli.output", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	// CreateTemp makes owner-only files.
	_ = os.Chmod(tmp, 0o644)
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "cli.output", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return nil
}
