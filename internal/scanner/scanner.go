package scanner

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/time/rate"

	"scar/internal/config"
	coreerrors "scar/internal/core/errors"
	"scar/internal/shared/observability"
)

// Scanner discovers C/C++ source and header files below a project root.
// Paths come back canonical (absolute, symlinks resolved), deduplicated
// and sorted, so downstream phases see a deterministic file set.
type Scanner struct {
	root       string
	extensions map[string]bool
	dirGlobs   []glob.Glob
	fileGlobs  []glob.Glob
	progress   *rate.Limiter
}

func New(root string, cfg *config.Config) (*Scanner, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, coreerrors.Wrap(err, coreerrors.CodeInvalidProjectPath, "project path not accessible")
	}
	if !info.IsDir() {
		return nil, coreerrors.New(coreerrors.CodeInvalidProjectPath,
			fmt.Sprintf("project path %q is not a directory", root))
	}

	canonical, err := canonicalize(root)
	if err != nil {
		return nil, coreerrors.Wrap(err, coreerrors.CodeInvalidProjectPath, "canonicalize project path")
	}

	s := &Scanner{
		root:       canonical,
		extensions: make(map[string]bool, len(cfg.Extensions)),
		// Progress lines at most once a second, whatever the tree size.
		progress: rate.NewLimiter(rate.Limit(1), 1),
	}
	for _, ext := range cfg.Extensions {
		s.extensions[ext] = true
	}

	for _, p := range cfg.Exclude.Dirs {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude dir pattern %q: %w", p, err)
		}
		s.dirGlobs = append(s.dirGlobs, g)
	}
	for _, p := range cfg.Exclude.Files {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude file pattern %q: %w", p, err)
		}
		s.fileGlobs = append(s.fileGlobs, g)
	}

	return s, nil
}

func (s *Scanner) Root() string {
	return s.root
}

func (s *Scanner) Scan() ([]string, error) {
	seen := make(map[string]bool)
	processed := 0

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// A vanished or unreadable entry degrades the walk, not the run.
			slog.Warn("skipping unreadable entry", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		base := filepath.Base(path)
		if d.IsDir() {
			if path != s.root && strings.HasPrefix(base, ".") {
				return filepath.SkipDir
			}
			for _, g := range s.dirGlobs {
				if g.Match(base) {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if strings.HasPrefix(base, ".") {
			return nil
		}
		if !s.extensions[strings.ToLower(filepath.Ext(base))] {
			return nil
		}
		for _, g := range s.fileGlobs {
			if g.Match(base) {
				return nil
			}
		}

		canonical, cerr := canonicalize(path)
		if cerr != nil {
			slog.Warn("failed to canonicalize path", "path", path, "error", cerr)
			return nil
		}
		seen[canonical] = true

		processed++
		if s.progress.Allow() {
			slog.Info("scan progress", "files", processed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(seen))
	for p := range seen {
		files = append(files, p)
	}
	sort.Strings(files)

	observability.FilesScannedTotal.Add(float64(len(files)))
	return files, nil
}

// canonicalize maps a path to its unique identity: absolute, cleaned,
// symlinks resolved. Aliased paths collapse to one node this way.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	return resolved, nil
}

// Canonicalize is the exported form used by resolution and the watcher.
func Canonicalize(path string) (string, error) {
	return canonicalize(path)
}
