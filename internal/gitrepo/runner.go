// Package gitrepo reads version metadata from a git checkout by shelling out
// to the git CLI: current commit, branch, nearest release tag, and the
// derived tweak (fourth version component) used to number CI builds.
package gitrepo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
)

var (
	// ErrProcess wraps a git invocation that exited non-zero or could not run.
	ErrProcess = errors.New("git command failed")

	// ErrShallowRepository marks an operation that needs full history but was
	// attempted on a shallow checkout.
	ErrShallowRepository = errors.New("attempt to run on a shallow repository")
)

// Runner executes git commands inside one repository checkout. The
// repository root is resolved lazily on first use and cached for the
// lifetime of the runner.
type Runner struct {
	dir  string
	root string
}

// NewRunner returns a Runner for the repository containing dir.
func NewRunner(dir string) *Runner {
	return &Runner{dir: dir}
}

// Root returns the absolute path of the repository root, resolving it on
// first call via `git rev-parse --show-cdup`.
func (r *Runner) Root(ctx context.Context) (string, error) {
	if r.root != "" {
		return r.root, nil
	}
	cdup, err := r.runIn(ctx, r.dir, "rev-parse", "--show-cdup")
	if err != nil {
		return "", err
	}
	root, err := filepath.Abs(filepath.Join(r.dir, cdup))
	if err != nil {
		return "", err
	}
	r.root = root
	return r.root, nil
}

// Run executes a git command at the repository root and returns its output
// with surrounding whitespace stripped.
func (r *Runner) Run(ctx context.Context, args ...string) (string, error) {
	root, err := r.Root(ctx)
	if err != nil {
		return "", err
	}
	return r.runIn(ctx, root, args...)
}

func (r *Runner) runIn(ctx context.Context, dir string, args ...string) (string, error) {
	slog.Debug("running git", "args", args, "dir", dir)
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: git %s: %v: %s",
			ErrProcess, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// IsShallow reports whether the checkout has truncated history.
func (r *Runner) IsShallow(ctx context.Context) (bool, error) {
	out, err := r.Run(ctx, "rev-parse", "--is-shallow-repository")
	if err != nil {
		return false, err
	}
	return out == "true", nil
}

// Tags returns every tag in the repository. Listing tags on a shallow
// checkout would silently miss history, so it fails instead.
func (r *Runner) Tags(ctx context.Context) ([]string, error) {
	shallow, err := r.IsShallow(ctx)
	if err != nil {
		return nil, err
	}
	if shallow {
		return nil, ErrShallowRepository
	}
	out, err := r.Run(ctx, "tag")
	if err != nil {
		return nil, err
	}
	return strings.Fields(out), nil
}
