package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cimeta/cimeta/internal/models"
)

// Policy controls how Update behaves when tag history may be unavailable.
type Policy int

const (
	// Strict propagates every git failure during Update.
	Strict Policy = iota
	// TolerateMissingHistory swallows tag lookup failures on shallow
	// checkouts, leaving the tag fields at their defaults.
	TolerateMissingHistory
)

// defaultTweak keeps versions like 24.3.1.0 out of builds that have no tag
// information to derive the fourth component from.
const defaultTweak = 1

// Repo is a snapshot of version metadata for one checkout. A CI step opens
// it once and calls Update after anything that moves HEAD (checkout,
// commit, fetch).
type Repo struct {
	runner *Runner
	policy Policy

	SHA             string
	ShortSHA        string
	Branch          string
	LatestTag       models.Tag
	Description     string
	CommitsSinceTag int
}

// Open resolves the repository containing dir and reads its current state.
func Open(ctx context.Context, dir string, policy Policy) (*Repo, error) {
	r := &Repo{
		runner:      NewRunner(dir),
		policy:      policy,
		Description: "shallow-checkout",
	}
	if err := r.Update(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// Update re-reads the checkout state. Tag lookups on a shallow checkout are
// tolerated only under the TolerateMissingHistory policy; every other
// failure propagates.
func (r *Repo) Update(ctx context.Context) error {
	sha, err := r.runner.Run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return err
	}
	r.SHA = sha
	r.ShortSHA = sha
	if len(sha) > 11 {
		r.ShortSHA = sha[:11]
	}

	branch, err := r.runner.Run(ctx, "branch", "--show-current")
	if err != nil {
		return err
	}
	if branch == "" {
		branch = sha // detached HEAD
	}
	r.Branch = branch

	if r.policy == TolerateMissingHistory {
		shallow, err := r.runner.IsShallow(ctx)
		if err != nil {
			return err
		}
		if shallow {
			err := r.updateTags(ctx)
			if errors.Is(err, ErrProcess) {
				return nil // no tag info reachable, keep defaults
			}
			return err
		}
	}
	return r.updateTags(ctx)
}

func (r *Repo) updateTags(ctx context.Context) error {
	out, err := r.runner.Run(ctx, "describe", "--tags", "--abbrev=0")
	if err != nil {
		return err
	}
	tag, err := models.ParseTag(out)
	if err != nil {
		return err
	}
	r.LatestTag = tag

	// Format: {latest_tag}-{commits_since_tag}-g{short_sha}
	desc, err := r.runner.Run(ctx, "describe", "--tags", "--long")
	if err != nil {
		return err
	}
	r.Description = desc

	count, err := r.runner.Run(ctx, "rev-list", tag.String()+"..HEAD", "--count")
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(count)
	if err != nil {
		return fmt.Errorf("parse commit count %q: %w", count, err)
	}
	r.CommitsSinceTag = n
	return nil
}

// Tweak derives the fourth version component for the current state.
//
// Testing tags accumulate a monotonic build counter: the tag's own last
// version component plus the commits made since the tag. Other tags either
// carry their own last component (when HEAD is exactly the tagged commit)
// or fall back to the raw commit distance.
func (r *Repo) Tweak() (int, error) {
	if !r.LatestTag.IsTesting() {
		if r.CommitsSinceTag == 0 {
			// On the tagged commit the tweak must match the tag's own
			// value, and never be 0.
			n, err := lastVersionComponent(r.LatestTag)
			if err != nil {
				// No tag, or a tag with no parsable version.
				return defaultTweak, nil
			}
			return n, nil
		}
		return r.CommitsSinceTag, nil
	}

	n, err := lastVersionComponent(r.LatestTag)
	if err != nil {
		return 0, fmt.Errorf("testing tag %q: %w", r.LatestTag, err)
	}
	return n + r.CommitsSinceTag, nil
}

func lastVersionComponent(tag models.Tag) (int, error) {
	parts := strings.Split(tag.VersionPrefix(), ".")
	return strconv.Atoi(parts[len(parts)-1])
}
