// Package models defines the validated value types shared across cimeta:
// release tags, commit hashes, and release branch names.
package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidTagFormat    = errors.New("tag does not match the release tag pattern")
	ErrInvalidCommitFormat = errors.New("commit hash should contain exactly 40 hex characters")
	ErrInvalidBranchFormat = errors.New("release branch should look like 24.3")
)

// Release tags look like v24.3.1.2-stable: two-digit year, three non-zero
// version components, and a lifecycle suffix.
var tagPattern = regexp.MustCompile(`^v\d{2}\.[1-9]\d*\.[1-9]\d*\.[1-9]\d*-(testing|prestable|stable|lts)$`)

// Tag is a release tag name. The zero value means "no tag reachable".
// Any non-empty Tag built through ParseTag matches the release tag pattern.
type Tag string

// ParseTag validates s as a release tag. The empty string is accepted and
// represents the absence of a tag.
func ParseTag(s string) (Tag, error) {
	if s == "" {
		return "", nil
	}
	if !tagPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTagFormat, s)
	}
	return Tag(s), nil
}

func (t Tag) String() string {
	return string(t)
}

// IsTesting reports whether the tag carries the -testing lifecycle suffix.
func (t Tag) IsTesting() bool {
	return strings.HasSuffix(string(t), "-testing")
}

// VersionPrefix returns the numeric part of the tag, before the lifecycle
// suffix.
func (t Tag) VersionPrefix() string {
	prefix, _, _ := strings.Cut(string(t), "-")
	return prefix
}
