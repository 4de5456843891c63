package models

import (
	"fmt"
	"regexp"
)

var (
	commitPattern        = regexp.MustCompile(`^[0-9a-f]{40}$`)
	releaseBranchPattern = regexp.MustCompile(`^\d+\.\d+$`)
)

// CheckCommit validates a full commit hash argument.
func CheckCommit(s string) error {
	if !commitPattern.MatchString(s) {
		return fmt.Errorf("%w: %q", ErrInvalidCommitFormat, s)
	}
	return nil
}

// CheckReleaseBranch validates a release branch argument such as "24.3".
func CheckReleaseBranch(s string) error {
	if !releaseBranchPattern.MatchString(s) {
		return fmt.Errorf("%w: %q", ErrInvalidBranchFormat, s)
	}
	return nil
}
