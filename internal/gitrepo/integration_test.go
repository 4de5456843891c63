package gitrepo

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/cimeta/cimeta/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initTestRepo creates a temporary git repo with an initial commit.
func initTestRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	ctx := context.Background()

	run(ctx, t, dir, "git", "init", "-b", "main")
	run(ctx, t, dir, "git", "config", "user.email", "ci@test.invalid")
	run(ctx, t, dir, "git", "config", "user.name", "CI Test")
	run(ctx, t, dir, "git", "config", "commit.gpgsign", "false")
	addCommit(t, dir, "initial")

	return dir
}

// run executes a command in the given directory and fails the test on error.
func run(ctx context.Context, t *testing.T, dir string, name string, args ...string) {
	t.Helper()
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("%s %v failed: %v\n%s", name, args, err, out)
	}
}

// addCommit appends to a file and commits the change.
func addCommit(t *testing.T, dir, msg string) {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(dir, "notes.txt")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString(msg + "\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	run(ctx, t, dir, "git", "add", "-A")
	run(ctx, t, dir, "git", "commit", "-m", msg)
}

var shaPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)

func TestOpen_ReadsState(t *testing.T) {
	ctx := context.Background()
	dir := initTestRepo(t)
	run(ctx, t, dir, "git", "tag", "v24.1.1.5-stable")

	repo, err := Open(ctx, dir, Strict)
	require.NoError(t, err)

	assert.Regexp(t, shaPattern, repo.SHA)
	assert.Equal(t, repo.SHA[:11], repo.ShortSHA)
	assert.Equal(t, "main", repo.Branch)
	assert.Equal(t, models.Tag("v24.1.1.5-stable"), repo.LatestTag)
	assert.Equal(t, 0, repo.CommitsSinceTag)
	assert.True(t, strings.HasPrefix(repo.Description, "v24.1.1.5-stable-0-g"))

	tweak, err := repo.Tweak()
	require.NoError(t, err)
	assert.Equal(t, 5, tweak)
}

func TestUpdate_AfterCommits(t *testing.T) {
	ctx := context.Background()
	dir := initTestRepo(t)
	run(ctx, t, dir, "git", "tag", "v24.1.1.5-stable")

	repo, err := Open(ctx, dir, Strict)
	require.NoError(t, err)
	before := repo.SHA

	addCommit(t, dir, "one")
	addCommit(t, dir, "two")
	require.NoError(t, repo.Update(ctx))

	assert.NotEqual(t, before, repo.SHA)
	assert.Equal(t, 2, repo.CommitsSinceTag)

	// Ahead of a non-testing tag the tweak is the raw commit distance.
	tweak, err := repo.Tweak()
	require.NoError(t, err)
	assert.Equal(t, 2, tweak)
}

func TestUpdate_TestingTagAccumulates(t *testing.T) {
	ctx := context.Background()
	dir := initTestRepo(t)
	run(ctx, t, dir, "git", "tag", "v24.1.1.5-testing")
	addCommit(t, dir, "one")
	addCommit(t, dir, "two")
	addCommit(t, dir, "three")

	repo, err := Open(ctx, dir, Strict)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.CommitsSinceTag)

	tweak, err := repo.Tweak()
	require.NoError(t, err)
	assert.Equal(t, 8, tweak)
}

func TestUpdate_DetachedHead(t *testing.T) {
	ctx := context.Background()
	dir := initTestRepo(t)
	run(ctx, t, dir, "git", "tag", "v24.1.1.1-stable")
	run(ctx, t, dir, "git", "checkout", "--detach")

	repo, err := Open(ctx, dir, Strict)
	require.NoError(t, err)
	assert.Equal(t, repo.SHA, repo.Branch)
}

func TestOpen_NoTagsStrict(t *testing.T) {
	ctx := context.Background()
	dir := initTestRepo(t)

	_, err := Open(ctx, dir, Strict)
	assert.ErrorIs(t, err, ErrProcess)
}

func TestOpen_NonConformingTag(t *testing.T) {
	ctx := context.Background()
	dir := initTestRepo(t)
	run(ctx, t, dir, "git", "tag", "release-candidate")

	_, err := Open(ctx, dir, Strict)
	assert.ErrorIs(t, err, models.ErrInvalidTagFormat)
}

func TestRunner_RootFromSubdirectory(t *testing.T) {
	ctx := context.Background()
	dir := initTestRepo(t)
	sub := filepath.Join(dir, "sub", "dir")
	require.NoError(t, os.MkdirAll(sub, 0755))

	root, err := NewRunner(sub).Root(ctx)
	require.NoError(t, err)

	want, err := filepath.Abs(dir)
	require.NoError(t, err)
	assert.Equal(t, want, root)
}

func TestRunner_Tags(t *testing.T) {
	ctx := context.Background()
	dir := initTestRepo(t)
	run(ctx, t, dir, "git", "tag", "v24.1.1.1-stable")
	run(ctx, t, dir, "git", "tag", "v24.2.1.1-testing")

	tags, err := NewRunner(dir).Tags(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"v24.1.1.1-stable", "v24.2.1.1-testing"}, tags)
}

// shallowClone makes a depth-1 clone whose tag history is unreachable: the
// tag points at a commit the clone does not have.
func shallowClone(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	origin := initTestRepo(t)
	run(ctx, t, origin, "git", "tag", "v24.1.1.5-stable")
	addCommit(t, origin, "past the tag")

	dest := filepath.Join(t.TempDir(), "clone")
	run(ctx, t, origin, "git", "clone", "--depth", "1", "file://"+origin, dest)
	return dest
}

func TestShallow_TagsFails(t *testing.T) {
	ctx := context.Background()
	dir := shallowClone(t)

	shallow, err := NewRunner(dir).IsShallow(ctx)
	require.NoError(t, err)
	require.True(t, shallow)

	_, err = NewRunner(dir).Tags(ctx)
	assert.ErrorIs(t, err, ErrShallowRepository)
}

func TestShallow_StrictPropagates(t *testing.T) {
	ctx := context.Background()
	dir := shallowClone(t)

	_, err := Open(ctx, dir, Strict)
	assert.ErrorIs(t, err, ErrProcess)
}

func TestShallow_TolerateMissingHistoryKeepsDefaults(t *testing.T) {
	ctx := context.Background()
	dir := shallowClone(t)

	repo, err := Open(ctx, dir, TolerateMissingHistory)
	require.NoError(t, err)

	assert.Regexp(t, shaPattern, repo.SHA)
	assert.Equal(t, models.Tag(""), repo.LatestTag)
	assert.Equal(t, 0, repo.CommitsSinceTag)
	assert.Equal(t, "shallow-checkout", repo.Description)

	tweak, err := repo.Tweak()
	require.NoError(t, err)
	assert.Equal(t, 1, tweak)
}
