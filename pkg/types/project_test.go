package types

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// projectDir creates a directory named name under a fresh temp root.
func projectDir(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.Mkdir(dir, 0o755))
	return dir
}

func TestPersistAndLoadRoundTrip(t *testing.T) {
	dir := projectDir(t, "proj0")

	p := NewProject("proj0", time.Now(), NewTagSet("rust", "cli"))
	require.NoError(t, p.Persist(dir))

	loaded, err := LoadProject(dir, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, "proj0", loaded.Name)
	assert.True(t, loaded.Tags.Equal(p.Tags), "tags should round-trip: %s != %s", loaded.Tags, p.Tags)
	// The sidecar layout keeps seven decimal digits, so timestamps survive
	// to 100ns precision.
	assert.WithinDuration(t, p.Created, loaded.Created, time.Microsecond)
	assert.WithinDuration(t, p.Accessed, loaded.Accessed, time.Microsecond)
}

func TestPersistRefreshesAccessed(t *testing.T) {
	dir := projectDir(t, "proj0")

	created := time.Now().Add(-time.Hour)
	p := NewProject("proj0", created, NewTagSet())
	before := time.Now()
	require.NoError(t, p.Persist(dir))

	assert.False(t, p.Accessed.Before(before), "Persist should refresh Accessed to now")
	assert.Equal(t, created, p.Created, "Persist must not touch Created")

	loaded, err := LoadProject(dir, time.Time{})
	require.NoError(t, err)
	assert.False(t, loaded.Accessed.Before(before.Truncate(time.Microsecond)))
}

func TestLoadProjectMissingFields(t *testing.T) {
	t.Run("falls back to directory time", func(t *testing.T) {
		dir := projectDir(t, "bare")
		require.NoError(t, os.WriteFile(filepath.Join(dir, SidecarFile), []byte(`{}`), 0o644))

		dirTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		p, err := LoadProject(dir, dirTime)
		require.NoError(t, err)

		assert.Equal(t, "bare", p.Name)
		assert.Equal(t, dirTime, p.Created)
		assert.Equal(t, dirTime, p.Accessed)
		assert.Empty(t, p.Tags)
	})

	t.Run("falls back to epoch without directory time", func(t *testing.T) {
		dir := projectDir(t, "bare")
		require.NoError(t, os.WriteFile(filepath.Join(dir, SidecarFile), []byte(`{}`), 0o644))

		p, err := LoadProject(dir, time.Time{})
		require.NoError(t, err)

		assert.Equal(t, time.Unix(0, 0).UTC(), p.Created)
		assert.Equal(t, time.Unix(0, 0).UTC(), p.Accessed)
	})

	t.Run("partial sidecar keeps present fields", func(t *testing.T) {
		dir := projectDir(t, "partial")
		payload := `{"tags":["go"]}`
		require.NoError(t, os.WriteFile(filepath.Join(dir, SidecarFile), []byte(payload), 0o644))

		dirTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		p, err := LoadProject(dir, dirTime)
		require.NoError(t, err)

		assert.True(t, p.Tags.Has("go"))
		assert.Equal(t, dirTime, p.Created)
	})
}

func TestLoadProjectErrors(t *testing.T) {
	t.Run("missing sidecar wraps ErrProjectRead", func(t *testing.T) {
		dir := projectDir(t, "empty")
		_, err := LoadProject(dir, time.Time{})
		assert.ErrorIs(t, err, ErrProjectRead)
	})

	t.Run("invalid JSON wraps ErrCorruptSidecar", func(t *testing.T) {
		dir := projectDir(t, "broken")
		require.NoError(t, os.WriteFile(filepath.Join(dir, SidecarFile), []byte("not json"), 0o644))

		_, err := LoadProject(dir, time.Time{})
		assert.ErrorIs(t, err, ErrCorruptSidecar)
		assert.False(t, errors.Is(err, ErrProjectRead))
	})
}

func TestProjectClone(t *testing.T) {
	p := NewProject("proj0", time.Now(), NewTagSet("rust"))
	c := p.Clone()

	c.Rename("other")
	c.Tags.Add("extra")

	assert.Equal(t, "proj0", p.Name)
	assert.False(t, p.Tags.Has("extra"), "clone must not share the tag set")
}

func TestProjectString(t *testing.T) {
	p := NewProject("proj0", time.Now(), NewTagSet("rust", "cli"))
	assert.Equal(t, "proj0: cli, rust", p.String())

	p = NewProject("bare", time.Now(), NewTagSet())
	assert.Equal(t, "bare", p.String())
}
