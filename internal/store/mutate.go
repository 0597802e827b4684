package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mesh-intelligence/workbench/pkg/types"
)

// Create makes a new project directory under the root and persists its
// sidecar. The name must not collide with an existing project. Creating the
// directory also recreates a missing root, which is how a failed Load stays
// recoverable. The .gitignore append is best-effort: it must never block
// creation, so failures there are only logged. If persisting the sidecar
// fails the project is not added to the in-memory set, leaving the store
// consistent with what is actually on disk.
func (s *Store) Create(name string, tags types.TagSet) error {
	if _, err := s.Find(name); err == nil {
		return fmt.Errorf("%w: project %q already exists", types.ErrProjectWrite, name)
	}
	if tags == nil {
		tags = types.NewTagSet()
	}

	dir := s.Path(name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", types.ErrDirectoryWrite, dir, err)
	}
	s.appendGitignore(dir)

	s.tags.Merge(tags)
	p := types.NewProject(name, time.Now(), tags.Clone())
	if err := p.Persist(dir); err != nil {
		return err
	}
	s.projects = append(s.projects, p)
	return nil
}

// appendGitignore adds the sidecar filename to the project's .gitignore so
// the metadata stays out of version control.
func (s *Store) appendGitignore(dir string) {
	path := filepath.Join(dir, ".gitignore")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		s.log.Warn("could not update project gitignore", "path", path, "error", err)
		return
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, types.SidecarFile); err != nil {
		s.log.Warn("could not update project gitignore", "path", path, "error", err)
	}
}

// Rename moves a project's backing directory and updates the in-memory
// name. The directory rename happens first: if it fails the store is left
// untouched. A successful rename re-persists the sidecar at the new path,
// which also refreshes the accessed time.
func (s *Store) Rename(src, dst string) error {
	p, err := s.Find(src)
	if err != nil {
		return err
	}

	dstDir := s.Path(dst)
	if _, err := os.Stat(dstDir); err == nil {
		return fmt.Errorf("%w: %s already exists", types.ErrDirectoryWrite, dstDir)
	}

	srcDir := s.Path(src)
	if err := os.Rename(srcDir, dstDir); err != nil {
		return fmt.Errorf("%w: rename %s to %s: %v", types.ErrProjectWrite, srcDir, dstDir, err)
	}

	p.Rename(dst)
	return p.Persist(dstDir)
}

// Modify replaces the named project's tag set wholesale and persists. The
// new tags are merged into the store index; tags the project drops remain
// in the index, which accumulates and is never pruned.
func (s *Store) Modify(name string, tags types.TagSet) error {
	p, err := s.Find(name)
	if err != nil {
		return err
	}
	if tags == nil {
		tags = types.NewTagSet()
	}

	p.Retag(tags.Clone())
	s.tags.Merge(tags)
	return p.Persist(s.Path(name))
}
