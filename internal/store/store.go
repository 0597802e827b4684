// Package store implements the directory-backed project store. A Store owns
// the full set of projects under a single root directory: it builds the set
// by scanning the filesystem, keeps a denormalized tag index for
// autocompletion, and exposes the create, rename, modify, list, and open
// operations the CLI calls.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/mesh-intelligence/workbench/pkg/types"
)

// Store is built once per invocation by Load, mutated in place, and
// optionally consumed by Exec. It is not safe for concurrent use: the tool
// is single-process and single-user, and the store has exactly one caller
// for its whole lifetime.
type Store struct {
	root     string
	projects []*types.Project
	tags     types.TagSet
	log      *slog.Logger
}

// Load scans the immediate children of root and builds the store. A
// directory counts as a project only when it contains the sidecar file, so
// unrelated subdirectories never become projects.
//
// Load never fails outright. An unreadable or missing root yields an empty
// store plus a single ErrDirectoryRead entry; the caller can still proceed,
// and a later Create will recreate the root. Per-entry failures are
// recorded in the returned list and the entry skipped, so one broken
// project never hides the others. A sidecar that exists but does not parse
// is logged as a warning and skipped without an error entry. The returned
// list is advisory; the store is always usable afterwards.
func Load(root string) (*Store, []error) {
	s := &Store{
		root: root,
		tags: types.NewTagSet(),
		log:  slog.Default(),
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return s, []error{fmt.Errorf("%w: %s: %v", types.ErrDirectoryRead, root, err)}
	}

	var errs []error
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !utf8.ValidString(name) {
			errs = append(errs, fmt.Errorf("%w: non-UTF-8 directory name under %s", types.ErrDirectoryRead, root))
			continue
		}

		dir := filepath.Join(root, name)
		if _, err := os.Stat(filepath.Join(dir, types.SidecarFile)); err != nil {
			if os.IsNotExist(err) {
				// Not a project directory.
				continue
			}
			errs = append(errs, fmt.Errorf("%w: %s: %v", types.ErrDirectoryRead, dir, err))
			continue
		}

		info, err := entry.Info()
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %v", types.ErrDirectoryRead, dir, err))
			continue
		}

		p, err := types.LoadProject(dir, info.ModTime())
		if err != nil {
			if errors.Is(err, types.ErrCorruptSidecar) {
				s.log.Warn("skipping project with corrupt sidecar", "dir", dir, "error", err)
				continue
			}
			errs = append(errs, err)
			continue
		}

		s.tags.Merge(p.Tags)
		s.projects = append(s.projects, p)
	}
	return s, errs
}

// Root returns the store's base directory.
func (s *Store) Root() string {
	return s.root
}

// Path returns the directory a project named name occupies. Pure join, no
// I/O; every other operation uses it to locate project directories.
func (s *Store) Path(name string) string {
	return filepath.Join(s.root, name)
}

// Find returns the named project for in-place mutation, or an error
// wrapping ErrNonExistingProject.
func (s *Store) Find(name string) (*types.Project, error) {
	for _, p := range s.projects {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", types.ErrNonExistingProject, name)
}

// Projects returns copies of all projects sorted by order, so callers
// cannot corrupt store state through the returned values. Created and
// accessed sort most-recent-first; name sorts ascending. Name is the
// secondary key throughout, so equal timestamps still order
// deterministically.
func (s *Store) Projects(order string) []*types.Project {
	out := make([]*types.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p.Clone())
	}
	slices.SortStableFunc(out, compare(order))
	return out
}

func compare(order string) func(a, b *types.Project) int {
	byName := func(a, b *types.Project) int {
		return strings.Compare(a.Name, b.Name)
	}
	switch order {
	case types.SortName:
		return byName
	case types.SortCreated:
		return func(a, b *types.Project) int {
			if c := b.Created.Compare(a.Created); c != 0 {
				return c
			}
			return byName(a, b)
		}
	default:
		return func(a, b *types.Project) int {
			if c := b.Accessed.Compare(a.Accessed); c != 0 {
				return c
			}
			return byName(a, b)
		}
	}
}

// Tags returns a copy of the accumulated tag index: the union of every tag
// seen on any project since load. The index is never pruned when a tag
// falls out of use; it only grows, which is what autocompletion wants.
func (s *Store) Tags() types.TagSet {
	return s.tags.Clone()
}

// AddTag inserts a single tag into the index without touching any project.
// The interactive tag prompt records candidates here so they appear as
// suggestions for subsequent entries.
func (s *Store) AddTag(tag string) {
	s.tags.Add(tag)
}

// Search returns copies of projects whose name or any tag matches query
// exactly or by prefix, sorted by order. Matching is case-insensitive on
// the query side; tags are already lowercase.
func (s *Store) Search(query, order string) []*types.Project {
	q := strings.ToLower(query)
	var out []*types.Project
	for _, p := range s.Projects(order) {
		if strings.HasPrefix(strings.ToLower(p.Name), q) {
			out = append(out, p)
			continue
		}
		for tag := range p.Tags {
			if strings.HasPrefix(tag, q) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
