package types

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SidecarFile is the metadata file whose presence marks a directory as a
// project. It lives at the root of the project directory.
const SidecarFile = ".project.json"

// Sort orders accepted by Store.Projects. Created and accessed order
// most-recent-first; name orders ascending.
const (
	SortCreated  = "created"
	SortAccessed = "accessed"
	SortName     = "name"
)

// Project represents one tracked project directory and its metadata. The
// sidecar file on disk is the durable source of truth; a Project is an
// in-memory cache of it and must be re-persisted after every field mutation.
// Name always equals the basename of the backing directory.
type Project struct {
	Name     string
	Created  time.Time // set once at creation, never updated afterwards
	Accessed time.Time // refreshed on every open or metadata mutation
	Tags     TagSet
}

// NewProject returns a project with Created and Accessed both set to now.
func NewProject(name string, now time.Time, tags TagSet) *Project {
	if tags == nil {
		tags = NewTagSet()
	}
	return &Project{
		Name:     name,
		Created:  now,
		Accessed: now,
		Tags:     tags,
	}
}

// Clone returns an independent copy of the project.
func (p *Project) Clone() *Project {
	return &Project{
		Name:     p.Name,
		Created:  p.Created,
		Accessed: p.Accessed,
		Tags:     p.Tags.Clone(),
	}
}

// Rename updates the in-memory name. The caller is responsible for the
// matching directory rename and for persisting.
func (p *Project) Rename(name string) {
	p.Name = name
}

// Retag replaces the tag set wholesale. The caller persists.
func (p *Project) Retag(tags TagSet) {
	p.Tags = tags
}

// String renders "name: tag, tag", the display form used by selection
// prompts.
func (p *Project) String() string {
	if len(p.Tags) == 0 {
		return p.Name
	}
	return fmt.Sprintf("%s: %s", p.Name, p.Tags)
}

// sidecar is the JSON shape of the sidecar file. All fields are optional on
// read; LoadProject reconciles missing ones.
type sidecar struct {
	Created  *Timestamp `json:"created,omitempty"`
	Accessed *Timestamp `json:"accessed,omitempty"`
	Tags     TagSet     `json:"tags,omitempty"`
}

// Persist writes the project's metadata to dir's sidecar file, refreshing
// Accessed to the current time first. That refresh is how last-opened
// tracking works: every open or mutation ends in a Persist. A failed write
// wraps ErrProjectWrite.
func (p *Project) Persist(dir string) error {
	p.Accessed = time.Now()
	payload := sidecar{
		Created:  &Timestamp{p.Created},
		Accessed: &Timestamp{p.Accessed},
		Tags:     p.Tags,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encode metadata for %s: %v", ErrProjectWrite, dir, err)
	}
	path := filepath.Join(dir, SidecarFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrProjectWrite, path, err)
	}
	return nil
}

// LoadProject reads the sidecar file in dir and reconstructs the project
// named after dir's basename. Missing created or accessed fields fall back
// to the directory metadata time the caller supplies, then to the Unix
// epoch; a missing tags field yields an empty set. An unreadable file wraps
// ErrProjectRead; a file that does not parse wraps ErrCorruptSidecar so the
// caller can skip the entry with a warning instead of aborting a scan.
func LoadProject(dir string, dirTime time.Time) (*Project, error) {
	path := filepath.Join(dir, SidecarFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrProjectRead, path, err)
	}

	var sc sidecar
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptSidecar, path, err)
	}

	p := &Project{Name: filepath.Base(dir), Tags: sc.Tags}
	if p.Tags == nil {
		p.Tags = NewTagSet()
	}
	if sc.Created != nil {
		p.Created = sc.Created.Time
	}
	if sc.Accessed != nil {
		p.Accessed = sc.Accessed.Time
	}

	fallback := dirTime
	if fallback.IsZero() {
		fallback = time.Unix(0, 0).UTC()
	}
	if p.Created.IsZero() {
		p.Created = fallback
	}
	if p.Accessed.IsZero() {
		p.Accessed = fallback
	}
	return p, nil
}
