package store

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/mesh-intelligence/workbench/pkg/types"
)

// PathToken is the placeholder in command templates that Exec replaces with
// the absolute project directory path.
const PathToken = "{}"

// Exec opens a project: it refreshes and persists the project's metadata,
// then spawns cmd inside the project directory and waits for it to exit.
// When cmd is empty, defaultExecutor is used instead. Every occurrence of
// PathToken in the chosen command is replaced with the project path, and
// the result is split on single spaces into argv; there is no shell
// quoting.
//
// Exec consumes the store. The child may run for an arbitrarily long time,
// so all project and tag state is released before the blocking wait rather
// than kept resident behind it. The store must not be used after Exec
// returns. The child's exit status is not treated as an error; only a
// failure to spawn or wait is.
func (s *Store) Exec(name, defaultExecutor, cmd string) error {
	p, err := s.Find(name)
	if err != nil {
		return err
	}

	dir := s.Path(name)
	if !utf8.ValidString(dir) {
		return fmt.Errorf("%w: non-UTF-8 project path under %s", types.ErrDirectoryRead, s.root)
	}

	if err := p.Persist(dir); err != nil {
		return err
	}

	// Ownership handoff: drop everything before blocking on the child.
	s.projects = nil
	s.tags = nil

	if cmd == "" {
		cmd = defaultExecutor
	}
	cmd = strings.ReplaceAll(cmd, PathToken, dir)
	argv := strings.Split(cmd, " ")

	child := exec.Command(argv[0], argv[1:]...)
	child.Dir = dir
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	if err := child.Start(); err != nil {
		return fmt.Errorf("start %q in %s: %v", argv[0], dir, err)
	}
	if err := child.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("wait for %q: %v", argv[0], err)
		}
	}
	return nil
}
