// Shared helpers for wb subcommands.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mesh-intelligence/workbench/internal/store"
	"github.com/mesh-intelligence/workbench/pkg/types"
)

// loadStore resolves the projects root and loads the store. Load errors are
// advisory, so they are printed to stderr and the degraded store is still
// returned.
func loadStore() (*store.Store, error) {
	root, err := resolveRoot()
	if err != nil {
		return nil, err
	}

	st, loadErrs := store.Load(root)
	for _, e := range loadErrs {
		fmt.Fprintln(os.Stderr, warnStyle.Render("warning:"), e)
	}
	return st, nil
}

// fail prints the error and exits. Unknown-project errors are the user's
// mistake; everything else is a system failure.
func fail(err error) {
	fmt.Fprintln(os.Stderr, failStyle.Render("error:"), err)
	if errors.Is(err, types.ErrNonExistingProject) {
		os.Exit(exitUserError)
	}
	os.Exit(exitSysError)
}

// parseTags builds a tag set from a comma-separated flag value. Tags are
// lowercased; whitespace inside a tag is rejected.
func parseTags(csv string) (types.TagSet, error) {
	tags := types.NewTagSet()
	if csv == "" {
		return tags, nil
	}
	for _, raw := range strings.Split(csv, ",") {
		tag := types.NormalizeTag(raw)
		if !types.ValidTag(tag) {
			return nil, fmt.Errorf("invalid tag %q: tags must be non-empty and contain no whitespace", raw)
		}
		tags.Add(tag)
	}
	return tags, nil
}

// chooseTags runs the interactive tag entry loop. Entering a tag the set
// already contains removes it; a new tag is added and also recorded in the
// store index so it shows up as a suggestion for later entries. An empty
// line or an abort finishes the loop.
func chooseTags(st *store.Store, tags types.TagSet) error {
	for {
		var tag string
		input := huh.NewInput().
			Title("Tag to add or remove").
			Description(fmt.Sprintf("current: [%s] (empty line finishes)", tags)).
			Suggestions(st.Tags().Sorted()).
			Validate(func(s string) error {
				if s != "" && !types.ValidTag(types.NormalizeTag(s)) {
					return errors.New("tag must not contain whitespace")
				}
				return nil
			}).
			Value(&tag)

		if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		tag = types.NormalizeTag(tag)
		if tag == "" {
			return nil
		}
		if tags.Has(tag) {
			tags.Remove(tag)
		} else {
			st.AddTag(tag)
			tags.Add(tag)
		}
	}
}

// promptText asks for a single line of free-form text.
func promptText(title string, value *string) error {
	input := huh.NewInput().Title(title).Value(value)
	return huh.NewForm(huh.NewGroup(input)).Run()
}

// selectProject prompts the user to pick one of the store's projects,
// listed in the given order, and returns its name.
func selectProject(st *store.Store, order string, invert bool) (string, error) {
	projects := st.Projects(order)
	if len(projects) == 0 {
		return "", errors.New("no projects found")
	}
	if invert {
		for i, j := 0, len(projects)-1; i < j; i, j = i+1, j-1 {
			projects[i], projects[j] = projects[j], projects[i]
		}
	}

	options := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		options = append(options, huh.NewOption(p.String(), p.Name))
	}

	var name string
	sel := huh.NewSelect[string]().
		Title("Choose a project").
		Options(options...).
		Value(&name)
	if err := huh.NewForm(huh.NewGroup(sel)).Run(); err != nil {
		return "", err
	}
	return name, nil
}

// listOrder maps the shared ordering flags to a sort order.
func listOrder(byCreated, byName bool) string {
	switch {
	case byCreated:
		return types.SortCreated
	case byName:
		return types.SortName
	default:
		return types.SortAccessed
	}
}
