package prompt

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/HumanBot000/BoilerGen/pkg/navigator"
	"github.com/HumanBot000/BoilerGen/pkg/templates"
	"github.com/spf13/afero"
)

// Navigate runs the template selection loop until the user finishes.
// withDependencies is passed on to navigator.Finalize.
func Navigate(ctx context.Context, d Driver, fs afero.Fs, catalog *templates.Catalog, sym navigator.Symbols, withDependencies bool) (navigator.Result, error) {
	byID := catalog.Map()
	state := navigator.New(catalog.Root)

	for {
		listing, err := templates.List(fs, state.Current)
		if err != nil {
			return navigator.Result{}, err
		}

		entries := make([]navigator.Entry, 0, len(listing.Templates))
		for _, name := range listing.Templates {
			t, ok := catalog.ByPath(filepath.Join(state.Current, name))
			if !ok {
				continue
			}
			entries = append(entries, navigator.Entry{Name: name, ID: t.ID, Label: t.Label})
		}

		choices := navigator.Choices(state, listing.Groups, entries, sym)
		options := make([]string, len(choices))
		for i, c := range choices {
			options[i] = c.Label
		}

		message := state.Breadcrumb()
		if state.Notice != "" {
			message = state.Notice + "\n" + message
		}

		idx, err := d.Select(ctx, SelectConfig{Message: message, Options: options, PageSize: 15})
		if err != nil {
			return navigator.Result{}, err
		}
		if idx < 0 || idx >= len(choices) {
			return navigator.Result{}, errors.Newf(errors.ErrInvalidInput, "selection %d out of range", idx)
		}

		var directive navigator.Directive
		state, directive = navigator.Update(state, choices[idx].Event, byID)
		switch directive {
		case navigator.Done:
			return navigator.Finalize(state, byID, withDependencies), nil
		case navigator.Abort:
			return navigator.Result{}, errors.New(errors.ErrAborted, "operation cancelled by user")
		}
	}
}

// AskOutputDir asks where to generate, defaulting to def
func AskOutputDir(ctx context.Context, d Driver, def string) (string, error) {
	return d.Input(ctx, InputConfig{
		Message: "Where do you want to generate the output?",
		Default: def,
	})
}

// Confirmer asks before the output directory is created
type Confirmer struct {
	Driver Driver
}

// ConfirmCreate implements the pipeline's creation check
func (c *Confirmer) ConfirmCreate(ctx context.Context, dir string) (bool, error) {
	return c.Driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Output directory '%s' does not exist. Do you want to create it?", dir),
		Default: true,
	})
}
