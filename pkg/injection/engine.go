// Package injection splices fragments declared by one template into files
// generated by another.
package injection

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/HumanBot000/BoilerGen/pkg/logging"
	"github.com/HumanBot000/BoilerGen/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	priorityLine = iota
	priorityTag
	priorityUnresolved
)

// Engine applies injections to generated files under an output root
type Engine struct {
	fs         afero.Fs
	outputRoot string
	logger     zerolog.Logger
}

// NewEngine creates an Engine working on fs
func NewEngine(fs afero.Fs, outputRoot string) *Engine {
	return &Engine{
		fs:         fs,
		outputRoot: outputRoot,
		logger:     logging.GetLogger("injection"),
	}
}

// target collects the injections of one output file
type target struct {
	path       string
	file       *types.TemplateFile
	injections []types.Injection
}

// Run applies injections against files, which must already be written.
// Identical declarations are applied once. Per target file all line
// anchors apply first in ascending line order, then tag anchors by the
// current start line of their tag. An anchor tag the file lacks is skipped.
func (e *Engine) Run(ctx context.Context, files []*types.TemplateFile, injections []types.Injection) error {
	selected := make(map[string]bool)
	for _, f := range files {
		selected[f.TemplateID] = true
	}

	targets, err := e.group(files, Dedup(injections), selected)
	if err != nil {
		return err
	}

	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.apply(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

// Dedup drops repeated injections, keeping the first occurrence in order
func Dedup(injections []types.Injection) []types.Injection {
	seen := make(map[types.Injection]bool, len(injections))
	out := make([]types.Injection, 0, len(injections))
	for _, inj := range injections {
		if seen[inj] {
			continue
		}
		seen[inj] = true
		out = append(out, inj)
	}
	return out
}

// TargetPath is the output path an injection writes to
func (e *Engine) TargetPath(inj types.Injection) string {
	return filepath.Clean(filepath.Join(e.outputRoot, inj.TargetFile))
}

func (e *Engine) group(files []*types.TemplateFile, injections []types.Injection, selected map[string]bool) ([]*target, error) {
	byPath := make(map[string]*target)
	var ordered []*target

	for _, inj := range injections {
		if !selected[inj.TargetTemplateID] {
			e.logger.Info().
				Str("target", inj.TargetTemplateID).
				Str("file", inj.TargetFile).
				Str("from", inj.SourceFile).
				Msg("Skipping injection into a template that is not selected")
			continue
		}

		path := e.TargetPath(inj)
		t, ok := byPath[path]
		if !ok {
			t = &target{path: path, file: fileAt(files, path)}
			if _, err := e.fs.Stat(path); err != nil {
				if os.IsNotExist(err) {
					return nil, errors.Newf(errors.ErrFileNotFound, "injection target %s does not exist", inj.TargetFile).
						WithDetail("path", path).
						WithDetail("target", inj.TargetTemplateID)
				}
				return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access injection target %s", path)
			}
			byPath[path] = t
			ordered = append(ordered, t)
		}
		t.injections = append(t.injections, inj)
	}

	return ordered, nil
}

// fileAt returns the last generated file written to path. Later files
// overwrite earlier ones, so the last one owns the tags on disk.
func fileAt(files []*types.TemplateFile, path string) *types.TemplateFile {
	var found *types.TemplateFile
	for _, f := range files {
		if filepath.Clean(f.DestinationPath) == path {
			found = f
		}
	}
	return found
}

func (e *Engine) apply(ctx context.Context, t *target) error {
	content, err := afero.ReadFile(e.fs, t.path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read injection target %s", t.path)
	}

	var tags []types.Tag
	if t.file != nil {
		tags = t.file.Tags
	}
	arena := NewArena(string(content), tags)

	Order(arena, t.injections)

	applied := 0
	for _, inj := range t.injections {
		if err := ctx.Err(); err != nil {
			return err
		}

		fragment, err := e.readFragment(inj)
		if err != nil {
			return err
		}

		ok, err := arena.Apply(inj.Anchor, inj.Method, fragment)
		if err != nil {
			return err
		}
		if !ok {
			e.logger.Warn().
				Str("target", t.path).
				Str("tag", inj.Anchor.Tag).
				Str("from", inj.SourceFile).
				Msg("Injection anchor tag not found, skipping")
			continue
		}
		applied++
	}

	if err := afero.WriteFile(e.fs, t.path, []byte(arena.String()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write injection target %s", t.path)
	}
	if t.file != nil {
		t.file.Tags = arena.Tags()
	}

	e.logger.Debug().Str("target", t.path).Int("applied", applied).Int("declared", len(t.injections)).Msg("Injections applied")
	return nil
}

func (e *Engine) readFragment(inj types.Injection) ([]string, error) {
	path := filepath.Join(inj.SourceDefinitionDir, inj.SourceFile)
	data, err := afero.ReadFile(e.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrFileNotFound, "injection fragment %s does not exist", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read injection fragment %s", path)
	}
	return splitLines(string(data)), nil
}

// Order sorts injections for one target in place: line anchors ascending,
// then tag anchors by their tag's start line in arena, then anchors whose
// tag is missing. Ties keep declaration order.
func Order(arena *Arena, injections []types.Injection) {
	key := func(inj types.Injection) (int, int) {
		if !inj.Anchor.IsTag() {
			return priorityLine, inj.Anchor.Line
		}
		if tag, ok := arena.Tag(inj.Anchor.Tag); ok {
			return priorityTag, tag.LineStart
		}
		return priorityUnresolved, 0
	}

	sort.SliceStable(injections, func(i, j int) bool {
		pi, li := key(injections[i])
		pj, lj := key(injections[j])
		if pi != pj {
			return pi < pj
		}
		return li < lj
	})
}
