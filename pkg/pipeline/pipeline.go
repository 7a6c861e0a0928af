// Package pipeline runs a generation from selected templates to a finished
// output directory.
//
// The steps run in a fixed order: dependency resolution, output bootstrap,
// pre-generation hook, file preparation, config editing, generation,
// injections and the post-generation hook. A failure stops the run; files
// already written are left in place.
package pipeline

import (
	"context"
	"io"
	"os"

	"github.com/HumanBot000/BoilerGen/pkg/deps"
	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/HumanBot000/BoilerGen/pkg/generator"
	"github.com/HumanBot000/BoilerGen/pkg/hooks"
	"github.com/HumanBot000/BoilerGen/pkg/injection"
	"github.com/HumanBot000/BoilerGen/pkg/logging"
	"github.com/HumanBot000/BoilerGen/pkg/templates"
	"github.com/HumanBot000/BoilerGen/pkg/types"
	"github.com/HumanBot000/BoilerGen/pkg/values"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Confirmer is asked before a missing output directory is created
type Confirmer interface {
	ConfirmCreate(ctx context.Context, dir string) (bool, error)
}

// Progress receives one tick per generated file
type Progress interface {
	Start(total int, title string)
	Increment()
	Stop()
}

// Env carries the collaborators of a run
type Env struct {
	FS afero.Fs
	// Out receives hook output unless the runner sets its own writers
	Out io.Writer

	// Logger defaults to the "pipeline" component logger
	Logger *zerolog.Logger

	// Hooks is optional
	Hooks *hooks.Runner

	// Editor is consulted for every file with config markers when the run
	// is interactive
	Editor    values.Editor
	Confirmer Confirmer
	Progress  Progress
}

// Options defines the options for a run
type Options struct {
	// OutputDir is where the mirrored tree is written
	OutputDir string
	// ClearOutput removes an existing OutputDir before generating
	ClearOutput bool
	// StrictDependencies fails on requirements outside the selection
	StrictDependencies bool
	// DisableQuoteClipping keeps the quotes around substituted values
	DisableQuoteClipping bool
	// Overrides are key=value pairs given on the command line
	Overrides map[string]string
	// Interactive enables the config editor and the creation prompt
	Interactive bool
}

// Result summarizes a finished run
type Result struct {
	// Templates are the template ids in generation order
	Templates []string
	// Files are the written destination paths
	Files []string
	// Injections is the number of declared injections handed to the engine
	Injections int
}

// Run generates selected into opts.OutputDir
func Run(ctx context.Context, env Env, selected []types.Template, opts Options) (*Result, error) {
	logger := env.logger()
	defer logging.LogOperationStart(logger, "generate")()

	if opts.OutputDir == "" {
		return nil, errors.New(errors.ErrInvalidInput, "output directory cannot be empty")
	}

	// 1. Resolve order. Nothing touches the disk before this succeeds.
	ordered, err := deps.Sort(selected, opts.StrictDependencies)
	if err != nil {
		return nil, err
	}
	result := &Result{}
	for _, t := range ordered {
		result.Templates = append(result.Templates, t.ID)
	}
	logger.Info().Strs("templates", result.Templates).Msg("Resolved generation order")

	// 2. Output directory
	if err := prepareOutput(ctx, env, opts); err != nil {
		return nil, err
	}

	// 3. Pre-generation hook
	if err := runHook(ctx, env, hooks.PreGeneration, opts.OutputDir); err != nil {
		return nil, err
	}

	// 4. Parse every file of every template
	var files []*types.TemplateFile
	var injections []types.Injection
	for _, tmpl := range ordered {
		prepared, err := templates.Files(env.FS, tmpl, opts.OutputDir)
		if err != nil {
			return nil, err
		}
		for _, f := range prepared {
			values.ApplyOverrides(f.Configs, opts.Overrides)
		}
		files = append(files, prepared...)
		injections = append(injections, tmpl.Descriptor.Injections...)
	}

	// 5. Edit and write
	if err := generate(ctx, env, files, opts); err != nil {
		return result, err
	}
	for _, f := range files {
		result.Files = append(result.Files, f.DestinationPath)
	}

	// 6. Injections, once every file exists
	result.Injections = len(injections)
	if err := injection.NewEngine(env.FS, opts.OutputDir).Run(ctx, files, injections); err != nil {
		return result, err
	}

	// 7. Post-generation hook
	if err := runHook(ctx, env, hooks.PostGeneration, opts.OutputDir); err != nil {
		return result, err
	}

	logger.Info().
		Int("templates", len(result.Templates)).
		Int("files", len(result.Files)).
		Str("output", opts.OutputDir).
		Msg("Generation complete")
	return result, nil
}

func (env Env) logger() zerolog.Logger {
	if env.Logger != nil {
		return *env.Logger
	}
	return logging.GetLogger("pipeline")
}

// prepareOutput makes sure opts.OutputDir exists and is empty of earlier
// runs. An existing directory is never merged into.
func prepareOutput(ctx context.Context, env Env, opts Options) error {
	logger := env.logger()
	dir := opts.OutputDir

	exists, err := afero.Exists(env.FS, dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to check output directory %s", dir)
	}

	switch {
	case exists && !opts.ClearOutput:
		return errors.New(errors.ErrAlreadyExists, "output directory already exists").
			WithDetail("path", dir)
	case exists:
		logger.Info().Str("path", dir).Msg("Clearing output directory")
		if err := env.FS.RemoveAll(dir); err != nil {
			if os.IsPermission(err) {
				return errors.Wrapf(err, errors.ErrPermission,
					"cannot clear %s, try again with elevated privileges (e.g. sudo)", dir).
					WithDetail("path", dir)
			}
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to clear output directory %s", dir)
		}
	case opts.Interactive && env.Confirmer != nil:
		ok, err := env.Confirmer.ConfirmCreate(ctx, dir)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Newf(errors.ErrAborted, "output directory %s was not created", dir)
		}
	}

	if err := env.FS.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create output directory %s", dir)
	}
	return nil
}

func generate(ctx context.Context, env Env, files []*types.TemplateFile, opts Options) error {
	progress := env.Progress
	if progress == nil {
		progress = silent{}
	}

	// without an editor each config keeps its own resolved value
	edit := opts.Interactive && env.Editor != nil

	genOpts := generator.Options{DisableQuoteClipping: opts.DisableQuoteClipping}

	progress.Start(len(files), "Generating files")
	defer progress.Stop()

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if edit {
			if err := values.Edit(ctx, env.Editor, f); err != nil {
				return err
			}
		}
		if err := generator.Generate(env.FS, f, genOpts); err != nil {
			return err
		}
		progress.Increment()
	}
	return nil
}

func runHook(ctx context.Context, env Env, stage hooks.Stage, dir string) error {
	if env.Hooks == nil {
		return nil
	}
	runner := *env.Hooks
	if runner.Stdout == nil {
		runner.Stdout = env.Out
	}
	if runner.Stderr == nil {
		runner.Stderr = env.Out
	}
	return runner.Run(ctx, stage, dir)
}

type silent struct{}

func (silent) Start(int, string) {}
func (silent) Increment()        {}
func (silent) Stop()             {}
