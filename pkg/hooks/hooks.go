// Package hooks runs the pre- and post-generation shell hooks.
//
// A hook file holds one shell command per line. Commands run in order with
// `sh -c` inside the output directory; the first failing command stops the
// run.
package hooks

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/HumanBot000/BoilerGen/pkg/logging"
	"github.com/spf13/afero"
)

// Stage selects which hook file runs
type Stage string

const (
	PreGeneration  Stage = "pre-generation"
	PostGeneration Stage = "post-generation"
)

// File returns the hook file name for the stage
func (s Stage) File() string {
	return string(s) + ".txt"
}

// Runner executes hook files found in Dir
type Runner struct {
	FS  afero.Fs
	Dir string

	// Shell defaults to "sh"
	Shell  string
	Stdout io.Writer
	Stderr io.Writer
}

// Commands returns the commands of a stage, skipping blank lines.
// A missing hook file yields no commands.
func (r *Runner) Commands(stage Stage) ([]string, error) {
	if r.Dir == "" {
		return nil, nil
	}
	path := filepath.Join(r.Dir, stage.File())

	f, err := r.FS.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to open hook file %s", path)
	}
	defer func() { _ = f.Close() }()

	var commands []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		commands = append(commands, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read hook file %s", path)
	}
	return commands, nil
}

// Run executes the stage's commands in workDir
func (r *Runner) Run(ctx context.Context, stage Stage, workDir string) error {
	logger := logging.GetLogger("hooks")

	commands, err := r.Commands(stage)
	if err != nil {
		return err
	}
	if len(commands) == 0 {
		logger.Debug().Str("stage", string(stage)).Msg("No hook commands")
		return nil
	}

	shell := r.Shell
	if shell == "" {
		shell = "sh"
	}

	for i, command := range commands {
		logger.Info().Str("stage", string(stage)).Str("command", command).Msg("Running hook")

		cmd := exec.CommandContext(ctx, shell, "-c", command)
		cmd.Dir = workDir
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr

		if err := cmd.Run(); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return errors.Wrapf(err, errors.ErrHookFailed, "%s hook command %d failed: %s", stage, i+1, command).
				WithDetail("stage", string(stage)).
				WithDetail("command", command)
		}
	}
	return nil
}
