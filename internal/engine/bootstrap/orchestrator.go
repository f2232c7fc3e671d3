// Package bootstrap implements the self-rebuild state machine.
package bootstrap

import (
	"context"
	"errors"
	"io"

	"go.trai.ch/kick/internal/core/domain"
	"go.trai.ch/kick/internal/core/ports"
	"go.trai.ch/zerr"
)

// Stage names one step of a bootstrap run.
type Stage string

const (
	// StageCompare compares the binary and source timestamps.
	StageCompare Stage = "compare"
	// StageBackup copies the binary to its backup path.
	StageBackup Stage = "backup"
	// StageRecompile runs the compiler into the staging path.
	StageRecompile Stage = "recompile"
	// StageReplace renames the staged binary over the live one.
	StageReplace Stage = "replace"
	// StageCleanup removes the backup.
	StageCleanup Stage = "cleanup"
	// StageReexec runs the rebuilt binary.
	StageReexec Stage = "reexec"
)

// Request describes one bootstrap run.
type Request struct {
	Identity  domain.Identity
	Toolchain domain.Toolchain
	// Args are passed to the rebuilt binary on re-exec.
	Args   []string
	Stdout io.Writer
	Stderr io.Writer
}

// Orchestrator decides whether the running binary is stale and, if so,
// rebuilds it and hands control to the new version.
type Orchestrator struct {
	oracle    ports.ModTimeOracle
	files     ports.FileSystem
	executor  ports.Executor
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	oracle ports.ModTimeOracle,
	files ports.FileSystem,
	executor ports.Executor,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		oracle:    oracle,
		files:     files,
		executor:  executor,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Check compares the modification times of the binary and its source. It
// never touches the filesystem beyond reading metadata.
func (o *Orchestrator) Check(id domain.Identity) (domain.Staleness, error) {
	binary, err := o.oracle.ModTime(id.BinaryPath())
	if err != nil {
		return domain.Staleness{}, err
	}
	source, err := o.oracle.ModTime(id.SourcePath())
	if err != nil {
		return domain.Staleness{}, err
	}
	return domain.Staleness{BinaryModTime: binary, SourceModTime: source}, nil
}

// Run executes the bootstrap. It returns domain.OutcomeFresh when the binary
// is up to date and nothing was changed. It returns domain.OutcomeRebuilt
// after the binary was rebuilt and the new version ran to completion; the
// caller must then stop without doing any further work.
//
// No step is retried. A failed compile leaves the backup on disk and the live
// binary untouched, since the compiler writes to the staging path. When a
// stage fails, its recorded log is replayed through the logger.
func (o *Orchestrator) Run(ctx context.Context, req Request) (domain.Outcome, error) {
	outcome, err := o.run(ctx, req)
	if err != nil {
		o.reportFailedStages()
	}
	return outcome, err
}

func (o *Orchestrator) run(ctx context.Context, req Request) (domain.Outcome, error) {
	id := req.Identity

	var staleness domain.Staleness
	err := o.stage(ctx, StageCompare, func(v ports.Vertex) error {
		var err error
		staleness, err = o.Check(id)
		if err == nil {
			v.Log(staleness.String())
		}
		return err
	})
	if err != nil {
		return domain.OutcomeFresh, err
	}
	if !staleness.Stale() {
		return domain.OutcomeFresh, nil
	}

	o.logger.Info("Rebuilding build system")

	if err := o.stage(ctx, StageBackup, func(v ports.Vertex) error {
		v.Log("copying " + id.BinaryPath() + " to " + id.BackupPath())
		if err := o.files.Copy(id.BinaryPath(), id.BackupPath()); err != nil {
			return errors.Join(domain.ErrBackupOperation, err)
		}
		return nil
	}); err != nil {
		return domain.OutcomeFresh, err
	}

	if err := o.stage(ctx, StageRecompile, func(v ports.Vertex) error {
		compile := req.Toolchain.CompileCommand(id.SourcePath(), id.StagingPath())
		v.Log(compile.String())
		if err := o.executor.Execute(ctx, compile, req.Stdout, req.Stderr); err != nil {
			if rmErr := o.files.Remove(id.StagingPath()); rmErr != nil {
				o.logger.Error(rmErr)
			}
			o.logger.Warn("rebuild failed, previous binary kept at " + id.BackupPath())
			return err
		}
		return nil
	}); err != nil {
		return domain.OutcomeFresh, err
	}

	if err := o.stage(ctx, StageReplace, func(v ports.Vertex) error {
		v.Log("renaming " + id.StagingPath() + " to " + id.BinaryPath())
		if err := o.files.Rename(id.StagingPath(), id.BinaryPath()); err != nil {
			o.logger.Warn("rebuild failed, previous binary kept at " + id.BackupPath())
			return errors.Join(domain.ErrIo, err)
		}
		return nil
	}); err != nil {
		return domain.OutcomeFresh, err
	}

	// A cleanup failure does not undo the rebuild: the new binary stays in
	// place and only the backup is left behind.
	if err := o.stage(ctx, StageCleanup, func(v ports.Vertex) error {
		v.Log("removing " + id.BackupPath())
		if err := o.files.Remove(id.BackupPath()); err != nil {
			return errors.Join(domain.ErrBackupOperation,
				zerr.With(zerr.Wrap(err, "rebuild succeeded but backup was not removed"), "backup", id.BackupPath()))
		}
		return nil
	}); err != nil {
		return domain.OutcomeFresh, err
	}

	o.logger.Info("Running new version")

	if err := o.stage(ctx, StageReexec, func(v ports.Vertex) error {
		reexec := domain.NewCommand(id.ExecPath()).With(req.Args...)
		v.Log(reexec.String())
		return o.executor.Execute(ctx, reexec, req.Stdout, req.Stderr)
	}); err != nil {
		return domain.OutcomeFresh, err
	}

	return domain.OutcomeRebuilt, nil
}

// reportFailedStages logs every failed stage together with the lines it
// recorded, such as the command it ran.
func (o *Orchestrator) reportFailedStages() {
	for _, st := range o.telemetry.Stages() {
		if !st.Failed() {
			continue
		}
		o.logger.Warn("stage " + st.Name + " failed: " + st.Err)
		for _, line := range st.Lines {
			o.logger.Warn(st.Name + ": " + line)
		}
	}
}

// stage runs fn inside a telemetry vertex named after s.
func (o *Orchestrator) stage(ctx context.Context, s Stage, fn func(ports.Vertex) error) error {
	_, v := o.telemetry.Record(ctx, string(s))
	err := fn(v)
	v.Complete(err)
	return err
}
