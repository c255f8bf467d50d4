package stylus

import (
	"bytes"
	"context"
	"os/exec"

	log "github.com/xlab/suplog"
)

// Result captures the outcome of a single external tool invocation. External
// process failures are values, not thrown errors, so that callers can inspect
// captured diagnostics uniformly.
type Result struct {
	Success  bool
	ExitCode int

	Stdout string
	Stderr string

	// Err is set when the process could not be started at all,
	// e.g. the executable is not installed.
	Err error
}

// CombinedOutput returns stdout and stderr concatenated, in that order.
func (r *Result) CombinedOutput() string {
	return r.Stdout + r.Stderr
}

// Runner executes external commands to completion. Implementations other than
// the default one exist for testing only.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) *Result
}

func NewExecRunner() Runner {
	return execRunner{}
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, dir, name string, args ...string) *Result {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debugln("running:", cmd.String())

	err := cmd.Run()

	res := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err == nil {
		res.Success = true
		return res
	}

	if exitErr, ok := err.(*exec.ExitError); ok {
		res.ExitCode = exitErr.ExitCode()
	} else {
		res.Err = err
	}

	return res
}
