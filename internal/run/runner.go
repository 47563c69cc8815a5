// Package run executes external commands synchronously.
package run

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -package mock_run -destination=../../test/mock/$GOFILE

// Runner runs one external command to completion and reports its outcome.
// A non-nil error means the command could not be started or exited nonzero.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// Exec is the exec(3)-backed Runner used outside of tests.
type Exec struct {
	Log logrus.FieldLogger
}

// NewExec returns a Runner executing commands on the host, logging each
// command line at debug level.
func NewExec() *Exec {
	return &Exec{Log: logrus.StandardLogger()}
}

// Run blocks until the command exits. On failure the returned error carries
// the combined output, since gettext tools report diagnostics on stderr.
func (e *Exec) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if e.Log != nil {
		e.Log.WithField("command", cmd.String()).Debug("running external command")
	}
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w\n%s", name, err, output)
	}
	return nil
}
