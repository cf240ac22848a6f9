// Package shell runs external commands for the adapters that drive host tooling.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/imgbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Commander using os/exec.
// Stdout lines are logged at debug level unless captured, stderr lines as warnings.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes the command and waits for it to complete.
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	stdout := &logWriter{logger: r.logger, level: levelDebug}
	defer func() { _ = stdout.Close() }()
	return r.run(ctx, stdout, name, args)
}

// Output executes the command and returns its stdout.
func (r *Runner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.run(ctx, &buf, name, args); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Stream executes the command and copies its stdout to w.
func (r *Runner) Stream(ctx context.Context, w io.Writer, name string, args ...string) error {
	return r.run(ctx, w, name, args)
}

func (r *Runner) run(ctx context.Context, stdout io.Writer, name string, args []string) error {
	r.logger.Debug("$ " + commandLine(name, args))

	stderr := &logWriter{logger: r.logger, level: levelWarn}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // commands come from settings
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	_ = stderr.Close()
	if err == nil {
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	err = zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	err = zerr.With(err, "command", commandLine(name, args))
	if last := stderr.last; last != "" {
		err = zerr.With(err, "stderr", last)
	}
	return err
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

type logLevel int

const (
	levelDebug logLevel = iota
	levelWarn
)

// logWriter forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	level  logLevel
	buf    []byte
	last   string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}
	w.last = msg

	if w.level == levelDebug {
		w.logger.Debug(msg)
	} else {
		w.logger.Warn(msg)
	}
}
