package ports

import (
	"context"
	"io"
)

// Commander runs external commands to completion.
//
//go:generate mockgen -source=commander.go -destination=mocks/mock_commander.go -package=mocks
type Commander interface {
	// Run executes the command, discarding stdout.
	Run(ctx context.Context, name string, args ...string) error

	// Output executes the command and returns its stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// Stream executes the command and copies its stdout to w.
	Stream(ctx context.Context, w io.Writer, name string, args ...string) error
}
