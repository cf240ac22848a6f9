package ports

import (
	"context"

	"go.trai.ch/imgbuild/internal/core/domain"
)

// Builder runs a complete build for a validated configuration.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type Builder interface {
	// Build returns the final build context. On failure the context, when not
	// nil, records the failing stage and the resources left behind.
	Build(ctx context.Context, cfg domain.BuildConfig) (*domain.BuildContext, error)
}
