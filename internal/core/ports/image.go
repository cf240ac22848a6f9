package ports

import (
	"context"

	"go.trai.ch/imgbuild/internal/core/domain"
)

//go:generate mockgen -source=image.go -destination=mocks/mock_image.go -package=mocks

// ImageResolver locates a base image, importing it when necessary.
type ImageResolver interface {
	// Resolve returns the pool root and final snapshot of the image with the given id.
	Resolve(ctx context.Context, id string) (domain.BaseImage, error)
}

// ImageAssembler turns a dataset into a distributable image artifact.
type ImageAssembler interface {
	// Assemble snapshots req.Dataset and writes the compressed incremental stream
	// and its manifest to req.OutputDir.
	Assemble(ctx context.Context, req domain.AssembleRequest) (*domain.ImageArtifact, error)
}
