package ports

import "go.trai.ch/imgbuild/internal/core/domain"

// BuildRecordStore defines the interface for storing and retrieving build records.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildRecordStore interface {
	// Latest retrieves the last record for the image name and version.
	// Returns nil, nil if not found.
	Latest(name, version string) (*domain.BuildRecord, error)

	// Put stores the record, replacing any earlier record for the same image.
	Put(record *domain.BuildRecord) error
}
