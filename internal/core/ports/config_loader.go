package ports

import "go.trai.ch/imgbuild/internal/core/domain"

// ConfigLoader defines the interface for loading settings and manifests.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// LoadSettings reads the settings file at path. A missing file yields the defaults.
	LoadSettings(path string) (*domain.Settings, error)

	// LoadManifest reads the JSON manifest at path.
	LoadManifest(path string) (domain.Manifest, error)
}
