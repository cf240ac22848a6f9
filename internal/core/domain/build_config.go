package domain

import (
	"github.com/google/uuid"
	"go.trai.ch/zerr"
)

// BuildConfig is the immutable input of a single build.
type BuildConfig struct {
	SourceDir   string
	BaseImageID string
	Manifest    Manifest
	Packages    []string
	Verbose     bool
}

// Validate checks the configuration before any resource is provisioned.
func (c BuildConfig) Validate() error {
	if c.SourceDir == "" {
		return ErrMissingSourceDir
	}
	canonical, err := CanonicalImageID(c.BaseImageID)
	if err != nil {
		return err
	}
	if canonical != c.BaseImageID {
		return zerr.With(zerr.With(ErrInvalidImageID, "image", c.BaseImageID), "canonical", canonical)
	}
	if err := c.Manifest.Validate(); err != nil {
		return err
	}
	for _, pkg := range c.Packages {
		if !packageNamePattern.MatchString(pkg) {
			return zerr.With(ErrInvalidPackageSpec, "package", pkg)
		}
	}
	return nil
}

// CanonicalImageID returns id in the lower-case hyphenated form that names
// the image's dataset. Braced, URN and undashed spellings are accepted.
func CanonicalImageID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, ErrInvalidImageID.Error()), "image", id)
	}
	return parsed.String(), nil
}
