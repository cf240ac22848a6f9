package domain

import "go.trai.ch/zerr"

// Manifest is the metadata record describing the image being produced.
type Manifest struct {
	Name    string
	Version string
	// Extra carries every other top-level field of the input manifest.
	Extra map[string]any
}

// Validate checks that the manifest names the image.
func (m Manifest) Validate() error {
	if m.Name == "" {
		return zerr.With(ErrInvalidManifest, "missing", "name")
	}
	if m.Version == "" {
		return zerr.With(ErrInvalidManifest, "missing", "version")
	}
	return nil
}

// Ref returns the "name@version" form used to key build records.
func (m Manifest) Ref() string {
	return m.Name + "@" + m.Version
}
