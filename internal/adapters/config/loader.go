// Package config provides the settings and manifest loaders for imgbuild.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"go.trai.ch/imgbuild/internal/core/domain"
	"go.trai.ch/imgbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// SettingsPath returns the settings file location. $IMGBUILD_CONFIG wins, then
// a settings file in the working directory, then one in the XDG config
// directories. When none exists the working directory path is returned.
func SettingsPath() string {
	if p := os.Getenv(domain.SettingsEnvVar); p != "" {
		return p
	}
	if _, err := os.Stat(domain.SettingsFileName); err == nil {
		return domain.SettingsFileName
	}
	if p, err := xdg.SearchConfigFile(filepath.Join(domain.AppName, domain.SettingsFileName)); err == nil {
		return p
	}
	return domain.SettingsFileName
}

// LoadSettings reads the settings file at path and overlays it onto the defaults.
func (l *Loader) LoadSettings(path string) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	// #nosec G304 -- path is chosen by the operator
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.Logger.Debug("no settings file at " + path + ", using defaults")
		return &settings, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	}

	var file SettingsFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", path)
	}

	file.apply(&settings)
	if err := settings.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return &settings, nil
}

func (f *SettingsFile) apply(s *domain.Settings) {
	if f.Pool != nil {
		s.Pool = *f.Pool
	}
	if f.WorkDir != nil {
		s.WorkDir = *f.WorkDir
	}
	if f.OutputDir != nil {
		s.OutputDir = *f.OutputDir
	}
	if f.StateDir != nil {
		s.StateDir = *f.StateDir
	}
	if f.ChrootDirs != nil {
		s.ChrootDirs = f.ChrootDirs
	}
	if f.StrictSync != nil {
		s.StrictSync = *f.StrictSync
	}
	if f.ImportMissing != nil {
		s.ImportMissing = *f.ImportMissing
	}
	if c := f.Commands; c != nil {
		setIfNotEmpty(&s.Commands.ZFS, c.ZFS)
		setIfNotEmpty(&s.Commands.Imgadm, c.Imgadm)
		setIfNotEmpty(&s.Commands.Rsync, c.Rsync)
		setIfNotEmpty(&s.Commands.Chroot, c.Chroot)
		if c.PkgInstall != nil {
			s.Commands.PkgInstall = c.PkgInstall
		}
		if c.PkgList != nil {
			s.Commands.PkgList = c.PkgList
		}
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// LoadManifest reads a JSON manifest. The name and version fields are required;
// every other top-level field is kept as extra metadata.
func (l *Loader) LoadManifest(path string) (domain.Manifest, error) {
	// #nosec G304 -- path is given on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Manifest{}, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return domain.Manifest{}, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	name, _ := fields["name"].(string)
	version, _ := fields["version"].(string)
	delete(fields, "name")
	delete(fields, "version")

	for _, key := range generatedManifestKeys {
		if _, ok := fields[key]; ok {
			l.Logger.Warn("manifest field " + key + " is generated and will be replaced")
			delete(fields, key)
		}
	}

	m := domain.Manifest{Name: name, Version: version, Extra: fields}
	if err := m.Validate(); err != nil {
		return domain.Manifest{}, zerr.With(err, "path", path)
	}
	return m, nil
}
