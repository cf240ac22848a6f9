package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// Settings holds the host-level configuration of the builder.
// It is independent of any single build.
type Settings struct {
	// Pool is the storage pool holding base images and zone analogs.
	Pool string
	// WorkDir is the parent directory of per-build mount points.
	WorkDir string
	// OutputDir receives the image manifest and compressed stream.
	OutputDir string
	// StateDir holds build records.
	StateDir string
	// ChrootDirs are absolute host directories bind-mounted into the chroot.
	ChrootDirs []string
	// StrictSync turns file synchronisation failures into build failures.
	StrictSync bool
	// ImportMissing imports the base image when its snapshot is not present.
	ImportMissing bool
	// Commands names the external tools.
	Commands Commands
}

// Commands names the external executables used by the adapters.
type Commands struct {
	ZFS        string
	Imgadm     string
	Rsync      string
	Chroot     string
	PkgInstall []string
	PkgList    []string
}

// DefaultSettings returns the settings used when no settings file is present.
func DefaultSettings() Settings {
	return Settings{
		Pool:          DefaultPool,
		WorkDir:       DefaultWorkDir,
		OutputDir:     ".",
		StateDir:      StateDirName,
		ChrootDirs:    DefaultChrootDirs(),
		StrictSync:    false,
		ImportMissing: true,
		Commands: Commands{
			ZFS:        "zfs",
			Imgadm:     "imgadm",
			Rsync:      "rsync",
			Chroot:     "chroot",
			PkgInstall: []string{"pkgin", "-y", "install"},
			PkgList:    []string{"pkgin", "-p", "list"},
		},
	}
}

// Validate checks that the settings can drive a build.
func (s Settings) Validate() error {
	if s.Pool == "" {
		return zerr.With(ErrInvalidSettings, "reason", "zpool must not be empty")
	}
	if s.WorkDir == "" {
		return zerr.With(ErrInvalidSettings, "reason", "work_dir must not be empty")
	}
	for _, dir := range s.ChrootDirs {
		if !filepath.IsAbs(dir) {
			return zerr.With(zerr.With(ErrInvalidSettings, "reason", "chroot dirs must be absolute"), "dir", dir)
		}
	}
	if len(s.Commands.PkgInstall) == 0 || len(s.Commands.PkgList) == 0 {
		return zerr.With(ErrInvalidSettings, "reason", "package commands must not be empty")
	}
	for name, cmd := range map[string]string{
		"zfs":    s.Commands.ZFS,
		"imgadm": s.Commands.Imgadm,
		"rsync":  s.Commands.Rsync,
		"chroot": s.Commands.Chroot,
	} {
		if cmd == "" {
			return zerr.With(zerr.With(ErrInvalidSettings, "reason", "command must not be empty"), "command", name)
		}
	}
	return nil
}
