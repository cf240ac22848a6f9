package domain

const (
	// AppName names the per-user configuration directory.
	AppName = "imgbuild"

	// StateDirName is the name of the local state directory.
	StateDirName = ".imgbuild"

	// RecordsDirName is the name of the build record directory inside the state directory.
	RecordsDirName = "builds"

	// SettingsFileName is the default name of the settings file.
	SettingsFileName = "imgbuild.yaml"

	// SettingsEnvVar overrides the settings file location.
	SettingsEnvVar = "IMGBUILD_CONFIG"

	// FinalSnapshotName is the snapshot every image dataset carries once it is complete.
	FinalSnapshotName = "final"

	// DefaultPool is the storage pool used when none is configured.
	DefaultPool = "zones"

	// DefaultWorkDir is the parent directory of zone analog mount points.
	DefaultWorkDir = "/var/tmp/imgbuild"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// MountDirPerm is the permission for chroot mount targets (rwxr-xr-x).
	MountDirPerm = 0o755

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultChrootDirs lists the host directories bind-mounted read-only under the chroot root.
func DefaultChrootDirs() []string {
	return []string{"/bin", "/dev", "/lib", "/sbin", "/usr"}
}
