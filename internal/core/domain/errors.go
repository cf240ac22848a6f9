package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidImageID is returned when the base image identifier is not a well-formed UUID.
	ErrInvalidImageID = zerr.New("invalid base image id, expected a UUID")

	// ErrInvalidManifest is returned when a manifest lacks a name or a version.
	ErrInvalidManifest = zerr.New("invalid manifest, name and version are required")

	// ErrInvalidPackageSpec is returned when a package specification contains disallowed characters.
	ErrInvalidPackageSpec = zerr.New("invalid package specification")

	// ErrMissingSourceDir is returned when no source directory is configured for a build.
	ErrMissingSourceDir = zerr.New("source directory is required")

	// ErrInvalidSettings is returned when the settings file contains unusable values.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest file")

	// ErrManifestParseFailed is returned when the manifest file is not a JSON object.
	ErrManifestParseFailed = zerr.New("failed to parse manifest file")

	// ErrBaseImageNotFound is returned when the base image cannot be imported or located.
	ErrBaseImageNotFound = zerr.New("failed to resolve base image")

	// ErrSnapshotNotFound is returned when an image's final snapshot is absent from the pool.
	ErrSnapshotNotFound = zerr.New("base image snapshot not found")

	// ErrZoneNotInstalled is returned when an image is assembled from a zone that is not installed.
	ErrZoneNotInstalled = zerr.New("zone analog is not in the installed state")

	// ErrCloneFailed is returned when the base snapshot cannot be cloned into the zone analog.
	ErrCloneFailed = zerr.New("failed to create zone analog")

	// ErrSyncFailed is returned when the source files cannot be synchronized and sync is strict.
	ErrSyncFailed = zerr.New("failed to install files")

	// ErrMountFailed is returned when one or more chroot directories cannot be mounted.
	ErrMountFailed = zerr.New("failed to set up chroot")

	// ErrPackageInstallFailed is returned when the package installer exits unsuccessfully.
	ErrPackageInstallFailed = zerr.New("failed to install packages")

	// ErrPackageListFailed is returned when the installed packages cannot be listed.
	ErrPackageListFailed = zerr.New("failed to list packages")

	// ErrUnmountFailed is returned when one or more chroot directories cannot be unmounted.
	ErrUnmountFailed = zerr.New("failed to tear down chroot")

	// ErrImageCreateFailed is returned when the image assembler fails.
	ErrImageCreateFailed = zerr.New("failed to create image")

	// ErrDatasetDestroyFailed is returned when the cloned dataset cannot be destroyed.
	ErrDatasetDestroyFailed = zerr.New("failed to destroy zone analog")

	// ErrMountDirRemoveFailed is returned when the mount point directory cannot be removed.
	ErrMountDirRemoveFailed = zerr.New("failed to remove mount directory")

	// ErrStoreReadFailed is returned when a build record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build record")

	// ErrStoreWriteFailed is returned when a build record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build record")

	// ErrBuildRecordNotFound is returned when no build has been recorded for an image.
	ErrBuildRecordNotFound = zerr.New("no build recorded for image")
)
