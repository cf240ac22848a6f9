package domain

// ZoneStateInstalled is the state reported for the zone analog when an image is assembled.
const ZoneStateInstalled = "installed"

// BaseImage is a resolved base image.
type BaseImage struct {
	ID string
	// Pool is the storage pool root holding the image dataset.
	Pool string
	// Snapshot is the full reference of the image's final snapshot, e.g. "zones/<id>@final".
	Snapshot string
}

// Dataset returns the dataset part of the snapshot reference.
func (b BaseImage) Dataset() string {
	return b.Pool + "/" + b.ID
}

// ZoneDescriptor describes the running entity an image is assembled from.
type ZoneDescriptor struct {
	UUID    string
	State   string
	Dataset string
	Pool    string
}

// AssembleRequest is the input of the image assembler.
type AssembleRequest struct {
	BuildID   string
	Dataset   string
	Manifest  Manifest
	Zone      ZoneDescriptor
	Base      BaseImage
	OutputDir string
}

// ImageArtifact is the file pair produced by the image assembler.
type ImageArtifact struct {
	UUID         string `json:"uuid"`
	ManifestPath string `json:"manifestPath"`
	FilePath     string `json:"filePath"`
	Digest       string `json:"digest"`
	Size         int64  `json:"size"`
}
