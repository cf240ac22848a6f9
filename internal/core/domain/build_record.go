package domain

import "time"

// BuildStatus is the outcome of a build.
type BuildStatus string

const (
	// BuildSucceeded marks a build whose forward pipeline completed.
	BuildSucceeded BuildStatus = "succeeded"
	// BuildFailed marks a build that ran compensation.
	BuildFailed BuildStatus = "failed"
)

// BuildRecord is the persisted summary of one build.
type BuildRecord struct {
	BuildID     string         `json:"buildId"`
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	BaseImageID string         `json:"baseImageId"`
	Status      BuildStatus    `json:"status"`
	FailedStage string         `json:"failedStage,omitempty"`
	Error       string         `json:"error,omitempty"`
	Packages    []string       `json:"packages,omitempty"`
	Installed   []string       `json:"installed,omitempty"`
	Artifact    *ImageArtifact `json:"artifact,omitempty"`
	StartedAt   time.Time      `json:"startedAt"`
	FinishedAt  time.Time      `json:"finishedAt"`
}

// NewBuildRecord summarises bc. buildErr is the error returned by the pipeline, if any.
func NewBuildRecord(bc *BuildContext, buildErr error, started, finished time.Time) *BuildRecord {
	rec := &BuildRecord{
		BuildID:     bc.BuildID,
		Name:        bc.Config.Manifest.Name,
		Version:     bc.Config.Manifest.Version,
		BaseImageID: bc.Config.BaseImageID,
		Status:      BuildSucceeded,
		Packages:    bc.Config.Packages,
		Artifact:    bc.Artifact,
		StartedAt:   started,
		FinishedAt:  finished,
	}
	for _, pkg := range bc.InstalledPackages {
		rec.Installed = append(rec.Installed, pkg.String())
	}
	if buildErr != nil {
		rec.Status = BuildFailed
		rec.FailedStage = bc.FailedStage
		rec.Error = buildErr.Error()
	}
	return rec
}

// Duration returns the wall time of the build.
func (r *BuildRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
