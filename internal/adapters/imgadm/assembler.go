package imgadm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/opencontainers/go-digest"
	"go.trai.ch/imgbuild/internal/core/domain"
	"go.trai.ch/imgbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// ManifestVersion is the image manifest format version written by the assembler.
const ManifestVersion = 2

// Compression names the stream compression recorded in the manifest.
const Compression = "gzip"

// Assembler implements ports.ImageAssembler.
type Assembler struct {
	snapshots ports.Snapshotter
	newUUID   func() string
}

// NewAssembler creates an Assembler.
func NewAssembler(snapshots ports.Snapshotter) *Assembler {
	return &Assembler{snapshots: snapshots, newUUID: uuid.NewString}
}

// WithUUIDGenerator replaces the generator of image UUIDs.
func (a *Assembler) WithUUIDGenerator(fn func() string) *Assembler {
	a.newUUID = fn
	return a
}

// Assemble snapshots the dataset, writes the gzip compressed incremental stream
// relative to the base image and the manifest describing it.
func (a *Assembler) Assemble(ctx context.Context, req domain.AssembleRequest) (*domain.ImageArtifact, error) {
	if req.Zone.State != domain.ZoneStateInstalled {
		return nil, zerr.With(domain.ErrZoneNotInstalled, "state", req.Zone.State)
	}

	snap, err := a.snapshots.Snapshot(ctx, req.Dataset, domain.FinalSnapshotName)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(req.OutputDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create output directory"), "dir", req.OutputDir)
	}

	base := fmt.Sprintf("%s-%s", req.Manifest.Name, req.Manifest.Version)
	art := &domain.ImageArtifact{
		UUID:         a.newUUID(),
		FilePath:     filepath.Join(req.OutputDir, base+".zfs.gz"),
		ManifestPath: filepath.Join(req.OutputDir, base+".json"),
	}

	dgst, size, err := a.writeStream(ctx, art.FilePath, req.Base.Snapshot, snap)
	if err != nil {
		_ = os.Remove(art.FilePath)
		return nil, err
	}
	art.Digest = dgst.String()
	art.Size = size

	data, err := RenderManifest(req.Manifest, art.UUID, req.Base.ID, dgst, size)
	if err != nil {
		_ = os.Remove(art.FilePath)
		return nil, err
	}
	if err := os.WriteFile(art.ManifestPath, data, domain.FilePerm); err != nil {
		_ = os.Remove(art.FilePath)
		return nil, zerr.With(zerr.Wrap(err, "failed to write image manifest"), "path", art.ManifestPath)
	}

	return art, nil
}

func (a *Assembler) writeStream(ctx context.Context, filename, base, snap string) (digest.Digest, int64, error) {
	//nolint:gosec // Path is built from the output directory and manifest fields
	f, err := os.Create(filename)
	if err != nil {
		return "", 0, zerr.With(zerr.Wrap(err, "failed to create image file"), "path", filename)
	}
	defer func() { _ = f.Close() }()

	digester := digest.Canonical.Digester()
	counter := &countingWriter{}
	gz, err := gzip.NewWriterLevel(io.MultiWriter(f, digester.Hash(), counter), gzip.BestCompression)
	if err != nil {
		return "", 0, err
	}

	if err := a.snapshots.SendIncremental(ctx, gz, base, snap); err != nil {
		_ = gz.Close()
		return "", 0, err
	}
	if err := gz.Close(); err != nil {
		return "", 0, zerr.Wrap(err, "failed to finish compressed stream")
	}
	if err := f.Close(); err != nil {
		return "", 0, zerr.Wrap(err, "failed to close image file")
	}
	return digester.Digest(), counter.n, nil
}

// RenderManifest produces the image manifest. Extra fields of the input
// manifest are kept; generated fields take precedence.
func RenderManifest(m domain.Manifest, imageUUID, origin string, dgst digest.Digest, size int64) ([]byte, error) {
	out := make(map[string]any, len(m.Extra)+6)
	for k, v := range m.Extra {
		out[k] = v
	}
	out["v"] = ManifestVersion
	out["uuid"] = imageUUID
	out["name"] = m.Name
	out["version"] = m.Version
	out["origin"] = origin
	out["files"] = []map[string]any{{
		"sha256":      dgst.Encoded(),
		"size":        size,
		"compression": Compression,
	}}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode image manifest")
	}
	return append(data, '\n'), nil
}

type countingWriter struct {
	n int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += int64(len(p))
	return len(p), nil
}
