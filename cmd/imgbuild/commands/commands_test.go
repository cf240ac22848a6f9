package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/imgbuild/cmd/imgbuild/commands"
	"go.trai.ch/imgbuild/internal/app"
	"go.trai.ch/imgbuild/internal/build"
	"go.trai.ch/imgbuild/internal/core/domain"
)

type mockApp struct {
	buildFunc  func(ctx context.Context, opts app.BuildOptions) error
	statusFunc func(ctx context.Context, name, version string) (*domain.BuildRecord, error)
}

func (m *mockApp) Build(ctx context.Context, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Status(ctx context.Context, name, version string) (*domain.BuildRecord, error) {
	if m.statusFunc != nil {
		return m.statusFunc(ctx, name, version)
	}
	return nil, domain.ErrBuildRecordNotFound
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.BuildOptions
		called := false

		mock := &mockApp{
			buildFunc: func(_ context.Context, opts app.BuildOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"build",
			"--manifest", "manifest.json",
			"--source", "./rootfs",
			"--image", "11111111-1111-1111-1111-111111111111",
			"--packages", "nginx,curl",
			"--verbose",
			"--json",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, app.BuildOptions{
			ManifestPath: "manifest.json",
			SourceDir:    "./rootfs",
			ImageID:      "11111111-1111-1111-1111-111111111111",
			Packages:     "nginx,curl",
			Verbose:      true,
			JSON:         true,
		}, captured)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(context.Context, app.BuildOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build", "-m", "m.json", "-s", "src", "-i", "id"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("requires manifest, source and image", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(context.Context, app.BuildOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build", "--source", "src"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required flag(s)")
	})
}

func TestCommands_Status(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("prints a successful build", func(t *testing.T) {
		mock := &mockApp{
			statusFunc: func(_ context.Context, name, version string) (*domain.BuildRecord, error) {
				assert.Equal(t, "webapp", name)
				assert.Equal(t, "1.0.0", version)
				return &domain.BuildRecord{
					BuildID:     "22222222-2222-2222-2222-222222222222",
					Name:        name,
					Version:     version,
					BaseImageID: "11111111-1111-1111-1111-111111111111",
					Status:      domain.BuildSucceeded,
					Installed:   []string{"curl-8.5.0", "nginx-1.25.3"},
					Artifact: &domain.ImageArtifact{
						FilePath:     "/srv/images/webapp-1.0.0.zfs.gz",
						ManifestPath: "/srv/images/webapp-1.0.0.json",
						Digest:       "sha256:abc",
					},
					StartedAt:  started,
					FinishedAt: started.Add(90 * time.Second),
				}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"status", "webapp", "1.0.0"})

		require.NoError(t, cli.Execute(context.Background()))
		out := buf.String()
		assert.Contains(t, out, "✓ webapp@1.0.0 built")
		assert.Contains(t, out, "22222222-2222-2222-2222-222222222222")
		assert.Contains(t, out, "/srv/images/webapp-1.0.0.zfs.gz")
		assert.Contains(t, out, "took 1m30s")
		assert.Contains(t, out, "2 installed")
		assert.NotContains(t, out, "error:")
	})

	t.Run("prints a failed build", func(t *testing.T) {
		mock := &mockApp{
			statusFunc: func(_ context.Context, name, version string) (*domain.BuildRecord, error) {
				return &domain.BuildRecord{
					Name:        name,
					Version:     version,
					Status:      domain.BuildFailed,
					FailedStage: "setup-chroot",
					Error:       "failed to mount chroot directories: bind mount failed",
					StartedAt:   started,
					FinishedAt:  started,
				}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"status", "webapp", "1.0.0"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "✗ webapp@1.0.0 failed at setup-chroot")
		assert.Contains(t, buf.String(), "bind mount failed")
	})

	t.Run("returns lookup errors", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"status", "webapp", "9.9.9"})

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrBuildRecordNotFound)
	})

	t.Run("requires name and version", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"status", "webapp"})

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "imgbuild version "+build.Version)
}
