package zfs_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/imgbuild/internal/adapters/zfs"
	"go.trai.ch/imgbuild/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestDatasets_Clone(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := mocks.NewMockCommander(ctrl)
	ctx := context.Background()

	cmd.EXPECT().Run(ctx, "zfs", "clone", "-o", "mountpoint=/var/tmp/imgbuild/b1",
		"zones/base@final", "zones/b1").Return(nil)

	d := zfs.New(cmd, "zfs")
	require.NoError(t, d.Clone(ctx, "zones/base@final", "zones/b1", "/var/tmp/imgbuild/b1"))
}

func TestDatasets_Clone_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := mocks.NewMockCommander(ctrl)
	cause := errors.New("exit status 1")

	cmd.EXPECT().Run(gomock.Any(), "zfs", gomock.Any()).Return(cause).AnyTimes()

	d := zfs.New(cmd, "zfs")
	err := d.Clone(context.Background(), "zones/base@final", "zones/b1", "/mnt")
	require.ErrorIs(t, err, cause)
	assert.ErrorContains(t, err, "zfs clone failed")
}

func TestDatasets_Destroy(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := mocks.NewMockCommander(ctrl)
	ctx := context.Background()

	cmd.EXPECT().Run(ctx, "/sbin/zfs", "destroy", "-r", "zones/b1").Return(nil)
	require.NoError(t, zfs.New(cmd, "/sbin/zfs").Destroy(ctx, "zones/b1"))

	cmd.EXPECT().Run(ctx, "/sbin/zfs", "destroy", "-r", "zones/b1").Return(errors.New("busy"))
	err := zfs.New(cmd, "/sbin/zfs").Destroy(ctx, "zones/b1")
	require.ErrorContains(t, err, "zfs destroy failed")
}

func TestDatasets_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := mocks.NewMockCommander(ctrl)
	ctx := context.Background()

	cmd.EXPECT().Run(ctx, "zfs", "snapshot", "zones/b1@final").Return(nil)

	snap, err := zfs.New(cmd, "zfs").Snapshot(ctx, "zones/b1", "final")
	require.NoError(t, err)
	assert.Equal(t, "zones/b1@final", snap)
}

func TestDatasets_SnapshotExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := mocks.NewMockCommander(ctrl)
	ctx := context.Background()
	d := zfs.New(cmd, "zfs")

	cmd.EXPECT().Output(ctx, "zfs", "list", "-H", "-o", "name", "-t", "snapshot", "zones/a@final").
		Return([]byte("zones/a@final\n"), nil)
	ok, err := d.SnapshotExists(ctx, "zones/a@final")
	require.NoError(t, err)
	assert.True(t, ok)

	missing := zerr.With(zerr.Wrap(errors.New("exit status 1"), "command failed"),
		"stderr", "cannot open 'zones/b@final': dataset does not exist")
	cmd.EXPECT().Output(ctx, "zfs", "list", "-H", "-o", "name", "-t", "snapshot", "zones/b@final").
		Return(nil, zerr.With(missing, "exit_code", 1))
	ok, err = d.SnapshotExists(ctx, "zones/b@final")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDatasets_SnapshotExists_QueryFailure(t *testing.T) {
	tests := []struct {
		name  string
		cause error
	}{
		{
			name:  "Missing Binary",
			cause: zerr.Wrap(errors.New(`exec: "zfs": executable file not found in $PATH`), "command failed"),
		},
		{
			name: "Permission Denied",
			cause: zerr.With(zerr.Wrap(errors.New("exit status 1"), "command failed"),
				"stderr", "cannot open 'zones/a@final': permission denied"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cmd := mocks.NewMockCommander(ctrl)
			cmd.EXPECT().Output(gomock.Any(), "zfs", gomock.Any()).Return(nil, tt.cause)

			ok, err := zfs.New(cmd, "zfs").SnapshotExists(context.Background(), "zones/a@final")
			require.ErrorIs(t, err, tt.cause)
			assert.ErrorContains(t, err, "zfs list failed")
			assert.False(t, ok)
		})
	}
}

func TestDatasets_SendIncremental(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := mocks.NewMockCommander(ctrl)
	ctx := context.Background()
	var buf bytes.Buffer

	cmd.EXPECT().Stream(ctx, &buf, "zfs", "send", "-i", "zones/a@final", "zones/b1@final").
		DoAndReturn(func(_ context.Context, w *bytes.Buffer, _ string, _ ...string) error {
			_, err := w.WriteString("stream")
			return err
		})

	require.NoError(t, zfs.New(cmd, "zfs").SendIncremental(ctx, &buf, "zones/a@final", "zones/b1@final"))
	assert.Equal(t, "stream", buf.String())
}
