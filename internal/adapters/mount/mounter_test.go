package mount_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/imgbuild/internal/adapters/mount"
	"go.trai.ch/imgbuild/internal/core/domain"
	"go.trai.ch/imgbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestMounter_Mount_TargetPreparationFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := mocks.NewMockCommander(ctrl)

	blocker := filepath.Join(t.TempDir(), "root")
	require.NoError(t, os.WriteFile(blocker, nil, domain.FilePerm))

	err := mount.New(cmd).Mount(context.Background(), "/usr", filepath.Join(blocker, "usr"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to prepare mount target")
}

func TestMounter_Unmount_NotMounted(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := mocks.NewMockCommander(ctrl)
	cmd.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(os.ErrInvalid).AnyTimes()

	err := mount.New(cmd).Unmount(context.Background(), filepath.Join(t.TempDir(), "usr"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "unmount failed")
}
