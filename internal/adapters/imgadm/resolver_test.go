package imgadm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/imgbuild/internal/adapters/imgadm"
	"go.trai.ch/imgbuild/internal/core/domain"
	"go.trai.ch/imgbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const baseSnapshot = "zones/" + baseID + "@final"

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name          string
		importMissing bool
		setup         func(cmd *mocks.MockCommander, snaps *mocks.MockSnapshotter)
		wantErr       string
	}{
		{
			name:          "Present",
			importMissing: true,
			setup: func(_ *mocks.MockCommander, snaps *mocks.MockSnapshotter) {
				snaps.EXPECT().SnapshotExists(gomock.Any(), baseSnapshot).Return(true, nil)
			},
		},
		{
			name:          "Imported",
			importMissing: true,
			setup: func(cmd *mocks.MockCommander, snaps *mocks.MockSnapshotter) {
				gomock.InOrder(
					snaps.EXPECT().SnapshotExists(gomock.Any(), baseSnapshot).Return(false, nil),
					cmd.EXPECT().Run(gomock.Any(), "imgadm", "import", "-q", "-P", "zones", baseID).Return(nil),
					snaps.EXPECT().SnapshotExists(gomock.Any(), baseSnapshot).Return(true, nil),
				)
			},
		},
		{
			name:          "Import Fails",
			importMissing: true,
			setup: func(cmd *mocks.MockCommander, snaps *mocks.MockSnapshotter) {
				snaps.EXPECT().SnapshotExists(gomock.Any(), baseSnapshot).Return(false, nil)
				cmd.EXPECT().Run(gomock.Any(), "imgadm", gomock.Any()).Return(errors.New("image not found in sources"))
			},
			wantErr: "imgadm import failed",
		},
		{
			name:          "Imported But Still Missing",
			importMissing: true,
			setup: func(cmd *mocks.MockCommander, snaps *mocks.MockSnapshotter) {
				snaps.EXPECT().SnapshotExists(gomock.Any(), baseSnapshot).Return(false, nil).Times(2)
				cmd.EXPECT().Run(gomock.Any(), "imgadm", gomock.Any()).Return(nil)
			},
			wantErr: domain.ErrSnapshotNotFound.Error(),
		},
		{
			name:          "Pool Query Fails",
			importMissing: true,
			setup: func(_ *mocks.MockCommander, snaps *mocks.MockSnapshotter) {
				snaps.EXPECT().SnapshotExists(gomock.Any(), baseSnapshot).
					Return(false, errors.New("zfs list failed: permission denied"))
			},
			wantErr: "permission denied",
		},
		{
			name:          "Missing Without Import",
			importMissing: false,
			setup: func(_ *mocks.MockCommander, snaps *mocks.MockSnapshotter) {
				snaps.EXPECT().SnapshotExists(gomock.Any(), baseSnapshot).Return(false, nil)
			},
			wantErr: domain.ErrSnapshotNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cmd := mocks.NewMockCommander(ctrl)
			snaps := mocks.NewMockSnapshotter(ctrl)
			tt.setup(cmd, snaps)

			settings := domain.DefaultSettings()
			settings.ImportMissing = tt.importMissing

			img, err := imgadm.NewResolver(cmd, snaps, &settings).Resolve(context.Background(), baseID)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.BaseImage{ID: baseID, Pool: "zones", Snapshot: baseSnapshot}, img)
		})
	}
}
