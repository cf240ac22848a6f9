package pkgsrc_test

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/imgbuild/internal/adapters/pkgsrc"
	"go.trai.ch/imgbuild/internal/core/domain"
	"go.trai.ch/imgbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestManager_Install(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := mocks.NewMockCommander(ctrl)
	ctx := context.Background()

	cmd.EXPECT().Run(ctx, "chroot", "/mnt/b1/root", "pkgin", "-y", "install", "foo", "bar").Return(nil)

	m := pkgsrc.New(cmd, domain.DefaultSettings().Commands)
	require.NoError(t, m.Install(ctx, "/mnt/b1/root", []string{"foo", "bar"}))
}

func TestManager_Install_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := mocks.NewMockCommander(ctrl)
	cause := errors.New("exit status 1")

	cmd.EXPECT().Run(gomock.Any(), "chroot", gomock.Any()).Return(cause)

	m := pkgsrc.New(cmd, domain.DefaultSettings().Commands)
	err := m.Install(context.Background(), "/root", []string{"foo", "bar"})
	require.ErrorIs(t, err, cause)
	require.ErrorContains(t, err, "package installer failed")
}

func TestManager_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := mocks.NewMockCommander(ctrl)
	ctx := context.Background()

	commands := domain.DefaultSettings().Commands
	commands.Chroot = "/usr/sbin/chroot"
	cmd.EXPECT().Output(ctx, "/usr/sbin/chroot", "/mnt/b1/root", "pkgin", "-p", "list").
		Return([]byte("nginx-1.25.3;Lightweight HTTP server\npy311-yaml-6.0.1nb1;YAML parser\n"), nil)

	got, err := pkgsrc.New(cmd, commands).List(ctx, "/mnt/b1/root")
	require.NoError(t, err)
	assert.Equal(t, []domain.Package{
		{Name: "nginx", Version: "1.25.3"},
		{Name: "py311-yaml", Version: "6.0.1nb1"},
	}, got)
}

func TestManager_List_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := mocks.NewMockCommander(ctrl)

	cmd.EXPECT().Output(gomock.Any(), "chroot", gomock.Any()).Return(nil, errors.New("exit status 2"))

	_, err := pkgsrc.New(cmd, domain.DefaultSettings().Commands).List(context.Background(), "/root")
	require.ErrorContains(t, err, "package lister failed")
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []domain.Package
	}{
		{name: "Empty", in: "", want: nil},
		{name: "Name Version Columns", in: "nginx 1.25.3\nbash 5.2\n", want: []domain.Package{
			{Name: "nginx", Version: "1.25.3"},
			{Name: "bash", Version: "5.2"},
		}},
		{name: "Blank Lines Skipped", in: "\n  \nbash 5.2\n", want: []domain.Package{{Name: "bash", Version: "5.2"}}},
		{name: "Parseable Form", in: "libstdc++-12.2.0;GNU C++ library\n", want: []domain.Package{
			{Name: "libstdc++", Version: "12.2.0"},
		}},
		{name: "No Version", in: "orphan\n", want: []domain.Package{{Name: "orphan"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pkgsrc.ParseList([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseList_OverlongLine(t *testing.T) {
	in := "bash 5.2\n" + strings.Repeat("x", bufio.MaxScanTokenSize+1) + "\nnginx 1.25.3\n"

	got, err := pkgsrc.ParseList([]byte(in))
	require.ErrorIs(t, err, bufio.ErrTooLong)
	assert.ErrorContains(t, err, "package listing unreadable")
	assert.Nil(t, got)
}

func TestManager_List_UnreadableOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := mocks.NewMockCommander(ctrl)

	out := []byte(strings.Repeat("y", bufio.MaxScanTokenSize+1))
	cmd.EXPECT().Output(gomock.Any(), "chroot", gomock.Any()).Return(out, nil)

	_, err := pkgsrc.New(cmd, domain.DefaultSettings().Commands).List(context.Background(), "/mnt/b1/root")
	require.ErrorIs(t, err, bufio.ErrTooLong)
}
