package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/imgbuild/internal/adapters/config"
	"go.trai.ch/imgbuild/internal/core/domain"
	"go.trai.ch/imgbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	return config.NewLoader(mockLogger), mockLogger
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	loader, mockLogger := newLoader(t)
	mockLogger.EXPECT().Debug(gomock.Any()).Times(1)

	got, err := loader.LoadSettings(filepath.Join(t.TempDir(), "imgbuild.yaml"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *got)
}

func TestLoadSettings_Overlay(t *testing.T) {
	loader, _ := newLoader(t)
	path := writeFile(t, "imgbuild.yaml", `
zpool: tank
work_dir: /scratch
strict_sync: true
import_missing: false
chroot_dirs: [/bin, /usr]
commands:
  zfs: /usr/sbin/zfs
  pkg_install: [pkg_add]
`)

	got, err := loader.LoadSettings(path)
	require.NoError(t, err)

	want := domain.DefaultSettings()
	want.Pool = "tank"
	want.WorkDir = "/scratch"
	want.StrictSync = true
	want.ImportMissing = false
	want.ChrootDirs = []string{"/bin", "/usr"}
	want.Commands.ZFS = "/usr/sbin/zfs"
	want.Commands.PkgInstall = []string{"pkg_add"}
	assert.Equal(t, want, *got)
}

func TestLoadSettings_EmptyFile(t *testing.T) {
	loader, _ := newLoader(t)
	got, err := loader.LoadSettings(writeFile(t, "imgbuild.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *got)
}

func TestLoadSettings_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "Malformed YAML", content: "zpool: [", wantErr: domain.ErrSettingsParseFailed},
		{name: "Unknown Field", content: "pool: tank", wantErr: domain.ErrSettingsParseFailed},
		{name: "Relative Chroot Dir", content: "chroot_dirs: [usr]", wantErr: domain.ErrInvalidSettings},
		{name: "Empty Pool", content: `zpool: ""`, wantErr: domain.ErrInvalidSettings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			_, err := loader.LoadSettings(writeFile(t, "imgbuild.yaml", tt.content))
			require.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoadSettings_Unreadable(t *testing.T) {
	loader, _ := newLoader(t)
	_, err := loader.LoadSettings(t.TempDir())
	require.ErrorContains(t, err, domain.ErrSettingsReadFailed.Error())
}

func TestSettingsPath(t *testing.T) {
	t.Cleanup(xdg.Reload)
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()
	t.Chdir(t.TempDir())

	t.Setenv(domain.SettingsEnvVar, "")
	assert.Equal(t, "imgbuild.yaml", config.SettingsPath())

	userFile := filepath.Join(configHome, "imgbuild", "imgbuild.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(userFile), domain.DirPerm))
	require.NoError(t, os.WriteFile(userFile, []byte("zpool: tank\n"), domain.FilePerm))
	assert.Equal(t, userFile, config.SettingsPath())

	require.NoError(t, os.WriteFile("imgbuild.yaml", []byte("zpool: data\n"), domain.FilePerm))
	assert.Equal(t, "imgbuild.yaml", config.SettingsPath())

	t.Setenv(domain.SettingsEnvVar, "/etc/imgbuild.yaml")
	assert.Equal(t, "/etc/imgbuild.yaml", config.SettingsPath())
}

func TestLoadManifest(t *testing.T) {
	loader, mockLogger := newLoader(t)
	mockLogger.EXPECT().Warn("manifest field uuid is generated and will be replaced").Times(1)

	path := writeFile(t, "manifest.json", `{
  "name": "web",
  "version": "1.2.0",
  "description": "web server",
  "requirements": {"networks": [{"name": "net0"}]},
  "uuid": "stale"
}`)

	got, err := loader.LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "web", got.Name)
	assert.Equal(t, "1.2.0", got.Version)
	assert.Equal(t, map[string]any{
		"description":  "web server",
		"requirements": map[string]any{"networks": []any{map[string]any{"name": "net0"}}},
	}, got.Extra)
}

func TestLoadManifest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "Not JSON", content: "name: web", wantErr: domain.ErrManifestParseFailed},
		{name: "Array", content: `["web"]`, wantErr: domain.ErrManifestParseFailed},
		{name: "Missing Version", content: `{"name": "web"}`, wantErr: domain.ErrInvalidManifest},
		{name: "Numeric Version", content: `{"name": "web", "version": 1}`, wantErr: domain.ErrInvalidManifest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			_, err := loader.LoadManifest(writeFile(t, "manifest.json", tt.content))
			require.ErrorContains(t, err, tt.wantErr.Error())
		})
	}

	t.Run("Missing File", func(t *testing.T) {
		loader, _ := newLoader(t)
		_, err := loader.LoadManifest(filepath.Join(t.TempDir(), "nope.json"))
		require.ErrorContains(t, err, domain.ErrManifestReadFailed.Error())
	})
}
