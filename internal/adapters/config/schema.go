package config

// SettingsFile represents the structure of the imgbuild.yaml settings file.
// Pointer fields distinguish "unset" from the zero value so defaults survive.
type SettingsFile struct {
	Pool          *string      `yaml:"zpool"`
	WorkDir       *string      `yaml:"work_dir"`
	OutputDir     *string      `yaml:"output_dir"`
	StateDir      *string      `yaml:"state_dir"`
	ChrootDirs    []string     `yaml:"chroot_dirs"`
	StrictSync    *bool        `yaml:"strict_sync"`
	ImportMissing *bool        `yaml:"import_missing"`
	Commands      *CommandsDTO `yaml:"commands"`
}

// CommandsDTO names the external tools.
type CommandsDTO struct {
	ZFS        string   `yaml:"zfs"`
	Imgadm     string   `yaml:"imgadm"`
	Rsync      string   `yaml:"rsync"`
	Chroot     string   `yaml:"chroot"`
	PkgInstall []string `yaml:"pkg_install"`
	PkgList    []string `yaml:"pkg_list"`
}

// Keys of the input manifest that the image assembler writes itself.
var generatedManifestKeys = []string{"v", "uuid", "origin", "files"}
