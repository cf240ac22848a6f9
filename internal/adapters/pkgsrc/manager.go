// Package pkgsrc installs and lists packages inside a chroot.
package pkgsrc

import (
	"bufio"
	"bytes"
	"context"
	"strings"

	"go.trai.ch/imgbuild/internal/core/domain"
	"go.trai.ch/imgbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager implements ports.PackageManager by running the configured
// package tool under chroot.
type Manager struct {
	cmd     ports.Commander
	chroot  string
	install []string
	list    []string
}

// New creates a Manager from the settings' command vectors.
func New(cmd ports.Commander, commands domain.Commands) *Manager {
	return &Manager{
		cmd:     cmd,
		chroot:  commands.Chroot,
		install: commands.PkgInstall,
		list:    commands.PkgList,
	}
}

// Install installs all packages in one invocation.
func (m *Manager) Install(ctx context.Context, root string, packages []string) error {
	args := make([]string, 0, 1+len(m.install)+len(packages))
	args = append(args, root)
	args = append(args, m.install...)
	args = append(args, packages...)

	if err := m.cmd.Run(ctx, m.chroot, args...); err != nil {
		return zerr.With(zerr.Wrap(err, "package installer failed"), "packages", strings.Join(packages, ","))
	}
	return nil
}

// List returns the packages installed under root.
func (m *Manager) List(ctx context.Context, root string) ([]domain.Package, error) {
	args := append([]string{root}, m.list...)
	out, err := m.cmd.Output(ctx, m.chroot, args...)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "package lister failed"), "root", root)
	}
	pkgs, err := ParseList(out)
	if err != nil {
		return nil, zerr.With(err, "root", root)
	}
	return pkgs, nil
}

// ParseList parses package listings. Lines of the form "name version ..."
// and the pkgin parseable form "name-version;description" are accepted.
// A listing that cannot be read to the end is an error, not a shorter list.
func ParseList(out []byte) ([]domain.Package, error) {
	var pkgs []domain.Package
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		pkgs = append(pkgs, parseLine(line))
	}
	if err := sc.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "package listing unreadable"), "parsed", len(pkgs))
	}
	return pkgs, nil
}

func parseLine(line string) domain.Package {
	if fields := strings.Fields(line); len(fields) >= 2 && !strings.Contains(fields[0], ";") {
		return domain.Package{Name: fields[0], Version: fields[1]}
	}

	full, _, _ := strings.Cut(line, ";")
	full = strings.TrimSpace(full)
	if i := strings.LastIndexByte(full, '-'); i > 0 && i < len(full)-1 {
		return domain.Package{Name: full[:i], Version: full[i+1:]}
	}
	return domain.Package{Name: full}
}
