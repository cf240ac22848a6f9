package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

var (
	packageSpecPattern  = regexp.MustCompile(`^[A-Za-z0-9\-_.+,]*$`)
	packageTokenPattern = regexp.MustCompile(`[A-Za-z0-9\-_.+]+`)
	packageNamePattern  = regexp.MustCompile(`^[A-Za-z0-9\-_.+]+$`)
)

// Package is a package present inside a chroot.
type Package struct {
	Name    string
	Version string
}

// String returns "name-version", or the bare name when the version is unknown.
func (p Package) String() string {
	if p.Version == "" {
		return p.Name
	}
	return p.Name + "-" + p.Version
}

// ParsePackages validates a comma separated package specification and returns its tokens in order.
// An empty specification yields an empty list.
func ParsePackages(spec string) ([]string, error) {
	if !packageSpecPattern.MatchString(spec) {
		return nil, zerr.With(ErrInvalidPackageSpec, "spec", spec)
	}
	tokens := make([]string, 0, strings.Count(spec, ",")+1)
	for _, field := range strings.Split(spec, ",") {
		if packageTokenPattern.MatchString(field) {
			tokens = append(tokens, field)
		}
	}
	return tokens, nil
}
