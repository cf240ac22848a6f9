// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/imgbuild/internal/adapters/cas"
	_ "go.trai.ch/imgbuild/internal/adapters/config"
	_ "go.trai.ch/imgbuild/internal/adapters/fs"
	_ "go.trai.ch/imgbuild/internal/adapters/imgadm"
	_ "go.trai.ch/imgbuild/internal/adapters/logger"
	_ "go.trai.ch/imgbuild/internal/adapters/mount"
	_ "go.trai.ch/imgbuild/internal/adapters/pkgsrc"
	_ "go.trai.ch/imgbuild/internal/adapters/rsync"
	_ "go.trai.ch/imgbuild/internal/adapters/shell"
	_ "go.trai.ch/imgbuild/internal/adapters/telemetry"
	_ "go.trai.ch/imgbuild/internal/adapters/zfs"
	// Register app and engine nodes.
	_ "go.trai.ch/imgbuild/internal/app"
	_ "go.trai.ch/imgbuild/internal/engine/pipeline"
)
