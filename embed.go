package blog

import "embed"

// EmbeddedAssets contains the scripts served by the host itself:
// reactoid.js, which mounts the comment widget.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
