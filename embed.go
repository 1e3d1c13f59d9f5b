package mdblog

import "embed"

// EmbeddedAssets contains the default stylesheet served at /public/mdblog.css.
// Site stylesheets under StaticDir load after it and can override any rule.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
