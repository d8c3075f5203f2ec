package ui

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var staticFiles embed.FS

// Assets holds app.js and app.css, rooted at the static directory.
var Assets fs.FS = mustSub(staticFiles, "static")

func mustSub(f fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(f, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// Stylesheet returns the embedded app.css for pages that must not depend on
// a running server.
func Stylesheet() string {
	b, err := fs.ReadFile(Assets, "app.css")
	if err != nil {
		panic(err)
	}
	return string(b)
}
