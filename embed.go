package studyblog

import "embed"

// EmbeddedAssets contains the static assets shipped with the binary:
// studyblog.css and studyblog.js.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

// SeedPosts is the YAML document with the sample posts served by default.
//
//go:embed seed/posts.yaml
var SeedPosts []byte
