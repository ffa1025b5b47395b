// Package web holds the server-rendered templates and static assets, embedded
// so the binary serves them without a working-directory dependency.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS

//go:embed static
var Static embed.FS
