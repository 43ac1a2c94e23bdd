// Package templates ships the default page template and the theme
// stylesheets compiled into the binary. The generator falls back to this
// bundle when no templates directory is configured.
package templates

import "embed"

//go:embed index.html styles
var FS embed.FS
