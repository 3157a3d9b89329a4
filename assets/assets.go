// Package assets contains the images used by the apps.
package assets

import "embed"

//go:embed tex/*.png
var FS embed.FS
