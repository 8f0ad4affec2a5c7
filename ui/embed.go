// Package ui embeds the static browser frontend served under /ui.
package ui

import "embed"

//go:embed static
var Files embed.FS
