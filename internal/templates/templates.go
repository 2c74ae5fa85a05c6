// Package templates embeds the server-rendered page.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
