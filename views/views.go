// Package views embeds the HTML templates of the assistant widget.
package views

import "embed"

//go:embed *.html layouts/*.html partials/*.html
var FS embed.FS
