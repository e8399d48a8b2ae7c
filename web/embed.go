// ABOUTME: Embedded view templates for the listing site
// ABOUTME: Exposes the views directory as an fs.FS for the view render service

package web

import "embed"

// Views holds views/**.tmpl
//
//go:embed views
var Views embed.FS
