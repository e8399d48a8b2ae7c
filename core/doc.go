// Package core contains the presentation logic of the listing website.
// It has no dependency on the HTTP framework and can be used on its own.
//
// - domain: listing and site settings models
// - listings: the YAML catalog, search filters and pagination
// - urls: listing paths and absolute URLs
// - jsonld: schema.org structured data
// - render: html/template view rendering and template functions
// - errors: error types the handlers map to status codes
// - interfaces: contracts for cache, logger, renderer and catalog
//
// # Usage Example
//
//	builder := urls.NewBuilder(urls.Options{})
//	renderer := render.NewViewRenderService(web.Views, render.Funcs(builder), logger)
//
//	html, err := renderer.RenderToString(ctx, "property/details", model, false)
package core
