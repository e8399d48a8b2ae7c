// Package api provides the HTTP layer for the listing website.
// JSON endpoints use the Huma framework for OpenAPI documentation and
// request validation; HTML pages are plain chi handlers that return results.
//
// # Architecture
//
// - server.go: router, CORS, middleware and Huma configuration
// - handlers/: text and share endpoints plus the listing pages
// - binding/: query dictionaries, AJAX detection and model state
// - results/: view, HTML, JSON, redirect and status results
// - dto/: Data Transfer Objects for the JSON endpoints
// - middleware/: request logging, feature flags and rate limiting
//
// # OpenAPI
//
// - JSON spec available at /openapi.json
// - Interactive docs at /docs
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    Flags:      featureflags.NewEnvManager("FEATURE_"),
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//
//	handlers.NewTextHandler(logger).RegisterRoutes(humaAPI)
//	pages.RegisterRoutes(router, urls.DefaultListingRoute)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// JSON endpoints use the RFC 7807 error format:
//
//	{
//	    "status": 404,
//	    "title": "Not Found",
//	    "detail": "listing not found: C1234"
//	}
//
// Pages render the shared error view with the mapped status code instead.
package api
