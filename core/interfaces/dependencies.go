// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by renderers and handlers

package interfaces

// Dependencies holds all external dependencies required by the core helpers
type Dependencies struct {
	// Cache stores rendered fragments
	Cache Cache

	// Logger provides structured logging
	Logger Logger
}
