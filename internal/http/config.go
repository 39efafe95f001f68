package http

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Selector PhraseSelector
	Catalog  CatalogInfo

	// Front-end bundle
	StaticPath string
	IndexFile  string

	// Cross-origin policy; empty disables the CORS headers
	CORSAllowOrigin string

	// Application info
	Version string
}
