package config

const (
	// DefaultCatalogPath is the phrase catalog read at startup
	DefaultCatalogPath = "./data/phrases.json"

	// DefaultStaticPath is the directory holding the front-end bundle
	DefaultStaticPath = "./frontend"

	// DefaultDatabasePath is where catalog-import writes a SQLite catalog
	DefaultDatabasePath = "./phrases.db"
)
