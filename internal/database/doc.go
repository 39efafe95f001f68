// Package database provides the SQLite storage used for catalogs written by
// the catalog-import command.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup and migrations
//	└── phrases/         # Ordered phrase rows
//
// The HTTP layer never writes here. A stored catalog is read once at startup
// and handed to the selector as an in-memory value, like any file catalog.
//
//	db, err := database.NewDatabase("./phrases.db")
//	repo := phrases.NewRepository(db.DB)
//	entries, err := repo.List()
package database
