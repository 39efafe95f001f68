// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## HTTP Dependencies
//
//   - PhraseSelector: picks one phrase per request (internal/http/stores.go)
//   - CatalogInfo: read-only catalog statistics for /health and /api/difficulties
//     (internal/http/stores.go)
//
// ## Randomness
//
//   - Source: uniform integer draws for the selector (internal/selector/source.go)
//
// # Adding a New Catalog Format
//
// To accept another catalog encoding:
//
//  1. Add a Format constant and its names to ParseFormat in internal/catalog/loader.go
//
//  2. Decode into []entities.Phrase and return ErrNotSequence when the document
//     is not a list of phrase records:
//
//     func parseCSV(data []byte) ([]entities.Phrase, error)
//
//  3. Dispatch to it from Parse
//
// # Replacing the Random Source
//
// Tests and reproducible runs inject their own generator:
//
//	src := selector.NewSeededSource(1, 2)
//	svc := selector.New(c, selector.Options{Source: src})
//
// Sources shared between goroutines must be wrapped with selector.NewLockedSource.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for examples.
package interfaces
