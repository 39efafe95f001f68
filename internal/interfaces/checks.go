package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"math/rand/v2"

	"github.com/mrlokans/phrasetrainer/internal/catalog"
	"github.com/mrlokans/phrasetrainer/internal/cli"
	"github.com/mrlokans/phrasetrainer/internal/http"
	"github.com/mrlokans/phrasetrainer/internal/selector"
)

// =============================================================================
// HTTP dependencies
// =============================================================================

var _ http.PhraseSelector = (*selector.Service)(nil)
var _ http.CatalogInfo = (*catalog.Catalog)(nil)

// =============================================================================
// Randomness
// =============================================================================

// A seeded *rand.Rand can be handed to selector.NewLockedSource directly
var _ selector.Source = (*rand.Rand)(nil)

// =============================================================================
// CLI commands
// =============================================================================

type command interface {
	ParseFlags(args []string) error
	Run() error
}

var _ command = (*cli.CatalogValidateCommand)(nil)
var _ command = (*cli.CatalogImportCommand)(nil)
