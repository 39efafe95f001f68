// Package bundled ships a sample phrase catalog inside the binary so the
// server can start without a catalog file on disk.
package bundled

import (
	"embed"
	"fmt"
)

//go:embed assets
var embeddedAssets embed.FS

const catalogAsset = "assets/phrases.json"

// CatalogJSON returns the bundled catalog in JSON form.
func CatalogJSON() ([]byte, error) {
	data, err := embeddedAssets.ReadFile(catalogAsset)
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}
	return data, nil
}
