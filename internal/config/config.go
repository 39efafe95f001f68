package config

import (
	"github.com/spf13/viper"

	"github.com/mrlokans/phrasetrainer/internal/selector"
)

type (
	Config struct {
		HTTP
		Global
		Catalog
		UI
		Selector
	}

	HTTP struct {
		Port            int32
		Host            string
		CORSAllowOrigin string
		GzipEnabled     bool
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Catalog struct {
		Path           string
		Format         string // json, yaml, toml or sqlite; empty detects from the extension
		UseEmbedded    bool   // Serve the catalog bundled into the binary
		RomajiBackfill bool   // Derive missing romaji from the translation
	}
	UI struct {
		StaticPath string
		IndexFile  string
	}
	Selector struct {
		DefaultDifficulty string
		NoMatchMessage    string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("cors_allow_origin", "*")
	v.SetDefault("gzip_enabled", true)
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	// Catalog source
	v.SetDefault("catalog_path", DefaultCatalogPath)
	v.SetDefault("catalog_format", "")
	v.SetDefault("catalog_use_embedded", false)
	v.SetDefault("catalog_romaji_backfill", false)

	// Front-end bundle
	v.SetDefault("static_path", DefaultStaticPath)
	v.SetDefault("index_file", "index.html")

	// Selection
	v.SetDefault("default_difficulty", selector.DefaultDifficulty)
	v.SetDefault("no_match_message", selector.DefaultNoMatchMessage)

	return &Config{
		HTTP: HTTP{
			Port:            v.GetInt32("PORT"),
			Host:            v.GetString("HOST"),
			CORSAllowOrigin: v.GetString("CORS_ALLOW_ORIGIN"),
			GzipEnabled:     v.GetBool("GZIP_ENABLED"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Catalog: Catalog{
			Path:           v.GetString("CATALOG_PATH"),
			Format:         v.GetString("CATALOG_FORMAT"),
			UseEmbedded:    v.GetBool("CATALOG_USE_EMBEDDED"),
			RomajiBackfill: v.GetBool("CATALOG_ROMAJI_BACKFILL"),
		},
		UI: UI{
			StaticPath: v.GetString("STATIC_PATH"),
			IndexFile:  v.GetString("INDEX_FILE"),
		},
		Selector: Selector{
			DefaultDifficulty: v.GetString("DEFAULT_DIFFICULTY"),
			NoMatchMessage:    v.GetString("NO_MATCH_MESSAGE"),
		},
	}
}
