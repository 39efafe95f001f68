package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mrlokans/phrasetrainer/internal/config"
	"github.com/mrlokans/phrasetrainer/internal/database"
	"github.com/mrlokans/phrasetrainer/internal/database/phrases"
	"github.com/mrlokans/phrasetrainer/internal/romaji"
)

// CatalogImportCommand converts a catalog file into a SQLite catalog the
// server can load with CATALOG_PATH=<db>.
type CatalogImportCommand struct {
	CatalogPath    string
	Format         string
	DatabasePath   string
	RomajiBackfill bool
	DryRun         bool

	Out io.Writer
}

func NewCatalogImportCommand() *CatalogImportCommand {
	return &CatalogImportCommand{Out: os.Stdout}
}

func (cmd *CatalogImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("catalog-import", flag.ContinueOnError)

	fs.StringVar(&cmd.CatalogPath, "file", "", "Path to the source catalog (required)")
	fs.StringVar(&cmd.Format, "format", "", "Source format: json, yaml or toml (default: from extension)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the SQLite catalog to write")
	fs.BoolVar(&cmd.RomajiBackfill, "romaji", false, "Fill missing romaji from the translation reading")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Show what would be imported without writing")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s catalog-import -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Replace the SQLite phrase catalog with the contents of a catalog file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s catalog-import -file data/phrases.yaml -db phrases.db\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  CATALOG_PATH=phrases.db %s serve\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.CatalogPath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	return nil
}

func (cmd *CatalogImportCommand) Run() error {
	out := cmd.Out
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintln(out, "Catalog Import")
	fmt.Fprintln(out, "==============")

	if cmd.DryRun {
		fmt.Fprintln(out, "DRY RUN MODE - No changes will be made")
	}

	c, err := loadCatalog(cmd.CatalogPath, cmd.Format)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Read %d phrases from %s\n", c.Len(), cmd.CatalogPath)

	if cmd.RomajiBackfill {
		backfiller, err := romaji.NewBackfiller()
		if err != nil {
			return fmt.Errorf("failed to initialize romaji backfill: %w", err)
		}
		c = backfiller.Apply(c)
	}

	if cmd.DryRun {
		for _, d := range c.Difficulties() {
			fmt.Fprintf(out, "  %q: %d\n", d.Difficulty, d.Count)
		}
		fmt.Fprintln(out, "\nDry run complete. Use without -dry-run to import.")
		return nil
	}

	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	fmt.Fprintf(out, "Saving to database: %s\n", absDBPath)

	db, err := database.NewDatabase(absDBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := phrases.NewRepository(db.DB)
	if err := repo.ReplaceAll(c.Entries()); err != nil {
		return fmt.Errorf("failed to store catalog: %w", err)
	}

	stored, err := repo.Count()
	if err != nil {
		return fmt.Errorf("failed to count stored phrases: %w", err)
	}
	if stored != int64(c.Len()) {
		return fmt.Errorf("stored %d phrases, expected %d", stored, c.Len())
	}

	fmt.Fprintf(out, "[OK] Stored %d phrases\n", stored)
	return nil
}
