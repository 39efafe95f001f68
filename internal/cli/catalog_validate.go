package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/phrasetrainer/internal/catalog"
)

// CatalogValidateCommand loads a catalog the way the server does and reports on it.
type CatalogValidateCommand struct {
	CatalogPath string
	Format      string
	Verbose     bool

	Out io.Writer
}

func NewCatalogValidateCommand() *CatalogValidateCommand {
	return &CatalogValidateCommand{Out: os.Stdout}
}

func (cmd *CatalogValidateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("catalog-validate", flag.ContinueOnError)

	fs.StringVar(&cmd.CatalogPath, "file", "", "Path to the phrase catalog (required)")
	fs.StringVar(&cmd.Format, "format", "", "Catalog format: json, yaml, toml or sqlite (default: from extension)")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "List every problem entry")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s catalog-validate -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Load a phrase catalog and report phrase counts per difficulty.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.CatalogPath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	return nil
}

// CatalogReport summarizes a loaded catalog.
type CatalogReport struct {
	Total            int
	EmptyText        []int
	EmptyTranslation []int
	EmptyRomaji      int
}

// Problems reports whether any entry lacks text or translation.
func (r CatalogReport) Problems() int {
	return len(r.EmptyText) + len(r.EmptyTranslation)
}

// Inspect scans c for entries a learner could not type.
func Inspect(c *catalog.Catalog) CatalogReport {
	report := CatalogReport{Total: c.Len()}
	for i, p := range c.Entries() {
		if p.Text == "" {
			report.EmptyText = append(report.EmptyText, i)
		}
		if p.Translation == "" {
			report.EmptyTranslation = append(report.EmptyTranslation, i)
		}
		if p.Romaji == "" {
			report.EmptyRomaji++
		}
	}
	return report
}

func (cmd *CatalogValidateCommand) Run() error {
	out := cmd.Out
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintln(out, "Catalog Validation")
	fmt.Fprintln(out, "==================")
	fmt.Fprintf(out, "File: %s\n", cmd.CatalogPath)

	c, err := loadCatalog(cmd.CatalogPath, cmd.Format)
	if err != nil {
		return err
	}

	report := Inspect(c)

	fmt.Fprintf(out, "\nPhrases: %d\n", report.Total)
	for _, d := range c.Difficulties() {
		name := d.Difficulty
		if name == "" {
			name = "(none)"
		}
		fmt.Fprintf(out, "  %-12s %d\n", name, d.Count)
	}
	fmt.Fprintf(out, "Without romaji: %d\n", report.EmptyRomaji)

	if report.Problems() == 0 {
		fmt.Fprintln(out, "\n[OK] Catalog is valid")
		return nil
	}

	fmt.Fprintf(out, "\n[WARN] %d entries without text, %d without translation\n",
		len(report.EmptyText), len(report.EmptyTranslation))
	if cmd.Verbose {
		for _, i := range report.EmptyText {
			fmt.Fprintf(out, "  entry %d: empty text\n", i)
		}
		for _, i := range report.EmptyTranslation {
			fmt.Fprintf(out, "  entry %d: empty translation\n", i)
		}
	}
	return nil
}

func loadCatalog(path, formatName string) (*catalog.Catalog, error) {
	var format catalog.Format
	if formatName != "" {
		f, err := catalog.ParseFormat(formatName)
		if err != nil {
			return nil, err
		}
		format = f
	}
	return catalog.LoadFile(path, format)
}
