// Package romaji fills in missing romaji for catalog entries by reading the
// Japanese translation with the kagome morphological analyzer.
package romaji

import (
	"log"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/mrlokans/phrasetrainer/internal/catalog"
	"github.com/mrlokans/phrasetrainer/internal/entities"
)

// IPA feature index of the katakana reading.
const readingFeature = 7

// Backfiller derives romaji from Japanese text.
type Backfiller struct {
	t *tokenizer.Tokenizer
}

// NewBackfiller loads the IPA dictionary.
func NewBackfiller() (*Backfiller, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Backfiller{t: t}, nil
}

// Reading returns the katakana reading of text. Tokens the dictionary does
// not know are kept as written.
func (b *Backfiller) Reading(text string) string {
	var sb strings.Builder
	for _, token := range b.t.Tokenize(text) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		features := token.Features()
		if len(features) > readingFeature && features[readingFeature] != "*" {
			sb.WriteString(features[readingFeature])
			continue
		}
		sb.WriteString(token.Surface)
	}
	return sb.String()
}

// Romanize returns the romaji spelling of text, or false if some part of it
// has no kana reading.
func (b *Backfiller) Romanize(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	out, ok := FromKana(b.Reading(text))
	if !ok || out == "" {
		return "", false
	}
	return out, true
}

// Apply returns a copy of c where entries with empty romaji get one derived
// from their translation. Entries that cannot be romanized stay empty.
func (b *Backfiller) Apply(c *catalog.Catalog) *catalog.Catalog {
	filled, skipped := 0, 0
	out := c.Map(func(p entities.Phrase) entities.Phrase {
		if p.Romaji != "" {
			return p
		}
		if r, ok := b.Romanize(p.Translation); ok {
			p.Romaji = r
			filled++
		} else {
			skipped++
		}
		return p
	})
	log.Printf("Romaji backfill: filled %d entries, %d left without romaji", filled, skipped)
	return out
}
