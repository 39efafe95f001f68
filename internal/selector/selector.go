// Package selector picks a random phrase of a requested difficulty.
package selector

import (
	"github.com/mrlokans/phrasetrainer/internal/catalog"
	"github.com/mrlokans/phrasetrainer/internal/entities"
)

const (
	// DefaultDifficulty is used when a request does not name a difficulty.
	DefaultDifficulty = "easy"

	// PlaceholderText is the text of the no-match response.
	PlaceholderText = "No phrase available."

	// DefaultNoMatchMessage is the placeholder translation ("no matching phrase").
	DefaultNoMatchMessage = "該当するフレーズがありません。"
)

// Options tunes a Service. Zero values fall back to the package defaults.
type Options struct {
	DefaultDifficulty string
	NoMatchMessage    string
	Source            Source
}

// Service serves phrases from a fixed catalog.
type Service struct {
	catalog           *catalog.Catalog
	source            Source
	defaultDifficulty string
	noMatchMessage    string
}

// New creates a selector over c.
func New(c *catalog.Catalog, opts Options) *Service {
	if opts.DefaultDifficulty == "" {
		opts.DefaultDifficulty = DefaultDifficulty
	}
	if opts.NoMatchMessage == "" {
		opts.NoMatchMessage = DefaultNoMatchMessage
	}
	if opts.Source == nil {
		opts.Source = NewSource()
	}

	return &Service{
		catalog:           c,
		source:            opts.Source,
		defaultDifficulty: opts.DefaultDifficulty,
		noMatchMessage:    opts.NoMatchMessage,
	}
}

// DefaultDifficulty returns the difficulty used when none is requested.
func (s *Service) DefaultDifficulty() string {
	return s.defaultDifficulty
}

// Catalog returns the catalog the service draws from.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Select returns a random phrase tagged with difficulty, or the placeholder
// when none matches.
func (s *Service) Select(difficulty string) entities.Phrase {
	return Select(s.catalog, difficulty, s.source, s.noMatchMessage)
}

// SelectDefault is Select with the default difficulty.
func (s *Service) SelectDefault() entities.Phrase {
	return s.Select(s.defaultDifficulty)
}

// Select filters c by exact difficulty and draws one match uniformly using
// src. With no matches it returns Placeholder(difficulty, noMatchMessage).
func Select(c *catalog.Catalog, difficulty string, src Source, noMatchMessage string) entities.Phrase {
	matches := c.Matching(difficulty)
	if len(matches) == 0 {
		return Placeholder(difficulty, noMatchMessage)
	}
	return matches[src.IntN(len(matches))]
}

// Placeholder builds the no-match payload echoing the requested difficulty.
func Placeholder(difficulty, noMatchMessage string) entities.Phrase {
	return entities.Phrase{
		Text:        PlaceholderText,
		Translation: noMatchMessage,
		Romaji:      "",
		Difficulty:  difficulty,
	}
}
