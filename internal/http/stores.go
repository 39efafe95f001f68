package http

import (
	"github.com/mrlokans/phrasetrainer/internal/entities"
)

// PhraseSelector picks phrases for the API. Implemented by selector.Service.
type PhraseSelector interface {
	Select(difficulty string) entities.Phrase
	SelectDefault() entities.Phrase
	DefaultDifficulty() string
}

// CatalogInfo exposes read-only catalog statistics.
type CatalogInfo interface {
	Len() int
	Difficulties() []entities.DifficultyCount
}
