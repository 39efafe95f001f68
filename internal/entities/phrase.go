package entities

import "time"

// Phrase is a single catalog entry served to the typing game.
// The same shape is used for matched entries and the no-match placeholder.
type Phrase struct {
	Text        string `json:"text" yaml:"text" toml:"text"`
	Translation string `json:"translation" yaml:"translation" toml:"translation"`
	Romaji      string `json:"romaji" yaml:"romaji" toml:"romaji"`
	Difficulty  string `json:"difficulty" yaml:"difficulty" toml:"difficulty"`
}

// PhraseRecord is the SQLite row backing a catalog stored by catalog-import.
// Position keeps the catalog order stable across reads.
type PhraseRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Position    int       `gorm:"uniqueIndex" json:"position"`
	Text        string    `gorm:"type:text" json:"text"`
	Translation string    `gorm:"type:text" json:"translation"`
	Romaji      string    `gorm:"type:text" json:"romaji"`
	Difficulty  string    `gorm:"index;size:64" json:"difficulty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (PhraseRecord) TableName() string {
	return "phrases"
}

// ToPhrase drops the storage columns.
func (r PhraseRecord) ToPhrase() Phrase {
	return Phrase{
		Text:        r.Text,
		Translation: r.Translation,
		Romaji:      r.Romaji,
		Difficulty:  r.Difficulty,
	}
}

// DifficultyCount is the number of catalog entries sharing a difficulty tag.
type DifficultyCount struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}
