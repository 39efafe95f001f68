// Package phrases provides database operations for stored phrase catalogs.
//
// # Usage
//
//	repo := phrases.NewRepository(db)
//	err := repo.ReplaceAll(entries)
//	entries, err := repo.List()
package phrases

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/phrasetrainer/internal/entities"
)

const insertBatchSize = 200

// Repository handles phrase catalog database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new phrases repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ReplaceAll swaps the stored catalog for entries, preserving their order.
func (r *Repository) ReplaceAll(entries []entities.Phrase) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.PhraseRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear phrases: %w", err)
		}
		if len(entries) == 0 {
			return nil
		}

		records := make([]entities.PhraseRecord, len(entries))
		for i, p := range entries {
			records[i] = entities.PhraseRecord{
				Position:    i,
				Text:        p.Text,
				Translation: p.Translation,
				Romaji:      p.Romaji,
				Difficulty:  p.Difficulty,
			}
		}
		if err := tx.CreateInBatches(records, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert phrases: %w", err)
		}
		return nil
	})
}

// List returns every stored phrase in catalog order.
func (r *Repository) List() ([]entities.Phrase, error) {
	var records []entities.PhraseRecord
	if err := r.db.Order("position ASC").Find(&records).Error; err != nil {
		return nil, err
	}

	out := make([]entities.Phrase, len(records))
	for i, rec := range records {
		out[i] = rec.ToPhrase()
	}
	return out, nil
}

// Count returns the number of stored phrases.
func (r *Repository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&entities.PhraseRecord{}).Count(&n).Error
	return n, err
}
