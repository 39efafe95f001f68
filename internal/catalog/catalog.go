// Package catalog holds the phrase catalog loaded once at startup.
//
// A Catalog is immutable after construction: every accessor returns copies,
// so it can be shared by concurrent requests without locking.
package catalog

import (
	"github.com/mrlokans/phrasetrainer/internal/entities"
)

// Catalog is an ordered, read-only collection of phrases.
type Catalog struct {
	entries      []entities.Phrase
	byDifficulty map[string][]int
	difficulties []string // first-seen order
}

// New builds a catalog from entries. The slice is copied; later changes to
// entries do not affect the catalog. Duplicates are kept.
func New(entries []entities.Phrase) *Catalog {
	c := &Catalog{
		entries:      make([]entities.Phrase, len(entries)),
		byDifficulty: make(map[string][]int),
	}
	copy(c.entries, entries)

	for i, p := range c.entries {
		if _, seen := c.byDifficulty[p.Difficulty]; !seen {
			c.difficulties = append(c.difficulties, p.Difficulty)
		}
		c.byDifficulty[p.Difficulty] = append(c.byDifficulty[p.Difficulty], i)
	}

	return c
}

// Len returns the number of entries. A nil catalog is empty.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns a copy of all entries in catalog order.
func (c *Catalog) Entries() []entities.Phrase {
	if c == nil {
		return []entities.Phrase{}
	}
	out := make([]entities.Phrase, len(c.entries))
	copy(out, c.entries)
	return out
}

// Matching returns the entries whose difficulty equals difficulty exactly
// (case-sensitive, no trimming), in catalog order.
func (c *Catalog) Matching(difficulty string) []entities.Phrase {
	if c == nil {
		return nil
	}
	idx := c.byDifficulty[difficulty]
	out := make([]entities.Phrase, len(idx))
	for i, j := range idx {
		out[i] = c.entries[j]
	}
	return out
}

// Difficulties lists the distinct difficulty tags with their entry counts,
// in the order each tag first appears in the catalog.
func (c *Catalog) Difficulties() []entities.DifficultyCount {
	if c == nil {
		return []entities.DifficultyCount{}
	}
	out := make([]entities.DifficultyCount, 0, len(c.difficulties))
	for _, d := range c.difficulties {
		out = append(out, entities.DifficultyCount{Difficulty: d, Count: len(c.byDifficulty[d])})
	}
	return out
}

// Map returns a new catalog with fn applied to every entry. The receiver is
// left untouched.
func (c *Catalog) Map(fn func(entities.Phrase) entities.Phrase) *Catalog {
	if c == nil {
		return New(nil)
	}
	mapped := make([]entities.Phrase, len(c.entries))
	for i, p := range c.entries {
		mapped[i] = fn(p)
	}
	return New(mapped)
}
