package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/phrasetrainer/internal/entities"
)

func fixture() []entities.Phrase {
	return []entities.Phrase{
		{Text: "Hello", Translation: "こんにちは", Romaji: "konnichiwa", Difficulty: "easy"},
		{Text: "Good night", Translation: "おやすみなさい", Romaji: "oyasuminasai", Difficulty: "medium"},
		{Text: "Thank you", Translation: "ありがとう", Romaji: "arigatou", Difficulty: "easy"},
		{Text: "Hello", Translation: "こんにちは", Romaji: "konnichiwa", Difficulty: "easy"},
		{Text: "Untagged", Translation: "なし"},
	}
}

func TestNew_CopiesInput(t *testing.T) {
	entries := fixture()
	c := New(entries)

	entries[0].Text = "mutated"

	assert.Equal(t, "Hello", c.Entries()[0].Text)
}

func TestEntries_ReturnsCopy(t *testing.T) {
	c := New(fixture())

	got := c.Entries()
	got[0].Text = "mutated"

	assert.Equal(t, fixture(), c.Entries())
}

func TestLen(t *testing.T) {
	assert.Equal(t, 5, New(fixture()).Len())
	assert.Equal(t, 0, New(nil).Len())
}

func TestMatching(t *testing.T) {
	c := New(fixture())

	t.Run("keeps catalog order and duplicates", func(t *testing.T) {
		got := c.Matching("easy")
		assert.Len(t, got, 3)
		assert.Equal(t, "Hello", got[0].Text)
		assert.Equal(t, "Thank you", got[1].Text)
		assert.Equal(t, "Hello", got[2].Text)
	})

	t.Run("is case sensitive", func(t *testing.T) {
		assert.Empty(t, c.Matching("Easy"))
		assert.Empty(t, c.Matching(" easy"))
	})

	t.Run("empty difficulty groups untagged entries", func(t *testing.T) {
		got := c.Matching("")
		assert.Len(t, got, 1)
		assert.Equal(t, "Untagged", got[0].Text)
	})

	t.Run("unknown difficulty", func(t *testing.T) {
		assert.Empty(t, c.Matching("hard"))
	})
}

func TestDifficulties_FirstSeenOrder(t *testing.T) {
	c := New(fixture())

	assert.Equal(t, []entities.DifficultyCount{
		{Difficulty: "easy", Count: 3},
		{Difficulty: "medium", Count: 1},
		{Difficulty: "", Count: 1},
	}, c.Difficulties())
}

func TestMap_LeavesReceiverUntouched(t *testing.T) {
	c := New(fixture())

	upper := c.Map(func(p entities.Phrase) entities.Phrase {
		p.Romaji = "x"
		return p
	})

	for _, p := range upper.Entries() {
		assert.Equal(t, "x", p.Romaji)
	}
	assert.Equal(t, fixture(), c.Entries())
	assert.Equal(t, c.Difficulties(), upper.Difficulties())
}

func TestNilCatalog_IsEmpty(t *testing.T) {
	var c *Catalog

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Entries())
	assert.Empty(t, c.Matching("easy"))
	assert.Empty(t, c.Difficulties())
	assert.Equal(t, 0, c.Map(func(p entities.Phrase) entities.Phrase { return p }).Len())
}
