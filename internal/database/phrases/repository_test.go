package phrases

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/phrasetrainer/internal/entities"
)

func setupTestDB(t *testing.T) *Repository {
	dbPath := filepath.Join(t.TempDir(), "phrases.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.PhraseRecord{})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return NewRepository(db)
}

func samplePhrases() []entities.Phrase {
	return []entities.Phrase{
		{Text: "Hello", Translation: "こんにちは", Romaji: "konnichiwa", Difficulty: "easy"},
		{Text: "Thank you", Translation: "ありがとう", Romaji: "arigatou", Difficulty: "easy"},
		{Text: "Good night", Translation: "おやすみなさい", Difficulty: "medium"},
		{Text: "Hello", Translation: "こんにちは", Romaji: "konnichiwa", Difficulty: "easy"},
	}
}

func TestRepository_ReplaceAll_PreservesOrder(t *testing.T) {
	repo := setupTestDB(t)

	err := repo.ReplaceAll(samplePhrases())
	require.NoError(t, err)

	got, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, samplePhrases(), got)
}

func TestRepository_ReplaceAll_OverwritesPrevious(t *testing.T) {
	repo := setupTestDB(t)

	require.NoError(t, repo.ReplaceAll(samplePhrases()))
	replacement := []entities.Phrase{
		{Text: "Cat", Translation: "ねこ", Romaji: "neko", Difficulty: "easy"},
	}
	require.NoError(t, repo.ReplaceAll(replacement))

	got, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRepository_ReplaceAll_Empty(t *testing.T) {
	repo := setupTestDB(t)

	require.NoError(t, repo.ReplaceAll(samplePhrases()))
	require.NoError(t, repo.ReplaceAll(nil))

	got, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepository_List_EmptyStore(t *testing.T) {
	repo := setupTestDB(t)

	got, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, got)
}
