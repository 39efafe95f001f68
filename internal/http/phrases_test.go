package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/phrasetrainer/internal/catalog"
	"github.com/mrlokans/phrasetrainer/internal/entities"
	"github.com/mrlokans/phrasetrainer/internal/selector"
)

// recordingSelector remembers the difficulty it was asked for.
type recordingSelector struct {
	requested []string
	result    entities.Phrase
}

func (r *recordingSelector) Select(difficulty string) entities.Phrase {
	r.requested = append(r.requested, difficulty)
	out := r.result
	out.Difficulty = difficulty
	return out
}

func (r *recordingSelector) SelectDefault() entities.Phrase {
	return r.Select(r.DefaultDifficulty())
}

func (r *recordingSelector) DefaultDifficulty() string {
	return "easy"
}

func setupPhraseRouter(sel PhraseSelector, info CatalogInfo) *gin.Engine {
	controller := NewPhraseController(sel, info)

	router := gin.New()
	router.GET("/api/phrase", controller.GetPhrase)
	router.GET("/api/difficulties", controller.ListDifficulties)
	return router
}

func getPhrase(t *testing.T, router *gin.Engine, target string) (int, entities.Phrase) {
	t.Helper()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", target, nil)
	router.ServeHTTP(w, req)

	var phrase entities.Phrase
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &phrase))
	return w.Code, phrase
}

func TestPhraseController_GetPhrase(t *testing.T) {
	hello := entities.Phrase{Text: "Hello", Translation: "こんにちは", Romaji: "konnichiwa", Difficulty: "easy"}

	t.Run("single entry catalog returns that entry", func(t *testing.T) {
		svc := selector.New(catalog.New([]entities.Phrase{hello}), selector.Options{})
		router := setupPhraseRouter(svc, svc.Catalog())

		code, got := getPhrase(t, router, "/api/phrase?difficulty=easy")

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, hello, got)
	})

	t.Run("unmatched difficulty returns placeholder with 200", func(t *testing.T) {
		svc := selector.New(catalog.New([]entities.Phrase{hello}), selector.Options{})
		router := setupPhraseRouter(svc, svc.Catalog())

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/phrase?difficulty=hard", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"text":"No phrase available.","translation":"該当するフレーズがありません。","romaji":"","difficulty":"hard"}`,
			w.Body.String())
	})

	t.Run("missing parameter uses the default difficulty", func(t *testing.T) {
		sel := &recordingSelector{result: hello}
		router := setupPhraseRouter(sel, catalog.New(nil))

		code, got := getPhrase(t, router, "/api/phrase")

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, []string{"easy"}, sel.requested)
		assert.Equal(t, "easy", got.Difficulty)
	})

	t.Run("empty parameter is passed through as-is", func(t *testing.T) {
		sel := &recordingSelector{result: hello}
		router := setupPhraseRouter(sel, catalog.New(nil))

		getPhrase(t, router, "/api/phrase?difficulty=")

		assert.Equal(t, []string{""}, sel.requested)
	})

	t.Run("difficulty is not normalized", func(t *testing.T) {
		sel := &recordingSelector{result: hello}
		router := setupPhraseRouter(sel, catalog.New(nil))

		getPhrase(t, router, "/api/phrase?difficulty=%20Easy")

		assert.Equal(t, []string{" Easy"}, sel.requested)
	})

	t.Run("easy-only catalog never yields the placeholder by default", func(t *testing.T) {
		c := catalog.New([]entities.Phrase{
			hello,
			{Text: "Thank you", Translation: "ありがとう", Romaji: "arigatou", Difficulty: "easy"},
			{Text: "Cat", Translation: "ねこ", Romaji: "neko", Difficulty: "easy"},
		})
		svc := selector.New(c, selector.Options{})
		router := setupPhraseRouter(svc, c)

		for i := 0; i < 50; i++ {
			code, got := getPhrase(t, router, "/api/phrase")
			require.Equal(t, http.StatusOK, code)
			require.NotEqual(t, selector.PlaceholderText, got.Text)
			require.Contains(t, c.Entries(), got)
		}
	})
}

func TestPhraseController_ListDifficulties(t *testing.T) {
	c := catalog.New([]entities.Phrase{
		{Text: "a", Translation: "あ", Difficulty: "medium"},
		{Text: "b", Translation: "い", Difficulty: "easy"},
		{Text: "c", Translation: "う", Difficulty: "medium"},
	})
	svc := selector.New(c, selector.Options{})
	router := setupPhraseRouter(svc, c)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/difficulties", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response DifficultiesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "easy", response.Default)
	assert.Equal(t, []entities.DifficultyCount{
		{Difficulty: "medium", Count: 2},
		{Difficulty: "easy", Count: 1},
	}, response.Difficulties)
}
