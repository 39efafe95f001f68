package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/phrasetrainer/internal/entities"
)

// DifficultyQueryParam is the query parameter naming the requested difficulty.
const DifficultyQueryParam = "difficulty"

// PhraseController serves random phrases.
type PhraseController struct {
	selector PhraseSelector
	catalog  CatalogInfo
}

// NewPhraseController creates a new phrase controller.
func NewPhraseController(selector PhraseSelector, catalog CatalogInfo) *PhraseController {
	return &PhraseController{
		selector: selector,
		catalog:  catalog,
	}
}

// GetPhrase returns one random phrase of the requested difficulty.
// A missing difficulty parameter means the default one; an unmatched
// difficulty still answers 200 with the placeholder phrase.
// GET /api/phrase?difficulty=easy
func (pc *PhraseController) GetPhrase(c *gin.Context) {
	difficulty, ok := c.GetQuery(DifficultyQueryParam)
	if !ok {
		c.JSON(http.StatusOK, pc.selector.SelectDefault())
		return
	}

	c.JSON(http.StatusOK, pc.selector.Select(difficulty))
}

// DifficultiesResponse lists the difficulty tags present in the catalog.
type DifficultiesResponse struct {
	Default      string                     `json:"default"`
	Difficulties []entities.DifficultyCount `json:"difficulties"`
}

// ListDifficulties returns each difficulty tag with its phrase count.
// GET /api/difficulties
func (pc *PhraseController) ListDifficulties(c *gin.Context) {
	c.JSON(http.StatusOK, DifficultiesResponse{
		Default:      pc.selector.DefaultDifficulty(),
		Difficulties: pc.catalog.Difficulties(),
	})
}
