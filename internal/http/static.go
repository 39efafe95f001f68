package http

import (
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaticController serves the front-end bundle verbatim from a directory.
type StaticController struct {
	root       string
	indexFile  string
	files      http.FileSystem
	fileServer http.Handler
}

// NewStaticController creates a controller serving files under root.
// Directory listings are disabled.
func NewStaticController(root, indexFile string) *StaticController {
	if indexFile == "" {
		indexFile = "index.html"
	}
	files := gin.Dir(root, false)
	return &StaticController{
		root:       root,
		indexFile:  indexFile,
		files:      files,
		fileServer: http.FileServer(files),
	}
}

// Index serves the entry-point document.
// GET /
func (s *StaticController) Index(c *gin.Context) {
	name := path.Clean("/" + s.indexFile)
	if !s.isFile(name) {
		respondNotFound(c, "file")
		return
	}

	// c.File instead of the file server: the latter redirects /index.html to ./
	c.File(filepath.Join(s.root, filepath.FromSlash(name)))
}

// Asset serves any other file of the bundle at the site root, e.g. /main.js.
// Used as the NoRoute handler, so unknown API paths get a JSON 404.
func (s *StaticController) Asset(c *gin.Context) {
	if !isReadMethod(c) {
		respondMethodNotAllowed(c)
		return
	}

	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		respondNotFound(c, "endpoint")
		return
	}

	if !s.isFile(c.Request.URL.Path) {
		respondNotFound(c, "file")
		return
	}

	s.fileServer.ServeHTTP(c.Writer, c.Request)
}

// isFile reports whether name is a regular file of the bundle. http.Dir
// confines lookups to the root.
func (s *StaticController) isFile(name string) bool {
	f, err := s.files.Open(path.Clean("/" + name))
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	return err == nil && !info.IsDir()
}
