package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patientedu/internal/app/catalog"
	"patientedu/internal/app/ds"
)

type fixedLoader struct{ src catalog.Source }

func (l *fixedLoader) ListSections() ([]ds.Section, error)     { return l.src.Sections, nil }
func (l *fixedLoader) ListDiseases() ([]ds.Disease, error)     { return l.src.Diseases, nil }
func (l *fixedLoader) ListFiles() ([]ds.FileAttachment, error) { return l.src.Files, nil }
func (l *fixedLoader) ListBanners() ([]ds.Banner, error)       { return l.src.Banners, nil }
func (l *fixedLoader) ListTopics() ([]ds.AboutTopic, error)    { return l.src.Topics, nil }

// newTestRouter поднимает роутер с каталогом на фиксированных данных.
// БД, хранилище и redis для читающих маршрутов не нужны.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	loader := &fixedLoader{src: catalog.Source{
		Sections: []ds.Section{
			{ID: 1, Name: "Эндокринология", ColorClass: "sky"},
		},
		Diseases: []ds.Disease{
			{ID: 10, Name: "Diabetes", Description: "blood sugar disorder", SectionID: 1},
			{ID: 11, Name: "Goiter", Description: "thyroid enlargement", SectionID: 1},
		},
		Files: []ds.FileAttachment{
			{ID: 100, Name: "Памятка", FilePath: "pamyatka-1.pdf", FileType: "pdf", DiseaseID: 10},
		},
	}}
	cat := catalog.NewService(loader, nil)
	require.NoError(t, cat.Refresh())

	h := &Handler{Catalog: cat}
	router := gin.New()
	router.GET("/api/tree", h.ApiGetTree)
	router.GET("/api/search", h.ApiSearch)
	router.GET("/api/sections/:id/diseases", h.ApiFilterSectionDiseases)
	router.GET("/api/diseases/:id/export", h.ApiExportDiseaseWord)
	return router
}

func doGet(t *testing.T, router *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestApiGetTree(t *testing.T) {
	router := newTestRouter(t)
	w := doGet(t, router, "/api/tree")
	require.Equal(t, http.StatusOK, w.Code)

	var tree catalog.Tree
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tree))
	require.Len(t, tree.Sections, 1)
	assert.Len(t, tree.Sections[0].Diseases, 2)
	assert.Len(t, tree.Sections[0].Diseases[0].Files, 1)
}

func TestApiSearch(t *testing.T) {
	router := newTestRouter(t)
	w := doGet(t, router, "/api/search?q=sugar")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Query   string `json:"query"`
		Count   int    `json:"count"`
		Results []struct {
			DiseaseID       string `json:"disease_id"`
			Match           string `json:"match"`
			DiseaseNameHTML string `json:"disease_name_html"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "10", resp.Results[0].DiseaseID)
	assert.Equal(t, "description", resp.Results[0].Match)
}

func TestApiSearchEmptyQuery(t *testing.T) {
	router := newTestRouter(t)
	w := doGet(t, router, "/api/search?q=")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count   int               `json:"count"`
		Results []json.RawMessage `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)
	// пустой запрос — пустой массив, не null
	assert.NotNil(t, resp.Results)
}

func TestApiSearchHighlights(t *testing.T) {
	router := newTestRouter(t)
	w := doGet(t, router, "/api/search?q=diab")
	require.Equal(t, http.StatusOK, w.Code)

	// сравниваем распакованное поле: ctx.JSON экранирует html в теле ответа
	var resp struct {
		Results []struct {
			DiseaseNameHTML string `json:"disease_name_html"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "<mark>Diab</mark>etes", resp.Results[0].DiseaseNameHTML)
}

func TestApiFilterSectionDiseases(t *testing.T) {
	router := newTestRouter(t)

	// пустой запрос — полный список
	w := doGet(t, router, "/api/sections/1/diseases")
	require.Equal(t, http.StatusOK, w.Code)
	var all []catalog.Disease
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 2)

	w = doGet(t, router, "/api/sections/1/diseases?q=thyroid")
	var filtered []catalog.Disease
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, "Goiter", filtered[0].Name)

	w = doGet(t, router, "/api/sections/777/diseases")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApiExportDiseaseWord(t *testing.T) {
	router := newTestRouter(t)

	w := doGet(t, router, "/api/diseases/10/export")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, wordMIME, w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	w = doGet(t, router, "/api/diseases/404/export")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
