package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/antoniolaudieri/rimborsami/internal/domain"
	"github.com/antoniolaudieri/rimborsami/internal/mocks"
	"github.com/antoniolaudieri/rimborsami/internal/service"
	"github.com/antoniolaudieri/rimborsami/internal/validator"
)

func newNewsRouter(h *NewsHandler) *gin.Engine {
	router := gin.New()
	router.GET("/api/v1/news", h.ListNews)
	router.GET("/api/v1/news/:slug", h.GetArticle)
	router.GET("/api/v1/news/:slug/related", h.RelatedArticles)
	router.GET("/api/v1/authors", h.ListAuthors)
	router.GET("/api/v1/authors/:slug", h.GetAuthor)
	return router
}

func TestListNews_DefaultPaging(t *testing.T) {
	mockService := mocks.NewMockContentServiceInterface(t)
	handler := NewNewsHandler(mockService, validator.NewValidator())

	mockService.EXPECT().
		ListNews(mock.Anything, domain.NewsFilter{Limit: domain.DefaultPageSize}).
		Return([]service.ArticleCard{{Slug: "rimborso-volo", Title: "Rimborso volo"}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/news", nil)
	w := httptest.NewRecorder()
	newNewsRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data  []service.ArticleCard `json:"data"`
		Limit int                   `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	require.Equal(t, "rimborso-volo", resp.Data[0].Slug)
	require.Equal(t, domain.DefaultPageSize, resp.Limit)
}

func TestListNews_CategoryFilter(t *testing.T) {
	mockService := mocks.NewMockContentServiceInterface(t)
	handler := NewNewsHandler(mockService, validator.NewValidator())

	mockService.EXPECT().
		ListNews(mock.Anything, domain.NewsFilter{Category: "flight", Limit: 5, Offset: 10}).
		Return([]service.ArticleCard{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/news?category=flight&limit=5&offset=10", nil)
	w := httptest.NewRecorder()
	newNewsRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"data":[],"limit":5,"offset":10}`, w.Body.String())
}

func TestListNews_InvalidQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{"limit too large", "limit=1000", "limit"},
		{"negative offset", "offset=-1", "offset"},
		{"malformed category", "category=%3F%3F%3F", "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockContentServiceInterface(t)
			handler := NewNewsHandler(mockService, validator.NewValidator())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/news?"+tt.query, nil)
			w := httptest.NewRecorder()
			newNewsRouter(handler).ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp struct {
				Fields map[string]string `json:"fields"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp.Fields, tt.field)
		})
	}
}

func TestListNews_NonNumericLimit(t *testing.T) {
	handler := NewNewsHandler(mocks.NewMockContentServiceInterface(t), validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/news?limit=abc", nil)
	w := httptest.NewRecorder()
	newNewsRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListNews_CategoryMissingFromTable(t *testing.T) {
	mockService := mocks.NewMockContentServiceInterface(t)
	handler := NewNewsHandler(mockService, validator.NewValidator())

	mockService.EXPECT().
		ListNews(mock.Anything, domain.NewsFilter{Category: "utilities", Limit: domain.DefaultPageSize}).
		Return([]service.ArticleCard{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/news?category=utilities", nil)
	w := httptest.NewRecorder()
	newNewsRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetArticle(t *testing.T) {
	mockService := mocks.NewMockContentServiceInterface(t)
	handler := NewNewsHandler(mockService, validator.NewValidator())

	mockService.EXPECT().
		GetArticle(mock.Anything, "rimborso-volo").
		Return(&service.ArticleDetail{
			ArticleCard: service.ArticleCard{Slug: "rimborso-volo", Title: "Rimborso volo"},
			Content:     "<p>Testo</p>",
		})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/news/rimborso-volo", nil)
	w := httptest.NewRecorder()
	newNewsRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"slug":"rimborso-volo"`)
	require.Contains(t, w.Body.String(), `Testo`)
}

func TestGetArticle_NotFound(t *testing.T) {
	mockService := mocks.NewMockContentServiceInterface(t)
	handler := NewNewsHandler(mockService, validator.NewValidator())

	mockService.EXPECT().GetArticle(mock.Anything, "missing").Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/news/missing", nil)
	w := httptest.NewRecorder()
	newNewsRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"article not found"}`, w.Body.String())
}

func TestGetArticle_InvalidSlug(t *testing.T) {
	mockService := mocks.NewMockContentServiceInterface(t)
	handler := NewNewsHandler(mockService, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/news/Not_A%20Slug", nil)
	w := httptest.NewRecorder()
	newNewsRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetArticle", mock.Anything, mock.Anything)
}

func TestRelatedArticles(t *testing.T) {
	mockService := mocks.NewMockContentServiceInterface(t)
	handler := NewNewsHandler(mockService, validator.NewValidator())

	mockService.EXPECT().
		RelatedArticles(mock.Anything, "rimborso-volo").
		Return([]service.ArticleCard{{Slug: "a"}, {Slug: "b"}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/news/rimborso-volo/related", nil)
	w := httptest.NewRecorder()
	newNewsRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []service.ArticleCard `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
}

func TestListAuthors(t *testing.T) {
	mockService := mocks.NewMockContentServiceInterface(t)
	handler := NewNewsHandler(mockService, validator.NewValidator())

	mockService.EXPECT().
		ListAuthors(mock.Anything).
		Return([]domain.NewsAuthor{{Slug: "giulia-rossi", Name: "Giulia Rossi", ArticleCount: 4}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/authors", nil)
	w := httptest.NewRecorder()
	newNewsRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"article_count":4`)
}

func TestGetAuthor(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockService := mocks.NewMockContentServiceInterface(t)
		handler := NewNewsHandler(mockService, validator.NewValidator())

		mockService.EXPECT().
			GetAuthor(mock.Anything, "giulia-rossi").
			Return(&service.AuthorProfile{
				NewsAuthor: domain.NewsAuthor{Slug: "giulia-rossi", Name: "Giulia Rossi"},
				Articles:   []service.ArticleCard{{Slug: "rimborso-volo"}},
			})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/authors/giulia-rossi", nil)
		w := httptest.NewRecorder()
		newNewsRouter(handler).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"rimborso-volo"`)
	})

	t.Run("not found", func(t *testing.T) {
		mockService := mocks.NewMockContentServiceInterface(t)
		handler := NewNewsHandler(mockService, validator.NewValidator())

		mockService.EXPECT().GetAuthor(mock.Anything, "nobody").Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/authors/nobody", nil)
		w := httptest.NewRecorder()
		newNewsRouter(handler).ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
