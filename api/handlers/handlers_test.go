package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/api/handlers"
	"portfolio-api/content"
	"portfolio-api/dto"
	"portfolio-api/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	post := `---
title: Hello
date: "2024-03-01"
category: dev
tags: [go]
---
Hi there.`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.md"), []byte(post), 0o644))

	lib := content.NewLibrary(dir)
	postSvc := services.NewPostService(lib)
	commentSvc := services.NewCommentService(nil)

	r := gin.New()
	api := r.Group("/api/v1")
	api.GET("/posts", handlers.ListPostsHandler(postSvc))
	api.GET("/posts/:slug", handlers.GetPostHandler(postSvc))
	api.GET("/categories", handlers.ListCategoriesHandler(postSvc))
	api.GET("/comments", handlers.ListCommentsHandler(commentSvc))
	api.POST("/comments", handlers.CreateCommentHandler(commentSvc))
	return r
}

func TestListPosts(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var out dto.PostListDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Items, 1)
	assert.Equal(t, "hello", out.Items[0].Slug)
}

func TestGetPost(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/hello", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var out dto.PostDetailDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "Hello", out.Title)
	assert.Contains(t, out.HTML, "Hi there.")
}

func TestGetPostNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCategories(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var out []dto.CategoryCountDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "dev", out[0].Category)
}

func TestListCommentsRequiresPostSlug(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/comments", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCommentRejectsMissingFields(t *testing.T) {
	r := newTestRouter(t)

	cases := []string{
		`{}`,
		`{"postSlug": "hello"}`,
		`{"postSlug": "hello", "name": "kim"}`,
		`{"name": "kim", "content": "hi"}`,
		`not json`,
	}
	for _, body := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/comments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
}
