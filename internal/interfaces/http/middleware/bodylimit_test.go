package middleware

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bodyLimitRouter(cfg BodyLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), BodyLimit(cfg))
	router.POST("/leave-requests", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.String(http.StatusBadRequest, "body too large")
			return
		}
		c.String(http.StatusOK, "ok")
	})
	router.POST("/compliance/mlwf/challans", func(c *gin.Context) {
		if _, err := c.FormFile("file"); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.String(http.StatusCreated, "stored")
	})
	return router
}

func challanUpload(t *testing.T, size int) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "challan.pdf")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), size))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/compliance/mlwf/challans", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestBodyLimit(t *testing.T) {
	router := bodyLimitRouter(BodyLimitConfig{MaxBytes: 100, MaxUploadBytes: 4096})

	t.Run("json within limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/leave-requests", strings.NewReader(`{"reason":"fever"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("json over the limit is rejected up front", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/leave-requests", strings.NewReader(strings.Repeat("x", 200)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(RequestIDHeader, "req-7")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), "REQUEST_TOO_LARGE")
		assert.Contains(t, w.Body.String(), "req-7")
	})

	t.Run("streamed body is cut by MaxBytesReader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/leave-requests", strings.NewReader(strings.Repeat("x", 200)))
		req.ContentLength = -1
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("upload uses the upload limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, challanUpload(t, 1024))
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("upload over the upload limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, challanUpload(t, 8192))
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestBodyLimit_UploadNeverBelowBodyLimit(t *testing.T) {
	router := bodyLimitRouter(BodyLimitConfig{MaxBytes: 4096})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, challanUpload(t, 1024))
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
