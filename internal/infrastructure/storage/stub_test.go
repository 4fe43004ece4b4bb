package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const challanKey = "challans/mlwf/2025/06/x y.pdf"

// fetch requests link through the store mounted at /storage/
func fetch(t *testing.T, s *MemoryObjectStorage, link string) *httptest.ResponseRecorder {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	http.StripPrefix("/storage/", s).ServeHTTP(w, httptest.NewRequest(http.MethodGet, u.RequestURI(), nil))
	return w
}

func TestMemoryObjectStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryObjectStorage()

	require.NoError(t, s.Upload(ctx, challanKey, strings.NewReader("pdf"), 3, "application/pdf"))

	r, ok := s.Open(challanKey)
	require.True(t, ok)
	data, _ := io.ReadAll(r)
	assert.Equal(t, "pdf", string(data))

	require.NoError(t, s.DeleteObject(ctx, challanKey))
	_, ok = s.Open(challanKey)
	assert.False(t, ok)

	assert.Error(t, s.Upload(ctx, "", strings.NewReader(""), 0, ""))
}

func TestMemoryObjectStorage_DownloadURL(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryObjectStorage()
	require.NoError(t, s.Upload(ctx, challanKey, strings.NewReader("pdf"), 3, "application/pdf"))

	link, expiresAt, err := s.GenerateDownloadURL(ctx, challanKey, time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "http://localhost:8080/storage/challans/mlwf/2025/06/x%20y.pdf?"))
	assert.WithinDuration(t, time.Now().Add(time.Minute), expiresAt, 2*time.Second)

	t.Run("serves the object", func(t *testing.T) {
		w := fetch(t, s, link)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "pdf", w.Body.String())
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	})

	t.Run("rejects a tampered key", func(t *testing.T) {
		other := strings.Replace(link, "x%20y.pdf", "z.pdf", 1)
		assert.Equal(t, http.StatusForbidden, fetch(t, s, other).Code)
	})

	t.Run("rejects a missing signature", func(t *testing.T) {
		bare := link[:strings.Index(link, "?")]
		assert.Equal(t, http.StatusForbidden, fetch(t, s, bare).Code)
	})

	t.Run("rejects an expired link", func(t *testing.T) {
		s.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
		defer func() { s.now = time.Now }()
		assert.Equal(t, http.StatusForbidden, fetch(t, s, link).Code)
	})

	t.Run("object deleted after signing", func(t *testing.T) {
		require.NoError(t, s.DeleteObject(ctx, challanKey))
		assert.Equal(t, http.StatusNotFound, fetch(t, s, link).Code)
	})
}

func TestMemoryObjectStorage_DownloadURL_UnknownKey(t *testing.T) {
	s := NewMemoryObjectStorage()
	_, _, err := s.GenerateDownloadURL(context.Background(), "challans/none.pdf", time.Minute)
	assert.Error(t, err)
	_, _, err = s.GenerateDownloadURL(context.Background(), "", time.Minute)
	assert.Error(t, err)
}

func TestMemoryObjectStorage_ServeHTTP_MethodNotAllowed(t *testing.T) {
	s := NewMemoryObjectStorage()
	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x.pdf", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestMemoryObjectStorage_MountPath(t *testing.T) {
	s := NewMemoryObjectStorage()
	assert.Equal(t, "/storage", s.MountPath())
	s.BaseURL = "https://hr.example.in/files/challans/"
	assert.Equal(t, "/files/challans", s.MountPath())
	s.BaseURL = "http://localhost:8080"
	assert.Equal(t, "/storage", s.MountPath())
}
