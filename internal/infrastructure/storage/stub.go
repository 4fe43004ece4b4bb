package storage

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/asnhr/hrms/internal/application/compliance"
)

// MemoryObjectStorage keeps objects in memory. Used when object storage is
// disabled in configuration (local development) and in tests. Download URLs
// are signed and expire like S3 presigned links; ServeHTTP serves them.
type MemoryObjectStorage struct {
	// BaseURL is the public address ServeHTTP is mounted at
	BaseURL string

	secret  []byte
	now     func() time.Time
	mu      sync.RWMutex
	objects map[string]memoryObject
}

type memoryObject struct {
	data        []byte
	contentType string
}

var (
	_ compliance.ObjectStorage = (*MemoryObjectStorage)(nil)
	_ http.Handler             = (*MemoryObjectStorage)(nil)
)

// NewMemoryObjectStorage creates an empty in-memory store
func NewMemoryObjectStorage() *MemoryObjectStorage {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		panic("storage: cannot seed download signing key: " + err.Error())
	}
	return &MemoryObjectStorage{
		BaseURL: "http://localhost:8080/storage",
		secret:  secret,
		now:     time.Now,
		objects: make(map[string]memoryObject),
	}
}

func (s *MemoryObjectStorage) Upload(_ context.Context, storageKey string, body io.Reader, _ int64, contentType string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.objects[storageKey] = memoryObject{data: data, contentType: contentType}
	s.mu.Unlock()
	return nil
}

// GenerateDownloadURL returns a signed link under BaseURL. It fails for keys
// that were never uploaded so callers never hand out a dead link.
func (s *MemoryObjectStorage) GenerateDownloadURL(_ context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	if !s.exists(storageKey) {
		return "", time.Time{}, errors.New("object not found: " + storageKey)
	}
	if expiresIn <= 0 {
		expiresIn = 15 * time.Minute
	}
	expiresAt := s.now().Add(expiresIn).Truncate(time.Second)
	expires := strconv.FormatInt(expiresAt.Unix(), 10)

	q := url.Values{}
	q.Set("expires", expires)
	q.Set("signature", s.sign(storageKey, expires))
	u := strings.TrimRight(s.BaseURL, "/") + "/" + escapeKey(storageKey) + "?" + q.Encode()
	return u, expiresAt, nil
}

func (s *MemoryObjectStorage) DeleteObject(_ context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	s.mu.Lock()
	delete(s.objects, storageKey)
	s.mu.Unlock()
	return nil
}

// Open returns a reader over a stored object
func (s *MemoryObjectStorage) Open(storageKey string) (io.Reader, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[storageKey]
	if !ok {
		return nil, false
	}
	return bytes.NewReader(obj.data), true
}

// ServeHTTP serves a signed download link. The request path must be the
// object key relative to BaseURL, so mount it behind http.StripPrefix.
func (s *MemoryObjectStorage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	key := strings.TrimPrefix(r.URL.Path, "/")
	expires := r.URL.Query().Get("expires")
	signature := r.URL.Query().Get("signature")

	if key == "" || !hmac.Equal([]byte(signature), []byte(s.sign(key, expires))) {
		http.Error(w, "invalid signature", http.StatusForbidden)
		return
	}
	unix, err := strconv.ParseInt(expires, 10, 64)
	if err != nil || s.now().After(time.Unix(unix, 0)) {
		http.Error(w, "link expired", http.StatusForbidden)
		return
	}

	s.mu.RLock()
	obj, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	contentType := obj.contentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": path.Base(key)}))
	http.ServeContent(w, r, path.Base(key), time.Time{}, bytes.NewReader(obj.data))
}

// MountPath is the URL path of BaseURL, where ServeHTTP has to be mounted
func (s *MemoryObjectStorage) MountPath() string {
	u, err := url.Parse(s.BaseURL)
	if err != nil || strings.Trim(u.Path, "/") == "" {
		return "/storage"
	}
	return "/" + strings.Trim(u.Path, "/")
}

func (s *MemoryObjectStorage) exists(storageKey string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[storageKey]
	return ok
}

func (s *MemoryObjectStorage) sign(storageKey, expires string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(storageKey))
	mac.Write([]byte{0})
	mac.Write([]byte(expires))
	return hex.EncodeToString(mac.Sum(nil))
}

// escapeKey escapes each path segment and keeps the slashes
func escapeKey(storageKey string) string {
	parts := strings.Split(storageKey, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
