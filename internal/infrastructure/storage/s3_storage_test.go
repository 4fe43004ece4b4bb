package storage

import (
	"testing"
	"time"

	"github.com/asnhr/hrms/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3ObjectStorage_Validation(t *testing.T) {
	t.Run("nil config returns error", func(t *testing.T) {
		_, err := NewS3ObjectStorage(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration is required")
	})

	t.Run("missing bucket returns error", func(t *testing.T) {
		_, err := NewS3ObjectStorage(&config.StorageConfig{AccessKey: "k", SecretKey: "s"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket is required")
	})

	t.Run("missing access key returns error", func(t *testing.T) {
		_, err := NewS3ObjectStorage(&config.StorageConfig{Bucket: "b", SecretKey: "s"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access key is required")
	})

	t.Run("missing secret key returns error", func(t *testing.T) {
		_, err := NewS3ObjectStorage(&config.StorageConfig{Bucket: "b", AccessKey: "k"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "secret key is required")
	})

	t.Run("valid config creates storage", func(t *testing.T) {
		s, err := NewS3ObjectStorage(&config.StorageConfig{
			Bucket:            "hrms-challans",
			AccessKey:         "k",
			SecretKey:         "s",
			Endpoint:          "localhost:9000",
			UsePathStyle:      true,
			PresignExpiration: 5 * time.Minute,
		})
		require.NoError(t, err)
		assert.Equal(t, "hrms-challans", s.GetBucket())
		assert.Equal(t, 5*time.Minute, s.presignExpiration)
	})

	t.Run("default presign expiration", func(t *testing.T) {
		s, err := NewS3ObjectStorage(&config.StorageConfig{Bucket: "b", AccessKey: "k", SecretKey: "s"},
			WithPresignExpiration(0))
		require.NoError(t, err)
		assert.Equal(t, 15*time.Minute, s.presignExpiration)
	})
}

func TestNormalizeEndpoint(t *testing.T) {
	got, err := normalizeEndpoint("minio:9000", false)
	require.NoError(t, err)
	assert.Equal(t, "http://minio:9000", got)

	got, err = normalizeEndpoint("r2.example.com", true)
	require.NoError(t, err)
	assert.Equal(t, "https://r2.example.com", got)

	got, err = normalizeEndpoint("", true)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestS3ObjectStorage_GenerateDownloadURL(t *testing.T) {
	s, err := NewS3ObjectStorage(&config.StorageConfig{
		Bucket:       "hrms-challans",
		AccessKey:    "k",
		SecretKey:    "s",
		Endpoint:     "http://localhost:9000",
		UsePathStyle: true,
	})
	require.NoError(t, err)

	u, exp, err := s.GenerateDownloadURL(t.Context(), "challans/mlwf/2025/06/a.pdf", time.Minute)
	require.NoError(t, err)
	assert.Contains(t, u, "localhost:9000/hrms-challans/challans/mlwf/2025/06/a.pdf")
	assert.Contains(t, u, "X-Amz-Signature")
	assert.WithinDuration(t, time.Now().Add(time.Minute), exp, 5*time.Second)

	_, _, err = s.GenerateDownloadURL(t.Context(), "", time.Minute)
	assert.Error(t, err)
}
