package formkit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatluna/formkit/filevalidator"
)

func encodeUpload(t *testing.T, boundary string, parts ...Part) []byte {
	t.Helper()
	body, err := EncodeParts(boundary, parts)
	require.NoError(t, err)
	return body
}

func TestIntakeReceive(t *testing.T) {
	ctx := context.Background()
	png := append(append([]byte{}, pngSig...), []byte("pixels")...)

	t.Run("stores a valid image upload", func(t *testing.T) {
		store := NewMemoryStore()
		intake := NewIntake(store)

		boundary := RandomBoundary()
		body := encodeUpload(t, boundary,
			Field("description", "profile picture"),
			FilePart("photo", "me.png", "image/png", png),
		)

		up, err := intake.Receive(ctx, ContentTypeFor(boundary), body, filevalidator.CategoryImage, "user-42")
		require.NoError(t, err)

		assert.Equal(t, "photo", up.FieldName)
		assert.Equal(t, "me.png", up.FileName)
		assert.Equal(t, "image/png", up.ContentType)
		assert.Equal(t, int64(len(png)), up.Size)
		assert.NotEmpty(t, up.Checksum)
		assert.Equal(t, "mem://user-42/me.png", up.Location)
		assert.Equal(t, "profile picture", up.Description)

		data, contentType, ok := store.Get("user-42/me.png")
		require.True(t, ok)
		assert.Equal(t, png, data)
		assert.Equal(t, "image/png", contentType)
	})

	t.Run("sniffs content type when none declared", func(t *testing.T) {
		store := NewMemoryStore()
		intake := NewIntake(store)

		boundary := RandomBoundary()
		body := encodeUpload(t, boundary, FilePart("image", "me.png", "", png))

		up, err := intake.Receive(ctx, ContentTypeFor(boundary), body, filevalidator.CategoryImage, "u")
		require.NoError(t, err)
		assert.Equal(t, "image/png", up.ContentType)
	})

	t.Run("filename override field", func(t *testing.T) {
		store := NewMemoryStore()
		intake := NewIntake(store)

		boundary := RandomBoundary()
		body := encodeUpload(t, boundary,
			FilePart("file", "upload.tmp.png", "image/png", png),
			Field("fileName", "final.png"),
		)

		up, err := intake.Receive(ctx, ContentTypeFor(boundary), body, filevalidator.CategoryImage, "u")
		require.NoError(t, err)
		assert.Equal(t, "final.png", up.FileName)
		assert.Equal(t, "mem://u/final.png", up.Location)
	})

	t.Run("rejects signature mismatch", func(t *testing.T) {
		intake := NewIntake(NewMemoryStore())

		boundary := RandomBoundary()
		body := encodeUpload(t, boundary,
			FilePart("document", "evil.pdf", "application/pdf", []byte{0xFF, 0xD8, 0xFF, 0xE0}),
		)

		_, err := intake.Receive(ctx, ContentTypeFor(boundary), body, filevalidator.CategoryPDF, "u")
		require.Error(t, err)
		assert.True(t, filevalidator.IsErrorOfType(err, filevalidator.ErrorTypeSignature))
	})

	t.Run("no file part", func(t *testing.T) {
		intake := NewIntake(NewMemoryStore())

		boundary := RandomBoundary()
		body := encodeUpload(t, boundary, Field("description", "just text"))

		_, err := intake.Receive(ctx, ContentTypeFor(boundary), body, filevalidator.CategoryImage, "u")
		assert.ErrorIs(t, err, ErrNoFilePart)
	})

	t.Run("bad content type header", func(t *testing.T) {
		intake := NewIntake(NewMemoryStore())

		_, err := intake.Receive(ctx, "application/json", []byte("{}"), filevalidator.CategoryImage, "u")
		assert.ErrorIs(t, err, ErrNotMultipart)
	})

	t.Run("store failure surfaces as server error", func(t *testing.T) {
		intake := NewIntake(failingStore{})

		boundary := RandomBoundary()
		body := encodeUpload(t, boundary, FilePart("photo", "me.png", "image/png", png))

		_, err := intake.Receive(ctx, ContentTypeFor(boundary), body, filevalidator.CategoryImage, "u")
		assert.ErrorIs(t, err, errStoreDown)
	})
}

var errStoreDown = errors.New("store unavailable")

type failingStore struct{}

func (failingStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	return "", errStoreDown
}

func TestIntakeFromConfig(t *testing.T) {
	cfg := &Config{
		Strict:            true,
		MaxBodySize:       16,
		ImageExtensions:   "png",
		PDFExtensions:     "pdf",
		ChecksumAlgorithm: "sha256",
	}
	intake := NewIntakeFromConfig(cfg, NewMemoryStore())

	_, err := intake.Receive(context.Background(),
		ContentTypeFor("B"), []byte("body far larger than sixteen bytes"),
		filevalidator.CategoryImage, "u")
	assert.ErrorIs(t, err, ErrBodyTooLarge)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	loc, err := store.Put(ctx, "a/b.png", "image/png", []byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "mem://a/b.png", loc)

	_, err = store.Put(ctx, "a/c.png", "image/png", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a/b.png", "a/c.png"}, store.Keys())

	_, _, ok := store.Get("missing")
	assert.False(t, ok)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = store.Put(cancelled, "x", "", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
