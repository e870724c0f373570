package formkit

import (
	"context"
	"fmt"
	"path"

	"github.com/gabriel-vasile/mimetype"

	"github.com/flatluna/formkit/filevalidator"
)

// BlobStore is the storage capability uploads are handed to. Implementations
// wrap object storage clients; the intake service never constructs one itself.
type BlobStore interface {
	// Put stores data under key with the given content type and returns a
	// location (path or URL) for the stored object.
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// Upload is the outcome of one accepted upload.
type Upload struct {
	FieldName   string
	FileName    string
	ContentType string
	Size        int64
	Checksum    string
	Location    string
	Description string
}

// Intake handles the one-file upload endpoint shape shared by every upload
// handler: decode the body, pick the file part, verify it really is what it
// claims to be, then store it.
type Intake struct {
	decoder   *Decoder
	validator *filevalidator.Validator
	store     BlobStore
	algorithm ChecksumAlgorithm
}

// NewIntake creates an intake service over the given store using default
// decode and validation settings.
func NewIntake(store BlobStore) *Intake {
	return &Intake{
		decoder:   NewDecoder(),
		validator: filevalidator.New(),
		store:     store,
		algorithm: ChecksumXXHash,
	}
}

// NewIntakeFromConfig creates an intake service configured from cfg.
func NewIntakeFromConfig(cfg *Config, store BlobStore) *Intake {
	return &Intake{
		decoder:   NewDecoder(cfg.DecoderOptions()...),
		validator: cfg.Validator(),
		store:     store,
		algorithm: ChecksumAlgorithm(cfg.ChecksumAlgorithm),
	}
}

// Receive processes one upload request. contentType is the raw Content-Type
// header value; body is the full request body; category is what this endpoint
// accepts. keyPrefix namespaces the stored object (e.g. a tenant id).
//
// Errors: ErrNotMultipart/ErrMissingBoundary for a bad header, ErrNoFilePart
// when none of the conventional file fields is present, a
// *filevalidator.ValidationError when the file fails validation, and decoder
// errors in strict mode. All of these are client errors; only store failures
// are server-side.
func (s *Intake) Receive(ctx context.Context, contentType string, body []byte, category filevalidator.Category, keyPrefix string) (*Upload, error) {
	boundary, err := ParseBoundary(contentType)
	if err != nil {
		return nil, err
	}

	form, err := s.decoder.Decode(body, boundary)
	if err != nil {
		return nil, err
	}

	file, ok := form.File()
	if !ok {
		return nil, ErrNoFilePart
	}
	fileName := form.FileName(file)

	if err := s.validator.Validate(fileName, file.Data, category); err != nil {
		return nil, err
	}

	sum, err := Checksum(file.Data, s.algorithm)
	if err != nil {
		return nil, err
	}

	location, err := s.store.Put(ctx, path.Join(keyPrefix, fileName), resolveContentType(file), file.Data)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	up := &Upload{
		FieldName:   file.Name,
		FileName:    fileName,
		ContentType: resolveContentType(file),
		Size:        int64(len(file.Data)),
		Checksum:    sum,
		Location:    location,
	}
	if desc, ok := form.Value("description"); ok {
		up.Description = desc
	}
	return up, nil
}

// resolveContentType prefers the client-declared content type and falls back
// to sniffing the bytes when the client sent none.
func resolveContentType(p Part) string {
	if p.ContentType != "" {
		return mediaType(p.ContentType)
	}
	return mimetype.Detect(p.Data).String()
}
