package filevalidator

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Category is the kind of upload an endpoint accepts.
type Category string

const (
	CategoryImage Category = "image"
	CategoryPDF   Category = "pdf"
)

// Default extension allow-lists per category, without the leading dot.
var (
	DefaultImageExtensions = []string{"jpg", "jpeg", "png", "gif", "webp", "bmp"}
	DefaultPDFExtensions   = []string{"pdf"}
)

// categoryTypes maps a category to the sniffed file types consistent with it.
var categoryTypes = map[Category][]FileType{
	CategoryImage: {TypeJPEG, TypePNG, TypeGIF, TypeWebP},
	CategoryPDF:   {TypePDF},
}

// Validator cross-checks a claimed file extension against the content's
// magic-number signature. Both checks must pass.
//
// Known gap, kept on purpose: the sniffer carries no BMP signature, so .bmp
// files are accepted on extension alone.
type Validator struct {
	extensions map[Category][]string
}

// New creates a validator with the default per-category extension allow-lists.
func New() *Validator {
	return &Validator{
		extensions: map[Category][]string{
			CategoryImage: DefaultImageExtensions,
			CategoryPDF:   DefaultPDFExtensions,
		},
	}
}

// NewWithExtensions creates a validator with custom extension allow-lists.
// Categories absent from the map reject every file.
func NewWithExtensions(extensions map[Category][]string) *Validator {
	return &Validator{extensions: extensions}
}

// Validate checks that fileName's extension is allowed for the category and
// that data's signature is consistent with it. A mismatch (say, a .pdf
// extension over JPEG bytes) is rejected.
func (v *Validator) Validate(fileName string, data []byte, category Category) error {
	if fileName == "" {
		return NewValidationError(ErrorTypeFileName, "empty filename")
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	if !v.extensionAllowed(ext, category) {
		return NewValidationError(
			ErrorTypeExtension,
			fmt.Sprintf("extension %q is not allowed for %s uploads", ext, category),
		)
	}

	// BMP has no signature entry; extension check is all we have.
	if ext == "bmp" && category == CategoryImage {
		return nil
	}

	sniffed := Sniff(data)
	for _, t := range categoryTypes[category] {
		if sniffed == t {
			return nil
		}
	}
	return NewValidationError(
		ErrorTypeSignature,
		fmt.Sprintf("content signature %q does not match a %s upload", sniffed, category),
	)
}

// IsValid is Validate as a boolean.
func (v *Validator) IsValid(fileName string, data []byte, category Category) bool {
	return v.Validate(fileName, data, category) == nil
}

func (v *Validator) extensionAllowed(ext string, category Category) bool {
	for _, allowed := range v.extensions[category] {
		if strings.EqualFold(ext, allowed) {
			return true
		}
	}
	return false
}
