package formkit

import "strings"

// Conventional field names upload endpoints use for the file-bearing part.
var fileFieldNames = []string{"document", "file", "pdf", "photo", "image"}

// Field names accepted as a filename override for the uploaded file.
var fileNameFieldNames = []string{"filename", "fileName"}

// Part is one decoded unit of a multipart body: a form field or an uploaded
// file. Parts are constructed by the decoder and never mutated afterwards.
type Part struct {
	// Name is the form field name. The decoder never emits a Part without one.
	Name string

	// FileName is the client-supplied file name, set only for file parts.
	FileName string

	// ContentType is the client-declared media type. It is untrusted; use the
	// filevalidator package to verify the bytes match.
	ContentType string

	// Data is the raw part content. May be empty for a present-but-empty field.
	Data []byte

	value  string
	isText bool
}

func newPart(hdr partHeader, data []byte) Part {
	p := Part{
		Name:        hdr.name,
		FileName:    hdr.fileName,
		ContentType: hdr.contentType,
		Data:        data,
	}
	if isTextualContentType(hdr.contentType) {
		p.value = string(data)
		p.isText = true
	}
	return p
}

// isTextualContentType reports whether part content should also be exposed as
// a decoded string. Absent content types default to text: browsers omit the
// header for plain form fields.
func isTextualContentType(contentType string) bool {
	if contentType == "" {
		return true
	}
	if strings.HasPrefix(contentType, "text/") {
		return true
	}
	switch mediaType(contentType) {
	case "application/x-www-form-urlencoded", "application/json":
		return true
	}
	return false
}

// mediaType strips any parameters (e.g. "; charset=utf-8") from a declared
// content type.
func mediaType(contentType string) string {
	if idx := strings.IndexByte(contentType, ';'); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.TrimSpace(contentType)
}

// IsFile reports whether the part carries an uploaded file.
func (p Part) IsFile() bool {
	return p.FileName != ""
}

// Text returns the part content decoded as a string. The second return value
// is false when the content is binary (a declared non-text content type).
func (p Part) Text() (string, bool) {
	return p.value, p.isText
}

// Form is the ordered list of parts decoded from one multipart body. Repeated
// field names are preserved in source order.
type Form []Part

// Get returns the first part with the given field name.
func (f Form) Get(name string) (Part, bool) {
	for _, p := range f {
		if p.Name == name {
			return p, true
		}
	}
	return Part{}, false
}

// Value returns the text content of the first part with the given field name.
// It returns false if the field is absent or its content is binary.
func (f Form) Value(name string) (string, bool) {
	p, ok := f.Get(name)
	if !ok {
		return "", false
	}
	return p.Text()
}

// File returns the first file-bearing part found under the conventional
// upload field names (document, file, pdf, photo, image).
func (f Form) File() (Part, bool) {
	for _, name := range fileFieldNames {
		if p, ok := f.Get(name); ok && p.IsFile() {
			return p, true
		}
	}
	return Part{}, false
}

// FileName returns the effective file name for the given file part, honoring
// a filename/fileName override field when the form carries one.
func (f Form) FileName(file Part) string {
	for _, name := range fileNameFieldNames {
		if v, ok := f.Value(name); ok && v != "" {
			return v
		}
	}
	return file.FileName
}
