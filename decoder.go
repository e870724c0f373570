package formkit

import "bytes"

var (
	crlf      = []byte("\r\n")
	separator = []byte("\r\n\r\n")
	dashDash  = []byte("--")
)

// Option configures a Decoder
type Option func(*Decoder)

// WithStrict makes decode failures (nameless parts, truncated bodies) return
// errors instead of being silently skipped.
func WithStrict() Option {
	return func(d *Decoder) {
		d.strict = true
	}
}

// WithMaxBodySize caps the accepted body size in bytes. Zero means unlimited.
func WithMaxBodySize(size int64) Option {
	return func(d *Decoder) {
		d.maxBodySize = size
	}
}

// WithMaxParts caps the number of parts decoded from one body. Zero means
// unlimited.
func WithMaxParts(n int) Option {
	return func(d *Decoder) {
		d.maxParts = n
	}
}

// Decoder turns raw multipart/form-data body bytes into an ordered Form.
// The zero-configuration decoder is lenient: malformed parts are dropped and
// truncated bodies yield the parts decoded before the cut.
//
// Decoding is a pure function of (body, boundary); a Decoder is safe for
// concurrent use.
type Decoder struct {
	strict      bool
	maxBodySize int64
	maxParts    int
}

// NewDecoder creates a decoder with the given options.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode decodes body with the default lenient decoder. It never fails: a
// body with no boundary marker yields an empty Form.
func Decode(body []byte, boundary string) Form {
	form, _ := NewDecoder().Decode(body, boundary)
	return form
}

// Decode splits body into its parts using the given boundary token (as taken
// from the Content-Type header, without the leading dashes). Parts appear in
// source order; repeated field names are preserved.
//
// Malformed parts and truncated bodies yield errors only in strict mode; in
// lenient mode they are skipped or returned as partial results. The size
// limits are resource caps, not leniency: ErrBodyTooLarge and ErrTooManyParts
// are returned in either mode, wrapped in a *DecodeError.
func (d *Decoder) Decode(body []byte, boundary string) (Form, error) {
	if d.maxBodySize > 0 && int64(len(body)) > d.maxBodySize {
		return nil, &DecodeError{Offset: 0, Err: ErrBodyTooLarge}
	}

	marker := append([]byte("--"), boundary...)
	var form Form

	// No opening boundary anywhere in the body is defined as an empty form,
	// not a failure; the caller decides whether a missing part is an error.
	pos := indexFrom(body, 0, marker)
	if pos < 0 {
		return form, nil
	}
	pos += len(marker)
	if bytes.HasPrefix(body[pos:], dashDash) {
		return form, nil // body opens with the terminal boundary
	}

	for pos < len(body) {
		if bytes.HasPrefix(body[pos:], crlf) {
			pos += len(crlf)
		}

		sep := indexFrom(body, pos, separator)
		if sep < 0 {
			if d.strict {
				return form, &DecodeError{Offset: pos, Err: ErrTruncatedBody}
			}
			return form, nil
		}

		hdr, ok := parsePartHeader(body[pos:sep])
		if !ok && d.strict {
			return form, &DecodeError{Offset: pos, Err: ErrMalformedPart}
		}
		pos = sep + len(separator)

		next := indexFrom(body, pos, marker)
		if next < 0 {
			if d.strict {
				return form, &DecodeError{Offset: pos, Err: ErrTruncatedBody}
			}
			return form, nil
		}

		if ok {
			// The part content always ends with a CRLF that belongs to the
			// boundary line, not to the data.
			contentLength := next - pos - len(crlf)
			var data []byte
			if contentLength > 0 {
				data = bytes.Clone(body[pos : pos+contentLength])
			}
			form = append(form, newPart(hdr, data))
			if d.maxParts > 0 && len(form) > d.maxParts {
				return form[:d.maxParts], &DecodeError{Offset: pos, Err: ErrTooManyParts}
			}
		}

		pos = next + len(marker)
		if bytes.HasPrefix(body[pos:], dashDash) {
			break // terminal boundary
		}
	}

	return form, nil
}
