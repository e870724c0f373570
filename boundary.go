package formkit

import (
	"mime"
	"strings"
)

// ParseBoundary extracts the boundary token from a Content-Type header value
// such as `multipart/form-data; boundary=----WebKitFormBoundaryX`. Quotes
// around the boundary value are stripped.
func ParseBoundary(contentType string) (string, error) {
	d, params, err := mime.ParseMediaType(contentType)
	if err != nil || d != "multipart/form-data" {
		return "", ErrNotMultipart
	}
	boundary, ok := params["boundary"]
	if !ok || boundary == "" {
		return "", ErrMissingBoundary
	}
	return boundary, nil
}

// validateBoundary checks a boundary token against the RFC 2046 section
// 5.1.1 grammar: 1 to 70 characters from a restricted charset, not ending
// in a space.
func validateBoundary(boundary string) error {
	if len(boundary) < 1 || len(boundary) > 70 {
		return ErrInvalidBoundary
	}
	if strings.HasSuffix(boundary, " ") {
		return ErrInvalidBoundary
	}
	for _, b := range boundary {
		if 'A' <= b && b <= 'Z' || 'a' <= b && b <= 'z' || '0' <= b && b <= '9' {
			continue
		}
		switch b {
		case '\'', '(', ')', '+', '_', ',', '-', '.', '/', ':', '=', '?', ' ':
			continue
		}
		return ErrInvalidBoundary
	}
	return nil
}
