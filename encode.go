package formkit

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// RandomBoundary returns a fresh boundary token suitable for EncodeParts.
func RandomBoundary() string {
	var buf [30]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err) // crypto/rand never fails on supported platforms
	}
	return hex.EncodeToString(buf[:])
}

// ContentTypeFor returns the Content-Type header value declaring the given
// boundary.
func ContentTypeFor(boundary string) string {
	return "multipart/form-data; boundary=" + boundary
}

// EncodeParts renders parts into a multipart/form-data body delimited by
// boundary. It is the inverse of Decode: decoding the result with the same
// boundary yields parts with identical names, file names and data.
func EncodeParts(boundary string, parts []Part) ([]byte, error) {
	if err := validateBoundary(boundary); err != nil {
		return nil, err
	}

	var b bytes.Buffer
	for _, p := range parts {
		if p.Name == "" {
			return nil, ErrMalformedPart
		}
		fmt.Fprintf(&b, "--%s\r\n", boundary)
		if p.FileName != "" {
			fmt.Fprintf(&b, "Content-Disposition: form-data; name=%q; filename=%q\r\n", p.Name, p.FileName)
		} else {
			fmt.Fprintf(&b, "Content-Disposition: form-data; name=%q\r\n", p.Name)
		}
		if p.ContentType != "" {
			fmt.Fprintf(&b, "Content-Type: %s\r\n", p.ContentType)
		}
		b.WriteString("\r\n")
		b.Write(p.Data)
		b.WriteString("\r\n")
	}
	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return b.Bytes(), nil
}

// Field builds a text form-field Part for encoding.
func Field(name, value string) Part {
	return newPart(partHeader{name: name}, []byte(value))
}

// FilePart builds a file-bearing Part for encoding.
func FilePart(name, fileName, contentType string, data []byte) Part {
	return newPart(partHeader{name: name, fileName: fileName, contentType: contentType}, data)
}
