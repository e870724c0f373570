package filevalidator

import "bytes"

// FileType identifies a file format detected from content.
type FileType string

const (
	TypeJPEG    FileType = "jpg"
	TypePNG     FileType = "png"
	TypeGIF     FileType = "gif"
	TypeWebP    FileType = "webp"
	TypePDF     FileType = "pdf"
	TypeUnknown FileType = "unknown"
)

// signature is one magic-number rule: every segment must match at its offset.
type signature struct {
	fileType FileType
	segments []segment
}

type segment struct {
	offset int
	magic  []byte
}

// signatures is checked in order; the first full match wins.
var signatures = []signature{
	{fileType: TypeJPEG, segments: []segment{{0, []byte{0xFF, 0xD8, 0xFF}}}},
	{fileType: TypePNG, segments: []segment{{0, []byte{0x89, 0x50, 0x4E, 0x47}}}},
	{fileType: TypeGIF, segments: []segment{{0, []byte("GIF")}}},
	// WEBP is a RIFF container; both the RIFF header and the WEBP form tag
	// must be present.
	{fileType: TypeWebP, segments: []segment{{0, []byte("RIFF")}, {8, []byte("WEBP")}}},
	{fileType: TypePDF, segments: []segment{{0, []byte("%PDF")}}},
}

// Sniff classifies data by its magic-number prefix. Unrecognized content is
// reported as TypeUnknown, never guessed at.
func Sniff(data []byte) FileType {
	for _, sig := range signatures {
		if matches(data, sig) {
			return sig.fileType
		}
	}
	return TypeUnknown
}

func matches(data []byte, sig signature) bool {
	for _, seg := range sig.segments {
		end := seg.offset + len(seg.magic)
		if end > len(data) {
			return false
		}
		if !bytes.Equal(data[seg.offset:end], seg.magic) {
			return false
		}
	}
	return true
}

// MIMEType returns the canonical media type for a sniffed file type, or
// "application/octet-stream" for TypeUnknown.
func (t FileType) MIMEType() string {
	switch t {
	case TypeJPEG:
		return "image/jpeg"
	case TypePNG:
		return "image/png"
	case TypeGIF:
		return "image/gif"
	case TypeWebP:
		return "image/webp"
	case TypePDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
