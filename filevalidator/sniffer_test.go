package filevalidator

import "testing"

func TestSniff(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected FileType
	}{
		{
			name:     "JPEG",
			data:     []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'},
			expected: TypeJPEG,
		},
		{
			name:     "PNG",
			data:     []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A},
			expected: TypePNG,
		},
		{
			name:     "GIF87a",
			data:     []byte("GIF87a"),
			expected: TypeGIF,
		},
		{
			name:     "GIF89a",
			data:     []byte("GIF89a"),
			expected: TypeGIF,
		},
		{
			name:     "WebP",
			data:     []byte{'R', 'I', 'F', 'F', 0x24, 0x00, 0x00, 0x00, 'W', 'E', 'B', 'P'},
			expected: TypeWebP,
		},
		{
			name:     "RIFF without WEBP tag",
			data:     []byte{'R', 'I', 'F', 'F', 0x24, 0x00, 0x00, 0x00, 'W', 'A', 'V', 'E'},
			expected: TypeUnknown,
		},
		{
			name:     "RIFF too short for form tag",
			data:     []byte("RIFF"),
			expected: TypeUnknown,
		},
		{
			name:     "PDF",
			data:     []byte("%PDF-1.4"),
			expected: TypePDF,
		},
		{
			name:     "empty",
			data:     nil,
			expected: TypeUnknown,
		},
		{
			name:     "plain text",
			data:     []byte("hello world"),
			expected: TypeUnknown,
		},
		{
			name:     "arbitrary binary stays unknown, never defaults to jpg",
			data:     []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
			expected: TypeUnknown,
		},
		{
			name:     "truncated JPEG prefix",
			data:     []byte{0xFF, 0xD8},
			expected: TypeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sniff(tt.data); got != tt.expected {
				t.Errorf("Sniff() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFileTypeMIMEType(t *testing.T) {
	tests := []struct {
		fileType FileType
		expected string
	}{
		{TypeJPEG, "image/jpeg"},
		{TypePNG, "image/png"},
		{TypeGIF, "image/gif"},
		{TypeWebP, "image/webp"},
		{TypePDF, "application/pdf"},
		{TypeUnknown, "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(string(tt.fileType), func(t *testing.T) {
			if got := tt.fileType.MIMEType(); got != tt.expected {
				t.Errorf("MIMEType() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSniffIgnoresClaimedIdentity(t *testing.T) {
	// Signature detection depends on bytes alone; a PNG is a PNG no matter
	// what the client called it.
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}
	if got := Sniff(png); got != TypePNG {
		t.Errorf("Sniff() = %q, want %q", got, TypePNG)
	}
}
