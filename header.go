package formkit

import "strings"

// partHeader holds the fields extracted from one part's header block.
type partHeader struct {
	name        string
	fileName    string
	contentType string
}

// parsePartHeader extracts name, filename and content type from the header
// block of a single part (the bytes between a boundary and the CRLF CRLF
// separator). It returns ok=false when no field name could be resolved, which
// tells the decoder to skip the block entirely.
func parsePartHeader(block []byte) (partHeader, bool) {
	var hdr partHeader
	for _, line := range strings.Split(string(block), "\r\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case hasFoldPrefix(line, "Content-Disposition:"):
			hdr.name = quotedParam(line, "name")
			hdr.fileName = quotedParam(line, "filename")
		case hasFoldPrefix(line, "Content-Type:"):
			hdr.contentType = strings.TrimSpace(line[len("Content-Type:"):])
		}
	}
	if hdr.name == "" {
		return partHeader{}, false
	}
	return hdr, true
}

// hasFoldPrefix reports whether s starts with prefix, ASCII case-insensitive.
func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// quotedParam extracts the value of a `key="value"` parameter from a header
// line. Absent or empty values yield "".
func quotedParam(line, key string) string {
	marker := key + `="`
	idx := indexFold(line, marker)
	for idx >= 0 {
		// Reject longer keys that merely end with ours (e.g. "filename"
		// when looking for "name").
		if idx == 0 || !isTokenByte(line[idx-1]) {
			rest := line[idx+len(marker):]
			end := strings.IndexByte(rest, '"')
			if end < 0 {
				return ""
			}
			return rest[:end]
		}
		next := indexFold(line[idx+1:], marker)
		if next < 0 {
			return ""
		}
		idx += 1 + next
	}
	return ""
}

// indexFold is strings.Index with ASCII case folding.
func indexFold(s, substr string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(substr))
}

func isTokenByte(b byte) bool {
	return b == '-' || b == '_' ||
		'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9'
}
