package finder

import "strings"

// MatchExtension reports whether e is a regular file whose extension equals
// ext, ignoring case. ext is given without a leading dot.
func MatchExtension(e Entry, ext string) bool {
	if !e.IsRegular() {
		return false
	}

	return strings.EqualFold(e.Extension(), ext)
}

// MatchSize reports whether e is strictly larger than threshold bytes.
func MatchSize(e Entry, threshold int64) bool {
	if e.IsDir() {
		return false
	}

	return e.Size > threshold
}

// extensionOf returns the text after the last dot of name, or "" if none.
func extensionOf(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}

	return name[i+1:]
}
