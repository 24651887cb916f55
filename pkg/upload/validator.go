package upload

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Magic byte signatures for the accepted resume formats.
// Maps lowercase extension to possible content prefixes.
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                                 // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},        // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                                // ZIP (PK..)
}

// Resume uploads are restricted to document formats only
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// ValidateResume checks a resume upload before any bytes are persisted:
// 1. size ceiling
// 2. extension allow-list
// 3. magic byte verification (content matches the claimed extension)
//
// head holds the leading bytes of the file (512 is plenty).
func ValidateResume(filename string, size, maxBytes int64, head []byte) error {
	if size > maxBytes {
		return fmt.Errorf("file exceeds the %d byte limit", maxBytes)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("invalid file type %q: only PDF, DOC, and DOCX files are allowed", ext)
	}

	signatures := magicBytes[ext]
	for _, sig := range signatures {
		if bytes.HasPrefix(head, sig) {
			return nil
		}
	}
	return fmt.Errorf("file content does not match its %s extension", ext)
}
