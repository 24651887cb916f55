package upload_test

import (
	"testing"

	"go-profile-builder/pkg/upload"

	"github.com/stretchr/testify/assert"
)

func TestValidateResume(t *testing.T) {
	const maxBytes = 5 << 20

	t.Run("Should accept a PDF with a PDF signature", func(t *testing.T) {
		err := upload.ValidateResume("cv.pdf", 1024, maxBytes, []byte("%PDF-1.7"))
		assert.NoError(t, err)
	})

	t.Run("Should accept a DOCX with a ZIP signature", func(t *testing.T) {
		err := upload.ValidateResume("cv.docx", 1024, maxBytes, []byte{0x50, 0x4B, 0x03, 0x04, 0x14})
		assert.NoError(t, err)
	})

	t.Run("Should accept a DOC with an OLE signature", func(t *testing.T) {
		err := upload.ValidateResume("cv.doc", 1024, maxBytes, []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1})
		assert.NoError(t, err)
	})

	t.Run("Should be case-insensitive on the extension", func(t *testing.T) {
		err := upload.ValidateResume("CV.PDF", 1024, maxBytes, []byte("%PDF-1.4"))
		assert.NoError(t, err)
	})

	t.Run("Should reject files over the limit before other checks", func(t *testing.T) {
		err := upload.ValidateResume("cv.pdf", maxBytes+1, maxBytes, []byte("%PDF-1.4"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "byte limit")
	})

	t.Run("Should reject disallowed extensions", func(t *testing.T) {
		err := upload.ValidateResume("cv.exe", 1024, maxBytes, []byte("%PDF-1.4"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only PDF, DOC, and DOCX")
	})

	t.Run("Should reject content that does not match the extension", func(t *testing.T) {
		err := upload.ValidateResume("cv.pdf", 1024, maxBytes, []byte("MZ executable"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not match")
	})
}
