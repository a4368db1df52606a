package gen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPDFDocumentSize(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"exact target above skeleton", 620 * 1024, 620 * 1024},
		{"small target above skeleton", PDFSkeletonSize + 1, PDFSkeletonSize + 1},
		{"target equals skeleton", PDFSkeletonSize, PDFSkeletonSize},
		{"target below skeleton keeps skeleton", 10, PDFSkeletonSize},
		{"zero target keeps skeleton", 0, PDFSkeletonSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := PDFDocument(tt.size)
			assert.Len(t, doc, tt.want)
		})
	}
}

func TestPDFDocumentStructure(t *testing.T) {
	doc := PDFDocument(4 * 1024)

	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-1.4\n")))
	assert.Contains(t, string(doc[:PDFSkeletonSize]), "%%EOF")

	// Padding past the skeleton is zero bytes.
	for _, b := range doc[PDFSkeletonSize:] {
		assert.Zero(t, b)
	}
}

func TestXMLDocumentSize(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"exact target above skeleton", 4 * 1024, 4 * 1024},
		{"target equals skeleton", XMLSkeletonSize, XMLSkeletonSize},
		{"target below skeleton keeps skeleton", 3, XMLSkeletonSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := XMLDocument(tt.size)
			assert.Len(t, doc, tt.want)
		})
	}
}

func TestXMLDocumentStructure(t *testing.T) {
	doc := XMLDocument(2 * 1024)

	assert.True(t, bytes.HasPrefix(doc, []byte(xmlHeader)))
	assert.True(t, bytes.HasSuffix(doc, []byte(xmlClosing)))
	assert.Contains(t, string(doc), "<document>")
}
