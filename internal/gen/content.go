package gen

import (
	"math/rand/v2"
	"strings"
)

// pdfSkeleton is a minimal but structurally valid single-page PDF. Files
// are padded with zero bytes past the trailer to hit their target size;
// PDF readers stop at %%EOF so the padding is harmless.
var pdfSkeleton = []byte(`%PDF-1.4
1 0 obj
<< /Type /Catalog /Pages 2 0 R >>
endobj
2 0 obj
<< /Type /Pages /Kids [3 0 R] /Count 1 >>
endobj
3 0 obj
<< /Type /Page /Parent 2 0 R /Resources 4 0 R /MediaBox [0 0 612 792] /Contents 5 0 R >>
endobj
4 0 obj
<< /Font << /F1 << /Type /Font /Subtype /Type1 /BaseFont /Helvetica >> >> >>
endobj
5 0 obj
<< /Length 44 >>
stream
BT /F1 12 Tf 100 700 Td (Dummy Document) Tj ET
endstream
endobj
xref
0 6
0000000000 65535 f
0000000009 00000 n
0000000058 00000 n
0000000115 00000 n
0000000229 00000 n
0000000327 00000 n
trailer
<< /Size 6 /Root 1 0 R >>
startxref
420
%%EOF
`)

const (
	xmlHeader  = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"
	xmlOpening = "<document>\n  <type>OPA</type>\n  <data>\n"
	xmlClosing = "  </data>\n</document>\n"

	xmlFillerAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 \n"
)

// PDFSkeletonSize is the smallest payload PDFDocument can produce.
var PDFSkeletonSize = len(pdfSkeleton)

// XMLSkeletonSize is the smallest payload XMLDocument can produce.
var XMLSkeletonSize = len(xmlHeader) + len(xmlOpening) + len(xmlClosing)

// PDFDocument returns a synthetic PDF payload of exactly size bytes, or the
// bare skeleton if size is smaller than it. The skeleton is never truncated.
func PDFDocument(size int) []byte {
	padding := size - len(pdfSkeleton)
	if padding < 0 {
		padding = 0
	}

	out := make([]byte, len(pdfSkeleton)+padding)
	copy(out, pdfSkeleton)
	return out
}

// XMLDocument returns a synthetic XML payload of exactly size bytes, or the
// bare skeleton if size is smaller than it. The interior is filled with
// random printable characters; only the length is contractual.
func XMLDocument(size int) []byte {
	filler := size - XMLSkeletonSize
	if filler < 0 {
		filler = 0
	}

	var b strings.Builder
	b.Grow(XMLSkeletonSize + filler)
	b.WriteString(xmlHeader)
	b.WriteString(xmlOpening)
	for i := 0; i < filler; i++ {
		b.WriteByte(xmlFillerAlphabet[rand.IntN(len(xmlFillerAlphabet))])
	}
	b.WriteString(xmlClosing)
	return []byte(b.String())
}
