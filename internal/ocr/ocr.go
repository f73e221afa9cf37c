// Package ocr extracts plain text from PDF documents.
package ocr

import "context"

// Extractor extracts text content from raw PDF bytes.
type Extractor interface {
	ExtractText(ctx context.Context, pdf []byte) (string, error)
}
