package client

import "context"

// Recognizer extracts raw text from an image payload. Implementations do
// not retry and do not enforce timeouts; the caller bounds the call via ctx.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte, filename string) (string, error)
}
