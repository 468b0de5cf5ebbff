package dto

import "errors"

// Accepted upload extensions, in the order they are reported to callers.
var AcceptedExtensions = []string{".xlsx", ".xls", ".csv", ".pdf", ".jpg", ".jpeg", ".png"}

// Typed ingestion failures. Field-level ambiguity is never an error; these
// cover the cases that abort a whole ingestion call.
var (
	ErrUnsupportedFormat = errors.New("unsupported file type: upload Excel (.xlsx, .xls), CSV, PDF, or image (.jpg, .jpeg, .png) files")
	ErrEmptyDataset      = errors.New("no data found in file")
	ErrDecodeFailure     = errors.New("failed to decode file")
)

// ErrorResponse is the JSON error body returned by all endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
