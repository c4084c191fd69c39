package dashboard

import "errors"

var (
	ErrSessionNotFound   = errors.New("no table loaded for this session")
	ErrEmptyUpload       = errors.New("uploaded file is empty")
	ErrUploadTooLarge    = errors.New("uploaded file is too large")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrSheetNotFound     = errors.New("sheet not found")
	ErrInvalidAsOf       = errors.New("invalid as_of date")
	ErrInvalidInput      = errors.New("invalid input")
	ErrSourceUnavailable = errors.New("google sheets source is not configured")
	ErrSourceFailed      = errors.New("failed to read google sheet")
)
