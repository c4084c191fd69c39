package http

import (
	"errors"
	"net/http"

	"project-monitor/internal/dashboard"
	"project-monitor/internal/report"
	"project-monitor/internal/schema"
	pkgErrors "project-monitor/pkg/errors"
	"project-monitor/pkg/sheet"
)

var (
	errFileRequired  = pkgErrors.NewHTTPError(http.StatusBadRequest, "file is required")
	errInvalidParams = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid parameters")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var se *schema.SchemaError
	switch {
	case errors.As(err, &se):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, se.Error()).
			WithData(map[string]any{"missing_columns": se.Missing})
	case errors.Is(err, dashboard.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "no table loaded for this session")
	case errors.Is(err, dashboard.ErrSheetNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "sheet not found")
	case errors.Is(err, dashboard.ErrEmptyUpload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "uploaded file is empty")
	case errors.Is(err, dashboard.ErrUploadTooLarge):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "uploaded file is too large")
	case errors.Is(err, dashboard.ErrUnsupportedFormat):
		return pkgErrors.NewHTTPError(http.StatusUnsupportedMediaType, "expected a CSV or XLSX file")
	case errors.Is(err, sheet.ErrUnknownFormat):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "unknown export format")
	case errors.Is(err, dashboard.ErrInvalidAsOf):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid as_of date")
	case errors.Is(err, dashboard.ErrInvalidInput):
		return errInvalidParams
	case errors.Is(err, schema.ErrUnknownColumn):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, report.ErrUnknownKind):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "unknown report kind")
	case errors.Is(err, dashboard.ErrSourceUnavailable):
		return pkgErrors.NewHTTPError(http.StatusNotImplemented, "google sheets import is not configured")
	case errors.Is(err, dashboard.ErrSourceFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "failed to read google sheet")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
