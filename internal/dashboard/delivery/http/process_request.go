package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"project-monitor/internal/dashboard"
	"project-monitor/internal/report"
	"project-monitor/pkg/sheet"
)

// processUploadReq reads the multipart "file" field and its optional form fields.
// The file is read at most one byte past the configured limit.
func (h *handler) processUploadReq(c *gin.Context) (dashboard.UploadInput, error) {
	var req uploadReq
	if err := c.ShouldBind(&req); err != nil {
		return dashboard.UploadInput{}, err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return dashboard.UploadInput{}, errFileRequired
	}
	if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
		return dashboard.UploadInput{}, h.mapError(dashboard.ErrUploadTooLarge)
	}

	f, err := fh.Open()
	if err != nil {
		return dashboard.UploadInput{}, errFileRequired
	}
	defer f.Close()

	var r io.Reader = f
	if h.maxUploadBytes > 0 {
		r = io.LimitReader(f, h.maxUploadBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return dashboard.UploadInput{}, err
	}

	return dashboard.UploadInput{
		FileName: fh.Filename,
		Data:     data,
		Sheet:    req.Sheet,
		SkipRows: req.SkipRows,
	}, nil
}

// processImportReq binds the Google Sheets import body.
func (h *handler) processImportReq(c *gin.Context) (importReq, error) {
	var req importReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSelectSheetReq binds the sheet switch body.
func (h *handler) processSelectSheetReq(c *gin.Context) (selectSheetReq, error) {
	var req selectSheetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processQueryReq binds the filter and as_of query parameters shared by every view.
func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processFiltersReq(c *gin.Context) (filtersReq, error) {
	var req filtersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processPriorityReq(c *gin.Context) (priorityReq, error) {
	var req priorityReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processExportReq binds the export query and resolves the kind path param.
func (h *handler) processExportReq(c *gin.Context) (dashboard.ExportInput, error) {
	var req exportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return dashboard.ExportInput{}, err
	}
	if err := req.validate(); err != nil {
		return dashboard.ExportInput{}, err
	}

	kind, err := report.ParseKind(c.Param("kind"))
	if err != nil {
		return dashboard.ExportInput{}, h.mapError(err)
	}
	format, err := sheet.ParseFormat(req.Format)
	if err != nil {
		return dashboard.ExportInput{}, h.mapError(err)
	}

	return dashboard.ExportInput{
		QueryInput: req.toInput(),
		Kind:       kind,
		Format:     format,
		Limit:      req.Limit,
	}, nil
}
