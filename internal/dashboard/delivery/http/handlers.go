package http

import (
	"github.com/gin-gonic/gin"

	"project-monitor/internal/dashboard"
	"project-monitor/internal/middleware"
	"project-monitor/pkg/response"
)

// Upload godoc
// @Summary     Upload a project table
// @Description Loads a CSV or XLSX file into the caller's session, replacing any previously loaded table.
// @Tags        Dashboard
// @Accept      multipart/form-data
// @Produce     json
// @Param       file      formData file   true  "CSV or XLSX file"
// @Param       sheet     formData string false "Worksheet name (XLSX only)"
// @Param       skip_rows formData int    false "Rows to skip above the header"
// @Success     200 {object} loadResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     413 {object} response.Resp "File too large"
// @Failure     415 {object} response.Resp "Unsupported file type"
// @Failure     422 {object} response.Resp "Missing required columns"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/dashboard/uploads [POST]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUploadReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Upload(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Upload: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoadResp(output))
}

// ImportGoogleSheet godoc
// @Summary     Import a Google Sheet
// @Description Reads one sheet of a Google spreadsheet into the caller's session.
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Param       body body importReq true "Spreadsheet reference"
// @Success     200 {object} loadResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Sheet not found"
// @Failure     422 {object} response.Resp "Missing required columns"
// @Failure     501 {object} response.Resp "Import not configured"
// @Failure     502 {object} response.Resp "Upstream failure"
// @Router      /api/v1/dashboard/imports/google-sheets [POST]
func (h *handler) ImportGoogleSheet(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ImportGoogleSheet(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ImportGoogleSheet: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoadResp(output))
}

// Sheets godoc
// @Summary     List worksheets
// @Description Returns the worksheets of the loaded workbook and the active one.
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} sheetsResp
// @Failure     404 {object} response.Resp "No table loaded"
// @Router      /api/v1/dashboard/sheets [GET]
func (h *handler) Sheets(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Sheets(ctx, middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, sheetsResp{Source: output.Source, Sheets: output.Sheets, Sheet: output.Sheet})
}

// SelectSheet godoc
// @Summary     Switch worksheet
// @Description Reloads the session table from another worksheet of the same workbook.
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Param       body body selectSheetReq true "Worksheet name"
// @Success     200 {object} loadResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Session or sheet not found"
// @Failure     422 {object} response.Resp "Missing required columns"
// @Router      /api/v1/dashboard/sheets [PUT]
func (h *handler) SelectSheet(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSelectSheetReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SelectSheet(ctx, middleware.GetScope(c), dashboard.SelectSheetInput{Sheet: req.Sheet})
	if err != nil {
		h.l.Errorf(ctx, "uc.SelectSheet: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoadResp(output))
}

// Close godoc
// @Summary     Discard the session
// @Description Drops the loaded table and expires the session cookie.
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/dashboard/session [DELETE]
func (h *handler) Close(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Close(ctx, middleware.GetScope(c)); err != nil {
		h.l.Errorf(ctx, "uc.Close: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.mw.EndSession(c)
	response.OK(c, nil)
}

// Overview godoc
// @Summary     Dashboard overview
// @Description Status counts, weighted progress, deadlines and per-project summaries.
// @Tags        Dashboard
// @Produce     json
// @Param       project query string false "Project filter"
// @Param       column  query string false "Column to filter on"
// @Param       value   query string false "Value for the column filter"
// @Param       as_of   query string false "Reference date (YYYY-MM-DD or relative, e.g. yesterday)"
// @Success     200 {object} overviewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No table loaded"
// @Router      /api/v1/dashboard/overview [GET]
func (h *handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Overview(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newOverviewResp(output))
}

// Filters godoc
// @Summary     Filter values
// @Description Distinct normalized values of a column, plus the project list.
// @Tags        Dashboard
// @Produce     json
// @Param       column query string false "Column name"
// @Success     200 {object} filtersResp
// @Failure     400 {object} response.Resp "Unknown column"
// @Failure     404 {object} response.Resp "No table loaded"
// @Router      /api/v1/dashboard/filters [GET]
func (h *handler) Filters(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFiltersReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Filters(ctx, middleware.GetScope(c), dashboard.FiltersInput{Column: req.Column})
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, filtersResp{Column: output.Column, Values: nonNil(output.Values), Projects: nonNil(output.Projects)})
}

// SCurve godoc
// @Summary     Progress curve
// @Description Cumulative planned and actual progress per period, with the schedule performance index.
// @Tags        Dashboard
// @Produce     json
// @Param       project query string false "Project filter"
// @Param       column  query string false "Column to filter on"
// @Param       value   query string false "Value for the column filter"
// @Param       as_of   query string false "Reference date"
// @Success     200 {object} scurveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No table loaded"
// @Router      /api/v1/dashboard/scurve [GET]
func (h *handler) SCurve(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SCurve(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSCurveResp(output))
}

// Zones godoc
// @Summary     Zone progress
// @Description Mean progress per site zone with its map fill color.
// @Tags        Dashboard
// @Produce     json
// @Param       project query string false "Project filter"
// @Param       column  query string false "Column to filter on"
// @Param       value   query string false "Value for the column filter"
// @Param       as_of   query string false "Reference date"
// @Success     200 {object} zonesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No table loaded"
// @Router      /api/v1/dashboard/zones [GET]
func (h *handler) Zones(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Zones(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newZonesResp(output))
}

// Late godoc
// @Summary     Late tasks
// @Description Unfinished tasks past their finish date, most overdue first.
// @Tags        Dashboard
// @Produce     json
// @Param       project query string false "Project filter"
// @Param       column  query string false "Column to filter on"
// @Param       value   query string false "Value for the column filter"
// @Param       as_of   query string false "Reference date"
// @Success     200 {object} lateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No table loaded"
// @Router      /api/v1/dashboard/late [GET]
func (h *handler) Late(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Late(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLateResp(output))
}

// Priority godoc
// @Summary     Priority ranking
// @Description Tasks ranked by blended priority score, highest first.
// @Tags        Dashboard
// @Produce     json
// @Param       project query string false "Project filter"
// @Param       column  query string false "Column to filter on"
// @Param       value   query string false "Value for the column filter"
// @Param       as_of   query string false "Reference date"
// @Param       limit   query int    false "Maximum rows (0 for all)"
// @Success     200 {object} priorityResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No table loaded"
// @Router      /api/v1/dashboard/priority [GET]
func (h *handler) Priority(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPriorityReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Priority(ctx, middleware.GetScope(c), dashboard.PriorityInput{QueryInput: req.toInput(), Limit: req.Limit})
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPriorityResp(output))
}

// Gantt godoc
// @Summary     Timeline
// @Description Dated tasks ordered by start, with status colors and resolved predecessors.
// @Tags        Dashboard
// @Produce     json
// @Param       project query string false "Project filter"
// @Param       column  query string false "Column to filter on"
// @Param       value   query string false "Value for the column filter"
// @Param       as_of   query string false "Reference date"
// @Success     200 {object} ganttResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No table loaded"
// @Router      /api/v1/dashboard/gantt [GET]
func (h *handler) Gantt(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Gantt(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGanttResp(output))
}

// Contracts godoc
// @Summary     Contract time elapsed
// @Description Share of planned duration elapsed per task, bucketed, with duration statistics.
// @Tags        Dashboard
// @Produce     json
// @Param       project query string false "Project filter"
// @Param       column  query string false "Column to filter on"
// @Param       value   query string false "Value for the column filter"
// @Param       as_of   query string false "Reference date"
// @Success     200 {object} contractsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No table loaded"
// @Router      /api/v1/dashboard/contracts [GET]
func (h *handler) Contracts(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Contracts(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newContractsResp(output))
}

// Export godoc
// @Summary     Export a report
// @Description Downloads the filtered table or a derived view as CSV or XLSX.
// @Tags        Dashboard
// @Produce     octet-stream
// @Param       kind    path  string true  "Report kind (table, status, late, priority)"
// @Param       format  query string false "csv (default) or xlsx"
// @Param       limit   query int    false "Row limit for the priority report"
// @Param       project query string false "Project filter"
// @Param       column  query string false "Column to filter on"
// @Param       value   query string false "Value for the column filter"
// @Param       as_of   query string false "Reference date"
// @Success     200 {file} file
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No table loaded or unknown kind"
// @Router      /api/v1/dashboard/exports/{kind} [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Export(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.File(c, output.File.Name, output.File.ContentType, output.File.Data)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
