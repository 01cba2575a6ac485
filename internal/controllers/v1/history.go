package v1

import (
	"bytes"
	"net/http"

	"github.com/billtrail/backend/internal/analytics"
	"github.com/billtrail/backend/internal/httputil"
	"github.com/billtrail/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// HistoryFileName is the name of the CSV file offered for download.
const HistoryFileName = "bill-history.csv"

type HistoryQuery struct {
	Search   string `form:"search"`                               // Search for this text in the bill name, case insensitive
	Status   string `form:"status"`                               // Filter by current status of the bill
	Category string `form:"category"`                             // Filter by category of the bill
	Sort     string `form:"sort" enums:"asc,desc" example:"desc"` // Sort order by timestamp. Defaults to desc, newest first
}

type HistoryResponse struct {
	Data  []analytics.Event `json:"data"`                                                   // History events
	Error *string           `json:"error" example:"the sort parameter must be asc or desc"` // The error, if any occurred
}

// RegisterHistoryRoutes registers the routes for the bill history with
// the RouterGroup that is passed.
func (co Controller) RegisterHistoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsHistory)
	r.GET("", co.GetHistory)
	r.OPTIONS("/csv", co.OptionsHistory)
	r.GET("/csv", co.GetHistoryCSV)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			History
// @Success		204
// @Router			/v1/history [options]
// @Router			/v1/history/csv [options]
func (co Controller) OptionsHistory(c *gin.Context) {
	httputil.OptionsGet(c)
}

// history returns the filtered history for the query of the request.
func (co Controller) history(c *gin.Context) ([]analytics.Event, error) {
	var query HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return nil, httputil.ErrInvalidQuery
	}

	if query.Status != "" && !models.BillStatus(query.Status).Valid() {
		return nil, models.ErrBillStatusInvalid
	}

	if query.Sort != "" && query.Sort != "asc" && query.Sort != "desc" {
		return nil, errSortInvalid
	}

	bills, err := co.Store.Bills().List(c)
	if err != nil {
		return nil, err
	}

	return analytics.History(bills, analytics.HistoryFilter{
		Search:    query.Search,
		Status:    models.BillStatus(query.Status),
		Category:  query.Category,
		Ascending: query.Sort == "asc",
	}), nil
}

// @Summary		Bill history
// @Description	Returns the creation, payment and update events of all bills
// @Tags			History
// @Produce		json
// @Success		200			{object}	HistoryResponse
// @Failure		400			{object}	HistoryResponse
// @Failure		500			{object}	HistoryResponse
// @Param			search		query		string	false	"Search for this text in the bill name"
// @Param			status		query		string	false	"Filter by status"
// @Param			category	query		string	false	"Filter by category"
// @Param			sort		query		string	false	"asc for oldest first, desc for newest first. Defaults to desc."
// @Router			/v1/history [get]
func (co Controller) GetHistory(c *gin.Context) {
	events, err := co.history(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HistoryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{Data: events})
}

// @Summary		Bill history as CSV
// @Description	Returns the bill history as a CSV file
// @Tags			History
// @Produce		text/csv
// @Success		200
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			search		query		string	false	"Search for this text in the bill name"
// @Param			status		query		string	false	"Filter by status"
// @Param			category	query		string	false	"Filter by category"
// @Param			sort		query		string	false	"asc for oldest first, desc for newest first. Defaults to desc."
// @Router			/v1/history/csv [get]
func (co Controller) GetHistoryCSV(c *gin.Context) {
	events, err := co.history(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := analytics.WriteHistoryCSV(&buf, events); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+HistoryFileName+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
