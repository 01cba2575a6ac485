package v1

import (
	"net/http"

	"github.com/billtrail/backend/internal/analytics"
	"github.com/billtrail/backend/internal/classifier"
	"github.com/billtrail/backend/internal/httputil"
	"github.com/billtrail/backend/internal/models"
	"github.com/billtrail/backend/internal/reminders"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterBillRoutes registers the routes for bills with
// the RouterGroup that is passed.
func (co Controller) RegisterBillRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsBillList)
		r.GET("", co.GetBills)
		r.POST("", co.CreateBills)
	}

	// Bill with ID
	{
		r.OPTIONS("/:id", co.OptionsBillDetail)
		r.GET("/:id", co.GetBill)
		r.PUT("/:id", co.ReplaceBill)
		r.PATCH("/:id", co.UpdateBillStatus)
		r.OPTIONS("/:id/smart-reminders", co.OptionsSmartReminders)
		r.POST("/:id/smart-reminders", co.CreateSmartReminders)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bills
// @Success		204
// @Router			/v1/bills [options]
func (co Controller) OptionsBillList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bills
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/bills/{id} [options]
func (co Controller) OptionsBillDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err := co.Store.Bills().Get(c, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPutPatch(c)
}

// @Summary		Create bills
// @Description	Creates new bills. Bills without a category are categorized by their name.
// @Tags			Bills
// @Accept			json
// @Produce		json
// @Success		201		{object}	BillCreateResponse
// @Failure		400		{object}	BillCreateResponse
// @Failure		500		{object}	BillCreateResponse
// @Param			bills	body		[]BillEditable	true	"Bills"
// @Router			/v1/bills [post]
func (co Controller) CreateBills(c *gin.Context) {
	var editables []BillEditable

	if err := httputil.BindData(c, &editables); err != nil {
		e := err.Error()
		c.JSON(status(err), BillCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BillCreateResponse{}

	for _, editable := range editables {
		bill := editable.model()

		if bill.Category == "" {
			bill.Category = classifier.Classify(bill.Name).Category
			billsClassified.WithLabelValues(bill.Category).Inc()
		}

		if bill.Status == "" {
			bill.Status = models.BillStatusUpcoming
		}

		bill, err := co.Store.Bills().Add(c, bill)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBill(c, bill)
		r.Data = append(r.Data, BillResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List bills
// @Description	Returns a list of bills, sorted by due date
// @Tags			Bills
// @Produce		json
// @Success		200	{object}	BillListResponse
// @Failure		400	{object}	BillListResponse
// @Failure		500	{object}	BillListResponse
// @Router			/v1/bills [get]
// @Param			status		query	string	false	"Filter by status"
// @Param			category	query	string	false	"Filter by category"
// @Param			search		query	string	false	"Search for this text in name and description"
// @Param			offset		query	uint	false	"The offset of the first bill returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of bills to return. Defaults to 50."
func (co Controller) GetBills(c *gin.Context) {
	var filter BillQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		e := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, BillListResponse{
			Error: &e,
		})
		return
	}

	if filter.Status != "" && !models.BillStatus(filter.Status).Valid() {
		e := models.ErrBillStatusInvalid.Error()
		c.JSON(http.StatusBadRequest, BillListResponse{
			Error: &e,
		})
		return
	}

	bills, err := co.Store.Bills().List(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillListResponse{
			Error: &e,
		})
		return
	}

	matching := []models.Bill{}
	for _, bill := range bills {
		if filter.matches(bill) {
			matching = append(matching, bill)
		}
	}
	analytics.SortByDueDate(matching)

	limit := defaultLimit
	if slices.Contains(httputil.GetURLFields(c.Request.URL, filter), "Limit") {
		limit = filter.Limit
	}

	page, pagination := paginate(matching, filter.Offset, limit)
	c.JSON(http.StatusOK, BillListResponse{
		Data:       newBills(c, page),
		Pagination: &pagination,
	})
}

// @Summary		Get bill
// @Description	Returns a specific bill
// @Tags			Bills
// @Produce		json
// @Success		200	{object}	BillResponse
// @Failure		400	{object}	BillResponse
// @Failure		404	{object}	BillResponse
// @Failure		500	{object}	BillResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/bills/{id} [get]
func (co Controller) GetBill(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	bill, err := co.Store.Bills().Get(c, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	data := newBill(c, bill)
	c.JSON(http.StatusOK, BillResponse{Data: &data})
}

// @Summary		Replace bill
// @Description	Replaces all editable fields of an existing bill
// @Tags			Bills
// @Accept			json
// @Produce		json
// @Success		200		{object}	BillResponse
// @Failure		400		{object}	BillResponse
// @Failure		404		{object}	BillResponse
// @Failure		500		{object}	BillResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			bill	body		BillEditable	true	"Bill"
// @Router			/v1/bills/{id} [put]
func (co Controller) ReplaceBill(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	var editable BillEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	bill, err := co.Store.Bills().Replace(c, uri.ID.UUID, editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	data := newBill(c, bill)
	c.JSON(http.StatusOK, BillResponse{Data: &data})
}

// @Summary		Update bill status
// @Description	Sets the payment status of a bill
// @Tags			Bills
// @Accept			json
// @Produce		json
// @Success		200		{object}	BillResponse
// @Failure		400		{object}	BillResponse
// @Failure		404		{object}	BillResponse
// @Failure		500		{object}	BillResponse
// @Param			id		path		string				true	"ID formatted as string"
// @Param			status	body		BillStatusEditable	true	"Status"
// @Router			/v1/bills/{id} [patch]
func (co Controller) UpdateBillStatus(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	var data BillStatusEditable
	if err := httputil.BindData(c, &data); err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	bill, err := co.Store.Bills().UpdateStatus(c, uri.ID.UUID, data.Status)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	apiResource := newBill(c, bill)
	c.JSON(http.StatusOK, BillResponse{Data: &apiResource})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bills
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/bills/{id}/smart-reminders [options]
func (co Controller) OptionsSmartReminders(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Schedule smart reminders
// @Description	Creates reminders 7, 3 and 1 days before the due date of the bill. Reminders that would lie in the past are skipped.
// @Tags			Bills
// @Produce		json
// @Success		201	{object}	ReminderListResponse
// @Failure		400	{object}	ReminderListResponse
// @Failure		404	{object}	ReminderListResponse
// @Failure		500	{object}	ReminderListResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/bills/{id}/smart-reminders [post]
func (co Controller) CreateSmartReminders(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderListResponse{
			Error: &s,
		})
		return
	}

	bill, err := co.Store.Bills().Get(c, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderListResponse{
			Error: &s,
		})
		return
	}

	formatter, err := co.formatter(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderListResponse{
			Error: &s,
		})
		return
	}

	scheduled := reminders.Scheduler{Formatter: formatter}.Smart(bill, co.today())
	added, err := co.Store.Reminders().AddMany(c, scheduled)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderListResponse{
			Error: &s,
		})
		return
	}
	remindersGenerated.Add(float64(len(added)))

	c.JSON(http.StatusCreated, ReminderListResponse{
		Data: newReminders(c, added, []models.Bill{bill}),
	})
}
