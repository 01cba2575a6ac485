package v1

import (
	"net/http"

	"github.com/billtrail/backend/internal/httputil"
	"github.com/billtrail/backend/internal/models"
	bt_uuid "github.com/billtrail/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterReminderRoutes registers the routes for reminders with
// the RouterGroup that is passed.
func (co Controller) RegisterReminderRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsReminderList)
		r.GET("", co.GetReminders)
		r.POST("", co.CreateReminders)
	}

	// Reminder with ID
	{
		r.OPTIONS("/:id", co.OptionsReminderDetail)
		r.GET("/:id", co.GetReminder)
		r.PATCH("/:id", co.UpdateReminder)
		r.DELETE("/:id", co.DeleteReminder)
		r.OPTIONS("/:id/toggle", co.OptionsReminderToggle)
		r.POST("/:id/toggle", co.ToggleReminder)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reminders
// @Success		204
// @Router			/v1/reminders [options]
func (co Controller) OptionsReminderList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reminders
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/reminders/{id} [options]
func (co Controller) OptionsReminderDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err := co.Store.Reminders().Get(c, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reminders
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/reminders/{id}/toggle [options]
func (co Controller) OptionsReminderToggle(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create reminders
// @Description	Creates new reminders. The bill a reminder refers to does not need to exist.
// @Tags			Reminders
// @Accept			json
// @Produce		json
// @Success		201			{object}	ReminderCreateResponse
// @Failure		400			{object}	ReminderCreateResponse
// @Failure		500			{object}	ReminderCreateResponse
// @Param			reminders	body		[]ReminderEditable	true	"Reminders"
// @Router			/v1/reminders [post]
func (co Controller) CreateReminders(c *gin.Context) {
	var editables []ReminderEditable

	if err := httputil.BindData(c, &editables); err != nil {
		e := err.Error()
		c.JSON(status(err), ReminderCreateResponse{
			Error: &e,
		})
		return
	}

	bills, err := co.Store.Bills().List(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReminderCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ReminderCreateResponse{}

	for _, editable := range editables {
		reminder, err := co.Store.Reminders().Add(c, editable.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newReminder(c, reminder, bills)
		r.Data = append(r.Data, ReminderResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List reminders
// @Description	Returns a list of reminders in creation order
// @Tags			Reminders
// @Produce		json
// @Success		200	{object}	ReminderListResponse
// @Failure		400	{object}	ReminderListResponse
// @Failure		500	{object}	ReminderListResponse
// @Router			/v1/reminders [get]
// @Param			bill	query	string	false	"Filter by bill ID"
// @Param			active	query	bool	false	"Filter by active state"
// @Param			offset	query	uint	false	"The offset of the first reminder returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of reminders to return. Defaults to 50."
func (co Controller) GetReminders(c *gin.Context) {
	var filter ReminderQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		e := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, ReminderListResponse{
			Error: &e,
		})
		return
	}

	var billID bt_uuid.UUID
	if err := billID.UnmarshalParam(filter.BillID); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ReminderListResponse{
			Error: &e,
		})
		return
	}

	reminders, err := co.Store.Reminders().List(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReminderListResponse{
			Error: &e,
		})
		return
	}

	bills, err := co.Store.Bills().List(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReminderListResponse{
			Error: &e,
		})
		return
	}

	setFields := httputil.GetURLFields(c.Request.URL, filter)

	matching := []models.Reminder{}
	for _, reminder := range reminders {
		if !billID.IsNil() && reminder.BillID != billID.UUID {
			continue
		}

		if slices.Contains(setFields, "Active") && reminder.IsActive != filter.Active {
			continue
		}

		matching = append(matching, reminder)
	}

	limit := defaultLimit
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	page, pagination := paginate(matching, filter.Offset, limit)
	c.JSON(http.StatusOK, ReminderListResponse{
		Data:       newReminders(c, page, bills),
		Pagination: &pagination,
	})
}

// getReminder returns the reminder for the ID in the URI together with
// all bills to resolve its bill name.
func (co Controller) getReminder(c *gin.Context) (models.Reminder, []models.Bill, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return models.Reminder{}, nil, err
	}

	reminder, err := co.Store.Reminders().Get(c, uri.ID.UUID)
	if err != nil {
		return models.Reminder{}, nil, err
	}

	bills, err := co.Store.Bills().List(c)
	if err != nil {
		return models.Reminder{}, nil, err
	}

	return reminder, bills, nil
}

// @Summary		Get reminder
// @Description	Returns a specific reminder
// @Tags			Reminders
// @Produce		json
// @Success		200	{object}	ReminderResponse
// @Failure		400	{object}	ReminderResponse
// @Failure		404	{object}	ReminderResponse
// @Failure		500	{object}	ReminderResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/reminders/{id} [get]
func (co Controller) GetReminder(c *gin.Context) {
	reminder, bills, err := co.getReminder(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	data := newReminder(c, reminder, bills)
	c.JSON(http.StatusOK, ReminderResponse{Data: &data})
}

// @Summary		Update reminder
// @Description	Update an existing reminder. Only values to be updated need to be specified.
// @Tags			Reminders
// @Accept			json
// @Produce		json
// @Success		200			{object}	ReminderResponse
// @Failure		400			{object}	ReminderResponse
// @Failure		404			{object}	ReminderResponse
// @Failure		500			{object}	ReminderResponse
// @Param			id			path		string				true	"ID formatted as string"
// @Param			reminder	body		ReminderEditable	true	"Reminder"
// @Router			/v1/reminders/{id} [patch]
func (co Controller) UpdateReminder(c *gin.Context) {
	reminder, bills, err := co.getReminder(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ReminderEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	var data ReminderEditable
	if err := httputil.BindData(c, &data); err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	reminder, err = co.Store.Reminders().Update(c, reminder.ID, func(m *models.Reminder) {
		data.apply(m, updateFields)
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	apiResource := newReminder(c, reminder, bills)
	c.JSON(http.StatusOK, ReminderResponse{Data: &apiResource})
}

// @Summary		Toggle reminder
// @Description	Switches a reminder on if it is off and off if it is on
// @Tags			Reminders
// @Produce		json
// @Success		200	{object}	ReminderResponse
// @Failure		400	{object}	ReminderResponse
// @Failure		404	{object}	ReminderResponse
// @Failure		500	{object}	ReminderResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/reminders/{id}/toggle [post]
func (co Controller) ToggleReminder(c *gin.Context) {
	reminder, bills, err := co.getReminder(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	reminder, err = co.Store.Reminders().Toggle(c, reminder.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	apiResource := newReminder(c, reminder, bills)
	c.JSON(http.StatusOK, ReminderResponse{Data: &apiResource})
}

// @Summary		Delete reminder
// @Description	Deletes a reminder
// @Tags			Reminders
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/reminders/{id} [delete]
func (co Controller) DeleteReminder(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := co.Store.Reminders().Delete(c, uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
