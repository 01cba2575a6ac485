package v1

import (
	"fmt"

	"github.com/billtrail/backend/internal/httputil"
	"github.com/billtrail/backend/internal/models"
	"github.com/billtrail/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReminderEditable struct {
	BillID    uuid.UUID        `json:"billId" example:"0f2d3c4e-5b6a-4f7e-8d9c-0a1b2c3d4e5f"`            // ID of the bill the reminder is for. It is not checked
	Title     string           `json:"title" example:"Rent - 3 day reminder"`                            // Title of the reminder
	Message   string           `json:"message" example:"Your Rent payment of ₹25,000 is due in 3 days."` // Message shown to the user
	Date      types.Date       `json:"date" example:"2024-06-02"`                                        // Date of the reminder
	Time      string           `json:"time" example:"09:00"`                                             // Time of day in HH:MM format
	Frequency models.Frequency `json:"frequency" example:"once" enums:"once,daily,weekly,monthly"`       // How often the reminder repeats
	Channels  []models.Channel `json:"channels"`                                                         // Where the reminder is shown
	IsActive  *bool            `json:"isActive" example:"true" default:"true"`                           // Is the reminder active? Defaults to true on creation
}

// model returns the reminder for the editable fields
func (editable ReminderEditable) model() models.Reminder {
	active := true
	if editable.IsActive != nil {
		active = *editable.IsActive
	}

	return models.Reminder{
		BillID:    editable.BillID,
		Title:     editable.Title,
		Message:   editable.Message,
		Date:      editable.Date,
		Time:      editable.Time,
		Frequency: editable.Frequency,
		Channels:  editable.Channels,
		IsActive:  active,
	}
}

// apply sets the fields of the reminder that are named in fields.
func (editable ReminderEditable) apply(m *models.Reminder, fields []string) {
	for _, field := range fields {
		switch field {
		case "billId":
			m.BillID = editable.BillID
		case "title":
			m.Title = editable.Title
		case "message":
			m.Message = editable.Message
		case "date":
			m.Date = editable.Date
		case "time":
			m.Time = editable.Time
		case "frequency":
			m.Frequency = editable.Frequency
		case "channels":
			m.Channels = editable.Channels
		case "isActive":
			m.IsActive = editable.IsActive != nil && *editable.IsActive
		}
	}
}

type ReminderLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/reminders/3b1d6a8e-7f3c-4c2d-9a5e-1f0b2c3d4e5f"`          // The reminder itself
	Toggle string `json:"toggle" example:"https://example.com/api/v1/reminders/3b1d6a8e-7f3c-4c2d-9a5e-1f0b2c3d4e5f/toggle"` // Endpoint to switch the reminder on or off
	Bill   string `json:"bill" example:"https://example.com/api/v1/bills/0f2d3c4e-5b6a-4f7e-8d9c-0a1b2c3d4e5f"`              // The bill the reminder is for
}

// Reminder is the API v1 representation of a reminder.
type Reminder struct {
	models.Reminder
	BillName string        `json:"billName" example:"Rent"` // Name of the bill, "Unknown bill" if it does not exist
	Links    ReminderLinks `json:"links"`
}

func newReminder(c *gin.Context, model models.Reminder, bills []models.Bill) Reminder {
	url := httputil.APIURL(c)

	return Reminder{
		Reminder: model,
		BillName: models.BillName(bills, model.BillID),
		Links: ReminderLinks{
			Self:   fmt.Sprintf("%s/v1/reminders/%s", url, model.ID),
			Toggle: fmt.Sprintf("%s/v1/reminders/%s/toggle", url, model.ID),
			Bill:   fmt.Sprintf("%s/v1/bills/%s", url, model.BillID),
		},
	}
}

func newReminders(c *gin.Context, reminders []models.Reminder, bills []models.Bill) []Reminder {
	apiResources := make([]Reminder, 0, len(reminders))
	for _, m := range reminders {
		apiResources = append(apiResources, newReminder(c, m, bills))
	}

	return apiResources
}

type ReminderListResponse struct {
	Data       []Reminder  `json:"data"`                                                          // List of reminders
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination,omitempty"`                                          // Pagination information
}

type ReminderCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ReminderResponse `json:"data"`                                                          // List of created reminders
}

func (r *ReminderCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ReminderResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ReminderResponse struct {
	Data  *Reminder `json:"data"`                                                          // Data for the reminder
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this reminder
}

type ReminderQueryFilter struct {
	BillID string `form:"bill"`   // By bill ID
	Active bool   `form:"active"` // Is the reminder active?
	Offset uint   `form:"offset"` // The offset of the first reminder returned. Defaults to 0.
	Limit  int    `form:"limit"`  // Maximum number of reminders to return. Defaults to 50.
}
