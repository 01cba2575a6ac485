package store_test

import (
	"github.com/billtrail/backend/internal/models"
	"github.com/billtrail/backend/internal/types"
	"github.com/google/uuid"
)

func reminderFor(billID uuid.UUID, title string) models.Reminder {
	return models.Reminder{
		BillID:    billID,
		Title:     title,
		Message:   "Pay it",
		Date:      types.DateOf(now).AddDays(2),
		Time:      "09:00",
		Frequency: models.FrequencyOnce,
		Channels:  []models.Channel{models.ChannelInApp},
		IsActive:  true,
	}
}

func (suite *StoreSuite) TestRemindersForBill() {
	bill := suite.createBill("Water Bill", 750, "Utilities", models.BillStatusUpcoming)
	dangling := uuid.New()

	_, err := suite.store.Reminders().AddMany(suite.ctx, []models.Reminder{
		reminderFor(bill.ID, "first"),
		reminderFor(dangling, "orphan"),
		reminderFor(bill.ID, "second"),
	})
	suite.Require().Nil(err)

	reminders, err := suite.store.Reminders().ForBill(suite.ctx, bill.ID)
	suite.Require().Nil(err)
	suite.Len(reminders, 2)
	suite.Equal("first", reminders[0].Title)
	suite.Equal("second", reminders[1].Title)

	all, err := suite.store.Reminders().List(suite.ctx)
	suite.Require().Nil(err)
	suite.Len(all, 3, "reminders for unknown bills are kept")

	bills, err := suite.store.Bills().List(suite.ctx)
	suite.Require().Nil(err)
	suite.Equal(models.UnknownBill, models.BillName(bills, all[1].BillID))
}

func (suite *StoreSuite) TestRemindersAddInvalid() {
	r := reminderFor(uuid.New(), "bad")
	r.Time = "9"

	_, err := suite.store.Reminders().Add(suite.ctx, r)
	suite.ErrorIs(err, models.ErrTimeInvalid)

	r = reminderFor(uuid.New(), "undated")
	r.Date = types.Date{}

	_, err = suite.store.Reminders().Add(suite.ctx, r)
	suite.ErrorIs(err, models.ErrDateMissing)
}

func (suite *StoreSuite) TestRemindersToggle() {
	reminder, err := suite.store.Reminders().Add(suite.ctx, reminderFor(uuid.New(), "toggle me"))
	suite.Require().Nil(err)
	suite.True(reminder.IsActive)

	toggled, err := suite.store.Reminders().Toggle(suite.ctx, reminder.ID)
	suite.Require().Nil(err)
	suite.False(toggled.IsActive)

	toggled, err = suite.store.Reminders().Toggle(suite.ctx, reminder.ID)
	suite.Require().Nil(err)
	suite.True(toggled.IsActive)

	_, err = suite.store.Reminders().Toggle(suite.ctx, uuid.New())
	suite.ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *StoreSuite) TestRemindersUpdateAndDelete() {
	reminder, err := suite.store.Reminders().Add(suite.ctx, reminderFor(uuid.New(), "update me"))
	suite.Require().Nil(err)

	updated, err := suite.store.Reminders().Update(suite.ctx, reminder.ID, func(r *models.Reminder) {
		r.Frequency = models.FrequencyWeekly
		r.Channels = []models.Channel{models.ChannelSMS}
	})
	suite.Require().Nil(err)
	suite.Equal(models.FrequencyWeekly, updated.Frequency)
	suite.Equal([]models.Channel{models.ChannelSMS}, updated.Channels)

	_, err = suite.store.Reminders().Update(suite.ctx, reminder.ID, func(r *models.Reminder) { r.Frequency = "hourly" })
	suite.ErrorIs(err, models.ErrFrequencyInvalid)

	suite.Require().Nil(suite.store.Reminders().Delete(suite.ctx, reminder.ID))
	_, err = suite.store.Reminders().Get(suite.ctx, reminder.ID)
	suite.ErrorIs(err, models.ErrResourceNotFound)
}
