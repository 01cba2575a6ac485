package store_test

import (
	"testing"
	"time"

	"github.com/billtrail/backend/internal/models"
	"github.com/billtrail/backend/internal/store"
	"github.com/billtrail/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *StoreSuite) TestBillsEmpty() {
	bills, err := suite.store.Bills().List(suite.ctx)
	suite.Require().Nil(err)
	suite.NotNil(bills)
	suite.Len(bills, 0)
}

func (suite *StoreSuite) TestBillsAdd() {
	bill := suite.createBill(" Electricity Bill ", 1500, "Utilities", models.BillStatusDueSoon)

	suite.NotEqual(uuid.Nil, bill.ID)
	suite.Equal("Electricity Bill", bill.Name)
	suite.Equal(types.DateOf(now), bill.CreatedAt)
	suite.Equal(bill.CreatedAt, bill.UpdatedAt)

	stored, err := suite.store.Bills().Get(suite.ctx, bill.ID)
	suite.Require().Nil(err)
	suite.Equal(bill.ID, stored.ID)
	suite.True(bill.Amount.Equal(stored.Amount))
}

func (suite *StoreSuite) TestBillsAddInvalid() {
	tests := []struct {
		name string
		bill models.Bill
		err  error
	}{
		{"negative amount", models.Bill{Name: "Bad", Amount: decimal.NewFromInt(-1), Status: models.BillStatusPaid}, models.ErrAmountNotPositive},
		{"no status", models.Bill{Name: "Bad", Amount: decimal.NewFromInt(1)}, models.ErrBillStatusInvalid},
		{"no name", models.Bill{Amount: decimal.NewFromInt(1), Status: models.BillStatusPaid}, models.ErrNameEmpty},
		{"no due date", models.Bill{Name: "Bad", Amount: decimal.NewFromInt(1), Status: models.BillStatusPaid}, models.ErrDueDateMissing},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := suite.store.Bills().Add(suite.ctx, tt.bill)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	bills, err := suite.store.Bills().List(suite.ctx)
	suite.Require().Nil(err)
	suite.Len(bills, 0, "invalid bills must not be stored")
}

func (suite *StoreSuite) TestBillsAddManyIsAtomic() {
	_, err := suite.store.Bills().AddMany(suite.ctx, []models.Bill{
		{Name: "Good", Amount: decimal.NewFromInt(10), DueDate: types.DateOf(now), Status: models.BillStatusPaid},
		{Name: "Bad", Amount: decimal.Zero, DueDate: types.DateOf(now), Status: models.BillStatusPaid},
	})
	suite.ErrorIs(err, models.ErrAmountNotPositive)

	bills, err := suite.store.Bills().List(suite.ctx)
	suite.Require().Nil(err)
	suite.Len(bills, 0)
}

func (suite *StoreSuite) TestBillsGetNotFound() {
	_, err := suite.store.Bills().Get(suite.ctx, uuid.New())
	suite.ErrorIs(err, models.ErrResourceNotFound)
	suite.Contains(err.Error(), "there is no bill matching your query")
}

func (suite *StoreSuite) TestBillsUpdateStatus() {
	created := now.Add(-72 * time.Hour)
	s := store.New(suite.db, store.WithClock(func() time.Time { return created }))

	bill, err := s.Bills().Add(suite.ctx, models.Bill{
		Name:     "Internet Bill",
		Amount:   decimal.NewFromInt(1200),
		DueDate:  types.DateOf(created).AddDays(1),
		Category: "Utilities",
		Status:   models.BillStatusOverdue,
	})
	suite.Require().Nil(err)

	updated, err := suite.store.Bills().UpdateStatus(suite.ctx, bill.ID, models.BillStatusPaid)
	suite.Require().Nil(err)
	suite.Equal(models.BillStatusPaid, updated.Status)
	suite.Equal(types.DateOf(created), updated.CreatedAt)
	suite.Equal(types.DateOf(now), updated.UpdatedAt)

	stored, err := suite.store.Bills().Get(suite.ctx, bill.ID)
	suite.Require().Nil(err)
	suite.Equal(updated, stored)
}

func (suite *StoreSuite) TestBillsUpdateStatusNotFound() {
	suite.createBill("Water Bill", 750, "Utilities", models.BillStatusUpcoming)

	_, err := suite.store.Bills().UpdateStatus(suite.ctx, uuid.New(), models.BillStatusPaid)
	suite.ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *StoreSuite) TestBillsUpdateStatusInvalid() {
	bill := suite.createBill("Water Bill", 750, "Utilities", models.BillStatusUpcoming)

	_, err := suite.store.Bills().UpdateStatus(suite.ctx, bill.ID, "settled")
	suite.ErrorIs(err, models.ErrBillStatusInvalid)
}

func (suite *StoreSuite) TestBillsReplace() {
	bill := suite.createBill("Water Bill", 750, "Utilities", models.BillStatusUpcoming)

	replaced, err := suite.store.Bills().Replace(suite.ctx, bill.ID, models.Bill{
		ID:        uuid.New(),
		Name:      "Water Bill (May)",
		Amount:    decimal.NewFromInt(800),
		DueDate:   types.DateOf(now),
		Category:  "Utilities",
		Status:    models.BillStatusPaid,
		CreatedAt: types.NewDate(1999, time.January, 1),
	})
	suite.Require().Nil(err)
	suite.Equal(bill.ID, replaced.ID, "the ID is kept")
	suite.Equal(bill.CreatedAt, replaced.CreatedAt, "the creation date is kept")
	suite.Equal("Water Bill (May)", replaced.Name)

	_, err = suite.store.Bills().Replace(suite.ctx, uuid.New(), replaced)
	suite.ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.store.Bills().Replace(suite.ctx, bill.ID, models.Bill{Name: "x", Status: models.BillStatusPaid})
	suite.ErrorIs(err, models.ErrAmountNotPositive)
}

func (suite *StoreSuite) TestBillsSeed() {
	today := types.DateOf(now)

	seeded, err := suite.store.Bills().Seed(suite.ctx, store.DemoBills(today))
	suite.Require().Nil(err)
	suite.True(seeded)

	bills, err := suite.store.Bills().List(suite.ctx)
	suite.Require().Nil(err)
	suite.Len(bills, 6)
	suite.Equal("Electricity Bill", bills[0].Name)
	suite.Equal(today.AddDays(5), bills[0].DueDate)

	seeded, err = suite.store.Bills().Seed(suite.ctx, store.DemoBills(today))
	suite.Require().Nil(err)
	suite.False(seeded, "existing bills are never overwritten")

	bills, err = suite.store.Bills().List(suite.ctx)
	suite.Require().Nil(err)
	suite.Len(bills, 6)
}

func (suite *StoreSuite) TestBillsSeedAfterEmptyWrite() {
	suite.Require().Nil(suite.db.Save(&models.Collection{Key: models.CollectionBills, Value: "[]"}).Error)

	seeded, err := suite.store.Bills().Seed(suite.ctx, store.DemoBills(types.DateOf(now)))
	suite.Require().Nil(err)
	suite.False(seeded)
}

func (suite *StoreSuite) TestBillsMalformed() {
	suite.corrupt(models.CollectionBills)

	_, err := suite.store.Bills().List(suite.ctx)
	suite.ErrorIs(err, store.ErrMalformedCollection)

	_, err = suite.store.Bills().UpdateStatus(suite.ctx, uuid.New(), models.BillStatusPaid)
	suite.ErrorIs(err, store.ErrMalformedCollection)

	_, err = suite.store.Bills().Add(suite.ctx, models.Bill{Name: "x", Amount: decimal.NewFromInt(1), DueDate: types.DateOf(now), Status: models.BillStatusPaid})
	suite.ErrorIs(err, store.ErrMalformedCollection, "malformed data must not be overwritten")
}
