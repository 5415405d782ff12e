package composting

import (
	"context"
	"testing"
	"time"

	"ecobytes-backend/domain"
	"ecobytes-backend/entities"
	"ecobytes-backend/pkg/food"
	"ecobytes-backend/pkg/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type compostingFixture struct {
	db      *gorm.DB
	service CompostingService
	donor   *entities.User
	farmer  *entities.User
	farm    *entities.Farm
	slot    *entities.FarmSlot
}

func newCompostingFixture(t *testing.T) *compostingFixture {
	t.Helper()
	dsn := "file:composting_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Farm{},
		&entities.FarmSlot{},
		&entities.FoodItem{},
		&entities.CompostingRequest{},
		&entities.CompostingRequestItem{},
	))

	farm := &entities.Farm{ID: uuid.New(), Name: "Green Valley Compost"}
	require.NoError(t, db.Create(farm).Error)

	donor := &entities.User{ID: uuid.New(), Name: "Rina", Email: "rina@example.com", Role: domain.RoleUser}
	require.NoError(t, db.Create(donor).Error)

	farmer := &entities.User{
		ID: uuid.New(), Name: "Farm Admin", Email: "farm@example.com",
		Role: domain.RoleFarm, FarmID: &farm.ID,
	}
	require.NoError(t, db.Create(farmer).Error)

	slot := &entities.FarmSlot{
		ID:          uuid.New(),
		FarmID:      farm.ID,
		Date:        time.Now().AddDate(0, 0, 2),
		Time:        "14:00",
		Type:        domain.RequestTypeDelivery,
		IsAvailable: true,
	}
	require.NoError(t, db.Create(slot).Error)

	service := NewCompostingService(
		NewCompostingRepository(db),
		food.NewFoodRepository(db),
		user.NewUserRepository(db),
	)

	return &compostingFixture{db: db, service: service, donor: donor, farmer: farmer, farm: farm, slot: slot}
}

func (f *compostingFixture) seedFoodItem(t *testing.T, name string) *entities.FoodItem {
	t.Helper()
	item := &entities.FoodItem{
		ID:                  uuid.New(),
		UserID:              f.donor.ID,
		Name:                name,
		Category:            "vegetable",
		Quantity:            3,
		Unit:                "kg",
		DeclaredExpiryDate:  time.Now().AddDate(0, 0, -1),
		PredictedExpiryDate: time.Now().AddDate(0, 0, -1),
	}
	require.NoError(t, f.db.Create(item).Error)
	return item
}

func TestCreateCompostingAggregatesQuantity(t *testing.T) {
	f := newCompostingFixture(t)
	scraps := f.seedFoodItem(t, "vegetable scraps")
	peels := f.seedFoodItem(t, "fruit peels")

	res, err := f.service.CreateComposting(context.Background(), domain.CreateCompostingRequest{
		FarmID: f.farm.ID.String(),
		Items: []domain.RequestLineItem{
			{FoodItemID: scraps.ID.String(), FoodName: scraps.Name, Quantity: "2.5", Unit: "kg"},
			{FoodItemID: peels.ID.String(), FoodName: peels.Name, Quantity: "1", Unit: "kg"},
		},
		Type:   domain.RequestTypeDelivery,
		SlotID: f.slot.ID.String(),
	}, f.donor.ID.String())
	require.NoError(t, err)

	assert.Equal(t, domain.RequestStatusPending, res.Status)
	assert.Equal(t, 3.5, res.Quantity)
	require.Len(t, res.Items, 2)

	// The composting date is the day the request was made.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	assert.Equal(t, today.Unix(), res.CompostingDate.Unix())
}

func TestCreateCompostingRejectsNonNumericQuantity(t *testing.T) {
	f := newCompostingFixture(t)
	item := f.seedFoodItem(t, "coffee grounds")

	_, err := f.service.CreateComposting(context.Background(), domain.CreateCompostingRequest{
		FarmID: f.farm.ID.String(),
		Items: []domain.RequestLineItem{
			{FoodItemID: item.ID.String(), FoodName: item.Name, Quantity: "some", Unit: "kg"},
		},
		Type:   domain.RequestTypeDelivery,
		SlotID: f.slot.ID.String(),
	}, f.donor.ID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidItemQuantity)

	var count int64
	require.NoError(t, f.db.Model(&entities.CompostingRequest{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateCompostingUnknownFarm(t *testing.T) {
	f := newCompostingFixture(t)
	item := f.seedFoodItem(t, "rice husks")

	_, err := f.service.CreateComposting(context.Background(), domain.CreateCompostingRequest{
		FarmID: uuid.NewString(),
		Items: []domain.RequestLineItem{
			{FoodItemID: item.ID.String(), FoodName: item.Name, Quantity: "1", Unit: "kg"},
		},
		Type:   domain.RequestTypeDelivery,
		SlotID: f.slot.ID.String(),
	}, f.donor.ID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidFarm)
}

func TestCompostingDecisionWorkflow(t *testing.T) {
	f := newCompostingFixture(t)
	ctx := context.Background()
	item := f.seedFoodItem(t, "spoiled greens")

	res, err := f.service.CreateComposting(ctx, domain.CreateCompostingRequest{
		FarmID: f.farm.ID.String(),
		Items: []domain.RequestLineItem{
			{FoodItemID: item.ID.String(), FoodName: item.Name, Quantity: "3", Unit: "kg"},
		},
		Type:   domain.RequestTypeDelivery,
		SlotID: f.slot.ID.String(),
	}, f.donor.ID.String())
	require.NoError(t, err)

	// Only the farm principal decides.
	err = f.service.RejectComposting(ctx, res.ID, f.donor.ID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRequestAccess)

	require.NoError(t, f.service.RejectComposting(ctx, res.ID, f.farmer.ID.String()))

	var stored entities.CompostingRequest
	require.NoError(t, f.db.Where("id = ?", res.ID).First(&stored).Error)
	assert.Equal(t, domain.RequestStatusRejected, stored.Status)

	// Rejected is terminal, both for a retry and for a cancel.
	err = f.service.AcceptComposting(ctx, res.ID, f.farmer.ID.String())
	assert.ErrorIs(t, err, domain.ErrRequestNotPending)
	err = f.service.CancelComposting(ctx, res.ID, f.donor.ID.String())
	assert.ErrorIs(t, err, domain.ErrRequestNotPending)
}

func TestCancelComposting(t *testing.T) {
	f := newCompostingFixture(t)
	ctx := context.Background()
	item := f.seedFoodItem(t, "stale bread")

	res, err := f.service.CreateComposting(ctx, domain.CreateCompostingRequest{
		FarmID: f.farm.ID.String(),
		Items: []domain.RequestLineItem{
			{FoodItemID: item.ID.String(), FoodName: item.Name, Quantity: "1", Unit: "kg"},
		},
		Type:   domain.RequestTypeDelivery,
		SlotID: f.slot.ID.String(),
	}, f.donor.ID.String())
	require.NoError(t, err)

	require.NoError(t, f.service.CancelComposting(ctx, res.ID, f.donor.ID.String()))

	var stored entities.CompostingRequest
	require.NoError(t, f.db.Where("id = ?", res.ID).First(&stored).Error)
	assert.Equal(t, domain.RequestStatusCancelled, stored.Status)
}

func TestGetIncomingCompostingRequests(t *testing.T) {
	f := newCompostingFixture(t)
	ctx := context.Background()
	item := f.seedFoodItem(t, "grass clippings")

	res, err := f.service.CreateComposting(ctx, domain.CreateCompostingRequest{
		FarmID: f.farm.ID.String(),
		Items: []domain.RequestLineItem{
			{FoodItemID: item.ID.String(), FoodName: item.Name, Quantity: "2", Unit: "kg"},
		},
		Type:   domain.RequestTypeDelivery,
		SlotID: f.slot.ID.String(),
	}, f.donor.ID.String())
	require.NoError(t, err)

	requests, err := f.service.GetIncomingRequests(ctx, f.farmer.ID.String(), "")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, res.ID, requests[0].ID)

	_, err = f.service.GetIncomingRequests(ctx, f.donor.ID.String(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRequestAccess)
}
