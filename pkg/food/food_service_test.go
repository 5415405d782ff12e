package food

import (
	"context"
	"testing"
	"time"

	"ecobytes-backend/domain"
	"ecobytes-backend/entities"
	"ecobytes-backend/pkg/expiry"
	"ecobytes-backend/pkg/tracking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:food_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.FoodItem{},
		&entities.DonationRequest{},
		&entities.DonationRequestItem{},
		&entities.CompostingRequest{},
		&entities.CompostingRequestItem{},
	))
	return db
}

func newTestService(t *testing.T) (FoodService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	trackingService := tracking.NewTrackingService(tracking.NewTrackingRepository(db))
	return NewFoodService(NewFoodRepository(db), trackingService, nil), db
}

func seedUser(t *testing.T, db *gorm.DB) *entities.User {
	t.Helper()
	user := &entities.User{
		ID:    uuid.New(),
		Name:  "Siti",
		Email: "siti@example.com",
		Role:  domain.RoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedFoodItem(t *testing.T, db *gorm.DB, userID uuid.UUID, name string, predicted time.Time) *entities.FoodItem {
	t.Helper()
	item := &entities.FoodItem{
		ID:                  uuid.New(),
		UserID:              userID,
		Name:                name,
		Category:            "vegetable",
		Quantity:            1,
		Unit:                "kg",
		DeclaredExpiryDate:  predicted,
		PredictedExpiryDate: predicted,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func floatPtr(v float64) *float64 { return &v }

func TestAddFoodItemComputesPrediction(t *testing.T) {
	service, db := newTestService(t)
	user := seedUser(t, db)

	declared := time.Now().AddDate(0, 0, 20)
	req := domain.AddFoodItemRequest{
		Name:       "Spinach",
		Category:   "vegetable",
		Quantity:   2,
		Unit:       "kg",
		ExpiryDate: declared.Format("2006-01-02"),
		SensorData: &domain.SensorDataRequest{
			Temperature: floatPtr(30),
			Humidity:    floatPtr(90),
			PH:          floatPtr(9),
		},
	}

	res, err := service.AddFoodItem(context.Background(), req, user.ID.String())
	require.NoError(t, err)

	// 30C, 90% humidity and pH 9 together shorten the shelf life by 12 days.
	wantDeclared, _ := time.Parse("2006-01-02", req.ExpiryDate)
	assert.Equal(t, wantDeclared, res.DeclaredExpiryDate)
	assert.Equal(t, wantDeclared.AddDate(0, 0, -12), res.PredictedExpiryDate)

	var stored entities.FoodItem
	require.NoError(t, db.Where("id = ?", res.ID).First(&stored).Error)
	assert.Equal(t, wantDeclared.AddDate(0, 0, -12).Unix(), stored.PredictedExpiryDate.Unix())
}

func TestAddFoodItemWithoutSensorsKeepsDeclaredDate(t *testing.T) {
	service, db := newTestService(t)
	user := seedUser(t, db)

	declared := time.Now().AddDate(0, 0, 10)
	req := domain.AddFoodItemRequest{
		Name:       "Rice",
		Category:   "grain",
		Quantity:   5,
		Unit:       "kg",
		ExpiryDate: declared.Format("2006-01-02"),
	}

	res, err := service.AddFoodItem(context.Background(), req, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, res.DeclaredExpiryDate, res.PredictedExpiryDate)
}

func TestAddFoodItemRejectsInvalidInput(t *testing.T) {
	service, db := newTestService(t)
	user := seedUser(t, db)

	_, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name: "Milk", Category: "dairy", Quantity: 1, Unit: "l", ExpiryDate: "20-01-2026",
	}, user.ID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)

	_, err = service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name: "Milk", Category: "dairy", Quantity: 0, Unit: "l",
		ExpiryDate: time.Now().AddDate(0, 0, 5).Format("2006-01-02"),
	}, user.ID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestGetFoodItemsFiltersByDerivedStatus(t *testing.T) {
	service, db := newTestService(t)
	user := seedUser(t, db)

	now := time.Now()
	seedFoodItem(t, db, user.ID, "old bread", now.AddDate(0, 0, -2))
	seedFoodItem(t, db, user.ID, "yoghurt", now.AddDate(0, 0, 2))
	seedFoodItem(t, db, user.ID, "potatoes", now.AddDate(0, 0, 10))

	items, count, err := service.GetFoodItems(context.Background(), user.ID.String(), "all", ViewAll, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	require.Len(t, items, 3)
	// Ordered by predicted expiry, soonest first.
	assert.Equal(t, "old bread", items[0].Name)
	assert.Equal(t, expiry.StatusExpired, items[0].Status)

	items, count, err = service.GetFoodItems(context.Background(), user.ID.String(), expiry.StatusNearExpiry, ViewAll, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, items, 1)
	assert.Equal(t, "yoghurt", items[0].Name)

	items, _, err = service.GetFoodItems(context.Background(), user.ID.String(), expiry.StatusFresh, ViewAll, 1, 20)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "potatoes", items[0].Name)
}

func TestGetFoodItemsViewFiltersOnClaims(t *testing.T) {
	service, db := newTestService(t)
	user := seedUser(t, db)

	now := time.Now()
	claimed := seedFoodItem(t, db, user.ID, "carrots", now.AddDate(0, 0, 5))
	seedFoodItem(t, db, user.ID, "onions", now.AddDate(0, 0, 6))

	request := &entities.DonationRequest{
		ID:             uuid.New(),
		UserID:         user.ID,
		OrganizationID: uuid.New(),
		SlotID:         uuid.New(),
		Type:           domain.RequestTypePickup,
		Status:         domain.RequestStatusPending,
	}
	require.NoError(t, db.Create(request).Error)
	require.NoError(t, db.Create(&entities.DonationRequestItem{
		ID:                uuid.New(),
		DonationRequestID: request.ID,
		FoodItemID:        claimed.ID,
		FoodName:          claimed.Name,
		Quantity:          1,
		Unit:              "kg",
	}).Error)

	items, count, err := service.GetFoodItems(context.Background(), user.ID.String(), "all", ViewPending, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, items, 1)
	assert.Equal(t, "carrots", items[0].Name)
	require.NotNil(t, items[0].Claim)
	assert.Equal(t, domain.RequestStatusPending, items[0].Claim.Status)
	assert.Equal(t, tracking.KindDonation, items[0].Claim.RequestKind)

	items, _, err = service.GetFoodItems(context.Background(), user.ID.String(), "all", ViewAccepted, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateFoodItemRecomputesPrediction(t *testing.T) {
	service, db := newTestService(t)
	user := seedUser(t, db)

	declared := time.Now().AddDate(0, 0, 15)
	item := seedFoodItem(t, db, user.ID, "tomatoes", declared)

	err := service.UpdateFoodItem(context.Background(), item.ID.String(), domain.UpdateFoodItemRequest{
		SensorData: &domain.SensorDataRequest{Temperature: floatPtr(28)},
	}, user.ID.String())
	require.NoError(t, err)

	var stored entities.FoodItem
	require.NoError(t, db.Where("id = ?", item.ID).First(&stored).Error)
	assert.Equal(t, stored.DeclaredExpiryDate.AddDate(0, 0, -5).Unix(), stored.PredictedExpiryDate.Unix())
}

func TestUpdateFoodItemOwnedByAnotherUser(t *testing.T) {
	service, db := newTestService(t)
	owner := seedUser(t, db)
	item := seedFoodItem(t, db, owner.ID, "apples", time.Now().AddDate(0, 0, 5))

	err := service.UpdateFoodItem(context.Background(), item.ID.String(), domain.UpdateFoodItemRequest{
		Name: "stolen apples",
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
}

func TestGetDashboardStats(t *testing.T) {
	service, db := newTestService(t)
	user := seedUser(t, db)

	now := time.Now()
	seedFoodItem(t, db, user.ID, "expired", now.AddDate(0, 0, -1))
	claimed := seedFoodItem(t, db, user.ID, "near", now.AddDate(0, 0, 1))
	seedFoodItem(t, db, user.ID, "fresh", now.AddDate(0, 0, 9))

	request := &entities.CompostingRequest{
		ID:     uuid.New(),
		UserID: user.ID,
		FarmID: uuid.New(),
		SlotID: uuid.New(),
		Type:   domain.RequestTypeDelivery,
		Status: domain.RequestStatusAccepted,
	}
	require.NoError(t, db.Create(request).Error)
	require.NoError(t, db.Create(&entities.CompostingRequestItem{
		ID:                  uuid.New(),
		CompostingRequestID: request.ID,
		FoodItemID:          claimed.ID,
		FoodName:            claimed.Name,
		Quantity:            1,
		Unit:                "kg",
	}).Error)

	stats, err := service.GetDashboardStats(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 1, stats.FreshItems)
	assert.Equal(t, 1, stats.NearExpiryItems)
	assert.Equal(t, 1, stats.ExpiredItems)
	assert.Equal(t, 0, stats.PendingItems)
	assert.Equal(t, 1, stats.AcceptedItems)
}
