package services

import (
	"testing"
	"time"

	"gamestore_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entitlementFixture struct {
	users     *fakeUserRepo
	games     *fakeGameRepo
	purchases *fakePurchaseRepo
	subs      *fakeSubscriptionRepo
	service   EntitlementService
}

func newEntitlementFixture(t *testing.T) *entitlementFixture {
	t.Helper()
	users := newFakeUserRepo()
	games := newFakeGameRepo()
	purchases := newFakePurchaseRepo(games)
	subs := newFakeSubscriptionRepo()
	return &entitlementFixture{
		users:     users,
		games:     games,
		purchases: purchases,
		subs:      subs,
		service:   NewEntitlementService(users, games, purchases, subs),
	}
}

func (f *entitlementFixture) addUser(t *testing.T, id string) *models.User {
	t.Helper()
	user := &models.User{Name: "Player", Email: id + "@example.com", Age: 20, CountryID: "country-1"}
	user.ID = id
	require.NoError(t, f.users.Create(nil, user))
	return user
}

func (f *entitlementFixture) addGame(t *testing.T, id, name string, free bool) *models.Game {
	t.Helper()
	price := 59.99
	game := &models.Game{Name: name, Publisher: "Pub", FreeToPlay: free}
	if !free {
		game.BasePrice = &price
	}
	game.ID = id
	require.NoError(t, f.games.Create(nil, game))
	return game
}

func (f *entitlementFixture) addActiveSubscription(t *testing.T, userID, planType string, games ...*models.Game) *models.UserSubscriptionPlan {
	t.Helper()
	plan := &models.SubscriptionPlan{Type: planType}
	require.NoError(t, f.subs.CreatePlan(nil, plan))
	for _, g := range games {
		require.NoError(t, f.subs.AddGameToPlan(nil, plan, g))
	}
	sub := &models.UserSubscriptionPlan{
		UserID:    userID,
		PlanID:    plan.ID,
		TierKind:  models.TierKindCountry,
		StartDate: time.Now().Add(-time.Hour),
		EndDate:   time.Now().Add(30 * 24 * time.Hour),
	}
	require.NoError(t, f.subs.CreateUserSubscription(nil, sub))
	return sub
}

func TestCanUserAccessGame_FreeToPlay(t *testing.T) {
	f := newEntitlementFixture(t)
	f.addUser(t, "u1")
	f.addGame(t, "g1", "Freebie", true)

	result, err := f.service.CanUserAccessGame(nil, "u1", "g1")
	require.NoError(t, err)
	assert.True(t, result.Granted)
	assert.Equal(t, models.AccessFree, result.AccessType)
}

func TestCanUserAccessGame_Purchased(t *testing.T) {
	f := newEntitlementFixture(t)
	f.addUser(t, "u1")
	f.addGame(t, "g1", "Paid Game", false)

	purchasedAt := time.Now().Add(-24 * time.Hour)
	require.NoError(t, f.purchases.Create(nil, &models.UserPurchaseGame{
		UserID: "u1", GameID: "g1", PricePaid: 59.99, PurchaseDate: purchasedAt,
	}))

	result, err := f.service.CanUserAccessGame(nil, "u1", "g1")
	require.NoError(t, err)
	assert.True(t, result.Granted)
	assert.Equal(t, models.AccessPurchased, result.AccessType)
	require.NotNil(t, result.PurchaseDate)
	assert.WithinDuration(t, purchasedAt, *result.PurchaseDate, time.Second)
}

func TestCanUserAccessGame_Subscription(t *testing.T) {
	f := newEntitlementFixture(t)
	f.addUser(t, "u1")
	game := f.addGame(t, "g1", "Bundled Game", false)
	f.addActiveSubscription(t, "u1", "premium", game)

	result, err := f.service.CanUserAccessGame(nil, "u1", "g1")
	require.NoError(t, err)
	assert.True(t, result.Granted)
	assert.Equal(t, models.AccessSubscription, result.AccessType)
	assert.Equal(t, "premium", result.SubscriptionName)
	assert.NotNil(t, result.ExpiresAt)
}

func TestCanUserAccessGame_ExpiredSubscriptionDenied(t *testing.T) {
	f := newEntitlementFixture(t)
	f.addUser(t, "u1")
	game := f.addGame(t, "g1", "Bundled Game", false)

	plan := &models.SubscriptionPlan{Type: "premium"}
	require.NoError(t, f.subs.CreatePlan(nil, plan))
	require.NoError(t, f.subs.AddGameToPlan(nil, plan, game))
	sub := &models.UserSubscriptionPlan{
		UserID:    "u1",
		PlanID:    plan.ID,
		StartDate: time.Now().Add(-60 * 24 * time.Hour),
		EndDate:   time.Now().Add(-30 * 24 * time.Hour),
	}
	require.NoError(t, f.subs.CreateUserSubscription(nil, sub))

	result, err := f.service.CanUserAccessGame(nil, "u1", "g1")
	require.NoError(t, err)
	assert.False(t, result.Granted)
	assert.Equal(t, models.AccessNone, result.AccessType)
}

func TestCanUserAccessGame_PurchaseBeatsSubscription(t *testing.T) {
	f := newEntitlementFixture(t)
	f.addUser(t, "u1")
	game := f.addGame(t, "g1", "Both Paths", false)
	f.addActiveSubscription(t, "u1", "premium", game)
	require.NoError(t, f.purchases.Create(nil, &models.UserPurchaseGame{
		UserID: "u1", GameID: "g1", PricePaid: 59.99, PurchaseDate: time.Now(),
	}))

	result, err := f.service.CanUserAccessGame(nil, "u1", "g1")
	require.NoError(t, err)
	assert.Equal(t, models.AccessPurchased, result.AccessType)
}

func TestCanUserAccessGame_NoAccess(t *testing.T) {
	f := newEntitlementFixture(t)
	f.addUser(t, "u1")
	f.addGame(t, "g1", "Locked Game", false)

	result, err := f.service.CanUserAccessGame(nil, "u1", "g1")
	require.NoError(t, err)
	assert.False(t, result.Granted)
	assert.Equal(t, models.AccessNone, result.AccessType)
}

func TestCanUserAccessGame_UnknownGame(t *testing.T) {
	f := newEntitlementFixture(t)
	f.addUser(t, "u1")

	_, err := f.service.CanUserAccessGame(nil, "u1", "missing")
	assert.Error(t, err)
}

func TestGetUserLibrary_DeduplicatesByPriority(t *testing.T) {
	f := newEntitlementFixture(t)
	f.addUser(t, "u1")
	free := f.addGame(t, "g-free", "Freebie", true)
	paid := f.addGame(t, "g-paid", "Paid Game", false)
	bundled := f.addGame(t, "g-bundled", "Bundled Game", false)

	// The paid game is also bundled: PURCHASED must win.
	require.NoError(t, f.purchases.Create(nil, &models.UserPurchaseGame{
		UserID: "u1", GameID: paid.ID, PricePaid: 59.99, PurchaseDate: time.Now(),
	}))
	f.addActiveSubscription(t, "u1", "premium", paid, bundled)
	_ = free

	library, err := f.service.GetUserLibrary(nil, "u1")
	require.NoError(t, err)

	assert.Equal(t, 3, library.Total)
	assert.Equal(t, 1, library.Counts.Free)
	assert.Equal(t, 1, library.Counts.Purchased)
	assert.Equal(t, 1, library.Counts.Subscription)

	byID := make(map[string]models.AccessType)
	for _, entry := range library.Entries {
		byID[entry.Game.ID] = entry.Access.AccessType
	}
	assert.Equal(t, models.AccessFree, byID["g-free"])
	assert.Equal(t, models.AccessPurchased, byID["g-paid"])
	assert.Equal(t, models.AccessSubscription, byID["g-bundled"])
}

func TestHasAnyEntitlements(t *testing.T) {
	f := newEntitlementFixture(t)
	f.addUser(t, "u1")

	has, err := f.service.HasAnyEntitlements(nil, "u1")
	require.NoError(t, err)
	assert.False(t, has)

	f.addGame(t, "g1", "Paid Game", false)
	require.NoError(t, f.purchases.Create(nil, &models.UserPurchaseGame{
		UserID: "u1", GameID: "g1", PricePaid: 10, PurchaseDate: time.Now(),
	}))

	has, err = f.service.HasAnyEntitlements(nil, "u1")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestGetPurchaseHistory(t *testing.T) {
	f := newEntitlementFixture(t)
	f.addUser(t, "u1")
	f.addGame(t, "g1", "First Buy", false)
	f.addGame(t, "g2", "Second Buy", false)
	require.NoError(t, f.purchases.Create(nil, &models.UserPurchaseGame{
		UserID: "u1", GameID: "g1", PricePaid: 10, PurchaseDate: time.Now().Add(-time.Hour),
	}))
	require.NoError(t, f.purchases.Create(nil, &models.UserPurchaseGame{
		UserID: "u1", GameID: "g2", PricePaid: 20, PurchaseDate: time.Now(),
	}))

	purchases, total, err := f.service.GetPurchaseHistory(nil, "u1", 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, purchases, 2)

	_, _, err = f.service.GetPurchaseHistory(nil, "u-missing", 1, 20)
	require.Error(t, err)
}
