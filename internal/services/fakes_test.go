package services

import (
	"fmt"
	"sort"
	"time"

	"gamestore_backend/internal/email"
	"gamestore_backend/internal/models"
	"gamestore_backend/internal/repositories"

	"gorm.io/gorm"
)

// In-memory repository fakes. The db argument is ignored everywhere, so
// service logic can be exercised without a database.

func nextID(prefix string, n int) string {
	return fmt.Sprintf("%s-%d", prefix, n)
}

type fakeUserRepo struct {
	users map[string]*models.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email && !u.IsDeleted {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.seq++
	if user.ID == "" {
		user.ID = nextID("user", r.seq)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok || u.IsDeleted {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByIDAny(_ *gorm.DB, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email && !u.IsDeleted {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) SoftDelete(_ *gorm.DB, id string) error {
	u, ok := r.users[id]
	if !ok || u.IsDeleted {
		return repositories.ErrUserNotFound
	}
	u.MarkDeleted(time.Now())
	return nil
}

func (r *fakeUserRepo) Restore(_ *gorm.DB, id string) error {
	u, ok := r.users[id]
	if !ok || !u.IsDeleted {
		return repositories.ErrUserNotFound
	}
	u.Restore()
	return nil
}

func (r *fakeUserRepo) FindWithFilter(_ *gorm.DB, _ repositories.UserFilter) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range r.users {
		if !u.IsDeleted {
			out = append(out, *u)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) CountAll(_ *gorm.DB) (int64, error) {
	var n int64
	for _, u := range r.users {
		if !u.IsDeleted {
			n++
		}
	}
	return n, nil
}

type fakeAdminRepo struct {
	admins map[string]*models.Admin
	seq    int
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*models.Admin)}
}

func (r *fakeAdminRepo) Create(_ *gorm.DB, admin *models.Admin) error {
	r.seq++
	if admin.ID == "" {
		admin.ID = nextID("admin", r.seq)
	}
	r.admins[admin.ID] = admin
	return nil
}

func (r *fakeAdminRepo) FindByID(_ *gorm.DB, id string) (*models.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, repositories.ErrAdminNotFound
	}
	return a, nil
}

func (r *fakeAdminRepo) FindByEmail(_ *gorm.DB, email string) (*models.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, repositories.ErrAdminNotFound
}

type fakeGeoRepo struct {
	regions   map[string]*models.Region
	countries map[string]*models.Country
	seq       int
}

func newFakeGeoRepo() *fakeGeoRepo {
	return &fakeGeoRepo{
		regions:   make(map[string]*models.Region),
		countries: make(map[string]*models.Country),
	}
}

func (r *fakeGeoRepo) CreateRegion(_ *gorm.DB, region *models.Region) error {
	r.seq++
	if region.ID == "" {
		region.ID = nextID("region", r.seq)
	}
	r.regions[region.ID] = region
	return nil
}

func (r *fakeGeoRepo) CreateCountry(_ *gorm.DB, country *models.Country) error {
	r.seq++
	if country.ID == "" {
		country.ID = nextID("country", r.seq)
	}
	r.countries[country.ID] = country
	return nil
}

func (r *fakeGeoRepo) FindAllRegions(_ *gorm.DB) ([]models.Region, error) {
	var out []models.Region
	for _, reg := range r.regions {
		out = append(out, *reg)
	}
	return out, nil
}

func (r *fakeGeoRepo) FindAllCountries(_ *gorm.DB) ([]models.Country, error) {
	var out []models.Country
	for _, c := range r.countries {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeGeoRepo) FindRegionByID(_ *gorm.DB, id string) (*models.Region, error) {
	reg, ok := r.regions[id]
	if !ok {
		return nil, repositories.ErrRegionNotFound
	}
	return reg, nil
}

func (r *fakeGeoRepo) FindCountryByID(_ *gorm.DB, id string) (*models.Country, error) {
	c, ok := r.countries[id]
	if !ok {
		return nil, repositories.ErrCountryNotFound
	}
	return c, nil
}

func (r *fakeGeoRepo) FindCountryByCode(_ *gorm.DB, code string) (*models.Country, error) {
	for _, c := range r.countries {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, repositories.ErrCountryNotFound
}

type fakeCategoryRepo struct {
	categories map[string]*models.Category
	seq        int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*models.Category)}
}

func (r *fakeCategoryRepo) Create(_ *gorm.DB, category *models.Category) error {
	for _, c := range r.categories {
		if c.Name == category.Name && !c.IsDeleted {
			return repositories.ErrCategoryAlreadyExists
		}
	}
	r.seq++
	if category.ID == "" {
		category.ID = nextID("category", r.seq)
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ *gorm.DB, id string) (*models.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.IsDeleted {
		return nil, repositories.ErrCategoryNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepo) FindByIDs(_ *gorm.DB, ids []string) ([]models.Category, error) {
	var out []models.Category
	for _, id := range ids {
		if c, ok := r.categories[id]; ok && !c.IsDeleted {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindAll(_ *gorm.DB) ([]models.Category, error) {
	var out []models.Category
	for _, c := range r.categories {
		if !c.IsDeleted {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ *gorm.DB, category *models.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return repositories.ErrCategoryNotFound
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) SoftDelete(_ *gorm.DB, id string) error {
	c, ok := r.categories[id]
	if !ok || c.IsDeleted {
		return repositories.ErrCategoryNotFound
	}
	c.MarkDeleted(time.Now())
	return nil
}

func (r *fakeCategoryRepo) Restore(_ *gorm.DB, id string) error {
	c, ok := r.categories[id]
	if !ok || !c.IsDeleted {
		return repositories.ErrCategoryNotFound
	}
	c.Restore()
	return nil
}

type fakeGameRepo struct {
	games         map[string]*models.Game
	countryPrices map[string]*models.GameCountry // key gameID+"/"+countryID
	seq           int
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{
		games:         make(map[string]*models.Game),
		countryPrices: make(map[string]*models.GameCountry),
	}
}

func (r *fakeGameRepo) Create(_ *gorm.DB, game *models.Game) error {
	r.seq++
	if game.ID == "" {
		game.ID = nextID("game", r.seq)
	}
	r.games[game.ID] = game
	return nil
}

func (r *fakeGameRepo) FindByID(_ *gorm.DB, id string) (*models.Game, error) {
	g, ok := r.games[id]
	if !ok || g.IsDeleted {
		return nil, repositories.ErrGameNotFound
	}
	return g, nil
}

func (r *fakeGameRepo) FindByIDAny(_ *gorm.DB, id string) (*models.Game, error) {
	g, ok := r.games[id]
	if !ok {
		return nil, repositories.ErrGameNotFound
	}
	return g, nil
}

func (r *fakeGameRepo) Update(_ *gorm.DB, game *models.Game) error {
	if _, ok := r.games[game.ID]; !ok {
		return repositories.ErrGameNotFound
	}
	r.games[game.ID] = game
	return nil
}

func (r *fakeGameRepo) SoftDelete(_ *gorm.DB, id string) error {
	g, ok := r.games[id]
	if !ok || g.IsDeleted {
		return repositories.ErrGameNotFound
	}
	g.MarkDeleted(time.Now())
	return nil
}

func (r *fakeGameRepo) Restore(_ *gorm.DB, id string) error {
	g, ok := r.games[id]
	if !ok || !g.IsDeleted {
		return repositories.ErrGameNotFound
	}
	g.Restore()
	return nil
}

func (r *fakeGameRepo) FindWithFilter(_ *gorm.DB, _ repositories.GameFilter) ([]models.Game, int64, error) {
	var out []models.Game
	for _, g := range r.games {
		if !g.IsDeleted {
			out = append(out, *g)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeGameRepo) FindFreeGames(_ *gorm.DB) ([]models.Game, error) {
	var out []models.Game
	for _, g := range r.games {
		if g.FreeToPlay && !g.IsDeleted {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *fakeGameRepo) FindByIDs(_ *gorm.DB, ids []string) ([]models.Game, error) {
	var out []models.Game
	for _, id := range ids {
		if g, ok := r.games[id]; ok && !g.IsDeleted {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *fakeGameRepo) CountAll(_ *gorm.DB) (int64, error) {
	var n int64
	for _, g := range r.games {
		if !g.IsDeleted {
			n++
		}
	}
	return n, nil
}

func (r *fakeGameRepo) ReplaceCategories(_ *gorm.DB, game *models.Game, categories []models.Category) error {
	game.Categories = categories
	return nil
}

func (r *fakeGameRepo) FindCountryPrice(_ *gorm.DB, gameID, countryID string) (*models.GameCountry, error) {
	p, ok := r.countryPrices[gameID+"/"+countryID]
	if !ok {
		return nil, repositories.ErrGamePriceNotFound
	}
	return p, nil
}

func (r *fakeGameRepo) UpsertCountryPrice(_ *gorm.DB, price *models.GameCountry) error {
	r.countryPrices[price.GameID+"/"+price.CountryID] = price
	return nil
}

func (r *fakeGameRepo) DeleteCountryPrice(_ *gorm.DB, gameID, countryID string) error {
	key := gameID + "/" + countryID
	if _, ok := r.countryPrices[key]; !ok {
		return repositories.ErrGamePriceNotFound
	}
	delete(r.countryPrices, key)
	return nil
}

type fakeSubscriptionRepo struct {
	plans       map[string]*models.SubscriptionPlan
	bundles     map[string]map[string]*models.Game // planID -> gameID -> game
	countryTier map[string]*models.SubscriptionPlanCountry
	regionTier  map[string]*models.SubscriptionPlanRegion
	subs        map[string]*models.UserSubscriptionPlan
	seq         int
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{
		plans:       make(map[string]*models.SubscriptionPlan),
		bundles:     make(map[string]map[string]*models.Game),
		countryTier: make(map[string]*models.SubscriptionPlanCountry),
		regionTier:  make(map[string]*models.SubscriptionPlanRegion),
		subs:        make(map[string]*models.UserSubscriptionPlan),
	}
}

func (r *fakeSubscriptionRepo) CreatePlan(_ *gorm.DB, plan *models.SubscriptionPlan) error {
	r.seq++
	if plan.ID == "" {
		plan.ID = nextID("plan", r.seq)
	}
	r.plans[plan.ID] = plan
	return nil
}

func (r *fakeSubscriptionRepo) FindPlanByID(_ *gorm.DB, id string) (*models.SubscriptionPlan, error) {
	p, ok := r.plans[id]
	if !ok || p.IsDeleted {
		return nil, repositories.ErrPlanNotFound
	}
	return p, nil
}

func (r *fakeSubscriptionRepo) FindAllPlans(_ *gorm.DB) ([]models.SubscriptionPlan, error) {
	var out []models.SubscriptionPlan
	for _, p := range r.plans {
		if !p.IsDeleted {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) UpdatePlan(_ *gorm.DB, plan *models.SubscriptionPlan) error {
	if _, ok := r.plans[plan.ID]; !ok {
		return repositories.ErrPlanNotFound
	}
	r.plans[plan.ID] = plan
	return nil
}

func (r *fakeSubscriptionRepo) SoftDeletePlan(_ *gorm.DB, id string) error {
	p, ok := r.plans[id]
	if !ok || p.IsDeleted {
		return repositories.ErrPlanNotFound
	}
	p.MarkDeleted(time.Now())
	return nil
}

func (r *fakeSubscriptionRepo) AddGameToPlan(_ *gorm.DB, plan *models.SubscriptionPlan, game *models.Game) error {
	if r.bundles[plan.ID] == nil {
		r.bundles[plan.ID] = make(map[string]*models.Game)
	}
	r.bundles[plan.ID][game.ID] = game
	return nil
}

func (r *fakeSubscriptionRepo) RemoveGameFromPlan(_ *gorm.DB, plan *models.SubscriptionPlan, game *models.Game) error {
	delete(r.bundles[plan.ID], game.ID)
	return nil
}

func (r *fakeSubscriptionRepo) PlanBundlesGame(_ *gorm.DB, planID, gameID string) (bool, error) {
	_, ok := r.bundles[planID][gameID]
	return ok, nil
}

func (r *fakeSubscriptionRepo) FindGamesInPlan(_ *gorm.DB, planID string) ([]models.Game, error) {
	var out []models.Game
	for _, g := range r.bundles[planID] {
		if !g.IsDeleted {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) CreateCountryTier(_ *gorm.DB, tier *models.SubscriptionPlanCountry) error {
	for _, t := range r.countryTier {
		if t.PlanID == tier.PlanID && t.CountryID == tier.CountryID && t.DurationMonths == tier.DurationMonths {
			return repositories.ErrTierAlreadyExists
		}
	}
	r.seq++
	if tier.ID == "" {
		tier.ID = nextID("ctier", r.seq)
	}
	r.countryTier[tier.ID] = tier
	return nil
}

func (r *fakeSubscriptionRepo) CreateRegionTier(_ *gorm.DB, tier *models.SubscriptionPlanRegion) error {
	for _, t := range r.regionTier {
		if t.PlanID == tier.PlanID && t.RegionID == tier.RegionID && t.DurationMonths == tier.DurationMonths {
			return repositories.ErrTierAlreadyExists
		}
	}
	r.seq++
	if tier.ID == "" {
		tier.ID = nextID("rtier", r.seq)
	}
	r.regionTier[tier.ID] = tier
	return nil
}

func (r *fakeSubscriptionRepo) FindCountryTierByID(_ *gorm.DB, id string) (*models.SubscriptionPlanCountry, error) {
	t, ok := r.countryTier[id]
	if !ok {
		return nil, repositories.ErrTierNotFound
	}
	return t, nil
}

func (r *fakeSubscriptionRepo) FindRegionTierByID(_ *gorm.DB, id string) (*models.SubscriptionPlanRegion, error) {
	t, ok := r.regionTier[id]
	if !ok {
		return nil, repositories.ErrTierNotFound
	}
	return t, nil
}

func (r *fakeSubscriptionRepo) DeleteCountryTier(_ *gorm.DB, id string) error {
	if _, ok := r.countryTier[id]; !ok {
		return repositories.ErrTierNotFound
	}
	delete(r.countryTier, id)
	return nil
}

func (r *fakeSubscriptionRepo) DeleteRegionTier(_ *gorm.DB, id string) error {
	if _, ok := r.regionTier[id]; !ok {
		return repositories.ErrTierNotFound
	}
	delete(r.regionTier, id)
	return nil
}

func (r *fakeSubscriptionRepo) CreateUserSubscription(_ *gorm.DB, sub *models.UserSubscriptionPlan) error {
	r.seq++
	if sub.ID == "" {
		sub.ID = nextID("sub", r.seq)
	}
	if sub.Plan == nil {
		sub.Plan = r.plans[sub.PlanID]
	}
	r.subs[sub.ID] = sub
	return nil
}

func (r *fakeSubscriptionRepo) FindUserSubscriptions(_ *gorm.DB, userID string) ([]models.UserSubscriptionPlan, error) {
	var out []models.UserSubscriptionPlan
	for _, s := range r.subs {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (r *fakeSubscriptionRepo) FindActiveSubscriptions(_ *gorm.DB, userID string, now time.Time) ([]models.UserSubscriptionPlan, error) {
	var out []models.UserSubscriptionPlan
	for _, s := range r.subs {
		if s.UserID == userID && s.IsActiveAt(now) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (r *fakeSubscriptionRepo) FindSubscriptionByID(_ *gorm.DB, id string) (*models.UserSubscriptionPlan, error) {
	s, ok := r.subs[id]
	if !ok {
		return nil, repositories.ErrSubscriptionNotFound
	}
	return s, nil
}

func (r *fakeSubscriptionRepo) EndSubscription(_ *gorm.DB, id string, at time.Time) error {
	s, ok := r.subs[id]
	if !ok {
		return repositories.ErrSubscriptionNotFound
	}
	s.EndDate = at
	s.CancelledAt = &at
	return nil
}

func (r *fakeSubscriptionRepo) CountActiveSubscriptions(_ *gorm.DB, now time.Time) (int64, error) {
	var n int64
	for _, s := range r.subs {
		if s.IsActiveAt(now) {
			n++
		}
	}
	return n, nil
}

type fakePurchaseRepo struct {
	purchases []*models.UserPurchaseGame
	games     *fakeGameRepo
	seq       int
}

func newFakePurchaseRepo(games *fakeGameRepo) *fakePurchaseRepo {
	return &fakePurchaseRepo{games: games}
}

func (r *fakePurchaseRepo) Create(_ *gorm.DB, purchase *models.UserPurchaseGame) error {
	for _, p := range r.purchases {
		if p.UserID == purchase.UserID && p.GameID == purchase.GameID {
			return fmt.Errorf("duplicate key value violates unique constraint %q", "uk_user_game")
		}
	}
	r.seq++
	if purchase.ID == "" {
		purchase.ID = nextID("purchase", r.seq)
	}
	if purchase.Game == nil && r.games != nil {
		purchase.Game = r.games.games[purchase.GameID]
	}
	r.purchases = append(r.purchases, purchase)
	return nil
}

func (r *fakePurchaseRepo) Exists(_ *gorm.DB, userID, gameID string) (bool, error) {
	for _, p := range r.purchases {
		if p.UserID == userID && p.GameID == gameID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePurchaseRepo) FindByUserAndGame(_ *gorm.DB, userID, gameID string) (*models.UserPurchaseGame, error) {
	for _, p := range r.purchases {
		if p.UserID == userID && p.GameID == gameID {
			return p, nil
		}
	}
	return nil, repositories.ErrPurchaseNotFound
}

func (r *fakePurchaseRepo) FindByUser(_ *gorm.DB, userID string, _, _ int) ([]models.UserPurchaseGame, int64, error) {
	var out []models.UserPurchaseGame
	for _, p := range r.purchases {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakePurchaseRepo) CountAll(_ *gorm.DB) (int64, error) {
	return int64(len(r.purchases)), nil
}

func (r *fakePurchaseRepo) SumRevenue(_ *gorm.DB) (float64, error) {
	var total float64
	for _, p := range r.purchases {
		total += p.PricePaid
	}
	return total, nil
}

type fakeCartRepo struct {
	carts map[string]*models.Cart // by userID
	seq   int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*models.Cart)}
}

func (r *fakeCartRepo) FindByUser(_ *gorm.DB, userID string) (*models.Cart, error) {
	c, ok := r.carts[userID]
	if !ok {
		return nil, repositories.ErrCartNotFound
	}
	return c, nil
}

func (r *fakeCartRepo) FindOrCreate(_ *gorm.DB, userID string) (*models.Cart, error) {
	if c, ok := r.carts[userID]; ok {
		return c, nil
	}
	r.seq++
	c := &models.Cart{UserID: userID}
	c.ID = nextID("cart", r.seq)
	r.carts[userID] = c
	return c, nil
}

func (r *fakeCartRepo) UpdateTotal(_ *gorm.DB, cartID string, total float64) error {
	for _, c := range r.carts {
		if c.ID == cartID {
			c.TotalAmount = total
			return nil
		}
	}
	return repositories.ErrCartNotFound
}

func (r *fakeCartRepo) FindItemByID(_ *gorm.DB, cartID, itemID string) (*models.CartItem, error) {
	for _, c := range r.carts {
		if c.ID != cartID {
			continue
		}
		for i := range c.Items {
			if c.Items[i].ID == itemID {
				return &c.Items[i], nil
			}
		}
	}
	return nil, repositories.ErrCartItemNotFound
}

func (r *fakeCartRepo) FindItemByGame(_ *gorm.DB, cartID, gameID string) (*models.CartItem, error) {
	for _, c := range r.carts {
		if c.ID != cartID {
			continue
		}
		for i := range c.Items {
			if c.Items[i].GameID == gameID {
				return &c.Items[i], nil
			}
		}
	}
	return nil, repositories.ErrCartItemNotFound
}

func (r *fakeCartRepo) CreateItem(_ *gorm.DB, item *models.CartItem) error {
	for _, c := range r.carts {
		if c.ID == item.CartID {
			r.seq++
			if item.ID == "" {
				item.ID = nextID("item", r.seq)
			}
			c.Items = append(c.Items, *item)
			return nil
		}
	}
	return repositories.ErrCartNotFound
}

func (r *fakeCartRepo) UpdateItem(_ *gorm.DB, item *models.CartItem) error {
	for _, c := range r.carts {
		if c.ID != item.CartID {
			continue
		}
		for i := range c.Items {
			if c.Items[i].ID == item.ID {
				c.Items[i] = *item
				return nil
			}
		}
	}
	return repositories.ErrCartItemNotFound
}

func (r *fakeCartRepo) DeleteItem(_ *gorm.DB, cartID, itemID string) error {
	for _, c := range r.carts {
		if c.ID != cartID {
			continue
		}
		for i := range c.Items {
			if c.Items[i].ID == itemID {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
				return nil
			}
		}
	}
	return repositories.ErrCartItemNotFound
}

func (r *fakeCartRepo) DeleteAllItems(_ *gorm.DB, cartID string) error {
	for _, c := range r.carts {
		if c.ID == cartID {
			c.Items = nil
			return nil
		}
	}
	return nil
}

// recordingEmailProvider remembers what was sent.
type recordingEmailProvider struct {
	welcomes []string
	receipts []string
}

func (p *recordingEmailProvider) Send(_ *email.Email) error { return nil }

func (p *recordingEmailProvider) SendWelcome(to, _ string) error {
	p.welcomes = append(p.welcomes, to)
	return nil
}

func (p *recordingEmailProvider) SendPurchaseReceipt(to string, _ []string, _ float64) error {
	p.receipts = append(p.receipts, to)
	return nil
}
