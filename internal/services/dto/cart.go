package dto

type AddCartItemRequest struct {
	GameID   string `json:"game_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

// CheckoutFailure explains why a single line item was not purchased.
type CheckoutFailure struct {
	GameID   string `json:"game_id"`
	GameName string `json:"game_name"`
	Reason   string `json:"reason"`
}

// CheckoutResult reports partial-success checkout semantics: totals for
// what went through plus the items that failed with a reason each.
type CheckoutResult struct {
	TotalCharged   float64           `json:"total_charged"`
	PurchasedGames []string          `json:"purchased_games"`
	FailedGames    []CheckoutFailure `json:"failed_games"`
}
