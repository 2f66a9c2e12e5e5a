package dto

type DashboardStats struct {
	TotalUsers          int64   `json:"total_users"`
	TotalGames          int64   `json:"total_games"`
	TotalPurchases      int64   `json:"total_purchases"`
	ActiveSubscriptions int64   `json:"active_subscriptions"`
	TotalRevenue        float64 `json:"total_revenue"`
}
