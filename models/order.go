package models

// SaveOrderInput is a confirmed order headed for the orders archive table.
type SaveOrderInput struct {
	UserID     int64
	ChatID     string
	ItemsCount int
	ItemsTotal Money
}

type DailyStats struct {
	OrdersCount  int
	ItemsCount   int
	ItemsRevenue Money
}
