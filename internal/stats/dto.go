package stats

import "github.com/angelmondragon/dashboard-backend/pkg/enums"

// Summary holds the dashboard headline figures. Revenue is the sum of
// completed order totals rendered with two decimals.
type Summary struct {
	TotalProducts    int64  `json:"total_products"`
	TotalCustomers   int64  `json:"total_customers"`
	TotalOrders      int64  `json:"total_orders"`
	TotalRevenue     string `json:"total_revenue"`
	LowStockProducts int64  `json:"low_stock_products"`
	PendingOrders    int64  `json:"pending_orders"`
}

// CategoryStat aggregates products sharing a category.
type CategoryStat struct {
	Category   string `json:"category"`
	Count      int    `json:"count"`
	TotalStock int    `json:"total_stock"`
}

// StatusStat aggregates orders sharing a status.
type StatusStat struct {
	Status enums.OrderStatus `json:"status"`
	Count  int               `json:"count"`
	Total  string            `json:"total"`
}
