package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/dashboard-backend/pkg/enums"
	"github.com/angelmondragon/dashboard-backend/pkg/metrics"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Service computes dashboard statistics.
type Service interface {
	Summary(ctx context.Context) (*Summary, error)
	Categories(ctx context.Context) ([]CategoryStat, error)
	OrderStatuses(ctx context.Context) ([]StatusStat, error)
}

type repository interface {
	CountProducts(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context, threshold int) (int64, error)
	CountOrdersByStatus(ctx context.Context, status enums.OrderStatus) (int64, error)
	OrderTotals(ctx context.Context, status enums.OrderStatus) ([]decimal.Decimal, error)
	ProductStock(ctx context.Context) ([]CategoryStock, error)
	OrderStatusTotals(ctx context.Context) ([]StatusTotal, error)
}

type service struct {
	repo              repository
	lowStockThreshold int
	metrics           *metrics.StatsMetrics
}

func NewService(repo repository, lowStockThreshold int, m *metrics.StatsMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("stats repository required")
	}
	return &service{repo: repo, lowStockThreshold: lowStockThreshold, metrics: m}, nil
}

// Summary issues its six queries in parallel; the first failure cancels the rest.
func (s *service) Summary(ctx context.Context) (*Summary, error) {
	var (
		out    Summary
		totals []decimal.Decimal
	)
	g, ctx := errgroup.WithContext(ctx)

	s.goCount(ctx, g, "total_products", &out.TotalProducts, s.repo.CountProducts)
	s.goCount(ctx, g, "total_customers", &out.TotalCustomers, s.repo.CountCustomers)
	s.goCount(ctx, g, "total_orders", &out.TotalOrders, s.repo.CountOrders)
	s.goCount(ctx, g, "low_stock_products", &out.LowStockProducts, func(ctx context.Context) (int64, error) {
		return s.repo.CountLowStock(ctx, s.lowStockThreshold)
	})
	s.goCount(ctx, g, "pending_orders", &out.PendingOrders, func(ctx context.Context) (int64, error) {
		return s.repo.CountOrdersByStatus(ctx, enums.OrderStatusPending)
	})
	g.Go(func() error {
		defer s.observe("total_revenue", time.Now())
		var err error
		totals, err = s.repo.OrderTotals(ctx, enums.OrderStatusCompleted)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	out.TotalRevenue = sum(totals).StringFixed(2)
	return &out, nil
}

func (s *service) goCount(ctx context.Context, g *errgroup.Group, name string, dst *int64, fn func(context.Context) (int64, error)) {
	g.Go(func() error {
		defer s.observe(name, time.Now())
		n, err := fn(ctx)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	})
}

// Categories groups products by category in order of first appearance.
func (s *service) Categories(ctx context.Context) ([]CategoryStat, error) {
	defer s.observe("categories", time.Now())
	rows, err := s.repo.ProductStock(ctx)
	if err != nil {
		return nil, err
	}

	out := []CategoryStat{}
	index := map[string]int{}
	for _, row := range rows {
		i, ok := index[row.Category]
		if !ok {
			i = len(out)
			index[row.Category] = i
			out = append(out, CategoryStat{Category: row.Category})
		}
		out[i].Count++
		out[i].TotalStock += row.Stock
	}
	return out, nil
}

// OrderStatuses groups orders by status in order of first appearance.
func (s *service) OrderStatuses(ctx context.Context) ([]StatusStat, error) {
	defer s.observe("order_statuses", time.Now())
	rows, err := s.repo.OrderStatusTotals(ctx)
	if err != nil {
		return nil, err
	}

	var (
		order  []enums.OrderStatus
		counts = map[enums.OrderStatus]int{}
		totals = map[enums.OrderStatus]decimal.Decimal{}
	)
	for _, row := range rows {
		if _, ok := counts[row.Status]; !ok {
			order = append(order, row.Status)
		}
		counts[row.Status]++
		totals[row.Status] = totals[row.Status].Add(row.TotalAmount)
	}

	out := make([]StatusStat, 0, len(order))
	for _, status := range order {
		out = append(out, StatusStat{Status: status, Count: counts[status], Total: totals[status].StringFixed(2)})
	}
	return out, nil
}

func (s *service) observe(query string, started time.Time) {
	s.metrics.ObserveQuery(query, time.Since(started))
}

func sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
