package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	domainErrors "github.com/allmart/backoffice/internal/domain/errors"
	"github.com/allmart/backoffice/internal/domain/model"
	"github.com/allmart/backoffice/internal/domain/repository"
)

const topProductsLimit = 8

// ParseWindow maps a query value onto a known report window.
func ParseWindow(value string) (model.ReportWindow, error) {
	switch model.ReportWindow(value) {
	case model.ReportWindow7d, model.ReportWindow30d, model.ReportWindow90d, model.ReportWindowAll:
		return model.ReportWindow(value), nil
	}
	return "", domainErrors.ErrInvalidWindow
}

// ReportUseCase derives read-only sales views from the order list. Every
// report is recomputed from scratch; at the data volumes involved a cache
// would buy nothing.
type ReportUseCase struct {
	orders repository.OrderRepository
	now    func() time.Time
}

// NewReportUseCase constructs ReportUseCase.
func NewReportUseCase(orders repository.OrderRepository) *ReportUseCase {
	return &ReportUseCase{orders: orders, now: time.Now}
}

// Build scans the full order list and aggregates it for the window.
func (u *ReportUseCase) Build(ctx context.Context, window model.ReportWindow) (*model.Report, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildReport(orders, window, u.now()), nil
}

// BuildReport aggregates the given orders for a window ending at now.
func BuildReport(orders []model.Order, window model.ReportWindow, now time.Time) *model.Report {
	report := &model.Report{
		Window:             window,
		StatusDistribution: make(map[model.OrderStatus]int),
	}

	days := window.Days()
	var windowStart time.Time
	if days > 0 {
		windowStart = dayStart(now).AddDate(0, 0, -(days - 1))
	}

	var inWindow []model.Order
	for _, o := range orders {
		if days > 0 && o.CreatedAt.Before(windowStart) {
			continue
		}
		inWindow = append(inWindow, o)
	}

	var delivered int
	for _, o := range inWindow {
		report.StatusDistribution[o.Status]++
		if o.Paid() {
			report.PaidOrders++
		}
		if !o.Active() {
			continue
		}
		report.ActiveOrders++
		report.TotalRevenue += o.Total
		if o.Status == model.OrderStatusDelivered {
			delivered++
		}
	}

	if report.ActiveOrders > 0 {
		report.AverageTicket = report.TotalRevenue / float64(report.ActiveOrders)
		report.CompletionRate = int(math.Round(float64(delivered) / float64(report.ActiveOrders) * 100))
	}

	if days > 0 {
		report.Revenue = dailyRevenue(inWindow, windowStart, days)
		report.RevenueChange = revenueChange(orders, windowStart, days, report.TotalRevenue)
	} else {
		report.Revenue = monthlyRevenue(inWindow, now)
	}

	report.TopProducts = topProducts(inWindow)

	return report
}

// dailyRevenue produces a zero-filled series with exactly one point per day,
// so charts always get a fixed-cardinality x-axis.
func dailyRevenue(orders []model.Order, start time.Time, days int) []model.RevenuePoint {
	points := make([]model.RevenuePoint, days)
	for i := range points {
		points[i].Label = start.AddDate(0, 0, i).Format("2006-01-02")
	}
	for _, o := range orders {
		if !o.Active() {
			continue
		}
		idx := daysBetween(start, o.CreatedAt)
		if idx >= 0 && idx < days {
			points[idx].Value += o.Total
		}
	}
	return points
}

// monthlyRevenue buckets the unbounded window per month, from the earliest
// order up to the current month.
func monthlyRevenue(orders []model.Order, now time.Time) []model.RevenuePoint {
	first := monthStart(now)
	for _, o := range orders {
		if m := monthStart(o.CreatedAt); m.Before(first) {
			first = m
		}
	}

	var points []model.RevenuePoint
	for m := first; !m.After(monthStart(now)); m = m.AddDate(0, 1, 0) {
		points = append(points, model.RevenuePoint{Label: m.Format("2006-01")})
	}
	for _, o := range orders {
		if !o.Active() {
			continue
		}
		idx := monthsBetween(first, monthStart(o.CreatedAt))
		if idx >= 0 && idx < len(points) {
			points[idx].Value += o.Total
		}
	}
	return points
}

// revenueChange compares active revenue against the immediately preceding
// window of equal length. Nil when the baseline revenue is zero.
func revenueChange(orders []model.Order, windowStart time.Time, days int, current float64) *float64 {
	prevStart := windowStart.AddDate(0, 0, -days)

	var previous float64
	for _, o := range orders {
		if !o.Active() {
			continue
		}
		if o.CreatedAt.Before(prevStart) || !o.CreatedAt.Before(windowStart) {
			continue
		}
		previous += o.Total
	}
	if previous == 0 {
		return nil
	}
	change := (current - previous) / previous * 100
	return &change
}

func topProducts(orders []model.Order) []model.TopProduct {
	byProduct := make(map[string]*model.TopProduct)
	for _, o := range orders {
		if !o.Active() {
			continue
		}
		for _, item := range o.Items {
			agg, ok := byProduct[item.ProductID]
			if !ok {
				agg = &model.TopProduct{ProductID: item.ProductID, ProductName: item.ProductName}
				byProduct[item.ProductID] = agg
			}
			agg.Quantity += item.Quantity
			agg.Revenue += item.UnitPrice * float64(item.Quantity)
		}
	}

	result := make([]model.TopProduct, 0, len(byProduct))
	for _, agg := range byProduct {
		result = append(result, *agg)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Revenue != result[j].Revenue {
			return result[i].Revenue > result[j].Revenue
		}
		if result[i].Quantity != result[j].Quantity {
			return result[i].Quantity > result[j].Quantity
		}
		return result[i].ProductName < result[j].ProductName
	})
	if len(result) > topProductsLimit {
		result = result[:topProductsLimit]
	}
	return result
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days, tolerating the 23h/25h days around
// DST transitions.
func daysBetween(start, t time.Time) int {
	return int(math.Round(dayStart(t).Sub(start).Hours() / 24))
}

func monthsBetween(start, m time.Time) int {
	return (m.Year()-start.Year())*12 + int(m.Month()-start.Month())
}
