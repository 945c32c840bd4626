package model

// ReportWindow is a trailing time range used to scope report aggregation.
type ReportWindow string

const (
	ReportWindow7d  ReportWindow = "7d"
	ReportWindow30d ReportWindow = "30d"
	ReportWindow90d ReportWindow = "90d"
	ReportWindowAll ReportWindow = "all"
)

// Days returns the window length in days, or 0 for the unbounded window.
func (w ReportWindow) Days() int {
	switch w {
	case ReportWindow7d:
		return 7
	case ReportWindow30d:
		return 30
	case ReportWindow90d:
		return 90
	}
	return 0
}

// RevenuePoint is one bucket of the revenue series. Label is a day
// (2006-01-02) for bounded windows and a month (2006-01) for the unbounded one.
type RevenuePoint struct {
	Label string
	Value float64
}

// TopProduct aggregates sold quantity and revenue for one product.
type TopProduct struct {
	ProductID   string
	ProductName string
	Quantity    int
	Revenue     float64
}

// Report is the read-side view over the order list for one window.
// Cancelled orders are excluded from revenue figures but included in the
// status distribution and the paid-order count.
type Report struct {
	Window             ReportWindow
	Revenue            []RevenuePoint
	TotalRevenue       float64
	ActiveOrders       int
	AverageTicket      float64
	CompletionRate     int
	PaidOrders         int
	TopProducts        []TopProduct
	StatusDistribution map[OrderStatus]int
	// RevenueChange is the percent change versus the immediately preceding
	// window of equal length. Nil for the unbounded window and when the
	// previous window had zero revenue.
	RevenueChange *float64
}
