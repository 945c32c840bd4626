package dto

import "github.com/allmart/backoffice/internal/domain/model"

// RevenuePointPayload is one bucket of the revenue chart.
type RevenuePointPayload struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TopProductPayload is one best-seller row.
type TopProductPayload struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

// ReportResponse is the aggregated sales view for one window.
type ReportResponse struct {
	Window             string                `json:"window"`
	Revenue            []RevenuePointPayload `json:"revenue"`
	TotalRevenue       float64               `json:"totalRevenue"`
	ActiveOrders       int                   `json:"activeOrders"`
	AverageTicket      float64               `json:"averageTicket"`
	CompletionRate     int                   `json:"completionRate"`
	PaidOrders         int                   `json:"paidOrders"`
	TopProducts        []TopProductPayload   `json:"topProducts"`
	StatusDistribution map[string]int        `json:"statusDistribution"`
	RevenueChange      *float64              `json:"revenueChange"`
}

// FromReport builds the wire representation of a report.
func FromReport(r model.Report) ReportResponse {
	resp := ReportResponse{
		Window:             string(r.Window),
		TotalRevenue:       r.TotalRevenue,
		ActiveOrders:       r.ActiveOrders,
		AverageTicket:      r.AverageTicket,
		CompletionRate:     r.CompletionRate,
		PaidOrders:         r.PaidOrders,
		StatusDistribution: make(map[string]int, len(r.StatusDistribution)),
		RevenueChange:      r.RevenueChange,
	}
	resp.Revenue = make([]RevenuePointPayload, 0, len(r.Revenue))
	for _, p := range r.Revenue {
		resp.Revenue = append(resp.Revenue, RevenuePointPayload{Label: p.Label, Value: p.Value})
	}
	resp.TopProducts = make([]TopProductPayload, 0, len(r.TopProducts))
	for _, tp := range r.TopProducts {
		resp.TopProducts = append(resp.TopProducts, TopProductPayload{
			ProductID:   tp.ProductID,
			ProductName: tp.ProductName,
			Quantity:    tp.Quantity,
			Revenue:     tp.Revenue,
		})
	}
	for status, count := range r.StatusDistribution {
		resp.StatusDistribution[string(status)] = count
	}
	return resp
}
