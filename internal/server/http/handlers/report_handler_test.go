package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/allmart/backoffice/internal/domain/model"
	"github.com/allmart/backoffice/internal/server/http/dto"
	testhelpers "github.com/allmart/backoffice/internal/test"
)

func TestReportDefaultWindow(t *testing.T) {
	facade := testhelpers.ReportFacadeStub{
		ReportFn: func(ctx context.Context, window model.ReportWindow) (*model.Report, error) {
			if window != model.ReportWindow30d {
				t.Fatalf("unexpected window %q", window)
			}
			return &model.Report{
				Window:       window,
				TotalRevenue: 1500,
				PaidOrders:   3,
				StatusDistribution: map[model.OrderStatus]int{
					model.OrderStatusPending: 2,
				},
			}, nil
		},
	}
	handler := NewReportHandler(facade)

	recorder := performJSON(handler.Build, http.MethodGet, "/route", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}

	var resp dto.ReportResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Window != "30d" || resp.TotalRevenue != 1500 || resp.PaidOrders != 3 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.StatusDistribution["pendiente"] != 2 {
		t.Fatalf("unexpected distribution %+v", resp.StatusDistribution)
	}
}

func TestReportExplicitWindow(t *testing.T) {
	facade := testhelpers.ReportFacadeStub{
		ReportFn: func(ctx context.Context, window model.ReportWindow) (*model.Report, error) {
			if window != model.ReportWindowAll {
				t.Fatalf("unexpected window %q", window)
			}
			return &model.Report{Window: window, StatusDistribution: map[model.OrderStatus]int{}}, nil
		},
	}
	handler := NewReportHandler(facade)

	recorder := performJSON(handler.Build, http.MethodGet, "/route?window=all", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
}

func TestReportInvalidWindow(t *testing.T) {
	handler := NewReportHandler(testhelpers.ReportFacadeStub{})

	recorder := performJSON(handler.Build, http.MethodGet, "/route?window=14d", "")
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
}

func TestReportFacadeError(t *testing.T) {
	facade := testhelpers.ReportFacadeStub{
		ReportFn: func(context.Context, model.ReportWindow) (*model.Report, error) {
			return nil, errors.New("storage down")
		},
	}
	handler := NewReportHandler(facade)

	recorder := performJSON(handler.Build, http.MethodGet, "/route", "")
	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
}
