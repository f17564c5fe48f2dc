package web_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"order-service/internal/adapters/web"
	"order-service/internal/app"
	"order-service/internal/core"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// stubService implements app.ApplicationService with per-method function
// fields, so each test wires only the calls it expects.
type stubService struct {
	listOrders        func(ctx context.Context) (*app.OrderListResult, error)
	getOrder          func(ctx context.Context, orderID uuid.UUID) (*app.OrderResult, error)
	listByStatus      func(ctx context.Context, statusName string) (*app.OrderDetailListResult, error)
	createOrder       func(ctx context.Context, req app.CreateOrderRequest) (*app.OrderResult, error)
	updateOrderStatus func(ctx context.Context, orderID, statusID uuid.UUID) (*app.UpdateStatusResult, error)
	profitByMonth     func(ctx context.Context, month int) (*app.ProfitResult, error)
	profitByMonthYear func(ctx context.Context, month, year int) (*app.ProfitResult, error)
}

func (s *stubService) ListOrders(ctx context.Context) (*app.OrderListResult, error) {
	return s.listOrders(ctx)
}

func (s *stubService) GetOrder(ctx context.Context, orderID uuid.UUID) (*app.OrderResult, error) {
	return s.getOrder(ctx, orderID)
}

func (s *stubService) ListOrdersByStatus(ctx context.Context, statusName string) (*app.OrderDetailListResult, error) {
	return s.listByStatus(ctx, statusName)
}

func (s *stubService) CreateOrder(ctx context.Context, req app.CreateOrderRequest) (*app.OrderResult, error) {
	return s.createOrder(ctx, req)
}

func (s *stubService) UpdateOrderStatus(ctx context.Context, orderID, statusID uuid.UUID) (*app.UpdateStatusResult, error) {
	return s.updateOrderStatus(ctx, orderID, statusID)
}

func (s *stubService) ProfitByMonth(ctx context.Context, month int) (*app.ProfitResult, error) {
	return s.profitByMonth(ctx, month)
}

func (s *stubService) ProfitByMonthAndYear(ctx context.Context, month, year int) (*app.ProfitResult, error) {
	return s.profitByMonthYear(ctx, month, year)
}

func newTestServer(svc app.ApplicationService) *httptest.Server {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return httptest.NewServer(web.NewHandler(svc, log, "*"))
}

func doRequest(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	return resp, data
}

func sampleDetail() *core.OrderDetail {
	return &core.OrderDetail{
		ID:         uuid.New(),
		ResellerID: uuid.New(),
		CustomerID: uuid.New(),
		StatusID:   uuid.New(),
		StatusName: "Created",
		TotalCost:  decimal.RequireFromString("0.50"),
		TotalPrice: decimal.RequireFromString("1.00"),
		CreatedAt:  time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestListOrders_EmptyIsJSONArray(t *testing.T) {
	svc := &stubService{
		listOrders: func(ctx context.Context) (*app.OrderListResult, error) {
			return &app.OrderListResult{}, nil
		},
	}
	server := newTestServer(svc)
	defer server.Close()

	resp, body := doRequest(t, http.MethodGet, server.URL+"/api/orders", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if strings.TrimSpace(string(body)) != "[]" {
		t.Errorf("Expected empty JSON array, got %s", body)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	svc := &stubService{
		getOrder: func(ctx context.Context, orderID uuid.UUID) (*app.OrderResult, error) {
			return nil, core.ErrOrderNotFound
		},
	}
	server := newTestServer(svc)
	defer server.Close()

	resp, body := doRequest(t, http.MethodGet, server.URL+"/api/orders/"+uuid.NewString(), "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", resp.StatusCode, body)
	}

	var errResp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	if errResp.Code != "NOT_FOUND" {
		t.Errorf("Expected code NOT_FOUND, got %s", errResp.Code)
	}
}

func TestGetOrder_InvalidID(t *testing.T) {
	svc := &stubService{
		getOrder: func(ctx context.Context, orderID uuid.UUID) (*app.OrderResult, error) {
			t.Error("Service must not be called for a malformed order id")
			return nil, nil
		},
	}
	server := newTestServer(svc)
	defer server.Close()

	resp, _ := doRequest(t, http.MethodGet, server.URL+"/api/orders/not-a-uuid", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", resp.StatusCode)
	}
}

func TestGetOrder_Found(t *testing.T) {
	detail := sampleDetail()
	svc := &stubService{
		getOrder: func(ctx context.Context, orderID uuid.UUID) (*app.OrderResult, error) {
			if orderID != detail.ID {
				t.Errorf("Expected lookup of %s, got %s", detail.ID, orderID)
			}
			return &app.OrderResult{Order: detail}, nil
		},
	}
	server := newTestServer(svc)
	defer server.Close()

	resp, body := doRequest(t, http.MethodGet, server.URL+"/api/orders/"+detail.ID.String(), "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", resp.StatusCode, body)
	}

	var got core.OrderDetail
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if got.ID != detail.ID || got.StatusName != "Created" {
		t.Errorf("Unexpected order payload: %+v", got)
	}
	if !got.TotalPrice.Equal(detail.TotalPrice) {
		t.Errorf("Expected total price %s, got %s", detail.TotalPrice, got.TotalPrice)
	}
}

func TestListOrdersByStatus_PassesName(t *testing.T) {
	svc := &stubService{
		listByStatus: func(ctx context.Context, statusName string) (*app.OrderDetailListResult, error) {
			if statusName != "completed" {
				t.Errorf("Expected status name completed, got %q", statusName)
			}
			return &app.OrderDetailListResult{}, nil
		},
	}
	server := newTestServer(svc)
	defer server.Close()

	resp, body := doRequest(t, http.MethodGet, server.URL+"/api/orders/status/completed", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if strings.TrimSpace(string(body)) != "[]" {
		t.Errorf("Expected empty JSON array, got %s", body)
	}
}

func TestCreateOrder_Success(t *testing.T) {
	detail := sampleDetail()
	var captured app.CreateOrderRequest
	svc := &stubService{
		createOrder: func(ctx context.Context, req app.CreateOrderRequest) (*app.OrderResult, error) {
			captured = req
			return &app.OrderResult{Order: detail}, nil
		},
	}
	server := newTestServer(svc)
	defer server.Close()

	productID, serviceID := uuid.New(), uuid.New()
	payload := fmt.Sprintf(`{
		"reseller_id": %q,
		"customer_id": %q,
		"status_id": %q,
		"created_date": "2024-05-01T00:00:00Z",
		"items": [{"product_id": %q, "service_id": %q, "quantity": 5}]
	}`, detail.ResellerID, detail.CustomerID, detail.StatusID, productID, serviceID)

	resp, body := doRequest(t, http.MethodPost, server.URL+"/api/orders", payload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", resp.StatusCode, body)
	}
	if captured.ResellerID != detail.ResellerID || captured.StatusID != detail.StatusID {
		t.Errorf("Request not forwarded intact: %+v", captured)
	}
	if len(captured.Items) != 1 || captured.Items[0].Quantity != 5 || captured.Items[0].ProductID != productID {
		t.Errorf("Items not forwarded intact: %+v", captured.Items)
	}
	if !captured.CreatedAt.Equal(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected created_at %s", captured.CreatedAt)
	}
}

func TestCreateOrder_BodyValidation(t *testing.T) {
	svc := &stubService{
		createOrder: func(ctx context.Context, req app.CreateOrderRequest) (*app.OrderResult, error) {
			t.Error("Service must not be called for an invalid body")
			return nil, nil
		},
	}
	server := newTestServer(svc)
	defer server.Close()

	cases := []struct {
		name string
		body string
	}{
		{"not json", "{{{"},
		{"missing items", fmt.Sprintf(`{"reseller_id": %q, "customer_id": %q, "status_id": %q}`,
			uuid.New(), uuid.New(), uuid.New())},
		{"empty items", fmt.Sprintf(`{"reseller_id": %q, "customer_id": %q, "status_id": %q, "items": []}`,
			uuid.New(), uuid.New(), uuid.New())},
		{"bad uuid", fmt.Sprintf(`{"reseller_id": "nope", "customer_id": %q, "status_id": %q, "items": [{"product_id": %q, "service_id": %q, "quantity": 1}]}`,
			uuid.New(), uuid.New(), uuid.New(), uuid.New())},
		{"zero quantity", fmt.Sprintf(`{"reseller_id": %q, "customer_id": %q, "status_id": %q, "items": [{"product_id": %q, "service_id": %q, "quantity": 0}]}`,
			uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New())},
		{"bad date", fmt.Sprintf(`{"reseller_id": %q, "customer_id": %q, "status_id": %q, "created_date": "yesterday", "items": [{"product_id": %q, "service_id": %q, "quantity": 1}]}`,
			uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New())},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := doRequest(t, http.MethodPost, server.URL+"/api/orders", tc.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d: %s", resp.StatusCode, body)
			}
		})
	}
}

func TestCreateOrder_ValidationErrorFromService(t *testing.T) {
	svc := &stubService{
		createOrder: func(ctx context.Context, req app.CreateOrderRequest) (*app.OrderResult, error) {
			return nil, core.NewValidationError("Bad status sent")
		},
	}
	server := newTestServer(svc)
	defer server.Close()

	payload := fmt.Sprintf(`{"reseller_id": %q, "customer_id": %q, "status_id": %q, "items": [{"product_id": %q, "service_id": %q, "quantity": 1}]}`,
		uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New())
	resp, body := doRequest(t, http.MethodPost, server.URL+"/api/orders", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", resp.StatusCode)
	}

	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	if errResp.Error != "Bad status sent" {
		t.Errorf("Expected message passthrough, got %q", errResp.Error)
	}
}

func TestUpdateOrderStatus_Outcomes(t *testing.T) {
	orderID, statusID := uuid.New(), uuid.New()
	payload := fmt.Sprintf(`{"status_id": %q}`, statusID)

	t.Run("updated", func(t *testing.T) {
		svc := &stubService{
			updateOrderStatus: func(ctx context.Context, gotOrder, gotStatus uuid.UUID) (*app.UpdateStatusResult, error) {
				if gotOrder != orderID || gotStatus != statusID {
					t.Errorf("Arguments not forwarded: %s %s", gotOrder, gotStatus)
				}
				return &app.UpdateStatusResult{Updated: true}, nil
			},
		}
		server := newTestServer(svc)
		defer server.Close()

		resp, _ := doRequest(t, http.MethodPut, server.URL+"/api/orders/"+orderID.String()+"/status", payload)
		if resp.StatusCode != http.StatusNoContent {
			t.Errorf("Expected 204, got %d", resp.StatusCode)
		}
	})

	t.Run("order missing", func(t *testing.T) {
		svc := &stubService{
			updateOrderStatus: func(ctx context.Context, gotOrder, gotStatus uuid.UUID) (*app.UpdateStatusResult, error) {
				return &app.UpdateStatusResult{Updated: false}, nil
			},
		}
		server := newTestServer(svc)
		defer server.Close()

		resp, _ := doRequest(t, http.MethodPut, server.URL+"/api/orders/"+orderID.String()+"/status", payload)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", resp.StatusCode)
		}
	})

	t.Run("bad status", func(t *testing.T) {
		svc := &stubService{
			updateOrderStatus: func(ctx context.Context, gotOrder, gotStatus uuid.UUID) (*app.UpdateStatusResult, error) {
				return nil, core.NewValidationError("Bad status sent")
			},
		}
		server := newTestServer(svc)
		defer server.Close()

		resp, _ := doRequest(t, http.MethodPut, server.URL+"/api/orders/"+orderID.String()+"/status", payload)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", resp.StatusCode)
		}
	})
}

func TestProfitByMonth(t *testing.T) {
	svc := &stubService{
		profitByMonth: func(ctx context.Context, month int) (*app.ProfitResult, error) {
			if month != 8 {
				t.Errorf("Expected month 8, got %d", month)
			}
			return &app.ProfitResult{Message: "Profit made in month number 8 through all years is 0.50"}, nil
		},
	}
	server := newTestServer(svc)
	defer server.Close()

	resp, body := doRequest(t, http.MethodGet, server.URL+"/api/orders/profit/8", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var got map[string]string
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if got["message"] != "Profit made in month number 8 through all years is 0.50" {
		t.Errorf("Unexpected message %q", got["message"])
	}
}

func TestProfitByMonthAndYear(t *testing.T) {
	svc := &stubService{
		profitByMonthYear: func(ctx context.Context, month, year int) (*app.ProfitResult, error) {
			if month != 8 || year != 2024 {
				t.Errorf("Expected 8/2024, got %d/%d", month, year)
			}
			return &app.ProfitResult{Message: "Profit made in month number 8 in year 2024 is 4.00"}, nil
		},
	}
	server := newTestServer(svc)
	defer server.Close()

	resp, body := doRequest(t, http.MethodGet, server.URL+"/api/orders/profit/8/2024", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var got map[string]string
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if got["message"] != "Profit made in month number 8 in year 2024 is 4.00" {
		t.Errorf("Unexpected message %q", got["message"])
	}
}

func TestProfitByMonth_InvalidMonth(t *testing.T) {
	svc := &stubService{
		profitByMonth: func(ctx context.Context, month int) (*app.ProfitResult, error) {
			return nil, core.NewValidationError("Please insert valid month number")
		},
	}
	server := newTestServer(svc)
	defer server.Close()

	resp, body := doRequest(t, http.MethodGet, server.URL+"/api/orders/profit/13", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", resp.StatusCode)
	}

	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	if errResp.Error != "Please insert valid month number" {
		t.Errorf("Expected message passthrough, got %q", errResp.Error)
	}

	// Non-numeric months never reach the service.
	resp, _ = doRequest(t, http.MethodGet, server.URL+"/api/orders/profit/august", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-numeric month, got %d", resp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	server := newTestServer(&stubService{})
	defer server.Close()

	resp, body := doRequest(t, http.MethodGet, server.URL+"/api/health", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	var got map[string]string
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if got["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", got["status"])
	}
}
