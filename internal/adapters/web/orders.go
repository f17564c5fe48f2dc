package web

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"order-service/internal/app"
	"order-service/internal/core"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// orderIDParam extracts and parses the {orderID} URL parameter.
func orderIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "orderID"))
}

// listOrders handles GET /api/orders.
func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListOrders(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if result.Orders == nil {
		result.Orders = []core.OrderSummary{}
	}
	writeJSON(w, result.Orders)
}

// getOrder handles GET /api/orders/{orderID}.
func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDParam(r)
	if err != nil {
		writeError(w, r, "invalid order id", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	result, err := h.svc.GetOrder(r.Context(), orderID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result.Order)
}

// listOrdersByStatus handles GET /api/orders/status/{statusName}.
// No matching orders is an empty list, not a 404.
func (h *Handler) listOrdersByStatus(w http.ResponseWriter, r *http.Request) {
	statusName := chi.URLParam(r, "statusName")

	result, err := h.svc.ListOrdersByStatus(r.Context(), statusName)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if result.Orders == nil {
		result.Orders = []core.OrderDetail{}
	}
	writeJSON(w, result.Orders)
}

type createOrderBody struct {
	ResellerID  string                `json:"reseller_id" validate:"required,uuid"`
	CustomerID  string                `json:"customer_id" validate:"required,uuid"`
	StatusID    string                `json:"status_id" validate:"required,uuid"`
	CreatedDate string                `json:"created_date"` // RFC 3339; empty means now
	Items       []createOrderItemBody `json:"items" validate:"required,min=1,dive"`
}

type createOrderItemBody struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	ServiceID string `json:"service_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// createOrder handles POST /api/orders.
func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var body createOrderBody
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.validate.Struct(body); err != nil {
		writeError(w, r, validationMessage(err), "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	var createdAt time.Time
	if body.CreatedDate != "" {
		var err error
		createdAt, err = time.Parse(time.RFC3339, body.CreatedDate)
		if err != nil {
			writeError(w, r, "created_date must be RFC 3339", "BAD_REQUEST", http.StatusBadRequest)
			return
		}
	}

	req := app.CreateOrderRequest{
		ResellerID: uuid.MustParse(body.ResellerID),
		CustomerID: uuid.MustParse(body.CustomerID),
		StatusID:   uuid.MustParse(body.StatusID),
		CreatedAt:  createdAt,
	}
	for _, it := range body.Items {
		req.Items = append(req.Items, app.OrderItemInput{
			ProductID: uuid.MustParse(it.ProductID),
			ServiceID: uuid.MustParse(it.ServiceID),
			Quantity:  it.Quantity,
		})
	}

	result, err := h.svc.CreateOrder(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, result.Order)
}

type updateOrderStatusBody struct {
	StatusID string `json:"status_id" validate:"required,uuid"`
}

// updateOrderStatus handles PUT /api/orders/{orderID}/status.
func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDParam(r)
	if err != nil {
		writeError(w, r, "invalid order id", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	var body updateOrderStatusBody
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.validate.Struct(body); err != nil {
		writeError(w, r, validationMessage(err), "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	result, err := h.svc.UpdateOrderStatus(r.Context(), orderID, uuid.MustParse(body.StatusID))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if !result.Updated {
		writeError(w, r, "order not found", "NOT_FOUND", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// profitByMonth handles GET /api/orders/profit/{month}.
func (h *Handler) profitByMonth(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		writeError(w, r, "month must be a number", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	result, err := h.svc.ProfitByMonth(r.Context(), month)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, map[string]string{"message": result.Message})
}

// profitByMonthAndYear handles GET /api/orders/profit/{month}/{year}.
func (h *Handler) profitByMonthAndYear(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		writeError(w, r, "month must be a number", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, r, "year must be a number", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	result, err := h.svc.ProfitByMonthAndYear(r.Context(), month, year)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, map[string]string{"message": result.Message})
}

// validationMessage flattens a validator error into a single readable line.
func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "invalid request body"
	}
	fe := verrs[0]
	return fmt.Sprintf("field %s failed validation (%s)", fe.Field(), fe.Tag())
}
