package httpx

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// PaymentGateway is the payment collaborator. A nil gateway means
// payments are not configured and the order route is never registered.
type PaymentGateway interface {
	CreateOrder(amountMinor int64, currency, receipt string) (map[string]any, error)
}

// The gateway never accepts a client-supplied currency code.
const orderCurrency = "INR"

type OrdersHandler struct {
	Gateway PaymentGateway
}

type createOrderReq struct {
	Amount float64 `json:"amount"`
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	if h.Gateway == nil {
		return
	}
	r.Post("/create-order", h.createOrder)
}

func (h *OrdersHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.createOrder"
	log := slog.With("op", op)

	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if req.Amount <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "amount must be positive"})
		return
	}

	// Receipt labels collide within one millisecond tick; the payment
	// host does not require uniqueness.
	receipt := fmt.Sprintf("receipt_order_%d", time.Now().UnixMilli())

	order, err := h.Gateway.CreateOrder(MinorUnits(req.Amount), orderCurrency, receipt)
	if err != nil {
		log.Error("create payment order", "err", err)
		writeInternalError(w, "error creating payment order")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// MinorUnits converts a major-unit amount to minor units, rounding half
// away from zero on the exact decimal value: 19.995 -> 2000.
func MinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
