package handlers

import (
	"encoding/json"
	"net/http"

	"budget-service/internal/models"
	"budget-service/internal/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
	logger         zerolog.Logger
}

func NewPaymentHandler(paymentService *services.PaymentService, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	if req.Name == "" || req.BalanceID == "" || req.Value.IsNegative() {
		respondFailure(w, http.StatusBadRequest, msgValidationFailed)
		return
	}

	payment, err := h.paymentService.CreatePayment(r.Context(), &req)
	if err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	respondSuccess(w, http.StatusCreated, services.MsgPaymentCreated, payment)
}

func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	payment, err := h.paymentService.GetPayment(r.Context(), id)
	if err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	respondSuccess(w, http.StatusOK, "", payment)
}

func (h *PaymentHandler) GetPaymentList(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.GetPaymentList(r.Context())
	if err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	respondSuccess(w, http.StatusOK, "", payments)
}

func (h *PaymentHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	if req.Name == "" {
		respondFailure(w, http.StatusBadRequest, msgValidationFailed)
		return
	}

	id := mux.Vars(r)["id"]

	payment, err := h.paymentService.UpdatePayment(r.Context(), id, &req)
	if err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	respondSuccess(w, http.StatusOK, services.MsgPaymentUpdated, payment)
}

func (h *PaymentHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.paymentService.DeletePayment(r.Context(), id); err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	respondSuccess(w, http.StatusOK, services.MsgPaymentDeleted, nil)
}
