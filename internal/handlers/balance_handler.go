package handlers

import (
	"encoding/json"
	"net/http"

	"budget-service/internal/middleware"
	"budget-service/internal/models"
	"budget-service/internal/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type BalanceHandler struct {
	balanceService *services.BalanceService
	logger         zerolog.Logger
}

func NewBalanceHandler(balanceService *services.BalanceService, logger zerolog.Logger) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
		logger:         logger,
	}
}

func (h *BalanceHandler) CreateBalance(w http.ResponseWriter, r *http.Request) {
	var req models.BalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	if req.Name == "" || req.StartMoney.IsNegative() {
		respondFailure(w, http.StatusBadRequest, msgValidationFailed)
		return
	}

	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondFailure(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	balance, err := h.balanceService.CreateBalance(r.Context(), &req, userID)
	if err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	respondSuccess(w, http.StatusCreated, services.MsgBalanceCreated, balance)
}

func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	balance, err := h.balanceService.GetBalance(r.Context(), id)
	if err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	respondSuccess(w, http.StatusOK, "", balance)
}

func (h *BalanceHandler) GetBalanceList(w http.ResponseWriter, r *http.Request) {
	balances, err := h.balanceService.GetBalanceList(r.Context())
	if err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	respondSuccess(w, http.StatusOK, "", balances)
}

func (h *BalanceHandler) UpdateBalance(w http.ResponseWriter, r *http.Request) {
	var req models.BalanceUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	if req.Name == "" {
		respondFailure(w, http.StatusBadRequest, msgValidationFailed)
		return
	}

	id := mux.Vars(r)["id"]

	balance, err := h.balanceService.UpdateBalance(r.Context(), id, &req)
	if err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	respondSuccess(w, http.StatusOK, services.MsgBalanceUpdated, balance)
}

func (h *BalanceHandler) DeleteBalance(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.balanceService.DeleteBalance(r.Context(), id); err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	respondSuccess(w, http.StatusOK, services.MsgBalanceDeleted, nil)
}
