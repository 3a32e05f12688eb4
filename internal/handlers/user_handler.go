package handlers

import (
	"net/http"

	"budget-service/internal/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type UserHandler struct {
	userService *services.UserService
	logger      zerolog.Logger
}

func NewUserHandler(userService *services.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	respondSuccess(w, http.StatusOK, "", user)
}

func (h *UserHandler) GetUserList(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetUserList(r.Context())
	if err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	respondSuccess(w, http.StatusOK, "", users)
}
