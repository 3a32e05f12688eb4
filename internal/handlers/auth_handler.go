package handlers

import (
	"encoding/json"
	"net/http"

	"budget-service/internal/models"
	"budget-service/internal/services"

	"github.com/rs/zerolog"
)

type AuthHandler struct {
	userService *services.UserService
	authService *services.AuthService
	logger      zerolog.Logger
}

func NewAuthHandler(userService *services.UserService, authService *services.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
		logger:      logger,
	}
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondFailure(w, http.StatusBadRequest, msgValidationFailed)
		return
	}

	user, err := h.userService.CreateUser(r.Context(), &req)
	if err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		h.logger.Error().Err(err).Msg("Token generation failed")
		respondFailure(w, http.StatusInternalServerError, services.ErrUnknown.Error())
		return
	}

	respondSuccess(w, http.StatusCreated, services.MsgUserCreated, models.AuthResponse{
		User:  user,
		Token: token,
	})
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		respondFailure(w, http.StatusBadRequest, msgValidationFailed)
		return
	}

	auth, err := h.authService.SignIn(r.Context(), &req)
	if err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	respondSuccess(w, http.StatusOK, "", auth)
}
