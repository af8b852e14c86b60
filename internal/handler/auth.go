package handler

import (
	"net/http"

	"github.com/fitquest/FitQuest_Go/internal/domain"
	"github.com/fitquest/FitQuest_Go/internal/logger"
	"github.com/fitquest/FitQuest_Go/internal/user"
)

// RegisterRequest represents the request to register a new user
type RegisterRequest struct {
	Username     string `json:"username" validate:"required,min=3,max=30"`
	Password     string `json:"password" validate:"required,min=6"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email" validate:"omitempty,email"`
	FitnessLevel string `json:"fitnessLevel"`
	Height       int    `json:"height"`
	Weight       int    `json:"weight"`
	Goal         string `json:"goal"`
}

// LoginRequest represents the login credentials
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleRegister creates a new user account
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/auth/register [post]
func HandleRegister(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register"); err != nil {
			return
		}

		created, err := userService.Register(r.Context(), domain.NewUser{
			Username:     req.Username,
			Password:     req.Password,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			FitnessLevel: req.FitnessLevel,
			Height:       req.Height,
			Weight:       req.Weight,
			Goal:         req.Goal,
		})
		if err != nil {
			logger.FromContext(r.Context()).Warn("registration failed", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleLogin checks credentials and returns the user
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} domain.User
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/login [post]
func HandleLogin(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
			return
		}

		found, err := userService.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, found)
	}
}

// HandleGetUser returns a user profile by id
// @Summary Get a user
// @Tags auth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorResponse
// @Router /api/auth/user/{id} [get]
func HandleGetUser(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		found, err := userService.GetUser(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, found)
	}
}
