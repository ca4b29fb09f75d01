package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/chicstyle/go-boutique/app/helpers"
	"github.com/chicstyle/go-boutique/app/models"
	"github.com/chicstyle/go-boutique/app/repositories"
	"github.com/chicstyle/go-boutique/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authPayload struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type AuthHandler struct {
	userRepo repositories.UserRepositoryImpl
	tokens   *services.TokenManager
	render   *render.Render
	validate *validator.Validate
}

func NewAuthHandler(userRepo repositories.UserRepositoryImpl, tokens *services.TokenManager, render *render.Render, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		tokens:   tokens,
		render:   render,
		validate: validate,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Registration failed", err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Registration failed", verrs)
			return
		}
		helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Registration failed", err)
		return
	}

	existing, err := h.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("AuthHandler.Register: lookup %s: %v", req.Email, err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Registration failed", err)
		return
	}
	if existing != nil {
		helpers.RespondError(h.render, w, http.StatusBadRequest, "User already exists")
		return
	}

	hashed := helpers.HashPassword(req.Password)
	if hashed == "" {
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Registration failed")
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     models.RoleCustomer,
	}
	if err := h.userRepo.Create(ctx, user); err != nil {
		log.Printf("AuthHandler.Register: create %s: %v", req.Email, err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Registration failed", err)
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		log.Printf("AuthHandler.Register: token for %s: %v", user.ID, err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Registration failed", err)
		return
	}

	helpers.RespondMessage(h.render, w, http.StatusCreated, "Registration successful", authPayload{User: user, Token: token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Login failed", err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		helpers.RespondError(h.render, w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("AuthHandler.Login: lookup %s: %v", req.Email, err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Login failed", err)
		return
	}
	if user == nil || !helpers.PasswordCompare(user.Password, []byte(req.Password)) {
		helpers.RespondError(h.render, w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		log.Printf("AuthHandler.Login: token for %s: %v", user.ID, err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Login failed", err)
		return
	}

	helpers.RespondMessage(h.render, w, http.StatusOK, "Login successful", authPayload{User: user, Token: token})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := ctx.Value(helpers.ContextKeyUserID).(string)

	user, err := h.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Printf("AuthHandler.Me: user %s: %v", userID, err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Failed to fetch profile", err)
		return
	}
	if user == nil {
		helpers.RespondError(h.render, w, http.StatusNotFound, "User not found")
		return
	}

	helpers.RespondData(h.render, w, http.StatusOK, user)
}
