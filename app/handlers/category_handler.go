package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/chicstyle/go-boutique/app/helpers"
	"github.com/chicstyle/go-boutique/app/models"
	"github.com/chicstyle/go-boutique/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	slugutil "github.com/gosimple/slug"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Slug        string `json:"slug" validate:"omitempty,max=100"`
	Image       string `json:"image" validate:"required"`
	Description string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool  `json:"isActive"`
}

type CategoryHandler struct {
	categoryRepo repositories.CategoryRepositoryImpl
	render       *render.Render
	validate     *validator.Validate
}

func NewCategoryHandler(categoryRepo repositories.CategoryRepositoryImpl, render *render.Render, validate *validator.Validate) *CategoryHandler {
	return &CategoryHandler{
		categoryRepo: categoryRepo,
		render:       render,
		validate:     validate,
	}
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetActive(r.Context())
	if err != nil {
		log.Printf("CategoryHandler.GetCategories: %v", err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Error fetching categories", err)
		return
	}

	helpers.RespondList(h.render, w, len(categories), categories)
}

func (h *CategoryHandler) GetCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	category, err := h.categoryRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("CategoryHandler.GetCategoryBySlug: slug %s: %v", slug, err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Error fetching category", err)
		return
	}
	if category == nil {
		helpers.RespondError(h.render, w, http.StatusNotFound, "Category not found")
		return
	}

	helpers.RespondData(h.render, w, http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Error creating category", err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Error creating category", verrs)
			return
		}
		helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Error creating category", err)
		return
	}

	if req.Slug == "" {
		req.Slug = slugutil.Make(req.Name)
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        strings.ToLower(req.Slug),
		Image:       req.Image,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := h.categoryRepo.Create(r.Context(), category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			helpers.RespondError(h.render, w, http.StatusBadRequest, "Category with this name or slug already exists")
			return
		}
		log.Printf("CategoryHandler.CreateCategory: %v", err)
		helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Error creating category", err)
		return
	}

	helpers.RespondMessage(h.render, w, http.StatusCreated, "Category created successfully", category)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Error updating category", err)
		return
	}

	category, err := h.categoryRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("CategoryHandler.UpdateCategory: slug %s: %v", slug, err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Error updating category", err)
		return
	}
	if category == nil {
		helpers.RespondError(h.render, w, http.StatusNotFound, "Category not found")
		return
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Slug != "" {
		category.Slug = strings.ToLower(req.Slug)
	}
	if req.Image != "" {
		category.Image = req.Image
	}
	if req.Description != "" {
		category.Description = req.Description
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := h.categoryRepo.Update(r.Context(), category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			helpers.RespondError(h.render, w, http.StatusBadRequest, "Category with this name or slug already exists")
			return
		}
		log.Printf("CategoryHandler.UpdateCategory: slug %s: %v", slug, err)
		helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Error updating category", err)
		return
	}

	helpers.RespondMessage(h.render, w, http.StatusOK, "Category updated successfully", category)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	deleted, err := h.categoryRepo.DeleteBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("CategoryHandler.DeleteCategory: slug %s: %v", slug, err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Error deleting category", err)
		return
	}
	if !deleted {
		helpers.RespondError(h.render, w, http.StatusNotFound, "Category not found")
		return
	}

	helpers.RespondMessage(h.render, w, http.StatusOK, "Category deleted successfully", nil)
}
