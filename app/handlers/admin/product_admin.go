package admin

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/chicstyle/go-boutique/app/helpers"
	"github.com/chicstyle/go-boutique/app/models"
	"github.com/chicstyle/go-boutique/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

// ProductRequest is the exhaustive field list a product write may carry.
// Anything outside it is dropped at decode time, so admin writes cannot smuggle
// arbitrary fields into the stored document.
type ProductRequest struct {
	Name          string           `json:"name" validate:"required,max=100"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	Image         string           `json:"image" validate:"required"`
	Category      string           `json:"category" validate:"required"`
	Description   string           `json:"description" validate:"required,max=1000"`
	Discount      *int             `json:"discount" validate:"omitempty,min=0,max=100"`
	IsNew         *bool            `json:"isNew"`
	IsSale        *bool            `json:"isSale"`
	Sizes         []string         `json:"sizes"`
	InStock       *bool            `json:"inStock"`
}

type ProductAdminHandler struct {
	productRepo repositories.ProductRepositoryImpl
	render      *render.Render
	validate    *validator.Validate
}

func NewProductAdminHandler(productRepo repositories.ProductRepositoryImpl, render *render.Render, validate *validator.Validate) *ProductAdminHandler {
	return &ProductAdminHandler{
		productRepo: productRepo,
		render:      render,
		validate:    validate,
	}
}

func (h *ProductAdminHandler) validateRequest(req ProductRequest) error {
	if err := h.validate.Struct(req); err != nil {
		return err
	}
	if req.Price.IsNegative() {
		return errors.New("price cannot be negative")
	}
	if req.OriginalPrice != nil && req.OriginalPrice.IsNegative() {
		return errors.New("original price cannot be negative")
	}
	return nil
}

func (h *ProductAdminHandler) GetAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ProductAdminHandler.GetAllProducts: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Error fetching products")
		return
	}

	helpers.RespondList(h.render, w, len(products), products)
}

func (h *ProductAdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Error creating product", err)
		return
	}

	if err := h.validateRequest(req); err != nil {
		helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Error creating product", err)
		return
	}

	product := &models.Product{
		Name:          req.Name,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Image:         req.Image,
		Category:      req.Category,
		Description:   req.Description,
		Discount:      req.Discount,
		Sizes:         req.Sizes,
		InStock:       true,
	}
	if req.IsNew != nil {
		product.IsNew = *req.IsNew
	}
	if req.IsSale != nil {
		product.IsSale = *req.IsSale
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}

	if err := h.productRepo.Create(r.Context(), product); err != nil {
		log.Printf("ProductAdminHandler.CreateProduct: %v", err)
		helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Error creating product", err)
		return
	}

	helpers.RespondData(h.render, w, http.StatusCreated, product)
}

func (h *ProductAdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Error updating product", err)
		return
	}

	if err := h.validateRequest(req); err != nil {
		helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Error updating product", err)
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("ProductAdminHandler.UpdateProduct: id %s: %v", id, err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Error updating product", err)
		return
	}
	if product == nil {
		helpers.RespondError(h.render, w, http.StatusNotFound, "Product not found")
		return
	}

	product.Name = req.Name
	product.Price = req.Price
	product.OriginalPrice = req.OriginalPrice
	product.Image = req.Image
	product.Category = req.Category
	product.Description = req.Description
	product.Discount = req.Discount
	if len(req.Sizes) > 0 {
		product.Sizes = req.Sizes
	}
	if req.IsNew != nil {
		product.IsNew = *req.IsNew
	}
	if req.IsSale != nil {
		product.IsSale = *req.IsSale
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}

	if err := h.productRepo.Update(r.Context(), product); err != nil {
		log.Printf("ProductAdminHandler.UpdateProduct: id %s: %v", id, err)
		helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Error updating product", err)
		return
	}

	helpers.RespondData(h.render, w, http.StatusOK, product)
}

func (h *ProductAdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.productRepo.Delete(r.Context(), id)
	if err != nil {
		log.Printf("ProductAdminHandler.DeleteProduct: id %s: %v", id, err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Error deleting product")
		return
	}
	if !deleted {
		helpers.RespondError(h.render, w, http.StatusNotFound, "Product not found")
		return
	}

	helpers.RespondMessage(h.render, w, http.StatusOK, "Product deleted successfully", nil)
}
