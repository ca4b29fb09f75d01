package handlers

import (
	"log"
	"net/http"

	"github.com/chicstyle/go-boutique/app/helpers"
	"github.com/chicstyle/go-boutique/app/repositories"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

const (
	defaultCatalogPageSize = 20
	flashSaleLimit         = 8
)

type ProductHandler struct {
	productRepo repositories.ProductRepositoryImpl
	render      *render.Render
}

func NewProductHandler(productRepo repositories.ProductRepositoryImpl, render *render.Render) *ProductHandler {
	return &ProductHandler{
		productRepo: productRepo,
		render:      render,
	}
}

func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := repositories.ProductFilter{
		Category: r.URL.Query().Get("category"),
		SaleOnly: r.URL.Query().Get("sale") == "true",
		NewOnly:  r.URL.Query().Get("new") == "true",
		Sort:     r.URL.Query().Get("sort"),
	}
	page, limit := helpers.ParsePagination(r, defaultCatalogPageSize)

	products, total, err := h.productRepo.GetFiltered(ctx, filter, limit, (page-1)*limit)
	if err != nil {
		log.Printf("ProductHandler.GetProducts: %v", err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Error fetching products", err)
		return
	}

	helpers.RespondPagedList(h.render, w, len(products), total, page, helpers.TotalPages(total, limit), products)
}

func (h *ProductHandler) GetFlashSaleProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetFlashSale(r.Context(), flashSaleLimit)
	if err != nil {
		log.Printf("ProductHandler.GetFlashSaleProducts: %v", err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Error fetching flash sale products", err)
		return
	}

	helpers.RespondList(h.render, w, len(products), products)
}

func (h *ProductHandler) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	page, limit := helpers.ParsePagination(r, defaultCatalogPageSize)

	products, total, err := h.productRepo.GetByCategoryPaginated(r.Context(), category, limit, (page-1)*limit)
	if err != nil {
		log.Printf("ProductHandler.GetProductsByCategory: category %s: %v", category, err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Error fetching products by category", err)
		return
	}

	helpers.RespondPagedList(h.render, w, len(products), total, page, helpers.TotalPages(total, limit), products)
}

func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("ProductHandler.GetProductByID: id %s: %v", id, err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Error fetching product", err)
		return
	}
	if product == nil {
		helpers.RespondError(h.render, w, http.StatusNotFound, "Product not found")
		return
	}

	helpers.RespondData(h.render, w, http.StatusOK, product)
}
