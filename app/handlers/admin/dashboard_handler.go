package admin

import (
	"log"
	"net/http"

	"github.com/chicstyle/go-boutique/app/helpers"
	"github.com/chicstyle/go-boutique/app/repositories"
	"github.com/unrolled/render"
)

type DashboardHandler struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	render       *render.Render
}

func NewDashboardHandler(productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, render *render.Render) *DashboardHandler {
	return &DashboardHandler{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		render:       render,
	}
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	totalProducts, err := h.productRepo.Count(ctx)
	if err != nil {
		log.Printf("DashboardHandler.GetStats: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Error fetching dashboard stats")
		return
	}
	inStockProducts, err := h.productRepo.CountByStock(ctx, true)
	if err != nil {
		log.Printf("DashboardHandler.GetStats: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Error fetching dashboard stats")
		return
	}
	outOfStockProducts, err := h.productRepo.CountByStock(ctx, false)
	if err != nil {
		log.Printf("DashboardHandler.GetStats: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Error fetching dashboard stats")
		return
	}
	saleProducts, err := h.productRepo.CountOnSale(ctx)
	if err != nil {
		log.Printf("DashboardHandler.GetStats: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Error fetching dashboard stats")
		return
	}
	totalCategories, err := h.categoryRepo.Count(ctx)
	if err != nil {
		log.Printf("DashboardHandler.GetStats: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Error fetching dashboard stats")
		return
	}

	helpers.RespondData(h.render, w, http.StatusOK, map[string]int64{
		"totalProducts":      totalProducts,
		"inStockProducts":    inStockProducts,
		"outOfStockProducts": outOfStockProducts,
		"saleProducts":       saleProducts,
		"totalCategories":    totalCategories,
	})
}

func (h *DashboardHandler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("DashboardHandler.GetAllCategories: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Error fetching categories")
		return
	}

	helpers.RespondList(h.render, w, len(categories), categories)
}
