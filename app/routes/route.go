package routes

import (
	"github.com/chicstyle/go-boutique/app/configs"
	"github.com/chicstyle/go-boutique/app/handlers"
	"github.com/chicstyle/go-boutique/app/handlers/admin"
	"github.com/chicstyle/go-boutique/app/helpers"
	"github.com/chicstyle/go-boutique/app/middlewares"
	"github.com/chicstyle/go-boutique/app/repositories"
	"github.com/chicstyle/go-boutique/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV) *mux.Router {
	rnd := helpers.NewRenderer()
	validate := validator.New()

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db, productRepo)
	orderRepo := repositories.NewOrderRepository(db)
	userRepo := repositories.NewUserRepository(db)

	tokens := services.NewTokenManager(env.JWTSecret)
	orderSvc := services.NewOrderService(orderRepo, env.OrderCurrency)
	stripeSvc := services.NewStripeService(env.StripeSecretKey)
	razorpaySvc := services.NewRazorpayService(env.RazorpayKeyID, env.RazorpayKeySecret)

	productHandler := handlers.NewProductHandler(productRepo, rnd)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, rnd, validate)
	orderHandler := handlers.NewOrderHandler(orderSvc, orderRepo, rnd)
	authHandler := handlers.NewAuthHandler(userRepo, tokens, rnd, validate)
	paymentHandler := handlers.NewPaymentHandler(stripeSvc, razorpaySvc, rnd, env.AppURL, env.OrderCurrency)

	productAdmin := admin.NewProductAdminHandler(productRepo, rnd, validate)
	orderAdmin := admin.NewOrderAdminHandler(orderRepo, rnd)
	dashboard := admin.NewDashboardHandler(productRepo, categoryRepo, rnd)

	requireAuth := middlewares.AuthMiddleware(tokens, rnd)
	requireAdmin := middlewares.AdminMiddleware(rnd)

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	products := api.PathPrefix("/products").Subrouter()
	products.HandleFunc("", productHandler.GetProducts).Methods("GET")
	products.HandleFunc("/flash-sale", productHandler.GetFlashSaleProducts).Methods("GET")
	products.HandleFunc("/category/{category}", productHandler.GetProductsByCategory).Methods("GET")
	products.HandleFunc("/{id}", productHandler.GetProductByID).Methods("GET")

	categories := api.PathPrefix("/categories").Subrouter()
	categories.HandleFunc("", categoryHandler.GetCategories).Methods("GET")
	categories.HandleFunc("", categoryHandler.CreateCategory).Methods("POST")
	categories.HandleFunc("/{slug}", categoryHandler.GetCategoryBySlug).Methods("GET")
	categories.HandleFunc("/{slug}", categoryHandler.UpdateCategory).Methods("PUT")
	categories.HandleFunc("/{slug}", categoryHandler.DeleteCategory).Methods("DELETE")

	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", authHandler.Register).Methods("POST")
	auth.HandleFunc("/login", authHandler.Login).Methods("POST")
	authMe := api.PathPrefix("/auth").Subrouter()
	authMe.Use(requireAuth)
	authMe.HandleFunc("/me", authHandler.Me).Methods("GET")

	orders := api.PathPrefix("/orders").Subrouter()
	orders.Use(requireAuth)
	orders.HandleFunc("", orderHandler.CreateOrder).Methods("POST")
	orders.HandleFunc("", orderHandler.GetUserOrders).Methods("GET")
	orders.HandleFunc("/{id}", orderHandler.GetOrderByID).Methods("GET")

	payments := api.PathPrefix("/payments").Subrouter()
	payments.HandleFunc("/checkout-session", paymentHandler.CreateCheckoutSession).Methods("POST")
	payments.HandleFunc("/verify", paymentHandler.VerifyPayment).Methods("POST")
	payments.HandleFunc("/razorpay/order", paymentHandler.CreateRazorpayOrder).Methods("POST")
	payments.HandleFunc("/razorpay/verify", paymentHandler.VerifyRazorpayPayment).Methods("POST")

	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.Use(requireAuth)
	adminRouter.Use(requireAdmin)
	adminRouter.HandleFunc("/stats", dashboard.GetStats).Methods("GET")
	adminRouter.HandleFunc("/categories", dashboard.GetAllCategories).Methods("GET")
	adminRouter.HandleFunc("/products", productAdmin.GetAllProducts).Methods("GET")
	adminRouter.HandleFunc("/products", productAdmin.CreateProduct).Methods("POST")
	adminRouter.HandleFunc("/products/{id}", productAdmin.UpdateProduct).Methods("PUT")
	adminRouter.HandleFunc("/products/{id}", productAdmin.DeleteProduct).Methods("DELETE")
	adminRouter.HandleFunc("/orders", orderAdmin.GetAllOrders).Methods("GET")
	adminRouter.HandleFunc("/orders/stats", orderAdmin.GetOrderStats).Methods("GET")
	adminRouter.HandleFunc("/orders/{id}/status", orderAdmin.UpdateOrderStatus).Methods("PUT")

	return router
}
