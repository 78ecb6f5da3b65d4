package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"estatehub/cmd/app"
	"estatehub/internal/config"
	handlers "estatehub/internal/handler"
	"estatehub/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	// Public browse endpoints. Auth middleware still runs but a missing
	// token passes through as an anonymous request.
	api.HandleFunc("/listings", handler.SearchListings).Methods(http.MethodGet)
	api.HandleFunc("/properties/{id}", handler.GetProperty).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(middleware.RequireAuth)

	authed.HandleFunc("/me", handler.GetProfile).Methods(http.MethodGet)
	authed.HandleFunc("/me", handler.UpdateProfile).Methods(http.MethodPut)
	authed.HandleFunc("/me/avatar", handler.UploadAvatar).Methods(http.MethodPost)

	authed.HandleFunc("/properties", handler.CreateProperty).Methods(http.MethodPost)
	authed.HandleFunc("/properties/{id}", handler.UpdateProperty).Methods(http.MethodPut)
	authed.HandleFunc("/properties/{id}", handler.DeleteProperty).Methods(http.MethodDelete)
	authed.HandleFunc("/properties/{id}/sold", handler.ToggleSold).Methods(http.MethodPatch)
	authed.HandleFunc("/my/properties", handler.MyProperties).Methods(http.MethodGet)

	authed.HandleFunc("/media/images", handler.UploadImages).Methods(http.MethodPost)
	authed.HandleFunc("/media/documents/{kind}", handler.UploadDocument).Methods(http.MethodPost)

	admin := authed.PathPrefix("/admin").Subrouter()

	admin.HandleFunc("/users", handler.AdminListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/role", handler.AdminUpdateUserRole).Methods(http.MethodPatch)
	admin.HandleFunc("/users/{id}/verification", handler.AdminToggleVerification).Methods(http.MethodPatch)
	admin.HandleFunc("/properties/pending", handler.AdminListPendingProperties).Methods(http.MethodGet)
	admin.HandleFunc("/properties", handler.AdminListProperties).Methods(http.MethodGet)
	admin.HandleFunc("/properties/{id}/status", handler.AdminUpdatePropertyStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/stats", handler.AdminStats).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.Logging,
		middleware.CORS,
		middleware.Auth(services.Auth),
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
