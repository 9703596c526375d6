package main

import (
	"github.com/rs/zerolog"

	"lawmanBack/internal/config"
	"lawmanBack/internal/handlers"
	"lawmanBack/internal/services"
	"lawmanBack/utils"
)

type application struct {
	logger         zerolog.Logger
	cfg            config.Config
	tokens         *utils.Manager
	serviceHandler *handlers.ServiceHandler
	reviewsHandler *handlers.ReviewHandler
	tokenHandler   *handlers.TokenHandler
}

func initializeApp(serviceRepo services.ServiceStore, reviewRepo services.ReviewStore, tokens *utils.Manager, cfg config.Config, log zerolog.Logger) *application {
	// Services
	serviceService := &services.ServiceService{
		ServiceRepo:  serviceRepo,
		DefaultLimit: cfg.Listing.DefaultLimit,
		MaxLimit:     cfg.Listing.MaxLimit,
	}
	reviewsService := &services.ReviewService{ReviewsRepo: reviewRepo}

	// Handlers
	serviceHandler := &handlers.ServiceHandler{Service: serviceService}
	reviewsHandler := &handlers.ReviewHandler{Service: reviewsService}
	tokenHandler := &handlers.TokenHandler{Tokens: tokens}

	return &application{
		logger:         log,
		cfg:            cfg,
		tokens:         tokens,
		serviceHandler: serviceHandler,
		reviewsHandler: reviewsHandler,
		tokenHandler:   tokenHandler,
	}
}
