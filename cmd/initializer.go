package main

import (
	"log"

	"regionsBack/internal/config"
	"regionsBack/internal/handlers"
	"regionsBack/internal/repositories"
	"regionsBack/internal/services"
)

type application struct {
	errorLog        *log.Logger
	infoLog         *log.Logger
	latinHandler    *handlers.RegionHandler
	cyrillicHandler *handlers.RegionHandler
}

func initializeApp(cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	latinRepo := repositories.RegionFileRepository{Path: cfg.Regions.Latin}
	cyrillicRepo := repositories.RegionFileRepository{Path: cfg.Regions.Cyrillic}

	// Services
	latinService := &services.RegionService{RegionRepo: &latinRepo}
	cyrillicService := &services.RegionService{RegionRepo: &cyrillicRepo}

	// Handlers
	latinHandler := &handlers.RegionHandler{Service: latinService}
	cyrillicHandler := &handlers.RegionHandler{Service: cyrillicService}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		latinHandler:    latinHandler,
		cyrillicHandler: cyrillicHandler,
	}
}
