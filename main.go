// File: uniportal/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"uniportal/config"
	"uniportal/database"
	servicioRepoPkg "uniportal/database/repository/servicio"
	tramiteRepoPkg "uniportal/database/repository/tramite"
	userRepoPkg "uniportal/database/repository/user"
	"uniportal/handlers"
	"uniportal/routes"
	"uniportal/services/servicio"
	"uniportal/services/tramite"
	"uniportal/services/user"
	"uniportal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	s3StorageService, err := utils.S3Storage()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize S3 storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	tramiteRepo := tramiteRepoPkg.NewMongoTramiteRepo()
	servicioRepo := servicioRepoPkg.NewMongoServicioRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	tramiteService := &tramite.DefaultTramiteService{
		Repo: tramiteRepo,
	}
	servicioService := &servicio.DefaultServicioService{
		Repo: servicioRepo,
	}

	authHandler := handlers.NewAuthHandler(userService)
	tramiteHandler := handlers.NewTramiteHandler(tramiteService)
	servicioHandler := handlers.NewServicioHandler(servicioService)
	storageHandler := handlers.NewStorageHandler(s3StorageService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		GoogleSignInHandler: authHandler.GoogleSignInHandler,

		// Trámite endpoints.
		GetTiposTramitesHandler:  tramiteHandler.GetTiposTramitesHandler,
		GetTramitesByTipoHandler: tramiteHandler.GetTramitesByTipoHandler,
		GetTramiteDetailsHandler: tramiteHandler.GetTramiteDetailsHandler,
		RegistrarTramiteHandler:  tramiteHandler.RegistrarTramiteHandler,

		// Servicio endpoints.
		GetTiposServiciosHandler:  servicioHandler.GetTiposServiciosHandler,
		GetServiciosByTipoHandler: servicioHandler.GetServiciosByTipoHandler,
		RegistrarSolicitudHandler: servicioHandler.RegistrarSolicitudHandler,

		// Storage endpoints.
		UploadFileHandler: storageHandler.UploadFileHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
