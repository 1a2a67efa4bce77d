package routes

import (
	"net/http"
	"time"

	"uniportal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the sign-in endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/auth/google", hb.GoogleSignInHandler)
}

// RegisterTramiteRoutes registers the trámite catalog and filing endpoints.
func RegisterTramiteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/tipos-tramites", hb.GetTiposTramitesHandler)
		// Gin allows one wildcard name per path position, so the detail
		// route reuses :tipo even though it carries the trámite id.
		api.GET("/tramites/:tipo", hb.GetTramitesByTipoHandler)
		api.GET("/tramites/:tipo/details", hb.GetTramiteDetailsHandler)
		api.POST("/registrar-tramite", hb.RegistrarTramiteHandler)
	}
}

// RegisterServicioRoutes registers the service catalog and booking endpoints.
func RegisterServicioRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/tipos-servicios", hb.GetTiposServiciosHandler)
		api.GET("/servicios/:tipo", hb.GetServiciosByTipoHandler)
		api.POST("/registrar-solicitud", hb.RegistrarSolicitudHandler)
	}
}

// RegisterStorageRoutes registers the file upload endpoint.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/upload", hb.UploadFileHandler)
}

// RegisterHealthRoute registers a liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "El servidor está funcionando"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterTramiteRoutes(r, hb)
	RegisterServicioRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)

	// Catch-all for unmatched routes.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ruta no encontrada."})
	})
}
