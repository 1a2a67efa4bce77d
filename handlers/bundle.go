// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Auth endpoints
	GoogleSignInHandler gin.HandlerFunc

	// Trámite endpoints
	GetTiposTramitesHandler  gin.HandlerFunc
	GetTramitesByTipoHandler gin.HandlerFunc
	GetTramiteDetailsHandler gin.HandlerFunc
	RegistrarTramiteHandler  gin.HandlerFunc

	// Servicio endpoints
	GetTiposServiciosHandler  gin.HandlerFunc
	GetServiciosByTipoHandler gin.HandlerFunc
	RegistrarSolicitudHandler gin.HandlerFunc

	// Storage endpoints
	UploadFileHandler gin.HandlerFunc
}
