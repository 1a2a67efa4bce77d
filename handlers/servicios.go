package handlers

import (
	"net/http"
	"time"

	"uniportal/services/servicio"
	"uniportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServicioHandler handles the service catalog and booking endpoints.
type ServicioHandler struct {
	ServicioService servicio.ServicioService
}

// NewServicioHandler creates a new ServicioHandler instance.
func NewServicioHandler(svc servicio.ServicioService) *ServicioHandler {
	return &ServicioHandler{ServicioService: svc}
}

// GetTiposServiciosHandler handles GET /api/tipos-servicios.
func (h *ServicioHandler) GetTiposServiciosHandler(c *gin.Context) {
	logger := utils.GetLogger()

	tipos, err := h.ServicioService.GetTipos()
	if err != nil {
		logger.Error("Failed to fetch service types", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor."})
		return
	}
	if len(tipos) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No se encontraron tipos de servicios."})
		return
	}

	c.JSON(http.StatusOK, tipos)
}

// GetServiciosByTipoHandler handles GET /api/servicios/:tipo.
func (h *ServicioHandler) GetServiciosByTipoHandler(c *gin.Context) {
	logger := utils.GetLogger()

	tipo := c.Param("tipo")
	servicios, err := h.ServicioService.GetByTipo(tipo)
	if err != nil {
		logger.Error("Failed to fetch services", zap.String("tipo", tipo), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor."})
		return
	}
	if len(servicios) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No se encontraron servicios."})
		return
	}

	c.JSON(http.StatusOK, servicios)
}

// RegistrarSolicitudHandler handles POST /api/registrar-solicitud. Required
// fields are checked up front, mirroring the trámite filing endpoint.
func (h *ServicioHandler) RegistrarSolicitudHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		IDUsuario      string `json:"idUsuario"`
		IDServicio     string `json:"idServicio"`
		HorarioElegido string `json:"horarioElegido"`
		Estado         string `json:"estado"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Los campos 'idUsuario', 'idServicio' y 'horarioElegido' son obligatorios."})
		return
	}
	if req.IDUsuario == "" || req.IDServicio == "" || req.HorarioElegido == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Los campos 'idUsuario', 'idServicio' y 'horarioElegido' son obligatorios."})
		return
	}

	horario, err := time.Parse(time.RFC3339, req.HorarioElegido)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El campo 'horarioElegido' no es una fecha válida."})
		return
	}

	solicitud, err := h.ServicioService.Registrar(servicio.RegistrarInput{
		IDUsuario:      req.IDUsuario,
		IDServicio:     req.IDServicio,
		HorarioElegido: horario,
		Estado:         req.Estado,
	})
	if err != nil {
		logger.Error("Failed to register booking", zap.String("idUsuario", req.IDUsuario), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor."})
		return
	}

	c.JSON(http.StatusCreated, solicitud)
}
