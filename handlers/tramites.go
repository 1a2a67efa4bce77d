package handlers

import (
	"net/http"

	"uniportal/services/tramite"
	"uniportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TramiteHandler handles the trámite catalog and filing endpoints.
type TramiteHandler struct {
	TramiteService tramite.TramiteService
}

// NewTramiteHandler creates a new TramiteHandler instance.
func NewTramiteHandler(svc tramite.TramiteService) *TramiteHandler {
	return &TramiteHandler{TramiteService: svc}
}

// GetTiposTramitesHandler handles GET /api/tipos-tramites.
func (h *TramiteHandler) GetTiposTramitesHandler(c *gin.Context) {
	logger := utils.GetLogger()

	tipos, err := h.TramiteService.GetTipos()
	if err != nil {
		logger.Error("Failed to fetch tramite types", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error obteniendo tipos de trámites."})
		return
	}
	if len(tipos) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No se encontraron tipos de trámites."})
		return
	}

	c.JSON(http.StatusOK, tipos)
}

// GetTramitesByTipoHandler handles GET /api/tramites/:tipo.
func (h *TramiteHandler) GetTramitesByTipoHandler(c *gin.Context) {
	logger := utils.GetLogger()

	tipo := c.Param("tipo")
	if tipo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El tipo de trámite es obligatorio."})
		return
	}

	tramites, err := h.TramiteService.GetByTipo(tipo)
	if err != nil {
		logger.Error("Failed to fetch tramites", zap.String("tipo", tipo), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error obteniendo trámites."})
		return
	}
	if len(tramites) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No se encontraron trámites para este tipo."})
		return
	}

	c.JSON(http.StatusOK, tramites)
}

// GetTramiteDetailsHandler handles GET /api/tramites/:tipo/details. The path
// segment shares its wildcard name with the catalog route but carries the
// trámite id here.
func (h *TramiteHandler) GetTramiteDetailsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("tipo")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El ID del trámite es obligatorio."})
		return
	}

	detalle, err := h.TramiteService.GetDetalle(id)
	if err != nil {
		logger.Error("Failed to fetch tramite details", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error obteniendo detalles del trámite."})
		return
	}
	if detalle == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trámite no encontrado."})
		return
	}

	c.JSON(http.StatusOK, detalle)
}

// RegistrarTramiteHandler handles POST /api/registrar-tramite.
func (h *TramiteHandler) RegistrarTramiteHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		IDUsuario  string   `json:"idUsuario"`
		IDTramite  string   `json:"idTramite"`
		Documentos []string `json:"documentos"`
		Adicional  string   `json:"adicional"`
		Estado     string   `json:"estado"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Los campos 'idUsuario' e 'idTramite' son obligatorios."})
		return
	}
	if req.IDUsuario == "" || req.IDTramite == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Los campos 'idUsuario' e 'idTramite' son obligatorios."})
		return
	}

	realizado, err := h.TramiteService.Registrar(tramite.RegistrarInput{
		IDUsuario:  req.IDUsuario,
		IDTramite:  req.IDTramite,
		Documentos: req.Documentos,
		Adicional:  req.Adicional,
		Estado:     req.Estado,
	})
	if err != nil {
		logger.Error("Failed to register tramite", zap.String("idUsuario", req.IDUsuario), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error registrando trámite."})
		return
	}

	c.JSON(http.StatusCreated, realizado)
}
