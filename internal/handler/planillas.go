package handler

import (
	"net/http"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/dto"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/service"

	"github.com/gin-gonic/gin"
)

type PlanillaHandler struct{ svc service.PlanillaService }

func NewPlanillaHandler(svc service.PlanillaService) *PlanillaHandler {
	return &PlanillaHandler{svc: svc}
}

// Crear godoc
// @Summary Abre una nueva planilla de cuadre
// @Tags planillas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearPlanillaRequest true "Datos de la planilla"
// @Success 201 {object} dto.PlanillaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/planillas [post]
func (h *PlanillaHandler) Crear(c *gin.Context) {
	var req dto.CrearPlanillaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), actorFromClaims(c), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Lista las planillas visibles para el usuario
// @Tags planillas
// @Produce json
// @Security BearerAuth
// @Param fecha query string false "Filtro por fecha (YYYY-MM-DD)"
// @Success 200 {array} dto.PlanillaResponse
// @Router /v1/planillas [get]
func (h *PlanillaHandler) Listar(c *gin.Context) {
	var fecha *string
	if f := c.Query("fecha"); f != "" {
		fecha = &f
	}
	resp, err := h.svc.Listar(c.Request.Context(), actorFromClaims(c), fecha)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Estadisticas godoc
// @Summary Totales de planillas abiertas, cerradas y valor acumulado
// @Tags planillas
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.EstadisticasResponse
// @Router /v1/planillas/estadisticas [get]
func (h *PlanillaHandler) Estadisticas(c *gin.Context) {
	resp, err := h.svc.Estadisticas(c.Request.Context(), actorFromClaims(c))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary Obtiene una planilla por ID
// @Tags planillas
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de la planilla"
// @Success 200 {object} dto.PlanillaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/planillas/{id} [get]
func (h *PlanillaHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), actorFromClaims(c), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GuardarNovedades godoc
// @Summary Guarda el conjunto completo de novedades de la planilla
// @Tags planillas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de la planilla"
// @Param body body dto.GuardarNovedadesRequest true "Novedades"
// @Success 200 {object} dto.PlanillaResponse
// @Failure 422 {object} apierror.APIError
// @Router /v1/planillas/{id}/novedades [put]
func (h *PlanillaHandler) GuardarNovedades(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.GuardarNovedadesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.GuardarNovedades(c.Request.Context(), actorFromClaims(c), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
