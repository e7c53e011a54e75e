package handler

import (
	"fmt"
	"net/http"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/infra"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/service"

	"github.com/gin-gonic/gin"
)

type CuadreHandler struct{ svc service.CuadreService }

func NewCuadreHandler(svc service.CuadreService) *CuadreHandler { return &CuadreHandler{svc: svc} }

// Resumen godoc
// @Summary Calcula el resumen de cuadre de la planilla
// @Tags cuadre
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de la planilla"
// @Success 200 {object} dto.ResumenResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/planillas/{id}/resumen [get]
func (h *CuadreHandler) Resumen(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Resumen(c.Request.Context(), actorFromClaims(c), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cerrar godoc
// @Summary Cierra la planilla si la diferencia esta dentro de tolerancia
// @Tags cuadre
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de la planilla"
// @Success 200 {object} dto.CerrarResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/planillas/{id}/cerrar [post]
func (h *CuadreHandler) Cerrar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Cerrar(c.Request.Context(), actorFromClaims(c), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Comprobante godoc
// @Summary Descarga el comprobante de cuadre en PDF
// @Tags cuadre
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "ID de la planilla"
// @Success 200 {file} binary
// @Router /v1/planillas/{id}/comprobante.pdf [get]
func (h *CuadreHandler) Comprobante(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resumen, err := h.svc.Resumen(c.Request.Context(), actorFromClaims(c), id)
	if err != nil {
		responderError(c, err)
		return
	}
	data, err := infra.GenerateComprobanteCuadre(resumen)
	if err != nil {
		responderError(c, err)
		return
	}
	filename := fmt.Sprintf("Comprobante_%s.pdf", resumen.PlanillaNo)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
