package handler

import (
	"net/http"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/apierror"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/dto"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/service"

	"github.com/gin-gonic/gin"
)

type SesionHandler struct{ svc service.SesionService }

func NewSesionHandler(svc service.SesionService) *SesionHandler { return &SesionHandler{svc: svc} }

// Ingresar godoc
// @Summary Inicia sesion con los ultimos 4 digitos de la cedula
// @Tags sesion
// @Accept json
// @Produce json
// @Param body body dto.IngresarRequest true "Codigo de ingreso"
// @Success 200 {object} dto.SesionResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/sesion/ingresar [post]
func (h *SesionHandler) Ingresar(c *gin.Context) {
	var req dto.IngresarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Ingresar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
