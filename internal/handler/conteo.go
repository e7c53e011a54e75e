package handler

import (
	"net/http"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/apierror"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/dto"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/model"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/service"

	"github.com/gin-gonic/gin"
)

type ConteoHandler struct{ svc service.ConteoService }

func NewConteoHandler(svc service.ConteoService) *ConteoHandler { return &ConteoHandler{svc: svc} }

// tipoFromPath maps the plural path segment to the stored tipo.
func tipoFromPath(c *gin.Context) (string, bool) {
	switch c.Param("tipo") {
	case "monedas":
		return model.TipoMoneda, true
	case "billetes":
		return model.TipoBillete, true
	default:
		c.JSON(http.StatusBadRequest, apierror.New("tipo de conteo inválido: use monedas o billetes"))
		return "", false
	}
}

// Registrar godoc
// @Summary Registra un lote de conteo de monedas o billetes
// @Tags conteo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de la planilla"
// @Param tipo path string true "monedas | billetes"
// @Param body body dto.RegistrarConteoRequest true "Lote de conteo"
// @Success 201 {object} dto.ConteoResponse
// @Failure 422 {object} apierror.APIError
// @Router /v1/planillas/{id}/conteo/{tipo} [post]
func (h *ConteoHandler) Registrar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tipo, ok := tipoFromPath(c)
	if !ok {
		return
	}
	var req dto.RegistrarConteoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), actorFromClaims(c), id, tipo, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Lista los registros de conteo de un tipo
// @Tags conteo
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de la planilla"
// @Param tipo path string true "monedas | billetes"
// @Success 200 {object} dto.ConteoResponse
// @Router /v1/planillas/{id}/conteo/{tipo} [get]
func (h *ConteoHandler) Listar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tipo, ok := tipoFromPath(c)
	if !ok {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), actorFromClaims(c), id, tipo)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
