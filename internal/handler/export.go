package handler

import (
	"fmt"
	"net/http"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/apierror"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct{ svc service.ExportService }

func NewExportHandler(svc service.ExportService) *ExportHandler { return &ExportHandler{svc: svc} }

// ExportarPlanilla godoc
// @Summary Exporta una planilla como archivo XLSX
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path string true "ID de la planilla"
// @Success 200 {file} binary
// @Router /v1/planillas/{id}/export [get]
func (h *ExportHandler) ExportarPlanilla(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	filename, data, err := h.svc.ExportarPlanilla(c.Request.Context(), actorFromClaims(c), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// ExportarCerradas godoc
// @Summary Exporta todas las planillas cerradas como un solo XLSX
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param fecha query string false "Filtro por fecha (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Failure 403 {object} apierror.APIError
// @Router /v1/export/planillas [get]
func (h *ExportHandler) ExportarCerradas(c *gin.Context) {
	var fecha *string
	if f := c.Query("fecha"); f != "" {
		fecha = &f
	}
	filename, data, err := h.svc.ExportarCerradas(c.Request.Context(), actorFromClaims(c), fecha)
	if err != nil {
		responderError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// ImportarOficiales godoc
// @Summary Carga masiva de planillas oficiales desde un XLSX
// @Tags export
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param archivo formData file true "Archivo XLSX"
// @Success 200 {object} dto.ImportOficialesResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/admin/planillas-oficiales/import [post]
func (h *ExportHandler) ImportarOficiales(c *gin.Context) {
	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("archivo XLSX requerido en el campo 'archivo'"))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("no se pudo leer el archivo"))
		return
	}
	defer f.Close()

	resp, err := h.svc.ImportarOficiales(c.Request.Context(), actorFromClaims(c), f)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarOficiales godoc
// @Summary Lista las planillas oficiales cargadas
// @Tags export
// @Produce json
// @Security BearerAuth
// @Param fecha query string false "Filtro por fecha (YYYY-MM-DD)"
// @Success 200 {array} dto.PlanillaOficialResponse
// @Router /v1/admin/planillas-oficiales [get]
func (h *ExportHandler) ListarOficiales(c *gin.Context) {
	var fecha *string
	if f := c.Query("fecha"); f != "" {
		fecha = &f
	}
	resp, err := h.svc.ListarOficiales(c.Request.Context(), actorFromClaims(c), fecha)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
