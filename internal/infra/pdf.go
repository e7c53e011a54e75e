package infra

import (
	"bytes"
	"fmt"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateComprobanteCuadre renders the reconciliation receipt for a planilla
// as an in-memory PDF, ready to stream on the HTTP response.
func GenerateComprobanteCuadre(resumen *dto.ResumenResponse) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Comprobante de Cuadre", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, resumen.Empresa, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(4)

	labelW := contentW * 0.55
	valueW := contentW * 0.45

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(labelW, 7, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 7, value, "", 1, "R", false, 0, "")
	}
	rowBold := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(labelW, 7, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 7, value, "", 1, "R", false, 0, "")
	}

	row("Planilla No.", resumen.PlanillaNo)
	row("Fecha", resumen.Fecha)
	row("Vehículo", fmt.Sprintf("%d", resumen.Vehiculo))
	pdf.Ln(3)

	row("Valor planilla", "$"+FormatCOP(resumen.PlanillaValor))
	row("Agotado", "$"+FormatCOP(resumen.Agotado))
	rowBold("Planilla ajustada", "$"+FormatCOP(resumen.PlanillaAjustada))
	pdf.Ln(3)

	row("Total monedas", "$"+FormatCOP(resumen.TotalMonedas))
	row("Total billetes", "$"+FormatCOP(resumen.TotalBilletes))
	rowBold("Total efectivo", "$"+FormatCOP(resumen.TotalEfectivo))
	pdf.Ln(3)

	rowBold("Total legalizado", "$"+FormatCOP(resumen.TotalLegalizado))
	rowBold("Diferencia", "$"+FormatCOP(resumen.Diferencia))
	pdf.Ln(4)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 9, resumen.Veredicto, "", 1, "C", false, 0, "")

	if resumen.Cerrado {
		pdf.SetFont("Helvetica", "I", 9)
		estado := "Planilla cerrada"
		if resumen.CierreConTolerancia {
			estado = "Planilla cerrada con tolerancia"
		}
		pdf.CellFormat(contentW, 6, estado, "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render comprobante: %w", err)
	}
	return buf.Bytes(), nil
}
