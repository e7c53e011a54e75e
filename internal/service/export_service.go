package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/dto"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/infra"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/model"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Column order of the batch export of closed planillas.
var columnasCerradas = []string{
	"Empresa", "Fecha", "Vehiculo", "Planilla_No", "Valor_Planilla",
	"Monedas", "Billetes",
	"Dev_Paseo", "Dev_Mala", "Consignacion_Brinks", "Consignacion_Banco",
	"Redespacho_Manana", "Peajes", "Combustible", "Fletes",
	"Acompanamiento", "Gasto_Oficina", "Descuento_Clientes", "Vale", "Agotado",
	"Total_Efectivo", "Planilla_Ajustada", "Total_Legalizado", "Diferencia",
	"Veredicto", "Usuario", "Codigo_Usuario", "Rol", "Estado",
}

type ExportService interface {
	// ExportarPlanilla renders one planilla as a two-column XLSX workbook.
	ExportarPlanilla(ctx context.Context, actor Actor, id uuid.UUID) (string, []byte, error)
	// ExportarCerradas renders every closed planilla (optionally one date) as a
	// single tabular workbook. Admin only.
	ExportarCerradas(ctx context.Context, actor Actor, fecha *string) (string, []byte, error)
	// ImportarOficiales bulk-loads official manifest values from an XLSX file.
	// Rows that cannot be parsed are counted, not fatal. Admin only.
	ImportarOficiales(ctx context.Context, actor Actor, r io.Reader) (*dto.ImportOficialesResponse, error)
	ListarOficiales(ctx context.Context, actor Actor, fecha *string) ([]dto.PlanillaOficialResponse, error)
}

type exportService struct {
	planillaRepo repository.PlanillaRepository
	denomRepo    repository.DenominacionRepository
	oficialRepo  repository.PlanillaOficialRepository
}

func NewExportService(planillaRepo repository.PlanillaRepository, denomRepo repository.DenominacionRepository, oficialRepo repository.PlanillaOficialRepository) ExportService {
	return &exportService{planillaRepo: planillaRepo, denomRepo: denomRepo, oficialRepo: oficialRepo}
}

func (s *exportService) ExportarPlanilla(ctx context.Context, actor Actor, id uuid.UUID) (string, []byte, error) {
	p, err := s.planillaRepo.FindByID(ctx, id)
	if err != nil {
		return "", nil, ErrPlanillaNoEncontrada
	}
	if err := autorizarLectura(actor, p); err != nil {
		return "", nil, err
	}
	rows, err := s.denomRepo.ListByCuadres(ctx, []uuid.UUID{p.ID})
	if err != nil {
		return "", nil, err
	}
	derivados := calcularDerivados(p, rows)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	campos := [][2]string{
		{"Empresa", p.Empresa},
		{"Fecha", p.Fecha.Format("2006-01-02")},
		{"Vehiculo", strconv.Itoa(p.Vehiculo)},
		{"Planilla_No", p.PlanillaNo},
		{"Valor_Planilla", infra.FormatCOP(p.PlanillaValor)},
		{"Monedas", formatConteo(rows, model.TipoMoneda)},
		{"Billetes", formatConteo(rows, model.TipoBillete)},
		{"Dev_Paseo", infra.FormatCOP(p.DevPaseo)},
		{"Dev_Mala", infra.FormatCOP(p.DevMala)},
		{"Consignacion_Brinks", infra.FormatCOP(p.ConsignacionBrinks)},
		{"Consignacion_Banco", infra.FormatCOP(p.ConsignacionBanco)},
		{"Redespacho_Manana", infra.FormatCOP(p.RedespachoManana)},
		{"Peajes", infra.FormatCOP(p.Peajes)},
		{"Combustible", infra.FormatCOP(p.Combustible)},
		{"Fletes", infra.FormatCOP(p.Fletes)},
		{"Acompanamiento", infra.FormatCOP(p.Acompanamiento)},
		{"Gasto_Oficina", infra.FormatCOP(p.GastoOficina)},
		{"Descuento_Clientes", infra.FormatCOP(p.DescuentoClientes)},
		{"Vale", infra.FormatCOP(p.Vale)},
		{"Agotado", infra.FormatCOP(p.Agotado)},
		{"Total_Efectivo", infra.FormatCOP(derivados.TotalEfectivo)},
		{"Planilla_Ajustada", infra.FormatCOP(derivados.PlanillaAjustada)},
		{"Total_Legalizado", infra.FormatCOP(derivados.TotalLegalizado)},
		{"Diferencia", infra.FormatCOP(derivados.Diferencia)},
		{"Veredicto", veredicto(derivados.Diferencia)},
		{"Estado", estadoPlanilla(p)},
	}
	for i, campo := range campos {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		_ = f.SetCellValue(sheet, cell, campo[0])
		cell, _ = excelize.CoordinatesToCellName(2, i+1)
		_ = f.SetCellValue(sheet, cell, campo[1])
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, fmt.Errorf("export: escribir xlsx: %w", err)
	}
	return fmt.Sprintf("Cuadre_%s.xlsx", p.PlanillaNo), buf.Bytes(), nil
}

func (s *exportService) ExportarCerradas(ctx context.Context, actor Actor, fecha *string) (string, []byte, error) {
	if !actor.EsAdmin() {
		return "", nil, ErrNoAutorizado
	}
	filter := repository.PlanillaFilter{SoloCerradas: true}
	sufijo := time.Now().Format("2006-01-02")
	if fecha != nil && *fecha != "" {
		f, err := time.Parse("2006-01-02", *fecha)
		if err != nil {
			return "", nil, err
		}
		filter.Fecha = &f
		sufijo = *fecha
	}
	planillas, err := s.planillaRepo.List(ctx, filter)
	if err != nil {
		return "", nil, err
	}

	ids := make([]uuid.UUID, len(planillas))
	for i := range planillas {
		ids[i] = planillas[i].ID
	}
	denomRows, err := s.denomRepo.ListByCuadres(ctx, ids)
	if err != nil {
		return "", nil, err
	}
	porCuadre := make(map[uuid.UUID][]model.CuadreDenominacion)
	for _, row := range denomRows {
		porCuadre[row.CuadreID] = append(porCuadre[row.CuadreID], row)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for col, nombre := range columnasCerradas {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, nombre)
	}
	for i := range planillas {
		p := &planillas[i]
		rows := porCuadre[p.ID]
		derivados := calcularDerivados(p, rows)

		usuario, codigo, rol := "", "", ""
		if p.Personal != nil {
			usuario = p.Personal.Nombre
			codigo = p.Personal.Ultimos4
			rol = p.Personal.Rol
		}
		valores := []string{
			p.Empresa, p.Fecha.Format("2006-01-02"), strconv.Itoa(p.Vehiculo),
			p.PlanillaNo, infra.FormatCOP(p.PlanillaValor),
			formatConteo(rows, model.TipoMoneda), formatConteo(rows, model.TipoBillete),
			infra.FormatCOP(p.DevPaseo), infra.FormatCOP(p.DevMala),
			infra.FormatCOP(p.ConsignacionBrinks), infra.FormatCOP(p.ConsignacionBanco),
			infra.FormatCOP(p.RedespachoManana), infra.FormatCOP(p.Peajes),
			infra.FormatCOP(p.Combustible), infra.FormatCOP(p.Fletes),
			infra.FormatCOP(p.Acompanamiento), infra.FormatCOP(p.GastoOficina),
			infra.FormatCOP(p.DescuentoClientes), infra.FormatCOP(p.Vale),
			infra.FormatCOP(p.Agotado),
			infra.FormatCOP(derivados.TotalEfectivo), infra.FormatCOP(derivados.PlanillaAjustada),
			infra.FormatCOP(derivados.TotalLegalizado), infra.FormatCOP(derivados.Diferencia),
			veredicto(derivados.Diferencia),
			usuario, codigo, rol, estadoPlanilla(p),
		}
		for col, v := range valores {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, fmt.Errorf("export: escribir xlsx: %w", err)
	}
	return fmt.Sprintf("Planillas_Cerradas_%s.xlsx", sufijo), buf.Bytes(), nil
}

func (s *exportService) ImportarOficiales(ctx context.Context, actor Actor, r io.Reader) (*dto.ImportOficialesResponse, error) {
	if !actor.EsAdmin() {
		return nil, ErrNoAutorizado
	}
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("import: abrir xlsx: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("import: leer filas: %w", err)
	}
	if len(rows) == 0 {
		return &dto.ImportOficialesResponse{}, nil
	}

	colFecha, colPlanilla, colValor := mapearColumnas(rows[0])
	if colFecha < 0 || colPlanilla < 0 || colValor < 0 {
		return nil, fmt.Errorf("import: faltan columnas fecha, planilla_no o valor")
	}

	resp := &dto.ImportOficialesResponse{}
	for _, row := range rows[1:] {
		if filaVacia(row) {
			continue
		}
		resp.TotalFilas++

		fecha, err := normalizarFecha(celda(row, colFecha))
		if err != nil {
			resp.Invalidas++
			continue
		}
		planillaNo := strings.TrimSpace(celda(row, colPlanilla))
		if planillaNo == "" {
			resp.Invalidas++
			continue
		}
		valor, err := limpiarValor(celda(row, colValor))
		if err != nil || valor.IsNegative() {
			resp.Invalidas++
			continue
		}

		oficial := &model.PlanillaOficial{Fecha: fecha, PlanillaNo: planillaNo, Valor: valor}
		if err := s.oficialRepo.Create(ctx, oficial); err != nil {
			log.Error().Err(err).Str("planilla_no", planillaNo).Msg("no se pudo insertar la planilla oficial")
			resp.Errores++
			continue
		}
		resp.Insertadas++
	}
	return resp, nil
}

func (s *exportService) ListarOficiales(ctx context.Context, actor Actor, fecha *string) ([]dto.PlanillaOficialResponse, error) {
	if !actor.EsAdmin() {
		return nil, ErrNoAutorizado
	}
	var filtro *time.Time
	if fecha != nil && *fecha != "" {
		f, err := time.Parse("2006-01-02", *fecha)
		if err != nil {
			return nil, err
		}
		filtro = &f
	}
	oficiales, err := s.oficialRepo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PlanillaOficialResponse, len(oficiales))
	for i, o := range oficiales {
		resp[i] = dto.PlanillaOficialResponse{
			ID:         o.ID.String(),
			Fecha:      o.Fecha.Format("2006-01-02"),
			PlanillaNo: o.PlanillaNo,
			Valor:      o.Valor,
		}
	}
	return resp, nil
}

// formatConteo aggregates the counted rows of one tipo into a readable cell:
// "100.000 x 3 | 50.000 x 1", ordered by descending denomination.
func formatConteo(rows []model.CuadreDenominacion, tipo string) string {
	cantidades := make(map[int64]int)
	for _, row := range rows {
		if row.Tipo == tipo {
			cantidades[row.Denominacion.IntPart()] += row.Cantidad
		}
	}

	orden := model.DenominacionesBillete
	if tipo == model.TipoMoneda {
		orden = model.DenominacionesMoneda
	}
	partes := make([]string, 0, len(orden))
	for _, denom := range orden {
		if cantidades[denom] == 0 {
			continue
		}
		partes = append(partes, fmt.Sprintf("%s x %d", infra.FormatCOP(decimal.NewFromInt(denom)), cantidades[denom]))
	}
	return strings.Join(partes, " | ")
}

func estadoPlanilla(p *model.CuadrePlanilla) string {
	if !p.Cerrado {
		return "ABIERTA"
	}
	if p.CierreConTolerancia {
		return "CERRADA CON TOLERANCIA"
	}
	return "CERRADA"
}

// mapearColumnas resolves the header indices by name, case-insensitive and
// tolerant of the spellings seen in the agencies' files.
func mapearColumnas(header []string) (fecha, planilla, valor int) {
	fecha, planilla, valor = -1, -1, -1
	for i, h := range header {
		switch normalizarEncabezado(h) {
		case "fecha":
			fecha = i
		case "planilla_no", "planilla", "no_planilla", "numero_planilla":
			planilla = i
		case "valor", "valor_planilla":
			valor = i
		}
	}
	return fecha, planilla, valor
}

func normalizarEncabezado(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, ".", "")
	return h
}

// normalizarFecha accepts the date spellings that appear in the uploaded
// files: ISO, dd/mm/yyyy and raw Excel serial numbers.
func normalizarFecha(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("fecha vacía")
	}
	for _, layout := range []string{"2006-01-02", "02/01/2006", "2/1/2006", "02-01-2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha no reconocida: %q", s)
}

// limpiarValor strips currency decoration ("$ 1.250.000,00") down to a plain
// whole-peso amount.
func limpiarValor(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, " ", "")
	// Comma is always a decimal separator in these files; cash amounts carry
	// no cents, so everything after it is dropped.
	if idx := strings.Index(s, ","); idx >= 0 {
		s = s[:idx]
	}
	s = strings.ReplaceAll(s, ".", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("valor vacío")
	}
	return decimal.NewFromString(s)
}

func celda(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func filaVacia(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
