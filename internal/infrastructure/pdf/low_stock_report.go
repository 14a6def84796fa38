// Package pdf genera el reporte descargable de alertas de stock bajo.
//
// Layout de la página A4 horizontal:
//
//	┌──────────────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa               │  ALERTAS DE STOCK BAJO + Fecha       │
//	│  FILTROS: límite / inactivos / override / umbrales                    │
//	│  ────────────────────────────────────────────────────────────────────│
//	│  TABLA: Producto | SKU | Bodega | Disp. | Umbral | Días | Prom | Prov.│
//	│  ────────────────────────────────────────────────────────────────────│
//	│  PIE: total de alertas / mostradas                                    │
//	└──────────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stockalert-api/internal/application/dto"
	appinventory "github.com/jhoicas/stockalert-api/internal/application/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorCritical = &props.Color{Red: 170, Green: 20, Blue: 20}
	colorStripe   = &props.Color{Red: 240, Green: 244, Blue: 248}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// LowStockReportGenerator implementa inventory.ReportRenderer usando Maroto v2.
type LowStockReportGenerator struct{}

var _ appinventory.ReportRenderer = (*LowStockReportGenerator)(nil)

// NewLowStockReportGenerator construye el generador.
func NewLowStockReportGenerator() *LowStockReportGenerator { return &LowStockReportGenerator{} }

// RenderLowStockReport genera el PDF del listado (ya ordenado y limitado) y devuelve sus bytes.
func (g *LowStockReportGenerator) RenderLowStockReport(_ context.Context, report *dto.LowStockAlertsResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Alertas de stock bajo", true).
		WithAuthor(report.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(filtersRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(report.Alerts) == 0 {
		msg := report.Message
		if msg == "" {
			msg = "Sin alertas de stock bajo"
		}
		m.AddRows(text.NewRow(12, msg, props.Text{Size: 10, Align: align.Center, Top: 4, Color: colorGray}))
	} else {
		m.AddRows(tableHeaderRow())
		m.AddRows(tableDetailRows(report.Alerts)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report *dto.LowStockAlertsResponse) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(report.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Empresa: "+report.FiltersApplied.CompanyID, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ALERTAS DE STOCK BAJO", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04 UTC"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func filtersRow(report *dto.LowStockAlertsResponse) core.Row {
	f := report.FiltersApplied
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Límite: %d   |   Incluye inactivos: %s   |   Umbral forzado: %s   |   Umbrales: %s",
				f.Limit, yesNo(f.IncludeInactive), f.ThresholdOverride, formatThresholds(report.ThresholdsUsed),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

type column struct {
	label string
	size  int
	align align.Type
}

var columns = []column{
	{"Producto", 3, align.Left},
	{"SKU", 1, align.Left},
	{"Bodega", 2, align.Left},
	{"Disp.", 1, align.Right},
	{"Umbral", 1, align.Right},
	{"Días", 1, align.Right},
	{"Prom./día", 1, align.Right},
	{"Proveedor", 2, align.Left},
}

func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows una fila por alerta; stock en o bajo cero se resalta.
func tableDetailRows(alerts []dto.LowStockAlertDTO) []core.Row {
	result := make([]core.Row, 0, len(alerts))
	for i, a := range alerts {
		values := []string{
			a.ProductName,
			a.SKU,
			a.WarehouseName,
			strconv.FormatInt(a.CurrentStock, 10),
			strconv.Itoa(a.Threshold),
			formatDays(a.DaysUntilStockout),
			a.AverageDailySales.StringFixed(2),
			a.Supplier.Name,
		}
		cols := make([]core.Col, 0, len(columns))
		for j, c := range columns {
			style := props.Text{Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1}
			if j == 3 && a.CurrentStock <= 0 {
				style.Color = colorCritical
				style.Style = fontstyle.Bold
			}
			cols = append(cols, col.New(c.size).Add(text.New(values[j], style)))
		}
		r := row.New(6).Add(cols...)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, r)
	}
	return result
}

func footerRow(report *dto.LowStockAlertsResponse) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("Alertas: %d   |   Mostradas: %d", report.TotalAlerts, report.LimitedAlerts),
			props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 2},
		)),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func formatDays(days *int64) string {
	if days == nil {
		return "n/d"
	}
	return strconv.FormatInt(*days, 10)
}

func yesNo(b bool) string {
	if b {
		return "sí"
	}
	return "no"
}

// formatThresholds serializa la tabla en orden alfabético: "clothing=25, default=20, ...".
func formatThresholds(t map[string]int) string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, t[k]))
	}
	return strings.Join(parts, ", ")
}
