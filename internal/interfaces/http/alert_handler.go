package http

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockalert-api/internal/application/dto"
	appinventory "github.com/jhoicas/stockalert-api/internal/application/inventory"
	"github.com/jhoicas/stockalert-api/internal/domain"
	"github.com/jhoicas/stockalert-api/internal/domain/inventory"
)

// AlertHandler expone las alertas de stock bajo de una empresa (solo lectura).
type AlertHandler struct {
	uc       *appinventory.LowStockAlertUseCase
	validate *validator.Validate
	errs     *ErrorResponder
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *appinventory.LowStockAlertUseCase, errs *ErrorResponder) *AlertHandler {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("query"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &AlertHandler{uc: uc, validate: v, errs: errs}
}

// LowStock godoc
// @Summary      Alertas de stock bajo
// @Description  Pares producto-bodega con ventas en los últimos 30 días y stock disponible
//
//	en o bajo el umbral de su categoría, ordenados por urgencia.
//
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        company_id          path   string  true   "ID de la empresa"
// @Param        limit               query  int     false  "Máximo de alertas (1-1000)"  default(100)
// @Param        include_inactive    query  bool    false  "Incluir productos inactivos"  default(false)
// @Param        threshold_override  query  int     false  "Umbral único para todas las categorías; si no es entero se ignora"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	q, err := h.parseQuery(c)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	resp, err := h.uc.GenerateAlerts(c.Context(), c.Params("company_id"), q)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(resp)
}

// Summary godoc
// @Summary      Resumen de stock bajo
// @Description  Conteo de alertas bajas y críticas por bodega y por categoría.
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        company_id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock/summary [get]
func (h *AlertHandler) Summary(c *fiber.Ctx) error {
	resp, err := h.uc.GenerateSummary(c.Context(), c.Params("company_id"))
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(resp)
}

// Report godoc
// @Summary      Reporte PDF de stock bajo
// @Description  Mismo listado que /alerts/low-stock renderizado en A4 horizontal.
// @Tags         alerts
// @Security     Bearer
// @Produce      application/pdf
// @Param        company_id          path   string  true   "ID de la empresa"
// @Param        limit               query  int     false  "Máximo de alertas (1-1000)"  default(100)
// @Param        include_inactive    query  bool    false  "Incluir productos inactivos"  default(false)
// @Param        threshold_override  query  int     false  "Umbral único para todas las categorías; si no es entero se ignora"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock/report.pdf [get]
func (h *AlertHandler) Report(c *fiber.Ctx) error {
	q, err := h.parseQuery(c)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	companyID := c.Params("company_id")
	doc, err := h.uc.GenerateAlertsReport(c.Context(), companyID, q)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="low-stock-%s.pdf"`, companyID))
	return c.Send(doc)
}

// parseQuery convierte los query params en un valor tipado; limit o include_inactive
// mal formados son un error de validación, nunca un default silencioso.
func (h *AlertHandler) parseQuery(c *fiber.Ctx) (dto.LowStockAlertQuery, error) {
	q := dto.LowStockAlertQuery{Limit: inventory.DefaultAlertLimit}

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return q, fmt.Errorf("%w: limit debe ser un entero", domain.ErrInvalidInput)
		}
		q.Limit = n
	}
	if raw := c.Query("include_inactive"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return q, fmt.Errorf("%w: include_inactive debe ser true o false", domain.ErrInvalidInput)
		}
		q.IncludeInactive = b
	}
	// threshold_override que no es entero se ignora: no es un error de validación.
	if raw := c.Query("threshold_override"); raw != "" {
		q.ThresholdOverrideRaw = raw
		if n, err := strconv.Atoi(raw); err == nil {
			q.ThresholdOverride = &n
		}
	}

	if err := h.validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}
