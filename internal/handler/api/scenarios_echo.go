package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"HealthFeas/internal/domain/models"
	"HealthFeas/internal/presenter"
	"HealthFeas/internal/usecase"
	xhttp "HealthFeas/pkg/http"
	xlogger "HealthFeas/pkg/logger"

	"github.com/creasty/defaults"
	"github.com/labstack/echo/v4"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ScenarioEchoHandler serves single-venture and portfolio appraisals over HTTP.
type ScenarioEchoHandler struct {
	logger   *xlogger.Logger
	calc     *usecase.ScenarioCalculator
	defaults models.GlobalAssumptions
}

// NewScenarioEchoHandler creates the handler. globals seeds every request before
// the body is bound, so omitted global fields take the configured values.
func NewScenarioEchoHandler(logger *xlogger.Logger, calc *usecase.ScenarioCalculator, globals models.GlobalAssumptions) *ScenarioEchoHandler {
	if logger == nil {
		logger = xlogger.Nop()
	}
	return &ScenarioEchoHandler{logger: logger, calc: calc, defaults: globals}
}

func (h *ScenarioEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/scenarios/defaults", h.Defaults)
	g.POST("/scenarios/:venture", h.Scenario)
	g.POST("/portfolio", h.Portfolio)
	g.POST("/portfolio/export", h.Export)
}

func (h *ScenarioEchoHandler) Defaults(c echo.Context) error {
	view := models.DefaultsView{Globals: h.defaults}
	for _, rec := range []interface{}{&view.Diagnostics, &view.TeleWellness, &view.CosmeticStudio} {
		if err := defaults.Set(rec); err != nil {
			return xhttp.InternalErrorf("defaults").WithError(err)
		}
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=300")
	return xhttp.SuccessResponse(c, view)
}

func (h *ScenarioEchoHandler) Scenario(c echo.Context) error {
	id, err := models.ParseVentureID(c.Param("venture"))
	if err != nil {
		return unknownVenture(c.Param("venture"), err)
	}

	req := &models.ScenarioRequest{Globals: h.defaults}
	if verr := xhttp.BindAndValidate(c, req); verr != nil {
		return verr
	}
	params, verr := decodeParams(c.Request().Context(), id, req.Params)
	if verr != nil {
		return verr
	}

	res, err := h.calc.Calculate(c.Request().Context(), req.Globals, params)
	if err != nil {
		if isUnknownVenture(err) {
			return unknownVenture(string(id), err)
		}
		return xhttp.InternalErrorf("scenario %s could not be evaluated", id).WithError(err)
	}
	return xhttp.SuccessResponse(c, presenter.View(res))
}

func (h *ScenarioEchoHandler) Portfolio(c echo.Context) error {
	results, err := h.portfolio(c)
	if err != nil {
		return err
	}
	return xhttp.SuccessResponse(c, presenter.Views(results))
}

func (h *ScenarioEchoHandler) Export(c echo.Context) error {
	results, err := h.portfolio(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := presenter.WriteWorkbook(&buf, results); err != nil {
		return xhttp.InternalErrorf("could not build workbook").WithError(err)
	}
	h.logger.Debug("portfolio exported", xlogger.Int("ventures", len(results)), xlogger.Int("bytes", buf.Len()))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="healthfeas-portfolio.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}

// portfolio binds, validates and runs a portfolio request.
func (h *ScenarioEchoHandler) portfolio(c echo.Context) ([]models.ScenarioResult, error) {
	req := &models.PortfolioRequest{}
	if err := defaults.Set(req); err != nil {
		return nil, xhttp.InternalErrorf("defaults").WithError(err)
	}
	req.Globals = h.defaults
	if verr := xhttp.BindAndValidate(c, req); verr != nil {
		return nil, verr
	}

	results, err := h.calc.CalculatePortfolio(c.Request().Context(), req.Globals, req.Params()...)
	if err != nil {
		return nil, xhttp.InternalErrorf("portfolio could not be evaluated").WithError(err)
	}
	return results, nil
}

// decodeParams fills the venture's defaults, decodes raw over them and validates.
func decodeParams(ctx context.Context, id models.VentureID, raw json.RawMessage) (models.VentureParameters, xhttp.ValidationErrors) {
	params, err := models.NewParams(id)
	if err != nil {
		return nil, xhttp.ValidationErrors{{Code: xhttp.CodeUnknownVenture, Field: "venture", Message: err.Error()}}
	}
	if verr := xhttp.DecodeAndValidate(ctx, raw, params); verr != nil {
		return nil, verr.Prefix("params")
	}
	return params, nil
}

func unknownVenture(name string, cause error) *xhttp.AppError {
	return xhttp.NotFoundErrorf("venture %q not found", name).
		WithParam("ventures", models.Ventures()).
		WithError(cause)
}

// isUnknownVenture reports whether err comes from an unregistered venture.
func isUnknownVenture(err error) bool {
	return errors.Is(err, models.ErrUnknownVenture)
}
