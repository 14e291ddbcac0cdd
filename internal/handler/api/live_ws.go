package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"HealthFeas/internal/domain/models"
	"HealthFeas/internal/presenter"
	"HealthFeas/internal/service/ratelimit"
	"HealthFeas/internal/usecase"
	xhttp "HealthFeas/pkg/http"
	xlogger "HealthFeas/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	liveReadLimit  = 64 << 10
	livePongWait   = 60 * time.Second
	livePingPeriod = livePongWait * 9 / 10
	liveWriteWait  = 5 * time.Second
)

// LiveScenarioHandler recomputes a venture on every inbound WebSocket message,
// mirroring a dashboard whose sliders trigger a rerun.
type LiveScenarioHandler struct {
	logger   *xlogger.Logger
	calc     *usecase.ScenarioCalculator
	defaults models.GlobalAssumptions
	limiter  *ratelimit.Limiter
	upgrader websocket.Upgrader
}

// NewLiveScenarioHandler creates the handler. limiter throttles recomputes per session.
func NewLiveScenarioHandler(logger *xlogger.Logger, calc *usecase.ScenarioCalculator, globals models.GlobalAssumptions, limiter *ratelimit.Limiter) *LiveScenarioHandler {
	if logger == nil {
		logger = xlogger.Nop()
	}
	return &LiveScenarioHandler{
		logger:   logger,
		calc:     calc,
		defaults: globals,
		limiter:  limiter,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (h *LiveScenarioHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/scenarios", h.Serve)
}

func (h *LiveScenarioHandler) Serve(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Warn("live upgrade failed", xlogger.Error(err))
		return nil
	}

	session := uuid.NewString()
	log := h.logger.With(xlogger.String("session", session))
	log.Info("live session opened")

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer func() {
		cancel()
		h.limiter.Forget(session)
		_ = conn.Close()
		log.Info("live session closed")
	}()

	conn.SetReadLimit(liveReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(livePongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(livePongWait))
	})
	go h.ping(ctx, conn)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("live read error", xlogger.Error(err))
			}
			return nil
		}

		var resp models.LiveResponse
		if !h.limiter.Allow(session) {
			resp = models.LiveResponse{Error: "rate limited"}
		} else {
			resp = h.handle(ctx, msg)
		}

		_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
		if err := conn.WriteJSON(resp); err != nil {
			log.Warn("live write error", xlogger.Error(err))
			return nil
		}
	}
}

func (h *LiveScenarioHandler) handle(ctx context.Context, msg []byte) models.LiveResponse {
	req := &models.LiveRequest{Globals: h.defaults}
	if err := json.Unmarshal(msg, req); err != nil {
		return models.LiveResponse{Error: "malformed message"}
	}
	if verr := xhttp.ValidateStruct(ctx, req); verr != nil {
		h.logger.Debug("live message rejected", xlogger.Strings("fields", verr.Fields()))
		return models.LiveResponse{Venture: req.Venture, Error: "validation failed", Details: verr}
	}

	id, err := models.ParseVentureID(req.Venture)
	if err != nil {
		return models.LiveResponse{Venture: req.Venture, Error: err.Error()}
	}
	params, verr := decodeParams(ctx, id, req.Params)
	if verr != nil {
		h.logger.Debug("live message rejected", xlogger.String("venture", req.Venture), xlogger.Strings("fields", verr.Fields()))
		return models.LiveResponse{Venture: req.Venture, Error: "validation failed", Details: verr}
	}

	res, err := h.calc.Calculate(ctx, req.Globals, params)
	if err != nil {
		h.logger.Error("live usecase error", xlogger.String("venture", req.Venture), xlogger.Error(err))
		return models.LiveResponse{Venture: req.Venture, Error: err.Error()}
	}

	view := presenter.View(res)
	return models.LiveResponse{
		Venture: string(id),
		Title:   view.Title,
		Result:  &view.Result,
		Table:   view.Table,
	}
}

func (h *LiveScenarioHandler) ping(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(livePingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(liveWriteWait)); err != nil {
				return
			}
		}
	}
}
