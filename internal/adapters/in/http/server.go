// Package http exposes the order tracker over a JSON API plus a websocket
// endpoint for the notification fan-out. It translates between the wire and
// the application's commands and queries, and maps the error taxonomy to
// status codes.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"dispatch/internal/adapters/out/filestore"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// SubscriberHub attaches upgraded websocket connections to an audience group.
type SubscriberHub interface {
	Subscribe(audience ports.Audience, conn *websocket.Conn)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	startDispatchHandler    commands.StartDispatchCommandHandler
	completeDispatchHandler commands.CompleteDispatchCommandHandler
	returnOrderHandler      commands.ReturnOrderCommandHandler
	setSettingHandler       commands.SetSettingCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
	getSettingHandler queries.GetSettingQueryHandler

	hub      SubscriberHub
	storage  *filestore.Storage
	upgrader websocket.Upgrader
}

// NewServer creates a new HTTP server with the required command and query
// handlers, the fan-out hub, and the upload storage.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	startDispatchHandler commands.StartDispatchCommandHandler,
	completeDispatchHandler commands.CompleteDispatchCommandHandler,
	returnOrderHandler commands.ReturnOrderCommandHandler,
	setSettingHandler commands.SetSettingCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getSettingHandler queries.GetSettingQueryHandler,
	hub SubscriberHub,
	storage *filestore.Storage,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		startDispatchHandler:    startDispatchHandler,
		completeDispatchHandler: completeDispatchHandler,
		returnOrderHandler:      returnOrderHandler,
		setSettingHandler:       setSettingHandler,
		getOrderHandler:         getOrderHandler,
		listOrdersHandler:       listOrdersHandler,
		getSettingHandler:       getSettingHandler,
		hub:                     hub,
		storage:                 storage,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// RegisterRoutes mounts every endpoint on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api", jsonUTF8)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/start", s.StartDispatch)
	api.POST("/orders/:id/complete", s.CompleteDispatch)
	api.POST("/orders/:id/return", s.ReturnOrder)
	api.GET("/settings/:key", s.GetSetting)
	api.POST("/settings/:key", s.SetSetting)

	e.GET("/ws/:audience", s.SubscribeWS)
	e.Static("/uploads", s.storage.Dir())
}

// jsonUTF8 pins the response content type so clients never mis-decode
// non-ASCII order data. Echo only writes a content type when none is set.
func jsonUTF8(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderContentType, "application/json; charset=utf-8")
		return next(c)
	}
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(req.OrderNumber, req.SiteName, req.SiteAddress, req.Items, req.Driver)
	if err != nil {
		return badRequest(c, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, orderModelFromSnapshot(created.Snapshot()))
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := parseOrderID(c)
	if err != nil {
		return badRequest(c, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(c echo.Context) error {
	query, err := queries.NewListOrdersQuery(queries.ListOrdersFilter{
		Search:       c.QueryParam("q"),
		CreatedFrom:  c.QueryParam("startDate"),
		CreatedTo:    c.QueryParam("endDate"),
		StartFrom:    c.QueryParam("startFrom"),
		StartTo:      c.QueryParam("startTo"),
		CompleteFrom: c.QueryParam("completeFrom"),
		CompleteTo:   c.QueryParam("completeTo"),
	})
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.listOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// StartDispatch handles POST /api/orders/:id/start. Multipart body: optional
// "photo" file and optional "answers" JSON field.
func (s *Server) StartDispatch(c echo.Context) error {
	id, err := parseOrderID(c)
	if err != nil {
		return badRequest(c, "Invalid order ID")
	}

	photo, err := s.savePhoto(c)
	if err != nil {
		return respondError(c, err)
	}

	answers, err := parseJSONField(c.FormValue("answers"))
	if err != nil {
		return badRequest(c, "Invalid answers payload")
	}

	cmd, err := commands.NewStartDispatchCommand(id, photo, answers)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.startDispatchHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderModelFromSnapshot(updated.Snapshot()))
}

// CompleteDispatch handles POST /api/orders/:id/complete.
func (s *Server) CompleteDispatch(c echo.Context) error {
	id, err := parseOrderID(c)
	if err != nil {
		return badRequest(c, "Invalid order ID")
	}

	photo, err := s.savePhoto(c)
	if err != nil {
		return respondError(c, err)
	}

	answers, err := parseJSONField(c.FormValue("answers"))
	if err != nil {
		return badRequest(c, "Invalid answers payload")
	}

	cmd, err := commands.NewCompleteDispatchCommand(id, photo, answers)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.completeDispatchHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderModelFromSnapshot(updated.Snapshot()))
}

// ReturnOrder handles POST /api/orders/:id/return. The "notes" field decodes
// as JSON when it parses, and is kept as a plain string otherwise.
func (s *Server) ReturnOrder(c echo.Context) error {
	id, err := parseOrderID(c)
	if err != nil {
		return badRequest(c, "Invalid order ID")
	}

	photo, err := s.savePhoto(c)
	if err != nil {
		return respondError(c, err)
	}

	var notes any
	if raw := c.FormValue("notes"); raw != "" {
		if parsed, parseErr := parseJSONField(raw); parseErr == nil {
			notes = parsed
		} else {
			notes = raw
		}
	}

	cmd, err := commands.NewReturnOrderCommand(id, notes, photo)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.returnOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderModelFromSnapshot(updated.Snapshot()))
}

// GetSetting handles GET /api/settings/:key.
func (s *Server) GetSetting(c echo.Context) error {
	query, err := queries.NewGetSettingQuery(c.Param("key"))
	if err != nil {
		return respondError(c, err)
	}

	value, err := s.getSettingHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, SettingResponse{Value: value})
}

// SetSetting handles POST /api/settings/:key.
func (s *Server) SetSetting(c echo.Context) error {
	var req SetSettingRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewSetSettingCommand(c.Param("key"), req.Value)
	if err != nil {
		return respondError(c, err)
	}

	stored, err := s.setSettingHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, SettingResponse{Value: stored})
}

// SubscribeWS handles GET /ws/:audience: upgrades the connection and hands it
// to the fan-out hub.
func (s *Server) SubscribeWS(c echo.Context) error {
	audience, ok := ports.AudienceFromString(c.Param("audience"))
	if !ok {
		return badRequest(c, "Unknown audience")
	}

	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written its own error response.
		return nil
	}

	s.hub.Subscribe(audience, conn)
	return nil
}

// savePhoto stores the optional "photo" multipart file and returns its stored
// filename, nil when the request carries no photo.
func (s *Server) savePhoto(c echo.Context) (*string, error) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, errs.NewValueIsInvalidErrorWithCause("photo", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("photo", err)
	}
	defer src.Close()

	name, err := s.storage.Save(src, fileHeader.Filename)
	if err != nil {
		return nil, err
	}

	return &name, nil
}

// parseJSONField decodes an optional JSON form field; empty means absent.
func parseJSONField(raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, err
	}
	return value, nil
}

func parseOrderID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps the error taxonomy to status codes: not-found to 404,
// invalid or missing values and transition violations to 400, the rest to 500.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, order.ErrOrderIsNotConstructed):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}
