// Package http provides the echo-based inbound adapter. It parses requests,
// invokes the application use cases and maps failures to HTTP status codes;
// no business logic lives here.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Error is the JSON error payload returned on failures.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the payload for POST /api/v1/orders.
type CreateOrderRequest struct {
	ProductIDs []int64 `json:"productIds"`
	TotalPrice float64 `json:"totalPrice"`
}

// AddProductRequest is the payload for POST /api/v1/orders/:id/products.
type AddProductRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// OrderItem is one order line in a response body.
type OrderItem struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Order is the full order representation returned by GET /api/v1/orders/:id.
type Order struct {
	ID         int64       `json:"id"`
	Reference  uuid.UUID   `json:"reference"`
	ProductIDs []int64     `json:"productIds"`
	Items      []OrderItem `json:"items"`
	TotalPrice float64     `json:"totalPrice"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// PendingOrder is a summary row returned by GET /api/v1/orders/pending.
type PendingOrder struct {
	ID         int64     `json:"id"`
	Reference  uuid.UUID `json:"reference"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler      commands.CreateOrderCommandHandler
	addProductHandler       commands.AddProductToOrderCommandHandler
	getOrderHandler         queries.GetOrderQueryHandler
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addProductHandler commands.AddProductToOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		addProductHandler:       addProductHandler,
		getOrderHandler:         getOrderHandler,
		getPendingOrdersHandler: getPendingOrdersHandler,
	}
}

// RegisterRoutes attaches the server's handlers to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/products", s.AddProduct)
	api.GET("/orders/pending", s.GetPendingOrders)
	api.GET("/orders/:id", s.GetOrder)
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(req.ProductIDs, req.TotalPrice)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, statusFromError(err), err.Error())
	}

	return ctx.NoContent(http.StatusCreated)
}

// AddProduct handles POST /api/v1/orders/:id/products - adds a product to an
// existing order.
func (s *Server) AddProduct(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req AddProductRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewAddProductToOrderCommand(orderID, req.ProductID, req.Quantity)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.addProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, statusFromError(err), err.Error())
	}

	return ctx.NoContent(http.StatusOK)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, statusFromError(err), err.Error())
	}

	items := make([]OrderItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:         resp.ID,
		Reference:  resp.Reference,
		ProductIDs: resp.ProductIDs,
		Items:      items,
		TotalPrice: resp.TotalPrice,
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt,
	})
}

// GetPendingOrders handles GET /api/v1/orders/pending - retrieves the
// pending-order backlog.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	query := queries.NewGetPendingOrdersQuery()

	rows, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "failed to retrieve pending orders")
	}

	response := make([]PendingOrder, len(rows))
	for i, row := range rows {
		response[i] = PendingOrder{
			ID:         row.ID,
			Reference:  row.Reference,
			TotalPrice: row.TotalPrice,
			CreatedAt:  row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// statusFromError maps use-case failures to HTTP status codes. Masked
// persistence faults become 500s; missing aggregates become 404s; every
// other failure is caller error.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrOrderPersistenceFailed),
		errors.Is(err, commands.ErrOrderSaveFailed):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
