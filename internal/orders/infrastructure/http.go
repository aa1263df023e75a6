package infrastructure

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go-shop/internal/orders/application"
	"go-shop/internal/orders/domain"
	"go-shop/internal/orders/ports"
	"go-shop/pkg/errors"
	"go-shop/pkg/middleware"
)

// HTTPHandler handles HTTP requests for orders
type HTTPHandler struct {
	useCase *application.OrderUseCase
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(useCase *application.OrderUseCase) *HTTPHandler {
	return &HTTPHandler{useCase: useCase}
}

// RegisterRoutes registers the order routes. The three versioned list
// endpoints serve identical content through differently optimized
// queries.
func (h *HTTPHandler) RegisterRoutes(api *gin.RouterGroup) {
	v1 := api.Group("/v1/orders")
	{
		v1.POST("", h.PlaceOrder)
		v1.POST("/:id/cancel", h.CancelOrder)
		v1.GET("", h.ListOrdersFullGraph)
		v1.GET("/:id", h.GetOrder)
	}
	api.GET("/v2/orders", h.ListOrdersPaged)
	api.GET("/v3/orders", h.ListOrdersFlat)
}

// PlaceOrderRequest is the request body for placing an order
type PlaceOrderRequest struct {
	MemberID uint `json:"member_id" binding:"required"`
	ItemID   uint `json:"item_id" binding:"required"`
	Count    int  `json:"count" binding:"required,gt=0"`
}

// PlaceOrder handles POST /v1/orders
//
//	@Summary	Place an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		PlaceOrderRequest	true	"order to place"
//	@Success	201		{object}	map[string]interface{}
//	@Failure	404		{object}	errors.ErrorResponse
//	@Failure	409		{object}	errors.ErrorResponse
//	@Router		/api/v1/orders [post]
func (h *HTTPHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	output, err := h.useCase.PlaceOrder(c.Request.Context(), application.PlaceOrderInput{
		MemberID: req.MemberID,
		ItemID:   req.ItemID,
		Count:    req.Count,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":     gin.H{"order_id": output.Order.ID},
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// CancelOrder handles POST /v1/orders/:id/cancel
//
//	@Summary	Cancel an order and restore its stock
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"order id"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	404	{object}	errors.ErrorResponse
//	@Failure	409	{object}	errors.ErrorResponse
//	@Router		/api/v1/orders/{id}/cancel [post]
func (h *HTTPHandler) CancelOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Error(errors.NewValidation("invalid order id", nil))
		return
	}

	output, err := h.useCase.CancelOrder(c.Request.Context(), application.CancelOrderInput{
		ID: uint(id),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"order_id": output.Order.ID,
			"status":   string(output.Order.Status),
		},
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// OrderLineResponse is one line in a single-order read
type OrderLineResponse struct {
	ItemID     uint   `json:"item_id"`
	ItemName   string `json:"item_name"`
	OrderPrice int64  `json:"order_price"`
	Count      int    `json:"count"`
}

// OrderResponse is the response body for a single-order read
type OrderResponse struct {
	OrderID    uint                `json:"order_id"`
	MemberID   uint                `json:"member_id"`
	Status     string              `json:"status"`
	TotalPrice int64               `json:"total_price"`
	OrderedAt  string              `json:"ordered_at"`
	Lines      []OrderLineResponse `json:"lines"`
}

// GetOrder handles GET /v1/orders/:id
//
//	@Summary	Get one order with its lines
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"order id"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	404	{object}	errors.ErrorResponse
//	@Router		/api/v1/orders/{id} [get]
func (h *HTTPHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Error(errors.NewValidation("invalid order id", nil))
		return
	}

	output, err := h.useCase.GetOrder(c.Request.Context(), application.GetOrderInput{ID: uint(id)})
	if err != nil {
		c.Error(err)
		return
	}

	order := output.Order
	lines := make([]OrderLineResponse, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = OrderLineResponse{
			ItemID:     line.ItemID,
			ItemName:   line.ItemName,
			OrderPrice: line.OrderPrice,
			Count:      line.Count,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"data": OrderResponse{
			OrderID:    order.ID,
			MemberID:   order.MemberID,
			Status:     string(order.Status),
			TotalPrice: order.TotalPrice(),
			OrderedAt:  order.OrderedAt.Format(time.RFC3339),
			Lines:      lines,
		},
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

func listInput(c *gin.Context) application.ListOrdersInput {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	return application.ListOrdersInput{
		Criteria: ports.SearchCriteria{
			MemberName: c.Query("member_name"),
			Status:     domain.OrderStatus(c.Query("status")),
		},
		Offset: offset,
		Limit:  limit,
	}
}

func (h *HTTPHandler) renderList(c *gin.Context, output *application.ListOrdersOutput) {
	c.JSON(http.StatusOK, gin.H{
		"count":    len(output.Orders),
		"data":     output.Orders,
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// ListOrdersFullGraph handles GET /v1/orders
//
//	@Summary	List orders via full entity materialization
//	@Tags		orders
//	@Produce	json
//	@Param		member_name	query		string	false	"member name substring"
//	@Param		status		query		string	false	"order status"
//	@Success	200			{object}	map[string]interface{}
//	@Router		/api/v1/orders [get]
func (h *HTTPHandler) ListOrdersFullGraph(c *gin.Context) {
	output, err := h.useCase.ListOrdersFullGraph(c.Request.Context(), listInput(c))
	if err != nil {
		c.Error(err)
		return
	}
	h.renderList(c, output)
}

// ListOrdersPaged handles GET /v2/orders
//
//	@Summary	List orders with a bounded query count and windowing
//	@Tags		orders
//	@Produce	json
//	@Param		offset		query		int		false	"window offset"
//	@Param		limit		query		int		false	"window size"
//	@Param		member_name	query		string	false	"member name substring"
//	@Param		status		query		string	false	"order status"
//	@Success	200			{object}	map[string]interface{}
//	@Router		/api/v2/orders [get]
func (h *HTTPHandler) ListOrdersPaged(c *gin.Context) {
	output, err := h.useCase.ListOrdersPaged(c.Request.Context(), listInput(c))
	if err != nil {
		c.Error(err)
		return
	}
	h.renderList(c, output)
}

// ListOrdersFlat handles GET /v3/orders
//
//	@Summary	List orders scanned directly from source columns
//	@Tags		orders
//	@Produce	json
//	@Param		member_name	query		string	false	"member name substring"
//	@Param		status		query		string	false	"order status"
//	@Success	200			{object}	map[string]interface{}
//	@Router		/api/v3/orders [get]
func (h *HTTPHandler) ListOrdersFlat(c *gin.Context) {
	output, err := h.useCase.ListOrdersFlat(c.Request.Context(), listInput(c))
	if err != nil {
		c.Error(err)
		return
	}
	h.renderList(c, output)
}
