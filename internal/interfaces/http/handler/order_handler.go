package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pedidos/backend/internal/application/trade"
	"github.com/pedidos/backend/internal/interfaces/http/middleware"
)

// OrderHandler serves the order lifecycle and the operator feed
type OrderHandler struct {
	BaseHandler
	orderService *trade.OrderService
	feedManager  *trade.FeedManager
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *trade.OrderService, feedManager *trade.FeedManager) *OrderHandler {
	return &OrderHandler{orderService: orderService, feedManager: feedManager}
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)

		orders.GET("/feed", h.Feed)
		orders.POST("/feed", h.LoadFeed)
		orders.POST("/feed/more", h.RevealMore)

		orders.GET("/:id", h.GetByID)
		orders.DELETE("/:id", h.Delete)
		orders.PUT("/:id/items", h.ReplaceItems)
		orders.POST("/:id/items/:index/toggle", h.ToggleItem)
		orders.PUT("/:id/items/:index/note", h.SetItemNote)
		orders.GET("/:id/picklist", h.Picklist)
		orders.GET("/:id/customers/:customerId", h.CustomerView)
	}
}

// Create creates a new order and pushes it onto the operator's feed
func (h *OrderHandler) Create(c *gin.Context) {
	var req trade.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.feedManager.ApplyUpdate(middleware.GetUID(c), *resp)
	h.Created(c, resp)
}

// List returns all live orders newest-first
func (h *OrderHandler) List(c *gin.Context) {
	resp, err := h.orderService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByID returns one order
func (h *OrderHandler) GetByID(c *gin.Context) {
	resp, err := h.orderService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete soft-deletes an order and drops it from the operator's feed
func (h *OrderHandler) Delete(c *gin.Context) {
	orderID := c.Param("id")
	if err := h.orderService.Delete(c.Request.Context(), orderID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.feedManager.ApplyDelete(middleware.GetUID(c), orderID)
	h.NoContent(c)
}

// ReplaceItems overwrites the full item list of an order
func (h *OrderHandler) ReplaceItems(c *gin.Context) {
	var req trade.ReplaceItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.orderService.ReplaceItems(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.feedManager.ApplyUpdate(middleware.GetUID(c), *resp)
	h.Success(c, resp)
}

// ToggleItem flips the completion state of one item
func (h *OrderHandler) ToggleItem(c *gin.Context) {
	index, ok := h.itemIndex(c)
	if !ok {
		return
	}

	resp, err := h.orderService.ToggleItem(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.refreshFeed(c, resp.OrderID)
	h.Success(c, resp)
}

// SetItemNote annotates one item
func (h *OrderHandler) SetItemNote(c *gin.Context) {
	index, ok := h.itemIndex(c)
	if !ok {
		return
	}

	var req trade.SetItemNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.orderService.SetItemNote(c.Request.Context(), c.Param("id"), index, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.feedManager.ApplyUpdate(middleware.GetUID(c), *resp)
	h.Success(c, resp)
}

// Picklist returns the order's items in warehouse walking order
func (h *OrderHandler) Picklist(c *gin.Context) {
	resp, err := h.orderService.Picklist(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CustomerView returns one customer's share of an order
func (h *OrderHandler) CustomerView(c *gin.Context) {
	resp, err := h.orderService.CustomerView(c.Request.Context(), c.Param("id"), c.Param("customerId"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// LoadFeed starts the operator's order feed with the first window visible.
// An existing session is reused unless ?force=true asks for a fresh fetch.
func (h *OrderHandler) LoadFeed(c *gin.Context) {
	force, _ := strconv.ParseBool(c.Query("force"))
	resp, err := h.feedManager.Load(c.Request.Context(), middleware.GetUID(c), force)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Feed returns the feed as currently cached
func (h *OrderHandler) Feed(c *gin.Context) {
	resp, err := h.feedManager.Current(middleware.GetUID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RevealMore extends the visible window by one step
func (h *OrderHandler) RevealMore(c *gin.Context) {
	resp, err := h.feedManager.RevealMore(middleware.GetUID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

func (h *OrderHandler) itemIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		h.BadRequest(c, "Item index must be a non-negative integer")
		return 0, false
	}
	return index, true
}

// refreshFeed re-reads one order and patches the operator's cached copy
func (h *OrderHandler) refreshFeed(c *gin.Context, orderID string) {
	order, err := h.orderService.GetByID(c.Request.Context(), orderID)
	if err != nil {
		return
	}
	h.feedManager.ApplyUpdate(middleware.GetUID(c), *order)
}
