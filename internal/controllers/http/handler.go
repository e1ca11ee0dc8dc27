package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"cart-service/internal/domain"
	"cart-service/internal/repository"
	"cart-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type Handler struct {
	cart    *services.CartService
	session *services.OrderSession
	catalog repository.CatalogRepository
	rdb     *redis.Client
}

func NewHandler(cart *services.CartService, session *services.OrderSession, catalog repository.CatalogRepository, rdb *redis.Client) *Handler {
	return &Handler{cart: cart, session: session, catalog: catalog, rdb: rdb}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/menu", h.GetMenu)
	r.GET("/cart", h.GetCart)
	r.POST("/cart/items", h.AddItem)
	r.PATCH("/cart/items/:id", h.AdjustQuantity)
	r.POST("/cart/clear", h.RequestClear)
	r.POST("/cart/checkout", h.Checkout)
	r.POST("/cart/dismiss", h.DismissPlaced)
}

func (h *Handler) GetMenu(c *gin.Context) {
	category := c.Query("category")
	cacheKey := "menu:" + category

	ctx := c.Request.Context()
	if h.rdb != nil {
		if b, err := h.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var items []domain.MenuItem
			_ = json.Unmarshal([]byte(b), &items)
			c.JSON(http.StatusOK, items)
			return
		}
	}

	var (
		items []domain.MenuItem
		err   error
	)
	if category == "" {
		items, err = h.catalog.List()
	} else {
		items, err = h.catalog.ListByCategory(category)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.rdb != nil {
		if data, err := json.Marshal(items); err == nil {
			h.rdb.Set(context.Background(), cacheKey, data, 30*time.Second)
		}
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartResponse())
}

func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.catalog.FindByID(req.MenuItemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}

	h.cart.Add(c.Request.Context(), *item)
	c.JSON(http.StatusOK, h.cartResponse())
}

func (h *Handler) AdjustQuantity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var req AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.cart.AdjustQuantity(c.Request.Context(), id, req.Delta)
	c.JSON(http.StatusOK, h.cartResponse())
}

func (h *Handler) RequestClear(c *gin.Context) {
	h.cart.RequestClear(c.Request.Context())
	c.JSON(http.StatusOK, h.cartResponse())
}

func (h *Handler) Checkout(c *gin.Context) {
	// The engine itself does not reject these; the boundary does.
	if h.cart.Status() == domain.StatusPlaced {
		c.JSON(http.StatusConflict, gin.H{"error": "order already placed"})
		return
	}
	if len(h.cart.Items()) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cart is empty"})
		return
	}

	evt := h.session.Checkout(c.Request.Context())
	c.JSON(http.StatusOK, CheckoutResponse{
		OrderNumber: evt.OrderNumber,
		SessionID:   evt.SessionID,
		Totals:      evt.Totals,
	})
}

func (h *Handler) DismissPlaced(c *gin.Context) {
	if h.cart.Status() != domain.StatusPlaced {
		c.JSON(http.StatusConflict, gin.H{"error": "no placed order to dismiss"})
		return
	}
	h.session.DismissPlaced(c.Request.Context())
	c.JSON(http.StatusOK, h.cartResponse())
}

func (h *Handler) cartResponse() CartResponse {
	return CartResponse{
		Items:       h.cart.Items(),
		Totals:      h.cart.Totals(),
		Status:      h.cart.Status(),
		OrderNumber: h.cart.OrderNumber(),
		GuardState:  string(h.cart.GuardState()),
	}
}
