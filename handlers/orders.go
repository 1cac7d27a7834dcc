// orders.go - Order placement and management handlers

package handlers

import (
	"net/http"

	"go-ecommerce-backend/middleware"
	"go-ecommerce-backend/models"
	"go-ecommerce-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderHandler struct {
	db     *gorm.DB
	orders *services.OrderService
}

func NewOrderHandler(db *gorm.DB, orders *services.OrderService) *OrderHandler {
	return &OrderHandler{db: db, orders: orders}
}

type OrderInput struct {
	Items           []services.OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalAmount     float64                     `json:"total_amount" binding:"required,gt=0"`
	ShippingAddress string                      `json:"shipping_address" binding:"required"`
}

type StatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
}

// Create places an order for the authenticated caller.
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
		return
	}
	var input OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.PlaceOrder(userID, input.Items, input.TotalAmount, input.ShippingAddress)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ListMine returns the caller's own orders, newest first.
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
		return
	}
	page, limit, offset := pageParams(c)

	query := h.db.Model(&models.Order{}).Where("user_id = ?", userID)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		writeError(c, err)
		return
	}

	var orders []models.Order
	if err := query.Preload("Items").Order("created_at DESC").
		Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orders":     orders,
		"pagination": pageMeta(page, limit, total),
	})
}

// ListAll returns every order in the system. Admin only.
func (h *OrderHandler) ListAll(c *gin.Context) {
	page, limit, offset := pageParams(c)

	var total int64
	if err := h.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		writeError(c, err)
		return
	}

	var orders []models.Order
	if err := h.db.Preload("Items").Order("created_at DESC").
		Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orders":     orders,
		"pagination": pageMeta(page, limit, total),
	})
}

// Get returns a single order to its owner or to an admin.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.orders.GetOrder(id)
	if err != nil {
		writeError(c, err)
		return
	}

	userID, _ := middleware.UserID(c)
	if order.UserID != userID && !middleware.IsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateStatus sets an order's status. Admin only.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.UpdateStatus(id, input.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Delete removes an order. Admin only.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.orders.DeleteOrder(id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
