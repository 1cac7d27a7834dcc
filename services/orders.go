// orders.go - Order placement workflow and stock decrement

package services

import (
	"errors"

	"go-ecommerce-backend/models"

	"gorm.io/gorm"
)

// OrderItemRequest is one requested line of a new order.
type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// OrderService orchestrates stock validation, stock decrement and order
// creation as one logical unit.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// PlaceOrder validates every requested item, decrements stock with a
// guarded conditional update and creates the order with its line items.
// The whole workflow runs in a single transaction: any missing product or
// insufficient stock rolls back every decrement already applied, so a
// failed placement never touches stock.
//
// The total amount is recorded as supplied by the client; it is not
// recomputed from item prices. Prices are still snapshotted per line so
// the authoritative figure can be derived later.
func (s *OrderService) PlaceOrder(userID uint, items []OrderItemRequest, totalAmount float64, shippingAddress string) (*models.Order, error) {
	var order *models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		orderItems := make([]models.OrderItem, 0, len(items))

		for _, it := range items {
			var product models.Product
			if err := tx.First(&product, it.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &NotFoundError{Entity: "product", ID: it.ProductID}
				}
				return err
			}
			if product.Stock < it.Quantity {
				return &InsufficientStockError{ProductName: product.Name}
			}

			// Guarded conditional update: the WHERE clause re-checks the
			// stock at write time, so a concurrent placement that consumed
			// it between the read above and this write affects zero rows.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", it.ProductID, it.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", it.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &InsufficientStockError{ProductName: product.Name}
			}

			orderItems = append(orderItems, models.OrderItem{
				ProductID: product.ID,
				Quantity:  it.Quantity,
				Price:     product.Price,
			})
		}

		order = &models.Order{
			UserID:          userID,
			TotalAmount:     totalAmount,
			Status:          models.StatusPending,
			ShippingAddress: shippingAddress,
			Items:           orderItems,
		}
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder loads an order with its items.
func (s *OrderService) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "order", ID: id}
		}
		return nil, err
	}
	return &order, nil
}

// UpdateStatus sets an order's status after checking it is one of the
// enumerated values. Transitions are otherwise unrestricted.
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	if !models.ValidStatus(status) {
		return nil, &ValidationError{Msg: "invalid status: " + status}
	}
	order, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(order).Update("status", status).Error; err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// DeleteOrder removes an order and its line items.
func (s *OrderService) DeleteOrder(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "order", ID: id}
			}
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}
