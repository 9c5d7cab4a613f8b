package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NelushGayashan/demo-api/models"
)

// OrderStore is the persistence contract the order service needs.
type OrderStore interface {
	Create(order *models.Order) error
	FindByID(id uint) (*models.Order, error)
	FindByOrderNumber(orderNumber string) (*models.Order, error)
	FindAll() ([]models.Order, error)
	ExistsByID(id uint) (bool, error)
	Update(order *models.Order) error
	DeleteByID(id uint) error
	DistinctStatuses() ([]string, error)
}

type OrderService struct {
	store OrderStore
}

func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{store: store}
}

func (s *OrderService) GetOrders() ([]models.Order, error) {
	return s.store.FindAll()
}

func (s *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.store.FindByID(id)
}

func (s *OrderService) GetOrderByOrderNumber(orderNumber string) (*models.Order, error) {
	return s.store.FindByOrderNumber(orderNumber)
}

func (s *OrderService) GetOrdersByUserID(userID uint) ([]models.Order, error) {
	orders, err := s.store.FindAll()
	if err != nil {
		return nil, err
	}
	matched := make([]models.Order, 0)
	for _, o := range orders {
		if o.UserID == userID {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func (s *OrderService) GetOrdersByStatus(status string) ([]models.Order, error) {
	orders, err := s.store.FindAll()
	if err != nil {
		return nil, err
	}
	matched := make([]models.Order, 0)
	for _, o := range orders {
		if strings.EqualFold(o.Status, status) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// GetAllStatuses returns the distinct statuses actually present in the
// store, ascending.
func (s *OrderService) GetAllStatuses() ([]string, error) {
	return s.store.DistinctStatuses()
}

// CreateOrder discards any client-supplied id, defaults the status to
// PENDING, generates an order number when none is supplied and stamps the
// order date.
func (s *OrderService) CreateOrder(order *models.Order) (*models.Order, error) {
	order.ID = 0
	for i := range order.Items {
		order.Items[i].ID = 0
		order.Items[i].OrderID = 0
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if order.OrderNumber == "" {
		order.OrderNumber = newOrderNumber()
	}
	now := time.Now()
	order.OrderDate = now
	order.UpdatedAt = now
	if err := s.store.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrder overwrites the order's scalar fields with the payload's values,
// nulls included. Identity, order date and the items collection are carried
// over unchanged.
func (s *OrderService) UpdateOrder(id uint, payload models.Order) (*models.Order, error) {
	existing, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}

	if payload.OrderNumber != "" {
		existing.OrderNumber = payload.OrderNumber
	}
	existing.UserID = payload.UserID
	existing.TotalAmount = payload.TotalAmount
	existing.Status = payload.Status
	if existing.Status == "" {
		existing.Status = models.OrderStatusPending
	}
	existing.PaymentMethod = payload.PaymentMethod
	existing.ShippingAddress = payload.ShippingAddress
	existing.UpdatedAt = time.Now()

	if err := s.store.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *OrderService) DeleteOrder(id uint) (bool, error) {
	exists, err := s.store.ExistsByID(id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if err := s.store.DeleteByID(id); err != nil {
		return false, err
	}
	return true, nil
}

func newOrderNumber() string {
	return fmt.Sprintf("ORD-%s", strings.ToUpper(uuid.NewString()[:8]))
}
