// Package order turns a user's cart into an immutable order snapshot and
// drives the order's approval lifecycle.
package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/anurag-b72/ecommerce-shopping-backend/errs"
	"github.com/anurag-b72/ecommerce-shopping-backend/models"
	"github.com/anurag-b72/ecommerce-shopping-backend/store"
)

// Action is an admin's decision on a pending order.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

type Engine struct {
	users    store.UserStore
	products store.ProductStore
	admins   store.AdminStore
	orders   store.OrderStore

	now func() time.Time
}

func NewEngine(users store.UserStore, products store.ProductStore, admins store.AdminStore, orders store.OrderStore) *Engine {
	return &Engine{
		users:    users,
		products: products,
		admins:   admins,
		orders:   orders,
		now:      time.Now,
	}
}

// orderRef gives each order a human-quotable reference alongside its id.
func orderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// CompletePurchase snapshots the user's cart into a new pending order.
//
// Every line item is joined against the catalog for pricing; a missing
// product is a hard failure here, in contrast to the cart total's silent
// skip. The items are deep-copied so later cart mutations cannot reach
// into the stored order. The cart itself is left untouched.
func (e *Engine) CompletePurchase(ctx context.Context, userID, userAddress string) (*models.Order, error) {
	user, err := e.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, item := range user.Cart {
		product, err := e.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if errs.Is(err, errs.KindNotFound) {
				return nil, errs.NotFound("Product with ID " + item.ProductID + " not found")
			}
			return nil, err
		}
		total += product.Price * float64(item.Quantity)
	}

	items := make([]models.CartItem, len(user.Cart))
	copy(items, user.Cart)

	order := models.Order{
		OrderRef:       orderRef(),
		UserID:         userID,
		UserAddress:    userAddress,
		UserPhone:      user.Phone,
		Items:          items,
		TotalPrice:     total,
		PurchaseTime:   e.now(),
		ApprovalStatus: models.ApprovalPending,
	}

	id, err := e.orders.Insert(ctx, order)
	if err != nil {
		return nil, err
	}
	created, err := e.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (e *Engine) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return e.orders.FindByID(ctx, orderID)
}

func (e *Engine) ListOrders(ctx context.Context) ([]models.Order, error) {
	return e.orders.List(ctx)
}

// SetApprovalStatus applies an admin's approve/reject decision. The admin
// id is only checked for existence; there is no role or permission model.
// The status write is a blind overwrite, so a terminal order can be flipped
// by a later decision.
func (e *Engine) SetApprovalStatus(ctx context.Context, orderID, adminID string, action Action) (*models.Order, error) {
	if _, err := e.orders.FindByID(ctx, orderID); err != nil {
		return nil, err
	}
	if _, err := e.admins.FindByID(ctx, adminID); err != nil {
		return nil, err
	}

	var status models.ApprovalStatus
	switch action {
	case ActionApprove:
		status = models.ApprovalApproved
	case ActionReject:
		status = models.ApprovalRejected
	default:
		return nil, errs.Validation("order_action must be 'approve' or 'reject'")
	}

	return e.orders.SetApprovalStatus(ctx, orderID, status)
}
