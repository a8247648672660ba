// Package cart mutates the shopping cart embedded in a user document.
//
// Every mutation is a read-modify-write of the whole cart array. The store
// only offers whole-array replacement, so concurrent mutations for the same
// user are serialized by a per-user mutex; without it two AddItem calls
// could read the same prior state and one write would clobber the other.
package cart

import (
	"context"
	"sync"

	"github.com/anurag-b72/ecommerce-shopping-backend/errs"
	"github.com/anurag-b72/ecommerce-shopping-backend/models"
	"github.com/anurag-b72/ecommerce-shopping-backend/store"
)

type Engine struct {
	users    store.UserStore
	products store.ProductStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewEngine(users store.UserStore, products store.ProductStore) *Engine {
	return &Engine{
		users:    users,
		products: products,
		locks:    make(map[string]*sync.Mutex),
	}
}

// userLock returns the mutex serializing cart mutations for one user.
func (e *Engine) userLock(userID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[userID] = l
	}
	return l
}

// AddItem puts quantity units of a product into the user's cart. If the
// product is already present the quantities are merged, never duplicated
// into a second line item. Returns the resulting quantity for the product
// and whether an existing line item was merged into.
func (e *Engine) AddItem(ctx context.Context, userID, productID string, quantity int) (int, bool, error) {
	if quantity < 1 {
		return 0, false, errs.Validation("Quantity must be at least 1.")
	}

	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()

	user, err := e.users.FindByID(ctx, userID)
	if err != nil {
		return 0, false, err
	}
	if _, err := e.products.FindByID(ctx, productID); err != nil {
		return 0, false, err
	}

	for i, item := range user.Cart {
		if item.ProductID == productID {
			user.Cart[i].Quantity += quantity
			if err := e.users.ReplaceCart(ctx, userID, user.Cart); err != nil {
				return 0, false, err
			}
			return user.Cart[i].Quantity, true, nil
		}
	}

	if err := e.users.PushCartItem(ctx, userID, models.CartItem{ProductID: productID, Quantity: quantity}); err != nil {
		return 0, false, err
	}
	return quantity, false, nil
}

// UpdateQuantity overwrites the quantity of an existing line item. Unlike
// AddItem it never inserts: an absent item is an error.
func (e *Engine) UpdateQuantity(ctx context.Context, userID, productID string, newQuantity int) error {
	if newQuantity < 1 {
		return errs.Validation("Quantity must be at least 1.")
	}

	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()

	user, err := e.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	for i, item := range user.Cart {
		if item.ProductID == productID {
			user.Cart[i].Quantity = newQuantity
			return e.users.ReplaceCart(ctx, userID, user.Cart)
		}
	}
	return errs.NotFound("Product not found in the user's shopping cart")
}

// RemoveItem deletes one line item at its position; the relative order of
// the remaining items is preserved.
func (e *Engine) RemoveItem(ctx context.Context, userID, productID string) error {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()

	user, err := e.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	for i, item := range user.Cart {
		if item.ProductID == productID {
			user.Cart = append(user.Cart[:i], user.Cart[i+1:]...)
			return e.users.ReplaceCart(ctx, userID, user.Cart)
		}
	}
	return errs.NotFound("Product not found in the user's shopping cart")
}

// GetCart returns the cart's line items verbatim, with no price join.
func (e *Engine) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	user, err := e.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Cart, nil
}

// ComputeTotal sums price x quantity over the cart. A line item whose
// product no longer exists in the catalog contributes zero; this silent
// skip is a deliberate policy, distinct from the hard failure purchase
// applies to the same condition.
func (e *Engine) ComputeTotal(ctx context.Context, userID string) (float64, error) {
	user, err := e.users.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, item := range user.Cart {
		product, err := e.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if errs.Is(err, errs.KindNotFound) {
				continue
			}
			return 0, err
		}
		total += product.Price * float64(item.Quantity)
	}
	return total, nil
}
