// Package memstore is an in-memory implementation of the store facades,
// guarded by a single RWMutex. It backs the package tests and keeps the
// document-level semantics of the mongodb implementation: cart writes
// replace the whole array, inserts assign fresh 24-hex ids, and list order
// is insertion order.
package memstore

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anurag-b72/ecommerce-shopping-backend/errs"
	"github.com/anurag-b72/ecommerce-shopping-backend/models"
	"github.com/anurag-b72/ecommerce-shopping-backend/store"
)

// New returns an empty store set backed by shared in-memory state.
func New() store.Stores {
	s := &state{
		users:    make(map[string]models.User),
		products: make(map[string]models.Product),
		admins:   make(map[string]models.Admin),
		orders:   make(map[string]models.Order),
	}
	return store.Stores{
		Users:    &userStore{s},
		Products: &productStore{s},
		Admins:   &adminStore{s},
		Orders:   &orderStore{s},
	}
}

type state struct {
	mu       sync.RWMutex
	users    map[string]models.User
	products map[string]models.Product
	admins   map[string]models.Admin
	orders   map[string]models.Order

	userOrder    []string
	productOrder []string
	adminOrder   []string
	orderOrder   []string
}

func copyItems(items []models.CartItem) []models.CartItem {
	if items == nil {
		return nil
	}
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

// ---- users ----

type userStore struct{ s *state }

func (u *userStore) Insert(_ context.Context, user models.User) (string, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	id := user.ID.Hex()
	user.Cart = copyItems(user.Cart)
	u.s.users[id] = user
	u.s.userOrder = append(u.s.userOrder, id)
	return id, nil
}

func (u *userStore) FindByID(_ context.Context, id string) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	user, ok := u.s.users[id]
	if !ok {
		return nil, errs.NotFound("User not found")
	}
	user.Cart = copyItems(user.Cart)
	return &user, nil
}

func (u *userStore) FindByPhone(_ context.Context, phone string) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for _, id := range u.s.userOrder {
		if user, ok := u.s.users[id]; ok && user.Phone == phone {
			user.Cart = copyItems(user.Cart)
			return &user, nil
		}
	}
	return nil, errs.NotFound("User not found")
}

func (u *userStore) PhoneInUseByOther(_ context.Context, phone, excludeID string) (bool, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for id, user := range u.s.users {
		if id != excludeID && user.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (u *userStore) Update(_ context.Context, id string, patch models.UserPatch) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	user, ok := u.s.users[id]
	if !ok {
		return errs.NotFound("User not found")
	}
	for field, value := range patch.Fields() {
		switch field {
		case "first_name":
			user.FirstName = value.(string)
		case "last_name":
			user.LastName = value.(string)
		case "username":
			user.Username = value.(string)
		case "phone":
			user.Phone = value.(string)
		case "password":
			user.Password = value.(string)
		case "email":
			user.Email = value.(string)
		case "profile_url":
			user.ProfileURL = value.(string)
		}
	}
	u.s.users[id] = user
	return nil
}

func (u *userStore) ReplaceCart(_ context.Context, id string, items []models.CartItem) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	user, ok := u.s.users[id]
	if !ok {
		return errs.NotFound("User not found")
	}
	user.Cart = copyItems(items)
	u.s.users[id] = user
	return nil
}

func (u *userStore) PushCartItem(_ context.Context, id string, item models.CartItem) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	user, ok := u.s.users[id]
	if !ok {
		return errs.NotFound("User not found")
	}
	user.Cart = append(copyItems(user.Cart), item)
	u.s.users[id] = user
	return nil
}

func (u *userStore) List(_ context.Context) ([]models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	users := make([]models.User, 0, len(u.s.userOrder))
	for _, id := range u.s.userOrder {
		if user, ok := u.s.users[id]; ok {
			user.Cart = copyItems(user.Cart)
			users = append(users, user)
		}
	}
	return users, nil
}

// ---- products ----

type productStore struct{ s *state }

func (p *productStore) Insert(_ context.Context, product models.Product) (string, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	id := product.ID.Hex()
	p.s.products[id] = product
	p.s.productOrder = append(p.s.productOrder, id)
	return id, nil
}

func (p *productStore) FindByID(_ context.Context, id string) (*models.Product, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	product, ok := p.s.products[id]
	if !ok {
		return nil, errs.NotFound("Product not found")
	}
	return &product, nil
}

func (p *productStore) Update(_ context.Context, id string, patch models.ProductPatch) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	product, ok := p.s.products[id]
	if !ok {
		return errs.NotFound("Product not found")
	}
	for field, value := range patch.Fields() {
		switch field {
		case "name":
			product.Name = value.(string)
		case "description":
			product.Description = value.(string)
		case "price":
			product.Price = value.(float64)
		case "image_url":
			product.ImageURL = value.(string)
		}
	}
	p.s.products[id] = product
	return nil
}

func (p *productStore) Delete(_ context.Context, id string) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if _, ok := p.s.products[id]; !ok {
		return errs.NotFound("Product not found")
	}
	delete(p.s.products, id)
	for i, pid := range p.s.productOrder {
		if pid == id {
			p.s.productOrder = append(p.s.productOrder[:i], p.s.productOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (p *productStore) List(_ context.Context) ([]models.Product, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	products := make([]models.Product, 0, len(p.s.productOrder))
	for _, id := range p.s.productOrder {
		if product, ok := p.s.products[id]; ok {
			products = append(products, product)
		}
	}
	return products, nil
}

// ---- admins ----

type adminStore struct{ s *state }

func (a *adminStore) Insert(_ context.Context, admin models.Admin) (string, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	id := admin.ID.Hex()
	a.s.admins[id] = admin
	a.s.adminOrder = append(a.s.adminOrder, id)
	return id, nil
}

func (a *adminStore) FindByID(_ context.Context, id string) (*models.Admin, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	admin, ok := a.s.admins[id]
	if !ok {
		return nil, errs.NotFound("Admin not registered.")
	}
	return &admin, nil
}

func (a *adminStore) FindByUsername(_ context.Context, username string) (*models.Admin, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	for _, id := range a.s.adminOrder {
		if admin, ok := a.s.admins[id]; ok && admin.Username == username {
			return &admin, nil
		}
	}
	return nil, errs.NotFound("Admin not registered.")
}

func (a *adminStore) List(_ context.Context) ([]models.Admin, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	admins := make([]models.Admin, 0, len(a.s.adminOrder))
	for _, id := range a.s.adminOrder {
		if admin, ok := a.s.admins[id]; ok {
			admins = append(admins, admin)
		}
	}
	return admins, nil
}

// ---- orders ----

type orderStore struct{ s *state }

func (o *orderStore) Insert(_ context.Context, order models.Order) (string, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	id := order.ID.Hex()
	order.Items = copyItems(order.Items)
	o.s.orders[id] = order
	o.s.orderOrder = append(o.s.orderOrder, id)
	return id, nil
}

func (o *orderStore) FindByID(_ context.Context, id string) (*models.Order, error) {
	o.s.mu.RLock()
	defer o.s.mu.RUnlock()
	order, ok := o.s.orders[id]
	if !ok {
		return nil, errs.NotFound("Order not found.")
	}
	order.Items = copyItems(order.Items)
	return &order, nil
}

func (o *orderStore) List(_ context.Context) ([]models.Order, error) {
	o.s.mu.RLock()
	defer o.s.mu.RUnlock()
	orders := make([]models.Order, 0, len(o.s.orderOrder))
	for _, id := range o.s.orderOrder {
		if order, ok := o.s.orders[id]; ok {
			order.Items = copyItems(order.Items)
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (o *orderStore) SetApprovalStatus(_ context.Context, id string, status models.ApprovalStatus) (*models.Order, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	order, ok := o.s.orders[id]
	if !ok {
		return nil, errs.NotFound("Order not found.")
	}
	order.ApprovalStatus = status
	o.s.orders[id] = order
	updated := order
	updated.Items = copyItems(order.Items)
	return &updated, nil
}
