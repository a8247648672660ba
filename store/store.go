// Package store declares the persistence facades consumed by the engines
// and controllers. Identifiers are opaque 24-hex-character strings; a lookup
// with an id that cannot reference any document reports not-found rather
// than a decoding error.
package store

import (
	"context"

	"github.com/anurag-b72/ecommerce-shopping-backend/models"
)

type UserStore interface {
	Insert(ctx context.Context, user models.User) (string, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	// PhoneInUseByOther reports whether a different user already owns phone.
	PhoneInUseByOther(ctx context.Context, phone, excludeID string) (bool, error)
	Update(ctx context.Context, id string, patch models.UserPatch) error
	// ReplaceCart writes the whole cart array back ($set semantics).
	ReplaceCart(ctx context.Context, id string, items []models.CartItem) error
	// PushCartItem appends one line item ($push semantics).
	PushCartItem(ctx context.Context, id string, item models.CartItem) error
	List(ctx context.Context) ([]models.User, error)
}

type ProductStore interface {
	Insert(ctx context.Context, product models.Product) (string, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Update(ctx context.Context, id string, patch models.ProductPatch) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Product, error)
}

type AdminStore interface {
	Insert(ctx context.Context, admin models.Admin) (string, error)
	FindByID(ctx context.Context, id string) (*models.Admin, error)
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	List(ctx context.Context) ([]models.Admin, error)
}

type OrderStore interface {
	Insert(ctx context.Context, order models.Order) (string, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	// SetApprovalStatus overwrites the status unconditionally and returns the
	// updated order. There is deliberately no terminal-state guard.
	SetApprovalStatus(ctx context.Context, id string, status models.ApprovalStatus) (*models.Order, error)
}

// Stores bundles the four collections for injection at process start.
type Stores struct {
	Users    UserStore
	Products ProductStore
	Admins   AdminStore
	Orders   OrderStore
}
