package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anurag-b72/ecommerce-shopping-backend/errs"
	"github.com/anurag-b72/ecommerce-shopping-backend/models"
)

func TestUserCartWritesAreIsolated(t *testing.T) {
	ctx := context.Background()
	stores := New()

	id, err := stores.Users.Insert(ctx, models.User{Phone: "1112223334"})
	require.NoError(t, err)

	items := []models.CartItem{{ProductID: "p1", Quantity: 1}}
	require.NoError(t, stores.Users.ReplaceCart(ctx, id, items))

	// Mutating the caller's slice must not leak into stored state.
	items[0].Quantity = 99
	user, err := stores.Users.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, user.Cart[0].Quantity)
}

func TestPushCartItemAppends(t *testing.T) {
	ctx := context.Background()
	stores := New()

	id, err := stores.Users.Insert(ctx, models.User{Phone: "1112223334"})
	require.NoError(t, err)

	require.NoError(t, stores.Users.PushCartItem(ctx, id, models.CartItem{ProductID: "p1", Quantity: 1}))
	require.NoError(t, stores.Users.PushCartItem(ctx, id, models.CartItem{ProductID: "p2", Quantity: 2}))

	user, err := stores.Users.FindByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, user.Cart, 2)
	assert.Equal(t, "p1", user.Cart[0].ProductID)
	assert.Equal(t, "p2", user.Cart[1].ProductID)
}

func TestPhoneInUseByOther(t *testing.T) {
	ctx := context.Background()
	stores := New()

	id, err := stores.Users.Insert(ctx, models.User{Phone: "1112223334"})
	require.NoError(t, err)
	_, err = stores.Users.Insert(ctx, models.User{Phone: "9998887776"})
	require.NoError(t, err)

	taken, err := stores.Users.PhoneInUseByOther(ctx, "9998887776", id)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = stores.Users.PhoneInUseByOther(ctx, "1112223334", id)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestProductListInsertionOrderAfterDelete(t *testing.T) {
	ctx := context.Background()
	stores := New()

	a, err := stores.Products.Insert(ctx, models.Product{Name: "A"})
	require.NoError(t, err)
	b, err := stores.Products.Insert(ctx, models.Product{Name: "B"})
	require.NoError(t, err)
	c, err := stores.Products.Insert(ctx, models.Product{Name: "C"})
	require.NoError(t, err)

	require.NoError(t, stores.Products.Delete(ctx, b))

	products, err := stores.Products.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, a, products[0].ID.Hex())
	assert.Equal(t, c, products[1].ID.Hex())
}

func TestFindMissingReportsNotFound(t *testing.T) {
	ctx := context.Background()
	stores := New()

	_, err := stores.Users.FindByID(ctx, "6528a1d4b2f9c3e7a0d1f2e3")
	assert.True(t, errs.Is(err, errs.KindNotFound))
	_, err = stores.Products.FindByID(ctx, "6528a1d4b2f9c3e7a0d1f2e3")
	assert.True(t, errs.Is(err, errs.KindNotFound))
	_, err = stores.Admins.FindByID(ctx, "6528a1d4b2f9c3e7a0d1f2e3")
	assert.True(t, errs.Is(err, errs.KindNotFound))
	_, err = stores.Orders.FindByID(ctx, "6528a1d4b2f9c3e7a0d1f2e3")
	assert.True(t, errs.Is(err, errs.KindNotFound))
}

func TestSetApprovalStatusOverwrites(t *testing.T) {
	ctx := context.Background()
	stores := New()

	id, err := stores.Orders.Insert(ctx, models.Order{ApprovalStatus: models.ApprovalPending})
	require.NoError(t, err)

	updated, err := stores.Orders.SetApprovalStatus(ctx, id, models.ApprovalApproved)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, updated.ApprovalStatus)

	updated, err = stores.Orders.SetApprovalStatus(ctx, id, models.ApprovalRejected)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalRejected, updated.ApprovalStatus)
}
