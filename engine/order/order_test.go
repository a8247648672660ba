package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anurag-b72/ecommerce-shopping-backend/errs"
	"github.com/anurag-b72/ecommerce-shopping-backend/models"
	"github.com/anurag-b72/ecommerce-shopping-backend/store"
	"github.com/anurag-b72/ecommerce-shopping-backend/store/memstore"
)

type fixture struct {
	eng    *Engine
	stores store.Stores
	userID string
	p1, p2 string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	stores := memstore.New()

	p1, err := stores.Products.Insert(ctx, models.Product{Name: "P1", Price: 10})
	require.NoError(t, err)
	p2, err := stores.Products.Insert(ctx, models.Product{Name: "P2", Price: 5})
	require.NoError(t, err)

	userID, err := stores.Users.Insert(ctx, models.User{
		FirstName: "Asha",
		Phone:     "9876543210",
		Cart: []models.CartItem{
			{ProductID: p1, Quantity: 2},
			{ProductID: p2, Quantity: 3},
		},
	})
	require.NoError(t, err)

	return &fixture{
		eng:    NewEngine(stores.Users, stores.Products, stores.Admins, stores.Orders),
		stores: stores,
		userID: userID,
		p1:     p1,
		p2:     p2,
	}
}

func (f *fixture) addAdmin(t *testing.T) string {
	t.Helper()
	id, err := f.stores.Admins.Insert(context.Background(), models.Admin{
		FirstName: "Root",
		Username:  "root",
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	return id
}

func TestCompletePurchase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.eng.CompletePurchase(ctx, f.userID, "221B Baker Street")
	require.NoError(t, err)

	assert.InDelta(t, 35, created.TotalPrice, 1e-9)
	assert.Equal(t, models.ApprovalPending, created.ApprovalStatus)
	assert.Equal(t, f.userID, created.UserID)
	assert.Equal(t, "221B Baker Street", created.UserAddress)
	assert.Equal(t, "9876543210", created.UserPhone)
	assert.NotEmpty(t, created.OrderRef)
	assert.False(t, created.PurchaseTime.IsZero())
	require.Len(t, created.Items, 2)
}

func TestCompletePurchaseSnapshotsCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.eng.CompletePurchase(ctx, f.userID, "addr")
	require.NoError(t, err)

	// Mutate the cart after purchase; the stored order must not change.
	require.NoError(t, f.stores.Users.ReplaceCart(ctx, f.userID, []models.CartItem{
		{ProductID: f.p1, Quantity: 99},
	}))

	stored, err := f.eng.GetOrder(ctx, created.ID.Hex())
	require.NoError(t, err)
	require.Len(t, stored.Items, 2)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Equal(t, 3, stored.Items[1].Quantity)
}

func TestCompletePurchaseDoesNotClearCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.eng.CompletePurchase(ctx, f.userID, "addr")
	require.NoError(t, err)

	user, err := f.stores.Users.FindByID(ctx, f.userID)
	require.NoError(t, err)
	assert.Len(t, user.Cart, 2)
}

func TestCompletePurchaseFailsOnMissingProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Deleting a referenced product is a hard failure for purchase, unlike
	// the cart total's silent skip.
	require.NoError(t, f.stores.Products.Delete(ctx, f.p2))

	_, err := f.eng.CompletePurchase(ctx, f.userID, "addr")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindNotFound))
	assert.Contains(t, err.Error(), f.p2)

	orders, err := f.eng.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCompletePurchaseUnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.eng.CompletePurchase(context.Background(), "6528a1d4b2f9c3e7a0d1f2e3", "addr")
	assert.True(t, errs.Is(err, errs.KindNotFound))
}

func TestSetApprovalStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	adminID := f.addAdmin(t)

	created, err := f.eng.CompletePurchase(ctx, f.userID, "addr")
	require.NoError(t, err)
	orderID := created.ID.Hex()

	updated, err := f.eng.SetApprovalStatus(ctx, orderID, adminID, ActionApprove)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, updated.ApprovalStatus)

	// No terminal-state guard: a later decision overwrites the status.
	updated, err = f.eng.SetApprovalStatus(ctx, orderID, adminID, ActionReject)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalRejected, updated.ApprovalStatus)
}

func TestSetApprovalStatusUnknownOrder(t *testing.T) {
	f := newFixture(t)
	adminID := f.addAdmin(t)

	_, err := f.eng.SetApprovalStatus(context.Background(), "6528a1d4b2f9c3e7a0d1f2e3", adminID, ActionApprove)
	assert.True(t, errs.Is(err, errs.KindNotFound))
}

func TestSetApprovalStatusUnknownAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.eng.CompletePurchase(ctx, f.userID, "addr")
	require.NoError(t, err)

	_, err = f.eng.SetApprovalStatus(ctx, created.ID.Hex(), "6528a1d4b2f9c3e7a0d1f2e3", ActionApprove)
	assert.True(t, errs.Is(err, errs.KindNotFound))

	stored, err := f.eng.GetOrder(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalPending, stored.ApprovalStatus)
}

func TestSetApprovalStatusInvalidAction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	adminID := f.addAdmin(t)

	created, err := f.eng.CompletePurchase(ctx, f.userID, "addr")
	require.NoError(t, err)

	_, err = f.eng.SetApprovalStatus(ctx, created.ID.Hex(), adminID, Action("escalate"))
	assert.True(t, errs.Is(err, errs.KindValidation))
}

func TestListOrdersInsertionOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.eng.CompletePurchase(ctx, f.userID, "addr-1")
	require.NoError(t, err)
	second, err := f.eng.CompletePurchase(ctx, f.userID, "addr-2")
	require.NoError(t, err)

	orders, err := f.eng.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
}
