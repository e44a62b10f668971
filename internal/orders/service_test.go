package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pizzamia_back_end/internal/catalog"
	"pizzamia_back_end/internal/kvstore"
	"pizzamia_back_end/internal/models"
)

// fakeClock avanza di un millisecondo a ogni lettura, così gli id sintetizzati
// delle personalizzazioni non collidono mai tra loro.
type fakeClock struct {
	current time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.current = c.current.Add(time.Millisecond)
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestService(t *testing.T) (*Service, *MemoryGlobalLog, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	global := NewMemoryGlobalLog()
	svc := NewService(kvstore.NewMemoryStore(), global).WithClock(clock.Now)
	return svc, global, clock
}

func margherita() NewItem {
	p, _ := catalog.PizzaByID("m1")
	return NewItem{ID: p.ID, Name: p.Name, Price: p.Price, Quantity: 1}
}

func TestAddToCart_MergesSameID(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	svc.AddToCart(ctx, "u1", margherita())
	item := margherita()
	item.Quantity = 2
	cart := svc.AddToCart(ctx, "u1", item)

	require.Len(t, cart, 1)
	require.Equal(t, "m1", cart[0].ID)
	require.Equal(t, 3, cart[0].Quantity)
	require.Equal(t, models.StatusPending, cart[0].Status)
}

func TestAddToCart_DistinctIDsAppend(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	svc.AddToCart(ctx, "u1", margherita())
	cart := svc.AddToCart(ctx, "u1", NewItem{ID: "kids1", Name: "Pizza Margherita Kids", Price: 4.99, Quantity: 1})

	require.Len(t, cart, 2)
}

func TestAddCustomizedItem_AlwaysDistinct(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	base, ok := catalog.PizzaByID("m1")
	require.True(t, ok)

	// Stessa base, stessi extra, stesse note: due righe distinte.
	svc.AddCustomizedItem(ctx, "u1", base, []string{"extra_basil"}, "ben cotta", 1)
	cart := svc.AddCustomizedItem(ctx, "u1", base, []string{"extra_basil"}, "ben cotta", 1)

	require.Len(t, cart, 2)
	require.NotEqual(t, cart[0].ID, cart[1].ID)
}

func TestAddCustomizedItem_PriceAndName(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	base, _ := catalog.PizzaByID("m1")

	cart := svc.AddCustomizedItem(ctx, "u1", base, []string{"extra_mozzarella", "extra_basil"}, "", 2)

	require.Len(t, cart, 1)
	require.InDelta(t, 6.50+1.50+0.50, cart[0].Price, 0.001)
	require.Equal(t, "Margherita (Mozzarella extra, Basilico extra)", cart[0].Name)
	require.Equal(t, 2, cart[0].Quantity)
}

func TestAddCustomizedItem_IgnoresUnknownExtras(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	base, _ := catalog.PizzaByID("m2")

	cart := svc.AddCustomizedItem(ctx, "u1", base, []string{"non_esiste"}, "", 0)

	require.Len(t, cart, 1)
	require.InDelta(t, base.Price, cart[0].Price, 0.001)
	require.Equal(t, base.Name, cart[0].Name)
	require.Equal(t, 1, cart[0].Quantity) // quantità minima 1
}

func TestUpdateQuantity(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	svc.AddToCart(ctx, "u1", margherita())
	cart := svc.UpdateQuantity(ctx, "u1", "m1", 5)
	require.Equal(t, 5, cart[0].Quantity)

	// Quantità zero o negativa equivale alla rimozione.
	cart = svc.UpdateQuantity(ctx, "u1", "m1", 0)
	require.Empty(t, cart)
}

func TestUpdateQuantity_UnknownIDNoOp(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	svc.AddToCart(ctx, "u1", margherita())
	cart := svc.UpdateQuantity(ctx, "u1", "fantasma", 3)

	require.Len(t, cart, 1)
	require.Equal(t, 1, cart[0].Quantity)
}

func TestRemoveFromCart_Idempotent(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	svc.AddToCart(ctx, "u1", margherita())
	cart := svc.RemoveFromCart(ctx, "u1", "m1")
	require.Empty(t, cart)

	cart = svc.RemoveFromCart(ctx, "u1", "m1")
	require.Empty(t, cart)
}

func TestConfirmOrder_EmptyCart(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ConfirmOrder(context.Background(), "u1", "mario@example.com")
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestConfirmOrder_NotAuthenticated(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ConfirmOrder(context.Background(), "", "mario@example.com")
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestConfirmOrder_StampsAndClears(t *testing.T) {
	svc, global, _ := newTestService(t)
	ctx := context.Background()

	svc.AddToCart(ctx, "u1", margherita())
	snap, err := svc.ConfirmOrder(ctx, "u1", "mario@example.com")
	require.NoError(t, err)

	require.NotEmpty(t, snap.OrderID)
	require.Equal(t, "mario@example.com", snap.UserEmail)
	require.Len(t, snap.Items, 1)
	require.Equal(t, "mario@example.com", snap.Items[0].UserEmail)

	// Il carrello si svuota, lo storico cresce di uno.
	require.Empty(t, svc.Cart(ctx, "u1"))
	history := svc.History(ctx, "u1")
	require.Len(t, history, 1)
	require.Equal(t, "m1", history[0][0].ID)

	// Il registro globale chef riceve lo snapshot.
	all, err := global.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, snap.OrderID, all[0].OrderID)
}

func TestConfirmOrder_NoOfferNoCooldown(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	svc.AddToCart(ctx, "u1", margherita())
	_, err := svc.ConfirmOrder(ctx, "u1", "mario@example.com")
	require.NoError(t, err)

	st := svc.State(ctx, "u1")
	require.Nil(t, st.LastSpin)
	require.Empty(t, st.Redeemed)
}

func TestConfirmOrder_RedeemsOffersAndStartsCooldown(t *testing.T) {
	svc, _, clock := newTestService(t)
	ctx := context.Background()

	svc.AddToCart(ctx, "u1", NewItem{ID: "kids1", Name: "Pizza Margherita Kids", Price: 4.99, Quantity: 1})
	svc.AddToCart(ctx, "u1", margherita())
	_, err := svc.ConfirmOrder(ctx, "u1", "mario@example.com")
	require.NoError(t, err)

	st := svc.State(ctx, "u1")
	require.Equal(t, []string{"kids1"}, st.Redeemed)
	require.NotNil(t, st.LastSpin)
	require.LessOrEqual(t, *st.LastSpin, clock.current.UnixMilli())

	// Lo stesso id riscattato di nuovo non duplica l'insieme.
	svc.AddToCart(ctx, "u1", NewItem{ID: "kids1", Name: "Pizza Margherita Kids", Price: 4.99, Quantity: 1})
	svc.AddToCart(ctx, "u1", NewItem{ID: "teens1", Name: "Pizza Diavola Student", Price: 6.99, Quantity: 1})
	_, err = svc.ConfirmOrder(ctx, "u1", "mario@example.com")
	require.NoError(t, err)

	st = svc.State(ctx, "u1")
	require.Equal(t, []string{"kids1", "teens1"}, st.Redeemed)
}

func TestConfirmOrderAsGuest(t *testing.T) {
	svc, global, _ := newTestService(t)
	ctx := context.Background()

	cart := []models.OrderItem{{ID: "m3", Name: "Diavola", Price: 8.00, Quantity: 2}}
	snap, err := svc.ConfirmOrderAsGuest(ctx, cart)
	require.NoError(t, err)
	require.Equal(t, GuestEmail, snap.UserEmail)
	require.Equal(t, GuestEmail, snap.Items[0].UserEmail)
	require.Equal(t, models.StatusPending, snap.Items[0].Status)

	all, err := global.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	// Nessun record per-utente viene toccato.
	st := svc.State(ctx, GuestEmail)
	require.Empty(t, st.Cart)
	require.Empty(t, st.History)
	require.Empty(t, st.Redeemed)
	require.Nil(t, st.LastSpin)
}

func TestConfirmOrderAsGuest_EmptyCart(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ConfirmOrderAsGuest(context.Background(), nil)
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestState_RoundTrip(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	svc.AddToCart(ctx, "u1", NewItem{ID: "adults1", Name: "Pizza Bufala Premium", Price: 9.99, Quantity: 1})
	_, err := svc.ConfirmOrder(ctx, "u1", "mario@example.com")
	require.NoError(t, err)
	svc.AddToCart(ctx, "u1", margherita())

	// La fotografia ricostruisce tutto dai record persistiti: i record
	// sopravvivono alla fine della sessione.
	st := svc.State(ctx, "u1")
	require.Len(t, st.Cart, 1)
	require.Len(t, st.History, 1)
	require.Equal(t, []string{"adults1"}, st.Redeemed)
	require.NotNil(t, st.LastSpin)

	// Stati di utenti diversi restano isolati.
	other := svc.State(ctx, "u2")
	require.Empty(t, other.Cart)
	require.Nil(t, other.LastSpin)
}

func TestResetCooldown_KeepsRedemptions(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	svc.AddToCart(ctx, "u1", NewItem{ID: "kids1", Name: "Pizza Margherita Kids", Price: 4.99, Quantity: 1})
	_, err := svc.ConfirmOrder(ctx, "u1", "mario@example.com")
	require.NoError(t, err)

	svc.ResetCooldown(ctx, "u1")

	st := svc.State(ctx, "u1")
	require.Nil(t, st.LastSpin)
	require.Equal(t, []string{"kids1"}, st.Redeemed)
}

func TestSubscribe_LoginResetsCooldown(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	events := NewSessionEvents()
	svc.Subscribe(events)

	svc.AddToCart(ctx, "u1", NewItem{ID: "kids1", Name: "Pizza Margherita Kids", Price: 4.99, Quantity: 1})
	_, err := svc.ConfirmOrder(ctx, "u1", "mario@example.com")
	require.NoError(t, err)
	require.NotNil(t, svc.State(ctx, "u1").LastSpin)

	events.PublishLogin(ctx, "u1")

	st := svc.State(ctx, "u1")
	require.Nil(t, st.LastSpin)
	// Carrello, storico e riscatti restano intatti.
	require.Len(t, st.History, 1)
	require.Equal(t, []string{"kids1"}, st.Redeemed)
}

func TestClearState(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	svc.AddToCart(ctx, "u1", NewItem{ID: "kids1", Name: "Pizza Margherita Kids", Price: 4.99, Quantity: 1})
	_, err := svc.ConfirmOrder(ctx, "u1", "mario@example.com")
	require.NoError(t, err)
	svc.AddToCart(ctx, "u1", margherita())

	svc.ClearState(ctx, "u1")

	st := svc.State(ctx, "u1")
	require.Empty(t, st.Cart)
	require.Empty(t, st.History)
	require.Empty(t, st.Redeemed)
	require.Nil(t, st.LastSpin)
}

func TestUpdateItemStatus(t *testing.T) {
	svc, global, _ := newTestService(t)
	ctx := context.Background()

	svc.AddToCart(ctx, "u1", margherita())
	svc.AddToCart(ctx, "u1", NewItem{ID: "m3", Name: "Diavola", Price: 8.00, Quantity: 1})
	snap, err := svc.ConfirmOrder(ctx, "u1", "mario@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateItemStatus(ctx, snap.OrderID, 1, models.StatusCompleted))

	all, err := global.All(ctx)
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, all[0].Items[0].Status)
	require.Equal(t, models.StatusCompleted, all[0].Items[1].Status)

	require.ErrorIs(t, svc.UpdateItemStatus(ctx, snap.OrderID, 7, models.StatusCompleted), ErrOrderItemNotFound)
	require.ErrorIs(t, svc.UpdateItemStatus(ctx, "ordine-inesistente", 0, models.StatusCompleted), ErrOrderItemNotFound)
}

func TestHasOfferInCart(t *testing.T) {
	require.False(t, HasOfferInCart(nil))
	require.False(t, HasOfferInCart([]models.OrderItem{{ID: "m1"}}))
	require.True(t, HasOfferInCart([]models.OrderItem{{ID: "m1"}, {ID: "gourmet2"}}))
}

func TestAllOrders_NewestFirst(t *testing.T) {
	svc, _, clock := newTestService(t)
	ctx := context.Background()

	svc.AddToCart(ctx, "u1", margherita())
	first, err := svc.ConfirmOrder(ctx, "u1", "mario@example.com")
	require.NoError(t, err)

	clock.Advance(time.Minute)
	svc.AddToCart(ctx, "u2", margherita())
	second, err := svc.ConfirmOrder(ctx, "u2", "luigi@example.com")
	require.NoError(t, err)

	all, err := svc.AllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, second.OrderID, all[0].OrderID)
	require.Equal(t, first.OrderID, all[1].OrderID)
}
