package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"pizzamia_back_end/internal/kvstore"
	"pizzamia_back_end/internal/orders"
)

// testRouter monta le rotte carrello/ordini su un servizio in memoria, con un
// middleware finto che inietta l'identità al posto del JWT.
func testRouter(t *testing.T, userID, email string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	Orders = orders.NewService(kvstore.NewMemoryStore(), orders.NewMemoryGlobalLog())
	Sessions = orders.NewSessionEvents()
	Orders.Subscribe(Sessions)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
			c.Set("email", email)
		}
	})

	r.GET("/api/cart", GetCart)
	r.POST("/api/cart/add", AddToCart)
	r.POST("/api/cart/custom", AddCustomItem)
	r.PUT("/api/cart/quantity", UpdateQuantity)
	r.DELETE("/api/cart/:itemId", RemoveFromCart)
	r.DELETE("/api/cart", ClearCart)
	r.POST("/api/auth/logout", Logout)
	r.POST("/api/orders/confirm", ConfirmOrder)
	r.POST("/api/orders/guest", ConfirmGuestOrder)
	r.GET("/api/orders/history", GetOrderHistory)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestGetCart_Empty(t *testing.T) {
	r := testRouter(t, "u1", "mario@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	require.Empty(t, body["items"])
	require.EqualValues(t, 0, body["total"])
	require.Equal(t, false, body["has_offer_in_cart"])
}

func TestAddToCart_PriceFromCatalog(t *testing.T) {
	r := testRouter(t, "u1", "mario@example.com")

	// Il prezzo inviato dal client viene ignorato: fa fede il catalogo.
	w := doJSON(t, r, http.MethodPost, "/api/cart/add", gin.H{"id": "m1", "quantity": 2, "price": 0.01})
	require.Equal(t, http.StatusOK, w.Code)

	items := decode(t, w)["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	require.Equal(t, "Margherita", item["name"])
	require.InDelta(t, 6.50, item["price"].(float64), 0.001)
	require.EqualValues(t, 2, item["quantity"])
}

func TestAddToCart_UnknownID(t *testing.T) {
	r := testRouter(t, "u1", "mario@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/cart/add", gin.H{"id": "non_esiste"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddToCart_Unauthenticated(t *testing.T) {
	r := testRouter(t, "", "")

	w := doJSON(t, r, http.MethodPost, "/api/cart/add", gin.H{"id": "m1"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddCustomItem(t *testing.T) {
	r := testRouter(t, "u1", "mario@example.com")

	payload := gin.H{"pizzaId": "m1", "customizations": []string{"extra_mozzarella"}, "notes": "senza basilico"}
	w := doJSON(t, r, http.MethodPost, "/api/cart/custom", payload)
	require.Equal(t, http.StatusOK, w.Code)

	// Due richieste identiche producono due righe distinte.
	w = doJSON(t, r, http.MethodPost, "/api/cart/custom", payload)
	require.Equal(t, http.StatusOK, w.Code)

	items := decode(t, w)["items"].([]any)
	require.Len(t, items, 2)
	require.NotEqual(t, items[0].(map[string]any)["id"], items[1].(map[string]any)["id"])
}

func TestUpdateQuantityAndRemove(t *testing.T) {
	r := testRouter(t, "u1", "mario@example.com")

	doJSON(t, r, http.MethodPost, "/api/cart/add", gin.H{"id": "m1"})

	w := doJSON(t, r, http.MethodPut, "/api/cart/quantity", gin.H{"id": "m1", "quantity": 4})
	require.Equal(t, http.StatusOK, w.Code)
	items := decode(t, w)["items"].([]any)
	require.EqualValues(t, 4, items[0].(map[string]any)["quantity"])

	w = doJSON(t, r, http.MethodDelete, "/api/cart/m1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, decode(t, w)["items"])
}

func TestConfirmOrderFlow(t *testing.T) {
	r := testRouter(t, "u1", "mario@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/orders/confirm", nil)
	require.Equal(t, http.StatusBadRequest, w.Code) // carrello vuoto

	doJSON(t, r, http.MethodPost, "/api/cart/add", gin.H{"id": "kids1"})
	w = doJSON(t, r, http.MethodPost, "/api/orders/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.NotEmpty(t, body["order_id"])
	require.InDelta(t, 4.99, body["total"].(float64), 0.001)

	// Dopo la conferma il carrello è vuoto e lo storico ha un ordine.
	w = doJSON(t, r, http.MethodGet, "/api/cart", nil)
	require.Empty(t, decode(t, w)["items"])

	w = doJSON(t, r, http.MethodGet, "/api/orders/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode(t, w)["orders"].([]any), 1)
}

func TestLogout_KeepsPersistedRecords(t *testing.T) {
	r := testRouter(t, "u1", "mario@example.com")

	doJSON(t, r, http.MethodPost, "/api/cart/add", gin.H{"id": "kids1"})
	doJSON(t, r, http.MethodPost, "/api/orders/confirm", nil)
	doJSON(t, r, http.MethodPost, "/api/cart/add", gin.H{"id": "m1"})

	w := doJSON(t, r, http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Carrello, storico e riscatti sopravvivono al logout e ricaricano al
	// prossimo accesso; sparisce solo il profilo in cache.
	w = doJSON(t, r, http.MethodGet, "/api/cart", nil)
	require.Len(t, decode(t, w)["items"].([]any), 1)

	w = doJSON(t, r, http.MethodGet, "/api/orders/history", nil)
	require.Len(t, decode(t, w)["orders"].([]any), 1)
}

func TestConfirmGuestOrder(t *testing.T) {
	r := testRouter(t, "", "")

	w := doJSON(t, r, http.MethodPost, "/api/orders/guest", gin.H{
		"items": []gin.H{{"id": "m3", "name": "Diavola", "price": 8.00, "quantity": 1}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	items := decode(t, w)["items"].([]any)
	require.Equal(t, orders.GuestEmail, items[0].(map[string]any)["userEmail"])
}

func TestConfirmGuestOrder_Empty(t *testing.T) {
	r := testRouter(t, "", "")

	w := doJSON(t, r, http.MethodPost, "/api/orders/guest", gin.H{"items": []gin.H{}})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
