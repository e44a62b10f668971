package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"pizzamia_back_end/internal/models"
)

func chefRouter(t *testing.T, userID string) *gin.Engine {
	t.Helper()
	r := testRouter(t, userID, userID+"@example.com")
	r.GET("/api/chef/orders", GetAllOrders)
	r.PUT("/api/chef/orders/:orderId/items/:seq/status", UpdateOrderItemStatus)
	return r
}

func TestGetAllOrders_SeesEveryUser(t *testing.T) {
	r := chefRouter(t, "chef1")

	// Un ordine ospite finisce nel registro come quelli autenticati.
	doJSON(t, r, http.MethodPost, "/api/orders/guest", gin.H{
		"items": []gin.H{{"id": "m1", "name": "Margherita", "price": 6.50, "quantity": 1}},
	})
	doJSON(t, r, http.MethodPost, "/api/cart/add", gin.H{"id": "m3"})
	doJSON(t, r, http.MethodPost, "/api/orders/confirm", nil)

	w := doJSON(t, r, http.MethodGet, "/api/chef/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode(t, w)["orders"].([]any), 2)
}

func TestUpdateOrderItemStatus(t *testing.T) {
	r := chefRouter(t, "chef1")

	doJSON(t, r, http.MethodPost, "/api/cart/add", gin.H{"id": "m1"})
	w := doJSON(t, r, http.MethodPost, "/api/orders/confirm", nil)
	orderID := decode(t, w)["order_id"].(string)

	w = doJSON(t, r, http.MethodPut, "/api/chef/orders/"+orderID+"/items/0/status", gin.H{"status": models.StatusCompleted})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/chef/orders", nil)
	snaps := decode(t, w)["orders"].([]any)
	item := snaps[0].(map[string]any)["items"].([]any)[0].(map[string]any)
	require.Equal(t, models.StatusCompleted, item["status"])
}

func TestUpdateOrderItemStatus_Validation(t *testing.T) {
	r := chefRouter(t, "chef1")

	w := doJSON(t, r, http.MethodPut, "/api/chef/orders/x/items/abc/status", gin.H{"status": models.StatusCompleted})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/chef/orders/x/items/0/status", gin.H{"status": "bruciata"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/chef/orders/inesistente/items/0/status", gin.H{"status": models.StatusPending})
	require.Equal(t, http.StatusNotFound, w.Code)
}
