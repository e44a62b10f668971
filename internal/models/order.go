package models

// Stati possibili di una riga d'ordine. Il flusso chef è volutamente
// semplice: in attesa oppure completato.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// OrderItem è una riga del carrello o di uno snapshot d'ordine confermato.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Status   string  `json:"status"`
	Notes    string  `json:"notes,omitempty"`
	// Valorizzato solo quando la riga viene copiata in uno snapshot
	// (storico privato o registro globale chef), mai nel carrello vivo.
	UserEmail string `json:"userEmail,omitempty"`
}

// OrderSnapshot è la copia immutabile del carrello presa alla conferma.
type OrderSnapshot struct {
	OrderID   string      `json:"order_id"`
	UserEmail string      `json:"user_email"`
	CreatedAt int64       `json:"created_at"` // epoch ms
	Items     []OrderItem `json:"items"`
}

// Total calcola l'importo complessivo di un insieme di righe.
func Total(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
