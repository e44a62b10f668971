package models

// Offer è un'offerta promozionale del catalogo statico.
type Offer struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	Description   string  `json:"description"`
	Emoji         string  `json:"emoji"`
	Discount      int     `json:"discount,omitempty"`
	Category      string  `json:"category"`
}

// OfferSection raggruppa le offerte per fascia di pubblico (carousel app).
type OfferSection struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Offers   []Offer `json:"offers"`
}
