package models

// Categorie del menu pizze.
const (
	CategoryRosse    = "rosse"
	CategoryBianche  = "bianche"
	CategorySpeciali = "speciali"
)

// Pizza è una voce del menu.
type Pizza struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	Description     string    `json:"description"`
	FullDescription string    `json:"fullDescription"`
	Ingredients     []string  `json:"ingredients"`
	Category        string    `json:"category"`
	ImageKey        string    `json:"imageKey,omitempty"` // oggetto MinIO
	Nutrition       Nutrition `json:"nutrition"`
}

type Nutrition struct {
	Calories string `json:"calories"`
	Carbs    string `json:"carbs"`
	Protein  string `json:"protein"`
	Fat      string `json:"fat"`
}

// Customization è un ingrediente extra selezionabile nella pagina dettagli.
type Customization struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
