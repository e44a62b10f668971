package catalog

import "pizzamia_back_end/internal/models"

// Ingredienti extra selezionabili nella pagina dettagli pizza.
var customizations = []models.Customization{
	{ID: "extra_mozzarella", Name: "Mozzarella extra", Price: 1.50},
	{ID: "extra_basil", Name: "Basilico extra", Price: 0.50},
	{ID: "extra_cheese", Name: "Formaggio extra", Price: 1.00},
	{ID: "extra_mushrooms", Name: "Funghi extra", Price: 1.20},
	{ID: "extra_ham", Name: "Prosciutto extra", Price: 1.80},
	{ID: "extra_spicy_oil", Name: "Olio piccante", Price: 0.50},
}

var customizationsByID map[string]models.Customization

func init() {
	customizationsByID = make(map[string]models.Customization, len(customizations))
	for _, c := range customizations {
		customizationsByID[c.ID] = c
	}
}

// AllCustomizations restituisce la lista degli extra disponibili.
func AllCustomizations() []models.Customization {
	out := make([]models.Customization, len(customizations))
	copy(out, customizations)
	return out
}

// CustomizationByID cerca un extra per id.
func CustomizationByID(id string) (models.Customization, bool) {
	c, ok := customizationsByID[id]
	return c, ok
}
