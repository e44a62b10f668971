package catalog

import "pizzamia_back_end/internal/models"

// Menu pizze: tre categorie come nelle tab dell'app (rosse, bianche, speciali).

var pizzas = []models.Pizza{
	{
		ID: "m1", Name: "Margherita", Price: 6.50, Category: models.CategoryRosse,
		Description:     "Pomodoro, mozzarella e basilico",
		FullDescription: "La regina delle pizze: pomodoro San Marzano, fior di latte e basilico fresco su impasto a lunga lievitazione.",
		Ingredients:     []string{"pomodoro", "mozzarella", "basilico", "olio EVO"},
		ImageKey:        "pizzas/margherita.jpg",
		Nutrition:       models.Nutrition{Calories: "810 kcal", Carbs: "98 g", Protein: "34 g", Fat: "29 g"},
	},
	{
		ID: "m2", Name: "Marinara", Price: 5.50, Category: models.CategoryRosse,
		Description:     "Pomodoro, aglio e origano",
		FullDescription: "La più antica delle pizze napoletane: pomodoro, aglio, origano e un filo d'olio extravergine.",
		Ingredients:     []string{"pomodoro", "aglio", "origano", "olio EVO"},
		ImageKey:        "pizzas/marinara.jpg",
		Nutrition:       models.Nutrition{Calories: "720 kcal", Carbs: "102 g", Protein: "21 g", Fat: "18 g"},
	},
	{
		ID: "m3", Name: "Diavola", Price: 8.00, Category: models.CategoryRosse,
		Description:     "Pomodoro, mozzarella e salame piccante",
		FullDescription: "Per chi ama i sapori decisi: salame piccante calabrese su base rossa con fior di latte.",
		Ingredients:     []string{"pomodoro", "mozzarella", "salame piccante"},
		ImageKey:        "pizzas/diavola.jpg",
		Nutrition:       models.Nutrition{Calories: "950 kcal", Carbs: "96 g", Protein: "41 g", Fat: "42 g"},
	},
	{
		ID: "m4", Name: "Capricciosa", Price: 9.00, Category: models.CategoryRosse,
		Description:     "Prosciutto, funghi, carciofi e olive",
		FullDescription: "Un classico ricco: prosciutto cotto, funghi champignon, carciofini e olive nere.",
		Ingredients:     []string{"pomodoro", "mozzarella", "prosciutto cotto", "funghi", "carciofi", "olive"},
		ImageKey:        "pizzas/capricciosa.jpg",
		Nutrition:       models.Nutrition{Calories: "980 kcal", Carbs: "99 g", Protein: "45 g", Fat: "40 g"},
	},
	{
		ID: "m5", Name: "Quattro Formaggi", Price: 8.50, Category: models.CategoryBianche,
		Description:     "Mozzarella, gorgonzola, fontina e parmigiano",
		FullDescription: "Base bianca con quattro formaggi italiani fusi: cremosa, intensa, irresistibile.",
		Ingredients:     []string{"mozzarella", "gorgonzola", "fontina", "parmigiano"},
		ImageKey:        "pizzas/quattro-formaggi.jpg",
		Nutrition:       models.Nutrition{Calories: "1020 kcal", Carbs: "92 g", Protein: "48 g", Fat: "52 g"},
	},
	{
		ID: "m6", Name: "Boscaiola", Price: 9.00, Category: models.CategoryBianche,
		Description:     "Mozzarella, funghi e salsiccia",
		FullDescription: "Bianca di montagna: funghi porcini e salsiccia su letto di fior di latte.",
		Ingredients:     []string{"mozzarella", "funghi porcini", "salsiccia"},
		ImageKey:        "pizzas/boscaiola.jpg",
		Nutrition:       models.Nutrition{Calories: "990 kcal", Carbs: "94 g", Protein: "44 g", Fat: "46 g"},
	},
	{
		ID: "m7", Name: "Patate e Rosmarino", Price: 7.00, Category: models.CategoryBianche,
		Description:     "Patate al forno, rosmarino e mozzarella",
		FullDescription: "Comfort food in bianco: fettine di patate, rosmarino fresco e fior di latte.",
		Ingredients:     []string{"mozzarella", "patate", "rosmarino", "olio EVO"},
		ImageKey:        "pizzas/patate-rosmarino.jpg",
		Nutrition:       models.Nutrition{Calories: "870 kcal", Carbs: "112 g", Protein: "28 g", Fat: "31 g"},
	},
	{
		ID: "m8", Name: "Parma e Rucola", Price: 10.50, Category: models.CategorySpeciali,
		Description:     "Prosciutto di Parma, rucola e scaglie di grana",
		FullDescription: "Uscita dal forno viene coronata con Parma DOP 24 mesi, rucola e grana a scaglie.",
		Ingredients:     []string{"pomodoro", "mozzarella", "prosciutto di Parma", "rucola", "grana"},
		ImageKey:        "pizzas/parma-rucola.jpg",
		Nutrition:       models.Nutrition{Calories: "930 kcal", Carbs: "95 g", Protein: "49 g", Fat: "36 g"},
	},
	{
		ID: "m9", Name: "Bufala DOP", Price: 10.00, Category: models.CategorySpeciali,
		Description:     "Pomodorini, bufala campana e basilico",
		FullDescription: "Mozzarella di bufala campana DOP aggiunta a crudo su pomodorini del piennolo.",
		Ingredients:     []string{"pomodorini", "mozzarella di bufala", "basilico"},
		ImageKey:        "pizzas/bufala.jpg",
		Nutrition:       models.Nutrition{Calories: "890 kcal", Carbs: "90 g", Protein: "42 g", Fat: "38 g"},
	},
	{
		ID: "m10", Name: "Tartufo e Porcini", Price: 12.50, Category: models.CategorySpeciali,
		Description:     "Crema di tartufo, porcini e mozzarella",
		FullDescription: "La più pregiata del menu: crema di tartufo nero estivo e funghi porcini trifolati.",
		Ingredients:     []string{"mozzarella", "crema di tartufo", "funghi porcini"},
		ImageKey:        "pizzas/tartufo-porcini.jpg",
		Nutrition:       models.Nutrition{Calories: "960 kcal", Carbs: "91 g", Protein: "40 g", Fat: "45 g"},
	},
}

var pizzasByID map[string]models.Pizza

func init() {
	pizzasByID = make(map[string]models.Pizza, len(pizzas))
	for _, p := range pizzas {
		pizzasByID[p.ID] = p
	}
}

// AllPizzas restituisce l'intero menu.
func AllPizzas() []models.Pizza {
	out := make([]models.Pizza, len(pizzas))
	copy(out, pizzas)
	return out
}

// PizzasByCategory filtra il menu per categoria.
func PizzasByCategory(category string) []models.Pizza {
	var out []models.Pizza
	for _, p := range pizzas {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// PizzaByID cerca una pizza per id.
func PizzaByID(id string) (models.Pizza, bool) {
	p, ok := pizzasByID[id]
	return p, ok
}
