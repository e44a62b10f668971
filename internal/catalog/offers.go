package catalog

import "pizzamia_back_end/internal/models"

// Catalogo offerte: dati statici, immutabili per tutta la vita del processo.
// Nessuna creazione/modifica a runtime.

// Offerte per bambini (5-12 anni)
var kidsOffers = []models.Offer{
	{ID: "kids1", Name: "Pizza Margherita Kids", Price: 4.99, OriginalPrice: 6.99, Description: "La pizza preferita dai bambini con ingredienti freschi", Discount: 29, Category: "kids"},
	{ID: "kids2", Name: "Pizza Prosciutto Kids", Price: 5.49, OriginalPrice: 7.49, Description: "Prosciutto cotto e mozzarella per i più piccoli", Discount: 27, Category: "kids"},
	{ID: "kids3", Name: "Pizza Wurstel Kids", Price: 5.99, OriginalPrice: 7.99, Description: "Wurstel e patatine fritte sulla pizza", Discount: 25, Category: "kids"},
	{ID: "kids4", Name: "Pizza Quattro Formaggi Kids", Price: 6.49, OriginalPrice: 8.49, Description: "Formaggi delicati per i piccoli gourmet", Discount: 24, Category: "kids"},
}

// Offerte per ragazzi (13-25 anni)
var teensOffers = []models.Offer{
	{ID: "teens1", Name: "Pizza Diavola Student", Price: 6.99, OriginalPrice: 9.99, Description: "Piccante e saporita per gli studenti", Discount: 30, Category: "teens"},
	{ID: "teens2", Name: "Pizza Capricciosa Promo", Price: 7.99, OriginalPrice: 11.99, Description: "Ricca e conveniente per i giovani", Discount: 33, Category: "teens"},
	{ID: "teens3", Name: "Pizza Tonno e Cipolle", Price: 7.49, OriginalPrice: 10.49, Description: "Sapore di mare per i palati giovani", Discount: 29, Category: "teens"},
	{ID: "teens4", Name: "Pizza Quattro Stagioni", Price: 8.99, OriginalPrice: 12.99, Description: "Tutte le stagioni in una pizza", Discount: 31, Category: "teens"},
}

// Offerte per adulti (26-50 anni)
var adultsOffers = []models.Offer{
	{ID: "adults1", Name: "Pizza Bufala Premium", Price: 9.99, OriginalPrice: 14.99, Description: "Mozzarella di bufala DOP di qualità superiore", Discount: 33, Category: "adults"},
	{ID: "adults2", Name: "Pizza Parma e Rucola", Price: 10.99, OriginalPrice: 15.99, Description: "Prosciutto di Parma DOP e rucola fresca", Discount: 31, Category: "adults"},
	{ID: "adults3", Name: "Pizza Speck e Asiago", Price: 9.49, OriginalPrice: 13.49, Description: "Speck dell'Alto Adige e Asiago DOP", Discount: 30, Category: "adults"},
	{ID: "adults4", Name: "Pizza Ortolana Gourmet", Price: 8.99, OriginalPrice: 12.99, Description: "Verdure fresche di stagione grigliate", Discount: 31, Category: "adults"},
}

// Offerte per senior (50+ anni)
var seniorsOffers = []models.Offer{
	{ID: "seniors1", Name: "Pizza Marinara Classica", Price: 5.99, OriginalPrice: 8.99, Description: "La tradizione napoletana autentica", Discount: 33, Category: "seniors"},
	{ID: "seniors2", Name: "Pizza Prosciutto e Funghi", Price: 7.99, OriginalPrice: 11.99, Description: "Un classico intramontabile", Discount: 33, Category: "seniors"},
	{ID: "seniors3", Name: "Pizza Patate e Salsiccia", Price: 7.49, OriginalPrice: 10.49, Description: "Comfort food della tradizione italiana", Discount: 29, Category: "seniors"},
	{ID: "seniors4", Name: "Pizza Salsiccia e Friarielli", Price: 8.99, OriginalPrice: 12.99, Description: "Sapore napoletano autentico", Discount: 31, Category: "seniors"},
}

// Offerte speciali per famiglie
var familyOffers = []models.Offer{
	{ID: "family1", Name: "Pizza Margherita Famiglia", Price: 12.99, OriginalPrice: 16.99, Description: "Pizza grande per tutta la famiglia", Discount: 24, Category: "family"},
	{ID: "family2", Name: "Pizza Quattro Stagioni Famiglia", Price: 15.99, OriginalPrice: 20.99, Description: "Tutti i gusti per tutti i palati", Discount: 24, Category: "family"},
	{ID: "family3", Name: "Pizza Capricciosa Famiglia", Price: 16.99, OriginalPrice: 21.99, Description: "Ricca e abbondante per la famiglia", Discount: 23, Category: "family"},
	{ID: "family4", Name: "Pizza Quattro Formaggi Famiglia", Price: 14.99, OriginalPrice: 19.99, Description: "Formaggi pregiati per tutti", Discount: 25, Category: "family"},
}

// Offerte gourmet per appassionati
var gourmetOffers = []models.Offer{
	{ID: "gourmet1", Name: "Pizza Tartufo e Porcini", Price: 14.99, OriginalPrice: 19.99, Description: "Tartufo nero e funghi porcini pregiati", Discount: 25, Category: "gourmet"},
	{ID: "gourmet2", Name: "Pizza Gamberi e Zucchine", Price: 13.99, OriginalPrice: 18.99, Description: "Gamberi freschi e zucchine delicate", Discount: 26, Category: "gourmet"},
	{ID: "gourmet3", Name: "Pizza Bresaola e Rucola", Price: 12.99, OriginalPrice: 17.99, Description: "Bresaola della Valtellina e rucola fresca", Discount: 28, Category: "gourmet"},
	{ID: "gourmet4", Name: "Pizza Bufala e Pomodorini", Price: 11.99, OriginalPrice: 15.99, Description: "Mozzarella di bufala e pomodorini del Vesuvio", Discount: 25, Category: "gourmet"},
}

var offerSections = []models.OfferSection{
	{ID: "kids", Title: "Per i Piccoli Chef", Subtitle: "Offerte speciali per bambini dai 5 ai 12 anni", Offers: kidsOffers},
	{ID: "teens", Title: "Studenti in Pizza", Subtitle: "Promozioni per ragazzi e studenti", Offers: teensOffers},
	{ID: "adults", Title: "Professionisti Gourmet", Subtitle: "Offerte premium per adulti lavoratori", Offers: adultsOffers},
	{ID: "seniors", Title: "Tradizione Italiana", Subtitle: "Classici della cucina italiana per senior", Offers: seniorsOffers},
	{ID: "family", Title: "Pizza in Famiglia", Subtitle: "Offerte speciali per tutta la famiglia", Offers: familyOffers},
	{ID: "gourmet", Title: "Gourmet Experience", Subtitle: "Pizze di alta qualità per veri appassionati", Offers: gourmetOffers},
}

var (
	allOffers  []models.Offer
	offersByID map[string]models.Offer
)

func init() {
	for _, section := range offerSections {
		allOffers = append(allOffers, section.Offers...)
	}
	offersByID = make(map[string]models.Offer, len(allOffers))
	for _, o := range allOffers {
		offersByID[o.ID] = o
	}
}

// AllOffers restituisce tutte le offerte del catalogo.
func AllOffers() []models.Offer {
	out := make([]models.Offer, len(allOffers))
	copy(out, allOffers)
	return out
}

// OfferSections restituisce le offerte raggruppate per sezione.
func OfferSections() []models.OfferSection {
	return offerSections
}

// OfferByID cerca un'offerta per id.
func OfferByID(id string) (models.Offer, bool) {
	o, ok := offersByID[id]
	return o, ok
}

// IsOffer indica se un id appartiene al catalogo offerte. È l'insieme di id
// usato per rilevare i riscatti alla conferma e per hasOfferInCart.
func IsOffer(id string) bool {
	_, ok := offersByID[id]
	return ok
}
