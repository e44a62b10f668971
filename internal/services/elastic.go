package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"pizzamia_back_end/internal/catalog"
	"pizzamia_back_end/internal/database"
)

const menuIndex = "menu"

// menuDocument è il documento indicizzato: pizze e offerte condividono la
// stessa forma per la ricerca.
type menuDocument struct {
	ID          string   `json:"id"`
	Kind        string   `json:"kind"` // "pizza" oppure "offer"
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients,omitempty"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
}

// IndexMenu indicizza l'intero catalogo (pizze + offerte) all'avvio.
// Best-effort: con Elastic assente non fa nulla.
func IndexMenu() {
	if database.Elastic == nil {
		log.Println("⚠️ Elastic non inizializzato, indicizzazione menu saltata")
		return
	}

	var docs []menuDocument
	for _, p := range catalog.AllPizzas() {
		docs = append(docs, menuDocument{
			ID: p.ID, Kind: "pizza", Name: p.Name, Description: p.Description,
			Ingredients: p.Ingredients, Category: p.Category, Price: p.Price,
		})
	}
	for _, o := range catalog.AllOffers() {
		docs = append(docs, menuDocument{
			ID: o.ID, Kind: "offer", Name: o.Name, Description: o.Description,
			Category: o.Category, Price: o.Price,
		})
	}

	for _, doc := range docs {
		data, _ := json.Marshal(doc)
		req := esapi.IndexRequest{
			Index:      menuIndex,
			DocumentID: doc.ID,
			Body:       bytes.NewReader(data),
			Refresh:    "true",
		}

		res, err := req.Do(context.Background(), database.Elastic)
		if err != nil {
			log.Println("❌ Errore invio a Elastic:", err)
			return
		}
		res.Body.Close()
	}
	log.Printf("✅ Indicizzati %d documenti menu in Elasticsearch", len(docs))
}

// SearchMenu cerca per nome, descrizione o ingredienti.
func SearchMenu(ctx context.Context, query string) ([]map[string]interface{}, error) {
	if database.Elastic == nil {
		return nil, errors.New("client Elasticsearch non inizializzato")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name", "description", "ingredients"},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("errore codifica query: %v", err)
	}

	req := esapi.SearchRequest{
		Index: []string{menuIndex},
		Body:  &buf,
	}
	res, err := req.Do(ctx, database.Elastic)
	if err != nil {
		return nil, fmt.Errorf("errore richiesta Elastic: %v", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e map[string]interface{}
		json.NewDecoder(res.Body).Decode(&e)
		log.Printf("❌ Errore Elasticsearch: %+v", e)
		return nil, errors.New("indice non trovato o vuoto")
	}

	var r map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("errore decodifica JSON: %v", err)
	}

	hitsData, ok := r["hits"].(map[string]interface{})
	if !ok {
		return nil, errors.New("risposta Elastic non valida (nessun hits)")
	}
	hitsArray, ok := hitsData["hits"].([]interface{})
	if !ok {
		return nil, errors.New("risposta Elastic non valida (hits malformato)")
	}

	results := make([]map[string]interface{}, 0, len(hitsArray))
	for _, h := range hitsArray {
		hit, ok := h.(map[string]interface{})
		if !ok {
			continue
		}
		if source, ok := hit["_source"].(map[string]interface{}); ok {
			results = append(results, source)
		}
	}
	return results, nil
}
