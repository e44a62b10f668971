// Package orders implementa la macchina a stati carrello/ordini: carrello in
// corso, storico confermati, offerte riscattate e timestamp dell'ultimo giro
// ruota, tutti persistiti per utente tramite l'adapter chiave-valore.
package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"pizzamia_back_end/internal/catalog"
	"pizzamia_back_end/internal/kvstore"
	"pizzamia_back_end/internal/models"
)

// Email sentinella per le conferme ospite.
const GuestEmail = "Ospite"

var (
	ErrEmptyCart        = errors.New("carrello vuoto")
	ErrNotAuthenticated = errors.New("utente non autenticato")
)

// State è la fotografia dei quattro record per-utente.
type State struct {
	Cart     []models.OrderItem   `json:"cart"`
	History  [][]models.OrderItem `json:"history"`
	Redeemed []string             `json:"redeemed"`
	LastSpin *int64               `json:"lastSpin"` // epoch ms, nil = nessun cooldown attivo
}

// Service è l'unico proprietario dello stato ordini. Ogni operazione legge il
// record che le serve, lo muta e lo riscrive best-effort: le scritture fallite
// vengono loggate e ignorate, mai ritentate (nessun rollback).
type Service struct {
	store  kvstore.Store
	global GlobalLog
	feed   CartFeed
	now    func() time.Time
}

func NewService(store kvstore.Store, global GlobalLog) *Service {
	return &Service{store: store, global: global, now: time.Now}
}

// WithClock sostituisce l'orologio, usato nei test.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithFeed aggancia il feed di notifiche carrello per la sincronizzazione
// live; senza feed le mutazioni restano silenziose.
func (s *Service) WithFeed(feed CartFeed) *Service {
	s.feed = feed
	return s
}

// Subscribe aggancia il servizio al ciclo di vita sessione: login e
// registrazione azzerano il cooldown ruota. Al logout i record persistiti
// restano (ricaricano al prossimo accesso, come nello storage dell'app);
// sparisce solo lo stato di sessione, che qui non esiste lato server.
func (s *Service) Subscribe(events *SessionEvents) {
	events.OnLogin(func(ctx context.Context, userID string) {
		s.ResetCooldown(ctx, userID)
	})
}

// State carica i quattro record in parallelo e li applica in un'unica
// fotografia. Un record assente o illeggibile vale come vuoto.
func (s *Service) State(ctx context.Context, userID string) State {
	keys := kvstore.KeysFor(userID)
	var st State

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		st.Cart = loadJSON[[]models.OrderItem](ctx, s.store, keys.Cart())
	}()
	go func() {
		defer wg.Done()
		st.History = loadJSON[[][]models.OrderItem](ctx, s.store, keys.History())
	}()
	go func() {
		defer wg.Done()
		st.Redeemed = loadJSON[[]string](ctx, s.store, keys.Redeemed())
	}()
	go func() {
		defer wg.Done()
		// Il valore persistito sopravvive a riavvii e nuovi login: il reset
		// esplicito passa solo da ResetCooldown.
		raw, ok, err := s.store.Get(ctx, keys.LastSpin())
		if err != nil || !ok {
			return
		}
		if ms, perr := strconv.ParseInt(raw, 10, 64); perr == nil {
			st.LastSpin = &ms
		}
	}()
	wg.Wait()
	return st
}

// Cart restituisce il carrello corrente.
func (s *Service) Cart(ctx context.Context, userID string) []models.OrderItem {
	return loadJSON[[]models.OrderItem](ctx, s.store, kvstore.KeysFor(userID).Cart())
}

// History restituisce lo storico privato degli ordini confermati.
func (s *Service) History(ctx context.Context, userID string) [][]models.OrderItem {
	return loadJSON[[][]models.OrderItem](ctx, s.store, kvstore.KeysFor(userID).History())
}

// HasOfferInCart è vero se almeno una riga del carrello è un'offerta del
// catalogo. Derivato, mai memorizzato.
func HasOfferInCart(cart []models.OrderItem) bool {
	for _, item := range cart {
		if catalog.IsOffer(item.ID) {
			return true
		}
	}
	return false
}

// NewItem descrive una riga da inserire nel carrello.
type NewItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// AddToCart aggiunge una voce base: se un item con lo stesso id è già in
// carrello ne incrementa la quantità (merge additivo), altrimenti appende una
// nuova riga in stato pending. Non fallisce mai.
func (s *Service) AddToCart(ctx context.Context, userID string, item NewItem) []models.OrderItem {
	cart := s.Cart(ctx, userID)

	merged := false
	for i := range cart {
		if cart[i].ID == item.ID {
			cart[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart = append(cart, models.OrderItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Status:   models.StatusPending,
		})
	}

	s.persistCart(ctx, userID, cart)
	return cart
}

// AddCustomizedItem appende SEMPRE una nuova riga, anche per la stessa pizza
// base: l'id sintetizzato include gli extra, l'eventuale hash delle note e il
// timestamp di creazione, così due personalizzazioni "uguali" restano righe
// distinte. Il prezzo unitario è base + sovrapprezzi degli extra selezionati.
func (s *Service) AddCustomizedItem(ctx context.Context, userID string, base models.Pizza, customizationIDs []string, notes string, quantity int) []models.OrderItem {
	var selected []models.Customization
	for _, id := range customizationIDs {
		if c, ok := catalog.CustomizationByID(id); ok {
			selected = append(selected, c)
		}
	}

	price := base.Price
	var names, ids []string
	for _, c := range selected {
		price += c.Price
		names = append(names, c.Name)
		ids = append(ids, c.ID)
	}

	name := base.Name
	if len(names) > 0 {
		name = fmt.Sprintf("%s (%s)", base.Name, strings.Join(names, ", "))
	}

	notesHash := ""
	if notes != "" {
		h := fnv.New32a()
		h.Write([]byte(notes))
		notesHash = "_" + strconv.FormatUint(uint64(h.Sum32()), 16)
	}
	itemID := fmt.Sprintf("%s_%s%s_%d", base.ID, strings.Join(ids, ","), notesHash, s.now().UnixMilli())

	if quantity < 1 {
		quantity = 1
	}

	cart := append(s.Cart(ctx, userID), models.OrderItem{
		ID:       itemID,
		Name:     name,
		Price:    price,
		Quantity: quantity,
		Status:   models.StatusPending,
		Notes:    notes,
	})
	s.persistCart(ctx, userID, cart)
	return cart
}

// UpdateQuantity aggiorna la quantità di una riga; quantità <= 0 equivale alla
// rimozione. No-op se l'id non esiste.
func (s *Service) UpdateQuantity(ctx context.Context, userID, id string, quantity int) []models.OrderItem {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, userID, id)
	}
	cart := s.Cart(ctx, userID)
	for i := range cart {
		if cart[i].ID == id {
			cart[i].Quantity = quantity
			s.persistCart(ctx, userID, cart)
			break
		}
	}
	return cart
}

// RemoveFromCart elimina la riga con l'id dato. Idempotente.
func (s *Service) RemoveFromCart(ctx context.Context, userID, id string) []models.OrderItem {
	cart := s.Cart(ctx, userID)
	filtered := cart[:0]
	for _, item := range cart {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	s.persistCart(ctx, userID, filtered)
	return filtered
}

// ClearCart svuota il carrello senza condizioni.
func (s *Service) ClearCart(ctx context.Context, userID string) {
	s.persistCart(ctx, userID, []models.OrderItem{})
}

// ConfirmOrder conferma il carrello corrente: marca come riscattate le
// offerte presenti (e fa partire il cooldown ruota), timbra ogni riga con
// l'email dell'utente, appende lo snapshot allo storico privato e al registro
// globale chef, poi svuota il carrello. Niente rollback: ogni scrittura è
// tentata una sola volta.
func (s *Service) ConfirmOrder(ctx context.Context, userID, email string) (models.OrderSnapshot, error) {
	if userID == "" {
		return models.OrderSnapshot{}, ErrNotAuthenticated
	}
	cart := s.Cart(ctx, userID)
	if len(cart) == 0 {
		return models.OrderSnapshot{}, ErrEmptyCart
	}

	keys := kvstore.KeysFor(userID)
	nowMs := s.now().UnixMilli()

	// Riscatto offerte: unione sull'insieme, il ri-riscatto è un no-op a
	// livello di insieme; il cooldown parte solo se c'è almeno un'offerta.
	var offerIDs []string
	for _, item := range cart {
		if catalog.IsOffer(item.ID) {
			offerIDs = append(offerIDs, item.ID)
		}
	}
	if len(offerIDs) > 0 {
		redeemed := loadJSON[[]string](ctx, s.store, keys.Redeemed())
		seen := make(map[string]bool, len(redeemed))
		for _, id := range redeemed {
			seen[id] = true
		}
		for _, id := range offerIDs {
			if !seen[id] {
				redeemed = append(redeemed, id)
				seen[id] = true
			}
		}
		s.persistJSON(ctx, keys.Redeemed(), redeemed)
		if err := s.store.Set(ctx, keys.LastSpin(), strconv.FormatInt(nowMs, 10)); err != nil {
			log.Printf("❌ Errore salvataggio timestamp ruota: %v", err)
		}
	}

	// Snapshot timbrato con l'email dell'utente.
	stamped := make([]models.OrderItem, len(cart))
	copy(stamped, cart)
	for i := range stamped {
		stamped[i].UserEmail = email
	}
	snap := models.OrderSnapshot{
		OrderID:   uuid.NewString(),
		UserEmail: email,
		CreatedAt: nowMs,
		Items:     stamped,
	}

	history := append(s.History(ctx, userID), stamped)
	s.persistJSON(ctx, keys.History(), history)

	if err := s.global.Append(ctx, snap); err != nil {
		log.Printf("❌ Errore scrittura registro globale ordini: %v", err)
	}

	s.persistCart(ctx, userID, []models.OrderItem{})
	return snap, nil
}

// ConfirmOrderAsGuest conferma un carrello ospite: timbra le righe con la
// sentinella "Ospite" e scrive solo sul registro globale. Non tocca mai
// riscatti, cooldown o storici per-utente.
func (s *Service) ConfirmOrderAsGuest(ctx context.Context, cart []models.OrderItem) (models.OrderSnapshot, error) {
	if len(cart) == 0 {
		return models.OrderSnapshot{}, ErrEmptyCart
	}

	stamped := make([]models.OrderItem, len(cart))
	copy(stamped, cart)
	for i := range stamped {
		stamped[i].UserEmail = GuestEmail
		if stamped[i].Status == "" {
			stamped[i].Status = models.StatusPending
		}
	}
	snap := models.OrderSnapshot{
		OrderID:   uuid.NewString(),
		UserEmail: GuestEmail,
		CreatedAt: s.now().UnixMilli(),
		Items:     stamped,
	}

	if err := s.global.Append(ctx, snap); err != nil {
		log.Printf("❌ Errore scrittura registro globale ordini (ospite): %v", err)
	}
	return snap, nil
}

// ResetCooldown azzera il timestamp ruota senza toccare i riscatti.
func (s *Service) ResetCooldown(ctx context.Context, userID string) {
	if userID == "" {
		return
	}
	if err := s.store.Remove(ctx, kvstore.KeysFor(userID).LastSpin()); err != nil {
		log.Printf("❌ Errore reset cooldown per %s: %v", userID, err)
	}
}

// ClearState rimuove i quattro record dell'utente (cancellazione account).
func (s *Service) ClearState(ctx context.Context, userID string) {
	if userID == "" {
		return
	}
	for _, key := range kvstore.KeysFor(userID).All() {
		if err := s.store.Remove(ctx, key); err != nil {
			log.Printf("❌ Errore pulizia stato per %s: %v", userID, err)
		}
	}
	if s.feed != nil {
		s.feed.Publish(ctx, userID, CartCleared)
	}
}

// AllOrders legge l'intero registro globale chef (non filtrato per utente).
func (s *Service) AllOrders(ctx context.Context) ([]models.OrderSnapshot, error) {
	return s.global.All(ctx)
}

// UpdateItemStatus aggiorna lo stato di una singola riga del registro globale.
func (s *Service) UpdateItemStatus(ctx context.Context, orderID string, seq int, status string) error {
	return s.global.UpdateItemStatus(ctx, orderID, seq, status)
}

func (s *Service) persistCart(ctx context.Context, userID string, cart []models.OrderItem) {
	s.persistJSON(ctx, kvstore.KeysFor(userID).Cart(), cart)
	if s.feed != nil {
		event := CartUpdated
		if len(cart) == 0 {
			event = CartCleared
		}
		s.feed.Publish(ctx, userID, event)
	}
}

// persistJSON serializza e scrive un record, loggando e ignorando gli errori.
func (s *Service) persistJSON(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("❌ Errore serializzazione record %s: %v", key, err)
		return
	}
	if err := s.store.Set(ctx, key, string(data)); err != nil {
		log.Printf("❌ Errore salvataggio record %s: %v", key, err)
	}
}

// loadJSON legge e deserializza un record; assente o corrotto vale zero value.
func loadJSON[T any](ctx context.Context, store kvstore.Store, key string) T {
	var out T
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		log.Printf("❌ Errore lettura record %s: %v", key, err)
		return out
	}
	if !ok {
		return out
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Printf("❌ Errore decodifica record %s: %v", key, err)
	}
	return out
}
