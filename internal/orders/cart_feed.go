package orders

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"

	"pizzamia_back_end/internal/kvstore"
)

// Eventi pubblicati sul feed carrello.
const (
	CartUpdated = "updated"
	CartCleared = "cleared"
)

// CartFeed propaga le notifiche di cambio carrello verso i client connessi
// in tempo reale. Best-effort: una notifica persa non corrompe lo stato, il
// client rilegge comunque il carrello a ogni evento.
type CartFeed interface {
	Publish(ctx context.Context, userID, event string)
	Subscribe(ctx context.Context, userID string) (<-chan string, func())
}

// RedisCartFeed usa i canali pub/sub di Redis; il nome del canale coincide
// con la chiave del record carrello, così ogni utente ha il suo canale.
type RedisCartFeed struct {
	client *redis.Client
}

func NewRedisCartFeed(client *redis.Client) *RedisCartFeed {
	return &RedisCartFeed{client: client}
}

func (f *RedisCartFeed) Publish(ctx context.Context, userID, event string) {
	channel := kvstore.KeysFor(userID).Cart()
	if err := f.client.Publish(ctx, channel, event).Err(); err != nil {
		log.Printf("❌ Errore notifica carrello per %s: %v", userID, err)
	}
}

func (f *RedisCartFeed) Subscribe(ctx context.Context, userID string) (<-chan string, func()) {
	pubsub := f.client.Subscribe(ctx, kvstore.KeysFor(userID).Cart())
	out := make(chan string, 8)
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			select {
			case out <- msg.Payload:
			default:
				// Client lento: gli eventi si coalizzano, rileggerà comunque
				// il carrello aggiornato al prossimo.
			}
		}
	}()
	return out, func() { pubsub.Close() }
}

// MemoryCartFeed è l'implementazione in memoria, per test e avvio senza Redis.
type MemoryCartFeed struct {
	mu   sync.Mutex
	subs map[string][]chan string
}

func NewMemoryCartFeed() *MemoryCartFeed {
	return &MemoryCartFeed{subs: make(map[string][]chan string)}
}

func (f *MemoryCartFeed) Publish(_ context.Context, userID, event string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs[userID] {
		select {
		case ch <- event:
		default:
		}
	}
}

func (f *MemoryCartFeed) Subscribe(_ context.Context, userID string) (<-chan string, func()) {
	ch := make(chan string, 8)
	f.mu.Lock()
	f.subs[userID] = append(f.subs[userID], ch)
	f.mu.Unlock()

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		subs := f.subs[userID]
		for i, sub := range subs {
			if sub == ch {
				f.subs[userID] = append(subs[:i], subs[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel
}
