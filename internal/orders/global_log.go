package orders

import (
	"context"
	"errors"
	"sort"
	"sync"

	"pizzamia_back_end/internal/models"
)

var ErrOrderItemNotFound = errors.New("riga ordine non trovata")

// GlobalLog è il registro ordini visibile agli chef: cross-utente, append-only
// per gli ordini, con aggiornamento di stato per singola riga. Ogni riga è un
// record a sé, così due chef che lavorano ordini diversi non si sovrascrivono.
type GlobalLog interface {
	Append(ctx context.Context, snap models.OrderSnapshot) error
	All(ctx context.Context) ([]models.OrderSnapshot, error)
	UpdateItemStatus(ctx context.Context, orderID string, seq int, status string) error
}

// MemoryGlobalLog è l'implementazione in memoria, per test e avvio senza DB.
type MemoryGlobalLog struct {
	mu    sync.RWMutex
	snaps []models.OrderSnapshot
}

func NewMemoryGlobalLog() *MemoryGlobalLog {
	return &MemoryGlobalLog{}
}

func (l *MemoryGlobalLog) Append(_ context.Context, snap models.OrderSnapshot) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	items := make([]models.OrderItem, len(snap.Items))
	copy(items, snap.Items)
	snap.Items = items
	l.snaps = append(l.snaps, snap)
	return nil
}

func (l *MemoryGlobalLog) All(_ context.Context) ([]models.OrderSnapshot, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.OrderSnapshot, len(l.snaps))
	copy(out, l.snaps)
	// Più recenti per primi, come la vista chef.
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (l *MemoryGlobalLog) UpdateItemStatus(_ context.Context, orderID string, seq int, status string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.snaps {
		if l.snaps[i].OrderID != orderID {
			continue
		}
		if seq < 0 || seq >= len(l.snaps[i].Items) {
			return ErrOrderItemNotFound
		}
		l.snaps[i].Items[seq].Status = status
		return nil
	}
	return ErrOrderItemNotFound
}
