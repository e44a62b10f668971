package orders

import (
	"context"
	"sync"
)

// SessionEvents è il publisher del ciclo di vita sessione. Sostituisce gli
// slot di callback mutabili del vecchio provider identità: chi ha bisogno di
// reagire a login e logout si registra qui una volta all'avvio.
type SessionEvents struct {
	mu         sync.RWMutex
	loginSubs  []func(ctx context.Context, userID string)
	logoutSubs []func(ctx context.Context, userID string)
}

func NewSessionEvents() *SessionEvents {
	return &SessionEvents{}
}

func (p *SessionEvents) OnLogin(fn func(ctx context.Context, userID string)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loginSubs = append(p.loginSubs, fn)
}

func (p *SessionEvents) OnLogout(fn func(ctx context.Context, userID string)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.logoutSubs = append(p.logoutSubs, fn)
}

// PublishLogin notifica login e registrazioni avvenute con successo.
func (p *SessionEvents) PublishLogin(ctx context.Context, userID string) {
	p.mu.RLock()
	subs := p.loginSubs
	p.mu.RUnlock()
	for _, fn := range subs {
		fn(ctx, userID)
	}
}

// PublishLogout notifica la chiusura di sessione.
func (p *SessionEvents) PublishLogout(ctx context.Context, userID string) {
	p.mu.RLock()
	subs := p.logoutSubs
	p.mu.RUnlock()
	for _, fn := range subs {
		fn(ctx, userID)
	}
}
