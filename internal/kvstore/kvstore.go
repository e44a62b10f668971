// Package kvstore è l'adapter di persistenza chiave-valore: record JSON come
// stringhe sotto chiavi con namespace per utente. In produzione i record
// vivono su Redis, nei test in memoria.
package kvstore

import "context"

// Store è il contratto minimo richiesto dalla macchina a stati ordini.
type Store interface {
	// Get restituisce il valore e true se la chiave esiste.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// UserKeys espone le quattro chiavi record di un utente. Sostituisce la
// convenzione "<prefisso>_<userId>" sparsa nel codice con un punto unico.
type UserKeys struct {
	userID string
}

func KeysFor(userID string) UserKeys {
	return UserKeys{userID: userID}
}

// Cart è il carrello in corso ([]OrderItem).
func (k UserKeys) Cart() string { return "orders_" + k.userID }

// History è lo storico degli ordini confermati ([][]OrderItem).
func (k UserKeys) History() string { return "ordersHistory_" + k.userID }

// Redeemed è l'elenco degli id offerta riscattati ([]string).
func (k UserKeys) Redeemed() string { return "redeemedOffers_" + k.userID }

// LastSpin è il timestamp (epoch ms) dell'ultimo riscatto da ruota.
func (k UserKeys) LastSpin() string { return "lastWheelSpin_" + k.userID }

// All restituisce le quattro chiavi, usato dal clear al logout.
func (k UserKeys) All() []string {
	return []string{k.Cart(), k.History(), k.Redeemed(), k.LastSpin()}
}
