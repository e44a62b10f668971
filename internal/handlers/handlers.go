// Package handlers espone l'API HTTP dell'app mobile della pizzeria:
// autenticazione, menu e offerte, carrello, ruota della fortuna, conferma
// ordini e vista chef.
package handlers

import "pizzamia_back_end/internal/orders"

// Dipendenze condivise dai handler, cablate all'avvio in cmd/server
// (nei test si iniettano versioni in memoria).
var (
	Orders   *orders.Service
	Sessions *orders.SessionEvents
	Feed     orders.CartFeed
)
