// Package wheel contiene la policy di cooldown della ruota della fortuna:
// un solo giro ogni 24 ore e una sola offerta non confermata in carrello.
// Funzioni pure sullo stato ordini, nessuno stato proprio.
package wheel

import (
	"fmt"
	"math"
	"time"
)

// Finestra di cooldown tra due riscatti da ruota.
const CooldownWindow = 24 * time.Hour

// CanSpin applica le regole in ordine:
//  1. offerta già in carrello → mai
//  2. nessun riscatto in assoluto → sempre (primo giro gratis)
//  3. nessun timestamp → sempre
//  4. altrimenti solo a finestra scaduta
func CanSpin(now time.Time, lastSpinMs *int64, redeemedCount int, hasOfferInCart bool) bool {
	if hasOfferInCart {
		return false
	}
	if redeemedCount == 0 {
		return true
	}
	if lastSpinMs == nil {
		return true
	}
	elapsed := now.Sub(time.UnixMilli(*lastSpinMs))
	return elapsed >= CooldownWindow
}

// Remaining restituisce quanto manca alla fine della finestra; zero se non
// c'è cooldown attivo.
func Remaining(now time.Time, lastSpinMs *int64) time.Duration {
	if lastSpinMs == nil {
		return 0
	}
	remaining := CooldownWindow - now.Sub(time.UnixMilli(*lastSpinMs))
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FormatRemaining formatta il countdown come HH:MM:SS, millisecondi troncati.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// LandingAngle converte la rotazione totale della ruota (giri completi più
// angolo terminale) nell'angolo di arrivo sul quadrante, frazioni di grado
// comprese.
func LandingAngle(totalRotation float64) float64 {
	return math.Mod(360-math.Mod(totalRotation, 360), 360)
}

// PickOffer mappa l'angolo finale della ruota su un indice del catalogo:
// floor(angoloNormalizzato / ampiezzaSpicchio). Deterministico dato l'angolo;
// l'equità complessiva resta approssimata perché l'angolo terminale è
// pseudo-casuale.
func PickOffer(angle float64, offerCount int) int {
	if offerCount <= 0 {
		return 0
	}
	normalized := math.Mod(angle, 360)
	if normalized < 0 {
		normalized += 360
	}
	slice := 360.0 / float64(offerCount)
	idx := int(math.Floor(normalized / slice))
	if idx >= offerCount {
		idx = offerCount - 1
	}
	return idx
}
