package config

import (
	"log"

	"github.com/joho/godotenv"
)

// Load carica il file .env; in sua assenza si prosegue con le variabili
// d'ambiente di sistema.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Nessun file .env trovato — si continua con le variabili d'ambiente di sistema")
	} else {
		log.Println("✅ File .env caricato con successo")
	}
}
