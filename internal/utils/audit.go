package utils

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"pizzamia_back_end/internal/database"
)

// LogAction registra sull'audit un'azione riuscita (es. cambio stato ordine
// da parte di uno chef). Asincrono, best-effort.
func LogAction(c *gin.Context, action, resource, resourceID string, oldValue, newValue interface{}) {
	userID := c.GetString("user_id")
	go func() {
		if err := writeAuditRow(userID, action, resource, resourceID, oldValue, newValue, true, ""); err != nil {
			log.Printf("❌ Errore registrazione audit: %v", err)
		}
	}()
}

// LogFailedAction registra un'azione fallita.
func LogFailedAction(c *gin.Context, action, resource, resourceID, errorMsg string) {
	userID := c.GetString("user_id")
	go func() {
		if err := writeAuditRow(userID, action, resource, resourceID, nil, nil, false, errorMsg); err != nil {
			log.Printf("❌ Errore registrazione audit: %v", err)
		}
	}()
}

func writeAuditRow(userID, action, resource, resourceID string, oldValue, newValue interface{}, success bool, errorMsg string) error {
	if database.Scylla == nil {
		return nil
	}

	oldJSON, _ := json.Marshal(oldValue)
	newJSON, _ := json.Marshal(newValue)

	return database.Scylla.Query(`INSERT INTO audit_logs
		(log_id, occurred_at, user_id, action, resource, resource_id, old_value, new_value, success, error_msg)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		gocql.TimeUUID(), time.Now(), userID, action, resource, resourceID,
		string(oldJSON), string(newJSON), success, errorMsg).Exec()
}
