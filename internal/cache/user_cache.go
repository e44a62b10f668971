package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"pizzamia_back_end/internal/database"
	"pizzamia_back_end/internal/models"
)

const UserCacheTTL = 5 * time.Minute

// GetUserFromCache recupera un utente da Redis o, in mancanza, da ScyllaDB
// (riempiendo la cache).
func GetUserFromCache(ctx context.Context, userID string) (*models.User, error) {
	key := "user:" + userID

	if database.Redis != nil {
		if data, err := database.Redis.Get(ctx, key).Result(); err == nil {
			var user models.User
			if json.Unmarshal([]byte(data), &user) == nil {
				return &user, nil
			}
		}
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	var (
		email, name, surname, role, address string
	)
	err = database.Scylla.Query(`SELECT email, name, surname, role, address
		FROM users WHERE user_id = ?`, gocql.UUID(uid)).
		WithContext(ctx).Scan(&email, &name, &surname, &role, &address)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:      userID,
		Email:   email,
		Name:    name,
		Surname: surname,
		Role:    role,
		Address: address,
	}

	if database.Redis != nil {
		if data, err := json.Marshal(user); err == nil {
			database.Redis.Set(ctx, key, data, UserCacheTTL)
		}
	}

	return user, nil
}

// InvalidateUser rimuove un utente dalla cache (dopo una modifica profilo).
func InvalidateUser(ctx context.Context, userID string) {
	if database.Redis != nil {
		database.Redis.Del(ctx, "user:"+userID)
	}
}
