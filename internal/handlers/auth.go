package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"pizzamia_back_end/internal/database"
	"pizzamia_back_end/internal/models"
	"pizzamia_back_end/internal/utils"
)

// ================== AUTH LOCALE ==================

// Register crea un account cliente e apre subito la sessione.
func Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Surname  string `json:"surname" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Address  string `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dati non validi", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()

	// Email già registrata?
	var existing string
	err := database.Scylla.Query(`SELECT email FROM users WHERE email = ? LIMIT 1 ALLOW FILTERING`, input.Email).
		WithContext(ctx).Scan(&existing)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Esiste già un account con questa email"})
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Errore creazione utente"})
		return
	}

	user := models.User{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Surname:  input.Surname,
		Email:    input.Email,
		Password: hashed,
		Role:     models.RoleCustomer,
		Address:  input.Address,
	}

	uid, _ := uuid.Parse(user.ID)
	err = database.Scylla.Query(`INSERT INTO users (user_id, email, name, surname, password, role, address, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		gocql.UUID(uid), user.Email, user.Name, user.Surname, user.Password, user.Role, user.Address, time.Now()).
		WithContext(ctx).Exec()
	if err != nil {
		log.Println("❌ Errore inserimento utente:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Errore creazione utente"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Errore generazione token"})
		return
	}

	// La registrazione apre la sessione: parte l'evento di login
	// (azzera il cooldown ruota del nuovo account).
	Sessions.PublishLogin(ctx, user.ID)

	c.JSON(http.StatusCreated, gin.H{
		"token":   token,
		"userId":  user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"surname": user.Surname,
		"role":    user.Role,
	})
}

// Login autentica un cliente con email e password.
func Login(c *gin.Context) {
	loginWithRole(c, models.RoleCustomer)
}

// ChefLogin autentica un'identità chef, separata dai clienti.
func ChefLogin(c *gin.Context) {
	loginWithRole(c, models.RoleChef)
}

func loginWithRole(c *gin.Context, requiredRole string) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dati non validi"})
		return
	}

	ctx := c.Request.Context()

	var (
		userUUID gocql.UUID
		name     string
		surname  string
		password string
		role     string
		address  string
	)
	err := database.Scylla.Query(`SELECT user_id, name, surname, password, role, address
		FROM users WHERE email = ? LIMIT 1 ALLOW FILTERING`, input.Email).
		WithContext(ctx).Scan(&userUUID, &name, &surname, &password, &role, &address)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenziali non valide"})
		return
	}

	ok, err := utils.VerifyPassword(input.Password, password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenziali non valide"})
		return
	}

	if role != requiredRole {
		c.JSON(http.StatusForbidden, gin.H{"error": "Accesso non consentito per questo tipo di account"})
		return
	}

	user := models.User{
		ID:      userUUID.String(),
		Name:    name,
		Surname: surname,
		Email:   input.Email,
		Role:    role,
		Address: address,
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Errore generazione token"})
		return
	}

	// Gli chef non hanno stato ordini personale da azzerare.
	if role == models.RoleCustomer {
		Sessions.PublishLogin(ctx, user.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"userId":  user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"surname": user.Surname,
		"role":    user.Role,
	})
}

// Logout chiude la sessione. I record ordini persistiti (carrello, storico,
// riscatti, cooldown) restano intatti e ricaricano al prossimo accesso;
// l'evento di logout serve solo a invalidare il profilo in cache.
func Logout(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utente non autenticato"})
		return
	}

	Sessions.PublishLogout(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"message": "Logout effettuato"})
}
