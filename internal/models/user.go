package models

// Ruoli utente. Lo chef è un'identità separata con accesso al registro
// globale degli ordini.
const (
	RoleCustomer = "customer"
	RoleChef     = "chef"
)

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
	Address  string `json:"address,omitempty"`
}

// IsChef indica se l'utente può accedere alla vista chef.
func (u User) IsChef() bool {
	return u.Role == RoleChef
}
