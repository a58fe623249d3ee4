package domain

// User models an account as the backend returns it. The gateway treats it
// as read-only; creation goes through the register endpoint.
type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

// AuthPayload is the data block the backend returns from login and from a
// password update: a fresh session token plus the account it belongs to.
type AuthPayload struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
