package domain

// User is the identity held by the session entry; absence means logged out.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
