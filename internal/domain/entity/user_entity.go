package entity

// User is a registered guest or property owner.
// Password holds the bcrypt hash, never the plaintext.
type User struct {
	ID       int64
	Name     string
	Email    string
	Password string
}
