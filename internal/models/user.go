package models

// User is an account row. Password always holds the encoded hash, never
// plaintext.
type User struct {
	Record
	Username string `db:"username"`
	Phone    string `db:"phone"`
	Password string `db:"password"`
}
