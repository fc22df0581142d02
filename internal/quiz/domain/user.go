package domain

import "time"

// User is a registered account. The password is never stored in plaintext;
// PasswordHash is a salted bcrypt digest.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
