package models

type Role string

const (
	RoleAdmin   Role = "admin"
	RolePatient Role = "patient"
)

type User struct {
	ID                 string `bson:"id" json:"id"`
	Username           string `bson:"username" json:"username"`
	PasswordHash       string `bson:"password_hash" json:"-"` // Hide from JSON responses
	FullName           string `bson:"full_name" json:"full_name"`
	Phone              string `bson:"phone" json:"phone"`
	Email              string `bson:"email" json:"email"`
	Role               Role   `bson:"role" json:"role"`
	LanguagePreference string `bson:"language_preference" json:"language_preference"` // "en" or "bn"
	CreatedAt          string `bson:"created_at" json:"created_at"`                   // ISO 8601, see FormatTimestamp
}
