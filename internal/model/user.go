package model

import (
	"database/sql"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is a staff member of a tenant (a salesperson or admin).
type User struct {
	gorm.Model

	TenantID uint `gorm:"column:tenant_id;index;not null"`

	Nome  string `gorm:"column:nome;type:varchar(100);not null"`
	Email string `gorm:"column:email;uniqueIndex;type:varchar(100);not null"`

	// Password stores the bcrypt hash, never the plaintext.
	Password string `gorm:"column:password;type:varchar(100);not null"`

	// Role is "admin" or "vendedor".
	Role string `gorm:"column:role;type:varchar(20);not null;default:vendedor"`

	LastSignedIn sql.NullTime `gorm:"column:last_signed_in;type:datetime"`

	// RawPassword receives the plaintext from the API layer and is hashed
	// in BeforeSave. Never persisted, never serialized.
	RawPassword string `gorm:"-" json:"-"`
}

// TableName overrides the default table name.
func (User) TableName() string {
	return "users"
}

// BeforeSave hashes RawPassword into Password when one was provided.
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hash)
		u.RawPassword = ""
	}
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (u *User) CheckPassword(plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext))
	return err == nil
}
