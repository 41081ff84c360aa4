package repository

import (
	"time"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/model"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates the user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByID looks a user up by primary key.
func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "consulta de usuário id=%d", id)
	}
	return &user, nil
}

// FindByEmail looks a user up by login email.
func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, wrapDBErrorf(err, "consulta de usuário email=%s", email)
	}
	return &user, nil
}

// Create inserts a new user.
func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return wrapDBError(err, "criação de usuário")
	}
	return nil
}

// TouchLastSignedIn records a successful login.
func (r *userRepository) TouchLastSignedIn(id uint) error {
	err := r.db.Model(&model.User{}).Where("id = ?", id).
		Update("last_signed_in", time.Now()).Error
	if err != nil {
		return wrapDBErrorf(err, "atualização de login usuário id=%d", id)
	}
	return nil
}
