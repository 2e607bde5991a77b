package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tastebook/backend/internal/apperr"
	"github.com/tastebook/backend/internal/models"
)

// CreateUserInput carries an already-hashed password digest; hashing is the
// auth service's job.
type CreateUserInput struct {
	Username     string
	Email        string
	FullName     string
	PasswordHash string
	IsActive     bool
}

// UpdateUserInput applies a partial update: nil fields keep their stored
// values.
type UpdateUserInput struct {
	Username *string
	Email    *string
	FullName *string
	IsActive *bool
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) ListAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, apperr.Internal("UserRepository.ListAll", "storage failure").WithCause(err)
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("UserRepository.GetByID", "user not found")
		}
		return nil, apperr.Internal("UserRepository.GetByID", "storage failure").WithCause(err)
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("UserRepository.GetByUsername", "user not found")
		}
		return nil, apperr.Internal("UserRepository.GetByUsername", "storage failure").WithCause(err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, input CreateUserInput) (*models.User, error) {
	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: input.PasswordHash,
		IsActive:     input.IsActive,
	}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, writeError("UserRepository.Create", "username or email already exists", err)
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, id uint, input UpdateUserInput) (*models.User, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, writeError("UserRepository.Update", "username or email already exists", err)
	}
	return user, nil
}
