package repository

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	// CreateWithSecurityQuestion persists the user and its question in one
	// transaction. ErrDuplicate means the username is taken.
	CreateWithSecurityQuestion(ctx context.Context, user *models.User, question *models.SecurityQuestion) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindSecurityQuestion(ctx context.Context, userID uint) (*models.SecurityQuestion, error)
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
}

type userRepository struct {
	baseRepository
}

func NewUserRepository(db *database.Database) UserRepository {
	return &userRepository{baseRepository: newBaseRepository(db)}
}

func (r *userRepository) CreateWithSecurityQuestion(ctx context.Context, user *models.User, question *models.SecurityQuestion) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Omit("SecurityQuestion").Create(user).Error; err != nil {
			return err
		}
		if question == nil {
			return nil
		}
		question.UserID = user.ID
		return tx.Create(question).Error
	})
	return translate(err)
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) FindSecurityQuestion(ctx context.Context, userID uint) (*models.SecurityQuestion, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var question models.SecurityQuestion
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&question).Error; err != nil {
		return nil, translate(err)
	}
	return &question, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
