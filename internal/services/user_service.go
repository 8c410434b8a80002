package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/logger"
	"budgetbook/internal/models"
)

// userService handles user profile business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// CreateUser registers a new user profile
func (s *userService) CreateUser(name string, monthlyIncome int64) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if monthlyIncome < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly income cannot be negative")
	}

	user := &models.User{
		Name:          name,
		MonthlyIncome: monthlyIncome,
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	logger.Get().Infow("user created", "user_id", user.ID, "name", user.Name)
	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &user, nil
}

// ListUsers returns all users ordered by name. An empty store yields an
// empty slice, not an error.
func (s *userService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("name").Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// UpdateUser applies a partial profile update. Budget periods created under
// the old income keep their snapshot.
func (s *userService) UpdateUser(id uint, name *string, monthlyIncome *int64) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name cannot be empty")
		}
		updates["name"] = trimmed
	}
	if monthlyIncome != nil {
		if *monthlyIncome < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly income cannot be negative")
		}
		updates["monthly_income"] = *monthlyIncome
	}

	if len(updates) > 0 {
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrStorage, err)
		}
	}

	return user, nil
}

// DeleteUser hard-deletes the user. The store's foreign keys cascade the
// delete through budget periods to expenses.
func (s *userService) DeleteUser(id uint) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(user).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}

	logger.Get().Infow("user deleted", "user_id", id)
	return nil
}
