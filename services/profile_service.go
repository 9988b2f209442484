package services

import (
	"fmt"
	"strings"

	"github.com/sohamaimain-boop/Pure-Element/entity"
	"github.com/sohamaimain-boop/Pure-Element/pkg/apperr"
	"github.com/sohamaimain-boop/Pure-Element/repository"

	"golang.org/x/crypto/bcrypt"
)

type ProfileService struct {
	UserRepo  *repository.UserRepository
	OrderRepo *repository.OrderRepository
}

func NewProfileService(ur *repository.UserRepository, or *repository.OrderRepository) *ProfileService {
	return &ProfileService{UserRepo: ur, OrderRepo: or}
}

type UpdateProfileIn struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Update changes email and/or password. A password change requires the
// current password; the new one must be at least 6 characters.
func (s *ProfileService) Update(userID uint, in *UpdateProfileIn) (*entity.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != "" && email != user.Email {
		taken, err := s.UserRepo.EmailTakenByOther(email, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: email already in use", apperr.ErrConflict)
		}
		updates["email"] = email
	}

	if in.NewPassword != "" {
		if in.CurrentPassword == "" {
			return nil, fmt.Errorf("%w: current password is required to change password", apperr.ErrInvalidInput)
		}
		if len(in.NewPassword) < 6 {
			return nil, fmt.Errorf("%w: new password must be at least 6 characters", apperr.ErrInvalidInput)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.CurrentPassword)); err != nil {
			return nil, fmt.Errorf("%w: current password is incorrect", apperr.ErrInvalidInput)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hashed)
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no valid fields to update", apperr.ErrInvalidInput)
	}

	if err := s.UserRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.UserRepo.FindByID(userID)
}

func (s *ProfileService) Orders(userID uint) ([]entity.Order, error) {
	return s.OrderRepo.FindByUser(userID)
}
