package user

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	userRepo "skymate/database/repository/user"
	"skymate/models"
)

// UserNotFoundError signals a profile update against an account that does not
// exist.
type UserNotFoundError struct {
	ID string
}

func (e UserNotFoundError) Error() string {
	return fmt.Sprintf("user %s not found", e.ID)
}

// ProfilePatch is a partial profile update; empty fields are left untouched.
type ProfilePatch struct {
	Name  string `json:"name,omitempty" binding:"omitempty,min=1,max=120"`
	Email string `json:"email,omitempty" binding:"omitempty,email"`
	Phone string `json:"phone,omitempty"`
}

// TravelerInput describes a saved co-traveler. Dates are YYYY-MM-DD.
type TravelerInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Gender    string `json:"gender,omitempty"`
	DOB       string `json:"dob,omitempty" binding:"omitempty,datetime=2006-01-02"`
	DocType   string `json:"docType,omitempty"`
	DocNumber string `json:"docNumber,omitempty"`
	DocExpiry string `json:"docExpiry,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// Service manages account profiles and saved travelers.
type Service interface {
	GetProfile(userID string) (*models.User, error)
	UpdateProfile(userID string, patch ProfilePatch) (*models.User, error)
	AddTraveler(userID string, input TravelerInput) (*models.Traveler, error)
}

// DefaultUserService implements Service.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// GetProfile returns the user's profile, provisioning a placeholder account on
// first access.
func (s *DefaultUserService) GetProfile(userID string) (*models.User, error) {
	return s.Repo.Ensure(userID)
}

func (s *DefaultUserService) UpdateProfile(userID string, patch ProfilePatch) (*models.User, error) {
	fields := bson.M{}
	if patch.Name != "" {
		fields["name"] = patch.Name
	}
	if patch.Email != "" {
		fields["email"] = patch.Email
	}
	if patch.Phone != "" {
		fields["phone"] = patch.Phone
	}
	if len(fields) == 0 {
		return s.GetProfile(userID)
	}

	updated, err := s.Repo.UpdateFields(userID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, UserNotFoundError{ID: userID}
	}
	return updated, nil
}

func (s *DefaultUserService) AddTraveler(userID string, input TravelerInput) (*models.Traveler, error) {
	traveler := &models.Traveler{
		ID:        uuid.NewString(),
		UserID:    userID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Gender:    input.Gender,
		DocType:   input.DocType,
		DocNumber: input.DocNumber,
	}
	if input.DOB != "" {
		if dob, err := time.Parse("2006-01-02", input.DOB); err == nil {
			traveler.DOB = &dob
		}
	}
	if input.DocExpiry != "" {
		if exp, err := time.Parse("2006-01-02", input.DocExpiry); err == nil {
			traveler.DocExpiry = &exp
		}
	}

	if err := s.Repo.CreateTraveler(traveler); err != nil {
		return nil, err
	}
	return traveler, nil
}
