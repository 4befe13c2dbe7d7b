package service

import (
	"math"
	"time"

	"fintrack/internal/api/request"
	"fintrack/internal/apperrors"
	"fintrack/internal/model"
	"fintrack/internal/repository"
)

// ProfileService handles user-profile business logic operations.
type ProfileService struct {
	profileRepo *repository.ProfileRepository
}

// NewProfileService creates a new ProfileService with the provided repository dependency.
func NewProfileService(profileRepo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetProfile retrieves the profile, creating an empty one on first call.
func (s *ProfileService) GetProfile() (model.UserProfile, error) {
	return s.profileRepo.GetOrCreateProfile()
}

// UpdateProfile edits the profile. When a monthly salary is set, the three
// allocation buckets must sum to it (within a rounding tolerance).
func (s *ProfileService) UpdateProfile(req request.UpdateProfileRequest) (model.UserProfile, error) {
	profile, err := s.profileRepo.GetOrCreateProfile()
	if err != nil {
		return model.UserProfile{}, err
	}

	if req.MonthlySalary != nil {
		if *req.MonthlySalary < 0 {
			return model.UserProfile{}, apperrors.ErrNegativeAmount
		}
		total := req.Allocations.Crypto + req.Allocations.MF + req.Allocations.Expenses
		if total > 0 && math.Abs(total-*req.MonthlySalary) > 0.01 {
			return model.UserProfile{}, apperrors.ErrAllocationMismatch
		}
	}

	profile.Name = req.Name
	profile.Designation = req.Designation
	profile.MonthlySalary = req.MonthlySalary
	profile.Allocations = model.Allocations{
		Crypto:   req.Allocations.Crypto,
		MF:       req.Allocations.MF,
		Expenses: req.Allocations.Expenses,
	}
	if req.Currency != "" {
		profile.Currency = req.Currency
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := s.profileRepo.UpdateProfile(&profile); err != nil {
		return model.UserProfile{}, err
	}

	return profile, nil
}
