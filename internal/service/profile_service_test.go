package service_test

import (
	"errors"
	"testing"

	"fintrack/internal/api/request"
	"fintrack/internal/apperrors"
	"fintrack/internal/testutil"
)

func ptr[T any](v T) *T { return &v }

// TestProfileService_GetProfile tests the single-row profile bootstrap.
//
// WHY: The system is single-user; the first read must create the row so no
// endpoint ever has to handle a missing profile.
func TestProfileService_GetProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestProfileService(t, db)

	profile, err := svc.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile() returned unexpected error: %v", err)
	}

	if profile.ID == "" {
		t.Error("Expected a generated profile ID")
	}
	if profile.Currency != "INR" {
		t.Errorf("Expected default currency INR, got %q", profile.Currency)
	}
	if profile.Name != nil || profile.MonthlySalary != nil {
		t.Errorf("Expected empty fields on the bootstrap profile, got %+v", profile)
	}

	// A second read returns the same row.
	again, err := svc.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile() returned unexpected error: %v", err)
	}
	if again.ID != profile.ID {
		t.Errorf("Expected a single profile row, got IDs %s and %s", profile.ID, again.ID)
	}
}

// TestProfileService_UpdateProfile tests the salary allocation rule.
//
// WHY: The allocation buckets drive the dashboard and the monthly expense
// limit; buckets that do not sum to the salary would silently misreport both.
func TestProfileService_UpdateProfile(t *testing.T) {
	t.Run("accepts allocations that sum to the salary", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db)

		req := request.UpdateProfileRequest{
			Name:          ptr("Asha"),
			Designation:   ptr("Engineer"),
			MonthlySalary: ptr(100000.0),
		}
		req.Allocations.Crypto = 20000
		req.Allocations.MF = 30000
		req.Allocations.Expenses = 50000

		profile, err := svc.UpdateProfile(req)
		if err != nil {
			t.Fatalf("UpdateProfile() returned unexpected error: %v", err)
		}

		if profile.Name == nil || *profile.Name != "Asha" {
			t.Errorf("Expected name Asha, got %v", profile.Name)
		}
		if profile.Allocations.Expenses != 50000 {
			t.Errorf("Expected expense allocation 50000, got %v", profile.Allocations.Expenses)
		}

		stored, err := svc.GetProfile()
		if err != nil {
			t.Fatalf("GetProfile() returned unexpected error: %v", err)
		}
		if stored.MonthlySalary == nil || *stored.MonthlySalary != 100000 {
			t.Errorf("Expected persisted salary 100000, got %v", stored.MonthlySalary)
		}
	})

	t.Run("rejects allocations that miss the salary", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db)

		req := request.UpdateProfileRequest{MonthlySalary: ptr(100000.0)}
		req.Allocations.Crypto = 20000
		req.Allocations.MF = 30000
		req.Allocations.Expenses = 40000

		_, err := svc.UpdateProfile(req)
		if !errors.Is(err, apperrors.ErrAllocationMismatch) {
			t.Errorf("Expected ErrAllocationMismatch, got %v", err)
		}
	})

	t.Run("allows a salary with no allocations yet", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db)

		_, err := svc.UpdateProfile(request.UpdateProfileRequest{MonthlySalary: ptr(100000.0)})
		if err != nil {
			t.Fatalf("UpdateProfile() returned unexpected error: %v", err)
		}
	})

	t.Run("rejects a negative salary", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db)

		_, err := svc.UpdateProfile(request.UpdateProfileRequest{MonthlySalary: ptr(-1.0)})
		if !errors.Is(err, apperrors.ErrNegativeAmount) {
			t.Errorf("Expected ErrNegativeAmount, got %v", err)
		}
	})

	t.Run("keeps the currency when the request omits it", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db)

		if _, err := svc.UpdateProfile(request.UpdateProfileRequest{Currency: "USD"}); err != nil {
			t.Fatalf("UpdateProfile() returned unexpected error: %v", err)
		}

		profile, err := svc.UpdateProfile(request.UpdateProfileRequest{Name: ptr("Asha")})
		if err != nil {
			t.Fatalf("UpdateProfile() returned unexpected error: %v", err)
		}
		if profile.Currency != "USD" {
			t.Errorf("Expected currency USD to survive, got %q", profile.Currency)
		}
	})
}
