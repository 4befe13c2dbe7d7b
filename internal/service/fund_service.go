package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/api/request"
	"fintrack/internal/apperrors"
	"fintrack/internal/model"
	"fintrack/internal/quote"
	"fintrack/internal/repository"
	"fintrack/internal/valuation"
)

// FundService handles mutual-fund business logic: CRUD, SIP installments,
// and NAV refreshes against the external NAV source.
type FundService struct {
	fundRepo *repository.FundRepository
	quotes   *quote.Resolver
}

// NewFundService creates a new FundService with the provided dependencies.
func NewFundService(fundRepo *repository.FundRepository, quotes *quote.Resolver) *FundService {
	return &FundService{
		fundRepo: fundRepo,
		quotes:   quotes,
	}
}

// GetAllFunds retrieves all mutual funds with derived valuation fields.
// Listing refreshes NAVs opportunistically first; the quote cache bounds the
// upstream call rate and a failed refresh falls back to the stored NAV, so
// reads are not side-effect-free but never fail on a quote outage.
func (s *FundService) GetAllFunds() ([]model.MutualFundResponse, error) {
	if _, err := s.RefreshAllNAVs(); err != nil {
		return nil, err
	}

	funds, err := s.fundRepo.GetAllFunds()
	if err != nil {
		return nil, err
	}

	responses := make([]model.MutualFundResponse, 0, len(funds))
	for _, fund := range funds {
		responses = append(responses, toFundResponse(fund))
	}
	return responses, nil
}

// GetFund retrieves a single mutual fund with derived valuation fields.
func (s *FundService) GetFund(fundID string) (model.MutualFundResponse, error) {
	fund, err := s.fundRepo.GetFund(fundID)
	if err != nil {
		return model.MutualFundResponse{}, err
	}
	return toFundResponse(fund), nil
}

// CreateFund adds a new mutual fund position. The current NAV is fetched
// best-effort: an unreachable NAV source leaves it at zero until the next
// refresh rather than failing the creation.
func (s *FundService) CreateFund(req request.CreateFundRequest) (model.MutualFundResponse, error) {
	purchaseDate, err := repository.ParseTime(req.PurchaseDate)
	if err != nil {
		return model.MutualFundResponse{}, fmt.Errorf("invalid purchase date: %w", err)
	}

	now := time.Now().UTC()
	fund := model.MutualFund{
		ID:             uuid.New().String(),
		FundName:       req.FundName,
		SchemeCode:     req.SchemeCode,
		InvestedAmount: req.InvestedAmount,
		Units:          req.Units,
		ExpectedValue:  req.ExpectedValue,
		PurchaseDate:   purchaseDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if nav, err := s.quotes.FundNAV(fund.SchemeCode); err != nil {
		log.Printf("NAV lookup failed for scheme %s: %v", fund.SchemeCode, err)
	} else {
		fund.CurrentNAV = nav
	}

	if err := s.fundRepo.CreateFund(&fund); err != nil {
		return model.MutualFundResponse{}, err
	}

	return toFundResponse(fund), nil
}

// UpdateFund edits a mutual fund position. Changing the scheme code
// re-fetches the NAV best-effort, since the stored one belongs to the old
// scheme.
func (s *FundService) UpdateFund(fundID string, req request.UpdateFundRequest) (model.MutualFundResponse, error) {
	fund, err := s.fundRepo.GetFund(fundID)
	if err != nil {
		return model.MutualFundResponse{}, err
	}

	purchaseDate, err := repository.ParseTime(req.PurchaseDate)
	if err != nil {
		return model.MutualFundResponse{}, fmt.Errorf("invalid purchase date: %w", err)
	}

	if req.SchemeCode != fund.SchemeCode {
		if nav, err := s.quotes.FundNAV(req.SchemeCode); err != nil {
			log.Printf("NAV lookup failed for scheme %s: %v", req.SchemeCode, err)
		} else {
			fund.CurrentNAV = nav
		}
	}

	fund.FundName = req.FundName
	fund.SchemeCode = req.SchemeCode
	fund.InvestedAmount = req.InvestedAmount
	fund.Units = req.Units
	fund.ExpectedValue = req.ExpectedValue
	fund.PurchaseDate = purchaseDate
	fund.UpdatedAt = time.Now().UTC()

	if err := s.fundRepo.UpdateFund(&fund); err != nil {
		return model.MutualFundResponse{}, err
	}

	return toFundResponse(fund), nil
}

// DeleteFund removes a mutual fund position.
func (s *FundService) DeleteFund(fundID string) error {
	return s.fundRepo.DeleteFund(fundID)
}

// ApplyInstallment records one SIP installment against a fund: the invested
// amount grows by the installment amount, units grow by amount divided by
// the purchase NAV, and the purchase date moves to the installment date.
// The stored current NAV is refreshed best-effort afterwards.
func (s *FundService) ApplyInstallment(fundID string, req request.InstallmentRequest) (model.MutualFundResponse, error) {
	if req.Amount <= 0 || req.NAV <= 0 {
		return model.MutualFundResponse{}, apperrors.ErrInvalidInstallment
	}

	fund, err := s.fundRepo.GetFund(fundID)
	if err != nil {
		return model.MutualFundResponse{}, err
	}

	purchaseDate := time.Now().UTC()
	if req.PurchaseDate != "" {
		if purchaseDate, err = repository.ParseTime(req.PurchaseDate); err != nil {
			return model.MutualFundResponse{}, fmt.Errorf("invalid purchase date: %w", err)
		}
	}

	fund.InvestedAmount += req.Amount
	fund.Units += req.Amount / req.NAV
	fund.PurchaseDate = purchaseDate
	fund.UpdatedAt = time.Now().UTC()

	if nav, err := s.quotes.FundNAV(fund.SchemeCode); err != nil {
		log.Printf("NAV lookup failed for scheme %s: %v", fund.SchemeCode, err)
	} else {
		fund.CurrentNAV = nav
	}

	if err := s.fundRepo.UpdateFund(&fund); err != nil {
		return model.MutualFundResponse{}, err
	}

	return toFundResponse(fund), nil
}

// RefreshAllNAVs fetches the latest NAV for every fund concurrently and
// persists each successful fetch. Per-fund failures are reported in the
// outcome list without affecting the other funds.
func (s *FundService) RefreshAllNAVs() ([]model.RefreshOutcome, error) {
	funds, err := s.fundRepo.GetAllFunds()
	if err != nil {
		return nil, err
	}

	outcomes := refreshAll(len(funds), func(i int) (string, error) {
		fund := funds[i]

		nav, err := s.quotes.FundNAV(fund.SchemeCode)
		if err != nil {
			return fund.FundName, err
		}

		updatedAt := repository.FormatTime(time.Now().UTC())
		if err := s.fundRepo.UpdateCurrentNAV(fund.ID, nav, updatedAt); err != nil {
			return fund.FundName, err
		}
		return fund.FundName, nil
	})

	return outcomes, nil
}

// toFundResponse derives the valuation fields for one fund.
func toFundResponse(fund model.MutualFund) model.MutualFundResponse {
	metrics := valuation.Compute(fund.Units, fund.InvestedAmount, fund.CurrentNAV)
	return model.MutualFundResponse{
		ID:               fund.ID,
		FundName:         fund.FundName,
		SchemeCode:       fund.SchemeCode,
		InvestedAmount:   fund.InvestedAmount,
		Units:            fund.Units,
		CurrentNAV:       fund.CurrentNAV,
		ExpectedValue:    fund.ExpectedValue,
		PurchaseDate:     fund.PurchaseDate,
		CurrentValue:     metrics.CurrentValue,
		Gain:             metrics.Gain,
		ReturnPercentage: metrics.ReturnPercentage,
		AvgCost:          metrics.AvgCost,
	}
}
