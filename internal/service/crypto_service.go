package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/api/request"
	"fintrack/internal/model"
	"fintrack/internal/quote"
	"fintrack/internal/repository"
	"fintrack/internal/valuation"
)

// CryptoService handles crypto-holding business logic: CRUD, ad-hoc token
// price lookups, and bulk price refreshes against the exchange.
type CryptoService struct {
	cryptoRepo *repository.CryptoRepository
	quotes     *quote.Resolver
}

// NewCryptoService creates a new CryptoService with the provided dependencies.
func NewCryptoService(cryptoRepo *repository.CryptoRepository, quotes *quote.Resolver) *CryptoService {
	return &CryptoService{
		cryptoRepo: cryptoRepo,
		quotes:     quotes,
	}
}

// GetAllHoldings retrieves all crypto holdings with derived valuation fields.
// Listing refreshes prices opportunistically first; the quote cache bounds
// the upstream call rate and a failed refresh falls back to the stored price,
// so reads are not side-effect-free but never fail on a quote outage.
func (s *CryptoService) GetAllHoldings() ([]model.CryptoHoldingResponse, error) {
	if _, err := s.RefreshAllPrices(); err != nil {
		return nil, err
	}

	holdings, err := s.cryptoRepo.GetAllHoldings()
	if err != nil {
		return nil, err
	}

	responses := make([]model.CryptoHoldingResponse, 0, len(holdings))
	for _, holding := range holdings {
		responses = append(responses, toHoldingResponse(holding))
	}
	return responses, nil
}

// GetHolding retrieves a single crypto holding with derived valuation fields.
func (s *CryptoService) GetHolding(holdingID string) (model.CryptoHoldingResponse, error) {
	holding, err := s.cryptoRepo.GetHolding(holdingID)
	if err != nil {
		return model.CryptoHoldingResponse{}, err
	}
	return toHoldingResponse(holding), nil
}

// CreateHolding adds a new crypto holding. The current price is fetched
// best-effort: an unreachable exchange leaves it at zero until the next
// refresh rather than failing the creation.
func (s *CryptoService) CreateHolding(req request.CreateHoldingRequest) (model.CryptoHoldingResponse, error) {
	purchaseDate, err := repository.ParseTime(req.PurchaseDate)
	if err != nil {
		return model.CryptoHoldingResponse{}, fmt.Errorf("invalid purchase date: %w", err)
	}

	network := req.Network
	if network == "" {
		network = "Ethereum"
	}

	now := time.Now().UTC()
	holding := model.CryptoHolding{
		ID:             uuid.New().String(),
		TokenSymbol:    req.TokenSymbol,
		TokenName:      req.TokenName,
		Quantity:       req.Quantity,
		InvestedAmount: req.InvestedAmount,
		Network:        network,
		WalletAddress:  req.WalletAddress,
		PurchaseDate:   purchaseDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if price, err := s.quotes.CryptoPrice(holding.TokenSymbol); err != nil {
		log.Printf("price lookup failed for %s: %v", holding.TokenSymbol, err)
	} else {
		holding.CurrentPrice = price
	}

	if err := s.cryptoRepo.CreateHolding(&holding); err != nil {
		return model.CryptoHoldingResponse{}, err
	}

	return toHoldingResponse(holding), nil
}

// UpdateHolding edits a crypto holding.
func (s *CryptoService) UpdateHolding(holdingID string, req request.UpdateHoldingRequest) (model.CryptoHoldingResponse, error) {
	holding, err := s.cryptoRepo.GetHolding(holdingID)
	if err != nil {
		return model.CryptoHoldingResponse{}, err
	}

	purchaseDate, err := repository.ParseTime(req.PurchaseDate)
	if err != nil {
		return model.CryptoHoldingResponse{}, fmt.Errorf("invalid purchase date: %w", err)
	}

	holding.TokenSymbol = req.TokenSymbol
	holding.TokenName = req.TokenName
	holding.Quantity = req.Quantity
	holding.InvestedAmount = req.InvestedAmount
	if req.Network != "" {
		holding.Network = req.Network
	}
	holding.WalletAddress = req.WalletAddress
	holding.PurchaseDate = purchaseDate
	holding.UpdatedAt = time.Now().UTC()

	if err := s.cryptoRepo.UpdateHolding(&holding); err != nil {
		return model.CryptoHoldingResponse{}, err
	}

	return toHoldingResponse(holding), nil
}

// DeleteHolding removes a crypto holding.
func (s *CryptoService) DeleteHolding(holdingID string) error {
	return s.cryptoRepo.DeleteHolding(holdingID)
}

// TokenPrice resolves the current USDT price for an arbitrary token symbol
// without touching stored holdings. Used by the add-holding form.
func (s *CryptoService) TokenPrice(symbol string) (float64, error) {
	return s.quotes.CryptoPrice(symbol)
}

// RefreshAllPrices fetches the latest price for every holding concurrently
// and persists each successful fetch. Per-holding failures are reported in
// the outcome list without affecting the other holdings.
func (s *CryptoService) RefreshAllPrices() ([]model.RefreshOutcome, error) {
	holdings, err := s.cryptoRepo.GetAllHoldings()
	if err != nil {
		return nil, err
	}

	outcomes := refreshAll(len(holdings), func(i int) (string, error) {
		holding := holdings[i]

		price, err := s.quotes.CryptoPrice(holding.TokenSymbol)
		if err != nil {
			return holding.TokenSymbol, err
		}

		updatedAt := repository.FormatTime(time.Now().UTC())
		if err := s.cryptoRepo.UpdateCurrentPrice(holding.ID, price, updatedAt); err != nil {
			return holding.TokenSymbol, err
		}
		return holding.TokenSymbol, nil
	})

	return outcomes, nil
}

// toHoldingResponse derives the valuation fields for one holding.
func toHoldingResponse(holding model.CryptoHolding) model.CryptoHoldingResponse {
	metrics := valuation.Compute(holding.Quantity, holding.InvestedAmount, holding.CurrentPrice)
	return model.CryptoHoldingResponse{
		ID:               holding.ID,
		TokenSymbol:      holding.TokenSymbol,
		TokenName:        holding.TokenName,
		Quantity:         holding.Quantity,
		InvestedAmount:   holding.InvestedAmount,
		Network:          holding.Network,
		WalletAddress:    holding.WalletAddress,
		CurrentPrice:     holding.CurrentPrice,
		PurchaseDate:     holding.PurchaseDate,
		CurrentValue:     metrics.CurrentValue,
		Gain:             metrics.Gain,
		ReturnPercentage: metrics.ReturnPercentage,
		AvgBuyPrice:      metrics.AvgCost,
	}
}
