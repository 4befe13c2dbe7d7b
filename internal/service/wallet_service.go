package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/api/request"
	"fintrack/internal/apperrors"
	"fintrack/internal/model"
	"fintrack/internal/quote"
	"fintrack/internal/repository"
	"fintrack/internal/secrets"
)

// binanceNetwork tags holdings that originate from the exchange sync so they
// can be upserted by symbol instead of duplicated on every sync.
const binanceNetwork = "Binance"

// dustThreshold filters out residual exchange balances too small to track.
const dustThreshold = 0.00001

// WalletService handles exchange and browser-wallet integration: credential
// storage, signed balance syncs, and the aggregated holdings view.
type WalletService struct {
	cryptoRepo     *repository.CryptoRepository
	credentialRepo *repository.CredentialRepository
	cryptoService  *CryptoService
	quotes         *quote.Resolver
	balances       quote.BalanceSource
	encryptor      *secrets.Encryptor
	envAPIKey      string
	envSecret      string
}

// NewWalletService creates a new WalletService with the provided
// dependencies. envAPIKey and envSecret, when non-empty, take precedence
// over credentials stored in the database.
func NewWalletService(
	cryptoRepo *repository.CryptoRepository,
	credentialRepo *repository.CredentialRepository,
	cryptoService *CryptoService,
	quotes *quote.Resolver,
	balances quote.BalanceSource,
	encryptor *secrets.Encryptor,
	envAPIKey, envSecret string,
) *WalletService {
	return &WalletService{
		cryptoRepo:     cryptoRepo,
		credentialRepo: credentialRepo,
		cryptoService:  cryptoService,
		quotes:         quotes,
		balances:       balances,
		encryptor:      encryptor,
		envAPIKey:      envAPIKey,
		envSecret:      envSecret,
	}
}

// BinanceConfigured reports whether usable Binance credentials exist, either
// from the environment or stored in the database.
func (s *WalletService) BinanceConfigured() bool {
	if s.envAPIKey != "" && s.envSecret != "" {
		return true
	}
	_, _, err := s.storedCredentials()
	return err == nil
}

// SaveCredentials stores a Binance API key pair. The secret is encrypted
// before it touches the database; storing requires an encryption key.
func (s *WalletService) SaveCredentials(req request.SaveCredentialsRequest) error {
	if req.APIKey == "" || req.APISecret == "" {
		return apperrors.ErrCredentialsMissing
	}
	if s.encryptor == nil {
		return secrets.ErrNoKey
	}

	encrypted, err := s.encryptor.Encrypt(req.APISecret)
	if err != nil {
		return fmt.Errorf("failed to encrypt secret: %w", err)
	}

	_, err = s.credentialRepo.UpsertCredential(req.APIKey, encrypted)
	return err
}

// credentials resolves the API key pair to use for a signed call.
// Environment credentials win; otherwise the stored pair is decrypted.
func (s *WalletService) credentials() (apiKey, secret string, err error) {
	if s.envAPIKey != "" && s.envSecret != "" {
		return s.envAPIKey, s.envSecret, nil
	}
	return s.storedCredentials()
}

func (s *WalletService) storedCredentials() (apiKey, secret string, err error) {
	cred, err := s.credentialRepo.GetCredential()
	if err != nil {
		return "", "", err
	}
	if s.encryptor == nil {
		return "", "", secrets.ErrNoKey
	}
	secret, err = s.encryptor.Decrypt(cred.SecretEncrypted)
	if err != nil {
		return "", "", err
	}
	return cred.APIKey, secret, nil
}

// SyncBinance fetches the signed spot account balances and upserts one
// holding per asset, keyed by symbol on the exchange network. Quantities
// and prices are overwritten on every sync; invested amounts are the user's
// own data and are never touched. Dust balances are skipped.
//
// Per-asset failures are isolated, like the bulk refreshes: an asset whose
// price lookup fails still has its quantity stored (keeping the last known
// price) but is marked failed in the report, and an asset that fails to
// persist leaves its siblings untouched.
func (s *WalletService) SyncBinance() ([]model.CryptoHoldingResponse, []model.RefreshOutcome, error) {
	apiKey, secret, err := s.credentials()
	if err != nil {
		if errors.Is(err, apperrors.ErrCredentialNotFound) {
			return nil, nil, apperrors.ErrCredentialsMissing
		}
		return nil, nil, err
	}

	balances, err := s.balances.SpotBalances(apiKey, secret)
	if err != nil {
		return nil, nil, err
	}

	synced := []model.CryptoHoldingResponse{}
	outcomes := []model.RefreshOutcome{}
	for _, balance := range balances {
		quantity := balance.Total()
		if quantity <= dustThreshold {
			continue
		}

		priced := true
		price, err := s.quotes.CryptoPrice(balance.Asset)
		if err != nil {
			log.Printf("price lookup failed for %s during sync: %v", balance.Asset, err)
			price = 0
			priced = false
		}

		holding, err := s.upsertBySymbolAndNetwork(balance.Asset, quantity, price)
		if err != nil {
			log.Printf("failed to store %s during sync: %v", balance.Asset, err)
			outcomes = append(outcomes, model.RefreshOutcome{Identifier: balance.Asset})
			continue
		}
		synced = append(synced, toHoldingResponse(holding))
		outcomes = append(outcomes, model.RefreshOutcome{Identifier: balance.Asset, Success: priced})
	}

	return synced, outcomes, nil
}

func (s *WalletService) upsertBySymbolAndNetwork(symbol string, quantity, price float64) (model.CryptoHolding, error) {
	now := time.Now().UTC()

	holding, err := s.cryptoRepo.FindBySymbolAndNetwork(symbol, binanceNetwork)
	if err == nil {
		holding.Quantity = quantity
		if price > 0 {
			holding.CurrentPrice = price
		}
		holding.UpdatedAt = now
		if err := s.cryptoRepo.UpdateHolding(&holding); err != nil {
			return model.CryptoHolding{}, err
		}
		return holding, nil
	}
	if !errors.Is(err, apperrors.ErrHoldingNotFound) {
		return model.CryptoHolding{}, err
	}

	holding = model.CryptoHolding{
		ID:           uuid.New().String(),
		TokenSymbol:  symbol,
		TokenName:    symbol,
		Quantity:     quantity,
		Network:      binanceNetwork,
		CurrentPrice: price,
		PurchaseDate: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.cryptoRepo.CreateHolding(&holding); err != nil {
		return model.CryptoHolding{}, err
	}
	return holding, nil
}

// SyncWallet upserts client-reported browser-wallet balances, keyed by
// symbol and wallet address. Balance reads happen client-side; the server
// only prices and stores what it is given.
func (s *WalletService) SyncWallet(req request.SyncWalletRequest) ([]model.CryptoHoldingResponse, error) {
	synced := []model.CryptoHoldingResponse{}
	now := time.Now().UTC()

	for _, item := range req.Holdings {
		if item.Quantity <= 0 {
			continue
		}

		price, err := s.quotes.CryptoPrice(item.TokenSymbol)
		if err != nil {
			log.Printf("price lookup failed for %s during sync: %v", item.TokenSymbol, err)
			price = 0
		}

		network := item.Network
		if network == "" {
			network = "Ethereum"
		}
		name := item.TokenName
		if name == "" {
			name = item.TokenSymbol
		}

		holding, err := s.cryptoRepo.FindBySymbolAndWallet(item.TokenSymbol, req.WalletAddress)
		switch {
		case err == nil:
			holding.Quantity = item.Quantity
			if price > 0 {
				holding.CurrentPrice = price
			}
			holding.Network = network
			holding.UpdatedAt = now
			if err := s.cryptoRepo.UpdateHolding(&holding); err != nil {
				return nil, err
			}
		case errors.Is(err, apperrors.ErrHoldingNotFound):
			holding = model.CryptoHolding{
				ID:            uuid.New().String(),
				TokenSymbol:   item.TokenSymbol,
				TokenName:     name,
				Quantity:      item.Quantity,
				Network:       network,
				WalletAddress: req.WalletAddress,
				CurrentPrice:  price,
				PurchaseDate:  now,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := s.cryptoRepo.CreateHolding(&holding); err != nil {
				return nil, err
			}
		default:
			return nil, err
		}

		synced = append(synced, toHoldingResponse(holding))
	}

	return synced, nil
}

// Aggregated returns the holdings grouped by source: exchange-synced,
// everything else, and all together. The listing already refreshes prices
// opportunistically, so no separate refresh pass happens here.
func (s *WalletService) Aggregated() (model.AggregatedHoldings, error) {
	holdings, err := s.cryptoService.GetAllHoldings()
	if err != nil {
		return model.AggregatedHoldings{}, err
	}

	aggregated := model.AggregatedHoldings{
		All:     holdings,
		Binance: []model.CryptoHoldingResponse{},
		Wallet:  []model.CryptoHoldingResponse{},
	}
	for _, holding := range holdings {
		if holding.Network == binanceNetwork {
			aggregated.Binance = append(aggregated.Binance, holding)
		} else {
			aggregated.Wallet = append(aggregated.Wallet, holding)
		}
	}

	return aggregated, nil
}
