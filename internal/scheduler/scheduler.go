// Package scheduler runs the periodic background quote refresh.
package scheduler

import (
	"log"

	"github.com/robfig/cron/v3"

	"fintrack/internal/model"
	"fintrack/internal/service"
)

// Scheduler refreshes all stored NAVs and crypto prices on a cron schedule
// so valuations stay reasonably fresh without user-triggered refreshes.
type Scheduler struct {
	cron          *cron.Cron
	fundService   *service.FundService
	cryptoService *service.CryptoService
}

// New creates a scheduler over the fund and crypto services.
func New(fundService *service.FundService, cryptoService *service.CryptoService) *Scheduler {
	return &Scheduler{
		cron:          cron.New(),
		fundService:   fundService,
		cryptoService: cryptoService,
	}
}

// Start registers the refresh job with the given cron spec and starts the
// scheduler. An empty spec disables background refreshes.
func (s *Scheduler) Start(spec string) error {
	if spec == "" {
		return nil
	}

	if _, err := s.cron.AddFunc(spec, s.refresh); err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("quote refresh scheduled: %s", spec)
	return nil
}

// Stop stops the scheduler, waiting for a running refresh to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) refresh() {
	if outcomes, err := s.fundService.RefreshAllNAVs(); err != nil {
		log.Printf("scheduled NAV refresh failed: %v", err)
	} else {
		log.Printf("scheduled NAV refresh: %d funds, %d failed", len(outcomes), countFailures(outcomes))
	}

	if outcomes, err := s.cryptoService.RefreshAllPrices(); err != nil {
		log.Printf("scheduled price refresh failed: %v", err)
	} else {
		log.Printf("scheduled price refresh: %d holdings, %d failed", len(outcomes), countFailures(outcomes))
	}
}

func countFailures(outcomes []model.RefreshOutcome) int {
	failed := 0
	for _, outcome := range outcomes {
		if !outcome.Success {
			failed++
		}
	}
	return failed
}
