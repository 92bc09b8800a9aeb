package receipt

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zombor/receipt-processor/internal/scoring"
)

// IDGenerator generates unique IDs for receipts
type IDGenerator interface {
	Generate() string
}

// Scorer computes the points breakdown for a receipt
type Scorer interface {
	Score(r scoring.Receipt) scoring.Breakdown
}

// uuidGenerator generates random (version 4) UUIDs
type uuidGenerator struct{}

func (g *uuidGenerator) Generate() string {
	return uuid.NewString()
}

// Service handles receipt operations
type Service struct {
	db          DB
	scorer      Scorer
	idGenerator IDGenerator
}

// NewService creates a new Service with the UUID generator
func NewService(db DB, scorer Scorer) *Service {
	return NewServiceWithDeps(db, scorer, &uuidGenerator{})
}

// NewServiceWithDeps creates a new Service with custom dependencies for testing
func NewServiceWithDeps(db DB, scorer Scorer, idGen IDGenerator) *Service {
	return &Service{
		db:          db,
		scorer:      scorer,
		idGenerator: idGen,
	}
}

// ProcessReceipt validates a receipt, stores it and returns its new ID
func (s *Service) ProcessReceipt(receipt *Receipt) (string, error) {
	if err := receipt.Validate(); err != nil {
		return "", err
	}

	id := s.idGenerator.Generate()
	if err := s.db.SaveReceipt(id, receipt); err != nil {
		return "", fmt.Errorf("saving receipt: %w", err)
	}

	slog.Info("Receipt stored", "id", id)
	return id, nil
}

// GetReceipt retrieves a receipt by ID
func (s *Service) GetReceipt(id string) (*Receipt, error) {
	receipt, err := s.db.GetReceipt(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			slog.Warn("Receipt not found", "id", id)
		}
		return nil, fmt.Errorf("getting receipt: %w", err)
	}
	return receipt, nil
}

// Breakdown scores the receipt stored under id
func (s *Service) Breakdown(id string) (scoring.Breakdown, error) {
	receipt, err := s.GetReceipt(id)
	if err != nil {
		return scoring.Breakdown{}, err
	}

	breakdown := s.scorer.Score(receipt.scoringReceipt())
	slog.Info("Points calculated", "id", id, "points", breakdown.Points())
	return breakdown, nil
}

// Points returns the point total for the receipt stored under id
func (s *Service) Points(id string) (int, error) {
	breakdown, err := s.Breakdown(id)
	if err != nil {
		return 0, err
	}
	return breakdown.Points(), nil
}
