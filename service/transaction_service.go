package service

import (
	"github.com/rs/zerolog"

	"github.com/pigmint/ingestion-service/dto"
	"github.com/pigmint/ingestion-service/storage"
)

// TransactionService persists and retrieves canonical transactions.
type TransactionService struct {
	store storage.Store
	log   zerolog.Logger
}

func NewTransactionService(store storage.Store, log zerolog.Logger) *TransactionService {
	return &TransactionService{store: store, log: log}
}

// CreateTransaction persists a manually entered transaction.
func (s *TransactionService) CreateTransaction(req dto.CreateTransactionRequest) (*dto.Transaction, error) {
	t := &dto.Transaction{
		Vendor:   req.Vendor,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     req.Date,
	}
	if err := s.store.SaveTransaction(t); err != nil {
		return nil, err
	}

	s.log.Info().Str("transaction_id", t.ID).Str("vendor", t.Vendor).Msg("transaction created")
	return t, nil
}

// SaveImported persists a batch of imported transactions, assigning IDs.
func (s *TransactionService) SaveImported(transactions []dto.Transaction) ([]dto.Transaction, error) {
	saved := make([]dto.Transaction, 0, len(transactions))
	for _, t := range transactions {
		t := t
		if err := s.store.SaveTransaction(&t); err != nil {
			return nil, err
		}
		saved = append(saved, t)
	}
	return saved, nil
}

func (s *TransactionService) GetTransaction(id string) (*dto.Transaction, error) {
	return s.store.GetTransaction(id)
}

func (s *TransactionService) ListTransactions(limit, offset int) ([]*dto.Transaction, error) {
	return s.store.ListTransactions(limit, offset)
}

// UpdateTransaction applies the non-nil fields of req to an existing
// transaction.
func (s *TransactionService) UpdateTransaction(id string, req dto.UpdateTransactionRequest) (*dto.Transaction, error) {
	t, err := s.store.GetTransaction(id)
	if err != nil {
		return nil, err
	}

	if req.Vendor != nil {
		t.Vendor = *req.Vendor
	}
	if req.Amount != nil {
		t.Amount = *req.Amount
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	if req.Date != nil {
		t.Date = *req.Date
	}

	if err := s.store.SaveTransaction(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TransactionService) DeleteTransaction(id string) error {
	return s.store.DeleteTransaction(id)
}
