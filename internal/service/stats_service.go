package service

import (
	"go-minimarket/internal/repository"
)

// StatsService exposes aggregate numbers over the catalog and ledger.
type StatsService struct {
	transactions repository.TransactionRepository
}

func NewStatsService(transactions repository.TransactionRepository) *StatsService {
	return &StatsService{transactions: transactions}
}

func (s *StatsService) GetLedgerSummary() (*repository.LedgerSummary, error) {
	return s.transactions.LedgerSummary()
}
