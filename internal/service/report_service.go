package service

import (
	"fmt"

	"go-minimarket/internal/report"
	"go-minimarket/internal/repository"
)

// ReportService renders the full transaction ledger through a formatter
// selected by report type.
type ReportService struct {
	transactions repository.TransactionRepository
	formatters   map[string]report.Formatter
}

func NewReportService(transactions repository.TransactionRepository, formatters map[string]report.Formatter) *ReportService {
	return &ReportService{transactions: transactions, formatters: formatters}
}

// GenerateReport maps the report type to its formatter ("csv" selects
// "csvFormatter") and renders every transaction in ledger order. An
// unknown type fails before anything is fetched or rendered.
func (s *ReportService) GenerateReport(reportType string) (string, error) {
	formatter, ok := s.formatters[reportType+"Formatter"]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownReportFormat, reportType)
	}

	transactions, err := s.transactions.FindAll()
	if err != nil {
		return "", fmt.Errorf("loading transactions: %w", err)
	}

	return report.Generate(formatter, transactions), nil
}
