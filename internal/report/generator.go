package report

import (
	"strconv"
	"strings"
	"time"

	"go-minimarket/internal/model"
)

var headerLabels = []string{"ID", "Date", "Type", "Product", "Quantity", "Total"}

const footerText = "End of Transaction Report"

// Generate assembles a transaction report with a fixed skeleton: header,
// one row per transaction in the order supplied, footer. The formatter
// decides only how each part is rendered.
func Generate(f Formatter, transactions []model.Transaction) string {
	var b strings.Builder
	b.WriteString(f.FormatHeader(headerLabels))
	for i := range transactions {
		b.WriteString(f.FormatRow(rowValues(&transactions[i])))
	}
	b.WriteString(f.FormatFooter(footerText))
	return b.String()
}

func rowValues(t *model.Transaction) []string {
	return []string{
		t.ID.String(),
		t.CreatedAt.Format(time.RFC3339),
		t.Kind.Label(),
		t.Product.Name,
		strconv.Itoa(t.Quantity),
		t.Total.String(),
	}
}
