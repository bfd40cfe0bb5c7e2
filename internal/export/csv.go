// Package export renders reports and transaction lists into downloadable
// file formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/SscSPs/finsight/internal/core/domain"
)

const (
	// CSVContentType is the media type of WriteTransactionsCSV output.
	CSVContentType = "text/csv; charset=utf-8"
	// CSVFilename is the attachment name offered for transaction exports.
	CSVFilename = "transactions.csv"

	dateLayout = "2006-01-02"
)

var csvHeader = []string{"Date", "Type", "Category", "Amount", "Description"}

// WriteTransactionsCSV writes a header row and one record per transaction,
// in the order given. Dates are rendered as YYYY-MM-DD in loc (UTC when nil).
// Fields containing commas, quotes or line breaks are quoted per RFC 4180.
func WriteTransactionsCSV(w io.Writer, txns []domain.Transaction, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, t := range txns {
		record := []string{
			t.OccurredAt.In(loc).Format(dateLayout),
			string(t.Kind),
			string(t.Category),
			t.Amount.String(),
			t.Description,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row for transaction %s: %w", t.TransactionID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
