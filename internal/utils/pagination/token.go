package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/finsight/internal/core/domain"
)

const timeFormat = time.RFC3339Nano

// EncodeCursor turns the position of the last returned transaction into an
// opaque, URL-safe page token.
func EncodeCursor(c domain.TransactionCursor) string {
	tokenStr := c.OccurredAt.UTC().Format(timeFormat) + "|" + c.CreatedAt.UTC().Format(timeFormat)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCursor parses a token produced by EncodeCursor.
func DecodeCursor(token string) (domain.TransactionCursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return domain.TransactionCursor{}, fmt.Errorf("invalid page token (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return domain.TransactionCursor{}, fmt.Errorf("invalid page token (split)")
	}

	occurredAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return domain.TransactionCursor{}, fmt.Errorf("invalid page token (occurred_at parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return domain.TransactionCursor{}, fmt.Errorf("invalid page token (created_at parse): %w", err)
	}

	return domain.TransactionCursor{OccurredAt: occurredAt, CreatedAt: createdAt}, nil
}

// NextCursor returns the cursor for the page following txns, or nil when
// fewer than limit rows came back.
func NextCursor(txns []domain.Transaction, limit int) *domain.TransactionCursor {
	if limit <= 0 || len(txns) < limit {
		return nil
	}
	last := txns[len(txns)-1]
	return &domain.TransactionCursor{OccurredAt: last.OccurredAt, CreatedAt: last.CreatedAt}
}
