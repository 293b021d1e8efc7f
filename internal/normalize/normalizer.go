// Package normalize implements the core normalization engine: the date,
// merchant, and amount field normalizers plus the per-record orchestration
// and batch statistics that tie them together.
package normalize

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintidy/fintidy/internal/model"
)

// Config holds the tunable knobs of the normalization engine.
type Config struct {
	// Rules is the ordered merchant knowledge base.
	Rules []CategoryRule
	// MatchThreshold is the minimum qualifying fuzzy score (0-100).
	MatchThreshold int
	// MinYear and MaxYear bound plausible transaction years.
	MinYear int
	MaxYear int
	// MaxAmount bounds accepted amounts at ±MaxAmount inclusive.
	MaxAmount decimal.Decimal
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Rules:          DefaultRules(),
		MatchThreshold: DefaultMatchThreshold,
		MinYear:        1900,
		MaxYear:        time.Now().Year() + 1,
		MaxAmount:      decimal.NewFromInt(1_000_000),
	}
}

// Normalizer applies all three field normalizers to raw transactions. It
// holds no mutable state, so a single instance is safe for concurrent use
// across any number of goroutines.
type Normalizer struct {
	date     *DateNormalizer
	merchant *MerchantNormalizer
	amount   *AmountNormalizer
}

// New creates a normalizer with the default configuration.
func New() *Normalizer {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a normalizer with custom configuration. Zero-valued
// fields fall back to their defaults.
func NewWithConfig(cfg Config) *Normalizer {
	defaults := DefaultConfig()
	if len(cfg.Rules) == 0 {
		cfg.Rules = defaults.Rules
	}
	if cfg.MatchThreshold <= 0 {
		cfg.MatchThreshold = defaults.MatchThreshold
	}
	if cfg.MinYear <= 0 {
		cfg.MinYear = defaults.MinYear
	}
	if cfg.MaxYear <= 0 {
		cfg.MaxYear = defaults.MaxYear
	}
	if cfg.MaxAmount.IsZero() {
		cfg.MaxAmount = defaults.MaxAmount
	}

	return &Normalizer{
		date:     &DateNormalizer{MinYear: cfg.MinYear, MaxYear: cfg.MaxYear},
		merchant: &MerchantNormalizer{Rules: cfg.Rules, Threshold: cfg.MatchThreshold},
		amount:   &AmountNormalizer{Min: cfg.MaxAmount.Neg(), Max: cfg.MaxAmount},
	}
}

// Normalize produces the normalized record for one raw transaction. Field
// failures are soft: the record is always produced, with absent fields
// reflected in Errors and Valid. Merchant normalization cannot fail.
func (n *Normalizer) Normalize(raw model.RawTransaction) model.NormalizedTransaction {
	out := model.NormalizedTransaction{
		RawDate:     raw.Date,
		RawMerchant: raw.Merchant,
		RawAmount:   raw.Amount,
		Line:        raw.Line,
	}

	if date, ok := n.date.Normalize(raw.Date); ok {
		out.Date = date
	} else {
		out.Errors = append(out.Errors, fmt.Sprintf("invalid date: %s", raw.Date))
	}

	out.Merchant, out.Category = n.merchant.Normalize(raw.Merchant)

	if amount := n.amount.Normalize(raw.Amount); amount.Valid {
		out.Amount = amount
	} else {
		out.Errors = append(out.Errors, fmt.Sprintf("invalid amount: %s", raw.Amount))
	}

	out.Valid = out.Date != "" && out.Amount.Valid
	return out
}

// NormalizeBatch normalizes every record in raws, preserving input order in
// the result. With workers > 1 records are fanned out across a worker pool;
// normalization is pure, so no coordination beyond the pool is needed.
// onDone, if non-nil, is invoked once per completed record and must be safe
// for concurrent use.
func (n *Normalizer) NormalizeBatch(ctx context.Context, raws []model.RawTransaction, workers int, onDone func()) ([]model.NormalizedTransaction, error) {
	out := make([]model.NormalizedTransaction, len(raws))

	if workers <= 1 {
		for i, raw := range raws {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out[i] = n.Normalize(raw)
			if onDone != nil {
				onDone()
			}
		}
		return out, nil
	}

	indices := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				out[i] = n.Normalize(raws[i])
				if onDone != nil {
					onDone()
				}
			}
		}()
	}

	var err error
feed:
	for i := range raws {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case indices <- i:
		}
	}
	close(indices)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return out, nil
}
