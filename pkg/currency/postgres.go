package currency

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const selectCurrencies = `
SELECT currency_code, coefficient::text, is_primary
FROM currencies
WHERE status = 'A'
ORDER BY currency_code`

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// LoadPostgres reads the active store currencies into a Static snapshot.
// The table must mark exactly one currency as primary.
func LoadPostgres(ctx context.Context, q Querier) (*Static, error) {
	rows, err := q.Query(ctx, selectCurrencies)
	if err != nil {
		return nil, fmt.Errorf("query currencies: %w", err)
	}
	defer rows.Close()

	var primary string
	coefficients := make(map[string]decimal.Decimal)
	for rows.Next() {
		var (
			code      string
			coefText  string
			isPrimary bool
		)
		if err := rows.Scan(&code, &coefText, &isPrimary); err != nil {
			return nil, fmt.Errorf("scan currency: %w", err)
		}
		coef, err := decimal.NewFromString(coefText)
		if err != nil {
			return nil, fmt.Errorf("currency %s: invalid coefficient %q: %w", code, coefText, err)
		}
		coefficients[code] = coef
		if isPrimary {
			if primary != "" {
				return nil, fmt.Errorf("more than one primary currency: %s and %s", primary, code)
			}
			primary = code
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read currencies: %w", err)
	}
	if primary == "" {
		return nil, fmt.Errorf("no primary currency defined")
	}

	return NewStatic(primary, coefficients), nil
}
