package dictionary

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Hadidomena/caesarCipher/resource"
)

// DefaultWordQuery selects one word per row.
const DefaultWordQuery = "SELECT word FROM words"

// LoadSQL builds a dictionary from the first column of query's result set.
func LoadSQL(ctx context.Context, db *sql.DB, query string) (*Dictionary, error) {
	if query == "" {
		query = DefaultWordQuery
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, resource.NewLoadError("sql:"+query, fmt.Errorf("failed to query words: %w", err))
	}
	defer rows.Close()

	d := New()
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, resource.NewLoadError("sql:"+query, fmt.Errorf("failed to scan word: %w", err))
		}
		d.add(word)
	}
	if err := rows.Err(); err != nil {
		return nil, resource.NewLoadError("sql:"+query, err)
	}
	return d, nil
}
