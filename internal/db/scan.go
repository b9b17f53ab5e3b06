package db

import "github.com/jackc/pgx/v5"

func scanContents(rows pgx.Rows) ([]string, error) {
	var contents []string
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, err
		}
		contents = append(contents, content)
	}
	return contents, rows.Err()
}
