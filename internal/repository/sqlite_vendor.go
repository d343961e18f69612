package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/db"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
)

const vendorColumns = `id, name, company, category, trust_score,
	active_transactions, phone, last_used, specialties, recent_transactions`

// SQLiteVendorRepo implements VendorRepo using a SQLite database.
type SQLiteVendorRepo struct {
	db db.DBTX
}

// NewSQLiteVendorRepo creates a new SQLiteVendorRepo.
func NewSQLiteVendorRepo(conn db.DBTX) *SQLiteVendorRepo {
	return &SQLiteVendorRepo{db: conn}
}

func (r *SQLiteVendorRepo) List(ctx context.Context) ([]domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors ORDER BY trust_score DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing vendors: %w", err)
	}
	defer rows.Close()

	var vendors []domain.Vendor
	for rows.Next() {
		var v domain.Vendor
		var categoryStr, specialtiesStr, recentStr string
		var lastUsedStr sql.NullString

		err := rows.Scan(
			&v.ID, &v.Name, &v.Company, &categoryStr, &v.TrustScore,
			&v.ActiveTransactions, &v.Phone, &lastUsedStr, &specialtiesStr, &recentStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning vendor row: %w", err)
		}

		v.Category = domain.VendorCategory(categoryStr)
		v.Specialties = decodeStrings(specialtiesStr)
		v.RecentTransactions = decodeStrings(recentStr)
		if t := parseNullableTime(lastUsedStr, time.RFC3339); t != nil {
			v.LastUsed = *t
		}
		vendors = append(vendors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vendors: %w", err)
	}
	return vendors, nil
}

func (r *SQLiteVendorRepo) ReplaceAll(ctx context.Context, vendors []domain.Vendor) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM vendors`); err != nil {
		return fmt.Errorf("clearing vendors: %w", err)
	}

	query := `INSERT INTO vendors (` + vendorColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, v := range vendors {
		var lastUsed interface{}
		if !v.LastUsed.IsZero() {
			lastUsed = v.LastUsed.UTC().Format(time.RFC3339)
		}
		_, err := r.db.ExecContext(ctx, query,
			v.ID,
			v.Name,
			v.Company,
			string(v.Category),
			v.TrustScore,
			v.ActiveTransactions,
			v.Phone,
			lastUsed,
			encodeStrings(v.Specialties),
			encodeStrings(v.RecentTransactions),
		)
		if err != nil {
			return fmt.Errorf("inserting vendor: %w", err)
		}
	}
	return nil
}
