package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/db"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
)

const leadColumns = `id, first_name, last_name, phone, email, source, budget,
	urgency_score, status, property_address, description, timeline, created_at`

// SQLiteLeadRepo implements LeadRepo using a SQLite database.
type SQLiteLeadRepo struct {
	db db.DBTX
}

// NewSQLiteLeadRepo creates a new SQLiteLeadRepo. Pass a *sql.Tx obtained
// from a UnitOfWork for transactional use.
func NewSQLiteLeadRepo(conn db.DBTX) *SQLiteLeadRepo {
	return &SQLiteLeadRepo{db: conn}
}

func (r *SQLiteLeadRepo) Create(ctx context.Context, l *domain.RawLead) error {
	query := `INSERT INTO leads (` + leadColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.FirstName,
		l.LastName,
		l.Phone,
		l.Email,
		l.Source,
		l.Budget,
		nullableIntToValue(l.UrgencyScore),
		l.Status,
		l.PropertyAddress,
		l.Description,
		l.Timeline,
		l.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting lead: %w", err)
	}
	return nil
}

func (r *SQLiteLeadRepo) GetByID(ctx context.Context, id string) (*domain.RawLead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	l, err := scanLead(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("lead %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning lead: %w", err)
	}
	return l, nil
}

func (r *SQLiteLeadRepo) List(ctx context.Context) ([]domain.RawLead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	defer rows.Close()

	var leads []domain.RawLead
	for rows.Next() {
		l, err := scanLead(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning lead row: %w", err)
		}
		leads = append(leads, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating leads: %w", err)
	}
	return leads, nil
}

func (r *SQLiteLeadRepo) ReplaceAll(ctx context.Context, leads []domain.RawLead) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM leads`); err != nil {
		return fmt.Errorf("clearing leads: %w", err)
	}
	for i := range leads {
		if err := r.Create(ctx, &leads[i]); err != nil {
			return err
		}
	}
	return nil
}

// scanLead scans one lead row via the supplied Scan function, so the same
// code serves *sql.Row and *sql.Rows.
func scanLead(scan func(dest ...any) error) (*domain.RawLead, error) {
	var l domain.RawLead
	var createdAtStr string
	var urgency sql.NullInt64

	err := scan(
		&l.ID, &l.FirstName, &l.LastName, &l.Phone, &l.Email,
		&l.Source, &l.Budget, &urgency, &l.Status,
		&l.PropertyAddress, &l.Description, &l.Timeline, &createdAtStr,
	)
	if err != nil {
		return nil, err
	}

	if urgency.Valid {
		v := int(urgency.Int64)
		l.UrgencyScore = &v
	}
	if t, parseErr := time.Parse(time.RFC3339, createdAtStr); parseErr == nil {
		l.CreatedAt = t
	}
	// A malformed created_at stays zero; the normalizer treats that as "Today".
	return &l, nil
}
