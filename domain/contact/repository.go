package contact

import (
	"context"
	"database/sql"
	"errors"

	"burokrat-site/pkg/apperrors"

	"github.com/jmoiron/sqlx"
)

const submissionColumns = `id, name, email, phone, subject, message, company, created_at, email_sent, email_error`

// Repository stores contact submissions.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Insert appends s and returns its new id.
func (r *Repository) Insert(ctx context.Context, s *Submission) (int64, error) {
	query := `INSERT INTO contact_submissions
		(name, email, phone, subject, message, company, created_at, email_sent, email_error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	args := []interface{}{s.Name, s.Email, s.Phone, s.Subject, s.Message, s.Company,
		s.CreatedAt, s.EmailSent, s.EmailError}

	if sqlx.BindType(r.db.DriverName()) == sqlx.DOLLAR {
		var id int64
		err := r.db.QueryRowxContext(ctx, r.db.Rebind(query+" RETURNING id"), args...).Scan(&id)
		if err != nil {
			return 0, err
		}
		s.ID = id
		return id, nil
	}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	s.ID = id
	return id, nil
}

// List returns every submission, newest first.
func (r *Repository) List(ctx context.Context) ([]Submission, error) {
	subs := []Submission{}
	err := r.db.SelectContext(ctx, &subs,
		"SELECT "+submissionColumns+" FROM contact_submissions ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// Get returns one submission or a not-found AppError.
func (r *Repository) Get(ctx context.Context, id int64) (*Submission, error) {
	var s Submission
	err := r.db.GetContext(ctx, &s,
		r.db.Rebind("SELECT "+submissionColumns+" FROM contact_submissions WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound(apperrors.ErrCodeSubmissionNotFound, "submission not found")
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM contact_submissions")
	return n, err
}

// Stats counts submissions by delivery outcome.
func (r *Repository) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := r.db.GetContext(ctx, &st, `SELECT
		COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN email_sent THEN 1 ELSE 0 END), 0) AS sent,
		COALESCE(SUM(CASE WHEN email_sent THEN 0 ELSE 1 END), 0) AS failed
		FROM contact_submissions`)
	return st, err
}

// Reset deletes every submission. It backs the administrative reset command
// and is not reachable from HTTP.
func (r *Repository) Reset(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM contact_submissions")
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
