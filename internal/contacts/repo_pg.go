package contacts

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, contact Contact) error {
	const query = `
INSERT INTO contacts (id, name, title, company, email, notes, met_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		contact.ID,
		contact.Name,
		nullableString(contact.Title),
		nullableString(contact.Company),
		nullableString(contact.Email),
		nullableString(contact.Notes),
		nullableString(contact.MetAt),
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, contactID string) (Contact, error) {
	const query = `
SELECT id, name, title, company, email, notes, met_at, created_at, updated_at
FROM contacts
WHERE id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, contactID))
}

func (r *PGRepo) List(ctx context.Context) ([]Contact, error) {
	const query = `
SELECT id, name, title, company, email, notes, met_at, created_at, updated_at
FROM contacts
ORDER BY created_at DESC, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Contact
	for rows.Next() {
		contact, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, contact)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, contact Contact) error {
	const query = `
UPDATE contacts SET
  name = $2,
  title = $3,
  company = $4,
  email = $5,
  notes = $6,
  met_at = $7,
  updated_at = now()
WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query,
		contact.ID,
		contact.Name,
		nullableString(contact.Title),
		nullableString(contact.Company),
		nullableString(contact.Email),
		nullableString(contact.Notes),
		nullableString(contact.MetAt),
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, contactID string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, contactID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanOne(row rowScanner) (Contact, error) {
	var contact Contact
	var title sql.NullString
	var company sql.NullString
	var email sql.NullString
	var notes sql.NullString
	var metAt sql.NullString
	var updatedAt sql.NullTime
	err := row.Scan(
		&contact.ID,
		&contact.Name,
		&title,
		&company,
		&email,
		&notes,
		&metAt,
		&contact.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Contact{}, ErrNotFound
		}
		return Contact{}, err
	}
	if title.Valid {
		contact.Title = title.String
	}
	if company.Valid {
		contact.Company = company.String
	}
	if email.Valid {
		contact.Email = email.String
	}
	if notes.Valid {
		contact.Notes = notes.String
	}
	if metAt.Valid {
		contact.MetAt = metAt.String
	}
	if updatedAt.Valid {
		contact.UpdatedAt = updatedAt.Time
	} else {
		contact.UpdatedAt = time.Now().UTC()
	}
	return contact, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
