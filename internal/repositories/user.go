package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-book-library/internal/models"
)

const userColumns = `id, username, password_hash, is_admin, created_at, updated_at`

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user or nil when no row matches.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByUsername returns the user with exactly this username or nil.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.getOne(ctx, query, username)
}

// List returns every user ordered by id.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	var users []models.UserDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query)
	logQuery(query, nil, len(users), err)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)
	logQuery(query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a user. A taken username yields models.ErrDuplicateKey.
func (r *UserWriteRepository) Create(ctx context.Context, username, passwordHash string, isAdmin bool) (*models.UserDB, error) {
	query := `
		INSERT INTO users (username, password_hash, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + userColumns

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, username, passwordHash, isAdmin)
	logQuery(query, []any{username, redacted, isAdmin}, user.ID, err)

	if isUniqueViolation(err) {
		return nil, models.ErrDuplicateKey
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update applies the non-nil fields of upd and returns the stored row,
// or nil when the user does not exist.
func (r *UserWriteRepository) Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.UserDB, error) {
	query := `
		UPDATE users
		SET username = COALESCE($2, username),
		    password_hash = COALESCE($3, password_hash),
		    is_admin = COALESCE($4, is_admin),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query,
		id, upd.Username, upd.PasswordHash, upd.IsAdmin)
	logQuery(query, []any{id, upd.Username, redactString(upd.PasswordHash), upd.IsAdmin}, user.ID, err)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case isUniqueViolation(err):
		return nil, models.ErrDuplicateKey
	case err != nil:
		return nil, err
	}
	return &user, nil
}

// Delete removes the user; owned books go with it (ON DELETE CASCADE).
// It reports whether a row was removed.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM users WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
