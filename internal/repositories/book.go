package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-book-library/internal/models"
)

// listing columns skip the payload itself
const bookListColumns = `id, title, owner_id, image IS NOT NULL AS has_image, created_at, updated_at`

// BookReadRepository handles book read operations
type BookReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBookReadRepository(db *sqlx.DB, txGetter TxGetter) *BookReadRepository {
	return &BookReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the book including its image, or nil when absent.
func (r *BookReadRepository) GetByID(ctx context.Context, id int64) (*models.BookDB, error) {
	query := `SELECT ` + bookListColumns + `, image FROM books WHERE id = $1`

	var book models.BookDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &book, query, id)
	logQuery(query, []any{id}, imageSize(book.Image), err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// ListByOwner returns the owner's books without image payloads.
func (r *BookReadRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.BookDB, error) {
	query := `SELECT ` + bookListColumns + ` FROM books WHERE owner_id = $1 ORDER BY id`
	return r.list(ctx, query, ownerID)
}

// List returns all books without image payloads.
func (r *BookReadRepository) List(ctx context.Context) ([]models.BookDB, error) {
	query := `SELECT ` + bookListColumns + ` FROM books ORDER BY id`
	return r.list(ctx, query)
}

func (r *BookReadRepository) list(ctx context.Context, query string, args ...any) ([]models.BookDB, error) {
	var books []models.BookDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &books, query, args...)
	logQuery(query, args, len(books), err)
	if err != nil {
		return nil, err
	}
	return books, nil
}

// BookWriteRepository handles book write operations
type BookWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBookWriteRepository(db *sqlx.DB, txGetter TxGetter) *BookWriteRepository {
	return &BookWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a book owned by ownerID. A nil image is stored as NULL.
func (r *BookWriteRepository) Create(ctx context.Context, title string, image []byte, ownerID int64) (*models.BookDB, error) {
	query := `
		INSERT INTO books (title, image, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + bookListColumns

	var book models.BookDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &book, query, title, image, ownerID)
	logQuery(query, []any{title, imageSize(image), ownerID}, book.ID, err)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Update applies the non-nil fields of upd and reports whether the book exists.
func (r *BookWriteRepository) Update(ctx context.Context, id int64, upd models.BookUpdate) (bool, error) {
	query := `
		UPDATE books
		SET title = COALESCE($2, title),
		    image = COALESCE($3, image),
		    updated_at = NOW()
		WHERE id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id, upd.Title, upd.Image)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id, upd.Title, imageSize(upd.Image)}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Delete removes the book and reports whether it existed.
func (r *BookWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM books WHERE id = $1`

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
