package library

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/shelfmark/internal/platform/database/schema"
	"github.com/taibuivan/shelfmark/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var bookColumns = strings.Join(schema.LibraryBook.Columns(), ", ")

func (repository *PostgresRepository) ListBooks(context context.Context, filter Filter) ([]Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE 1 = 1`, bookColumns, schema.LibraryBook.Table)
	args := []any{}

	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		query += fmt.Sprintf(" AND %s = $%s", schema.LibraryBook.Type, strconv.Itoa(len(args)))
	}
	if filter.Series != "" {
		args = append(args, filter.Series)
		query += fmt.Sprintf(" AND btrim(%s) = $%s", schema.LibraryBook.Series, strconv.Itoa(len(args)))
	}

	query += fmt.Sprintf(" ORDER BY %s ASC, %s ASC", schema.LibraryBook.CreatedAt, schema.LibraryBook.ID)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	books := make([]Book, 0)
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_book")
		}
		books = append(books, book)
	}

	return books, dberr.Wrap(rows.Err(), "list_books")
}

func (repository *PostgresRepository) GetBook(context context.Context, id string) (*Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, bookColumns, schema.LibraryBook.Table, schema.LibraryBook.ID)

	book, err := scanBook(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_book")
	}
	return &book, nil
}

func (repository *PostgresRepository) CreateBook(context context.Context, book *Book) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.LibraryBook.Table, schema.LibraryBook.ID, schema.LibraryBook.Title, schema.LibraryBook.Series,
		schema.LibraryBook.Volume, schema.LibraryBook.Type, schema.LibraryBook.CoverURL,
		schema.LibraryBook.CreatedAt, schema.LibraryBook.UpdatedAt,
		schema.LibraryBook.CreatedAt, schema.LibraryBook.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		book.ID, book.Title, book.Series, book.Volume, string(book.Type), book.CoverURL,
	).Scan(&book.CreatedAt, &book.UpdatedAt)
	return dberr.Wrap(err, "create_book")
}

func (repository *PostgresRepository) DeleteBook(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.LibraryBook.Table, schema.LibraryBook.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_book")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ListProgress(context context.Context) ([]ReadingProgress, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		strings.Join(schema.LibraryReadingProgress.Columns(), ", "),
		schema.LibraryReadingProgress.Table, schema.LibraryReadingProgress.ItemID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_progress")
	}
	defer rows.Close()

	progress := make([]ReadingProgress, 0)
	for rows.Next() {
		var entry ReadingProgress
		if err := rows.Scan(
			&entry.ItemID, &entry.IsRead, &entry.CompletedAt, &entry.ReadingPath, &entry.CurrentPhase, &entry.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_progress")
		}
		progress = append(progress, entry)
	}

	return progress, dberr.Wrap(rows.Err(), "list_progress")
}

// UpsertProgress writes the single ledger row of an item. completedAt is stamped
// only when isRead transitions to true and cleared when it returns to false.
func (repository *PostgresRepository) UpsertProgress(context context.Context, progress *ReadingProgress) error {
	table := schema.LibraryReadingProgress
	query := fmt.Sprintf(`
		INSERT INTO %[1]s AS rp (%[2]s, %[3]s, %[4]s, %[5]s, %[6]s, %[7]s)
		VALUES ($1, $2::boolean, CASE WHEN $2::boolean THEN COALESCE($3::timestamptz, NOW()) END, $4, $5, NOW())
		ON CONFLICT (%[2]s) DO UPDATE SET
			%[3]s = EXCLUDED.%[3]s,
			%[4]s = CASE
				WHEN EXCLUDED.%[3]s AND rp.%[3]s THEN COALESCE($3::timestamptz, rp.%[4]s)
				WHEN EXCLUDED.%[3]s THEN EXCLUDED.%[4]s
				ELSE NULL
			END,
			%[5]s = COALESCE(EXCLUDED.%[5]s, rp.%[5]s),
			%[6]s = COALESCE(EXCLUDED.%[6]s, rp.%[6]s),
			%[7]s = NOW()
		RETURNING %[3]s, %[4]s, %[5]s, %[6]s, %[7]s
	`,
		table.Table, table.ItemID, table.IsRead, table.CompletedAt, table.ReadingPath, table.CurrentPhase, table.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		progress.ItemID, progress.IsRead, progress.CompletedAt, progress.ReadingPath, progress.CurrentPhase,
	).Scan(&progress.IsRead, &progress.CompletedAt, &progress.ReadingPath, &progress.CurrentPhase, &progress.UpdatedAt)
	return dberr.Wrap(err, "upsert_progress")
}

func scanBook(row pgx.Row) (Book, error) {
	var book Book
	var bookType string
	err := row.Scan(
		&book.ID, &book.Title, &book.Series, &book.Volume, &bookType, &book.CoverURL, &book.CreatedAt, &book.UpdatedAt,
	)
	book.Type = BookType(bookType)
	return book, err
}
