package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/compta_maroc/internal/apperrors"
	"github.com/SscSPs/compta_maroc/internal/core/domain"
	portsrepo "github.com/SscSPs/compta_maroc/internal/core/ports/repositories"
	"github.com/SscSPs/compta_maroc/internal/models"
	"github.com/SscSPs/compta_maroc/internal/utils/mapping"
	"github.com/SscSPs/compta_maroc/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultEntryPageSize = 20

const entryColumns = `entry_id, entry_number, entry_date, description, reference, entry_type, status, total_amount,
	posted_date, posted_by, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, entry_id, account_code, description, debit_amount, credit_amount, line_order, reference`

const insertLineQuery = `
	INSERT INTO journal_entry_lines (` + lineColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

type PgxJournalEntryRepository struct {
	BaseRepository
}

// newPgxJournalEntryRepository creates a new repository for journal entries and their lines.
func newPgxJournalEntryRepository(pool *pgxpool.Pool) portsrepo.JournalEntryRepositoryWithTx {
	return &PgxJournalEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalEntryRepository implements portsrepo.JournalEntryRepositoryWithTx
var _ portsrepo.JournalEntryRepositoryWithTx = (*PgxJournalEntryRepository)(nil)

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.EntryNumber,
		&m.EntryDate,
		&m.Description,
		&m.Reference,
		&m.EntryType,
		&m.Status,
		&m.TotalAmount,
		&m.PostedDate,
		&m.PostedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanLine(row pgx.Row) (models.JournalEntryLine, error) {
	var m models.JournalEntryLine
	err := row.Scan(
		&m.LineID,
		&m.EntryID,
		&m.AccountCode,
		&m.Description,
		&m.Debit,
		&m.Credit,
		&m.LineOrder,
		&m.Reference,
	)
	return m, err
}

func lineArgs(m models.JournalEntryLine) []any {
	return []any{m.LineID, m.EntryID, m.AccountCode, m.Description, m.Debit, m.Credit, m.LineOrder, m.Reference}
}

func wrapLineWriteError(err error, entryID string) error {
	switch pgErrorCode(err) {
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: line of entry %s references an unknown account", apperrors.ErrInvalidInput, entryID)
	case pgCheckViolation:
		return fmt.Errorf("%w: line of entry %s has invalid amounts", apperrors.ErrInvalidInput, entryID)
	case pgUniqueViolation:
		return fmt.Errorf("%w: line of entry %s", apperrors.ErrDuplicate, entryID)
	}
	return apperrors.NewAppError(500, "failed to write journal lines for entry "+entryID, err)
}

// SaveEntry inserts the entry and its lines within a DB transaction.
func (r *PgxJournalEntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored once the transaction is committed
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournalEntry(entry)
	entryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, entryQuery,
		m.EntryID,
		m.EntryNumber,
		m.EntryDate,
		m.Description,
		m.Reference,
		m.EntryType,
		m.Status,
		m.TotalAmount,
		m.PostedDate,
		m.PostedBy,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: journal entry number %s already exists", apperrors.ErrDuplicate, m.EntryNumber)
		}
		return apperrors.NewAppError(500, "failed to insert journal entry "+m.EntryID, err)
	}

	if len(entry.Lines) > 0 {
		batch := &pgx.Batch{}
		for _, line := range entry.Lines {
			batch.Queue(insertLineQuery, lineArgs(mapping.ToModelJournalLine(line))...)
		}
		// Close reports the first failing command of the batch
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return wrapLineWriteError(err, m.EntryID)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxJournalEntryRepository) findEntry(ctx context.Context, q querier, entryID string, forUpdate bool) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	m, err := scanEntry(q.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry "+entryID, err)
	}

	rows, err := q.Query(ctx, `SELECT `+lineColumns+` FROM journal_entry_lines WHERE entry_id = $1 ORDER BY line_order;`, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines of journal entry "+entryID, err)
	}
	defer rows.Close()

	lines := make([]models.JournalEntryLine, 0)
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line row", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal line rows", err)
	}

	entry := mapping.ToDomainJournalEntry(m, lines)
	return &entry, nil
}

// FindEntryByID retrieves an entry with its lines.
func (r *PgxJournalEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	return r.findEntry(ctx, r.Pool, entryID, false)
}

// FindEntryByIDForUpdate retrieves an entry with its lines and locks the entry row until tx ends.
func (r *PgxJournalEntryRepository) FindEntryByIDForUpdate(ctx context.Context, tx pgx.Tx, entryID string) (*domain.JournalEntry, error) {
	return r.findEntry(ctx, tx, entryID, true)
}

// ListEntries retrieves a page of entries ordered by entry_date DESC, created_at DESC, entry_id DESC.
func (r *PgxJournalEntryRepository) ListEntries(ctx context.Context, filter portsrepo.ListEntriesFilter) ([]domain.JournalEntry, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultEntryPageSize
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	conditions := make([]string, 0, 3)
	args := make([]any, 0, 6)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Status != nil {
		conditions = append(conditions, "status = "+arg(string(*filter.Status)))
	}
	if filter.EntryType != nil {
		conditions = append(conditions, "entry_type = "+arg(string(*filter.EntryType)))
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		cursor, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrInvalidInput, err)
		}
		// Tuple comparison is concise and efficient in Postgres
		conditions = append(conditions, fmt.Sprintf("(entry_date, created_at, entry_id) < (%s, %s, %s)",
			arg(cursor.EntryDate), arg(cursor.CreatedAt), arg(cursor.EntryID)))
	}

	query := `SELECT ` + entryColumns + ` FROM journal_entries`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY entry_date DESC, created_at DESC, entry_id DESC LIMIT ` + arg(fetchLimit) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	defer rows.Close()

	modelEntries := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	var nextTokenVal *string
	results := modelEntries
	if len(modelEntries) > limit {
		// The token points to the last item included in this page.
		last := modelEntries[limit-1]
		newToken := pagination.EncodeToken(pagination.EntryCursor{
			EntryDate: last.EntryDate,
			CreatedAt: last.CreatedAt,
			EntryID:   last.EntryID,
		})
		nextTokenVal = &newToken
		results = modelEntries[:limit]
	}

	entries := make([]domain.JournalEntry, len(results))
	for i, m := range results {
		entries[i] = mapping.ToDomainJournalEntry(m, nil)
	}
	return entries, nextTokenVal, nil
}

// ListPostedLines retrieves the lines of POSTED entries dated within [from, to].
func (r *PgxJournalEntryRepository) ListPostedLines(ctx context.Context, from, to *time.Time) ([]domain.JournalEntryLine, error) {
	query := `
		SELECT l.line_id, l.entry_id, l.account_code, l.description, l.debit_amount, l.credit_amount, l.line_order, l.reference
		FROM journal_entry_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.status = $1
		  AND ($2::date IS NULL OR e.entry_date >= $2::date)
		  AND ($3::date IS NULL OR e.entry_date <= $3::date)
		ORDER BY e.entry_date, e.entry_id, l.line_order;
	`
	rows, err := r.Pool.Query(ctx, query, string(domain.Posted), from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query posted journal lines", err)
	}
	defer rows.Close()

	lines := make([]models.JournalEntryLine, 0)
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan posted journal line", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating posted journal lines", err)
	}
	return mapping.ToDomainJournalLineSlice(lines), nil
}

// InsertLineInTx adds one line within tx.
func (r *PgxJournalEntryRepository) InsertLineInTx(ctx context.Context, tx pgx.Tx, line domain.JournalEntryLine) error {
	if _, err := tx.Exec(ctx, insertLineQuery, lineArgs(mapping.ToModelJournalLine(line))...); err != nil {
		return wrapLineWriteError(err, line.EntryID)
	}
	return nil
}

// DeleteLineInTx removes one line within tx.
func (r *PgxJournalEntryRepository) DeleteLineInTx(ctx context.Context, tx pgx.Tx, entryID string, lineID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM journal_entry_lines WHERE entry_id = $1 AND line_id = $2;`, entryID, lineID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete journal line "+lineID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: line %s on entry %s", apperrors.ErrNotFound, lineID, entryID)
	}
	return nil
}

// UpdateEntryInTx writes status, total, posting and audit fields within tx.
func (r *PgxJournalEntryRepository) UpdateEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)
	query := `
		UPDATE journal_entries
		SET status = $1, total_amount = $2, posted_date = $3, posted_by = $4, last_updated_at = $5, last_updated_by = $6
		WHERE entry_id = $7;
	`
	tag, err := tx.Exec(ctx, query, m.Status, m.TotalAmount, m.PostedDate, m.PostedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.EntryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update journal entry "+m.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, m.EntryID)
	}
	return nil
}
