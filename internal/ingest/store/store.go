package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"placesync/internal/ingest"
	"placesync/internal/models"
)

// Postgres error codes the store translates into domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// PGStore persists accounts and posts on PostgreSQL. Connections are scoped
// per call: each operation acquires from the pool and releases on every exit
// path. Every mutating statement commits on its own, so a batch import never
// holds one encompassing transaction.
type PGStore struct{ pool *pgxpool.Pool }

var _ ingest.StorePort = (*PGStore)(nil)

func New(ctx context.Context, dsn string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return &PGStore{pool: pool}, nil
}

func (s *PGStore) Close() { s.pool.Close() }

// Ping reports whether the persistence resource is usable.
func (s *PGStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// InsertAccount writes one account. The remote id is persisted as-is so that
// post.account_id stays aligned with the source's userId references even when
// earlier records were skipped or rejected; the store only assigns an id when
// none came along. The unique index on email is the single race-safe guard
// against duplicates.
func (s *PGStore) InsertAccount(ctx context.Context, account models.Account) (models.Account, error) {
	var err error
	if account.ID != 0 {
		const query = `INSERT INTO account (id, name, email) VALUES ($1, $2, $3) RETURNING created_at`
		err = s.pool.QueryRow(ctx, query, account.ID, account.Name, account.Email).Scan(&account.CreatedAt)
	} else {
		const query = `INSERT INTO account (name, email) VALUES ($1, $2) RETURNING id, created_at`
		err = s.pool.QueryRow(ctx, query, account.Name, account.Email).Scan(&account.ID, &account.CreatedAt)
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return models.Account{}, &ingest.ConflictError{Field: "email"}
			}
			return models.Account{}, &ingest.ConflictError{Field: "id"}
		}
		return models.Account{}, err
	}
	return account, nil
}

// InsertPost writes one post, keeping the remote id so re-imports of an
// unchanged collection hit the primary key and skip instead of doubling rows.
// The foreign key to account rejects posts whose owner is not persisted.
func (s *PGStore) InsertPost(ctx context.Context, post models.Post) (models.Post, error) {
	var err error
	if post.ID != 0 {
		const query = `INSERT INTO post (id, account_id, title, body) VALUES ($1, $2, $3, $4) RETURNING created_at`
		err = s.pool.QueryRow(ctx, query, post.ID, post.AccountID, post.Title, post.Body).Scan(&post.CreatedAt)
	} else {
		const query = `INSERT INTO post (account_id, title, body) VALUES ($1, $2, $3) RETURNING id, created_at`
		err = s.pool.QueryRow(ctx, query, post.AccountID, post.Title, post.Body).Scan(&post.ID, &post.CreatedAt)
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case codeForeignKeyViolation:
				return models.Post{}, &ingest.ReferenceError{AccountID: post.AccountID}
			case codeUniqueViolation:
				return models.Post{}, &ingest.ConflictError{Field: "id"}
			}
		}
		return models.Post{}, err
	}
	return post, nil
}

func (s *PGStore) ListAccounts(ctx context.Context) ([]models.Account, error) {
	const query = `SELECT id, name, email, created_at FROM account ORDER BY id`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (s *PGStore) ListPosts(ctx context.Context) ([]models.Post, error) {
	const query = `SELECT id, account_id, title, body, created_at FROM post ORDER BY id`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.AccountID, &p.Title, &p.Body, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// DeleteAccount removes the account row. The schema's ON DELETE CASCADE takes
// the account's posts down in the same statement, so either both disappear or
// neither does.
func (s *PGStore) DeleteAccount(ctx context.Context, id int64) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM account WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PGStore) DeletePost(ctx context.Context, id int64) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM post WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
