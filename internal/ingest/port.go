package ingest

import (
	"context"

	"placesync/internal/models"
)

// SourcePort is the read-only remote API the pipelines pull from.
type SourcePort interface {
	FetchAccounts(ctx context.Context) ([]models.RawRecord, error)
	FetchPosts(ctx context.Context) ([]models.RawRecord, error)
}

// StorePort is the relational persistence gateway. Each mutating call is
// individually transactional: it fully commits or leaves the store unchanged.
type StorePort interface {
	// InsertAccount assigns a store-generated id and creation timestamp and
	// returns the persisted entity, or a *ConflictError when the email is
	// already taken.
	InsertAccount(ctx context.Context, account models.Account) (models.Account, error)
	// InsertPost returns a *ReferenceError when the owning account is not
	// persisted.
	InsertPost(ctx context.Context, post models.Post) (models.Post, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	// DeleteAccount reports whether a row was removed. Removal cascades to
	// the account's posts atomically.
	DeleteAccount(ctx context.Context, id int64) (bool, error)
	DeletePost(ctx context.Context, id int64) (bool, error)
}
