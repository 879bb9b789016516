package api

import (
	"context"

	"placesync/internal/digest"
	"placesync/internal/models"
)

// ImportAccounts triggers a full account import run.
func (a *API) ImportAccounts(ctx context.Context) (models.ImportReport, error) {
	return a.ing.ImportAccounts(ctx)
}

// ImportPosts triggers a full post import run.
func (a *API) ImportPosts(ctx context.Context) (models.ImportReport, error) {
	return a.ing.ImportPosts(ctx)
}

func (a *API) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return a.ing.ListAccounts(ctx)
}

func (a *API) ListPosts(ctx context.Context) ([]models.Post, error) {
	return a.ing.ListPosts(ctx)
}

func (a *API) DeleteAccount(ctx context.Context, id int64) (bool, error) {
	return a.ing.DeleteAccount(ctx, id)
}

func (a *API) DeletePost(ctx context.Context, id int64) (bool, error) {
	return a.ing.DeletePost(ctx, id)
}

// Digest returns the SHA-256 hex digest of text.
func (a *API) Digest(text string) string {
	return digest.Sum(text)
}

// Verify reports whether text hashes to expected.
func (a *API) Verify(text, expected string) bool {
	return digest.Verify(text, expected)
}
