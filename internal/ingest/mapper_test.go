package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"placesync/internal/models"
)

func TestMapAccount_Valid(t *testing.T) {
	raw := models.RawRecord{"id": float64(1), "name": "Ana", "email": "a@x.com"}

	account, err := MapAccount(raw)
	require.NoError(t, err)
	require.Equal(t, int64(1), account.ID)
	require.Equal(t, "Ana", account.Name)
	require.Equal(t, "a@x.com", account.Email)
	require.True(t, account.CreatedAt.IsZero(), "timestamp is set at persistence time")
}

func TestMapAccount_StringID(t *testing.T) {
	raw := models.RawRecord{"id": "42", "name": "Ana", "email": "a@x.com"}

	account, err := MapAccount(raw)
	require.NoError(t, err)
	require.Equal(t, int64(42), account.ID)
}

func TestMapAccount_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		raw   models.RawRecord
		field string
	}{
		{"missing id", models.RawRecord{"name": "Ana", "email": "a@x.com"}, "id"},
		{"fractional id", models.RawRecord{"id": 1.5, "name": "Ana", "email": "a@x.com"}, "id"},
		{"id beyond int64", models.RawRecord{"id": 1e19, "name": "Ana", "email": "a@x.com"}, "id"},
		{"id below int64", models.RawRecord{"id": -1e19, "name": "Ana", "email": "a@x.com"}, "id"},
		{"missing name", models.RawRecord{"id": float64(1), "email": "a@x.com"}, "name"},
		{"empty name", models.RawRecord{"id": float64(1), "name": "", "email": "a@x.com"}, "name"},
		{"missing email", models.RawRecord{"id": float64(1), "name": "Ana"}, "email"},
		{"email without at", models.RawRecord{"id": float64(1), "name": "Ana", "email": "nope"}, "email"},
		{"non-string name", models.RawRecord{"id": float64(1), "name": 7, "email": "a@x.com"}, "name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := MapAccount(tc.raw)
			var mapping *MappingError
			require.ErrorAs(t, err, &mapping)
			require.Equal(t, tc.field, mapping.Field)
		})
	}
}

func TestMapPost_Valid(t *testing.T) {
	raw := models.RawRecord{"userId": float64(3), "id": float64(9), "title": "hello", "body": "world"}

	post, err := MapPost(raw)
	require.NoError(t, err)
	require.Equal(t, int64(9), post.ID)
	require.Equal(t, int64(3), post.AccountID)
	require.Equal(t, "hello", post.Title)
	require.Equal(t, "world", post.Body)
}

func TestMapPost_AccountIDKey(t *testing.T) {
	// records read back from the store carry accountId instead of userId
	raw := models.RawRecord{"accountId": float64(3), "id": float64(9), "title": "hello", "body": ""}

	post, err := MapPost(raw)
	require.NoError(t, err)
	require.Equal(t, int64(3), post.AccountID)
}

func TestMapPost_EmptyBodyAllowed(t *testing.T) {
	raw := models.RawRecord{"userId": float64(3), "id": float64(9), "title": "hello", "body": ""}

	post, err := MapPost(raw)
	require.NoError(t, err)
	require.Empty(t, post.Body)
}

func TestMapPost_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		raw   models.RawRecord
		field string
	}{
		{"missing owner", models.RawRecord{"id": float64(9), "title": "t", "body": "b"}, "accountId"},
		{"missing title", models.RawRecord{"userId": float64(3), "id": float64(9), "body": "b"}, "title"},
		{"empty title", models.RawRecord{"userId": float64(3), "id": float64(9), "title": "", "body": "b"}, "title"},
		{"absent body", models.RawRecord{"userId": float64(3), "id": float64(9), "title": "t"}, "body"},
		{"non-integer owner", models.RawRecord{"userId": "abc", "id": float64(9), "title": "t", "body": "b"}, "userId"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := MapPost(tc.raw)
			var mapping *MappingError
			require.ErrorAs(t, err, &mapping)
			require.Equal(t, tc.field, mapping.Field)
		})
	}
}
