// Package storage is the local key-value store backing the client. Values
// are opaque JSON documents; each client service owns its keys.
package storage

import "context"

// Keys used by the client services.
const (
	KeySession          = "@drop_logistics_user"
	KeyCredentialPrefix = "@drop_logistics_user_"
	KeyFavorites        = "favorites"
	KeyViewHistory      = "view_history"
	KeyLanguage         = "app_language"
)

// CredentialKey is the key of the credential record registered for email.
func CredentialKey(email string) string {
	return KeyCredentialPrefix + email
}

// Repository is a string-keyed byte store. Get returns (nil, nil) for an
// absent key and a non-nil empty slice for a key stored with an empty
// value. Delete of an absent key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	List(ctx context.Context) (map[string][]byte, error)
	DeleteMany(ctx context.Context, keys []string) error
	Clear(ctx context.Context) error
}
