package domain

import (
	"strings"
	"time"
)

// TokenStatus is the source-authorization state of a tenant.
type TokenStatus int

const (
	TokenNotConnected TokenStatus = 0
	TokenConnected    TokenStatus = 1
	TokenExpired      TokenStatus = 2
)

func (s TokenStatus) String() string {
	switch s {
	case TokenNotConnected:
		return "not_connected"
	case TokenConnected:
		return "connected"
	case TokenExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Tenant is one syndication customer: a source account linked to a
// WordPress site the customer owns.
type Tenant struct {
	ID                   int64       `db:"id"`
	Name                 string      `db:"name"`
	WordpressURL         string      `db:"wordpress_url"`
	FacebookToken        *string     `db:"facebook_token"`
	TokenStatus          TokenStatus `db:"token_status"`
	InstagramAccountID   *string     `db:"instagram_account_id"`
	InstagramAccountName *string     `db:"instagram_account_name"`
	StartDate            time.Time   `db:"start_date"`
	DeleteHash           bool        `db:"delete_hash"`
	SecretPhrase         string      `db:"secret_phrase"`
	CreatedAt            time.Time   `db:"created_at"`
	UpdatedAt            time.Time   `db:"updated_at"`
}

// Eligible reports whether the tenant can be picked up by a batch run.
func (t *Tenant) Eligible() bool {
	return t.TokenStatus == TokenConnected && t.FacebookToken != nil && *t.FacebookToken != ""
}

// SetWordpressURL stores the bare hostname; scheme and trailing slash are
// stripped so the signing key derivation always sees the same input.
func (t *Tenant) SetWordpressURL(raw string) {
	u := strings.TrimSpace(raw)
	u = strings.TrimPrefix(u, "https://")
	u = strings.TrimPrefix(u, "http://")
	u = strings.TrimSuffix(u, "/")
	t.WordpressURL = u
}

// Token returns the stored source token or an empty string.
func (t *Tenant) Token() string {
	if t.FacebookToken == nil {
		return ""
	}
	return *t.FacebookToken
}

// AccountID returns the linked source account id or an empty string.
func (t *Tenant) AccountID() string {
	if t.InstagramAccountID == nil {
		return ""
	}
	return *t.InstagramAccountID
}
