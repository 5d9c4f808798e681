package wordpress

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Signer produces the per-tenant request signatures the A-Root WordPress
// adapter plugin verifies. The derived key never travels on the wire.
type Signer struct {
	key []byte
	now func() time.Time
}

// NewSigner derives the tenant API key: hex(SHA256(secretPhrase + domain)),
// where domain is the bare hostname of the target site.
func NewSigner(secretPhrase, wordpressURL string, now func() time.Time) *Signer {
	if now == nil {
		now = time.Now
	}
	return &Signer{
		key: []byte(DeriveKey(secretPhrase, wordpressURL)),
		now: now,
	}
}

// DeriveKey computes the hex-encoded per-tenant API key.
func DeriveKey(secretPhrase, wordpressURL string) string {
	domain := bareDomain(wordpressURL)
	sum := sha256.Sum256([]byte(secretPhrase + domain))
	return hex.EncodeToString(sum[:])
}

func bareDomain(raw string) string {
	d := strings.TrimPrefix(raw, "https://")
	d = strings.TrimPrefix(d, "http://")
	if i := strings.IndexByte(d, '/'); i >= 0 {
		d = d[:i]
	}
	return d
}

// SignJSON signs "<unixTimestamp>." + body and returns the timestamp and the
// hex signature. A fresh timestamp per request is the replay protection; the
// server rejects stale ones.
func (s *Signer) SignJSON(body []byte) (timestamp, signature string) {
	timestamp = fmt.Sprintf("%d", s.now().Unix())
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(timestamp + "."))
	mac.Write(body)
	return timestamp, hex.EncodeToString(mac.Sum(nil))
}

// SignUpload signs "<unixTimestamp>.<email>.<filename>" for multipart
// uploads. The file body itself is not part of the signed message.
func (s *Signer) SignUpload(email, filename string) (timestamp, signature string) {
	timestamp = fmt.Sprintf("%d", s.now().Unix())
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(timestamp + "." + email + "." + filename))
	return timestamp, hex.EncodeToString(mac.Sum(nil))
}
