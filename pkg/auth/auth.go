package auth

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/xml"
	"errors"
	"time"
)

// Sentinel errors for signer construction.
var (
	// ErrMissingUserID indicates no user identifier was provided.
	ErrMissingUserID = errors.New("user ID is required")

	// ErrMissingEncryptionKey indicates no shared secret was provided.
	ErrMissingEncryptionKey = errors.New("encryption key is required")
)

// Header is the AuthenticationHeader SOAP header stamped on every MktoWs
// request. The service validates the signature against the timestamp and
// user ID, so the header must be regenerated fresh for each call.
type Header struct {
	XMLName          xml.Name `xml:"http://www.marketo.com/mktows/ AuthenticationHeader"`
	UserID           string   `xml:"mktowsUserId"`
	Signature        string   `xml:"requestSignature"`
	RequestTimestamp string   `xml:"requestTimestamp"`
}

// Signer produces signed authentication headers for MktoWs requests.
type Signer struct {
	userID string
	key    []byte
	now    func() time.Time
}

// Option represents a functional option for Signer
type Option func(*Signer)

// WithClock overrides the time source used for request timestamps.
// The default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		s.now = now
	}
}

// NewSigner creates a signer for the given credentials. The encryption key
// is used only to key the request signature; it is never transmitted.
func NewSigner(userID, encryptionKey string, opts ...Option) (*Signer, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if encryptionKey == "" {
		return nil, ErrMissingEncryptionKey
	}

	s := &Signer{
		userID: userID,
		key:    []byte(encryptionKey),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Sign builds a fresh authentication header. The timestamp is the current
// UTC time in RFC3339 form and the signature is computed over the
// concatenation of the timestamp and the user ID.
func (s *Signer) Sign() *Header {
	timestamp := s.now().UTC().Format(time.RFC3339)

	return &Header{
		UserID:           s.userID,
		Signature:        Signature(timestamp+s.userID, s.key),
		RequestTimestamp: timestamp,
	}
}

// Signature computes the lowercase hex HMAC-SHA1 digest of message keyed
// by key. This is the signature scheme the MktoWs API requires.
func Signature(message string, key []byte) string {
	mac := hmac.New(sha1.New, key)
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}
