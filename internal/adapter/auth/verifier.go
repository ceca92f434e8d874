package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrUnauthenticated is returned when a credential is missing or invalid
var ErrUnauthenticated = errors.New("unauthenticated")

// Identity is the verified caller of a request
type Identity struct {
	UserID    uuid.UUID
	Email     string
	FirstName string
	LastName  string
}

// Claims is the JWT payload the identity provider issues. The subject claim
// carries the user ID.
type Claims struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates bearer credentials and yields the caller's identity.
// Token issuing is an external concern; this side only verifies.
//
// When AllowDemo is set (non-production environments only), a request with
// no credential at all resolves to a fixed demo identity instead of failing.
type Verifier struct {
	secret    []byte
	allowDemo bool
}

// NewVerifier creates a verifier for HS256 tokens signed with secret
func NewVerifier(secret string, allowDemo bool) *Verifier {
	return &Verifier{secret: []byte(secret), allowDemo: allowDemo}
}

// demoUserID is the fixed identity used by the development bypass
var demoUserID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// DemoIdentity returns the fixed development identity
func DemoIdentity() *Identity {
	return &Identity{
		UserID:    demoUserID,
		Email:     "demo@fintrack.local",
		FirstName: "Demo",
		LastName:  "User",
	}
}

// Verify resolves an Authorization header value into an identity.
// An empty header is only acceptable under the demo bypass; a present but
// malformed or forged credential always fails, bypass or not.
func (v *Verifier) Verify(authHeader string) (*Identity, error) {
	if authHeader == "" {
		if v.allowDemo {
			return DemoIdentity(), nil
		}
		return nil, fmt.Errorf("missing authorization header: %w", ErrUnauthenticated)
	}

	raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", ErrUnauthenticated)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", ErrUnauthenticated)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("token subject is not a user ID: %w", ErrUnauthenticated)
	}

	return &Identity{
		UserID:    userID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
	}, nil
}
