package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claims object embedded in the signed session token
// at login. CompanyIDs is the snapshot of companies the user administered
// at the moment of issuance; it is not re-derived until the next login, so
// admin-membership changes mid-session are not reflected in an already
// issued token.
type SessionClaims struct {
	UserID         string     `json:"uid"`
	Email          string     `json:"email"`
	Username       string     `json:"username"`
	Role           string     `json:"role"`
	EmailVerified  *time.Time `json:"email_verified,omitempty"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	ProfilePicture string     `json:"profile_picture,omitempty"`
	CompanyIDs     []string   `json:"company_ids"`
	jwt.RegisteredClaims
}

// ManagesCompany reports whether the claims snapshot lists the company id.
func (c *SessionClaims) ManagesCompany(companyID string) bool {
	for _, id := range c.CompanyIDs {
		if id == companyID {
			return true
		}
	}
	return false
}

// JWTAuthenticator signs and validates HS256 session tokens.
type JWTAuthenticator struct {
	secret    string
	issuer    string
	expiresIn time.Duration
}

// NewJWTAuthenticator creates a new JWTAuthenticator instance.
func NewJWTAuthenticator(secret, issuer string, expiresIn time.Duration) JWTAuthenticator {
	return JWTAuthenticator{
		secret:    secret,
		issuer:    issuer,
		expiresIn: expiresIn,
	}
}

// GenerateSessionToken signs the given claims, filling in the registered
// claims from the authenticator's issuer and lifetime.
func (a *JWTAuthenticator) GenerateSessionToken(claims SessionClaims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.UserID,
		Issuer:    a.issuer,
		Audience:  jwt.ClaimStrings{a.issuer},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.expiresIn)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(a.secret))
}

// ValidateSessionToken validates a session token and returns its claims.
func (a *JWTAuthenticator) ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(a.secret), nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithAudience(a.issuer),
		jwt.WithIssuer(a.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
