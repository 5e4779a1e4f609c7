package botcheck

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// minimum plausible time for a human to fill the form
	DefaultMinFillTime = 3 * time.Second

	// tokens older than this are treated as stale/replayed
	DefaultMaxTokenAge = time.Hour
)

// result of verifying a form timing token
type TimingResult struct {
	Valid  bool
	Reason string
}

// issues and verifies signed tokens that encode when a form was rendered
type TimingTokenManager struct {
	secret []byte
}

// creates a timing token manager with the given signing secret
func NewTimingTokenManager(secret string) *TimingTokenManager {
	return &TimingTokenManager{secret: []byte(secret)}
}

// returns a signed token carrying the current timestamp
func (m *TimingTokenManager) Generate() (string, error) {
	claims := jwt.RegisteredClaims{
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign timing token: %w", err)
	}

	return signed, nil
}

// checks that the elapsed time since token issuance is human-plausible;
// malformed or tampered tokens are invalid, never an error
func (m *TimingTokenManager) Verify(tokenString string, minFill, maxAge time.Duration) TimingResult {
	if minFill <= 0 {
		minFill = DefaultMinFillTime
	}
	if maxAge <= 0 {
		maxAge = DefaultMaxTokenAge
	}

	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid || claims.IssuedAt == nil {
		return TimingResult{Valid: false, Reason: "Invalid timing token"}
	}

	elapsed := time.Since(claims.IssuedAt.Time)

	if elapsed < minFill {
		return TimingResult{Valid: false, Reason: "submitted too quickly"}
	}

	if elapsed > maxAge {
		return TimingResult{Valid: false, Reason: "token expired"}
	}

	return TimingResult{Valid: true}
}
