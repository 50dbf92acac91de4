package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pixelforge/imgtier/internal/domain"
)

// Signer issues and verifies expiring thumbnail links as HS256 JWTs. Any
// holder of the shared secret can verify a token without touching the
// datastore.
type Signer struct {
	secretKey []byte
}

type linkClaims struct {
	ThumbnailID string `json:"thumbnail_id"`
	jwt.RegisteredClaims
}

func NewSigner(secretKey string) *Signer {
	return &Signer{secretKey: []byte(secretKey)}
}

// Issue signs a token bound to thumbnailID that expires ttlSeconds from
// now. ttlSeconds must be positive.
func (s *Signer) Issue(thumbnailID uuid.UUID, ttlSeconds int64) (string, time.Time, error) {
	if ttlSeconds <= 0 {
		return "", time.Time{}, domain.ErrInvalidDuration
	}

	now := time.Now().UTC()
	expiresAt := now.Add(time.Duration(ttlSeconds) * time.Second)

	claims := linkClaims{
		ThumbnailID: thumbnailID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "imgtier",
		},
	}

	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing link token: %w", err)
	}

	return tokenStr, expiresAt, nil
}

// Verify checks the token's integrity and expiry and returns the thumbnail
// id it was issued for. A token is expired at its expiry instant, not one
// second later, so expiry is validated here instead of by the parser.
func (s *Signer) Verify(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &linkClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !token.Valid {
		return uuid.Nil, domain.ErrInvalidSignature
	}

	claims, ok := token.Claims.(*linkClaims)
	if !ok {
		return uuid.Nil, domain.ErrInvalidSignature
	}

	if claims.ExpiresAt == nil || !time.Now().Before(claims.ExpiresAt.Time) {
		return uuid.Nil, domain.ErrLinkExpired
	}

	thumbnailID, err := uuid.Parse(claims.ThumbnailID)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidSignature
	}

	return thumbnailID, nil
}
