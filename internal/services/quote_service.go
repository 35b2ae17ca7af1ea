package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidQuote = errors.New("invalid quote")
	ErrQuoteExpired = errors.New("quote expired")
)

const quoteIssuer = "agrisync"

// QuoteClaims is a signed snapshot of a match result. Holding a quote does
// not reserve the harvest.
type QuoteClaims struct {
	DemandID      uint    `json:"demand_id"`
	HarvestID     uint    `json:"harvest_id"`
	FarmerID      uint    `json:"farmer_id"`
	PricePerUnit  float64 `json:"price_per_unit"`
	DaysRemaining int     `json:"days_remaining"`
	jwt.RegisteredClaims
}

type QuoteService struct {
	signingKey string
	ttl        time.Duration
	now        func() time.Time
}

func NewQuoteService(signingKey string, ttl time.Duration) *QuoteService {
	return &QuoteService{
		signingKey: signingKey,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (s *QuoteService) Issue(match *MatchResult) (string, *QuoteClaims, error) {
	now := s.now()
	claims := &QuoteClaims{
		DemandID:      match.DemandID,
		HarvestID:     match.HarvestID,
		FarmerID:      match.FarmerID,
		PricePerUnit:  match.SuggestedPricePerUnit,
		DaysRemaining: match.DaysRemaining,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    quoteIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.signingKey))
	if err != nil {
		return "", nil, err
	}

	return tokenString, claims, nil
}

func (s *QuoteService) Verify(tokenString string) (*QuoteClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &QuoteClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidQuote
		}
		return []byte(s.signingKey), nil
	},
		jwt.WithIssuer(quoteIssuer),
		jwt.WithTimeFunc(s.now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrQuoteExpired
		}
		return nil, ErrInvalidQuote
	}

	claims, ok := token.Claims.(*QuoteClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidQuote
	}

	return claims, nil
}
