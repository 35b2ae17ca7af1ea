package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatch() *MatchResult {
	return &MatchResult{
		DemandID:              4,
		HarvestID:             9,
		FarmerID:              2,
		UrgencyScore:          90,
		AvailableQuantity:     100,
		SuggestedPricePerUnit: 21.6,
		DaysRemaining:         3,
	}
}

func TestQuoteService_IssueAndVerify(t *testing.T) {
	quotes := NewQuoteService("test-signing-key", time.Hour)

	token, issued, err := quotes.Issue(testMatch())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, issued.ID)

	claims, err := quotes.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(4), claims.DemandID)
	assert.Equal(t, uint(9), claims.HarvestID)
	assert.Equal(t, uint(2), claims.FarmerID)
	assert.Equal(t, 21.6, claims.PricePerUnit)
	assert.Equal(t, 3, claims.DaysRemaining)
	assert.Equal(t, issued.ID, claims.ID)
}

func TestQuoteService_UniqueIDs(t *testing.T) {
	quotes := NewQuoteService("test-signing-key", time.Hour)

	_, a, err := quotes.Issue(testMatch())
	require.NoError(t, err)
	_, b, err := quotes.Issue(testMatch())
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestQuoteService_WrongKey(t *testing.T) {
	token, _, err := NewQuoteService("key-one", time.Hour).Issue(testMatch())
	require.NoError(t, err)

	_, err = NewQuoteService("key-two", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidQuote)
}

func TestQuoteService_Tampered(t *testing.T) {
	quotes := NewQuoteService("test-signing-key", time.Hour)

	_, err := quotes.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidQuote)
}

func TestQuoteService_Expired(t *testing.T) {
	quotes := NewQuoteService("test-signing-key", time.Hour)
	issuedAt := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	quotes.now = func() time.Time { return issuedAt }

	token, _, err := quotes.Issue(testMatch())
	require.NoError(t, err)

	quotes.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = quotes.Verify(token)
	assert.ErrorIs(t, err, ErrQuoteExpired)
}
