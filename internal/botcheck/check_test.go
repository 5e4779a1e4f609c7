package botcheck

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_HoneypotAlone(t *testing.T) {
	m := NewTimingTokenManager(testSecret)

	result := m.Check(Input{Honeypot: "filled by a script"})

	// the honeypot is the strongest single signal
	assert.True(t, result.IsBot)
	assert.GreaterOrEqual(t, result.Confidence, 80)
	assert.Contains(t, result.Reasons, "honeypot field filled")
}

func TestCheck_CleanSubmission(t *testing.T) {
	m := NewTimingTokenManager(testSecret)

	token := tokenIssuedAt(t, time.Now().Add(-30*time.Second))

	result := m.Check(Input{
		TimingToken: token,
		Content:     "The install guide was clear and the part fit my chassis on the first try.",
		Email:       "driver@realcompany.com",
	})

	assert.False(t, result.IsBot)
	assert.Equal(t, 0, result.Confidence)
	assert.Empty(t, result.Reasons)
}

func TestCheck_TimingAlone(t *testing.T) {
	m := NewTimingTokenManager(testSecret)

	token, err := m.Generate()
	require.NoError(t, err)

	// instant submission fails timing but is not enough to reject alone
	result := m.Check(Input{TimingToken: token})

	assert.False(t, result.IsBot)
	assert.Equal(t, 40, result.Confidence)
}

func TestCheck_CombinedSignals(t *testing.T) {
	m := NewTimingTokenManager(testSecret)

	result := m.Check(Input{
		TimingToken: "garbage",
		Email:       "bot@tempmail.com",
	})

	// invalid timing (40) plus disposable email (25) crosses the threshold
	assert.True(t, result.IsBot)
	assert.Equal(t, 65, result.Confidence)
}

func TestCheck_SpamContent(t *testing.T) {
	m := NewTimingTokenManager(testSecret)

	result := m.Check(Input{
		Content: "BUY NOW casino lottery forex https://a.example https://b.example https://c.example https://d.example",
	})

	// spam content alone is heavy advisory weight but does not reject
	// by itself; it rejects in combination with any other signal
	assert.False(t, result.IsBot)
	assert.Equal(t, 40, result.Confidence)

	withEmail := m.Check(Input{
		Content: "BUY NOW casino lottery forex https://a.example https://b.example https://c.example https://d.example",
		Email:   "bot@tempmail.com",
	})

	assert.True(t, withEmail.IsBot)
	assert.Equal(t, 65, withEmail.Confidence)
}

func TestCheck_ConfidenceCapped(t *testing.T) {
	m := NewTimingTokenManager(testSecret)

	result := m.Check(Input{
		Honeypot:    "x",
		TimingToken: "garbage",
		Content:     "casino lottery forex viagra click here buy now https://a.example",
		Email:       "not-an-email",
	})

	assert.True(t, result.IsBot)
	assert.Equal(t, 100, result.Confidence)
}

func TestCheck_EmptyInput(t *testing.T) {
	m := NewTimingTokenManager(testSecret)

	result := m.Check(Input{})

	assert.False(t, result.IsBot)
	assert.Equal(t, 0, result.Confidence)
}
