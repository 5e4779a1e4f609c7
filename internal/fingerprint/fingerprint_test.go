package fingerprint

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "forwarded-for single value",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7"},
			want:    "203.0.113.7",
		},
		{
			name:    "forwarded-for chain takes first hop",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1, 172.16.0.1"},
			want:    "203.0.113.7",
		},
		{
			name:    "real-ip fallback",
			headers: map[string]string{"X-Real-IP": "198.51.100.23"},
			want:    "198.51.100.23",
		},
		{
			name:    "forwarded-for wins over real-ip",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7", "X-Real-IP": "198.51.100.23"},
			want:    "203.0.113.7",
		},
		{
			name:    "no forwarding headers",
			headers: nil,
			want:    "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNew_Deterministic(t *testing.T) {
	build := func() *ClientFingerprint {
		r := httptest.NewRequest("GET", "/api/products", nil)
		r.Header.Set("X-Forwarded-For", "203.0.113.7")
		r.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) Firefox/121.0")
		r.Header.Set("Accept-Language", "en-US,en;q=0.9")
		return New(r)
	}

	first := build()
	second := build()

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "203.0.113.7", first.IP)
	assert.NotZero(t, first.Timestamp)
}

func TestNew_DistinctClients(t *testing.T) {
	r1 := httptest.NewRequest("GET", "/", nil)
	r1.Header.Set("X-Forwarded-For", "203.0.113.7")
	r1.Header.Set("User-Agent", "Mozilla/5.0 Firefox/121.0")

	r2 := httptest.NewRequest("GET", "/", nil)
	r2.Header.Set("X-Forwarded-For", "203.0.113.8")
	r2.Header.Set("User-Agent", "Mozilla/5.0 Firefox/121.0")

	assert.NotEqual(t, New(r1).ID, New(r2).ID)
}

func TestNew_ClientHintWhitelist(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Sec-CH-UA", `"Chromium";v="120"`)
	r.Header.Set("Sec-CH-UA-Platform", `"Linux"`)
	r.Header.Set("Cookie", "session=secret")

	fp := New(r)

	assert.Equal(t, `"Chromium";v="120"`, fp.Headers["Sec-CH-UA"])
	assert.Equal(t, `"Linux"`, fp.Headers["Sec-CH-UA-Platform"])

	// only whitelisted hints are captured
	_, hasCookie := fp.Headers["Cookie"]
	assert.False(t, hasCookie)
}

func TestClientIdentifier_TruncatesUserAgent(t *testing.T) {
	longUA := strings.Repeat("a", 200)

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.7")
	r.Header.Set("User-Agent", longUA)

	id := ClientIdentifier(r)

	assert.Equal(t, "203.0.113.7:"+strings.Repeat("a", 50), id)

	// deterministic across calls
	assert.Equal(t, id, ClientIdentifier(r))
}
