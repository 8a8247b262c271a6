package server

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	l := newLimiter(5)

	for i := 0; i < 5; i++ {
		assert.True(t, l.allow("10.0.0.1"), "request %d should pass", i)
	}
}

func TestLimiter_RejectsBeyondBurst(t *testing.T) {
	l := newLimiter(3)

	for i := 0; i < 3; i++ {
		assert.True(t, l.allow("10.0.0.1"))
	}
	assert.False(t, l.allow("10.0.0.1"))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := newLimiter(1)

	assert.True(t, l.allow("10.0.0.1"))
	assert.False(t, l.allow("10.0.0.1"))
	assert.True(t, l.allow("10.0.0.2"))
}

func TestClientID_StripsPort(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	req.RemoteAddr = "192.0.2.7:51234"

	assert.Equal(t, "192.0.2.7", clientID(req))
}

func TestClientID_NoPort(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	req.RemoteAddr = "192.0.2.7"

	assert.Equal(t, "192.0.2.7", clientID(req))
}
