package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ginContext(remoteAddr string, headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestExtractClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "X-Forwarded-For takes first IP",
			remoteAddr: "10.0.0.1:51234",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2, 10.0.0.3"},
			want:       "203.0.113.7",
		},
		{
			name:       "X-Real-IP when no XFF",
			remoteAddr: "10.0.0.1:51234",
			headers:    map[string]string{"X-Real-IP": "203.0.113.8"},
			want:       "203.0.113.8",
		},
		{
			name:       "XFF wins over X-Real-IP",
			remoteAddr: "10.0.0.1:51234",
			headers: map[string]string{
				"X-Forwarded-For": "203.0.113.7",
				"X-Real-IP":       "203.0.113.8",
			},
			want: "203.0.113.7",
		},
		{
			name:       "invalid XFF falls through to X-Real-IP",
			remoteAddr: "10.0.0.1:51234",
			headers: map[string]string{
				"X-Forwarded-For": "not-an-ip",
				"X-Real-IP":       "203.0.113.8",
			},
			want: "203.0.113.8",
		},
		{
			name:       "falls back to RemoteAddr",
			remoteAddr: "192.0.2.44:51234",
			want:       "192.0.2.44",
		},
		{
			name:       "IPv6 RemoteAddr",
			remoteAddr: "[2001:db8::1]:51234",
			want:       "2001:db8::1",
		},
		{
			name:       "garbage RemoteAddr falls back to loopback",
			remoteAddr: "garbage",
			want:       "127.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ginContext(tt.remoteAddr, tt.headers)
			assert.Equal(t, tt.want, ExtractClientIP(c))
		})
	}
}
