package persist

import (
	"net/http"
	"time"
)

// Cookie persists values as browser cookies for a single request/response
// pair. Construct one per request; reads see cookies sent by the client,
// writes add Set-Cookie headers to the response.
type Cookie struct {
	w      http.ResponseWriter
	r      *http.Request
	path   string
	maxAge time.Duration
	secure bool
}

// CookieOption configures a Cookie storage.
type CookieOption func(*Cookie)

// WithCookieMaxAge sets the cookie lifetime. The default is one year.
func WithCookieMaxAge(maxAge time.Duration) CookieOption {
	return func(c *Cookie) {
		c.maxAge = maxAge
	}
}

// WithCookiePath sets the cookie path. The default is "/".
func WithCookiePath(path string) CookieOption {
	return func(c *Cookie) {
		c.path = path
	}
}

// WithCookieSecure marks written cookies as HTTPS-only.
func WithCookieSecure() CookieOption {
	return func(c *Cookie) {
		c.secure = true
	}
}

// NewCookie creates a cookie storage bound to the given response and request.
func NewCookie(w http.ResponseWriter, r *http.Request, opts ...CookieOption) *Cookie {
	c := &Cookie{
		w:      w,
		r:      r,
		path:   "/",
		maxAge: 365 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value of the named request cookie.
func (c *Cookie) Get(key string) (string, bool) {
	cookie, err := c.r.Cookie(key)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Set writes the value as a response cookie.
func (c *Cookie) Set(key, value string) {
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     c.path,
		MaxAge:   int(c.maxAge.Seconds()),
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
