// Package session supplies the DMS cookie bundle. Logging in is handled
// outside this service; the bundle is provisioned per location.
package session

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/you-humble/ge-sync/internal/model"
)

type provider struct {
	mu      sync.RWMutex
	headers map[string]string
	def     string
}

// NewStaticProvider serves def for every location that has no entry in
// perLocation.
func NewStaticProvider(def string, perLocation map[string]string) *provider {
	p := &provider{headers: make(map[string]string, len(perLocation)), def: strings.TrimSpace(def)}
	for loc, h := range perLocation {
		p.Set(loc, h)
	}
	return p
}

// Set replaces the cookie header used for locationID.
func (p *provider) Set(locationID, header string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.headers[locationID] = strings.TrimSpace(header)
}

func (p *provider) CookieHeader(_ context.Context, locationID string) (string, error) {
	const op = "session.CookieHeader"

	p.mu.RLock()
	h, ok := p.headers[locationID]
	p.mu.RUnlock()
	if !ok {
		h = p.def
	}
	if h == "" {
		return "", fmt.Errorf("%s: no session for location %q: %w", op, locationID, model.ErrValidation)
	}

	return h, nil
}

func (p *provider) ValidCookies(ctx context.Context, locationID string) ([]*http.Cookie, error) {
	const op = "session.ValidCookies"

	h, err := p.CookieHeader(ctx, locationID)
	if err != nil {
		return nil, err
	}

	cookies, err := http.ParseCookie(h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cookies, nil
}
