package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/ge-sync/internal/model"
)

func TestProvider(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	p := NewStaticProvider(" JSESSIONID=abc; dmsLoc=19SU ", map[string]string{"20XX": " JSESSIONID=zzz"})

	h, err := p.CookieHeader(ctx, "19SU")
	require.NoError(t, err)
	assert.Equal(t, "JSESSIONID=abc; dmsLoc=19SU", h)

	cookies, err := p.ValidCookies(ctx, "19SU")
	require.NoError(t, err)
	require.Len(t, cookies, 2)
	assert.Equal(t, "JSESSIONID", cookies[0].Name)
	assert.Equal(t, "abc", cookies[0].Value)
	assert.Equal(t, "dmsLoc", cookies[1].Name)

	h, err = p.CookieHeader(ctx, "20XX")
	require.NoError(t, err)
	assert.Equal(t, "JSESSIONID=zzz", h)

	p.Set("20XX", "JSESSIONID=yyy")
	h, err = p.CookieHeader(ctx, "20XX")
	require.NoError(t, err)
	assert.Equal(t, "JSESSIONID=yyy", h)

	_, err = NewStaticProvider("", nil).CookieHeader(ctx, "19SU")
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = NewStaticProvider("", map[string]string{"20XX": "JSESSIONID=zzz"}).CookieHeader(ctx, "19SU")
	assert.ErrorIs(t, err, model.ErrValidation)
}
