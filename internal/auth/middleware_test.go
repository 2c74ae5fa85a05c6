package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestVisitors() *Visitors {
	return NewVisitors("test-secret", "mkpp_visitor", time.Hour, false, zap.NewNop())
}

func serve(v *Visitors, cookie *http.Cookie) (string, *httptest.ResponseRecorder) {
	var seen string
	h := v.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = VisitorID(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func TestIssueParseRoundTrip(t *testing.T) {
	v := newTestVisitors()
	id := uuid.NewString()

	token, err := v.Issue(id)
	require.NoError(t, err)

	got, err := v.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	other := NewVisitors("other-secret", "mkpp_visitor", time.Hour, false, zap.NewNop())
	token, err := other.Issue(uuid.NewString())
	require.NoError(t, err)

	_, err = newTestVisitors().Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	v := newTestVisitors()
	token, err := v.Issue(uuid.NewString())
	require.NoError(t, err)

	v.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = v.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsNonUUIDSubject(t *testing.T) {
	v := newTestVisitors()
	token, err := v.Issue("admin")
	require.NoError(t, err)

	_, err = v.Parse(token)
	assert.Error(t, err)
}

func TestMiddlewareStartsNewVisitor(t *testing.T) {
	v := newTestVisitors()

	id, rec := serve(v, nil)

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "mkpp_visitor", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestMiddlewareKeepsKnownVisitor(t *testing.T) {
	v := newTestVisitors()
	first, rec := serve(v, nil)

	second, _ := serve(v, rec.Result().Cookies()[0])

	assert.Equal(t, first, second)
}

func TestMiddlewareReplacesTamperedCookie(t *testing.T) {
	v := newTestVisitors()
	first, rec := serve(v, nil)
	c := rec.Result().Cookies()[0]
	c.Value += "x"

	second, _ := serve(v, c)

	assert.NotEmpty(t, second)
	assert.NotEqual(t, first, second)
}
