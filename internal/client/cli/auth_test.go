package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/blogauth/internal/api"
	"github.com/dmitrijs2005/blogauth/internal/client/client"
	"github.com/dmitrijs2005/blogauth/internal/common"
	pb "github.com/dmitrijs2005/blogauth/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubInputs(t *testing.T, texts []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		i++
		return texts[i-1], nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeClient struct {
	fullname, email, password string

	resp   *pb.SessionResponse
	err    error
	closed bool
}

func (f *fakeClient) Register(_ context.Context, fullname, email, password string) (*pb.SessionResponse, error) {
	f.fullname, f.email, f.password = fullname, email, password
	return f.resp, f.err
}

func (f *fakeClient) Authenticate(_ context.Context, email, password string) (*pb.SessionResponse, error) {
	f.email, f.password = email, password
	return f.resp, f.err
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func newTestApp(c *fakeClient, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{client: c, reader: bufio.NewReader(strings.NewReader(input)), out: &out}, &out
}

var janeSession = &pb.SessionResponse{AccessToken: "tok", Username: "jane", Fullname: "Jane Doe", ProfileImg: "img/jane"}

func TestRegister_Success(t *testing.T) {
	pw := []byte("Abc123")
	stubInputs(t, []string{"Jane Doe", "jane@x.com"}, pw)
	fc := &fakeClient{resp: janeSession}
	a, out := newTestApp(fc, "")

	require.NoError(t, a.Register(context.Background()))

	assert.Equal(t, "Jane Doe", fc.fullname)
	assert.Equal(t, "jane@x.com", fc.email)
	assert.Equal(t, "Abc123", fc.password)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0}, pw, "password must be wiped")
	assert.True(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Registration successful")
	assert.Contains(t, out.String(), "img/jane")
}

func TestRegister_ServiceErrorShowsMessage(t *testing.T) {
	stubInputs(t, []string{"Jane Doe", "jane@x.com"}, []byte("Abc123"))
	svcErr := api.StatusFromError(common.ErrEmailExists).Err()
	a, out := newTestApp(&fakeClient{err: svcErr}, "")

	err := a.Register(context.Background())
	require.Error(t, err)
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Email already exists.")
}

func TestRegister_InputError(t *testing.T) {
	stubInputs(t, nil, nil)
	fc := &fakeClient{}
	a, _ := newTestApp(fc, "")

	require.ErrorIs(t, a.Register(context.Background()), io.EOF)
	assert.Empty(t, fc.email)
}

func TestLogin_Success(t *testing.T) {
	stubInputs(t, []string{"jane@x.com"}, []byte("Abc123"))
	fc := &fakeClient{resp: janeSession}
	a, out := newTestApp(fc, "")

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "jane@x.com", fc.email)
	assert.Equal(t, janeSession, a.session)
	assert.Contains(t, out.String(), "Login successful")
}

func TestLogin_Unavailable(t *testing.T) {
	stubInputs(t, []string{"jane@x.com"}, []byte("Abc123"))
	a, out := newTestApp(&fakeClient{err: client.ErrUnavailable}, "")

	require.ErrorIs(t, a.Login(context.Background()), client.ErrUnavailable)
	assert.Contains(t, out.String(), "Server unavailable")
}

func TestWhoAmIAndLogout(t *testing.T) {
	a, out := newTestApp(&fakeClient{}, "")

	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "Not logged in")

	a.session = janeSession
	out.Reset()
	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "jane")

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, a.isLoggedIn())
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Server unavailable, please try again later.", errorMessage(client.ErrUnavailable))
	assert.Equal(t, "Incorrect Password.", errorMessage(api.StatusFromError(common.ErrIncorrectPassword).Err()))
	assert.Equal(t, "boom", errorMessage(errors.New("boom")))
	assert.Equal(t, "Email already exists. Use 'login' to sign in to the existing account.",
		errorMessage(api.StatusFromError(common.ErrEmailExists).Err()))
	assert.Equal(t, "Email not found. Use 'register' to create an account.",
		errorMessage(api.StatusFromError(common.ErrEmailNotFound).Err()))
}
