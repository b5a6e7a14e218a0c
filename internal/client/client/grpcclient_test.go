package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/blogauth/internal/api"
	"github.com/dmitrijs2005/blogauth/internal/common"
	pb "github.com/dmitrijs2005/blogauth/internal/proto"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

/*************
 * Fake api client
 *************/

type fakeAPI struct {
	lastRegisterReq     *pb.RegisterRequest
	lastAuthenticateReq *pb.AuthenticateRequest
	hadDeadline         bool

	resp *pb.SessionResponse
	err  error
}

func (f *fakeAPI) Register(ctx context.Context, in *pb.RegisterRequest, opts ...grpc.CallOption) (*pb.SessionResponse, error) {
	f.lastRegisterReq = in
	_, f.hadDeadline = ctx.Deadline()
	return f.resp, f.err
}

func (f *fakeAPI) Authenticate(ctx context.Context, in *pb.AuthenticateRequest, opts ...grpc.CallOption) (*pb.SessionResponse, error) {
	f.lastAuthenticateReq = in
	_, f.hadDeadline = ctx.Deadline()
	return f.resp, f.err
}

func newTestClient(f *fakeAPI, timeout time.Duration) *GRPCClient {
	return &GRPCClient{client: f, timeout: timeout}
}

/*************
 * Tests
 *************/

func TestRegister_ForwardsRequest(t *testing.T) {
	f := &fakeAPI{resp: &pb.SessionResponse{AccessToken: "tok", Username: "jane"}}
	c := newTestClient(f, time.Second)

	resp, err := c.Register(context.Background(), "Jane Doe", "jane@x.com", "Abc123")
	require.NoError(t, err)
	require.Equal(t, "tok", resp.AccessToken)
	require.True(t, proto.Equal(&pb.RegisterRequest{Fullname: "Jane Doe", Email: "jane@x.com", Password: "Abc123"}, f.lastRegisterReq))
	require.True(t, f.hadDeadline)
}

func TestAuthenticate_NoTimeout(t *testing.T) {
	f := &fakeAPI{resp: &pb.SessionResponse{Username: "jane"}}
	c := newTestClient(f, 0)

	_, err := c.Authenticate(context.Background(), "jane@x.com", "Abc123")
	require.NoError(t, err)
	require.Equal(t, "jane@x.com", f.lastAuthenticateReq.Email)
	require.False(t, f.hadDeadline)
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	require.NoError(t, c.mapError(nil))
	require.ErrorIs(t, c.mapError(status.Error(codes.Unavailable, "down")), ErrUnavailable)
	require.ErrorIs(t, c.mapError(status.Error(codes.DeadlineExceeded, "slow")), ErrUnavailable)

	svcErr := api.StatusFromError(common.ErrEmailExists).Err()
	got := c.mapError(svcErr)
	require.Equal(t, common.KindEmailExists, api.ErrorKind(got))

	plain := errors.New("x")
	require.Same(t, plain, c.mapError(plain))
}

func TestAuthenticate_MapsUnavailable(t *testing.T) {
	f := &fakeAPI{err: status.Error(codes.Unavailable, "down")}
	c := newTestClient(f, time.Second)

	_, err := c.Authenticate(context.Background(), "a@b.c", "p")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestRequestIDInterceptor_AddsHeader(t *testing.T) {
	var got metadata.MD
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		got, _ = metadata.FromOutgoingContext(ctx)
		return nil
	}

	require.NoError(t, requestIDInterceptor(context.Background(), "/m", nil, nil, nil, invoker))
	require.Len(t, got.Get(common.RequestIDHeaderName), 1)
	require.NotEmpty(t, got.Get(common.RequestIDHeaderName)[0])
}

func TestNewGRPCClient(t *testing.T) {
	c, err := NewGRPCClient("127.0.0.1:1", time.Second)
	require.NoError(t, err)
	require.NotNil(t, c.client)
	require.NoError(t, c.Close())
}
