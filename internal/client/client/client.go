package client

import (
	"context"

	pb "github.com/dmitrijs2005/blogauth/internal/proto"
)

type Client interface {
	Close() error
	Register(ctx context.Context, fullname, email, password string) (*pb.SessionResponse, error)
	Authenticate(ctx context.Context, email, password string) (*pb.SessionResponse, error)
}
