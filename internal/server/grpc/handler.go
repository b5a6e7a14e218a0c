package grpc

import (
	"context"

	"github.com/dmitrijs2005/blogauth/internal/api"
	pb "github.com/dmitrijs2005/blogauth/internal/proto"
	"github.com/dmitrijs2005/blogauth/internal/server/services"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.SessionResponse, error) {
	session, err := s.accounts.Register(ctx, req.Fullname, req.Email, req.Password)
	if err != nil {
		return nil, api.StatusFromError(err).Err()
	}
	return toResponse(session), nil
}

func (s *GRPCServer) Authenticate(ctx context.Context, req *pb.AuthenticateRequest) (*pb.SessionResponse, error) {
	session, err := s.accounts.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, api.StatusFromError(err).Err()
	}
	return toResponse(session), nil
}

func toResponse(s *services.Session) *pb.SessionResponse {
	return &pb.SessionResponse{
		AccessToken:  s.Token,
		Username:     s.Username,
		Fullname:     s.Fullname,
		ProfileImg:   s.ProfileImage,
	}
}
