// Package grpc exposes the sessions service over gRPC, including the
// server-streaming Subscribe endpoint used for push notifications.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dkrasnenko/sharedtab/internal/logging"
	pb "github.com/dkrasnenko/sharedtab/internal/proto"
	"github.com/dkrasnenko/sharedtab/internal/server/events"
	"github.com/dkrasnenko/sharedtab/internal/server/models"
	"github.com/dkrasnenko/sharedtab/internal/server/sessions"
	"google.golang.org/grpc"
)

// sessionSvc is the slice of the sessions service the transport needs.
type sessionSvc interface {
	Create(ctx context.Context, userID, displayName, restaurantName, tableNumber string, requiresApproval bool) (*models.Session, error)
	ResolveCode(ctx context.Context, code string) (*models.Session, error)
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	ListForUser(ctx context.Context, userID string) ([]*models.Session, error)
	Join(ctx context.Context, userID, displayName, sessionID, code string) (*sessions.JoinResult, error)
	Approve(ctx context.Context, hostUserID, sessionID, participantID string) error
	Reject(ctx context.Context, hostUserID, sessionID, participantID string) error
	Leave(ctx context.Context, userID, sessionID string) error
	Cancel(ctx context.Context, hostUserID, sessionID string) error
}

type GRPCServer struct {
	pb.UnimplementedSharedTabServiceServer
	address       string
	sessions      sessionSvc
	hub           *events.Hub
	logger        logging.Logger
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewGRPCServer(addr string, l logging.Logger, svc *sessions.Service, hub *events.Hub, secretKey string, tokenValidity time.Duration) (*GRPCServer, error) {
	return &GRPCServer{
		address:       addr,
		logger:        l.With("module", "grpc_server"),
		sessions:      svc,
		hub:           hub,
		jwtSecret:     []byte(secretKey),
		tokenValidity: tokenValidity,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.accessTokenStreamInterceptor),
	)

	pb.RegisterSharedTabServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
