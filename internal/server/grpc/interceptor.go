package grpc

import (
	"context"

	"github.com/dkrasnenko/sharedtab/internal/common"
	pb "github.com/dkrasnenko/sharedtab/internal/proto"
	"github.com/dkrasnenko/sharedtab/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const identityContextKey = contextKey("device_identity")

// Identity is the authenticated device attached to a request context.
type Identity struct {
	UserID      string
	DisplayName string
}

// methods callable without an access token
var openMethods = map[string]struct{}{
	pb.SharedTabService_RegisterDevice_FullMethodName: {},
}

func (s *GRPCServer) identityFromMetadata(ctx context.Context) (*Identity, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing metadata")
	}

	values := md.Get(common.AccessTokenHeaderName)
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing access token")
	}

	claims, err := auth.GetClaimsFromToken(values[0], s.jwtSecret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid access token")
	}

	return &Identity{UserID: claims.UserID, DisplayName: claims.DisplayName}, nil
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any,
	info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if _, ok := openMethods[info.FullMethod]; ok {
		return handler(ctx, req)
	}

	identity, err := s.identityFromMetadata(ctx)
	if err != nil {
		return nil, err
	}

	return handler(context.WithValue(ctx, identityContextKey, identity), req)
}

func (s *GRPCServer) accessTokenStreamInterceptor(srv any, ss grpc.ServerStream,
	info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {

	identity, err := s.identityFromMetadata(ss.Context())
	if err != nil {
		return err
	}

	wrapped := &authenticatedStream{
		ServerStream: ss,
		ctx:          context.WithValue(ss.Context(), identityContextKey, identity),
	}
	return handler(srv, wrapped)
}

type authenticatedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authenticatedStream) Context() context.Context {
	return s.ctx
}

func identityFromContext(ctx context.Context) (*Identity, error) {
	identity, ok := ctx.Value(identityContextKey).(*Identity)
	if !ok || identity == nil {
		return nil, status.Error(codes.Unauthenticated, "no device in context")
	}
	return identity, nil
}
