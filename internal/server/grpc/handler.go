package grpc

import (
	"context"
	"errors"

	"github.com/dkrasnenko/sharedtab/internal/common"
	pb "github.com/dkrasnenko/sharedtab/internal/proto"
	"github.com/dkrasnenko/sharedtab/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatusError maps service sentinel errors to gRPC status codes.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrNotJoinable):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrSessionFull):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, common.ErrNotHost):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, common.ErrNotParticipant):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrParticipantNotPending):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// RegisterDevice issues a fresh device identity and its access token.
// It is the only unauthenticated call.
func (s *GRPCServer) RegisterDevice(ctx context.Context, in *pb.RegisterDeviceRequest) (*pb.RegisterDeviceResponse, error) {
	if in.GetDisplayName() == "" {
		return nil, status.Error(codes.InvalidArgument, "display name is required")
	}

	userID := uuid.NewString()
	token, err := auth.GenerateToken(userID, in.GetDisplayName(), s.jwtSecret, s.tokenValidity)
	if err != nil {
		s.logger.Error(ctx, "token generation failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.RegisterDeviceResponse{UserId: userID, AccessToken: token}, nil
}

func (s *GRPCServer) CreateSession(ctx context.Context, in *pb.CreateSessionRequest) (*pb.SessionResponse, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if in.GetRestaurantName() == "" {
		return nil, status.Error(codes.InvalidArgument, "restaurant name is required")
	}

	session, err := s.sessions.Create(ctx, identity.UserID, identity.DisplayName,
		in.GetRestaurantName(), in.GetTableNumber(), in.GetRequiresApproval())
	if err != nil {
		s.logger.Error(ctx, "create session failed", "error", err)
		return nil, toStatusError(err)
	}

	return &pb.SessionResponse{Session: toProtoSession(session)}, nil
}

func (s *GRPCServer) ResolveCode(ctx context.Context, in *pb.ResolveCodeRequest) (*pb.SessionResponse, error) {
	if _, err := identityFromContext(ctx); err != nil {
		return nil, err
	}
	if in.GetCode() == "" {
		return nil, status.Error(codes.InvalidArgument, "code is required")
	}

	session, err := s.sessions.ResolveCode(ctx, in.GetCode())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &pb.SessionResponse{Session: toProtoSession(session)}, nil
}

func (s *GRPCServer) GetSession(ctx context.Context, in *pb.GetSessionRequest) (*pb.SessionResponse, error) {
	if _, err := identityFromContext(ctx); err != nil {
		return nil, err
	}
	if in.GetSessionId() == "" {
		return nil, status.Error(codes.InvalidArgument, "session id is required")
	}

	session, err := s.sessions.Get(ctx, in.GetSessionId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &pb.SessionResponse{Session: toProtoSession(session)}, nil
}

func (s *GRPCServer) ListMySessions(ctx context.Context, in *pb.ListMySessionsRequest) (*pb.ListMySessionsResponse, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessions.ListForUser(ctx, identity.UserID)
	if err != nil {
		s.logger.Error(ctx, "list sessions failed", "error", err)
		return nil, toStatusError(err)
	}

	resp := &pb.ListMySessionsResponse{}
	for _, session := range sessions {
		resp.Sessions = append(resp.Sessions, toProtoSession(session))
	}
	return resp, nil
}

// Join admits the caller to a session by id or share code. The participant id
// is reported under both its current and its legacy field for older clients.
func (s *GRPCServer) Join(ctx context.Context, in *pb.JoinRequest) (*pb.JoinResponse, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if in.GetSessionId() == "" && in.GetCode() == "" {
		return nil, status.Error(codes.InvalidArgument, "session id or code is required")
	}

	result, err := s.sessions.Join(ctx, identity.UserID, identity.DisplayName, in.GetSessionId(), in.GetCode())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &pb.JoinResponse{
		RequiresApproval: result.RequiresApproval,
		Session:          toProtoSession(result.Session),
		ParticipantId:    result.ParticipantID,
		MemberId:         result.ParticipantID,
	}, nil
}

func (s *GRPCServer) Approve(ctx context.Context, in *pb.ParticipantActionRequest) (*pb.ActionResponse, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if in.GetSessionId() == "" || in.GetParticipantId() == "" {
		return nil, status.Error(codes.InvalidArgument, "session id and participant id are required")
	}

	if err := s.sessions.Approve(ctx, identity.UserID, in.GetSessionId(), in.GetParticipantId()); err != nil {
		return nil, toStatusError(err)
	}
	return &pb.ActionResponse{}, nil
}

func (s *GRPCServer) Reject(ctx context.Context, in *pb.ParticipantActionRequest) (*pb.ActionResponse, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if in.GetSessionId() == "" || in.GetParticipantId() == "" {
		return nil, status.Error(codes.InvalidArgument, "session id and participant id are required")
	}

	if err := s.sessions.Reject(ctx, identity.UserID, in.GetSessionId(), in.GetParticipantId()); err != nil {
		return nil, toStatusError(err)
	}
	return &pb.ActionResponse{}, nil
}

func (s *GRPCServer) Leave(ctx context.Context, in *pb.SessionActionRequest) (*pb.ActionResponse, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if in.GetSessionId() == "" {
		return nil, status.Error(codes.InvalidArgument, "session id is required")
	}

	if err := s.sessions.Leave(ctx, identity.UserID, in.GetSessionId()); err != nil {
		return nil, toStatusError(err)
	}
	return &pb.ActionResponse{}, nil
}

func (s *GRPCServer) Cancel(ctx context.Context, in *pb.SessionActionRequest) (*pb.ActionResponse, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if in.GetSessionId() == "" {
		return nil, status.Error(codes.InvalidArgument, "session id is required")
	}

	if err := s.sessions.Cancel(ctx, identity.UserID, in.GetSessionId()); err != nil {
		return nil, toStatusError(err)
	}
	return &pb.ActionResponse{}, nil
}
