package grpc

import (
	pb "github.com/dkrasnenko/sharedtab/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Subscribe streams session events to the caller until the stream context
// ends. Delivery is best-effort; clients poll to cover dropped events.
func (s *GRPCServer) Subscribe(in *pb.SubscribeRequest, stream grpc.ServerStreamingServer[pb.SessionEvent]) error {
	ctx := stream.Context()

	if _, err := identityFromContext(ctx); err != nil {
		return err
	}
	if in.GetSessionId() == "" {
		return status.Error(codes.InvalidArgument, "session id is required")
	}

	// Reject subscriptions to sessions that do not exist.
	if _, err := s.sessions.Get(ctx, in.GetSessionId()); err != nil {
		return toStatusError(err)
	}

	ch, unsubscribe := s.hub.Subscribe(in.GetSessionId())
	defer unsubscribe()

	s.logger.Debug(ctx, "subscriber attached", "session_id", in.GetSessionId())

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			if err := stream.Send(toProtoEvent(event)); err != nil {
				return err
			}
		}
	}
}
