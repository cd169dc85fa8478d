package client

import (
	"context"
	"sync"
	"time"

	"github.com/dkrasnenko/sharedtab/internal/client/models"
	"github.com/dkrasnenko/sharedtab/internal/common"
	pb "github.com/dkrasnenko/sharedtab/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// reconnectDelay paces Subscribe stream re-establishment after a drop.
const reconnectDelay = 2 * time.Second

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.SharedTabServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// SetAccessToken installs the device's access token for all subsequent calls.
func (s *GRPCClient) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (s *GRPCClient) accessTokenStreamInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return streamer(ctx, desc, cc, method, opts...)
}

func NewSharedTabClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
		grpc.WithStreamInterceptor(s.accessTokenStreamInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewSharedTabServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// mapError translates gRPC status codes back into the client error taxonomy.
func (s *GRPCClient) mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.NotFound:
		return common.ErrNotFound
	case codes.FailedPrecondition:
		return common.ErrNotJoinable
	case codes.ResourceExhausted:
		return common.ErrSessionFull
	case codes.PermissionDenied:
		return common.ErrServerRejected
	case codes.Unauthenticated:
		return common.ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		// server message passthrough
		return err
	}
}

func (s *GRPCClient) RegisterDevice(ctx context.Context, displayName string) (*models.DeviceIdentity, error) {

	resp, err := s.client.RegisterDevice(ctx, &pb.RegisterDeviceRequest{DisplayName: displayName})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.SetAccessToken(resp.GetAccessToken())

	return &models.DeviceIdentity{
		UserID:      resp.GetUserId(),
		DisplayName: displayName,
		AccessToken: resp.GetAccessToken(),
	}, nil
}

func (s *GRPCClient) CreateSession(ctx context.Context, restaurantName, tableNumber string, requiresApproval bool) (*models.Session, error) {

	resp, err := s.client.CreateSession(ctx, &pb.CreateSessionRequest{
		RestaurantName:   restaurantName,
		TableNumber:      tableNumber,
		RequiresApproval: requiresApproval,
	})
	if err != nil {
		return nil, s.mapError(err)
	}
	return sessionFromProto(resp.GetSession()), nil
}

func (s *GRPCClient) ResolveCode(ctx context.Context, code string) (*models.Session, error) {

	resp, err := s.client.ResolveCode(ctx, &pb.ResolveCodeRequest{Code: code})
	if err != nil {
		return nil, s.mapError(err)
	}
	return sessionFromProto(resp.GetSession()), nil
}

func (s *GRPCClient) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {

	resp, err := s.client.GetSession(ctx, &pb.GetSessionRequest{SessionId: sessionID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return sessionFromProto(resp.GetSession()), nil
}

func (s *GRPCClient) ListMySessions(ctx context.Context) ([]*models.Session, error) {

	resp, err := s.client.ListMySessions(ctx, &pb.ListMySessionsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	sessions := make([]*models.Session, 0, len(resp.GetSessions()))
	for _, sess := range resp.GetSessions() {
		sessions = append(sessions, sessionFromProto(sess))
	}
	return sessions, nil
}

// Join joins a session by id or share code. The new participant's id may
// arrive under either the current or the legacy response field; absence of
// both yields an empty ParticipantID.
func (s *GRPCClient) Join(ctx context.Context, sessionID, code string) (*JoinResult, error) {

	resp, err := s.client.Join(ctx, &pb.JoinRequest{SessionId: sessionID, Code: code})
	if err != nil {
		return nil, s.mapError(err)
	}

	participantID := resp.GetParticipantId()
	if participantID == "" {
		participantID = resp.GetMemberId()
	}

	return &JoinResult{
		RequiresApproval: resp.GetRequiresApproval(),
		Session:          sessionFromProto(resp.GetSession()),
		ParticipantID:    participantID,
	}, nil
}

func (s *GRPCClient) Approve(ctx context.Context, sessionID, participantID string) error {
	_, err := s.client.Approve(ctx, &pb.ParticipantActionRequest{SessionId: sessionID, ParticipantId: participantID})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Reject(ctx context.Context, sessionID, participantID string) error {
	_, err := s.client.Reject(ctx, &pb.ParticipantActionRequest{SessionId: sessionID, ParticipantId: participantID})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Leave(ctx context.Context, sessionID string) error {
	_, err := s.client.Leave(ctx, &pb.SessionActionRequest{SessionId: sessionID})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Cancel(ctx context.Context, sessionID string) error {
	_, err := s.client.Cancel(ctx, &pb.SessionActionRequest{SessionId: sessionID})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

// Subscribe opens the session's push stream and returns a receive channel
// plus an unsubscribe function. The stream reconnects silently after errors
// until unsubscribed; events lost across reconnects are not replayed, so
// consumers must treat the channel as lossy and reconcile by polling.
func (s *GRPCClient) Subscribe(ctx context.Context, sessionID string) (<-chan models.SessionEvent, func(), error) {

	ctx, cancel := context.WithCancel(ctx)
	events := make(chan models.SessionEvent, 16)

	go func() {
		defer close(events)
		for {
			if ctx.Err() != nil {
				return
			}

			stream, err := s.client.Subscribe(ctx, &pb.SubscribeRequest{SessionId: sessionID})
			if err != nil {
				if !s.waitReconnect(ctx) {
					return
				}
				continue
			}

			for {
				event, err := stream.Recv()
				if err != nil {
					break
				}
				select {
				case events <- eventFromProto(event):
				case <-ctx.Done():
					return
				}
			}

			if !s.waitReconnect(ctx) {
				return
			}
		}
	}()

	var once sync.Once
	unsubscribe := func() {
		once.Do(cancel)
	}
	return events, unsubscribe, nil
}

func (s *GRPCClient) waitReconnect(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(reconnectDelay):
		return true
	}
}
