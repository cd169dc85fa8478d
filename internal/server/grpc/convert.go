package grpc

import (
	pb "github.com/dkrasnenko/sharedtab/internal/proto"
	"github.com/dkrasnenko/sharedtab/internal/server/events"
	"github.com/dkrasnenko/sharedtab/internal/server/models"
)

func toProtoParticipant(p *models.Participant) *pb.Participant {
	if p == nil {
		return nil
	}
	return &pb.Participant{
		Id:          p.ID,
		UserId:      p.UserID,
		DisplayName: p.DisplayName,
		IsHost:      p.IsHost,
		Status:      string(p.Status),
	}
}

func toProtoSession(s *models.Session) *pb.Session {
	if s == nil {
		return nil
	}
	participants := make([]*pb.Participant, 0, len(s.Participants))
	for _, p := range s.Participants {
		participants = append(participants, toProtoParticipant(p))
	}
	return &pb.Session{
		Id:               s.ID,
		ShareCode:        s.ShareCode,
		Status:           string(s.Status),
		RestaurantName:   s.RestaurantName,
		TableNumber:      s.TableNumber,
		RequiresApproval: s.RequiresApproval,
		ParticipantCount: int32(s.ParticipantCount),
		Participants:     participants,
	}
}

func toProtoEvent(e events.Event) *pb.SessionEvent {
	return &pb.SessionEvent{
		Type:        e.Type,
		Event:       e.SubEvent,
		SessionId:   e.SessionID,
		Participant: toProtoParticipant(e.Participant),
		Session:     toProtoSession(e.Session),
	}
}
