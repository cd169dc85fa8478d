package client

import (
	"github.com/dkrasnenko/sharedtab/internal/client/models"
	pb "github.com/dkrasnenko/sharedtab/internal/proto"
)

func participantFromProto(p *pb.Participant) *models.Participant {
	if p == nil {
		return nil
	}
	return &models.Participant{
		ID:          p.GetId(),
		UserID:      p.GetUserId(),
		DisplayName: p.GetDisplayName(),
		IsHost:      p.GetIsHost(),
		Status:      models.ParticipantStatus(p.GetStatus()),
	}
}

func sessionFromProto(s *pb.Session) *models.Session {
	if s == nil {
		return nil
	}
	participants := make([]*models.Participant, 0, len(s.GetParticipants()))
	for _, p := range s.GetParticipants() {
		participants = append(participants, participantFromProto(p))
	}
	return &models.Session{
		ID:               s.GetId(),
		ShareCode:        s.GetShareCode(),
		Status:           models.SessionStatus(s.GetStatus()),
		RestaurantName:   s.GetRestaurantName(),
		TableNumber:      s.GetTableNumber(),
		RequiresApproval: s.GetRequiresApproval(),
		ParticipantCount: int(s.GetParticipantCount()),
		Participants:     participants,
	}
}

func eventFromProto(e *pb.SessionEvent) models.SessionEvent {
	return models.SessionEvent{
		Type:        e.GetType(),
		Event:       e.GetEvent(),
		SessionID:   e.GetSessionId(),
		Participant: participantFromProto(e.GetParticipant()),
		Session:     sessionFromProto(e.GetSession()),
	}
}
