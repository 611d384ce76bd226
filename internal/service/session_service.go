// FILE: internal/service/session_service.go
package service

import (
	"context"
	"time"

	"project-nexus-be/internal/dto"
	"project-nexus-be/internal/repository/memory"
	"project-nexus-be/pkg/aura"
	"project-nexus-be/pkg/events"
	"project-nexus-be/pkg/store"

	"github.com/google/uuid"
)

type ISessionService interface {
	GetOrCreate(ctx context.Context, userID string) *store.ShopperSession
	GetContext(ctx context.Context, userID string) *dto.ContextResponse
	UpdateContext(ctx context.Context, userID string, req *dto.UpdateContextRequest) (*dto.ContextResponse, error)
}

type sessionService struct {
	sessions  *memory.SessionRepository
	publisher IPublisherService
}

func NewSessionService(sessions *memory.SessionRepository, publisher IPublisherService) ISessionService {
	return &sessionService{
		sessions:  sessions,
		publisher: publisher,
	}
}

// GetOrCreate returns the user's live session, rebuilding defaults if it
// expired. A rebuilt session is indistinguishable from a fresh login.
func (s *sessionService) GetOrCreate(_ context.Context, userID string) *store.ShopperSession {
	if session, found := s.sessions.GetByUser(userID); found {
		session.Touch(time.Now())
		s.sessions.Save(session)
		return session
	}
	session := store.NewShopperSession(uuid.NewString(), userID, time.Now())
	s.sessions.Save(session)
	return session
}

func (s *sessionService) GetContext(ctx context.Context, userID string) *dto.ContextResponse {
	session := s.GetOrCreate(ctx, userID)
	return contextToResponse(session)
}

func (s *sessionService) UpdateContext(ctx context.Context, userID string, req *dto.UpdateContextRequest) (*dto.ContextResponse, error) {
	session := s.GetOrCreate(ctx, userID)

	if req.StressLevel != nil {
		session.Context.StressLevel = *req.StressLevel
	}
	if req.EnergyLevel != nil {
		session.Context.EnergyLevel = *req.EnergyLevel
	}
	if req.Weather != nil {
		session.Context.Weather = aura.Weather(*req.Weather)
	}
	if req.HourOfDay != nil {
		session.PinHour(*req.HourOfDay)
	}
	if req.CalendarEvents != nil {
		session.Context.CalendarEvents = *req.CalendarEvents
	}
	if req.HealthGoals != nil {
		session.Context.HealthGoals = *req.HealthGoals
	}
	if req.Biometrics != nil {
		session.Context.Biometrics = aura.Biometrics{
			HeartRate:     req.Biometrics.HeartRate,
			SleepQuality:  req.Biometrics.SleepQuality,
			ActivityLevel: req.Biometrics.ActivityLevel,
		}
	}
	if req.Intent != nil {
		session.Intent = store.Intent(*req.Intent)
	}
	if req.SustainabilityPref != nil {
		session.SustainabilityPref = store.SustainabilityPref(*req.SustainabilityPref)
	}

	// Out-of-range values are folded back into range rather than rejected.
	session.Context = session.Context.Normalized()
	session.Touch(time.Now())
	s.sessions.Save(session)

	_ = s.publisher.PublishInteraction(ctx, events.NewInteraction(events.TypeContextUpdated, userID, map[string]interface{}{
		"stress_level": session.Context.StressLevel,
		"energy_level": session.Context.EnergyLevel,
		"weather":      string(session.Context.Weather),
	}))

	return contextToResponse(session), nil
}

func contextToResponse(session *store.ShopperSession) *dto.ContextResponse {
	c := session.Context
	return &dto.ContextResponse{
		StressLevel:    c.StressLevel,
		EnergyLevel:    c.EnergyLevel,
		Weather:        string(c.Weather),
		HourOfDay:      c.HourOfDay,
		CalendarEvents: c.CalendarEvents,
		HealthGoals:    c.HealthGoals,
		Biometrics: dto.BiometricsPayload{
			HeartRate:     c.Biometrics.HeartRate,
			SleepQuality:  c.Biometrics.SleepQuality,
			ActivityLevel: c.Biometrics.ActivityLevel,
		},
		Intent:             string(session.Intent),
		SustainabilityPref: string(session.SustainabilityPref),
		CommunityTrends:    session.CommunityTrends,
	}
}
