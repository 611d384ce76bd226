package service

import (
	"context"
	"testing"
	"time"

	"project-nexus-be/internal/dto"
	"project-nexus-be/internal/repository/memory"
	"project-nexus-be/pkg/events"
)

type capturingPublisher struct {
	published []events.Event
}

func (p *capturingPublisher) PublishInteraction(_ context.Context, event events.Event) error {
	p.published = append(p.published, event)
	return nil
}

func newTestSessionService() (ISessionService, *capturingPublisher) {
	pub := &capturingPublisher{}
	return NewSessionService(memory.NewSessionRepository(time.Hour), pub), pub
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestGetOrCreateIsStable(t *testing.T) {
	svc, _ := newTestSessionService()
	ctx := context.Background()

	first := svc.GetOrCreate(ctx, "user-1")
	second := svc.GetOrCreate(ctx, "user-1")
	if first.ID != second.ID {
		t.Errorf("expected same session across calls, got %q and %q", first.ID, second.ID)
	}

	other := svc.GetOrCreate(ctx, "user-2")
	if other.ID == first.ID {
		t.Error("expected distinct sessions for distinct users")
	}
}

func TestUpdateContextClampsLevels(t *testing.T) {
	svc, _ := newTestSessionService()
	ctx := context.Background()

	res, err := svc.UpdateContext(ctx, "user-1", &dto.UpdateContextRequest{
		StressLevel: intPtr(99),
		EnergyLevel: intPtr(-5),
	})
	if err != nil {
		t.Fatalf("UpdateContext failed: %v", err)
	}
	if res.StressLevel != 10 {
		t.Errorf("StressLevel = %d, want 10", res.StressLevel)
	}
	if res.EnergyLevel != 1 {
		t.Errorf("EnergyLevel = %d, want 1", res.EnergyLevel)
	}
}

func TestUpdateContextCoercesBadWeather(t *testing.T) {
	svc, _ := newTestSessionService()
	ctx := context.Background()

	res, err := svc.UpdateContext(ctx, "user-1", &dto.UpdateContextRequest{
		Weather: strPtr("Hailstorm"),
	})
	if err != nil {
		t.Fatalf("UpdateContext failed: %v", err)
	}
	if res.Weather != "Sunny" {
		t.Errorf("Weather = %q, want %q", res.Weather, "Sunny")
	}
}

func TestUpdateContextIsPartial(t *testing.T) {
	svc, _ := newTestSessionService()
	ctx := context.Background()

	if _, err := svc.UpdateContext(ctx, "user-1", &dto.UpdateContextRequest{
		StressLevel: intPtr(9),
	}); err != nil {
		t.Fatalf("first update failed: %v", err)
	}

	res, err := svc.UpdateContext(ctx, "user-1", &dto.UpdateContextRequest{
		Intent: strPtr("Gift Hunt"),
	})
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if res.StressLevel != 9 {
		t.Errorf("StressLevel = %d, want 9 to survive unrelated update", res.StressLevel)
	}
	if res.Intent != "Gift Hunt" {
		t.Errorf("Intent = %q, want %q", res.Intent, "Gift Hunt")
	}
}

func TestUpdateContextPinsHourAcrossRequests(t *testing.T) {
	svc, _ := newTestSessionService()
	ctx := context.Background()

	if _, err := svc.UpdateContext(ctx, "user-1", &dto.UpdateContextRequest{
		HourOfDay: intPtr(22),
	}); err != nil {
		t.Fatalf("UpdateContext failed: %v", err)
	}

	// Later reads touch the session and refresh the wall-clock hour, but an
	// explicitly set hour has to stay where the client put it.
	res := svc.GetContext(ctx, "user-1")
	if res.HourOfDay != 22 {
		t.Errorf("HourOfDay = %d, want 22 to survive a later read", res.HourOfDay)
	}
}

func TestUpdateContextPublishesEvent(t *testing.T) {
	svc, pub := newTestSessionService()
	ctx := context.Background()

	if _, err := svc.UpdateContext(ctx, "user-1", &dto.UpdateContextRequest{
		StressLevel: intPtr(8),
	}); err != nil {
		t.Fatalf("UpdateContext failed: %v", err)
	}

	if len(pub.published) != 1 {
		t.Fatalf("published %d events, want 1", len(pub.published))
	}
	if got := pub.published[0].EventType(); got != events.TypeContextUpdated {
		t.Errorf("event type = %q, want %q", got, events.TypeContextUpdated)
	}
	if uid := pub.published[0].Payload()["user_id"]; uid != "user-1" {
		t.Errorf("event user_id = %v, want user-1", uid)
	}
}
