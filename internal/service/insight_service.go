// FILE: internal/service/insight_service.go
package service

import (
	"context"
	"time"

	"project-nexus-be/internal/dto"
	"project-nexus-be/internal/entity"
	"project-nexus-be/internal/repository/specification"
	"project-nexus-be/internal/repository/unitofwork"
	"project-nexus-be/pkg/aura"
	"project-nexus-be/pkg/predict"
	"project-nexus-be/pkg/sustain"

	"github.com/google/uuid"
)

type IInsightService interface {
	Aura(ctx context.Context, userID string) (*dto.AuraResponse, error)
	Predictions(ctx context.Context, userID string) ([]dto.PredictionResponse, error)
	Sustainability(ctx context.Context, userID string) (*dto.SustainabilityResponse, error)
	Dashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error)
}

type insightService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   ISessionService
	now        func() time.Time
}

func NewInsightService(uowFactory unitofwork.RepositoryFactory, sessions ISessionService) IInsightService {
	return &insightService{
		uowFactory: uowFactory,
		sessions:   sessions,
		now:        time.Now,
	}
}

func (s *insightService) Aura(ctx context.Context, userID string) (*dto.AuraResponse, error) {
	session := s.sessions.GetOrCreate(ctx, userID)
	result := aura.Classify(session.Context)
	recs, err := aura.RecommendationsFor(result.Label)
	if err != nil {
		return nil, err
	}
	return &dto.AuraResponse{
		Aura:       string(result.Label),
		Color:      result.Color,
		Categories: recs.Categories,
		Products:   recs.Products,
	}, nil
}

func (s *insightService) Predictions(ctx context.Context, userID string) ([]dto.PredictionResponse, error) {
	session := s.sessions.GetOrCreate(ctx, userID)
	predictions := predict.Generate(session.Context, predict.WithClock(s.now))

	out := make([]dto.PredictionResponse, len(predictions))
	for i, p := range predictions {
		out[i] = dto.PredictionResponse{
			Statement:  p.Statement,
			DaysAhead:  p.DaysAhead,
			Confidence: p.Confidence,
			Basis:      p.Basis,
		}
	}
	return out, nil
}

func (s *insightService) Sustainability(ctx context.Context, userID string) (*dto.SustainabilityResponse, error) {
	session := s.sessions.GetOrCreate(ctx, userID)
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cartItems, err := s.cartToSustainItems(ctx, uow, session.Cart)
	if err != nil {
		return nil, err
	}

	history, err := s.historyScores(ctx, uow, userID)
	if err != nil {
		return nil, err
	}

	report := sustain.Aggregate(cartItems, history)

	alternatives := make(map[string]string, len(cartItems))
	for _, item := range cartItems {
		alternatives[item.Name] = sustain.AlternativeFor(item.Name)
	}

	return &dto.SustainabilityResponse{
		EcoScore:          report.EcoScore,
		CarbonFootprintKg: report.CarbonFootprintKg,
		EcoGrade:          string(report.EcoGrade),
		Alternatives:      alternatives,
		WasteReduction:    wasteReductionList(),
		Tips:              sustain.Tips(),
	}, nil
}

func (s *insightService) Dashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	auraRes, err := s.Aura(ctx, userID)
	if err != nil {
		return nil, err
	}
	predictions, err := s.Predictions(ctx, userID)
	if err != nil {
		return nil, err
	}
	sustainability, err := s.Sustainability(ctx, userID)
	if err != nil {
		return nil, err
	}

	session := s.sessions.GetOrCreate(ctx, userID)
	uow := s.uowFactory.NewUnitOfWork(ctx)

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	total, carbon, err := uow.PurchaseRepository().TotalsForUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	purchaseCount, err := uow.PurchaseRepository().Count(ctx, specification.OwnedBy{UserID: uid})
	if err != nil {
		return nil, err
	}

	recent, err := uow.InteractionRepository().FindAll(ctx,
		specification.OwnedBy{UserID: uid},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 10},
	)
	if err != nil {
		return nil, err
	}

	activity := make([]dto.ActivityResponse, len(recent))
	for i, it := range recent {
		a := dto.ActivityResponse{
			EventType:  it.EventType,
			OccurredAt: it.CreatedAt.Format(time.RFC3339),
		}
		if it.ProductName != nil {
			a.ProductName = *it.ProductName
		}
		activity[i] = a
	}

	return &dto.DashboardResponse{
		Aura:            *auraRes,
		Predictions:     predictions,
		Sustainability:  *sustainability,
		CommunityTrends: session.CommunityTrends,
		RecentActivity:  activity,
		TotalSpent:      total,
		TotalCarbonKg:   carbon,
		PurchaseCount:   purchaseCount,
	}, nil
}

// cartToSustainItems resolves cart name refs against the catalog. The
// catalog's 0-10 eco rating is scaled to the report's 0-100 scale. Names
// that no longer resolve are skipped.
func (s *insightService) cartToSustainItems(ctx context.Context, uow unitofwork.UnitOfWork, cart []string) ([]sustain.CartItem, error) {
	products, err := uow.ProductRepository().FindByNames(ctx, cart)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byName[p.Name] = p
	}

	items := make([]sustain.CartItem, 0, len(cart))
	for _, name := range cart {
		p, ok := byName[name]
		if !ok {
			continue
		}
		items = append(items, sustain.CartItem{
			Name:            p.Name,
			Price:           p.Price,
			EcoScore:        p.EcoScore * 10,
			CarbonFootprint: p.CarbonFootprintKg,
		})
	}
	return items, nil
}

// historyScores lifts each past purchase into a pseudo cart item carrying
// only its eco score, which is all the aggregator weighs history by.
func (s *insightService) historyScores(ctx context.Context, uow unitofwork.UnitOfWork, userID string) ([]sustain.CartItem, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	purchases, err := uow.PurchaseRepository().FindAll(ctx, specification.OwnedBy{UserID: uid})
	if err != nil {
		return nil, err
	}
	scores := make([]sustain.CartItem, len(purchases))
	for i, p := range purchases {
		scores[i] = sustain.CartItem{EcoScore: p.EcoScore}
	}
	return scores, nil
}

func wasteReductionList() []dto.WasteReductionResponse {
	items := sustain.WasteReductionItems()
	out := make([]dto.WasteReductionResponse, len(items))
	for i, item := range items {
		out[i] = dto.WasteReductionResponse{
			Item:       item.Name,
			UnitsPerYr: item.UnitsPerYear,
		}
	}
	return out
}
