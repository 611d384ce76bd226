// FILE: internal/service/cart_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"project-nexus-be/internal/dto"
	"project-nexus-be/internal/entity"
	"project-nexus-be/internal/repository/specification"
	"project-nexus-be/internal/repository/unitofwork"
	"project-nexus-be/pkg/events"
	"project-nexus-be/pkg/sustain"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyCart       = errors.New("cart is empty")
)

type ICartService interface {
	View(ctx context.Context, userID string) (*dto.CartResponse, error)
	Add(ctx context.Context, userID, productName string) (*dto.CartResponse, error)
	Remove(ctx context.Context, userID, productName string) (*dto.CartResponse, error)
	Checkout(ctx context.Context, userID string) (*dto.CheckoutResponse, error)
	History(ctx context.Context, userID string) (*dto.PurchaseHistoryResponse, error)
	Wishlist(ctx context.Context, userID string) (*dto.WishlistResponse, error)
	SaveForLater(ctx context.Context, userID, productName string) (*dto.WishlistResponse, error)
	RemoveFromWishlist(ctx context.Context, userID, productName string) (*dto.WishlistResponse, error)
}

type cartService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   ISessionService
	publisher  IPublisherService
}

func NewCartService(
	uowFactory unitofwork.RepositoryFactory,
	sessions ISessionService,
	publisher IPublisherService,
) ICartService {
	return &cartService{
		uowFactory: uowFactory,
		sessions:   sessions,
		publisher:  publisher,
	}
}

func (s *cartService) View(ctx context.Context, userID string) (*dto.CartResponse, error) {
	session := s.sessions.GetOrCreate(ctx, userID)
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.buildCartResponse(ctx, uow, session.Cart)
}

func (s *cartService) Add(ctx context.Context, userID, productName string) (*dto.CartResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindOne(ctx, specification.ByName{Name: productName})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%q: %w", productName, ErrProductNotFound)
	}

	session := s.sessions.GetOrCreate(ctx, userID)
	// Duplicate adds are idempotent, matching single-quantity cart semantics.
	if !session.InCart(product.Name) {
		session.Cart = append(session.Cart, product.Name)
	}

	_ = s.publisher.PublishInteraction(ctx, events.NewInteraction(events.TypeCartItemAdded, userID, map[string]interface{}{
		"product_name": product.Name,
	}))

	return s.buildCartResponse(ctx, uow, session.Cart)
}

func (s *cartService) Remove(ctx context.Context, userID, productName string) (*dto.CartResponse, error) {
	session := s.sessions.GetOrCreate(ctx, userID)
	session.Cart = removeName(session.Cart, productName)

	_ = s.publisher.PublishInteraction(ctx, events.NewInteraction(events.TypeCartItemRemoved, userID, map[string]interface{}{
		"product_name": productName,
	}))

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.buildCartResponse(ctx, uow, session.Cart)
}

func (s *cartService) Checkout(ctx context.Context, userID string) (*dto.CheckoutResponse, error) {
	session := s.sessions.GetOrCreate(ctx, userID)
	if len(session.Cart) == 0 {
		return nil, ErrEmptyCart
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	products, err := uow.ProductRepository().FindByNames(ctx, session.Cart)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byName[p.Name] = p
	}

	var items []entity.PurchaseItem
	var cartItems []sustain.CartItem
	var total float64
	for _, name := range session.Cart {
		p, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrProductNotFound)
		}
		if err := uow.ProductRepository().DecrementStock(ctx, p.Id, 1); err != nil {
			return nil, err
		}
		items = append(items, entity.PurchaseItem{
			Name:              p.Name,
			Price:             p.Price,
			EcoScore:          p.EcoScore,
			CarbonFootprintKg: p.CarbonFootprintKg,
		})
		cartItems = append(cartItems, sustain.CartItem{
			Name:            p.Name,
			Price:           p.Price,
			EcoScore:        p.EcoScore * 10,
			CarbonFootprint: p.CarbonFootprintKg,
		})
		total += p.Price
	}

	report := sustain.Aggregate(cartItems, nil)

	purchase := &entity.Purchase{
		Id:                uuid.New(),
		UserId:            uid,
		Items:             items,
		Total:             total,
		EcoScore:          report.EcoScore,
		CarbonFootprintKg: report.CarbonFootprintKg,
		EcoGrade:          string(report.EcoGrade),
		CreatedAt:         time.Now(),
	}
	if err := uow.PurchaseRepository().Create(ctx, purchase); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	session.Cart = []string{}

	_ = s.publisher.PublishInteraction(ctx, events.NewInteraction(events.TypeCheckoutCompleted, userID, map[string]interface{}{
		"purchase_id": purchase.Id.String(),
		"total":       purchase.Total,
		"eco_grade":   purchase.EcoGrade,
	}))

	return purchaseToCheckoutResponse(purchase), nil
}

func (s *cartService) History(ctx context.Context, userID string) (*dto.PurchaseHistoryResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	purchases, err := uow.PurchaseRepository().FindAll(ctx,
		specification.OwnedBy{UserID: uid},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CheckoutResponse, len(purchases))
	for i, p := range purchases {
		out[i] = *purchaseToCheckoutResponse(p)
	}
	return &dto.PurchaseHistoryResponse{Purchases: out}, nil
}

func (s *cartService) Wishlist(ctx context.Context, userID string) (*dto.WishlistResponse, error) {
	session := s.sessions.GetOrCreate(ctx, userID)
	return &dto.WishlistResponse{Items: session.Wishlist}, nil
}

func (s *cartService) SaveForLater(ctx context.Context, userID, productName string) (*dto.WishlistResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindOne(ctx, specification.ByName{Name: productName})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%q: %w", productName, ErrProductNotFound)
	}

	session := s.sessions.GetOrCreate(ctx, userID)
	// Saving moves the item out of the cart if it was there.
	session.Cart = removeName(session.Cart, product.Name)
	if !session.InWishlist(product.Name) {
		session.Wishlist = append(session.Wishlist, product.Name)
	}

	_ = s.publisher.PublishInteraction(ctx, events.NewInteraction(events.TypeWishlistItemSaved, userID, map[string]interface{}{
		"product_name": product.Name,
	}))

	return &dto.WishlistResponse{Items: session.Wishlist}, nil
}

func (s *cartService) RemoveFromWishlist(ctx context.Context, userID, productName string) (*dto.WishlistResponse, error) {
	session := s.sessions.GetOrCreate(ctx, userID)
	session.Wishlist = removeName(session.Wishlist, productName)
	return &dto.WishlistResponse{Items: session.Wishlist}, nil
}

func (s *cartService) buildCartResponse(ctx context.Context, uow unitofwork.UnitOfWork, cart []string) (*dto.CartResponse, error) {
	products, err := uow.ProductRepository().FindByNames(ctx, cart)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byName[p.Name] = p
	}

	lines := make([]dto.CartLineResponse, 0, len(cart))
	var cartItems []sustain.CartItem
	var total float64
	for _, name := range cart {
		p, ok := byName[name]
		if !ok {
			continue
		}
		lines = append(lines, dto.CartLineResponse{
			Name:              p.Name,
			Category:          p.Category,
			Price:             p.Price,
			EcoScore:          p.EcoScore,
			CarbonFootprintKg: p.CarbonFootprintKg,
			EcoAlternative:    sustain.AlternativeFor(p.Name),
		})
		cartItems = append(cartItems, sustain.CartItem{
			Name:            p.Name,
			Price:           p.Price,
			EcoScore:        p.EcoScore * 10,
			CarbonFootprint: p.CarbonFootprintKg,
		})
		total += p.Price
	}

	report := sustain.Aggregate(cartItems, nil)

	return &dto.CartResponse{
		Items:             lines,
		Total:             total,
		EcoScore:          report.EcoScore,
		CarbonFootprintKg: report.CarbonFootprintKg,
		EcoGrade:          string(report.EcoGrade),
	}, nil
}

func purchaseToCheckoutResponse(p *entity.Purchase) *dto.CheckoutResponse {
	items := make([]dto.CartLineResponse, len(p.Items))
	for i, item := range p.Items {
		items[i] = dto.CartLineResponse{
			Name:              item.Name,
			Price:             item.Price,
			EcoScore:          item.EcoScore,
			CarbonFootprintKg: item.CarbonFootprintKg,
		}
	}
	return &dto.CheckoutResponse{
		PurchaseId:        p.Id,
		Items:             items,
		Total:             p.Total,
		EcoScore:          p.EcoScore,
		CarbonFootprintKg: p.CarbonFootprintKg,
		EcoGrade:          p.EcoGrade,
		CompletedAt:       p.CreatedAt,
	}
}

func removeName(names []string, target string) []string {
	out := names[:0]
	for _, n := range names {
		if n != target {
			out = append(out, n)
		}
	}
	return out
}
