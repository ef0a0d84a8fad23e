package usecase

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"pedezap/internal/domain/entities"
	mock_interfaces "pedezap/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type botFixture struct {
	bot         *BotUseCase
	sessions    *mock_interfaces.MockISessionStore
	products    *mock_interfaces.MockIProductRepository
	promotions  *mock_interfaces.MockIPromotionRepository
	orders      *mock_interfaces.MockIOrderRepository
	storeConfig *mock_interfaces.MockIStoreConfigRepository
	gateway     *mock_interfaces.MockIChannelGateway
}

func newBotFixture(t *testing.T) *botFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &botFixture{
		sessions:    mock_interfaces.NewMockISessionStore(ctrl),
		products:    mock_interfaces.NewMockIProductRepository(ctrl),
		promotions:  mock_interfaces.NewMockIPromotionRepository(ctrl),
		orders:      mock_interfaces.NewMockIOrderRepository(ctrl),
		storeConfig: mock_interfaces.NewMockIStoreConfigRepository(ctrl),
		gateway:     mock_interfaces.NewMockIChannelGateway(ctrl),
	}
	driver := NewConversationUseCase(
		WithRandSource(rand.NewSource(1)),
		WithClock(testClock),
		WithIDGenerator(func() string { return "order-1" }),
	)
	f.bot = NewBotUseCase(driver, f.sessions, f.products, f.promotions, f.orders, f.storeConfig, f.gateway).
		WithBotClock(testClock)
	return f
}

// expectLockPassthrough makes WithLock run its callback directly.
func (f *botFixture) expectLockPassthrough(phone string) {
	f.sessions.EXPECT().WithLock(phone, gomock.Any()).DoAndReturn(
		func(_ string, fn func() error) error { return fn() },
	)
}

func (f *botFixture) expectCatalogLoad() {
	f.storeConfig.EXPECT().Get(gomock.Any()).Return(testStore(), nil)
	f.products.EXPECT().List(gomock.Any()).Return(testCatalog(), nil)
	f.promotions.EXPECT().List(gomock.Any(), true).Return(nil, nil)
}

func TestBotUseCase_HandleInbound(t *testing.T) {
	const phone = "5511999990000"

	t.Run("invalid phone", func(t *testing.T) {
		f := newBotFixture(t)
		_, err := f.bot.HandleInbound(context.Background(), "   ", "oi", "")
		if !errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("expected ErrInvalidPhone, got %v", err)
		}
	})

	t.Run("first message creates session and sends menu", func(t *testing.T) {
		f := newBotFixture(t)
		f.expectLockPassthrough(phone)
		f.sessions.EXPECT().Get(phone).Return(nil, false)
		f.expectCatalogLoad()
		f.gateway.EXPECT().SendText(gomock.Any(), phone, gomock.Any()).Return(nil)
		f.gateway.EXPECT().SendImage(gomock.Any(), phone, testStore().MenuImageURL, gomock.Any()).Return(nil)
		f.sessions.EXPECT().Save(gomock.Any()).Do(func(s *entities.CustomerSession) {
			if s.Step != entities.StepOrdering {
				t.Fatalf("expected session in ordering, got %s", s.Step)
			}
			if len(s.Messages) != 2 {
				t.Fatalf("expected customer+bot log entries, got %d", len(s.Messages))
			}
			if s.Messages[0].Type != entities.MessageTypeCustomer || s.Messages[1].Type != entities.MessageTypeBot {
				t.Fatalf("unexpected message log order: %+v", s.Messages)
			}
		})

		reply, err := f.bot.HandleInbound(context.Background(), phone, "oi", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(reply, "Pizzaria do Zé") {
			t.Fatalf("expected welcome reply, got %q", reply)
		}
	})

	t.Run("finalized order is persisted and session cleared", func(t *testing.T) {
		f := newBotFixture(t)
		session := entities.NewCustomerSession(phone, testClock())
		session.Step = entities.StepPaymentMethod
		session.Cart = session.Cart.Add(testCatalog()[3], 1)
		session.CustomerData.DeliveryType = entities.DeliveryTypeRetirada
		session.CustomerData.Name = "João"

		f.expectLockPassthrough(phone)
		f.sessions.EXPECT().Get(phone).Return(session, true)
		f.expectCatalogLoad()
		f.gateway.EXPECT().SendText(gomock.Any(), phone, gomock.Any()).Return(nil)
		f.orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID != "order-1" || o.PaymentMethod != entities.PaymentMethodCartao {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.Total != 18 || o.CustomerName != "João" {
					t.Fatalf("unexpected order values: %+v", o)
				}
				return o, nil
			},
		)
		f.sessions.EXPECT().Clear(phone)

		if _, err := f.bot.HandleInbound(context.Background(), phone, "cartao", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("order persistence error fails the turn and keeps the session", func(t *testing.T) {
		f := newBotFixture(t)
		session := entities.NewCustomerSession(phone, testClock())
		session.Step = entities.StepPaymentMethod
		session.Cart = session.Cart.Add(testCatalog()[0], 1)
		session.CustomerData.DeliveryType = entities.DeliveryTypeRetirada

		f.expectLockPassthrough(phone)
		f.sessions.EXPECT().Get(phone).Return(session, true)
		f.expectCatalogLoad()
		f.gateway.EXPECT().SendText(gomock.Any(), phone, gomock.Any()).Return(nil)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db down"))

		if _, err := f.bot.HandleInbound(context.Background(), phone, "cartao", ""); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("send failure fails the turn", func(t *testing.T) {
		f := newBotFixture(t)
		f.expectLockPassthrough(phone)
		f.sessions.EXPECT().Get(phone).Return(nil, false)
		f.expectCatalogLoad()
		f.gateway.EXPECT().SendText(gomock.Any(), phone, gomock.Any()).Return(errors.New("channel down"))

		if _, err := f.bot.HandleInbound(context.Background(), phone, "oi", ""); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("menu image failure does not fail the turn", func(t *testing.T) {
		f := newBotFixture(t)
		f.expectLockPassthrough(phone)
		f.sessions.EXPECT().Get(phone).Return(nil, false)
		f.expectCatalogLoad()
		f.gateway.EXPECT().SendText(gomock.Any(), phone, gomock.Any()).Return(nil)
		f.gateway.EXPECT().SendImage(gomock.Any(), phone, gomock.Any(), gomock.Any()).Return(errors.New("image too big"))
		f.sessions.EXPECT().Save(gomock.Any())

		if _, err := f.bot.HandleInbound(context.Background(), phone, "oi", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("catalog load error fails the turn", func(t *testing.T) {
		f := newBotFixture(t)
		f.expectLockPassthrough(phone)
		f.sessions.EXPECT().Get(phone).Return(nil, false)
		f.storeConfig.EXPECT().Get(gomock.Any()).Return(testStore(), nil)
		f.products.EXPECT().List(gomock.Any()).Return(nil, errors.New("dynamo down"))

		if _, err := f.bot.HandleInbound(context.Background(), phone, "oi", ""); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("idle session is reset to a fresh greeting", func(t *testing.T) {
		f := newBotFixture(t)
		stale := entities.NewCustomerSession(phone, testClock().Add(-2*time.Hour))
		stale.Step = entities.StepOrdering
		stale.Cart = stale.Cart.Add(testCatalog()[0], 2)
		stale.AppendMessage(entities.MessageTypeCustomer, "quero pizza", "", stale.CreatedAt)
		stale.LastActivityAt = testClock().Add(-2 * time.Hour)

		f.expectLockPassthrough(phone)
		f.sessions.EXPECT().Get(phone).Return(stale, true)
		f.expectCatalogLoad()
		f.gateway.EXPECT().SendText(gomock.Any(), phone, gomock.Any()).Return(nil)
		f.gateway.EXPECT().SendImage(gomock.Any(), phone, gomock.Any(), gomock.Any()).Return(nil)
		f.sessions.EXPECT().Save(gomock.Any()).Do(func(s *entities.CustomerSession) {
			if !s.Cart.IsEmpty() {
				t.Fatalf("expected fresh cart after idle reset, got %+v", s.Cart)
			}
			if s.Step != entities.StepOrdering {
				t.Fatalf("expected greeting flow outcome, got %s", s.Step)
			}
		})

		reply, err := f.bot.HandleInbound(context.Background(), phone, "oi", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(reply, "Pizzaria do Zé") {
			t.Fatalf("expected a fresh welcome, got %q", reply)
		}
	})
}
