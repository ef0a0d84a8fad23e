package usecase

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"pedezap/internal/domain/entities"
	"pedezap/internal/usecase/interfaces"
)

var (
	ErrInvalidPhone = errors.New("invalid phone")
)

const defaultSessionIdleTimeout = 30 * time.Minute

// IBotUseCase is the inbound entry point of the conversational engine: one
// call per inbound message.

type IBotUseCase interface {
	HandleInbound(ctx context.Context, phone, text, imageURL string) (string, error)
}

// BotUseCase wires the conversation driver to its collaborators: session
// store, catalog/config repositories, channel gateway and order repository.
// Catalog and config are re-fetched per call, so dashboard edits take effect
// on the next message with no invalidation protocol.
type BotUseCase struct {
	conversation IConversationUseCase
	sessions     interfaces.ISessionStore
	products     interfaces.IProductRepository
	promotions   interfaces.IPromotionRepository
	orders       interfaces.IOrderRepository
	storeConfig  interfaces.IStoreConfigRepository
	gateway      interfaces.IChannelGateway

	now         func() time.Time
	idleTimeout time.Duration
}

var _ IBotUseCase = (*BotUseCase)(nil)

func NewBotUseCase(
	conversation IConversationUseCase,
	sessions interfaces.ISessionStore,
	products interfaces.IProductRepository,
	promotions interfaces.IPromotionRepository,
	orders interfaces.IOrderRepository,
	storeConfig interfaces.IStoreConfigRepository,
	gateway interfaces.IChannelGateway,
) *BotUseCase {
	return &BotUseCase{
		conversation: conversation,
		sessions:     sessions,
		products:     products,
		promotions:   promotions,
		orders:       orders,
		storeConfig:  storeConfig,
		gateway:      gateway,
		now:          time.Now,
		idleTimeout:  sessionIdleTimeoutFromEnv(),
	}
}

// WithBotClock overrides the clock, for tests.
func (u *BotUseCase) WithBotClock(now func() time.Time) *BotUseCase {
	u.now = now
	return u
}

func sessionIdleTimeoutFromEnv() time.Duration {
	v := os.Getenv("SESSION_IDLE_TIMEOUT_MINUTES")
	if v == "" {
		return defaultSessionIdleTimeout
	}
	minutes, err := strconv.Atoi(v)
	if err != nil || minutes <= 0 {
		return defaultSessionIdleTimeout
	}
	return time.Duration(minutes) * time.Minute
}

// HandleInbound runs one conversation turn for the given phone and returns
// the reply that was sent. The whole turn runs under the session store's
// per-phone lock, so concurrent messages from the same phone are applied in
// order; different phones proceed in parallel.
//
// Conversation-level problems (gibberish, insufficient cash, unknown
// products) never surface as errors: the driver always produces a reply.
// Errors returned here are collaborator failures only.
func (u *BotUseCase) HandleInbound(ctx context.Context, phone, text, imageURL string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", ErrInvalidPhone
	}

	var reply string
	err := u.sessions.WithLock(phone, func() error {
		now := u.now()

		session, ok := u.sessions.Get(phone)
		if !ok {
			session = entities.NewCustomerSession(phone, now)
			log.Printf("[bot] new session phone=%s", phone)
		} else if u.expired(session, now) {
			log.Printf("[bot] idle session reset phone=%s last_activity=%s", phone, session.LastActivityAt.Format(time.RFC3339))
			session = entities.NewCustomerSession(phone, now)
		}

		store, err := u.storeConfig.Get(ctx)
		if err != nil {
			log.Printf("[bot] failed loading store config phone=%s err=%v", phone, err)
			return err
		}
		catalog, err := u.products.List(ctx)
		if err != nil {
			log.Printf("[bot] failed loading catalog phone=%s err=%v", phone, err)
			return err
		}
		promos, err := u.promotions.List(ctx, true)
		if err != nil {
			log.Printf("[bot] failed loading promotions phone=%s err=%v", phone, err)
			return err
		}

		result := u.conversation.ProcessMessage(session, Inbound{Text: text, ImageURL: imageURL}, store, catalog, promos)
		reply = result.Response

		session.AppendMessage(entities.MessageTypeCustomer, text, imageURL, now)
		session.AppendMessage(entities.MessageTypeBot, result.Response, "", now)
		session.LastActivityAt = now

		if err := u.gateway.SendText(ctx, phone, result.Response); err != nil {
			log.Printf("[bot] failed sending reply phone=%s err=%v", phone, err)
			return err
		}
		if result.SendMenu && store.MenuImageURL != "" {
			if err := u.gateway.SendImage(ctx, phone, store.MenuImageURL, "Nosso cardápio 📖"); err != nil {
				// The text reply already went out; a missing menu image
				// should not fail the turn.
				log.Printf("[bot] failed sending menu image phone=%s err=%v", phone, err)
			}
		}

		if result.FinalizedOrder != nil {
			if _, err := u.orders.Create(ctx, *result.FinalizedOrder); err != nil {
				log.Printf("[bot] failed persisting order phone=%s order_id=%s err=%v", phone, result.FinalizedOrder.ID, err)
				return err
			}
			log.Printf("[bot] order finalized phone=%s order_id=%s total=%.2f payment=%s",
				phone, result.FinalizedOrder.ID, result.FinalizedOrder.Total, result.FinalizedOrder.PaymentMethod)
			u.sessions.Clear(phone)
			return nil
		}

		u.sessions.Save(session)
		return nil
	})
	return reply, err
}

// expired reports whether a session sat idle past the timeout. Completed
// sessions are cleared on finalize, so only mid-flow sessions age out.
func (u *BotUseCase) expired(session *entities.CustomerSession, now time.Time) bool {
	if session.Step == entities.StepCompleted {
		return false
	}
	return len(session.Messages) > 0 && now.Sub(session.LastActivityAt) > u.idleTimeout
}
