package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"coffeehouse/coffee-svc/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound   = errors.New("customization session not found")
	ErrNothingToCheckout = errors.New("no order submitted for this session")
)

// Session is one open customization view. It acts as the view's navigator.
type Session struct {
	ID         string
	Customizer *Customizer

	mu       sync.Mutex
	location string
	lastSeen time.Time
}

func (s *Session) NavigateTo(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = path
}

// Location returns the last navigation target, or "" if none happened.
func (s *Session) Location() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}

// ClearLocation marks the view as active again after a navigation.
func (s *Session) ClearLocation() {
	s.NavigateTo("")
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

type sessionNotifier struct {
	sessionID string
	flashes   FlashStore
	now       func() time.Time
}

func (n sessionNotifier) ShowNotification(ctx context.Context, message string, level domain.Level) error {
	return n.flashes.Push(ctx, n.sessionID, domain.Notification{
		Message:   message,
		Level:     level,
		CreatedAt: n.now(),
	})
}

// publishTimeout bounds a background order publish.
const publishTimeout = 5 * time.Second

type sessionOrderState struct {
	sessionID string
	store     OrderStore
	publisher OrderPublisher
	pending   *sync.WaitGroup
	now       func() time.Time
	logger    *zap.Logger
}

func (g sessionOrderState) Read(ctx context.Context) (*domain.OrderParameters, error) {
	return g.store.LoadOrder(ctx, g.sessionID)
}

func (g sessionOrderState) Write(ctx context.Context, params domain.OrderParameters) error {
	if err := g.store.SaveOrder(ctx, g.sessionID, params); err != nil {
		return err
	}

	if g.publisher == nil {
		return nil
	}

	// The publish outlives the request and must not hold up the session.
	msg := domain.OrderMessage{
		Type:      domain.OrderSubmittedType,
		SessionID: g.sessionID,
		Order:     params,
		Timestamp: g.now(),
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	g.pending.Add(1)
	go func() {
		defer g.pending.Done()
		defer cancel()
		if err := g.publisher.PublishOrder(pubCtx, msg); err != nil {
			g.logger.Warn("failed to publish order", zap.String("session_id", g.sessionID), zap.Error(err))
		}
	}()
	return nil
}

type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	catalog   CatalogLookup
	orders    OrderStore
	flashes   FlashStore
	publisher OrderPublisher
	ttl       time.Duration
	now       func() time.Time
	logger    *zap.Logger

	publishing sync.WaitGroup
}

func NewSessionManager(catalog CatalogLookup, orders OrderStore, flashes FlashStore, publisher OrderPublisher, ttl time.Duration, logger *zap.Logger) *SessionManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionManager{
		sessions:  make(map[string]*Session),
		catalog:   catalog,
		orders:    orders,
		flashes:   flashes,
		publisher: publisher,
		ttl:       ttl,
		now:       time.Now,
		logger:    logger,
	}
}

func (m *SessionManager) orderState(sessionID string) sessionOrderState {
	return sessionOrderState{
		sessionID: sessionID,
		store:     m.orders,
		publisher: m.publisher,
		pending:   &m.publishing,
		now:       m.now,
		logger:    m.logger,
	}
}

// Open enters the customization view for itemID and loads the item.
func (m *SessionManager) Open(ctx context.Context, itemID int) (*Session, error) {
	session := &Session{ID: uuid.NewString()}
	session.Customizer = NewCustomizer(itemID, CustomizerDeps{
		Catalog:   m.catalog,
		Orders:    m.orderState(session.ID),
		Navigator: session,
		Notifier:  sessionNotifier{sessionID: session.ID, flashes: m.flashes, now: m.now},
		Logger:    m.logger.With(zap.String("session_id", session.ID)),
	})

	if err := session.Customizer.Refresh(ctx); err != nil {
		return nil, err
	}
	session.touch(m.now())

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	m.logger.Info("customization session opened", zap.String("session_id", session.ID), zap.Int("item_id", itemID))
	return session, nil
}

func (m *SessionManager) Get(id string) (*Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.touch(m.now())
	return session, nil
}

func (m *SessionManager) Close(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

func (m *SessionManager) Flashes(ctx context.Context, id string) ([]domain.Notification, error) {
	if _, err := m.Get(id); err != nil {
		return nil, err
	}
	return m.flashes.Drain(ctx, id)
}

// Checkout reads back what the session's last accepted submit handed over.
func (m *SessionManager) Checkout(ctx context.Context, id string) (*domain.OrderParameters, error) {
	params, err := m.orderState(id).Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("load checkout for session %s: %w", id, err)
	}
	if params == nil {
		return nil, ErrNothingToCheckout
	}
	return params, nil
}

// WaitPublished blocks until every background order publish has finished.
func (m *SessionManager) WaitPublished() {
	m.publishing.Wait()
}

// Sweep drops sessions idle for longer than the TTL and returns how many went.
func (m *SessionManager) Sweep() int {
	if m.ttl <= 0 {
		return 0
	}
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, session := range m.sessions {
		if session.idleSince().Before(cutoff) {
			delete(m.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *SessionManager) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := m.Sweep(); evicted > 0 {
				m.logger.Info("evicted idle sessions", zap.Int("count", evicted))
			}
		}
	}
}
