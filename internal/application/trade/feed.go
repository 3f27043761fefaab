package trade

import (
	"context"
	"sync"

	"github.com/pedidos/backend/internal/domain/shared"
	"github.com/pedidos/backend/internal/domain/trade"
)

// Feed paging defaults
const (
	DefaultFeedWindow = 5
	DefaultFeedStep   = 5
)

// ErrNoFeed is returned when an operator asks for more of a feed that was
// never loaded (or has been evicted)
var ErrNoFeed = shared.NewDomainError("NO_FEED", "Order feed not loaded")

// feedSession caches one operator's order listing so that revealing more
// rows and reflecting single-order mutations never refetch the whole list
type feedSession struct {
	orders  []OrderResponse // newest-first, as fetched
	visible int
}

// FeedManager owns the per-operator feed sessions. All methods are safe for
// concurrent use; sessions are keyed by the authenticated operator UID.
type FeedManager struct {
	mu       sync.Mutex
	sessions map[string]*feedSession

	orderRepo trade.OrderRepository
	window    int
	step      int
}

// NewFeedManager creates a FeedManager with the given paging shape;
// non-positive values fall back to the defaults
func NewFeedManager(orderRepo trade.OrderRepository, window, step int) *FeedManager {
	if window <= 0 {
		window = DefaultFeedWindow
	}
	if step <= 0 {
		step = DefaultFeedStep
	}
	return &FeedManager{
		sessions:  make(map[string]*feedSession),
		orderRepo: orderRepo,
		window:    window,
		step:      step,
	}
}

// Load fetches the full live order list and starts the operator's session
// with the first window visible. When a session already exists it is reused
// as-is unless force is set, which refetches and resets the window.
func (m *FeedManager) Load(ctx context.Context, uid string, force bool) (*FeedResponse, error) {
	if !force {
		m.mu.Lock()
		if session, ok := m.sessions[uid]; ok {
			resp := m.snapshot(session)
			m.mu.Unlock()
			return resp, nil
		}
		m.mu.Unlock()
	}

	orders, err := m.orderRepo.FindAll(ctx, false)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	session := &feedSession{orders: responses, visible: min(m.window, len(responses))}
	m.sessions[uid] = session
	return m.snapshot(session), nil
}

// RevealMore extends the operator's visible window by one step
func (m *FeedManager) RevealMore(uid string) (*FeedResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[uid]
	if !ok {
		return nil, ErrNoFeed
	}
	session.visible = min(session.visible+m.step, len(session.orders))
	return m.snapshot(session), nil
}

// Current returns the operator's feed as currently cached
func (m *FeedManager) Current(uid string) (*FeedResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[uid]
	if !ok {
		return nil, ErrNoFeed
	}
	return m.snapshot(session), nil
}

// ApplyUpdate patches the cached copy of one order in place. An order the
// cache has never seen is treated as freshly created and goes on top.
func (m *FeedManager) ApplyUpdate(uid string, order OrderResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[uid]
	if !ok {
		return
	}
	for i := range session.orders {
		if session.orders[i].ID == order.ID {
			session.orders[i] = order
			return
		}
	}
	session.orders = append([]OrderResponse{order}, session.orders...)
	if session.visible > 0 || len(session.orders) == 1 {
		session.visible = min(session.visible+1, len(session.orders))
	}
}

// ApplyDelete drops one order from the cached listing
func (m *FeedManager) ApplyDelete(uid, orderID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[uid]
	if !ok {
		return
	}
	for i := range session.orders {
		if session.orders[i].ID == orderID {
			session.orders = append(session.orders[:i], session.orders[i+1:]...)
			break
		}
	}
	session.visible = min(session.visible, len(session.orders))
}

// Evict forgets the operator's session
func (m *FeedManager) Evict(uid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, uid)
}

// snapshot copies the visible slice; callers must hold m.mu
func (m *FeedManager) snapshot(session *feedSession) *FeedResponse {
	visible := make([]OrderResponse, session.visible)
	copy(visible, session.orders[:session.visible])
	return &FeedResponse{
		Orders:  visible,
		Visible: session.visible,
		Total:   len(session.orders),
		HasMore: session.visible < len(session.orders),
	}
}
