package notifier

import "sync"

type EventType string

const (
	EventOrdersUpdated        EventType = "orders_updated"
	EventBillsUpdated         EventType = "bills_updated"
	EventArchivedBillsUpdated EventType = "archived_bills_updated"
	EventMenuUpdated          EventType = "menu_updated"
)

// Eventは「カテゴリXが変わった」ことだけを伝える。差分は載せない。
// 受け取った側は該当コレクションを取り直す。
type Event struct {
	Type EventType `json:"type"`
}

// PublisherはUsecase側から見た通知の約束。配送の仕組みは見せない。
type Publisher interface {
	Publish(ev Event)
}

// 購読者1人分。チャネルは購読者ごとに順序保証される。
type Subscriber struct {
	ch chan Event
}

func (s *Subscriber) Events() <-chan Event {
	return s.ch
}

// Hubは接続中の購読者を持ち、イベントを全員に配る。
// mainで1つ作ってUsecase/Handlerに渡す。
type Hub struct {
	mu   sync.Mutex
	subs map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[*Subscriber]struct{}),
	}
}

const subscriberBuffer = 16

func (h *Hub) Subscribe() *Subscriber {
	s := &Subscriber{
		ch: make(chan Event, subscriberBuffer),
	}

	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()

	return s
}

func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	if _, ok := h.subs[s]; ok {
		delete(h.subs, s)
		close(s.ch)
	}
	h.mu.Unlock()
}

// Publishはベストエフォート。詰まっている購読者には捨てる。
// 他の購読者への配送も、呼び出し元の処理も止めない。
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for s := range h.subs {
		select {
		case s.ch <- ev:
		default:
		}
	}
}

// 接続数（keepaliveやデバッグ用）
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
