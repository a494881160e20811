package stream

import "sync"

// Hub маршрутизирует события реального времени подписчикам по ID пользователя.
// Используется SSE-эндпоинтом: одна подписка - одно открытое соединение.
// Отправка неблокирующая: если буфер подписчика заполнен, событие
// для этого подписчика отбрасывается (история доступна через список уведомлений).
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan []byte]struct{}
	bufferSize  int
}

// NewHub создает новый Hub. bufferSize - размер буфера канала подписчика.
func NewHub(bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = 16
	}
	return &Hub{
		subscribers: make(map[string]map[chan []byte]struct{}),
		bufferSize:  bufferSize,
	}
}

// Subscribe регистрирует подписчика на события пользователя.
// Возвращает канал событий и функцию отписки, которую нужно вызвать
// при закрытии соединения.
func (h *Hub) Subscribe(userID string) (<-chan []byte, func()) {
	ch := make(chan []byte, h.bufferSize)

	h.mu.Lock()
	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[chan []byte]struct{})
	}
	h.subscribers[userID][ch] = struct{}{}
	h.mu.Unlock()

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		channels, ok := h.subscribers[userID]
		if !ok {
			return
		}
		if _, ok := channels[ch]; !ok {
			return
		}
		delete(channels, ch)
		if len(channels) == 0 {
			delete(h.subscribers, userID)
		}
		close(ch)
	}

	return ch, unsubscribe
}

// Publish рассылает событие всем подписчикам пользователя
func (h *Hub) Publish(userID string, event []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers[userID] {
		select {
		case ch <- event:
		default:
			// Подписчик не успевает читать - событие отброшено
		}
	}
}

// SubscriberCount возвращает количество активных подписок пользователя
func (h *Hub) SubscriberCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[userID])
}
