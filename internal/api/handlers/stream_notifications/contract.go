package stream_notifications

// Stream интерфейс подписки на события пользователя
type Stream interface {
	Subscribe(userID string) (<-chan []byte, func())
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
