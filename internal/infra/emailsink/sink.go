package emailsink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Email письмо для отправки
type Email struct {
	To      string
	ToName  string
	Subject string
	Body    string
	Type    string // тип письма: booking_created, payment_failed и т.д.
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Sink файловая заглушка почтового сервиса.
// Вместо SMTP сохраняет каждое письмо отдельным файлом в каталоге -
// в продакшене на этом месте был бы почтовый провайдер.
type Sink struct {
	dir string
	log Logger
}

// NewSink создает файловый sink, при необходимости создавая каталог
func NewSink(dir string, log Logger) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateDir, err)
	}
	return &Sink{dir: dir, log: log}, nil
}

// Send сохраняет письмо в файл и возвращает путь к нему
func (s *Sink) Send(email Email) (string, error) {
	timestamp := time.Now().UTC().Format("20060102_150405.000000000")
	filename := fmt.Sprintf("%s_%s_%s.txt", timestamp, email.Type, sanitize(email.To))
	path := filepath.Join(s.dir, filename)

	var b strings.Builder
	fmt.Fprintf(&b, "To: %s <%s>\n", email.ToName, email.To)
	fmt.Fprintf(&b, "Subject: %s\n", email.Subject)
	fmt.Fprintf(&b, "Type: %s\n", email.Type)
	fmt.Fprintf(&b, "Date: %s\n\n", time.Now().UTC().Format(time.RFC3339))
	b.WriteString(email.Body)
	b.WriteString("\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteFile, err)
	}

	s.log.Info("Email saved: type=%s, to=%s, file=%s", email.Type, email.To, path)

	return path, nil
}

// sanitize убирает из адреса символы, недопустимые в имени файла
func sanitize(addr string) string {
	replacer := strings.NewReplacer("@", "_at_", "/", "_", "\\", "_", " ", "_")
	return replacer.Replace(addr)
}
