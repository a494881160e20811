package paymentgw

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Причины отказа, которые эмулирует шлюз
var failureReasons = []string{
	"Insufficient funds",
	"Card declined by bank",
	"Invalid card number",
	"Expired card",
	"CVV verification failed",
	"Transaction timeout",
	"Network error",
	"Card blocked",
	"Daily limit exceeded",
	"Fraud detection triggered",
}

// Client мок-клиент платежного шлюза.
// Эмулирует обработку платежа с настраиваемой долей отказов:
// реальных списаний не происходит, внешних вызовов нет.
type Client struct {
	failureRate float64
	latency     time.Duration
	log         Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewClient создает новый экземпляр мок-клиента платежного шлюза.
// failureRate - доля отказов в диапазоне [0.0, 1.0].
func NewClient(failureRate float64, latency time.Duration, log Logger) *Client {
	return &Client{
		failureRate: failureRate,
		latency:     latency,
		log:         log,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Charge выполняет списание средств.
// При отказе возвращает ChargeResult с причиной и ErrChargeDeclined.
func (c *Client) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if err := validateCard(req.Method.CardNumber, req.Method.CVV); err != nil {
		return nil, err
	}

	// Эмуляция времени обработки платежа
	if c.latency > 0 {
		select {
		case <-time.After(c.latency):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: Charge - context cancelled: %v", ErrInternal, ctx.Err())
		}
	}

	if c.roll() < c.failureRate {
		reason := c.pickFailureReason()
		c.log.Warn("Charge declined for booking_id=%s, amount=%.2f %s: %s", req.BookingID, req.Amount, req.Currency, reason)
		return &ChargeResult{FailureReason: reason}, ErrChargeDeclined
	}

	result := &ChargeResult{
		TransactionID: newTransactionID(),
	}

	c.log.Info("Charge succeeded for booking_id=%s, amount=%.2f %s, transaction_id=%s",
		req.BookingID, req.Amount, req.Currency, result.TransactionID)

	return result, nil
}

// Refund выполняет возврат средств. Мок-возврат всегда успешен.
func (c *Client) Refund(ctx context.Context, req RefundRequest) (*RefundResult, error) {
	if c.latency > 0 {
		select {
		case <-time.After(c.latency):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: Refund - context cancelled: %v", ErrInternal, ctx.Err())
		}
	}

	result := &RefundResult{
		RefundID: fmt.Sprintf("rfnd_%s", uuid.New().String()[:12]),
	}

	c.log.Info("Refund processed for transaction_id=%s, amount=%.2f: %s", req.TransactionID, req.Amount, result.RefundID)

	return result, nil
}

func (c *Client) roll() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Float64()
}

func (c *Client) pickFailureReason() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return failureReasons[c.rng.Intn(len(failureReasons))]
}

func newTransactionID() string {
	return fmt.Sprintf("txn_%s", strings.ReplaceAll(uuid.New().String(), "-", "")[:12])
}

func validateCard(cardNumber, cvv string) error {
	if cardNumber == "" || !isDigits(cardNumber) {
		return fmt.Errorf("%w: card number must contain only digits", ErrInvalidCard)
	}
	if cvv == "" || !isDigits(cvv) {
		return fmt.Errorf("%w: CVV must contain only digits", ErrInvalidCard)
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
