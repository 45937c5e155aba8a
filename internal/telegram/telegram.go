package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"log"
	"net/http"
	"sync"
	"time"

	"alpha-listings/internal/notify"
)

const (
	defaultAPIBase = "https://api.telegram.org"
	messageLimit   = 4096
)

// Sender posts notifications to a Telegram chat from a single worker, at
// most one message per minInterval.
type Sender struct {
	token    string
	chat     string
	threadID *int
	apiBase  string

	client       *http.Client
	queue        chan string
	minInterval  time.Duration
	lastSentTime time.Time

	mu     sync.Mutex
	closed bool
}

type Option func(*Sender)

func WithAPIBase(base string) Option {
	return func(s *Sender) {
		s.apiBase = base
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(s *Sender) {
		s.client = client
	}
}

func WithMinInterval(d time.Duration) Option {
	return func(s *Sender) {
		s.minInterval = d
	}
}

func NewSender(token, chat string, threadID *int, options ...Option) *Sender {
	s := &Sender{
		token:       token,
		chat:        chat,
		threadID:    threadID,
		apiBase:     defaultAPIBase,
		client:      &http.Client{Timeout: 15 * time.Second},
		queue:       make(chan string, 100),
		minInterval: 1200 * time.Millisecond,
	}
	for _, option := range options {
		option(s)
	}

	go s.worker()
	return s
}

// Notify queues the message; when the queue is full the message is dropped.
func (s *Sender) Notify(n notify.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	for _, part := range splitMessage(formatMessage(n), messageLimit) {
		select {
		case s.queue <- part:
		default:
			log.Printf("Telegram queue full; dropping message")
		}
	}
}

// Close stops the worker once the queue drains.
func (s *Sender) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
}

func (s *Sender) worker() {
	for msg := range s.queue {
		s.sendWithRateLimit(msg)
	}
}

func (s *Sender) sendWithRateLimit(text string) {
	wait := time.Until(s.lastSentTime.Add(s.minInterval))
	if wait > 0 {
		time.Sleep(wait)
	}

	retryAfter, err := s.postMessage(text)
	if err != nil {
		if retryAfter > 0 {
			log.Printf("Telegram rate limit hit. Retrying after %s", retryAfter)
			time.Sleep(retryAfter)
			if _, retryErr := s.postMessage(text); retryErr != nil {
				log.Printf("Telegram retry failed: %v", retryErr)
				return
			}
			s.lastSentTime = time.Now()
			return
		}

		log.Printf("Telegram send error: %v", err)
		return
	}

	s.lastSentTime = time.Now()
}

func (s *Sender) postMessage(text string) (time.Duration, error) {
	payload := map[string]any{
		"chat_id":    s.chat,
		"text":       text,
		"parse_mode": "HTML",
	}
	if s.threadID != nil {
		payload["message_thread_id"] = *s.threadID
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/bot%s/sendMessage", s.apiBase, s.token), bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var parsed telegramResponse
	_ = json.NewDecoder(resp.Body).Decode(&parsed)

	if resp.StatusCode == http.StatusTooManyRequests && parsed.Parameters.RetryAfter > 0 {
		return time.Duration(parsed.Parameters.RetryAfter) * time.Second, fmt.Errorf("rate limited")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("telegram error: %d %s", resp.StatusCode, parsed.Description)
	}

	return 0, nil
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
	Parameters  struct {
		RetryAfter int `json:"retry_after"`
	} `json:"parameters"`
}

func formatMessage(n notify.Notification) string {
	icon := "ℹ️"
	switch n.Level {
	case notify.LevelSuccess:
		icon = "✅"
	case notify.LevelError:
		icon = "⚠️"
	}
	return icon + " " + html.EscapeString(n.Message)
}

func splitMessage(message string, limit int) []string {
	runes := []rune(message)
	if len(runes) <= limit {
		return []string{message}
	}

	parts := []string{}
	for start := 0; start < len(runes); start += limit {
		end := min(start+limit, len(runes))
		parts = append(parts, string(runes[start:end]))
	}
	return parts
}
