package notify

import "log"

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notification struct {
	Level   Level
	Message string
}

// Notifier delivers messages without reporting back; callers never wait
// on or branch on delivery.
type Notifier interface {
	Notify(n Notification)
}

// Log writes notifications to the process log. It is used when no chat
// delivery is configured.
type Log struct{}

func (Log) Notify(n Notification) {
	log.Printf("[notify] %s: %s", n.Level, n.Message)
}
