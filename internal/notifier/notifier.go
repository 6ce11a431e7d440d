package notifier

import "log"

// Notifier is the delivery channel for customer notifications. Console is
// the default; an email sender slots in behind the same interface.
type Notifier interface {
	Notify(subject, message string) error
}

type ConsoleNotifier struct{}

func NewConsole() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (c *ConsoleNotifier) Notify(subject, message string) error {
	log.Printf("[notify] %s :: %s", subject, message)
	return nil
}
