package webhook

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/zkmint-labs/minting-backend/metrics"
)

// Handler processes one verified event.
type Handler func(event *Event) error

// Dispatcher routes verified events to their handlers. The handler
// registered for the event's name runs first, then the catch-all; an
// error stops the chain so the sender retries the delivery.
type Dispatcher struct {
	handlers map[string]Handler
	catchAll Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: map[string]Handler{},
	}
}

// Register sets the handler for an event name, replacing any previous
// registration.
func (d *Dispatcher) Register(eventName string, handler Handler) {
	d.handlers[eventName] = handler
}

// RegisterAll sets the catch-all handler, which runs for every event
// after any event-specific handler.
func (d *Dispatcher) RegisterAll(handler Handler) {
	d.catchAll = handler
}

func (d *Dispatcher) Dispatch(event *Event) error {
	if event.EventName == "" {
		return fmt.Errorf("event has no event name")
	}
	if !KnownEventName(event.EventName) {
		log.Warn("[WEBHOOK] Unrecognized event name: ", event.EventName)
	}

	handler, ok := d.handlers[event.EventName]
	if !ok && d.catchAll == nil {
		log.Debug("[WEBHOOK] No handler for event: ", event.EventName)
		return nil
	}

	if ok {
		if err := handler(event); err != nil {
			return err
		}
	}
	if d.catchAll != nil {
		if err := d.catchAll(event); err != nil {
			return err
		}
	}

	metrics.WebhookEventsDispatched.WithLabelValues(event.EventName).Inc()
	return nil
}
