package inbox

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/constants"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/errorx"

	"go.uber.org/zap"
)

// ChannelBroker keeps events in-process. The default for single-instance
// deployments.
type ChannelBroker struct {
	events chan Event
	done   chan struct{}
	hub    *Hub
}

// NewChannelBroker starts the delivery loop.
func NewChannelBroker(hub *Hub) *ChannelBroker {
	b := &ChannelBroker{
		events: make(chan Event, constants.CHANNEL_SIZE),
		done:   make(chan struct{}),
		hub:    hub,
	}
	go b.loop()
	return b
}

// Publish enqueues an event. A full buffer drops the event rather than
// blocking the webhook path.
func (b *ChannelBroker) Publish(event Event) error {
	select {
	case b.events <- event:
		return nil
	default:
		return errorx.New(errorx.CodeServerBusy, "buffer de eventos do inbox cheio")
	}
}

// Close stops the delivery loop.
func (b *ChannelBroker) Close() error {
	close(b.done)
	return nil
}

func (b *ChannelBroker) loop() {
	for {
		select {
		case event := <-b.events:
			b.hub.Broadcast(event)
		case <-b.done:
			zap.L().Info("broker de canal encerrado")
			return
		}
	}
}
