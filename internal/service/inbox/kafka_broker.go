package inbox

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/config"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/errorx"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaBroker routes events through a topic so that, with several server
// instances behind a load balancer, each instance can push to its own
// websocket clients.
type KafkaBroker struct {
	writer *kafka.Writer
	reader *kafka.Reader
	hub    *Hub
	cancel context.CancelFunc
}

// NewKafkaBroker connects writer and consumer loop to the configured topic.
func NewKafkaBroker(conf config.KafkaConfig, hub *Hub) *KafkaBroker {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(conf.HostPort),
		Topic:                  conf.InboxTopic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           conf.Timeout * time.Second,
		AllowAutoTopicCreation: true,
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{conf.HostPort},
		Topic:   conf.InboxTopic,
	})

	ctx, cancel := context.WithCancel(context.Background())
	b := &KafkaBroker{
		writer: writer,
		reader: reader,
		hub:    hub,
		cancel: cancel,
	}
	go b.consumeLoop(ctx)
	return b
}

// Publish writes the event to the topic, keyed by tenant so one tenant's
// events stay ordered.
func (b *KafkaBroker) Publish(event Event) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return errorx.Wrap(err, errorx.CodeServerBusy, "serialização do evento do inbox")
	}
	err = b.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.TenantID), 10)),
		Value: raw,
	})
	if err != nil {
		return errorx.Wrap(err, errorx.CodeServerBusy, "publicação no kafka")
	}
	return nil
}

// Close stops the consumer loop and flushes the writer.
func (b *KafkaBroker) Close() error {
	b.cancel()
	if err := b.reader.Close(); err != nil {
		zap.L().Error("falha ao fechar o consumidor kafka", zap.Error(err))
	}
	return b.writer.Close()
}

func (b *KafkaBroker) consumeLoop(ctx context.Context) {
	for {
		msg, err := b.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				zap.L().Info("consumidor kafka encerrado")
				return
			}
			zap.L().Error("falha ao ler do kafka", zap.Error(err))
			continue
		}
		var event Event
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			zap.L().Error("evento kafka inválido", zap.Error(err))
			continue
		}
		b.hub.Broadcast(event)
	}
}
