package worker

import (
	"context"

	"sam-audio-server/src/lib/cerr"

	"github.com/apex/log"
	"github.com/streadway/amqp"
)

type MessageChannel interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

type QueueWorker struct {
	channel   MessageChannel
	handlers  map[string]MessageHandler
	queueName string
}

func NewQueueWorker(channel MessageChannel, queueName string, handlers []MessageHandler) QueueWorker {
	handlerMap := map[string]MessageHandler{}
	for _, handler := range handlers {
		handlerMap[handler.JobType()] = handler
	}

	return QueueWorker{
		channel:   channel,
		queueName: queueName,
		handlers:  handlerMap,
	}
}

// NewQueueWorkerFromConnection gives the worker its own channel with a
// prefetch of one.
func NewQueueWorkerFromConnection(conn *amqp.Connection, queueName string, handlers []MessageHandler) (QueueWorker, error) {
	rabbitChannel, err := conn.Channel()
	if err != nil {
		return QueueWorker{}, cerr.Wrap(err).Error("Failed to get channel")
	}

	queue, err := rabbitChannel.QueueDeclare(
		queueName,
		true,
		false,
		false,
		false,
		nil,
	)

	if err != nil {
		_ = rabbitChannel.Close()
		return QueueWorker{}, cerr.Field("queue_name", queueName).Wrap(err).Error("Failed to declare queue")
	}

	if err := rabbitChannel.Qos(1, 0, false); err != nil {
		_ = rabbitChannel.Close()
		return QueueWorker{}, cerr.Wrap(err).Error("Failed to set channel prefetch")
	}

	return NewQueueWorker(rabbitChannel, queue.Name, handlers), nil
}

// Start consumes until ctx is done or the delivery stream closes.
func (q *QueueWorker) Start(ctx context.Context) error {
	log.WithField("queue_name", q.queueName).Info("Starting worker")

	defer q.channel.Close()

	messageStream, err := q.channel.Consume(
		q.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)

	if err != nil {
		return cerr.Field("queue_name", q.queueName).
			Wrap(err).Error("Failed to start consuming from channel")
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping worker")
			return nil
		case message, ok := <-messageStream:
			if !ok {
				log.Warn("Delivery stream closed, stopping worker")
				return nil
			}

			q.handleMessage(ctx, message)
		}
	}
}

func (q *QueueWorker) handleMessage(ctx context.Context, message amqp.Delivery) {
	logger := log.WithFields(log.Fields{
		"message_type": message.Type,
		"message_id":   message.MessageId,
	})

	logger.Info("Handling message")
	err := q.route(ctx, message)
	if err != nil {
		err = cerr.Field("message_type", message.Type).
			Wrap(err).Error("Failed to process message")

		cerr.Log(err)

		if err = message.Nack(false, false); err != nil {
			logger.Error("Failed to nack message")
		}
		return
	}

	logger.Info("Successfully processed message")
	if err = message.Ack(false); err != nil {
		logger.Error("Failed to ack message")
	}
}

func (q *QueueWorker) route(ctx context.Context, message amqp.Delivery) (err error) {
	handler, ok := q.handlers[message.Type]
	if !ok {
		return cerr.Field("job_type", message.Type).Error("Unrecognized amqp job type")
	}

	defer func() {
		if r := recover(); r != nil {
			err = cerr.Field("panic", r).Error("Message handler panicked")
		}
	}()

	return handler.HandleMessage(ctx, message.Body)
}
