package publish

import (
	"encoding/json"
	"time"

	"sam-audio-server/src/lib/cerr"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

var _ Publisher = RabbitMQPublisher{}

//counterfeiter:generate . Publisher
type Publisher interface {
	Publish(msg amqp.Publishing) error
}

// NewRabbitMQPublisher opens its own channel on conn and makes sure queueName
// exists before anything is published to it.
func NewRabbitMQPublisher(conn *amqp.Connection, queueName string) (RabbitMQPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return RabbitMQPublisher{}, cerr.Wrap(err).Error("Failed to create rabbit channel")
	}

	if _, err := channel.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		_ = channel.Close()
		return RabbitMQPublisher{}, cerr.Field("queue_name", queueName).Wrap(err).Error("Failed to declare queue")
	}

	return RabbitMQPublisher{
		channel:   channel,
		queueName: queueName,
	}, nil
}

type RabbitMQPublisher struct {
	channel   *amqp.Channel
	queueName string
}

func (r RabbitMQPublisher) Publish(msg amqp.Publishing) error {
	msg.ContentType = "application/json"
	msg.DeliveryMode = amqp.Persistent
	return r.channel.Publish("", r.queueName, true, false, msg)
}

func (r RabbitMQPublisher) Close() error {
	return r.channel.Close()
}

// NewJSONMessage wraps payload in a message of the given type.
func NewJSONMessage(messageType string, payload interface{}) (amqp.Publishing, error) {
	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		return amqp.Publishing{}, cerr.Field("message_type", messageType).Wrap(err).Error("Failed to marshal message payload")
	}

	return amqp.Publishing{
		MessageId: uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Type:      messageType,
		Body:      jsonBytes,
	}, nil
}
