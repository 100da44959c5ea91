package dummy

import (
	"sync"

	"sam-audio-server/src/application/publish"
	"sam-audio-server/src/application/worker"

	"github.com/streadway/amqp"
)

var _ publish.Publisher = &RabbitMQ{}
var _ worker.MessageChannel = &RabbitMQ{}
var _ amqp.Acknowledger = &RabbitMQ{}

type RabbitMQ struct {
	Unavailable    bool
	MessageChannel chan amqp.Delivery

	mu          sync.Mutex
	ackCounter  int
	nackCounter int
	requeued    int
	deliveryTag uint64
}

func NewRabbitMQ() *RabbitMQ {
	return &RabbitMQ{
		Unavailable:    false,
		MessageChannel: make(chan amqp.Delivery, 100),
	}
}

func (r *RabbitMQ) Publish(msg amqp.Publishing) error {
	if r.Unavailable {
		return NetworkFailure
	}

	r.mu.Lock()
	r.deliveryTag++
	tag := r.deliveryTag
	r.mu.Unlock()

	r.MessageChannel <- amqp.Delivery{
		Acknowledger:    r,
		ContentType:     msg.ContentType,
		ContentEncoding: msg.ContentEncoding,
		DeliveryMode:    msg.DeliveryMode,
		Timestamp:       msg.Timestamp,
		MessageId:       msg.MessageId,
		Type:            msg.Type,
		Body:            msg.Body,
		DeliveryTag:     tag,
	}
	return nil
}

func (r *RabbitMQ) Consume(_ string, _ string, _ bool, _ bool, _ bool, _ bool, _ amqp.Table) (<-chan amqp.Delivery, error) {
	if r.Unavailable {
		return nil, NetworkFailure
	}

	return r.MessageChannel, nil
}

func (r *RabbitMQ) Close() error {
	return nil
}

func (r *RabbitMQ) Ack(_ uint64, _ bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ackCounter++
	return nil
}

func (r *RabbitMQ) Nack(_ uint64, _ bool, requeue bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nackCounter++
	if requeue {
		r.requeued++
	}
	return nil
}

func (r *RabbitMQ) Reject(tag uint64, requeue bool) error {
	return r.Nack(tag, false, requeue)
}

func (r *RabbitMQ) AckCounter() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ackCounter
}

func (r *RabbitMQ) NackCounter() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nackCounter
}

func (r *RabbitMQ) RequeueCounter() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requeued
}
