package worker

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . MessageHandler
type MessageHandler interface {
	JobType() string
	HandleMessage(ctx context.Context, message []byte) error
}
