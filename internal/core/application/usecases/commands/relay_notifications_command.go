package commands

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRelayNotificationsCommandIsNotConstructed = errors.New(
	"RelayNotificationsCommand must be created via NewRelayNotificationsCommand constructor",
)

// maxRelayBatchSize bounds how many notifications one relay run publishes.
const maxRelayBatchSize = 1000

// RelayNotificationsCommand publishes up to batchSize unpublished notifications to topic.
type RelayNotificationsCommand struct { //nolint:recvcheck //using for validation
	topic     string
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelayNotificationsCommand(topic string, batchSize int) (RelayNotificationsCommand, error) {
	var topicErr, sizeErr error
	if strings.TrimSpace(topic) == "" {
		topicErr = errs.NewValueIsRequiredError("topic")
	}
	if batchSize < 1 || batchSize > maxRelayBatchSize {
		sizeErr = errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, maxRelayBatchSize)
	}
	if err := errors.Join(topicErr, sizeErr); err != nil {
		return RelayNotificationsCommand{}, err
	}

	return RelayNotificationsCommand{
		topic:     topic,
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RelayNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrRelayNotificationsCommandIsNotConstructed)
}

func (c RelayNotificationsCommand) Topic() string {
	return c.topic
}

func (c RelayNotificationsCommand) BatchSize() int {
	return c.batchSize
}
