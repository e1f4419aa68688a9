package bus_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"graphlens/application/queries/bus"
)

type countQuery struct{}

func (q countQuery) Validate() error { return nil }

type badQuery struct{}

func (q badQuery) Validate() error { return errors.New("always invalid") }

func TestQueryBusDispatchesToRegisteredHandler(t *testing.T) {
	queryBus := bus.NewQueryBus()

	err := queryBus.Register(countQuery{}, bus.QueryHandlerFunc(
		func(ctx context.Context, q bus.Query) (interface{}, error) {
			return 42, nil
		},
	))
	require.NoError(t, err)

	result, err := queryBus.Ask(context.Background(), countQuery{})
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestQueryBusRejectsUnregisteredQuery(t *testing.T) {
	queryBus := bus.NewQueryBus()

	_, err := queryBus.Ask(context.Background(), countQuery{})
	assert.Error(t, err)
}

func TestQueryBusValidatesBeforeDispatch(t *testing.T) {
	queryBus := bus.NewQueryBus()

	called := false
	err := queryBus.Register(badQuery{}, bus.QueryHandlerFunc(
		func(ctx context.Context, q bus.Query) (interface{}, error) {
			called = true
			return nil, nil
		},
	))
	require.NoError(t, err)

	_, err = queryBus.Ask(context.Background(), badQuery{})
	assert.Error(t, err)
	assert.False(t, called)
}

func TestLoggingMiddlewarePassesResultThrough(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logging := bus.LoggingMiddleware(zap.New(core))

	handler := logging(bus.QueryHandlerFunc(
		func(ctx context.Context, q bus.Query) (interface{}, error) {
			return "payload", nil
		},
	))

	result, err := handler.Handle(context.Background(), countQuery{})
	require.NoError(t, err)
	assert.Equal(t, "payload", result)

	require.Equal(t, 1, logs.FilterMessage("Executing query").Len())
	assert.Equal(t, 0, logs.FilterMessage("Query failed").Len())
}

func TestLoggingMiddlewareLogsFailures(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logging := bus.LoggingMiddleware(zap.New(core))

	handler := logging(bus.QueryHandlerFunc(
		func(ctx context.Context, q bus.Query) (interface{}, error) {
			return nil, errors.New("storage gone")
		},
	))

	_, err := handler.Handle(context.Background(), countQuery{})
	assert.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("Query failed").Len())
}
