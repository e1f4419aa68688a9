package di

import (
	"context"
	"fmt"

	"graphlens/application/commands"
	"graphlens/application/commands/bus"
	commands_handlers "graphlens/application/commands/handlers"
	"graphlens/application/ports"
	"graphlens/application/queries"
	querybus "graphlens/application/queries/bus"
	queries_handlers "graphlens/application/queries/handlers"
	"graphlens/infrastructure/config"
	"graphlens/infrastructure/persistence/memory"

	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideGraphRepository creates the in-memory graph snapshot store
func ProvideGraphRepository(logger *zap.Logger) ports.GraphRepository {
	return memory.NewGraphRepository(logger)
}

// CommandHandlerAdapter adapts specific command handlers to the generic interface
type CommandHandlerAdapter struct {
	handler func(context.Context, bus.Command) error
}

func (a *CommandHandlerAdapter) Handle(ctx context.Context, cmd bus.Command) error {
	return a.handler(ctx, cmd)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	graphRepo ports.GraphRepository,
	logger *zap.Logger,
) *bus.CommandBus {
	commandBus := bus.NewCommandBus()
	logging := bus.LoggingMiddleware(logger)

	// Register LoadGraphCommand handler
	loadGraphHandler := commands_handlers.NewLoadGraphHandler(graphRepo, logger)
	commandBus.Register(commands.LoadGraphCommand{}, logging(&CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			loadCmd, ok := cmd.(commands.LoadGraphCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return loadGraphHandler.Handle(ctx, loadCmd)
		},
	}))

	return commandBus
}

// QueryHandlerAdapter adapts specific query handlers to the generic interface
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	graphRepo ports.GraphRepository,
	logger *zap.Logger,
) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()
	logging := querybus.LoggingMiddleware(logger)

	// Register GetGraphDataQuery handler
	getGraphDataHandler := queries_handlers.NewGetGraphDataHandler(graphRepo, logger)
	queryBus.Register(queries.GetGraphDataQuery{}, logging(&QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetGraphDataQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getGraphDataHandler.Handle(ctx, getQuery)
		},
	}))

	return queryBus
}
