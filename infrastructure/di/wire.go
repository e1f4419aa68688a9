//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"graphlens/application/commands/bus"
	"graphlens/application/ports"
	querybus "graphlens/application/queries/bus"
	"graphlens/infrastructure/config"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	GraphRepo  ports.GraphRepository
	CommandBus *bus.CommandBus
	QueryBus   *querybus.QueryBus
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideGraphRepository,
	ProvideCommandBus,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
