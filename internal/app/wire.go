//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"convai/internal/api/server"
	"convai/internal/app/pipeline"
	"convai/internal/config"
)

var coreSet = wire.NewSet(
	provideLogger,
	provideStores,
	provideAdapters,
	providePipeline,
)

// InitializeServer builds the web server for cfg
func InitializeServer(ctx context.Context, cfg *config.Config) (*server.Server, func(), error) {
	wire.Build(coreSet, provideServiceContainer, provideServerConfig, server.NewServer)
	return &server.Server{}, nil, nil
}

// InitializePipeline builds the request pipeline for batch commands
func InitializePipeline(ctx context.Context, cfg *config.Config) (*pipeline.Pipeline, func(), error) {
	wire.Build(coreSet)
	return &pipeline.Pipeline{}, nil, nil
}

// InitializeStores opens the flat-file stores without any cloud client
func InitializeStores(cfg *config.Config) (*Stores, error) {
	wire.Build(provideStores)
	return &Stores{}, nil
}
