//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/smartconseil/sc_contact/config"
	"github.com/smartconseil/sc_contact/database"
	"github.com/smartconseil/sc_contact/environment"
	"github.com/smartconseil/sc_contact/repositories"
	"github.com/smartconseil/sc_contact/routers"
	"github.com/smartconseil/sc_contact/routers/api"
	"github.com/smartconseil/sc_contact/routers/frontend"
	"github.com/smartconseil/sc_contact/services/mongo"
	"github.com/smartconseil/sc_contact/utils"
)

func InitializeServer() (*Server, error) {
	wire.Build(
		NewServer,
		routers.NewMainRouter,
		frontend.NewRouter,
		api.NewAPIRouter,
		mongo.NewMongoContactService,
		repositories.NewContactRepository,
		wire.Bind(new(repositories.MongoRepository), new(*repositories.ContactRepository)),
		wire.Bind(new(repositories.CollectionProvider), new(*database.Client)),
		wire.Bind(new(DatabaseConnector), new(*database.Client)),
		database.NewClient,
		database.NewConnectionStatus,
		utils.NewTimeProvider,
		environment.NewEnv,
		utils.NewLogger,
		config.NewAppConfig,
	)
	return nil, nil
}
