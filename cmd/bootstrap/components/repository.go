package components

import (
	"takas-api/internal/infra/readstore"
	"takas-api/internal/infra/repository"
	"takas-api/internal/usecase/commands"
	"takas-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repository.NewTradeOfferRepository,
			fx.As(new(commands.TradeOfferRepository)),
		),
		fx.Annotate(
			repository.NewTradeEventRepository,
			fx.As(new(commands.TradeEventRepository)),
		),
		fx.Annotate(
			repository.NewPostgresCatalogGateway,
			fx.As(new(commands.CatalogGateway)),
		),
		// Read side
		fx.Annotate(
			readstore.NewTradeOfferReadStore,
			fx.As(new(queries.TradeOfferReadStore)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
	),
)
