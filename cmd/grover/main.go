package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/FlippingBinary/grocery-deflater/config"
	"github.com/FlippingBinary/grocery-deflater/internal/delivery"
	"github.com/FlippingBinary/grocery-deflater/internal/delivery/graphql"
	"github.com/FlippingBinary/grocery-deflater/internal/delivery/http"
	httpmiddleware "github.com/FlippingBinary/grocery-deflater/internal/delivery/http/middleware"
	"github.com/FlippingBinary/grocery-deflater/internal/delivery/http/router/handler"
	"github.com/FlippingBinary/grocery-deflater/internal/delivery/middleware"
	logs "github.com/FlippingBinary/grocery-deflater/internal/infra/log"
	"github.com/FlippingBinary/grocery-deflater/internal/infra/persistence/postgres"
	"github.com/FlippingBinary/grocery-deflater/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCategoryRepository,
			postgres.NewStorefrontRepository,
			postgres.NewProductRepository,
			postgres.NewListRepository,
			postgres.NewUserRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCategoryService,
			impl.NewMerchantService,
			impl.NewProductService,
			impl.NewListService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			graphql.NewSchema,
			handler.NewGraphQLHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
