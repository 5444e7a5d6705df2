package fx

import (
	"context"

	"Cartera/config"
	"Cartera/internal/logger"
	"Cartera/internal/routes"

	"github.com/gin-gonic/gin"

	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
) {
	api := router.Group("/api")
	{
		workspaces := api.Group("/workspaces")
		{
			workspaces.POST("", handler.CreateWorkspace)
			workspaces.GET("/:id", handler.GetWorkspace)
			workspaces.POST("/:id/accounts", handler.CreateAccount)
			workspaces.GET("/:id/accounts", handler.ListAccounts)
			workspaces.POST("/:id/transactions", handler.CreateTransaction)
			workspaces.GET("/:id/transactions", handler.ListTransactions)
			workspaces.GET("/:id/summaries/:year/:month", handler.GetWorkspaceSummary)
		}

		cards := api.Group("/cards")
		{
			cards.POST("", handler.CreateCard)
			cards.GET("", handler.ListCards)
			cards.GET("/:id", handler.GetCard)
			cards.PATCH("/:id", handler.UpdateCard)
			cards.POST("/:id/purchases", handler.RegisterPurchase)
			cards.GET("/:id/purchases", handler.ListPurchases)
			cards.GET("/:id/statements", handler.ListStatements)
		}

		purchases := api.Group("/purchases")
		{
			purchases.DELETE("/:id", handler.DeletePurchase)
			purchases.GET("/:id/installments", handler.ListInstallments)
		}

		statements := api.Group("/statements")
		{
			statements.GET("/:id", handler.GetStatement)
			statements.POST("/:id/pay", handler.PayStatement)
		}

		transactions := api.Group("/transactions")
		{
			transactions.GET("/:id", handler.GetTransaction)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}
