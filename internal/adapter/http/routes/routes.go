package routes

import (
	"context"
	"fmt"
	"net/http"

	_ "home_estimate/docs" // registers the swagger docs
	"home_estimate/internal/adapter/http/handlers"
	"home_estimate/internal/adapter/persistence/repository"
	"home_estimate/internal/config"
	"home_estimate/internal/domain/catalog"
	"home_estimate/internal/infrastructure/database"
	"home_estimate/internal/infrastructure/export"
	"home_estimate/internal/infrastructure/payments"
	"home_estimate/internal/infrastructure/pricing"
	"home_estimate/internal/usecase"
	"home_estimate/internal/usecase/interfaces"
	"home_estimate/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Catalog     *handlers.CatalogHandler
	Session     *handlers.SessionHandler
	Calculation *handlers.CalculationHandler
	Finishing   *handlers.FinishingHandler
	Estimate    *handlers.EstimateHandler
	Order       *handlers.OrderHandler
	Payment     *handlers.BillingPaymentHandler
}

// Run wires the application from cfg and blocks serving HTTP.
func Run(ctx context.Context, cfg *config.Config) error {
	h, err := buildHandlers(ctx, cfg)
	if err != nil {
		return err
	}

	router := NewRouter(h)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.With(logger.String("addr", addr)).Info(ctx, "http server starting")
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("routes.Run: %w", err)
	}
	return nil
}

// NewRouter mounts the middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Catalog)
	addSessionRoutes(v1, h)
	addOrderRoutes(v1, h.Order, h.Payment)
	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config) (Handlers, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return Handlers{}, err
	}

	sessionRepo := repository.NewSessionDynamoRepository(ddb, cfg.DynamoDB.SessionsTable)
	orderRepo := repository.NewCompositeOrderDynamoRepository(ddb, cfg.DynamoDB.OrdersTable)
	paymentRepo := repository.NewBillingPaymentDynamoRepository(ddb, cfg.DynamoDB.PaymentsTable)

	ix := catalog.Default()
	pricingGateway := pricing.NewHTTPGateway(cfg.Pricing.BaseURL, cfg.Pricing.Timeout)
	renderer := export.NewRenderer("")

	var paymentGateway interfaces.IPaymentGateway
	if mp, err := payments.NewMercadoPagoGateway(cfg.Payments.MercadoPagoAccessToken); err != nil {
		logger.L().Warn(ctx, "mercado pago gateway not configured", logger.ErrorF(err))
	} else {
		paymentGateway = mp
	}

	pricingUC := usecase.NewPricingUseCase(sessionRepo, ix, pricingGateway, cfg.Pricing.Concurrency)
	sessionUC := usecase.NewSessionUseCase(sessionRepo, ix, pricingUC)
	finishingUC := usecase.NewFinishingUseCase(sessionRepo, ix, pricingGateway, pricingUC)
	estimateUC := usecase.NewEstimateUseCase(sessionRepo, ix, renderer)
	orderUC := usecase.NewCompositeOrderUseCase(orderRepo, sessionRepo, ix, estimateUC, renderer)
	paymentUC := usecase.NewBillingPaymentUseCase(paymentRepo, orderRepo, paymentGateway, usecase.PaymentOptions{
		Mock:            cfg.Payments.Mock,
		Sandbox:         cfg.Payments.Sandbox(),
		TestPayerEmail:  cfg.Payments.TestPayerEmail,
		TestPayerUserID: cfg.Payments.TestPayerUserID,
	})

	return Handlers{
		Catalog:     handlers.NewCatalogHandler(usecase.NewCatalogUseCase(ix)),
		Session:     handlers.NewSessionHandler(sessionUC),
		Calculation: handlers.NewCalculationHandler(pricingUC),
		Finishing:   handlers.NewFinishingHandler(finishingUC),
		Estimate:    handlers.NewEstimateHandler(estimateUC, orderUC),
		Order:       handlers.NewOrderHandler(orderUC),
		Payment:     handlers.NewBillingPaymentHandler(paymentUC),
	}, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.L().Error(c.Request.Context(), "recovered from panic", logger.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
