package routes

import (
	"context"
	"os"
	"strconv"

	_ "corporatepay/docs" // swagger docs generated by swag
	"corporatepay/internal/adapter/http/handlers"
	repository2 "corporatepay/internal/adapter/persistence/repository"
	"corporatepay/internal/infrastructure/database"
	"corporatepay/internal/infrastructure/metrics"
	"corporatepay/internal/infrastructure/notification"
	"corporatepay/internal/infrastructure/payments"
	"corporatepay/internal/infrastructure/policyconfig"
	"corporatepay/internal/infrastructure/scheduler"
	"corporatepay/internal/usecase"
	"corporatepay/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes() {
	logger := log.Logger

	provider := loadPolicyProvider()
	go func() {
		if err := provider.Watch(context.Background()); err != nil && err != context.Canceled {
			logger.Error().Err(err).Msg("policy config watcher stopped")
		}
	}()

	ddb := database.ConnectDynamoDB()

	requestRepo := repository2.NewRequestDynamoRepository(ddb)
	chainRepo := repository2.NewChainDynamoRepository(ddb)
	exceptionRepo := repository2.NewExceptionDynamoRepository(ddb)
	breachRepo := repository2.NewFulfillmentExceptionDynamoRepository(ddb)
	disputeRepo := repository2.NewDisputeDynamoRepository(ddb)
	auditRepo := repository2.NewAuditDynamoRepository(ddb)

	notifier := notification.NewLogNotifier(logger)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		logger.Warn().Err(err).Msg("mercado pago gateway not configured, penalty settlement disabled")
	} else {
		paymentGateway = mpGateway
	}

	requestUseCase := usecase.NewRequestUseCase(requestRepo, chainRepo, exceptionRepo, auditRepo, provider, logger)
	approvalUseCase := usecase.NewApprovalUseCase(chainRepo, requestRepo, exceptionRepo, auditRepo, notifier, logger)
	exceptionUseCase := usecase.NewExceptionUseCase(exceptionRepo, requestRepo, chainRepo, auditRepo, provider, logger)
	scanUseCase := usecase.NewBreachScanUseCase(requestRepo, breachRepo, disputeRepo, auditRepo, notifier, provider, logger)
	disputeUseCase := usecase.NewDisputeUseCase(disputeRepo, requestRepo, auditRepo, paymentGateway, provider, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	requestHandler := handlers.NewRequestHandler(requestUseCase, m)
	approvalHandler := handlers.NewApprovalHandler(approvalUseCase, m)
	exceptionHandler := handlers.NewExceptionHandler(exceptionUseCase)
	disputeHandler := handlers.NewDisputeHandler(disputeUseCase, m)
	scanHandler := handlers.NewScanHandler(scanUseCase, m)
	policyHandler := handlers.NewPolicyHandler(provider)

	sched := scheduler.New(scanUseCase, provider.Scan().Schedule, logger)
	if err := sched.Start(); err != nil {
		logger.Error().Err(err).Msg("breach scan scheduler failed to start")
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addApprovalRoutes(v1, requestHandler, approvalHandler, exceptionHandler, disputeHandler, scanHandler, policyHandler)
}

func loadPolicyProvider() *policyconfig.Provider {
	path := os.Getenv("POLICY_CONFIG_PATH")
	if path == "" {
		path = "policy.yaml"
	}

	file, err := policyconfig.Load(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("policy config not loaded, using defaults")
		file = policyconfig.Defaults()
	}
	return policyconfig.NewProvider(file, path, log.Logger)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
