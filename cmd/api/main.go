package main

import (
	"os"
	"time"

	_ "corporatepay/docs"
	"corporatepay/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title           CorporatePay Approvals API
// @version         1.0
// @description     Policy-gated approval workflow engine with SLA tracking, penalty calculation and dispute auto-triggering, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = log.Output(os.Stderr).With().Str("service", "corporatepay-approvals").Logger()

	routes.Run()
}
