package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martijn/wigest/internal/core/service"
	"github.com/martijn/wigest/internal/infrastructure/postgres"
	"github.com/martijn/wigest/pkg/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wigest",
	Short: "Wigest - ISP subscription management",
	Long: `Wigest is the management backend of a small internet service provider.

It provides:
- Client, offer, subscription and payment management
- Paginated listings with search and month filters
- An audit trail populated by database triggers
- Dashboard statistics endpoints
- A REST API consumed by the admin front-end`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/wigest/config.yml)")
}

// initServices initializes the database and all services
func initServices() (*Services, error) {
	db, err := postgres.New(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize repositories
	clientRepo := postgres.NewClientRepository(db)
	offerRepo := postgres.NewOfferRepository(db)
	subscriptionRepo := postgres.NewSubscriptionRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	logRepo := postgres.NewLogRepository(db)

	// Initialize services
	clientService := service.NewClientService(clientRepo)
	offerService := service.NewOfferService(offerRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, clientRepo, offerRepo)
	paymentService := service.NewPaymentService(paymentRepo, subscriptionRepo)
	logService := service.NewLogService(logRepo)

	return &Services{
		DB:                  db,
		ClientService:       clientService,
		OfferService:        offerService,
		SubscriptionService: subscriptionService,
		PaymentService:      paymentService,
		LogService:          logService,
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB                  *postgres.DB
	ClientService       *service.ClientService
	OfferService        *service.OfferService
	SubscriptionService *service.SubscriptionService
	PaymentService      *service.PaymentService
	LogService          *service.LogService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
