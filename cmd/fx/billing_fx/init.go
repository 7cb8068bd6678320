package billing_fx

import (
	"log"
	"os"
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"schoolhub/internal/api/controllers"
	"schoolhub/internal/gateway/cashfree"
	"schoolhub/internal/repositories"
	"schoolhub/internal/services"
)

var Module = fx.Provide(
	provideGateway, provideBillingRepo, provideBillingService, providePaymentController)

func provideGateway() cashfree.Gateway {
	cfg := cashfree.Config{
		AppID:     os.Getenv("CASHFREE_APP_ID"),
		SecretKey: os.Getenv("CASHFREE_SECRET_KEY"),
		BaseURL:   os.Getenv("CASHFREE_BASE_URL"),
		ReturnURL: os.Getenv("CASHFREE_RETURN_URL"),
		NotifyURL: os.Getenv("CASHFREE_NOTIFY_URL"),
		Timeout:   15 * time.Second,
	}

	gateway, err := cashfree.NewClient(cfg)
	if err != nil {
		log.Fatalf("Error initializing payment gateway: %v", err)
	}
	return gateway
}

func provideBillingRepo(db *gorm.DB) repositories.BillingRepository {
	return repositories.NewBillingRepository(db)
}

func provideBillingService(
	billingRepo repositories.BillingRepository,
	schoolRepo repositories.SchoolRepository,
	referralRepo repositories.ReferralRepository,
	promos services.PromoServiceInterface,
	catalog *services.PlanCatalog,
	gateway cashfree.Gateway,
	mailService services.IMailService,
) services.BillingServiceInterface {
	return services.NewBillingService(billingRepo, schoolRepo, referralRepo, promos, catalog, gateway, mailService)
}

func providePaymentController(billingService services.BillingServiceInterface, promoService services.PromoServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(billingService, promoService)
}
