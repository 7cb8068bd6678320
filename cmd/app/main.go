package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"schoolhub/cmd/fx/academics_fx"
	"schoolhub/cmd/fx/account_fx"
	"schoolhub/cmd/fx/billing_fx"
	"schoolhub/cmd/fx/campus_fx"
	"schoolhub/cmd/fx/dashboard_fx"
	"schoolhub/cmd/fx/db_fx"
	"schoolhub/cmd/fx/entitlement_fx"
	"schoolhub/cmd/fx/mail_fx"
	"schoolhub/cmd/fx/memcache_fx"
	"schoolhub/cmd/fx/plan_fx"
	"schoolhub/cmd/fx/promo_fx"
	"schoolhub/cmd/fx/referral_fx"
	"schoolhub/cmd/fx/school_fx"
	"schoolhub/internal/api/controllers"
	"schoolhub/internal/models/db_models"
	"schoolhub/internal/services"
	"schoolhub/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		plan_fx.Module,
		entitlement_fx.Module,
		school_fx.Module,
		account_fx.Module,
		promo_fx.Module,
		referral_fx.Module,
		billing_fx.Module,
		academics_fx.Module,
		campus_fx.Module,
		dashboard_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	planController *controllers.PlanController,
	schoolController *controllers.SchoolController,
	paymentController *controllers.PaymentController,
	promoController *controllers.PromoController,
	referralController *controllers.ReferralController,
	academicsController *controllers.AcademicsController,
	campusController *controllers.CampusController,
	dashboardController *controllers.DashboardController,
	guard *middleware.PlanGuard,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController, planController, schoolController, paymentController,
		promoController, referralController, academicsController, campusController,
		dashboardController, guard)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	planController *controllers.PlanController,
	schoolController *controllers.SchoolController,
	paymentController *controllers.PaymentController,
	promoController *controllers.PromoController,
	referralController *controllers.ReferralController,
	academicsController *controllers.AcademicsController,
	campusController *controllers.CampusController,
	dashboardController *controllers.DashboardController,
	guard *middleware.PlanGuard) {

	auth := r.Group("/auth")
	auth.POST("/register", accountController.Register)
	auth.POST("/login", accountController.Login)
	auth.POST("/forgot-password", accountController.ForgotPassword)
	auth.POST("/reset-password", accountController.ResetPassword)

	r.GET("/plans", planController.ListPlans)

	// Gateway notifications carry their own signature, no JWT.
	r.POST("/payments/webhook", paymentController.Webhook)

	api := r.Group("/", middleware.JWTAuthMiddleware())

	api.GET("/subscription", planController.GetSubscription)
	api.GET("/dashboard", dashboardController.GetSummary)

	api.GET("/school", schoolController.GetProfile)
	api.PUT("/school", guard.RequireActive(), schoolController.UpdateProfile)

	api.POST("/classes", guard.RequireResource(services.ResourceClasses), academicsController.CreateClass)
	api.GET("/classes", academicsController.ListClasses)
	api.DELETE("/classes/:id", academicsController.DeleteClass)

	api.POST("/students", guard.RequireResource(services.ResourceStudents), academicsController.CreateStudent)
	api.GET("/students", academicsController.ListStudents)
	api.DELETE("/students/:id", academicsController.DeleteStudent)

	api.POST("/teachers", guard.RequireResource(services.ResourceTeachers), academicsController.CreateTeacher)
	api.GET("/teachers", academicsController.ListTeachers)
	api.DELETE("/teachers/:id", academicsController.DeleteTeacher)

	api.POST("/notices", guard.RequireFeature(services.FeatureNoticesBasic), campusController.PublishNotice)
	api.GET("/notices", campusController.ListNotices)
	api.DELETE("/notices/:id", campusController.DeleteNotice)

	api.POST("/homework", guard.RequireFeature(services.FeatureHomework), campusController.AssignHomework)
	api.GET("/homework", campusController.ListHomework)
	api.DELETE("/homework/:id", campusController.DeleteHomework)

	api.POST("/fees", guard.RequireFeature(services.FeatureFeeManual), campusController.RecordFee)
	api.GET("/fees/student/:student_id", campusController.ListFees)
	api.POST("/fees/:id/collect", guard.RequireFeature(services.FeatureFeeManual), campusController.CollectFee)

	api.POST("/vehicles", guard.RequireFeature(services.FeatureVehicles), campusController.AddVehicle)
	api.GET("/vehicles", campusController.ListVehicles)
	api.DELETE("/vehicles/:id", campusController.DeleteVehicle)

	api.POST("/events", guard.RequireFeature(services.FeatureEvents), campusController.CreateEvent)
	api.GET("/events", campusController.ListEvents)
	api.DELETE("/events/:id", campusController.DeleteEvent)

	payments := api.Group("/payments")
	payments.POST("/orders", paymentController.CreateOrder)
	payments.GET("/orders", paymentController.ListOrders)
	payments.POST("/verify", paymentController.VerifyOrder)
	payments.POST("/promo-preview", paymentController.PreviewPromo)

	admin := api.Group("/admin", middleware.RoleMiddleware(db_models.RolePlatform))
	admin.POST("/promos", promoController.CreatePromo)
	admin.GET("/promos", promoController.ListPromos)
	admin.DELETE("/promos/:id", promoController.DeactivatePromo)
	admin.POST("/partners", referralController.CreatePartner)
	admin.GET("/partners", referralController.ListPartners)
	admin.GET("/partners/:id/commissions", referralController.ListCommissions)
}
