package config

import (
	"ecobytes-backend/internal/api/handlers"
	"ecobytes-backend/internal/api/routes"
	"ecobytes-backend/internal/middleware"
	"ecobytes-backend/internal/utils"
	"ecobytes-backend/internal/utils/storage"
	"ecobytes-backend/pkg/composting"
	"ecobytes-backend/pkg/donation"
	"ecobytes-backend/pkg/food"
	"ecobytes-backend/pkg/jwt"
	"ecobytes-backend/pkg/slot"
	"ecobytes-backend/pkg/tracking"
	"ecobytes-backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	trackingRepository := tracking.NewTrackingRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	compostingRepository := composting.NewCompostingRepository(db)
	slotRepository := slot.NewSlotRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	trackingService := tracking.NewTrackingService(trackingRepository)
	foodService := food.NewFoodService(foodRepository, trackingService, s3)
	donationService := donation.NewDonationService(donationRepository, foodRepository, userRepository)
	compostingService := composting.NewCompostingService(compostingRepository, foodRepository, userRepository)
	slotService := slot.NewSlotService(slotRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	compostingHandler := handlers.NewCompostingHandler(compostingService, validator)
	slotHandler := handlers.NewSlotHandler(slotService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		FoodHandler:       foodHandler,
		DonationHandler:   donationHandler,
		CompostingHandler: compostingHandler,
		SlotHandler:       slotHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
