package routes

import (
	"ecobytes-backend/internal/api/handlers"
	"ecobytes-backend/internal/middleware"
	"ecobytes-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	FoodHandler       handlers.FoodHandler
	DonationHandler   handlers.DonationHandler
	CompostingHandler handlers.CompostingHandler
	SlotHandler       handlers.SlotHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.Donations()
	c.Compostings()
	c.Organizations()
	c.Farms()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
	}
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))
	foodItems.Get("/dashboard", c.FoodHandler.GetDashboardStats)

	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Put("/:id", c.FoodHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)

	foodItems.Post("/image", c.FoodHandler.UploadFoodImage)
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations", c.Middleware.AuthMiddleware(c.JWTService))
	donations.Post("", c.DonationHandler.CreateDonation)
	donations.Get("", c.DonationHandler.GetUserDonations)
	donations.Get("/:id", c.DonationHandler.GetDonationDetails)
	donations.Post("/:id/cancel", c.DonationHandler.CancelDonation)
	donations.Post("/:id/accept", c.DonationHandler.AcceptDonation)
	donations.Post("/:id/reject", c.DonationHandler.RejectDonation)
}

func (c *Config) Compostings() {
	compostings := c.App.Group("/api/v1/composting", c.Middleware.AuthMiddleware(c.JWTService))
	compostings.Post("", c.CompostingHandler.CreateComposting)
	compostings.Get("", c.CompostingHandler.GetUserCompostings)
	compostings.Get("/:id", c.CompostingHandler.GetCompostingDetails)
	compostings.Post("/:id/cancel", c.CompostingHandler.CancelComposting)
	compostings.Post("/:id/accept", c.CompostingHandler.AcceptComposting)
	compostings.Post("/:id/reject", c.CompostingHandler.RejectComposting)
}

func (c *Config) Organizations() {
	organizations := c.App.Group("/api/v1/organizations", c.Middleware.AuthMiddleware(c.JWTService))
	organizations.Get("/requests", c.DonationHandler.GetIncomingRequests)
	organizations.Get("", c.SlotHandler.GetOrganizations)
	organizations.Get("/:id/slots", c.SlotHandler.GetOrganizationSlots)
}

func (c *Config) Farms() {
	farms := c.App.Group("/api/v1/farms", c.Middleware.AuthMiddleware(c.JWTService))
	farms.Get("/requests", c.CompostingHandler.GetIncomingRequests)
	farms.Get("", c.SlotHandler.GetFarms)
	farms.Get("/:id/slots", c.SlotHandler.GetFarmSlots)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
