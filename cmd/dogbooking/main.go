package main

import (
	"dogbooking/internal/bookings/events"
	"dogbooking/internal/bookings/handler"
	"dogbooking/internal/bookings/repository"
	"dogbooking/internal/bookings/service"
	"dogbooking/internal/bookings/validator"
	"dogbooking/pkg/app"
	"dogbooking/pkg/config"
)

const ServiceName = "dogbooking"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting dog booking service")

	publisher, err := events.NewPublisher(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize event publisher", "error", err)
	}

	bookingService := initServices(cfg, publisher)

	serverApp := app.NewApplication(cfg)
	serverApp.OnShutdown("event publisher", publisher)
	serverApp.SetApp(
		handler.NewBookingHandler(bookingService, cfg.Log),
		handler.NewHealthHandler(cfg.Client.Mongo, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config, publisher events.Publisher) service.BookingService {
	requestValidator := validator.NewRequestValidator(cfg.Log)
	repo := repository.NewMongoRepository(cfg, cfg.Client.Mongo.Database(cfg.MongoDatabaseName))
	bookingService := service.NewBookingService(
		repo,
		requestValidator,
		publisher,
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return bookingService
}
