package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"consultorio/internal/api"
	"consultorio/internal/entities"
	"consultorio/internal/repository"
	"consultorio/internal/service"
)

func main() {
	godotenv.Load()
	initLogger()

	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	sender := service.NewSenderService()
	booking := service.NewBookingService(doctorRepo, appointmentRepo, sender)
	jobs := service.NewJobService(doctorRepo, appointmentRepo, sender)

	seed(doctorRepo, appointmentRepo)

	// daily reminder sweep for the next day's appointments
	c := cron.New()
	if _, err := c.AddFunc("0 18 * * *", func() {
		if err := jobs.SendUpcomingReminders(); err != nil {
			log.Error().Err(err).Msg("reminder job failed")
		}
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to schedule reminder job")
	}
	c.Start()
	defer c.Stop()

	r := api.NewRouter(booking)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	port := env("PORT", "8080")
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: handlers.RecoveryHandler()(cors(r)),
	}

	go func() {
		log.Info().Str("port", port).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}

// seed loads the fixed startup data. State is volatile: everything here is
// rebuilt on every start and lost on exit.
func seed(doctors *repository.DoctorRepository, appointments *repository.AppointmentRepository) {
	smithID := doctors.AddDoctor("John", "Smith")
	log.Info().Str("doctor_id", smithID).Msg("seeded doctor John Smith")

	for _, booked := range []struct {
		first, last, datetime string
	}{
		{"Claude", "Mann", "2022-11-01 10:30 am"},
		{"Jamie", "McMillan", "2022-11-01 11:30 am"},
	} {
		at, err := time.Parse(service.BookingTimeLayout, booked.datetime)
		if err != nil {
			log.Fatal().Err(err).Str("datetime", booked.datetime).Msg("bad seed datetime")
		}
		appointments.AddAppointment(entities.Appointment{
			DoctorID: smithID,
			First:    booked.first,
			Last:     booked.last,
			DateTime: at,
			Kind:     "Follow-up",
		})
	}

	doctors.AddDoctor("Dave", "Kent")
	doctors.AddDoctor("Alice", "Waller")
	doctors.AddDoctor("Dottie", "Myer")
}

func initLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("APP_ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
