// main is the entry point of the student/course registry API.
//
// Startup sequence:
//  1. Load configuration (optional YAML file, env overrides, defaults)
//  2. Initialise the logger
//  3. Construct one in-memory store per entity type
//  4. Register all HTTP routes
//  5. Start the HTTP server in a separate goroutine
//  6. Block until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, then exit
//
// Running the server:
//
//	go run ./cmd/api --config=config/local.yaml
//
// or with no arguments at all (defaults listen on 0.0.0.0:8000).
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zhelinfan/HW1-CloudComputing/internal/config"
	"github.com/zhelinfan/HW1-CloudComputing/internal/http/handlers/address"
	"github.com/zhelinfan/HW1-CloudComputing/internal/http/handlers/course"
	"github.com/zhelinfan/HW1-CloudComputing/internal/http/handlers/health"
	"github.com/zhelinfan/HW1-CloudComputing/internal/http/handlers/person"
	"github.com/zhelinfan/HW1-CloudComputing/internal/http/handlers/student"
	"github.com/zhelinfan/HW1-CloudComputing/internal/http/middleware"
	"github.com/zhelinfan/HW1-CloudComputing/internal/storage/memory"
	"github.com/zhelinfan/HW1-CloudComputing/internal/types"
	"github.com/zhelinfan/HW1-CloudComputing/internal/utils/response"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting registry api",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// One store per entity type, owned here and injected into the
	// handler factories. Nothing reaches them as global state, so tests
	// get a fresh store per test and a persistent backend can replace
	// them behind the same interface later.
	addresses := memory.New[types.AddressRecord]("Address")
	persons := memory.New[types.PersonRecord]("Person")
	students := memory.New[types.StudentRecord]("Student")
	courses := memory.New[types.CourseRecord]("Course")

	// Route table. The handler functions are factories: they receive
	// the store once at startup and return the closure the router calls
	// on every request.
	//
	// Persons and addresses expose PATCH and no delete; students and
	// courses expose PUT (sparse merge, see handler docs) and DELETE.
	router := http.NewServeMux()

	router.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Welcome to the Student/Course API.",
		})
	})

	router.HandleFunc("GET /health", health.Get())
	router.HandleFunc("GET /health/{path_echo}", health.GetWithPath())

	router.HandleFunc("POST /addresses", address.New(addresses))
	router.HandleFunc("GET /addresses", address.GetList(addresses))
	router.HandleFunc("GET /addresses/{id}", address.GetByID(addresses))
	router.HandleFunc("PATCH /addresses/{id}", address.Update(addresses))

	router.HandleFunc("POST /persons", person.New(persons))
	router.HandleFunc("GET /persons", person.GetList(persons))
	router.HandleFunc("GET /persons/{id}", person.GetByID(persons))
	router.HandleFunc("PATCH /persons/{id}", person.Update(persons))

	router.HandleFunc("POST /students", student.New(students))
	router.HandleFunc("GET /students", student.GetList(students))
	router.HandleFunc("GET /students/{id}", student.GetByID(students))
	router.HandleFunc("PUT /students/{id}", student.Update(students))
	router.HandleFunc("DELETE /students/{id}", student.Delete(students))

	router.HandleFunc("POST /courses", course.New(courses))
	router.HandleFunc("GET /courses", course.GetList(courses))
	router.HandleFunc("GET /courses/{id}", course.GetByID(courses))
	router.HandleFunc("PUT /courses/{id}", course.Update(courses))
	router.HandleFunc("DELETE /courses/{id}", course.Delete(courses))

	// RecoverPanic is outermost so it catches panics from the rate
	// limiter and router alike.
	handler := middleware.RecoverPanic(middleware.RateLimit(router))

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server started", slog.String("address", cfg.Addr))

		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// setupLogger returns a *slog.Logger configured for the given
// environment: human-readable text at DEBUG level for dev, JSON for
// staging and prod.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
