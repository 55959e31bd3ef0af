// Package middleware contains HTTP middleware used to wrap the router.
// Middleware functions intercept every request before it reaches a
// handler.
package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/zhelinfan/HW1-CloudComputing/internal/utils/response"
)

// RecoverPanic catches any runtime panic in a downstream handler.
// Without it a panic would drop the client's connection silently; with
// it the client receives a clean JSON 500.
func RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				// Close the connection after this response.
				w.Header().Set("Connection", "close")
				slog.Error("panic recovered",
					slog.String("request_method", r.Method),
					slog.String("request_url", r.URL.String()),
				)
				response.WriteJSON(w, http.StatusInternalServerError,
					response.GeneralError(fmt.Errorf("%s", err)))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// client holds a per-IP rate limiter and the time it was last seen.
// lastSeen lets us evict old entries so the map does not grow forever.
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit implements per-IP token-bucket rate limiting. Each unique
// IP gets its own limiter with 10 tokens per second and a burst of 20.
// A background goroutine evicts entries not seen for 3 minutes.
func RateLimit(next http.Handler) http.Handler {
	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	go func() {
		for {
			time.Sleep(time.Minute)
			mu.Lock()
			for ip, c := range clients {
				if time.Since(c.lastSeen) > 3*time.Minute {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		mu.Lock()
		if _, found := clients[ip]; !found {
			clients[ip] = &client{
				limiter: rate.NewLimiter(rate.Limit(10), 20),
			}
		}
		clients[ip].lastSeen = time.Now()

		if !clients[ip].limiter.Allow() {
			mu.Unlock()
			response.WriteJSON(w, http.StatusTooManyRequests,
				response.GeneralError(fmt.Errorf("rate limit exceeded")))
			return
		}
		mu.Unlock()

		next.ServeHTTP(w, r)
	})
}
