// Package health contains the health-check handlers. The endpoints do
// no dependency probing (there is nothing to probe; the stores are
// process-local memory); they echo liveness plus basic identity so a
// caller can verify routing end to end.
package health

import (
	"net"
	"net/http"
	"os"
	"time"

	"github.com/zhelinfan/HW1-CloudComputing/internal/utils/response"
)

// Health is the response body for the health endpoints.
type Health struct {
	Status        int     `json:"status"`
	StatusMessage string  `json:"status_message"`
	Timestamp     string  `json:"timestamp"`
	IPAddress     string  `json:"ip_address"`
	Echo          *string `json:"echo"`
	PathEcho      *string `json:"path_echo"`
}

// Get handles GET /health. An optional ?echo= query string is repeated
// back in the body.
func Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, makeHealth(queryEcho(r), nil))
	}
}

// GetWithPath handles GET /health/{path_echo}. The path segment is
// repeated back alongside the optional query echo.
func GetWithPath() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pathEcho := r.PathValue("path_echo")
		response.WriteJSON(w, http.StatusOK, makeHealth(queryEcho(r), &pathEcho))
	}
}

func queryEcho(r *http.Request) *string {
	if !r.URL.Query().Has("echo") {
		return nil
	}
	echo := r.URL.Query().Get("echo")
	return &echo
}

func makeHealth(echo, pathEcho *string) Health {
	return Health{
		Status:        http.StatusOK,
		StatusMessage: "OK",
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		IPAddress:     hostIP(),
		Echo:          echo,
		PathEcho:      pathEcho,
	}
}

// hostIP resolves the machine's hostname to an IP address, preferring
// IPv4. Falls back to the loopback address when resolution fails (e.g.
// in minimal containers with no resolvable hostname).
func hostIP() string {
	host, err := os.Hostname()
	if err != nil {
		return "127.0.0.1"
	}
	ips, err := net.LookupIP(host)
	if err != nil || len(ips) == 0 {
		return "127.0.0.1"
	}
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			return v4.String()
		}
	}
	return ips[0].String()
}
