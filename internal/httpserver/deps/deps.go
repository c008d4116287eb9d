package deps

import (
	"time"

	"github.com/MrSnakeDoc/snip/internal/logger"
	"github.com/MrSnakeDoc/snip/internal/store"
)

// Deps is everything a route registrar may hand to its handlers.
// The store is constructed once by the app and shared by every request.
type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time // for testing, defaults to time.Now
	AllowedHosts []string         // Host headers allowed to access the server
	AllowedCIDRS []string         // IPs allowed to access healthz/readyz endpoints
	TrustProxy   bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)
	Store        store.Store      // the url store
	StoreBackend string           // backend name, reported by /readyz
	StrictStatus bool             // non-2xx status codes for domain errors
	MaxBodyBytes int64            // cap on POST /new request bodies
}

// Now returns the current time using TimeNow when set.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
