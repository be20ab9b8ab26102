package server

import (
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/tradi3/chatquest/internal/handler"
	"github.com/tradi3/chatquest/internal/logger"
)

// ShopThrottle rejects rapid-fire shop requests per client IP. Entries
// expire on their own, so a quiet client is forgotten after the interval.
type ShopThrottle struct {
	seen *expirable.LRU[string, time.Time]
}

// NewShopThrottle creates a throttle with the given per-IP interval.
func NewShopThrottle(interval time.Duration) *ShopThrottle {
	return &ShopThrottle{
		seen: expirable.NewLRU[string, time.Time](ShopThrottleSize, nil, interval),
	}
}

// Middleware gates the wrapped handlers: a repeat hit from the same IP
// inside the interval gets a 429 chat line.
func (t *ShopThrottle) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if _, throttled := t.seen.Get(ip); throttled {
			logger.FromContext(r.Context()).Warn("Shop request throttled", "ip", ip, "path", r.URL.Path)
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(handler.ErrMsgThrottled))
			return
		}
		t.seen.Add(ip, time.Now())
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
