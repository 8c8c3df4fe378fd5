package ratelimit

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bornholm/orders/internal/http/handler/webui/common"
	"github.com/bornholm/orders/internal/metrics"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// Middleware limits requests per remote address with a token bucket
// refilled every interval. Limiters of idle addresses expire after ttl.
func Middleware(trustHeaders bool, interval time.Duration, maxBurst int, cacheSize int, ttl time.Duration) func(http.Handler) http.Handler {
	cache := expirable.NewLRU[string, *rate.Limiter](cacheSize, nil, ttl)

	getLimiter := func(remoteAddr string) *rate.Limiter {
		limiter, exists := cache.Get(remoteAddr)
		if !exists {
			limiter = rate.NewLimiter(rate.Every(interval), maxBurst)
			cache.Add(remoteAddr, limiter)
		}

		return limiter
	}

	getRemoteAddr := func(r *http.Request) string {
		if trustHeaders {
			xff := r.Header.Get("X-Forwarded-For")
			if xff != "" {
				ips := strings.Split(xff, ",")
				if len(ips) > 0 {
					return strings.TrimSpace(ips[0])
				}
			}

			xri := r.Header.Get("X-Real-Ip")
			if xri != "" {
				return xri
			}
		}

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return r.RemoteAddr
		}

		return ip
	}

	reject := func(w http.ResponseWriter, r *http.Request) {
		metrics.RateLimited.Inc()
		common.HandleError(w, r, common.NewHTTPError(http.StatusTooManyRequests))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			remoteAddr := getRemoteAddr(r)
			limiter := getLimiter(remoteAddr)

			reservation := limiter.Reserve()
			if !reservation.OK() {
				reject(w, r)
				return
			}

			if delay := reservation.Delay(); delay > 0 {
				reservation.Cancel()

				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				reject(w, r)
				return
			}

			tokens := limiter.Tokens()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(maxBurst))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%.0f", tokens))

			if tokens < float64(maxBurst) {
				untilFull := time.Duration((float64(maxBurst) - tokens) * float64(interval))
				w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(untilFull).Unix(), 10))
			} else {
				w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Unix(), 10))
			}

			next.ServeHTTP(w, r)
		})
	}
}
