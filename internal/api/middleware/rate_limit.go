package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
)

const msgTooManyRequests = "Demasiadas solicitudes, intente más tarde"

// DefaultIdleTTL время, после которого неактивный клиент удаляется из таблицы
const DefaultIdleTTL = 10 * time.Minute

// visitor лимитер клиента и время его последнего запроса
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter token bucket на каждого клиента (по IP)
type RateLimiter struct {
	mu                sync.Mutex
	visitors          map[string]*visitor
	limit             rate.Limit
	burst             int
	idleTTL           time.Duration
	lastSweep         time.Time
	trustForwardedFor bool
	now               func() time.Time
}

// NewRateLimiter создает ограничитель: requestsPerSecond в среднем, burst подряд
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(requestsPerSecond),
		burst:    burst,
		idleTTL:  DefaultIdleTTL,
		now:      time.Now,
	}
}

// WithIdleTTL задает время жизни записи неактивного клиента
func (rl *RateLimiter) WithIdleTTL(ttl time.Duration) *RateLimiter {
	if ttl > 0 {
		rl.idleTTL = ttl
	}
	return rl
}

// WithTrustForwardedFor включает определение клиента по X-Forwarded-For.
// Включать только за доверенным прокси, иначе заголовок подделывается клиентом
func (rl *RateLimiter) WithTrustForwardedFor(trust bool) *RateLimiter {
	rl.trustForwardedFor = trust
	return rl
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	if v, ok := rl.visitors[key]; ok {
		v.lastSeen = now
		return v.limiter
	}
	v := &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst), lastSeen: now}
	rl.visitors[key] = v
	return v.limiter
}

// sweep удаляет клиентов, неактивных дольше idleTTL; выполняется не чаще раза в idleTTL
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.idleTTL {
		return
	}
	rl.lastSweep = now

	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) >= rl.idleTTL {
			delete(rl.visitors, key)
		}
	}
}

// Len количество отслеживаемых клиентов
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// Allow проверяет, можно ли обработать запрос клиента
func (rl *RateLimiter) Allow(key string) bool {
	return rl.limiter(key).Allow()
}

// Middleware отвечает 429, если клиент превысил лимит
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(rl.clientKey(r)) {
			handlers.RespondTooManyRequests(w, msgTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) clientKey(r *http.Request) string {
	if rl.trustForwardedFor {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			return strings.TrimSpace(strings.Split(fwd, ",")[0])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
