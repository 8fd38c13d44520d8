package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/osse101/lootforge/internal/logger"
)

type middleware = func(http.Handler) http.Handler

// AuthMiddleware rejects requests whose API key (header, or query parameter
// for EventSource clients) does not match apiKey. Public paths pass through.
// An empty apiKey disables authentication for local play.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) middleware {
	if apiKey == "" {
		slog.Warn(LogMsgAuthDisabled)
		return func(next http.Handler) http.Handler { return next }
	}
	want := []byte(apiKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			got := r.Header.Get(HeaderAPIKey)
			if got == "" {
				got = r.URL.Query().Get(QueryParamAPIKey)
			}
			if subtle.ConstantTimeCompare([]byte(got), want) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := extractIP(r, trustedProxies)
			detector.RecordFailedAuth(ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"ip", ip,
				"path", r.URL.Path,
				"has_key", got != "")
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SuspiciousActivityDetector counts failed logins and requests per client
// IP over a rolling rateWindow.
type SuspiciousActivityDetector struct {
	mu               sync.Mutex
	now              func() time.Time
	failedAuthByIP   map[string]int
	requestCountByIP map[string]int
	lastResetTime    time.Time
}

// NewSuspiciousActivityDetector creates a detector with empty counters
func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return newDetectorWithClock(time.Now)
}

func newDetectorWithClock(now func() time.Time) *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		now:              now,
		failedAuthByIP:   make(map[string]int),
		requestCountByIP: make(map[string]int),
		lastResetTime:    now(),
	}
}

// RecordFailedAuth counts a failed login and raises an alert once ip
// reaches failedAuthAlertThreshold
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollWindow()

	s.failedAuthByIP[ip]++
	if n := s.failedAuthByIP[ip]; n >= failedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
	}
}

// RecordRequest counts a request and reports whether ip is still within
// requestRateLimit for the current window
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollWindow()

	s.requestCountByIP[ip]++
	n := s.requestCountByIP[ip]
	if n <= requestRateLimit {
		return true
	}
	if n%rateAlertEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", n)
	}
	return false
}

// rollWindow clears every counter once rateWindow has elapsed. Callers hold mu.
func (s *SuspiciousActivityDetector) rollWindow() {
	if s.now().Sub(s.lastResetTime) <= rateWindow {
		return
	}
	clear(s.failedAuthByIP)
	clear(s.requestCountByIP)
	s.lastResetTime = s.now()
}

// SecurityLoggingMiddleware answers 429 to clients over the request rate limit
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is honoured only
// when the direct peer is a trusted proxy, and then its last hop is used.
func extractIP(r *http.Request, trustedProxies []string) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" || !isTrustedProxy(remote, trustedProxies) {
		return remote
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

func isTrustedProxy(ip string, trusted []string) bool {
	for _, proxy := range trusted {
		if proxy == ip {
			return true
		}
	}
	return false
}

// SecurityHeadersMiddleware sets the browser hardening headers
func SecurityHeadersMiddleware() middleware {
	headers := [][2]string{
		{HeaderContentType, HeaderValueNoSniff},
		{HeaderFrameOptions, HeaderValueSameOrigin},
		{HeaderXSSProtection, HeaderValueXSSBlock},
		{HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin},
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, h := range headers {
				w.Header().Set(h[0], h[1])
			}
			next.ServeHTTP(w, r)
		})
	}
}
