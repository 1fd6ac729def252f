package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"taskBoard/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const RequestIdKey contextKey = "request_id"

func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get("X-Request-ID")
		if requestId == "" {
			requestId = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", requestId)

		ctx := context.WithValue(r.Context(), RequestIdKey, requestId)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIdKey).(string); ok {
		return id
	}
	return ""
}

type loggingWriter struct {
	http.ResponseWriter
	status      int
	size        int
	wroteHeader bool
}

func newLoggingWriter(w http.ResponseWriter) *loggingWriter {
	return &loggingWriter{ResponseWriter: w, status: http.StatusOK}
}

func (lw *loggingWriter) WriteHeader(code int) {
	if !lw.wroteHeader {
		lw.status = code
		lw.wroteHeader = true
		lw.ResponseWriter.WriteHeader(code)
	}
}

func (lw *loggingWriter) Write(b []byte) (int, error) {
	if !lw.wroteHeader {
		lw.WriteHeader(http.StatusOK)
	}

	n, err := lw.ResponseWriter.Write(b)
	lw.size += n
	return n, err
}

func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestId := GetRequestID(r.Context())

		logger.Info("HTTP_IN: request started",
			zap.String("request_id", requestId),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("query", r.URL.RawQuery),
			zap.String("client_ip", r.RemoteAddr),
		)

		lw := newLoggingWriter(w)
		next.ServeHTTP(lw, r)

		logLevel := zap.InfoLevel
		if lw.status >= 400 && lw.status < 500 {
			logLevel = zap.WarnLevel
		} else if lw.status >= 500 {
			logLevel = zap.ErrorLevel
		}
		logger.Log(logLevel, "HTTP_OUT: request finished",
			zap.String("request_id", requestId),
			zap.Int("status", lw.status),
			zap.Int("bytes_written", lw.size),
			zap.Duration("ms", time.Since(start)),
		)
	})
}

// Timeout bounds the request context. Handlers that give up on the expired
// context without writing get a 504.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := newLoggingWriter(w)
			next.ServeHTTP(tw, r.WithContext(ctx))

			if tw.wroteHeader || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return
			}

			requestId := GetRequestID(r.Context())
			logger.Warn("HTTP: request timed out",
				zap.String("request_id", requestId),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("client_ip", r.RemoteAddr),
				zap.Duration("timeout", timeout),
			)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusGatewayTimeout)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error":      "request timeout",
				"request_id": requestId,
			})
		})
	}
}

type clientInfo struct {
	count   int
	resetAt time.Time
}

// rateLimiter counts requests per client IP in fixed windows. Clients whose
// window has ended are dropped once per window.
type rateLimiter struct {
	mtx       sync.Mutex
	rpm       int
	window    time.Duration
	clients   map[string]*clientInfo
	nextSweep time.Time
	now       func() time.Time
}

func newRateLimiter(rpm int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		rpm:     rpm,
		window:  window,
		clients: make(map[string]*clientInfo),
		now:     time.Now,
	}
}

// allow records a request from ip. It returns the requests left in the
// window and when the window resets; ok is false when the limit is hit.
func (l *rateLimiter) allow(ip string) (remaining int, resetAt time.Time, ok bool) {
	now := l.now()

	l.mtx.Lock()
	defer l.mtx.Unlock()

	l.evictExpired(now)

	info, exists := l.clients[ip]
	if !exists || now.After(info.resetAt) {
		info = &clientInfo{
			count:   1,
			resetAt: now.Add(l.window),
		}
		l.clients[ip] = info
	} else {
		if info.count >= l.rpm {
			return 0, info.resetAt, false
		}
		info.count++
	}

	return max(l.rpm-info.count, 0), info.resetAt, true
}

func (l *rateLimiter) evictExpired(now time.Time) {
	if now.Before(l.nextSweep) {
		return
	}
	for ip, info := range l.clients {
		if now.After(info.resetAt) {
			delete(l.clients, ip)
		}
	}
	l.nextSweep = now.Add(l.window)
}

// RateLimit allows rpm requests per client IP in a fixed one minute window.
func RateLimit(rpm int) func(http.Handler) http.Handler {
	return newRateLimiter(rpm, time.Minute).middleware
}

func (l *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remaining, resetAt, ok := l.allow(getIp(r))

		if !ok {
			retryAfter := int(resetAt.Sub(l.now()).Seconds())

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.WriteHeader(http.StatusTooManyRequests)

			_ = json.NewEncoder(w).Encode(map[string]any{
				"error":       "too many requests, try again later",
				"retry_after": retryAfter,
				"request_id":  GetRequestID(r.Context()),
			})
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.rpm))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		next.ServeHTTP(w, r)
	})
}

func getIp(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
