package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/pulsesearch/lyricml/v1/api"

// tracing continues the caller's trace (W3C headers) and opens a server
// span per request named after the matched route.
func tracing() gin.HandlerFunc {
	tracer := otel.Tracer(instrumentationName)
	return func(c *gin.Context) {
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		ctx, span := tracer.Start(ctx, c.Request.Method+" "+routeOf(c), trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", routeOf(c)),
			attribute.Int("http.status_code", status),
		)
		if len(c.Errors) > 0 {
			span.RecordError(c.Errors.Last().Err)
		}
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}

// requestMetrics counts requests and observes their latency per route.
func requestMetrics(m RequestMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		endpoint := routeOf(c)
		m.IncrementRequests(endpoint, strconv.Itoa(c.Writer.Status()))
		m.RecordRequestDuration(start, endpoint)
	}
}

// requestLogger writes one structured line per request.
func requestLogger(logger Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := map[string]interface{}{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
			"client_ip":   c.ClientIP(),
		}

		var err error
		if len(c.Errors) > 0 {
			err = c.Errors.Last().Err
		}
		ctx := c.Request.Context()
		switch {
		case status >= http.StatusInternalServerError:
			logger.ErrorWithContext(ctx, "Request failed", err, fields)
		case status >= http.StatusBadRequest:
			logger.WarnWithContext(ctx, "Request rejected", err, fields)
		default:
			logger.InfoWithContext(ctx, "Request served", nil, fields)
		}
	}
}

// recovery turns panics into 500 responses and logs them.
func recovery(logger Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		if logger != nil {
			logger.ErrorWithContext(c.Request.Context(), "Recovered from panic", fmt.Errorf("%v", recovered), map[string]interface{}{
				"path": c.Request.URL.Path,
			})
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Detail: ErrInternal})
	})
}

func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}
