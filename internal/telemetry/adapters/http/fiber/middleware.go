package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"telemetry-gateway/internal/platform/metrics"
	"telemetry-gateway/internal/platform/requestid"
)

var securityHeaders = [][2]string{
	{"Strict-Transport-Security", "max-age=31536000; includeSubDomains"},
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"X-XSS-Protection", "1; mode=block"},
	{"Referrer-Policy", "no-referrer-when-downgrade"},
	{"Content-Security-Policy", "default-src 'self';"},
	{"Permissions-Policy", "geolocation=(self)"},
	{"Access-Control-Allow-Origin", "*"},
	{"Access-Control-Allow-Methods", "GET"},
	{"Access-Control-Allow-Headers", "Content-Type"},
}

// SecurityHeaders sets the fixed header set before the chain runs, so error
// responses carry it too.
func SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, h := range securityHeaders {
			c.Set(h[0], h[1])
		}
		return c.Next()
	}
}

// RequestContext gives every request a user context that carries the
// request id and is canceled when the server shuts down or the request
// finishes, then logs and counts the request once its response is final.
func RequestContext(log zerolog.Logger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.GetRespHeader(fiber.HeaderXRequestID)
		if id == "" {
			id = c.Get(fiber.HeaderXRequestID)
		}

		// *fasthttp.RequestCtx is done once the server stops serving.
		ctx, cancel := context.WithCancel(c.Context())
		defer cancel()
		c.SetUserContext(requestid.With(ctx, id))

		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(http.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		route := c.Route().Path
		m.ObserveHTTP(c.Method(), route, strconv.Itoa(status))

		ev := log.Info()
		if status >= http.StatusInternalServerError {
			ev = log.Error()
		} else if status >= http.StatusBadRequest {
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", id).
			Msg("request")

		return nil
	}
}

// ErrorHandler renders errors that escaped the handlers (unknown routes,
// recovered panics) as JSON.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < http.StatusInternalServerError {
			return c.Status(fe.Code).JSON(ErrorResponse{Error: fe.Message})
		}

		log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: genericErrorMessage})
	}
}
