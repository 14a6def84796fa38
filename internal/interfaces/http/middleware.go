package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rs/zerolog"
	"github.com/unrolled/secure"

	"github.com/jhoicas/stockalert-api/internal/application/dto"
)

// SecurityHeaders cabeceras de seguridad para toda la app. En producción también
// redirige a HTTPS y envía HSTS.
func SecurityHeaders(production bool) fiber.Handler {
	mw := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLRedirect:        production,
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		STSSeconds:         31536000,
		IsDevelopment:      !production,
	})
	return adaptor.HTTPMiddleware(mw.Handler)
}

// RateLimit limita peticiones por IP en una ventana deslizante.
func RateLimit(requests int, window time.Duration) fiber.Handler {
	limiter := httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(dto.ErrorResponse{
				Code:    CodeTooManyRequests,
				Message: "demasiadas peticiones, intente más tarde",
			})
		}),
	)
	return adaptor.HTTPMiddleware(limiter)
}

// RequestLogger una línea por petición; 5xx a nivel error.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("http")
		return err
	}
}
