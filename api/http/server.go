package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/artem13815/resumeflow/api/http/presenter"
	"github.com/artem13815/resumeflow/pkg/logging"
)

// multipart framing on top of the file itself
const bodyOverhead = 1 << 20

// NewApp builds the Fiber app with the middleware stack every route shares.
func NewApp(uploadMaxBytes int64, log *logging.Logger) *fiber.App {
	log = logging.OrNop(log).Named("http")
	app := fiber.New(fiber.Config{
		AppName:               "resumeflow",
		BodyLimit:             int(uploadMaxBytes) + bodyOverhead,
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		ErrorHandler:          errorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New())
	app.Use(requestLogger(log))
	return app
}

// errorHandler covers errors raised outside handlers (routing, body limit, panics).
func errorHandler(log *logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		msg := "internal error"
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status, msg = fe.Code, fe.Message
		}
		if status == fiber.StatusRequestEntityTooLarge {
			status, msg = fiber.StatusBadRequest, "file too large"
		}
		if status >= fiber.StatusInternalServerError {
			log.Error("http.unhandled", "path", c.Path(), "err", err)
		}
		return presenter.Error(c, status, msg)
	}
}

func requestLogger(log *logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}
		log.Info("http.request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return err
	}
}
