package middleware

import (
	"strings"
	"time"

	"flameo-chatbot/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// AccessRecorder receives one entry per served request.
type AccessRecorder interface {
	Record(entry models.AccessEntry)
}

var accessLogSkipPrefixes = []string{"/swagger", "/static", "/stats"}

// AccessLog records every request except the documentation, static and stats routes.
func AccessLog(recorder AccessRecorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		// Request values alias fasthttp buffers that are reused after the handler returns.
		path := utils.CopyString(c.Path())
		for _, prefix := range accessLogSkipPrefixes {
			if strings.HasPrefix(path, prefix) {
				return err
			}
		}

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		recorder.Record(models.AccessEntry{
			Time:      time.Now().UTC(),
			IP:        utils.CopyString(c.IP()),
			Method:    utils.CopyString(c.Method()),
			Path:      path,
			Status:    status,
			UserAgent: utils.CopyString(c.Get(fiber.HeaderUserAgent)),
		})
		return err
	}
}
