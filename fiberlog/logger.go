package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const requestMessage = "api request"

// collectFields runs the configured tag resolvers against the request.
// Empty string values are dropped to keep the JSON lines compact.
func collectFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields)
	for k, ft := range ftm {
		value := ft(c, d)
		strValue, ok := value.(string)
		if ok {
			if strValue != "" {
				f[k] = strValue
			}
		} else {
			f[k] = value
		}
	}
	return f
}

// New creates a new middleware handler. CORS preflight requests are
// not logged.
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) == 0 {
		cfg = ConfigDefault
	} else {
		cfg = config[0]
	}
	d := new(data)
	// Set PID once
	d.pid = os.Getpid()
	ftm := getFuncTagMap(cfg, d)
	return func(c *fiber.Ctx) error {
		d.start = time.Now()
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		switch cfg.Logger {
		case nil:
			log.WithFields(collectFields(ftm, c, d)).Info(requestMessage)
		default:
			entity := cfg.Logger.WithFields(collectFields(ftm, c, d))
			if c.Response() != nil && c.Response().StatusCode() >= fiber.StatusBadRequest {
				entity.Warn(requestMessage)
			} else {
				entity.Info(requestMessage)
			}
		}

		return err
	}
}
