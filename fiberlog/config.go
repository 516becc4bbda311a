package fiberlog

import "github.com/sirupsen/logrus"

// Config is config for middleware
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault is the default config. The authenticated user id is
// included so request logs line up with the workflow audit history.
var ConfigDefault Config = Config{
	Logger: nil,
	Tags: []string{
		TagMethod,
		TagPath,
		TagStatus,
		TagLatency,
		TagIP,
		TagUserID,
	},
}
