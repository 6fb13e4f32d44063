package handler

import (
	"pinboard/internal/app/message"
	"pinboard/internal/app/session"
	"pinboard/internal/app/user"
	"pinboard/internal/configs"
	"pinboard/internal/pkg/metrics"
)

type AppDeps struct {
	Config   *configs.AppConfig
	Users    *user.Registry
	Messages *message.Repository
	Sessions *session.Manager
	Metrics  *metrics.Metrics
}
