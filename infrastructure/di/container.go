package di

import (
	"anniversary-backend/application/frames"
	"anniversary-backend/application/ports"
	"anniversary-backend/application/resolver"
	"anniversary-backend/infrastructure/config"
	"anniversary-backend/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	SocialGraph  ports.SocialGraphClient
	NameRegistry ports.NameRegistry
	Cache        ports.ProfileCache
	Resolver     *resolver.Resolver
	Renderer     ports.ImageRenderer
	FrameBuilder *frames.Builder
	Metrics      *observability.Metrics
}
