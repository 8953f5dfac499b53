package di

import (
	"context"

	"anniversary-backend/application/frames"
	"anniversary-backend/application/ports"
	"anniversary-backend/application/resolver"
	"anniversary-backend/infrastructure/airstack"
	"anniversary-backend/infrastructure/config"
	"anniversary-backend/infrastructure/fnames"
	dynamocache "anniversary-backend/infrastructure/persistence/dynamodb"
	"anniversary-backend/infrastructure/render"
	"anniversary-backend/pkg/observability"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideMetrics registers the metric set on the default registry
func ProvideMetrics() *observability.Metrics {
	return observability.NewMetrics(prometheus.DefaultRegisterer)
}

// ProvideSocialGraphClient creates the Airstack client
func ProvideSocialGraphClient(cfg *config.Config, metrics *observability.Metrics, logger *zap.Logger) ports.SocialGraphClient {
	return airstack.NewClient(cfg.AirstackAPIURL, cfg.AirstackAPIKey, cfg.UpstreamTimeout, metrics, logger)
}

// ProvideNameRegistry creates the fname registry client
func ProvideNameRegistry(cfg *config.Config, metrics *observability.Metrics, logger *zap.Logger) ports.NameRegistry {
	return fnames.NewClient(cfg.FnameRegistryURL, cfg.UpstreamTimeout, metrics, logger)
}

// ProvideProfileCache selects the configured cache backend. A nil cache
// disables caching entirely; resolution stays correct either way.
func ProvideProfileCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ports.ProfileCache, error) {
	switch cfg.CacheBackend {
	case config.CacheBackendMemory:
		return NewInMemoryProfileCache(), nil
	case config.CacheBackendDynamoDB:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, err
		}
		client := awsdynamodb.NewFromConfig(awsCfg)
		return dynamocache.NewProfileCache(client, cfg.DynamoDBTable, logger), nil
	default:
		return nil, nil
	}
}

// ProvideResolver creates the user data resolver
func ProvideResolver(
	social ports.SocialGraphClient,
	registry ports.NameRegistry,
	cache ports.ProfileCache,
	cfg *config.Config,
	logger *zap.Logger,
) *resolver.Resolver {
	return resolver.New(social, registry, cache, cfg.CacheTTL, cfg.UpstreamTimeout, logger)
}

// ProvideRenderer creates the card URL renderer
func ProvideRenderer(cfg *config.Config) ports.ImageRenderer {
	return render.NewURLRenderer(cfg.AppURL)
}

// ProvideFrameBuilder creates the frame response builder
func ProvideFrameBuilder(
	res *resolver.Resolver,
	renderer ports.ImageRenderer,
	cfg *config.Config,
	logger *zap.Logger,
) *frames.Builder {
	return frames.NewBuilder(res, renderer, cfg.AppURL, nil, logger)
}
