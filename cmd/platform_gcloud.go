//go:build gcloud

package main

import (
	"context"
	"os"

	"github.com/KasumiMercury/primind-learning-planner/internal/config"
	"github.com/KasumiMercury/primind-learning-planner/internal/observability"
	"github.com/KasumiMercury/primind-learning-planner/internal/observability/logging"
)

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "learning-planner"
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT_ID")
	}

	obsCfg := observabilityConfig(cfg)
	obsCfg.ServiceInfo = logging.ServiceInfo{
		Name:     serviceName,
		Version:  Version,
		Revision: os.Getenv("K_REVISION"),
	}
	obsCfg.Environment = env
	obsCfg.GCPProjectID = projectID

	return observability.Init(ctx, obsCfg)
}
