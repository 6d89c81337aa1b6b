//go:build !gcloud

package main

import (
	"context"
	"os"

	"github.com/KasumiMercury/primind-learning-planner/internal/config"
	"github.com/KasumiMercury/primind-learning-planner/internal/observability"
	"github.com/KasumiMercury/primind-learning-planner/internal/observability/logging"
)

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "learning-planner"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	obsCfg := observabilityConfig(cfg)
	obsCfg.ServiceInfo = logging.ServiceInfo{
		Name:     serviceName,
		Version:  Version,
		Revision: "",
	}
	obsCfg.Environment = env

	return observability.Init(ctx, obsCfg)
}
