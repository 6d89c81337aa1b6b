package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-learning-planner/loadtest/internal/stub"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8090"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	stub.NewHandler(stub.NewRequestStorage()).Register(r)

	slog.Info("starting optimizer stub", slog.String("port", port))
	if err := r.Run(":" + port); err != nil {
		slog.Error("optimizer stub exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
