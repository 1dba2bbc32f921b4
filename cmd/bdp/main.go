package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/BDP-team7/BDP-team7/runner"
)

// 配置文件默认路径；允许用首个参数覆盖（不是 flag，只是路径）。
const defaultConfigPath = "config.yaml"

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	path := defaultConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := runner.LoadConfig(path)
	if err != nil {
		logger.Fatal().Err(err).Str("config", path).Msg("load config")
	}

	r, err := runner.New(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("init runner")
	}
	defer r.Close()

	rep, err := r.Run(context.Background())
	if err != nil {
		logger.Fatal().Err(err).Msg("pipeline run failed")
	}
	rep.Render(os.Stdout)
}
