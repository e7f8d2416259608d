// Command dingtalk-mcp serves the DingTalk directory tools over MCP stdio.
package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/user/dingtalk-mcp/pkg/config"
	"github.com/user/dingtalk-mcp/pkg/dingtalk"
	applog "github.com/user/dingtalk-mcp/pkg/log"
	"github.com/user/dingtalk-mcp/pkg/registry"
	"github.com/user/dingtalk-mcp/pkg/server"
	"github.com/user/dingtalk-mcp/pkg/tool"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	// A .env file is optional; real deployments set the environment directly.
	godotenv.Load()

	cfg := config.FromEnv()
	if err := applog.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		logrus.Fatalf("log setup: %v", err)
	}

	client := dingtalk.NewClient(dingtalk.Options{
		BaseURL:  cfg.BaseURL,
		TokenTTL: cfg.TokenTTL,
		Logger:   logrus.StandardLogger(),
	})

	reg := registry.New(
		tool.NewAccessTokenTool(client),
		tool.NewDepartmentListTool(client),
		tool.NewDepartmentUsersTool(client),
		tool.NewUserDetailTool(client),
		tool.NewSearchUserTool(client),
	)

	logrus.WithFields(logrus.Fields{
		"version":     version,
		"tools":       len(reg.ListTools()),
		"token_cache": cfg.TokenTTL > 0,
	}).Info("starting DingTalk MCP server on stdio")

	if err := server.ServeStdio(server.New(reg, version)); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
