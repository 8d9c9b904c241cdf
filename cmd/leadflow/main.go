package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/leadflow/internal/assistant"
	"github.com/smallbiznis/leadflow/internal/bot"
	"github.com/smallbiznis/leadflow/internal/clock"
	"github.com/smallbiznis/leadflow/internal/config"
	"github.com/smallbiznis/leadflow/internal/conversation"
	"github.com/smallbiznis/leadflow/internal/invoice"
	"github.com/smallbiznis/leadflow/internal/lead"
	"github.com/smallbiznis/leadflow/internal/notification"
	"github.com/smallbiznis/leadflow/internal/observability"
	"github.com/smallbiznis/leadflow/internal/persistence"
	"github.com/smallbiznis/leadflow/internal/providers"
	"github.com/smallbiznis/leadflow/internal/ratelimit"
	"github.com/smallbiznis/leadflow/internal/server"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),

		// Core Infrastructure
		config.Module,
		observability.Module,
		clock.Module,
		fx.Provide(RegisterSnowflake),
		providers.Module,
		persistence.Module,
		ratelimit.Module,

		// Functional Domains
		notification.Module,
		assistant.Module,
		invoice.Module,
		lead.Module,
		conversation.Module,
		bot.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
