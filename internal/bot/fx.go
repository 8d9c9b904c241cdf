package bot

import (
	"github.com/smallbiznis/leadflow/internal/assistant"
	"go.uber.org/fx"
)

var Module = fx.Module("bot",
	fx.Provide(func(a *assistant.Assistant) Replier { return a }),
	fx.Provide(New),
)
