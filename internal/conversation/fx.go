package conversation

import (
	"github.com/smallbiznis/leadflow/internal/assistant"
	"github.com/smallbiznis/leadflow/internal/conversation/domain"
	"github.com/smallbiznis/leadflow/internal/conversation/service"
	"github.com/smallbiznis/leadflow/internal/notification"
	"go.uber.org/fx"
)

var Module = fx.Module("conversation.service",
	fx.Provide(func(a *assistant.Assistant) domain.Writer { return a }),
	fx.Provide(func(n *notification.Service) domain.ColdMailer { return n }),
	fx.Provide(service.New),
)
