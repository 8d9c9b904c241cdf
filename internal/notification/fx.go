package notification

import (
	invoicedomain "github.com/smallbiznis/leadflow/internal/invoice/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("notification.service",
	fx.Provide(New),
	fx.Provide(func(s *Service) invoicedomain.Dispatcher { return s }),
)
