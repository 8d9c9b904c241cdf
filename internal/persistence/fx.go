package persistence

import (
	convdomain "github.com/smallbiznis/leadflow/internal/conversation/domain"
	leaddomain "github.com/smallbiznis/leadflow/internal/lead/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("persistence",
	fx.Provide(NewStore),
	fx.Provide(func(s *Store) leaddomain.Repository { return s }),
	fx.Provide(func(s *Store) convdomain.Repository { return s }),
)
