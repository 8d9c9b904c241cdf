package pdf

import (
	"github.com/smallbiznis/leadflow/internal/invoice/render"
	"go.uber.org/fx"
)

var Module = fx.Module("providers.pdf",
	fx.Provide(func() render.Engine { return New() }),
)
