package providers

import (
	"github.com/smallbiznis/leadflow/internal/providers/email"
	"github.com/smallbiznis/leadflow/internal/providers/llm"
	"github.com/smallbiznis/leadflow/internal/providers/pdf"
	"github.com/smallbiznis/leadflow/internal/providers/telegram"
	"go.uber.org/fx"
)

var Module = fx.Module("providers",
	email.Module,
	llm.Module,
	pdf.Module,
	telegram.Module,
)
