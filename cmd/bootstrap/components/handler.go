package components

import (
	"authentithief/internal/handler"
	"authentithief/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProductHandler,
		api.NewVerifyHandler,
		api.NewScanHandler,
		func(p *api.ProductHandler, v *api.VerifyHandler, s *api.ScanHandler) handler.Handlers {
			return handler.Handlers{Products: p, Verify: v, Scans: s}
		},
	),
	fx.Invoke(handler.NewRouter),
)
