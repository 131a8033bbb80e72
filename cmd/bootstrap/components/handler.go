package components

import (
	"event-marketplace/internal/handler"
	"event-marketplace/internal/handler/api"
	"event-marketplace/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAgreementHandler,
		api.NewTemplateHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
