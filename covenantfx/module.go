// Package covenantfx provides a covenant.Registry to go.uber.org/fx applications.
package covenantfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/sonirico/covenant"
)

// Params are the optional dependencies of the registry.
type Params struct {
	fx.In

	Logger  *zap.Logger       `optional:"true"`
	Options []covenant.Option `group:"covenant.options"`
}

// Module provides a *covenant.Registry. Every event is unregistered when the application stops.
func Module() fx.Option {
	return fx.Module("covenant",
		fx.Provide(ProvideRegistry),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideRegistry builds the application's registry. An injected zap logger is used for registry logs.
func ProvideRegistry(p Params) *covenant.Registry {
	opts := make([]covenant.Option, 0, len(p.Options)+1)
	if p.Logger != nil {
		opts = append(opts, covenant.WithLogger(covenant.NewZapLogger(p.Logger.Named("covenant").Sugar())))
	}
	opts = append(opts, p.Options...)

	return covenant.New(opts...)
}

// AsOption contributes a registry option through the "covenant.options" value group.
func AsOption(opt covenant.Option) fx.Option {
	return fx.Provide(fx.Annotate(
		func() covenant.Option { return opt },
		fx.ResultTags(`group:"covenant.options"`),
	))
}

func registerLifecycle(lc fx.Lifecycle, r *covenant.Registry) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			for _, name := range r.Events() {
				r.Unregister(name)
			}
			return nil
		},
	})
}
