package covenantfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sonirico/covenant"
)

func TestModuleProvidesRegistry(t *testing.T) {
	var registry *covenant.Registry

	app := fxtest.New(t,
		Module(),
		fx.Populate(&registry),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, registry)

	count := 0
	_, err := registry.On("started", func(...any) { count++ })
	require.NoError(t, err)
	registry.Signal("started")

	assert.Equal(t, 1, count)
}

func TestModuleClearsEventsOnStop(t *testing.T) {
	var registry *covenant.Registry

	app := fxtest.New(t,
		Module(),
		fx.Populate(&registry),
	)
	app.RequireStart()

	count := 0
	_, err := registry.On("a", func(...any) { count++ })
	require.NoError(t, err)
	_, err = registry.Once("b", func(...any) { count++ })
	require.NoError(t, err)

	app.RequireStop()

	registry.Signal("a").Signal("b")
	assert.Zero(t, count)
	assert.Empty(t, registry.Events())
}

func TestModuleUsesInjectedLoggerAndOptions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var registry *covenant.Registry

	app := fxtest.New(t,
		Module(),
		fx.Supply(zap.New(core)),
		AsOption(covenant.WithIDPrefix("app_")),
		fx.Populate(&registry),
	)
	app.RequireStart()
	defer app.RequireStop()

	id, err := registry.On("ready", func(...any) {})
	require.NoError(t, err)
	assert.Equal(t, covenant.ListenerID("app_1"), id)

	entries := logs.Filter(func(e observer.LoggedEntry) bool {
		return e.LoggerName == "covenant"
	}).FilterMessage("listener app_1 registered").AllUntimed()
	assert.Len(t, entries, 1)
}

func TestProvideRegistryWithoutDependencies(t *testing.T) {
	registry := ProvideRegistry(Params{})

	id, err := registry.On("x", func(...any) {})
	require.NoError(t, err)
	assert.Equal(t, covenant.ListenerID("cov_1"), id)
}
