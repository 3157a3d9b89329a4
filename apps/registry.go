package apps

import (
	"fmt"
	"maps"
	"slices"
)

// App draws one frame per call to Frame and commits it.
type App interface {
	Frame() error
	Release()
}

type Factory func(env Env) (App, error)

func factory[A App](newApp func(Env) (A, error)) Factory {
	return func(env Env) (App, error) {
		app, err := newApp(env)
		if err != nil {
			return nil, err
		}

		return app, nil
	}
}

var registry = map[string]Factory{
	"triangle":  factory(NewTriangleApp),
	"quad":      factory(NewQuadApp),
	"cube":      factory(NewCubeApp),
	"noise":     factory(NewNoiseApp),
	"offscreen": factory(NewOffscreenApp),
}

// Names returns the names of all apps in alphabetical order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// New creates the app called name.
func New(name string, env Env) (App, error) {
	newApp, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown app %q, expected one of %v", name, Names())
	}

	app, err := newApp(env)
	if err != nil {
		return nil, fmt.Errorf("create app %q: %w", name, err)
	}

	return app, nil
}
