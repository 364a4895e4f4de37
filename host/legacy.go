package host

import (
	"context"

	modulehost "github.com/wippyai/module-host"
	"github.com/wippyai/module-host/errors"
)

// ConstantsMethod is the reserved method name the legacy adapter answers
// with the wrapped module's constants.
const ConstantsMethod = "getConstants"

// legacyAdapter exposes a legacy-shim module through the common Module
// surface.
type legacyAdapter struct {
	name   string
	legacy modulehost.LegacyModule
	script modulehost.Invoker
}

func newLegacyAdapter(name string, legacy modulehost.LegacyModule, script modulehost.Invoker) modulehost.Module {
	return &legacyAdapter{
		name:   name,
		legacy: legacy,
		script: script,
	}
}

func (a *legacyAdapter) Name() string {
	return a.name
}

func (a *legacyAdapter) Invoke(ctx context.Context, method string, args ...any) (any, error) {
	if method == ConstantsMethod {
		consts := a.legacy.Constants()
		if consts == nil {
			consts = map[string]any{}
		}
		return consts, nil
	}

	result, err := a.legacy.Call(method, args)
	if err != nil {
		return nil, errors.Invocation(a.name, method, err)
	}
	return result, nil
}
