package wasmhost

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero/api"

	modulehost "github.com/wippyai/module-host"
	"github.com/wippyai/module-host/errors"
)

// wasmModule exposes a wasm instance's exported functions through the
// common Module surface. Methods are exported function names; arguments
// and results cross the boundary as core wasm values.
type wasmModule struct {
	name     string
	instance api.Module
	script   modulehost.Invoker
}

func (m *wasmModule) Name() string {
	return m.name
}

func (m *wasmModule) Invoke(ctx context.Context, method string, args ...any) (any, error) {
	fn := m.instance.ExportedFunction(method)
	if fn == nil {
		return nil, errors.MethodNotFound(m.name, method)
	}

	params := make([]uint64, len(args))
	for i, arg := range args {
		v, err := encodeArg(arg)
		if err != nil {
			return nil, errors.TypeMismatch(m.name, method,
				fmt.Sprintf("argument %d: %v", i, err))
		}
		params[i] = v
	}

	results, err := fn.Call(ctx, params...)
	if err != nil {
		return nil, errors.Invocation(m.name, method, err)
	}

	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}

// encodeArg maps a Go value onto the core wasm value representation.
func encodeArg(arg any) (uint64, error) {
	switch v := arg.(type) {
	case int:
		return api.EncodeI64(int64(v)), nil
	case int32:
		return api.EncodeI32(v), nil
	case int64:
		return api.EncodeI64(v), nil
	case uint32:
		return uint64(v), nil
	case uint64:
		return v, nil
	case float32:
		return api.EncodeF32(v), nil
	case float64:
		return api.EncodeF64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("unsupported wasm argument type %T", arg)
	}
}
