package host

import (
	"context"
	"reflect"
	"unicode"
	"unicode/utf8"

	modulehost "github.com/wippyai/module-host"
	"github.com/wippyai/module-host/errors"
)

// Initializable is implemented by managed instances that want their
// init params (invokers, retention factory) at construction time.
type Initializable interface {
	Init(params modulehost.InitParams)
}

// managedModule adapts a managed-runtime instance to the common Module
// surface. Exported methods of the instance are dispatched by their
// script-side names: GetValue answers "getValue".
type managedModule struct {
	name     string
	instance any
	methods  map[string]reflect.Value
}

var (
	ctxType   = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType = reflect.TypeOf((*error)(nil)).Elem()
)

// NewManagedModule builds a Module around params.Instance. If the
// instance implements Initializable it receives params before any
// dispatch. Delegates use this as the default managed-tier module
// construction.
func NewManagedModule(params modulehost.InitParams) modulehost.Module {
	if init, ok := params.Instance.(Initializable); ok {
		init.Init(params)
	}

	rv := reflect.ValueOf(params.Instance)
	rt := rv.Type()

	methods := make(map[string]reflect.Value)
	for i := 0; i < rt.NumMethod(); i++ {
		method := rt.Method(i)
		if !method.IsExported() || method.Name == "Init" {
			continue
		}
		methods[scriptName(method.Name)] = rv.Method(i)
	}

	return &managedModule{
		name:     params.Name,
		instance: params.Instance,
		methods:  methods,
	}
}

func (m *managedModule) Name() string {
	return m.name
}

func (m *managedModule) Invoke(ctx context.Context, method string, args ...any) (any, error) {
	fn, ok := m.methods[method]
	if !ok {
		return nil, errors.MethodNotFound(m.name, method)
	}

	ft := fn.Type()
	in := make([]reflect.Value, 0, ft.NumIn())

	want := ft.NumIn()
	expected := want
	if want > 0 && ft.In(0) == ctxType {
		expected--
	}

	argIdx := 0
	for i := 0; i < want; i++ {
		pt := ft.In(i)

		if i == 0 && pt == ctxType {
			in = append(in, reflect.ValueOf(ctx))
			continue
		}

		if argIdx >= len(args) {
			return nil, errors.New(errors.PhaseInvoke, errors.KindTypeMismatch).
				Module(m.name).
				Method(method).
				Detail("expected %d args, got %d", expected, len(args)).
				Build()
		}

		av := reflect.ValueOf(args[argIdx])
		switch {
		case !av.IsValid():
			in = append(in, reflect.Zero(pt))
		case av.Type().AssignableTo(pt):
			in = append(in, av)
		case numericKind(av.Kind()) && numericKind(pt.Kind()) && av.Type().ConvertibleTo(pt):
			in = append(in, av.Convert(pt))
		default:
			return nil, errors.TypeMismatch(m.name, method,
				"argument "+av.Type().String()+" not assignable to "+pt.String())
		}
		argIdx++
	}

	if argIdx != len(args) {
		return nil, errors.New(errors.PhaseInvoke, errors.KindTypeMismatch).
			Module(m.name).
			Method(method).
			Detail("expected %d args, got %d", expected, len(args)).
			Build()
	}

	out := fn.Call(in)
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if ft.Out(0) == errorType {
			if err, _ := out[0].Interface().(error); err != nil {
				return nil, errors.Invocation(m.name, method, err)
			}
			return nil, nil
		}
		return out[0].Interface(), nil
	case 2:
		if err, _ := out[1].Interface().(error); err != nil {
			return nil, errors.Invocation(m.name, method, err)
		}
		return out[0].Interface(), nil
	default:
		return nil, errors.Unsupported(errors.PhaseInvoke,
			"methods may return at most (value, error)")
	}
}

// numericKind reports whether k is an integer or float kind. Argument
// conversion is limited to numeric widths; reflect would happily turn
// an int into a string via rune conversion otherwise.
func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// scriptName converts an exported Go method name to its script-side
// spelling by lowering the first rune: GetValue -> getValue.
func scriptName(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
