package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	modulehost "github.com/wippyai/module-host"
	"github.com/wippyai/module-host/host"
	"github.com/wippyai/module-host/perf"
	"github.com/wippyai/module-host/retain"
	"github.com/wippyai/module-host/wasmhost"
)

func main() {
	var (
		modulesDir  = flag.String("modules", "", "Directory of .wasm fast-path modules (name = file stem)")
		resolveName = flag.String("resolve", "", "Module name to resolve")
		method      = flag.String("method", "", "Method to invoke on the resolved module")
		argsStr     = flag.String("args", "", "Integer arguments, comma-separated")
		list        = flag.Bool("list", false, "List registered fast-path modules and exit")
		interactive = flag.Bool("i", false, "Interactive inspector TUI")
		debug       = flag.Bool("debug", false, "Log resolution events")
	)
	flag.Parse()

	if *resolveName == "" && !*list && !*interactive {
		fmt.Fprintln(os.Stderr, "Usage: modhost [-modules dir] -resolve <name> [-method name -args 1,2]")
		fmt.Fprintln(os.Stderr, "       modhost [-modules dir] -list")
		fmt.Fprintln(os.Stderr, "       modhost [-modules dir] -i  (interactive mode)")
		os.Exit(1)
	}

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		perf.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*modulesDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*modulesDir, *resolveName, *method, *argsStr, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// inlineInvoker is the CLI's stand-in for the runtime execution
// context: the process is single-threaded from the host's view.
type inlineInvoker struct{}

func (inlineInvoker) InvokeAsync(fn func()) { fn() }
func (inlineInvoker) InvokeSync(fn func())  { fn() }

// clockInstance is the demo managed-tier module.
type clockInstance struct{}

func (clockInstance) Now() string { return time.Now().Format(time.RFC3339) }

func (clockInstance) UnixMilli() int64 { return time.Now().UnixMilli() }

// echoLegacy is the demo legacy-tier module.
type echoLegacy struct{}

func (echoLegacy) Call(method string, args []any) (any, error) {
	return fmt.Sprintf("%s(%v)", method, args), nil
}

func (echoLegacy) Constants() map[string]any {
	return map[string]any{"tier": "legacy"}
}

// demoRegistry exposes the built-in legacy and managed demo modules.
type demoRegistry struct{}

func (demoRegistry) LegacyModule(name string) (modulehost.LegacyModule, bool) {
	if name == "Echo" {
		return echoLegacy{}, true
	}
	return nil, false
}

func (demoRegistry) ManagedInstance(name string) (any, bool) {
	if name == "Clock" {
		return &clockInstance{}, true
	}
	return nil, false
}

// session is a fully wired manager plus the provider it installed.
type session struct {
	delegate *wasmhost.Delegate
	manager  *host.Manager
	provider modulehost.ProviderFunc
	counts   *perf.Counts
}

type sessionBinder struct {
	provider modulehost.ProviderFunc
}

func (b *sessionBinder) BindModuleProvider(p modulehost.ProviderFunc) {
	b.provider = p
}

func newSession(ctx context.Context, modulesDir string) (*session, error) {
	delegate := wasmhost.New(ctx)

	if modulesDir != "" {
		if err := loadModules(ctx, delegate, modulesDir); err != nil {
			delegate.Close(ctx)
			return nil, err
		}
	}

	counts := perf.NewCounts()
	mgr, err := host.New(host.Config{
		Delegate:      delegate,
		Registry:      demoRegistry{},
		ScriptInvoker: inlineInvoker{},
		NativeInvoker: inlineInvoker{},
		Retention:     retain.StrategyScoped,
		Tracer:        perf.Multi{counts, perf.Log{}},
	})
	if err != nil {
		delegate.Close(ctx)
		return nil, err
	}

	binder := &sessionBinder{}
	err = mgr.Install(func(install func(modulehost.Binder)) {
		install(binder)
	})
	if err != nil {
		mgr.Close()
		delegate.Close(ctx)
		return nil, err
	}

	return &session{
		delegate: delegate,
		manager:  mgr,
		provider: binder.provider,
		counts:   counts,
	}, nil
}

func (s *session) close(ctx context.Context) {
	s.manager.Close()
	s.delegate.Close(ctx)
}

func loadModules(ctx context.Context, delegate *wasmhost.Delegate, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read modules dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".wasm" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("read module: %w", err)
		}
		name := strings.TrimSuffix(entry.Name(), ".wasm")
		if err := delegate.Register(ctx, name, data); err != nil {
			return err
		}
	}
	return nil
}

func run(modulesDir, resolveName, method, argsStr string, listOnly bool) error {
	ctx := context.Background()

	s, err := newSession(ctx, modulesDir)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	if listOnly {
		fmt.Println("Fast-path modules:")
		for _, name := range s.delegate.Names() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println("Built-in: Echo (legacy), Clock (managed)")
		return nil
	}

	mod, ok := s.provider(resolveName)
	if !ok {
		return fmt.Errorf("module %q not found", resolveName)
	}
	fmt.Printf("resolved %s\n", mod.Name())

	if method == "" {
		return nil
	}

	result, err := mod.Invoke(ctx, method, parseArgs(argsStr)...)
	if err != nil {
		return err
	}
	fmt.Printf("%s.%s = %v\n", mod.Name(), method, result)
	return nil
}

func parseArgs(argsStr string) []any {
	if argsStr == "" {
		return nil
	}

	parts := strings.Split(argsStr, ",")
	args := make([]any, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		n, err := strconv.ParseInt(p, 10, 32)
		if err != nil {
			// Not a number: pass through as a string.
			args = append(args, p)
			continue
		}
		args = append(args, int32(n))
	}
	return args
}
