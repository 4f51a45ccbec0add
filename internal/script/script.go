// Package script runs Lua programs against a chance generator.
//
// Scripts see a global "chance" table whose functions mirror the generator
// (bool, integer, natural, floating, character, string, pickone, pickset,
// shuffle, weighted, normal, rpg) plus a few fake values (word, sentence,
// name, email, guid, ip, color, place). Option objects are Lua tables with
// the same keys as the Go option structs in snake case. Values passed to
// the global emit function are collected and returned by Run.
//
//	local who = chance.name({ gender = "female" })
//	emit({ name = who, roll = chance.rpg("3d6", { sum = true }) })
package script

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Shopify/go-lua"
	"go.uber.org/zap"

	"github.com/louisbranch/chance/internal/core/chance"
	"github.com/louisbranch/chance/internal/fake"
)

// Runner executes scripts. A Runner is single-use per Run call and is not
// safe for concurrent use.
type Runner struct {
	g       *chance.Generator
	faker   *fake.Faker
	logger  *zap.Logger
	ctx     context.Context
	results []any
	err     error
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger logs emitted values at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner returns a Runner drawing from g.
func NewRunner(g *chance.Generator, opts ...Option) *Runner {
	r := &Runner{g: g, faker: fake.New(g), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes source with a fresh Runner and returns the emitted values.
func Run(ctx context.Context, g *chance.Generator, source string) ([]any, error) {
	return NewRunner(g).Run(ctx, source)
}

// RunFile executes the script at path.
func RunFile(ctx context.Context, g *chance.Generator, path string, opts ...Option) ([]any, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return NewRunner(g, opts...).Run(ctx, string(source))
}

// Run executes source and returns the emitted values in order. An error
// raised by a generator function is returned unwrapped from the Lua error
// so callers can match it with errors.Is.
func (r *Runner) Run(ctx context.Context, source string) ([]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.ctx = ctx
	r.results = nil
	r.err = nil

	state := lua.NewState()
	lua.OpenLibraries(state)
	r.register(state)
	lua.SetDebugHook(state, r.interrupt, lua.MaskCount, hookInterval)

	if err := lua.LoadString(state, source); err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	if err := state.ProtectedCall(0, 0, 0); err != nil {
		if r.err != nil {
			return nil, r.err
		}
		return nil, fmt.Errorf("run script: %w", err)
	}
	return r.results, nil
}

// hookInterval is the number of VM instructions between context checks.
const hookInterval = 1000

// interrupt aborts the script once the run context is done, so pure Lua
// loops honor deadlines too.
func (r *Runner) interrupt(state *lua.State, _ lua.Debug) {
	if err := r.ctx.Err(); err != nil {
		r.err = err
		lua.Errorf(state, "%s", err.Error())
	}
}

// ErrBadArgument indicates a script passed an argument of the wrong shape.
var ErrBadArgument = errors.New("bad script argument")

func (r *Runner) register(state *lua.State) {
	state.NewTable()
	lua.SetFunctions(state, []lua.RegistryFunction{
		{Name: "bool", Function: r.wrap(r.boolFn)},
		{Name: "integer", Function: r.wrap(r.integerFn)},
		{Name: "natural", Function: r.wrap(r.naturalFn)},
		{Name: "floating", Function: r.wrap(r.floatingFn)},
		{Name: "character", Function: r.wrap(r.characterFn)},
		{Name: "string", Function: r.wrap(r.stringFn)},
		{Name: "pickone", Function: r.wrap(r.pickOneFn)},
		{Name: "pickset", Function: r.wrap(r.pickSetFn)},
		{Name: "shuffle", Function: r.wrap(r.shuffleFn)},
		{Name: "weighted", Function: r.wrap(r.weightedFn)},
		{Name: "normal", Function: r.wrap(r.normalFn)},
		{Name: "rpg", Function: r.wrap(r.rpgFn)},
		{Name: "word", Function: r.wrap(r.wordFn)},
		{Name: "sentence", Function: r.wrap(r.sentenceFn)},
		{Name: "name", Function: r.wrap(r.nameFn)},
		{Name: "email", Function: r.wrap(r.emailFn)},
		{Name: "guid", Function: r.wrap(r.guidFn)},
		{Name: "ip", Function: r.wrap(r.ipFn)},
		{Name: "color", Function: r.wrap(r.colorFn)},
		{Name: "place", Function: r.wrap(r.placeFn)},
	}, 0)
	state.SetGlobal("chance")

	state.Register("emit", r.emit)
}

// wrap turns a Go error into a Lua error and remembers the Go error for Run.
func (r *Runner) wrap(fn func(*lua.State) (any, error)) lua.Function {
	return func(state *lua.State) int {
		if err := r.ctx.Err(); err != nil {
			r.err = err
			lua.Errorf(state, "%s", err.Error())
			return 0
		}
		value, err := fn(state)
		if err != nil {
			r.err = err
			lua.Errorf(state, "%s", err.Error())
			return 0
		}
		pushValue(state, value)
		return 1
	}
}

func (r *Runner) emit(state *lua.State) int {
	value := luaToGo(state, 1)
	r.logger.Debug("script emitted value", zap.Any("value", value))
	r.results = append(r.results, value)
	return 0
}
