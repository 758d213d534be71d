package system

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/encounter/prefabs"
)

// fireScripts caches compiled tengo fire scripts by file name.
type fireScripts struct {
	compiled map[string]*tengo.Compiled
}

const fireDispatchScript = `
fire(__engine)
`

func newFireScripts() *fireScripts {
	return &fireScripts{compiled: map[string]*tengo.Compiled{}}
}

func scriptKey(path string) string {
	return filepath.Base(path)
}

func compileFireScript(scriptBytes []byte) (*tengo.Compiled, error) {
	src := string(scriptBytes) + "\n" + fireDispatchScript
	script := tengo.NewScript([]byte(src))
	_ = script.Add("__engine", map[string]any{})

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}

func (f *fireScripts) get(path string) (*tengo.Compiled, error) {
	key := scriptKey(path)
	if c, ok := f.compiled[key]; ok {
		return c, nil
	}

	scriptBytes, err := prefabs.LoadScript(key)
	if err != nil {
		return nil, fmt.Errorf("fire script %s: load: %w", key, err)
	}
	compiled, err := compileFireScript(scriptBytes)
	if err != nil {
		return nil, fmt.Errorf("fire script %s: %w", key, err)
	}
	f.compiled[key] = compiled
	return compiled, nil
}

// Reload recompiles the script at path. A version that fails to load or
// compile is rejected and the cached one keeps running; a script that has
// not run yet falls back to its embedded copy.
func (f *fireScripts) Reload(path string) error {
	key := scriptKey(path)
	scriptBytes, err := prefabs.LoadScript(key)
	if err == nil {
		var compiled *tengo.Compiled
		if compiled, err = compileFireScript(scriptBytes); err == nil {
			f.compiled[key] = compiled
			return nil
		}
	}

	if _, ok := f.compiled[key]; !ok {
		if shipped, embedErr := prefabs.LoadEmbeddedScript(key); embedErr == nil {
			if compiled, compileErr := compileFireScript(shipped); compileErr == nil {
				f.compiled[key] = compiled
			}
		}
	}
	return fmt.Errorf("fire script %s: %w", key, err)
}

// Fire runs the script's fire(engine) function for one shot.
func (f *fireScripts) Fire(ctx *FireContext, path string) error {
	compiled, err := f.get(path)
	if err != nil {
		return err
	}
	if err := compiled.Set("__engine", buildFireEngine(ctx)); err != nil {
		return fmt.Errorf("fire script %s: %w", path, err)
	}
	if err := compiled.Run(); err != nil {
		return fmt.Errorf("fire script %s: run: %w", path, err)
	}
	return nil
}

func buildFireEngine(ctx *FireContext) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["spawn_shot"] = &tengo.UserFunction{Name: "spawn_shot", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		heading, ok := tengo.ToFloat64(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "heading", Expected: "float", Found: args[0].TypeName()}
		}
		if err := ctx.SpawnShot(heading); err != nil {
			return nil, err
		}
		return tengo.TrueValue, nil
	}}

	values["heading"] = &tengo.UserFunction{Name: "heading", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: ctx.Transform.RotationY}, nil
	}}

	values["aim_heading"] = &tengo.UserFunction{Name: "aim_heading", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: ctx.AimHeading()}, nil
	}}

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		p := ctx.Position()
		return vecToArray(p.X, p.Y, p.Z), nil
	}}

	values["player_position"] = &tengo.UserFunction{Name: "player_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if !ctx.PlayerFound {
			return tengo.UndefinedValue, nil
		}
		return vecToArray(ctx.Player.X, ctx.Player.Y, ctx.Player.Z), nil
	}}

	values["shot_index"] = &tengo.UserFunction{Name: "shot_index", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(ctx.ShotIndex)}, nil
	}}

	values["shots_left"] = &tengo.UserFunction{Name: "shots_left", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(ctx.ShotsLeft())}, nil
	}}

	values["type"] = &tengo.String{Value: strings.TrimSpace(ctx.Tuning.Type)}

	return &tengo.ImmutableMap{Value: values}
}

func vecToArray(x, y, z float64) *tengo.Array {
	return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: x}, &tengo.Float{Value: y}, &tengo.Float{Value: z}}}
}
