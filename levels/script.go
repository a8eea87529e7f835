package levels

import (
	"encoding/json"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"
)

// RunScript executes a tengo layout script and returns the records left in
// its global `items` array. Scripts get the tengo stdlib plus a helper
//
//	item(t, x, y [, params])
//
// that builds one record map.
func RunScript(src []byte, log *zap.Logger) (ItemList, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("item", &tengo.UserFunction{Name: "item", Value: scriptItem}); err != nil {
		return nil, err
	}

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("levels: run script: %w", err)
	}
	if !compiled.IsDefined("items") {
		return nil, fmt.Errorf("levels: script does not define items")
	}

	data, err := json.Marshal(compiled.Get("items").Value())
	if err != nil {
		return nil, fmt.Errorf("levels: encode script items: %w", err)
	}
	return Deserialize(data, log)
}

func scriptItem(args ...tengo.Object) (tengo.Object, error) {
	if len(args) < 3 || len(args) > 4 {
		return nil, tengo.ErrWrongNumArguments
	}
	tag, ok := args[0].(*tengo.String)
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "t", Expected: "string", Found: args[0].TypeName()}
	}
	rec := &tengo.Map{Value: map[string]tengo.Object{
		"t": tag,
		"x": args[1],
		"y": args[2],
	}}
	if len(args) == 4 {
		params, ok := args[3].(*tengo.Map)
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "params", Expected: "map", Found: args[3].TypeName()}
		}
		for k, v := range params.Value {
			if k == "t" || k == "x" || k == "y" {
				continue
			}
			rec.Value[k] = v
		}
	}
	return rec, nil
}
