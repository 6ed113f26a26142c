package config

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of the application
// configuration.
type Model struct {
	// Context holds the typed seed entries for the application context
	// store, keyed by entry name.
	Context map[string]cty.Value

	// Server describes the HTTP serving surface. Nil when the
	// configuration does not declare one.
	Server *Server
}

// Server holds the settings of the HTTP surface.
type Server struct {
	Addr string
}

// ContextSeed converts the typed seed entries into native Go values for the
// context store.
func (m *Model) ContextSeed() (map[string]any, error) {
	seed := make(map[string]any, len(m.Context))
	for name, val := range m.Context {
		goVal, err := FromCtyValue(val)
		if err != nil {
			return nil, fmt.Errorf("context entry %q: %w", name, err)
		}
		seed[name] = goVal
	}
	return seed, nil
}

// FromCtyValue converts a cty.Value into its native Go equivalent. Numbers
// become int64 when whole, float64 otherwise; collections convert
// recursively.
func FromCtyValue(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString(), nil
	case ty == cty.Bool:
		return val.True(), nil
	case ty == cty.Number:
		bf := val.AsBigFloat()
		if i, acc := bf.Int64(); acc == 0 {
			return i, nil
		}
		f, _ := bf.Float64()
		return f, nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			goElem, err := FromCtyValue(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, goElem)
		}
		return out, nil
	case ty.IsMapType() || ty.IsObjectType():
		out := make(map[string]any)
		for it := val.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			goElem, err := FromCtyValue(elem)
			if err != nil {
				return nil, err
			}
			out[key.AsString()] = goElem
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}
