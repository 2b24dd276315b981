package catalog

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/witbench/witbench/internal/wit"
)

// Metadata-service wire shape for a component document:
//
//	{
//	  "name": "shopping-cart",
//	  "version": "0.3.1",
//	  "exports": [
//	    {
//	      "name": "add-item",
//	      "parameters": [{"name": "item", "typ": {...}}],
//	      "results": [{"typ": {...}}]
//	    }
//	  ]
//	}

type componentWire struct {
	Name    string         `json:"name"`
	Version string         `json:"version"`
	Exports []functionWire `json:"exports"`
}

type functionWire struct {
	Name       string       `json:"name"`
	Parameters []paramWire  `json:"parameters"`
	Results    []resultWire `json:"results"`
}

type paramWire struct {
	Name string          `json:"name"`
	Typ  json.RawMessage `json:"typ"`
}

type resultWire struct {
	Typ json.RawMessage `json:"typ"`
}

// DecodeComponentJSON parses a component metadata document. Type trees are
// validated for duplicate field and case names as they decode.
func DecodeComponentJSON(data []byte) (Component, error) {
	var w componentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return Component{}, fmt.Errorf("decode component: %w", err)
	}

	c := Component{
		Name:    w.Name,
		Version: w.Version,
		Exports: make([]Function, len(w.Exports)),
	}
	for i, fw := range w.Exports {
		fn, err := decodeFunction(fw)
		if err != nil {
			return Component{}, fmt.Errorf("export %q: %w", fw.Name, err)
		}
		c.Exports[i] = fn
	}
	return c, nil
}

// DecodeComponentYAML parses the same document authored as YAML. The value
// is bridged through JSON so both formats share one decode path.
func DecodeComponentYAML(data []byte) (Component, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Component{}, fmt.Errorf("decode component yaml: %w", err)
	}

	bridged, err := json.Marshal(raw)
	if err != nil {
		return Component{}, fmt.Errorf("decode component yaml: %w", err)
	}
	return DecodeComponentJSON(bridged)
}

func decodeFunction(fw functionWire) (Function, error) {
	fn := Function{
		Name:   fw.Name,
		Params: make([]Param, len(fw.Parameters)),
	}

	for i, pw := range fw.Parameters {
		typ, err := wit.UnmarshalTyp(pw.Typ)
		if err != nil {
			return Function{}, fmt.Errorf("parameter %q: %w", pw.Name, err)
		}
		fn.Params[i] = Param{Name: pw.Name, Typ: typ}
	}

	for i, rw := range fw.Results {
		typ, err := wit.UnmarshalTyp(rw.Typ)
		if err != nil {
			return Function{}, fmt.Errorf("result %d: %w", i, err)
		}
		fn.Results = append(fn.Results, typ)
	}

	return fn, nil
}
