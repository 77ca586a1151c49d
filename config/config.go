// Package config loads converter option documents.
//
// An option document is a YAML or JSON mapping such as
//
//	rings: true
//	branches: true
//
// It may be overlaid by an RFC 6902 JSON Patch read from a file and then by
// the value of $DSMI_OPTIONS, which holds either a patch (a sequence) or a
// mapping whose keys replace those of the document.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"

	"github.com/baoilleach/deepsmiles"
	"github.com/baoilleach/deepsmiles/debug"
)

const (
	EnvOptions = "DSMI_OPTIONS"
)

var ErrDocType = errors.New("option document must be a mapping")

// Sources names where options come from. Empty fields are skipped.
type Sources struct {
	File  string
	Patch string
	// Env is the option overlay, normally os.Getenv(EnvOptions).
	Env string
}

// FromEnv returns Sources with Env taken from $DSMI_OPTIONS.
func FromEnv(file, patch string) Sources {
	return Sources{File: file, Patch: patch, Env: os.Getenv(EnvOptions)}
}

// Options resolves the sources into an option map.
func (s Sources) Options() (map[string]any, error) {
	opts := map[string]any{}
	if s.File != "" {
		d, err := os.ReadFile(s.File)
		if err != nil {
			return nil, err
		}
		opts, err = Parse(d)
		if err != nil {
			return nil, fmt.Errorf("error reading options from %s: %w", s.File, err)
		}
	}
	if s.Patch != "" {
		d, err := os.ReadFile(s.Patch)
		if err != nil {
			return nil, err
		}
		opts, err = ApplyPatch(opts, d)
		if err != nil {
			return nil, fmt.Errorf("error applying patch %s: %w", s.Patch, err)
		}
	}
	if s.Env != "" {
		var err error
		opts, err = Overlay(opts, []byte(s.Env))
		if err != nil {
			return nil, fmt.Errorf("error decoding env $%s: %w", EnvOptions, err)
		}
	}
	if debug.Config() {
		debug.Logf("resolved options: %s\n", opts)
	}
	return opts, nil
}

// Converter resolves the sources and builds a converter from them.
func (s Sources) Converter() (*deepsmiles.Converter, error) {
	opts, err := s.Options()
	if err != nil {
		return nil, err
	}
	return deepsmiles.FromOptions(opts)
}

// Parse decodes a YAML or JSON option document. An empty document is an
// empty mapping.
func Parse(d []byte) (map[string]any, error) {
	var v any
	if err := unmarshal(d, &v); err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return x, nil
	default:
		return nil, fmt.Errorf("%w, got %T", ErrDocType, v)
	}
}

// ApplyPatch applies a JSON Patch, given in JSON or YAML, to opts.
func ApplyPatch(opts map[string]any, patch []byte) (map[string]any, error) {
	var ops any
	if err := unmarshal(patch, &ops); err != nil {
		return nil, err
	}
	return applyOps(opts, ops)
}

// unmarshal decodes JSON with encoding/json and anything else as YAML.
func unmarshal(d []byte, v any) error {
	if json.Valid(d) {
		return json.Unmarshal(d, v)
	}
	return yaml.Unmarshal(d, v)
}

// Overlay applies an overlay which is either a JSON Patch or a mapping.
func Overlay(opts map[string]any, d []byte) (map[string]any, error) {
	var v any
	if err := unmarshal(d, &v); err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case nil:
		return opts, nil
	case []any:
		return applyOps(opts, x)
	case map[string]any:
		res := make(map[string]any, len(opts)+len(x))
		for k, v := range opts {
			res[k] = v
		}
		for k, v := range x {
			res[k] = v
		}
		return res, nil
	default:
		return nil, fmt.Errorf("overlay must be a patch or a mapping, got %T", v)
	}
}

func applyOps(opts map[string]any, ops any) (map[string]any, error) {
	pd, err := json.Marshal(ops)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, err
	}
	doc, err := json.Marshal(opts)
	if err != nil {
		return nil, err
	}
	doc, err = patch.Apply(doc)
	if err != nil {
		return nil, err
	}
	var res map[string]any
	if err := json.Unmarshal(doc, &res); err != nil {
		return nil, err
	}
	if res == nil {
		res = map[string]any{}
	}
	return res, nil
}
