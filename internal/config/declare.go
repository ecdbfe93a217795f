package config

import (
	"fmt"

	"github.com/melih-ucgun/converge/internal/core"
)

// Declare ensures every manifest resource into the given ensurer, in manifest
// order. Per item it evaluates the when-guard, renders templated parameters
// and builds the resource through the kind registry. Declaration order plus
// each resource's implicit prerequisites determine realization order.
func Declare(cfg *Config, ctx *core.SystemContext, ens core.Ensurer) error {
	data := templateData(ctx, cfg.Vars)

	for _, item := range cfg.Resources {
		if item.When != "" {
			ok, err := core.EvaluateCondition(item.When, ctx)
			if err != nil {
				return fmt.Errorf("resource %q: %w", item.Name, err)
			}
			if !ok {
				ctx.Logger.Debug("skipped by condition", "resource", item.Name, "when", item.When)
				continue
			}
		}

		params, err := renderParams(item.Params, data)
		if err != nil {
			return fmt.Errorf("resource %q: %w", item.Name, err)
		}

		res, err := core.CreateResource(item.Kind, item.Name, params)
		if err != nil {
			return fmt.Errorf("resource %q: %w", item.Name, err)
		}

		if err := ens.Ensure(res); err != nil {
			return fmt.Errorf("resource %q: %w", item.Name, err)
		}
	}

	return nil
}

// templateData exposes manifest vars and system facts to parameter templates.
func templateData(ctx *core.SystemContext, vars map[string]string) map[string]interface{} {
	return map[string]interface{}{
		"vars":     vars,
		"os":       ctx.OS,
		"hostname": ctx.Hostname,
		"user":     ctx.User,
		"home":     ctx.HomeDir,
	}
}

// renderParams walks the parameter tree and renders every string value as a
// template. The input maps are never mutated; manifests stay reusable.
func renderParams(params map[string]interface{}, data map[string]interface{}) (map[string]interface{}, error) {
	if params == nil {
		return nil, nil
	}

	out := make(map[string]interface{}, len(params))
	for k, v := range params {
		rendered, err := renderValue(v, data)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", k, err)
		}
		out[k] = rendered
	}
	return out, nil
}

func renderValue(v interface{}, data map[string]interface{}) (interface{}, error) {
	switch val := v.(type) {
	case string:
		return core.ExecuteTemplate(val, data)
	case map[string]interface{}:
		return renderParams(val, data)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			rendered, err := renderValue(item, data)
			if err != nil {
				return nil, err
			}
			out[i] = rendered
		}
		return out, nil
	default:
		return v, nil
	}
}
