package file

import (
	"fmt"
	"os"
	"strconv"

	"github.com/melih-ucgun/converge/internal/core"
)

func init() {
	core.RegisterResource("file", newFile)
	core.RegisterResource("directory", newDirectory)
	core.RegisterResource("symlink", newSymlink)
	core.RegisterResource("absent", newAbsent)
}

func newFile(name string, params map[string]interface{}) (core.Resource, error) {
	f := At(pathParam(name, params))
	if content, ok := params["content"].(string); ok {
		f = f.ContainsString(content)
	}
	return withMode(f, params)
}

func newDirectory(name string, params map[string]interface{}) (core.Resource, error) {
	return withMode(At(pathParam(name, params)).IsDir(), params)
}

func newSymlink(name string, params map[string]interface{}) (core.Resource, error) {
	target, _ := params["target"].(string)
	if target == "" {
		return nil, fmt.Errorf("symlink %q requires a 'target' parameter", name)
	}
	return At(pathParam(name, params)).PointsTo(target), nil
}

func newAbsent(name string, params map[string]interface{}) (core.Resource, error) {
	return At(pathParam(name, params)).IsAbsent(), nil
}

// pathParam resolves the declared path, falling back to the resource name.
func pathParam(name string, params map[string]interface{}) string {
	if path, ok := params["path"].(string); ok && path != "" {
		return path
	}
	return name
}

// withMode applies an optional 'mode' parameter. Integers are taken as-is
// (write them as 0o755 in YAML); strings like "0755" are parsed as octal.
func withMode(f File, params map[string]interface{}) (core.Resource, error) {
	switch m := params["mode"].(type) {
	case nil:
		return f, nil
	case int:
		return f.WithMode(os.FileMode(m)), nil
	case string:
		parsed, err := strconv.ParseUint(m, 8, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid mode %q for %q: %w", m, f.path, err)
		}
		return f.WithMode(os.FileMode(parsed)), nil
	default:
		return nil, fmt.Errorf("invalid mode %v for %q", m, f.path)
	}
}
