package answers

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/muffin-cms/muffin/pkg/errors"
	"github.com/muffin-cms/muffin/pkg/logging"
	"github.com/muffin-cms/muffin/pkg/types"
)

// parserFor picks a koanf parser from the file extension.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported answers file format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// Load reads an answers file. Nested tables are flattened into dotted keys
// so every answer is addressable by a single string.
func Load(path string) (types.Answers, error) {
	logger := logging.GetLogger("answers")

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to read answers from %s", path).
			WithDetail("path", path)
	}

	out := types.Answers(k.All())
	logger.Debug().Str("path", path).Int("count", len(out)).Msg("Loaded answers file")
	return out, nil
}

// ParseAssignments turns key=value strings into answers. The values
// "true" and "false" become booleans; everything else stays a string.
func ParseAssignments(assignments []string) (types.Answers, error) {
	out := make(types.Answers, len(assignments))
	for _, a := range assignments {
		key, value, ok := strings.Cut(a, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "answer %q is not in key=value form", a)
		}
		out[key] = coerce(value)
	}
	return out, nil
}

func coerce(value string) interface{} {
	switch strings.ToLower(value) {
	case "true", "false":
		b, _ := strconv.ParseBool(value)
		return b
	}
	return value
}

// Merge layers the given answer sets left to right into a new set.
func Merge(sets ...types.Answers) types.Answers {
	out := make(types.Answers)
	for _, set := range sets {
		for k, v := range set {
			out[k] = v
		}
	}
	return out
}
