package envfile

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/muffin-cms/muffin/pkg/errors"
	"github.com/muffin-cms/muffin/pkg/logging"
)

var assignment = regexp.MustCompile(`^\s*(?:export\s+)?([A-Za-z_][A-Za-z0-9_.]*)\s*=`)

// Definition is the ordered set of variables a .env file declares.
type Definition struct {
	// Keys are in order of first appearance.
	Keys []string
	// Values hold the decoded default of each key; for duplicates the last
	// wins. ${VAR} references are kept as written.
	Values map[string]string
	// Raw holds each default exactly as it appears in the file, without
	// surrounding quotes or a trailing comment.
	Raw map[string]string
}

// Get returns the default value for key.
func (d Definition) Get(key string) (string, bool) {
	v, ok := d.Values[key]
	return v, ok
}

// Parse reads .env text into a Definition. Lines that are neither
// assignments, comments nor blank are skipped, as are assignments whose
// value cannot be decoded.
func Parse(content string) (Definition, error) {
	logger := logging.GetLogger("envfile")

	def := Definition{
		Values: map[string]string{},
		Raw:    map[string]string{},
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		m := assignment.FindStringSubmatch(line)
		if m == nil {
			logger.Debug().Int("line", lineNo).Msg("Skipping non-assignment line")
			continue
		}
		key := m[1]
		rest := line[len(m[0]):]

		value, err := decode(key, line, rest)
		if err != nil {
			logger.Debug().Err(err).Int("line", lineNo).Str("key", key).Msg("Skipping undecodable assignment")
			continue
		}

		if _, seen := def.Values[key]; !seen {
			def.Keys = append(def.Keys, key)
		}
		def.Values[key] = value
		def.Raw[key] = rawValue(rest)
	}
	if err := scanner.Err(); err != nil {
		return Definition{}, errors.Wrap(err, errors.ErrConfigParse, "failed to scan environment file")
	}

	return def, nil
}

// decode lets godotenv handle quoting and escapes for a single assignment.
// Dollar signs are escaped first so references are not expanded; single
// quoted values are never expanded and need no escaping.
func decode(key, line, rest string) (string, error) {
	if !strings.HasPrefix(strings.TrimLeft(rest, " \t"), "'") {
		line = strings.ReplaceAll(line, "$", `\$`)
	}
	values, err := godotenv.Unmarshal(line)
	if err != nil {
		return "", err
	}
	return values[key], nil
}

// rawValue returns the value text after "=" as written: quoted values
// without their quotes, unquoted values without a trailing " # comment".
func rawValue(rest string) string {
	rest = strings.TrimLeft(rest, " \t")
	if rest != "" && (rest[0] == '"' || rest[0] == '\'') {
		if end := strings.IndexByte(rest[1:], rest[0]); end >= 0 {
			return rest[1 : end+1]
		}
	}
	if i := strings.Index(rest, " #"); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimRight(rest, " \t\r")
}
