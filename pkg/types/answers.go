package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Well-known answer keys
const (
	AnswerSkipData   = "skipData"
	AnswerSkipNpm    = "skipNpm"
	AnswerDBHost     = "db_host"
	AnswerDBName     = "db_name"
	AnswerDBUser     = "db_user"
	AnswerDBPassword = "db_password"
)

// Answers maps question keys to the values collected from the user.
// Values are strings or booleans.
type Answers map[string]interface{}

// Clone returns a shallow copy so a run never observes later mutation by
// the caller.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// String returns the answer for key rendered as a string, or "" if absent.
func (a Answers) String(key string) string {
	v, ok := a[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// Bool returns the answer for key as a boolean. Strings are accepted in
// any form strconv.ParseBool understands; anything else is false.
func (a Answers) Bool(key string) bool {
	switch val := a[key].(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		return err == nil && b
	default:
		return false
	}
}

// SkipData reports whether the sample data phase should be skipped.
func (a Answers) SkipData() bool { return a.Bool(AnswerSkipData) }

// SkipNpm reports whether dependency installation should be skipped.
func (a Answers) SkipNpm() bool { return a.Bool(AnswerSkipNpm) }
