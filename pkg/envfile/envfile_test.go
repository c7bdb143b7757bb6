package envfile_test

import (
	"strings"
	"testing"

	"github.com/muffin-cms/muffin/pkg/envfile"
	"github.com/muffin-cms/muffin/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# Database
DB_HOST=localhost
DB_NAME=muffin

# Sessions
SESSION_SECRET=changeme
PORT=2000
`

func TestParse(t *testing.T) {
	def, err := envfile.Parse(sample)
	require.NoError(t, err)

	assert.Equal(t, []string{"DB_HOST", "DB_NAME", "SESSION_SECRET", "PORT"}, def.Keys)
	v, ok := def.Get("DB_NAME")
	assert.True(t, ok)
	assert.Equal(t, "muffin", v)

	_, ok = def.Get("MISSING")
	assert.False(t, ok)
}

func TestParseDuplicateLastWins(t *testing.T) {
	def, err := envfile.Parse("A=1\nB=2\nA=3\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, def.Keys)
	assert.Equal(t, "3", def.Values["A"])
}

func TestMerge(t *testing.T) {
	t.Run("replaces overridden keys only", func(t *testing.T) {
		out, replaced, err := envfile.Merge(sample, types.Overrides{
			"DB_HOST":        "myhost",
			"SESSION_SECRET": "xyz123",
		})
		require.NoError(t, err)

		want := strings.Replace(sample, "DB_HOST=localhost", "DB_HOST=myhost", 1)
		want = strings.Replace(want, "SESSION_SECRET=changeme", "SESSION_SECRET=xyz123", 1)
		assert.Equal(t, want, out)
		assert.Equal(t, []string{"DB_HOST", "SESSION_SECRET"}, replaced)
		assert.Equal(t, 1, strings.Count(out, "SESSION_SECRET=xyz123"))
	})

	t.Run("empty overrides round trip", func(t *testing.T) {
		out, replaced, err := envfile.Merge(sample, types.Overrides{})
		require.NoError(t, err)
		assert.Equal(t, sample, out)
		assert.Empty(t, replaced)
	})

	t.Run("empty override values are ignored", func(t *testing.T) {
		out, _, err := envfile.Merge(sample, types.Overrides{"DB_HOST": ""})
		require.NoError(t, err)
		assert.Equal(t, sample, out)
	})

	t.Run("keys absent from the file are ignored", func(t *testing.T) {
		out, replaced, err := envfile.Merge(sample, types.Overrides{"UNKNOWN": "x"})
		require.NoError(t, err)
		assert.Equal(t, sample, out)
		assert.Empty(t, replaced)
	})

	t.Run("end to end example", func(t *testing.T) {
		out, _, err := envfile.Merge("FOO=bar\nSECRET=changeme", types.Overrides{"SECRET": "xyz123"})
		require.NoError(t, err)
		assert.Equal(t, "FOO=bar\nSECRET=xyz123", out)
	})
}

func TestMergeAnchorsToLineStart(t *testing.T) {
	content := "LABEL=MY_NAME=app\nNAME=app\n"

	out, _, err := envfile.Merge(content, types.Overrides{"NAME": "site"})
	require.NoError(t, err)
	assert.Equal(t, "LABEL=MY_NAME=app\nNAME=site\n", out)
}

func TestMergeDuplicateKeys(t *testing.T) {
	// The default is the last value, and the first line carrying that
	// exact assignment is rewritten.
	content := "A=1\nA=2\nA=2\n"

	out, _, err := envfile.Merge(content, types.Overrides{"A": "x"})
	require.NoError(t, err)
	assert.Equal(t, "A=1\nA=x\nA=2\n", out)
}

func TestMergeKeepsQuotingAndExport(t *testing.T) {
	content := "export DB_HOST=localhost\nSECRET=\"changeme\"\nEMPTY=\n"

	out, _, err := envfile.Merge(content, types.Overrides{
		"DB_HOST": "db.internal",
		"SECRET":  "s3cr3t",
		"EMPTY":   "filled",
	})
	require.NoError(t, err)
	assert.Equal(t, "export DB_HOST=db.internal\nSECRET=\"s3cr3t\"\nEMPTY=filled\n", out)
}

func TestNewSecret(t *testing.T) {
	a, err := envfile.NewSecret(envfile.MinSecretLength)
	require.NoError(t, err)
	b, err := envfile.NewSecret(envfile.MinSecretLength)
	require.NoError(t, err)

	assert.Len(t, a, envfile.MinSecretLength)
	assert.NotEqual(t, a, b)
	for _, r := range a {
		assert.True(t, (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'), "unexpected rune %q", r)
	}

	short, err := envfile.NewSecret(4)
	require.NoError(t, err)
	assert.Len(t, short, envfile.MinSecretLength)

	long, err := envfile.NewSecret(48)
	require.NoError(t, err)
	assert.Len(t, long, 48)
}

func TestParseKeepsReferences(t *testing.T) {
	t.Setenv("HOST", "from-environment")

	def, err := envfile.Parse("HOST=localhost\nURL=http://${HOST}/\nQUOTED=\"$HOST:80\"\nSINGLE='${HOST}'\n")
	require.NoError(t, err)

	assert.Equal(t, "http://${HOST}/", def.Values["URL"])
	assert.Equal(t, "$HOST:80", def.Values["QUOTED"])
	assert.Equal(t, "${HOST}", def.Values["SINGLE"])
}

func TestMergeDefaultWithReference(t *testing.T) {
	content := "HOST=localhost\nURL=http://${HOST}/\n"

	out, replaced, err := envfile.Merge(content, types.Overrides{"URL": "http://x/"})
	require.NoError(t, err)
	assert.Equal(t, "HOST=localhost\nURL=http://x/\n", out)
	assert.Equal(t, []string{"URL"}, replaced)
}

func TestMergeSkipsNonAssignmentLines(t *testing.T) {
	content := "# cfg\nFOO=bar\nthis line is junk\nSESSION_SECRET=changeme\n"

	def, err := envfile.Parse(content)
	require.NoError(t, err)
	assert.Equal(t, []string{"FOO", "SESSION_SECRET"}, def.Keys)

	out, _, err := envfile.Merge(content, types.Overrides{"SESSION_SECRET": "xyz123"})
	require.NoError(t, err)
	assert.Equal(t, "# cfg\nFOO=bar\nthis line is junk\nSESSION_SECRET=xyz123\n", out)
}

func TestMergeMatchesWholeValue(t *testing.T) {
	out, _, err := envfile.Merge("A=10\nA=1\n", types.Overrides{"A": "x"})
	require.NoError(t, err)
	assert.Equal(t, "A=10\nA=x\n", out)
}

func TestMergeKeepsTrailingComment(t *testing.T) {
	content := "PORT=3000 # http port\nNAME = \"blog\"\n"

	out, _, err := envfile.Merge(content, types.Overrides{"PORT": "8080", "NAME": "site"})
	require.NoError(t, err)
	assert.Equal(t, "PORT=8080 # http port\nNAME = \"site\"\n", out)
}
