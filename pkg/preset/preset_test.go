package preset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formtable/pkg/table"
)

type member struct {
	ID    int    `table:"id,pk"`
	Name  string `table:"name"`
	Email string `table:"email"`
	Team  int    `table:"team_id,fk"`
}

const presetYAML = `
presets:
  members:
    alias:
      name: Full name
    caption: Staff
    collection_size: false
    pk: false
    fk: true
    display:
      email: mailto
      name: sparkle
  minimal:
    include: [name]
    caption: false
  odd:
    caption: 42
`

func TestParseAndOptions(t *testing.T) {
	set, err := Parse([]byte(presetYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"members", "minimal", "odd"}, set.Names())

	p, err := set.Get("members")
	require.NoError(t, err)
	require.NotNil(t, p.PrimaryKeys)
	assert.False(t, *p.PrimaryKeys)

	members := []*member{
		{ID: 1, Name: "Ada", Email: "ada@example.com", Team: 7},
		{ID: 2, Name: "Bob", Email: "bob@example.com", Team: 7},
	}
	out, err := table.NewCollection(members).Render(p.Options(nil)...)
	require.NoError(t, err)

	assert.Contains(t, out, "<caption>Staff</caption>")
	assert.Contains(t, out, "<th>Full name</th>")
	assert.Contains(t, out, "<th>Team id</th>")
	assert.NotContains(t, out, "<th>Id</th>")
	assert.Contains(t, out, `<td><a href="mailto:ada@example.com">ada@example.com</a></td>`)
	assert.Contains(t, out, "<td>Ada</td>", "unknown formatter falls back to default formatting")
}

func TestCaptionValues(t *testing.T) {
	set, err := Parse([]byte(presetYAML))
	require.NoError(t, err)

	minimal, err := set.Get("minimal")
	require.NoError(t, err)
	out, err := table.New(&member{Name: "Ada"}).Render(minimal.Options(nil)...)
	require.NoError(t, err)
	assert.NotContains(t, out, "<caption>")
	assert.Equal(t, 1, strings.Count(out, "<tr>"))

	odd, err := set.Get("odd")
	require.NoError(t, err)
	out, err = table.New(&member{Name: "Ada"}).Render(odd.Options(nil)...)
	require.NoError(t, err)
	assert.Contains(t, out, "<caption>Member</caption>", "unsupported caption value keeps the default")
}

func TestGetMissingPreset(t *testing.T) {
	set, err := Parse([]byte(presetYAML))
	require.NoError(t, err)

	_, err = set.Get("nope")
	require.ErrorIs(t, err, ErrPresetNotFound)
}

func TestParseRejectsMistypedFields(t *testing.T) {
	_, err := Parse([]byte("presets:\n  bad:\n    include: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(presetYAML), 0o600))

	set, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, set.Names(), 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDefaultFormattersEscape(t *testing.T) {
	formatters := DefaultFormatters()
	m := map[string]any{"v": "<b>", "nil": nil}

	assert.Equal(t, "<code>&lt;b&gt;</code>", formatters["code"]("v")(m))
	assert.Equal(t, "&lt;B&gt;", formatters["upper"]("v")(m))
	assert.Equal(t, "", formatters["link"]("nil")(m))
	assert.Equal(t, "", formatters["link"]("absent")(m))
}

func TestLinkFormatterDropsUnsafeSchemes(t *testing.T) {
	link := DefaultFormatters()["link"]

	safe := link("url")(map[string]any{"url": "https://example.com/a"})
	assert.Contains(t, safe, `href="https://example.com/a"`)
	assert.Contains(t, safe, ">https://example.com/a</a>")

	unsafe := link("url")(map[string]any{"url": "javascript:alert(1)"})
	assert.NotContains(t, unsafe, "href")
	assert.Contains(t, unsafe, "javascript:alert(1)", "the text stays visible")
}
