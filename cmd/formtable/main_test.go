package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formtable/pkg/render"
)

const personYAML = `first_name: Ada
last_name: Lovelace
active: true
nickname: null
`

const peopleJSON = `[
  {"first_name": "Ada", "email": "ada@example.com"},
  {"first_name": "Grace", "email": "grace@example.com"}
]`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRenderSingleMapping(t *testing.T) {
	data := writeFile(t, t.TempDir(), "person.yaml", personYAML)

	out, _, err := execute(t, "render", "--data", data)
	require.NoError(t, err)

	assert.Contains(t, out, "<caption>Person</caption>")
	assert.Contains(t, out, "<th>First name</th>\n<td>Ada</td>")
	assert.Contains(t, out, "<td><em>true</em></td>")
	assert.Contains(t, out, "<td><em>Not available.</em></td>")
	assert.NotContains(t, out, "<thead>")
}

func TestRenderCollectionWithFlags(t *testing.T) {
	data := writeFile(t, t.TempDir(), "people.json", peopleJSON)

	out, _, err := execute(t, "render", "-d", data,
		"--alias", "first_name=Given name",
		"--caption", "Team",
		"--exclude", "email",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "<caption>Team (2)</caption>")
	assert.Contains(t, out, "<th>Given name</th>")
	assert.NotContains(t, out, "Email")
	assert.Equal(t, 3, strings.Count(out, "<tr>"))

	out, _, err = execute(t, "render", "-d", data, "--collection-size=false", "--title")
	require.NoError(t, err)
	assert.Contains(t, out, "<caption>People</caption>")
	assert.Contains(t, out, "<th>First Name</th>")
}

func TestRenderNoCaptionAndOutputFile(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "person.yaml", personYAML)
	target := filepath.Join(dir, "out.html")

	stdout, _, err := execute(t, "render", "-d", data, "--no-caption", "-o", target)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	written, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(written), "<table>\n<tbody>"))
}

func TestRenderTemplateStrategies(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "person.yaml", personYAML)

	out, _, err := execute(t, "render", "-d", data, "--strategy", render.StrategyTemplate)
	require.NoError(t, err)
	assert.Contains(t, out, `<caption class="formtable-caption">Person</caption>`)
	assert.Contains(t, out, `<td class="formtable-cell"><em class="formtable-flag">true</em></td>`)

	templates := filepath.Join(dir, "templates")
	require.NoError(t, os.Mkdir(templates, 0o755))
	writeFile(t, templates, "td.tpl", `<td data-cell>{{ content|safe }}</td>`)

	out, _, err = execute(t, "render", "-d", data, "--templates", templates)
	require.NoError(t, err)
	assert.Contains(t, out, "<td data-cell>Ada</td>")
	assert.Contains(t, out, "<th>First name</th>", "elements without a template fall back to plain markup")
}

func TestRenderUnknownStrategy(t *testing.T) {
	data := writeFile(t, t.TempDir(), "person.yaml", personYAML)

	_, _, err := execute(t, "render", "-d", data, "--strategy", "pdf")
	require.ErrorIs(t, err, render.ErrUnknownStrategy)
}

func TestRenderWithPreset(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "people.json", peopleJSON)
	presets := writeFile(t, dir, "presets.yaml", `
presets:
  contacts:
    caption: Contacts
    display:
      email: mailto
`)

	out, stderr, err := execute(t, "render", "-d", data, "--presets", presets, "-p", "contacts", "--sanitize", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "<caption>Contacts (2)</caption>")
	assert.Contains(t, out, `<a href="mailto:ada@example.com"`)
	assert.Contains(t, stderr, "applying preset")

	_, _, err = execute(t, "render", "-d", data, "-p", "contacts")
	require.Error(t, err)
}

func TestRenderInteractiveColumns(t *testing.T) {
	data := writeFile(t, t.TempDir(), "people.json", peopleJSON)

	original := selectColumns
	t.Cleanup(func() { selectColumns = original })

	var offered []string
	selectColumns = func(columns []string) ([]string, error) {
		offered = columns
		return []string{"email"}, nil
	}

	out, _, err := execute(t, "render", "-d", data, "-i")
	require.NoError(t, err)
	assert.Equal(t, []string{"first_name", "email"}, offered)
	assert.Contains(t, out, "<th>Email</th>")
	assert.NotContains(t, out, "First name")
}

func TestRenderRequiresData(t *testing.T) {
	_, _, err := execute(t, "render")
	require.Error(t, err)
}

func TestStrategiesCommand(t *testing.T) {
	out, _, err := execute(t, "strategies")
	require.NoError(t, err)
	assert.Equal(t, "html\ntemplate\n", out)
}
