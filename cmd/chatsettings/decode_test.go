package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestDecode_StdinJSON(t *testing.T) {
	out, _, err := execute(t, `{"title":"Team","admin_ids":[1,2]}`, "decode")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Team"`)
	assert.Contains(t, out, `"admin_ids": [`)
}

func TestDecode_YAML(t *testing.T) {
	doc := `{"title":"42","pinned_message":{"id":7,"attachments":[["photo","p1"]]}}`
	out, _, err := execute(t, doc, "decode", "-o", "yaml")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "42", got["title"], "numeric-looking strings stay strings")
	pm := got["pinned_message"].(map[string]any)
	assert.Equal(t, 7, pm["id"])
	assert.NotContains(t, out, "{", "block style only")
}

func TestDecode_JSONCFile(t *testing.T) {
	p := writeFile(t, "team.jsonc", "{\n  // fixture\n  \"title\": \"Team\",\n}\n")

	_, _, err := execute(t, "", "decode", p)
	assert.Error(t, err, "comments are rejected without --jsonc")

	out, _, err := execute(t, "", "decode", "--jsonc", p)
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Team"`)
}

func TestDecode_FailureReportsAndContinues(t *testing.T) {
	good := writeFile(t, "good.json", `{"title":"ok"}`)
	bad := writeFile(t, "bad.json", `{"members_count":"many"}`)

	out, errOut, err := execute(t, "", "decode", bad, good)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 documents failed")
	assert.Contains(t, errOut, bad+": type mismatch at members_count")
	assert.Contains(t, out, `"title": "ok"`)
}

func TestValidate(t *testing.T) {
	good := writeFile(t, "good.json", `{}`)
	bad := writeFile(t, "bad.json", `[`)

	out, _, err := execute(t, "", "validate", good, bad)
	require.Error(t, err)
	assert.Contains(t, out, good+": OK")
	assert.Contains(t, out, bad+": ")
	assert.NotContains(t, out, bad+": OK")
}

func TestUnknownOutputFormat(t *testing.T) {
	_, _, err := execute(t, `{}`, "decode", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestHistory_RejectsBadPeerID(t *testing.T) {
	_, _, err := execute(t, "", "history", "abc")
	assert.ErrorContains(t, err, "invalid peer_id")
}
