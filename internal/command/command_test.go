package command

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	skemap "github.com/reoring/skemap"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := GetRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func decodeObject(t *testing.T, s string) map[string]any {
	t.Helper()
	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestTypes(t *testing.T) {
	out, _, err := run(t, "", "types", "--builtin", "storage")
	require.NoError(t, err)
	names := strings.Split(strings.TrimSpace(out), "\n")
	require.Contains(t, names, "StorageAccount")
	require.NotContains(t, names, "VirtualMachine")

	out, _, err = run(t, "", "types", "StorageAccount")
	require.NoError(t, err)
	require.Contains(t, out, "StorageAccount:")
	require.Contains(t, out, "serializedName: properties.provisioningState")

	_, _, err = run(t, "", "types", "Ghost")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	usage := `{"unit":"Bytes","currentValue":1,"limit":2,"name":{"value":"v"}}`
	out, _, err := run(t, usage, "validate", "Usage")
	require.NoError(t, err)
	require.Equal(t, "ok\n", out)

	out, _, err = run(t, `{"keyName":"key3"}`, "validate", "StorageAccountRegenerateKeyParameters")
	require.ErrorIs(t, err, errInvalid)
	var issues []skemap.Issue
	require.NoError(t, json.Unmarshal([]byte(out), &issues))
	require.Len(t, issues, 1)
	require.Equal(t, "invalid_enum", issues[0].Code)
	require.Equal(t, "/keyName", issues[0].Path)
	require.Equal(t, "keyName", issues[0].Field)
}

func TestValidate_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"rg"}`), 0o600))

	out, _, err := run(t, "", "validate", "ResourceGroup", path)
	require.ErrorIs(t, err, errInvalid)
	require.Contains(t, out, `"/location"`)

	_, _, err = run(t, "", "validate", "ResourceGroup", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestDeserialize_Flattened(t *testing.T) {
	in := `{"location":"westus","properties":{"provisioningState":"Succeeded","creationTime":"2024-02-03T04:05:06Z"},"etag":"x"}`
	out, _, err := run(t, in, "deserialize", "StorageAccount")
	require.NoError(t, err)
	v := decodeObject(t, out)
	require.Equal(t, "Succeeded", v["provisioningState"])
	require.Equal(t, "x", v["etag"])
	require.NotContains(t, v, "properties")

	out, _, err = run(t, in, "deserialize", "StorageAccount", "--decode-formats", "--output", "go")
	require.NoError(t, err)
	require.Contains(t, out, "(time.Time)")

	out, _, err = run(t, in, "deserialize", "StorageAccount", "-o", "yaml")
	require.NoError(t, err)
	require.Contains(t, out, "provisioningState: Succeeded")

	_, _, err = run(t, in, "deserialize", "StorageAccount", "-o", "toml")
	require.Error(t, err)
}

func TestDeserialize_Page(t *testing.T) {
	in := `{"value":[{"location":"westus"},{"location":"eastus"}],"nextLink":"token123"}`
	out, _, err := run(t, in, "deserialize", "ResourceGroupListResult", "--page")
	require.NoError(t, err)
	v := decodeObject(t, out)
	require.Equal(t, "token123", v["nextLink"])
	items := v["items"].([]any)
	require.Len(t, items, 2)
	require.Equal(t, "westus", items[0].(map[string]any)["location"])
	require.Equal(t, "eastus", items[1].(map[string]any)["location"])
}

func TestDeserialize_Strict(t *testing.T) {
	dup := `{"unit":"Count","unit":"Bytes","currentValue":1,"limit":2,"name":{}}`
	_, stderr, err := run(t, dup, "deserialize", "Usage")
	require.NoError(t, err)
	require.Contains(t, stderr, "duplicate_key")

	_, _, err = run(t, dup, "deserialize", "Usage", "--strict")
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate_key")

	_, _, err = run(t, `{"unit":"Count"}`, "deserialize", "Usage", "--strict")
	require.Error(t, err)
}

func TestSerialize(t *testing.T) {
	out, _, err := run(t, `{"keyName":"key1","extra":1}`, "serialize", "StorageAccountRegenerateKeyParameters")
	require.NoError(t, err)
	require.Equal(t, map[string]any{"keyName": "key1"}, decodeObject(t, out))

	in := `{"location":"westus","hardwareProfile":{"vmSize":"Standard_B1s"},"vmId":"ignored"}`
	out, _, err = run(t, in, "serialize", "VirtualMachine")
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"location":   "westus",
		"properties": map[string]any{"hardwareProfile": map[string]any{"vmSize": "Standard_B1s"}},
	}, decodeObject(t, out))

	_, _, err = run(t, `{}`, "serialize", "VirtualMachine")
	require.Error(t, err)
}

func TestSettingsFile(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("builtin: [compute]\nverbosity: 2\n"), 0o600))

	out, _, err := run(t, "", "types", "--settings-file", settings)
	require.NoError(t, err)
	require.Contains(t, out, "VirtualMachine\n")
	require.NotContains(t, out, "StorageAccount")

	out, _, err = run(t, "", "types", "--settings-file", settings, "--builtin", "storage")
	require.NoError(t, err)
	require.Contains(t, out, "StorageAccount\n")

	_, _, err = run(t, "", "types", "--settings-file", dir)
	require.Error(t, err)
}

func TestSchemaFile(t *testing.T) {
	schema := filepath.Join(t.TempDir(), "widget.yaml")
	require.NoError(t, os.WriteFile(schema, []byte(`
Widget:
  modelProperties:
    size:
      required: true
      type: {name: Number}
`), 0o600))

	out, _, err := run(t, "", "types", "--builtin", "none", "--schema", schema)
	require.NoError(t, err)
	require.Equal(t, "Widget\n", out)

	_, _, err = run(t, `{"size":3}`, "validate", "Widget", "--builtin", "none", "-s", schema)
	require.NoError(t, err)
	_, _, err = run(t, `{}`, "validate", "Widget", "--builtin", "none", "-s", schema)
	require.ErrorIs(t, err, errInvalid)
}

func TestUnknownBuiltin(t *testing.T) {
	_, _, err := run(t, "", "types", "--builtin", "nope")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown builtin model set")
}

func TestInvalidVerbosity(t *testing.T) {
	_, stderr, err := run(t, "", "types", "--verbosity", "7")
	require.NoError(t, err)
	require.Contains(t, stderr, "invalid verbosity level provided")
}

func TestImport(t *testing.T) {
	out, _, err := run(t, "", "import", "../../swagger/testdata/storage.json", "--only", "Usage")
	require.NoError(t, err)
	require.Contains(t, out, "Usage:")
	require.Contains(t, out, "UsageName:")
	require.NotContains(t, out, "StorageAccount")

	dest := filepath.Join(t.TempDir(), "storage.yaml")
	_, _, err = run(t, "", "import", "../../swagger/testdata/storage.json", "-o", dest)
	require.NoError(t, err)

	// The written schema feeds straight back into the CLI.
	out, _, err = run(t, "", "types", "--builtin", "none", "-s", dest)
	require.NoError(t, err)
	require.Contains(t, out, "StorageAccountListResult\n")
}

func TestEntry(t *testing.T) {
	in := `{"maxSizeInMegabytes":1024,"lockDuration":"PT1M","messageCount":3}`
	out, _, err := run(t, in, "entry", "queue", "--format", "json")
	require.NoError(t, err)
	require.Equal(t, `{"LockDuration":"PT1M","MaxSizeInMegabytes":1024}`+"\n", out)

	out, _, err = run(t, in, "entry", "QueueDescription", "--indent")
	require.NoError(t, err)
	require.Contains(t, out, "<QueueDescription")
	require.Contains(t, out, "<LockDuration>PT1M</LockDuration>")

	_, _, err = run(t, in, "entry", "relay")
	require.Error(t, err)

	resp := `<entry xmlns="http://www.w3.org/2005/Atom"><content type="application/xml">` +
		`<TopicDescription xmlns="http://schemas.microsoft.com/netservices/2010/10/servicebus/connect">` +
		`<SupportOrdering>true</SupportOrdering><SizeInBytes>0</SizeInBytes>` +
		`</TopicDescription></content></entry>`
	out, _, err = run(t, resp, "entry", "topic", "--parse")
	require.NoError(t, err)
	require.Equal(t, map[string]any{"supportOrdering": true}, decodeObject(t, out))
}
