package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mireku/cardik/pkg/api"
)

// helper to build an isolated vault + data dir and a config pointing at them
func writeTestConfig(t *testing.T, docs map[string]string) string {
	t.Helper()
	tmp := t.TempDir()
	vaultDir := filepath.Join(tmp, "vault")
	dataDir := filepath.Join(tmp, "data")
	for _, dir := range []string{vaultDir, dataDir} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			t.Fatal(err)
		}
	}
	for name, content := range docs {
		path := filepath.Join(vaultDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	cfg := filepath.Join(tmp, "config.toml")
	content := `vault_dir = "` + strings.ReplaceAll(vaultDir, "\\", "\\\\") + `"
data_dir = "` + strings.ReplaceAll(dataDir, "\\", "\\\\") + `"
`
	if err := os.WriteFile(cfg, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfg
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCLIScanListShowJSON(t *testing.T) {
	cfgPath := writeTestConfig(t, map[string]string{
		"people/ada.md": "```contact-card\nname: Ada Lovelace\ncompany: Analytical Engines\nemail: ada@example.com\n```\n",
	})

	out, err := runCLI(t, "--config", cfgPath, "scan")
	if err != nil {
		t.Fatalf("scan execute: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Indexed 1 cards") {
		t.Fatalf("unexpected scan output: %q", out)
	}

	out, err = runCLI(t, "--config", cfgPath, "list", "--output", "json")
	if err != nil {
		t.Fatalf("list execute: %v\n%s", err, out)
	}
	var cards []api.Card
	if err := json.Unmarshal([]byte(out), &cards); err != nil {
		t.Fatalf("decode list json: %v\n%s", err, out)
	}
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}
	if cards[0].Name != "Ada Lovelace" || cards[0].Path != "people/ada.md" {
		t.Fatalf("card mismatch: %+v", cards[0])
	}

	// Show by ID prefix, piped output defaults to plain.
	out, err = runCLI(t, "--config", cfgPath, "show", cards[0].ID[:12])
	if err != nil {
		t.Fatalf("show execute: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Ada Lovelace") {
		t.Fatalf("show output missing card: %q", out)
	}
}

func TestCLISearch(t *testing.T) {
	cfgPath := writeTestConfig(t, map[string]string{
		"a.md": "```contact-card\nname: Ada\ncompany: Engines\n```\n",
		"b.md": "```contact-card\nname: Grace\ncompany: Navy\n```\n",
	})

	if out, err := runCLI(t, "--config", cfgPath, "scan"); err != nil {
		t.Fatalf("scan execute: %v\n%s", err, out)
	}

	out, err := runCLI(t, "--config", cfgPath, "search", "grace", "--output", "json")
	if err != nil {
		t.Fatalf("search execute: %v\n%s", err, out)
	}
	var cards []api.Card
	if err := json.Unmarshal([]byte(out), &cards); err != nil {
		t.Fatalf("decode search json: %v\n%s", err, out)
	}
	if len(cards) != 1 || cards[0].Name != "Grace" {
		t.Fatalf("unexpected search result: %+v", cards)
	}
}

func TestCLIRenderVault(t *testing.T) {
	cfgPath := writeTestConfig(t, map[string]string{
		"c.md": "```contact-card\nname: Ada\nemail: ada@example.com\n```\n",
	})

	out, err := runCLI(t, "--config", cfgPath, "render")
	if err != nil {
		t.Fatalf("render execute: %v\n%s", err, out)
	}
	if !strings.Contains(out, "contact-card-name") || !strings.Contains(out, "Ada") {
		t.Fatalf("rendered page missing card: %q", out)
	}
	if !strings.Contains(out, "<!DOCTYPE html>") {
		t.Fatalf("expected a full page: %q", out)
	}
}

func TestCLIRenderBlockFromStdin(t *testing.T) {
	cfgPath := writeTestConfig(t, nil)

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader("name: Ada\ntitle: Countess"))
	root.SetArgs([]string{"--config", cfgPath, "render", "--block"})
	if err := root.Execute(); err != nil {
		t.Fatalf("render execute: %v\n%s", err, out.String())
	}
	got := out.String()
	if !strings.Contains(got, "contact-card-container") || !strings.Contains(got, "Countess") {
		t.Fatalf("unexpected block output: %q", got)
	}
}

func TestCLIConfigGenerate(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "config.toml")

	out, err := runCLI(t, "config", "generate", "-o", target)
	if err != nil {
		t.Fatalf("generate execute: %v\n%s", err, out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read generated config: %v", err)
	}
	for _, key := range []string{"vault_dir", "default_country_code", "[render]", "strategy"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("generated config missing %q:\n%s", key, data)
		}
	}

	// Second run without --overwrite must refuse.
	if out, err := runCLI(t, "config", "generate", "-o", target); err == nil {
		t.Fatalf("expected overwrite refusal, got: %q", out)
	}
}
