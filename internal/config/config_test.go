package config

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	if err := Load(context.Background(), v); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := v.GetString("default_country_code"); got != "US" {
		t.Errorf("default_country_code = %q, want US", got)
	}
	if got := v.GetString("render.strategy"); got != "dom" {
		t.Errorf("render.strategy = %q, want dom", got)
	}
	if v.GetString("data_dir") == "" {
		t.Error("data_dir must resolve to a non-empty default")
	}
}

func TestLoadNormalizesCountryCode(t *testing.T) {
	v := viper.New()
	v.Set("default_country_code", " gb ")
	if err := Load(context.Background(), v); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := v.GetString("default_country_code"); got != "GB" {
		t.Errorf("default_country_code = %q, want GB", got)
	}
}

func TestCheckConfigValidityValid(t *testing.T) {
	v := viper.New()
	if err := Load(context.Background(), v); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := CheckConfigValidity(v); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestCheckConfigValidityInvalid(t *testing.T) {
	v := viper.New()
	v.Set("vault_dir", "")
	v.Set("data_dir", "")
	v.Set("default_country_code", "usa")
	v.Set("render.strategy", "shadow-dom")
	v.Set("render.template_path", "")
	v.Set("index.page_size", 0)
	v.Set("clearbit_host", "ftp://nope")

	err := CheckConfigValidity(v)
	if err == nil {
		t.Fatalf("expected error for invalid config")
	}

	msg := err.Error()
	expected := []string{
		"vault_dir is required",
		"data_dir is required",
		"default_country_code must be a two-letter region code",
		"render.strategy must be dom or template",
		"index.page_size must be greater than 0",
		"clearbit_host must be an http(s) URL",
	}
	for _, want := range expected {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected error to contain %q, got %q", want, msg)
		}
	}
}

func TestRenderDefaultTOML(t *testing.T) {
	out := RenderDefaultTOML()
	for _, want := range []string{
		`default_country_code = "US"`,
		"[render]",
		`strategy = "dom"`,
		"[serve]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated TOML missing %q", want)
		}
	}
}
