package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mireku/cardik/internal/render"
)

// CheckConfigValidity collects every problem with the loaded configuration
// into one error so the user can fix them in a single pass.
func CheckConfigValidity(v *viper.Viper) error {
	var problems []string

	if strings.TrimSpace(v.GetString("vault_dir")) == "" {
		problems = append(problems, "vault_dir is required")
	}
	if strings.TrimSpace(v.GetString("data_dir")) == "" {
		problems = append(problems, "data_dir is required")
	}

	cc := v.GetString("default_country_code")
	if len(cc) != 2 || cc != strings.ToUpper(cc) {
		problems = append(problems, fmt.Sprintf("default_country_code must be a two-letter region code, got %q", cc))
	}

	if _, ok := render.ParseStrategy(v.GetString("render.strategy")); !ok {
		problems = append(problems, fmt.Sprintf("render.strategy must be dom or template, got %q", v.GetString("render.strategy")))
	}
	if v.GetString("render.template_path") != "" && v.GetString("render.strategy") != "template" {
		problems = append(problems, "render.template_path is set but render.strategy is not template")
	}

	if v.GetInt("index.page_size") <= 0 {
		problems = append(problems, "index.page_size must be greater than 0")
	}

	for _, key := range []string{"gravatar_host", "brandfetch_host", "clearbit_host"} {
		host := v.GetString(key)
		if host != "" && !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
			problems = append(problems, key+" must be an http(s) URL")
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
