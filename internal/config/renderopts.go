package config

import (
	"github.com/spf13/viper"

	"github.com/mireku/cardik/internal/card"
	"github.com/mireku/cardik/internal/render"
)

// RenderOptions builds the render pass configuration from loaded settings.
// The render path treats this as a read-only snapshot.
func RenderOptions(v *viper.Viper) render.Options {
	strategy, _ := render.ParseStrategy(v.GetString("render.strategy"))
	return render.Options{
		Strategy:      strategy,
		DefaultRegion: v.GetString("default_country_code"),
		TemplatePath:  v.GetString("render.template_path"),
		Providers: card.ImageProviders{
			GravatarHost:       v.GetString("gravatar_host"),
			BrandfetchHost:     v.GetString("brandfetch_host"),
			ClearbitHost:       v.GetString("clearbit_host"),
			BrandfetchClientID: v.GetString("brandfetch_client_id"),
		},
	}
}
