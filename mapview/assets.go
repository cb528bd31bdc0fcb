package mapview

import "github.com/spf13/viper"

// TileConfig is the tile layer of the map
type TileConfig struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

// IconConfig is the marker icon assets. They are configured explicitly so
// the map widget never guesses the asset path.
type IconConfig struct {
	IconURL       string `json:"icon_url"`
	IconRetinaURL string `json:"icon_retina_url"`
	ShadowURL     string `json:"shadow_url"`
}

type Assets struct {
	Tile TileConfig `json:"tile"`
	Icon IconConfig `json:"icon"`
}

// AssetsFromConfig reads the map assets from the configuration
func AssetsFromConfig() Assets {
	viper.SetDefault("map.tile.url", "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png")
	viper.SetDefault("map.tile.attribution", `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`)
	viper.SetDefault("map.icon.url", "https://unpkg.com/leaflet@1.9.4/dist/images/marker-icon.png")
	viper.SetDefault("map.icon.retina_url", "https://unpkg.com/leaflet@1.9.4/dist/images/marker-icon-2x.png")
	viper.SetDefault("map.icon.shadow_url", "https://unpkg.com/leaflet@1.9.4/dist/images/marker-shadow.png")

	return Assets{
		Tile: TileConfig{
			URL:         viper.GetString("map.tile.url"),
			Attribution: viper.GetString("map.tile.attribution"),
		},
		Icon: IconConfig{
			IconURL:       viper.GetString("map.icon.url"),
			IconRetinaURL: viper.GetString("map.icon.retina_url"),
			ShadowURL:     viper.GetString("map.icon.shadow_url"),
		},
	}
}
