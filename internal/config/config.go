package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	Session struct {
		TTL           time.Duration `mapstructure:"ttl"`
		SweepInterval time.Duration `mapstructure:"sweep_interval"`
	} `mapstructure:"session"`
	Export struct {
		// Pixel width of the staging viewport the rasterizer renders at.
		PageWidthPx int `mapstructure:"page_width_px"`
		// Device scale factor for the raster (2 = retina-quality pages).
		Scale   float64       `mapstructure:"scale"`
		Timeout time.Duration `mapstructure:"timeout"`
		// StylesheetURL is referenced by the standalone HTML document.
		StylesheetURL string `mapstructure:"stylesheet_url"`
	} `mapstructure:"export"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
}

func LoadConfig() (cfg Config, err error) {

	err = godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err = viper.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("session.ttl", time.Hour)
	viper.SetDefault("session.sweep_interval", 5*time.Minute)
	viper.SetDefault("export.page_width_px", 800)
	viper.SetDefault("export.scale", 2.0)
	viper.SetDefault("export.timeout", 45*time.Second)
	viper.SetDefault("export.stylesheet_url", "https://cdn.jsdelivr.net/npm/water.css@2/out/water.css")

	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("session.ttl", "SESSION_TTL")
	viper.BindEnv("session.sweep_interval", "SESSION_SWEEP_INTERVAL")
	viper.BindEnv("export.page_width_px", "EXPORT_PAGE_WIDTH_PX")
	viper.BindEnv("export.scale", "EXPORT_SCALE")
	viper.BindEnv("export.timeout", "EXPORT_TIMEOUT")
	viper.BindEnv("export.stylesheet_url", "EXPORT_STYLESHEET_URL")

	viper.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	viper.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	viper.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")

	err = viper.Unmarshal(&cfg)
	return
}
