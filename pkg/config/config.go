package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env     string // development, staging, production
	Name    string
	Locale  string // etiqueta BCP 47 para ordenar nombres visibles (ej. "es", "pl")
	DataDir string // directorio del almacén local (Badger); vacío = en memoria
}

// HTTPConfig configuración del servidor HTTP local.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig configuración del backend de inventario que esta aplicación consume.
type BackendConfig struct {
	BaseURL        string // ej. https://despensa.example.com
	TimeoutSeconds int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, APP_LOCALE, BACKEND_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:     getString(v, "APP_ENV", "development"),
			Name:    getString(v, "APP_NAME", "despensa-companion"),
			Locale:  getString(v, "APP_LOCALE", "es"),
			DataDir: getString(v, "APP_DATA_DIR", "./data"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8090),
		},
		Backend: BackendConfig{
			BaseURL:        getString(v, "BACKEND_BASE_URL", "http://localhost:8080"),
			TimeoutSeconds: getInt(v, "BACKEND_TIMEOUT_SECONDS", 15),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
