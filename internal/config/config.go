package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Storage       StorageConfig       `toml:"storage"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Notifications NotificationsConfig `toml:"notifications"`
	Catalog       CatalogConfig       `toml:"catalog"`
	Pricing       PricingConfig       `toml:"pricing"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// StorageConfig настройки локального хранилища состояния
type StorageConfig struct {
	Path     string `toml:"path"`
	StateKey string `toml:"state_key"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// NotificationsConfig настройки транзиентных уведомлений
type NotificationsConfig struct {
	TTLSeconds int `toml:"ttl_seconds"`
}

// CatalogConfig фиксированные наборы площадок и типов событий
type CatalogConfig struct {
	Venues     []string `toml:"venues"`
	EventTypes []string `toml:"event_types"`
}

// PricingConfig таблицы цен: базовая цена по типу события и множитель по слоту
type PricingConfig struct {
	DefaultBase float64            `toml:"default_base"`
	Base        map[string]float64 `toml:"base"`
	Multipliers map[string]float64 `toml:"multipliers"`
}

// Load читает конфигурацию из TOML файла, применяет дефолты и валидирует
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DomainCatalog конвертирует конфигурацию каталога в доменную модель
func (c *Config) DomainCatalog() domain.Catalog {
	return domain.Catalog{
		Venues:     append([]string(nil), c.Catalog.Venues...),
		EventTypes: append([]string(nil), c.Catalog.EventTypes...),
	}
}

// DomainPriceList конвертирует конфигурацию цен в доменную модель
func (c *Config) DomainPriceList() domain.PriceList {
	base := make(map[string]float64, len(c.Pricing.Base))
	for event, price := range c.Pricing.Base {
		base[event] = price
	}

	multipliers := make(map[domain.Slot]float64, len(c.Pricing.Multipliers))
	for slot, m := range c.Pricing.Multipliers {
		multipliers[domain.Slot(slot)] = m
	}

	return domain.PriceList{
		Base:        base,
		DefaultBase: c.Pricing.DefaultBase,
		Multipliers: multipliers,
	}
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			Path:     "data/venue-booking.db",
			StateKey: "venue-bookings",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "venue-booking",
		},
		Notifications: NotificationsConfig{
			TTLSeconds: 3,
		},
	}
}

func (c *Config) applyDefaults() {
	if len(c.Catalog.Venues) == 0 {
		c.Catalog.Venues = append([]string(nil), domain.DefaultVenues...)
	}
	if len(c.Catalog.EventTypes) == 0 {
		c.Catalog.EventTypes = append([]string(nil), domain.DefaultEventTypes...)
	}

	if c.Pricing.DefaultBase == 0 {
		c.Pricing.DefaultBase = domain.DefaultBasePrice
	}
	if len(c.Pricing.Base) == 0 {
		c.Pricing.Base = make(map[string]float64, len(domain.DefaultBasePrices))
		for event, price := range domain.DefaultBasePrices {
			c.Pricing.Base[event] = price
		}
	}
	if len(c.Pricing.Multipliers) == 0 {
		c.Pricing.Multipliers = make(map[string]float64, len(domain.DefaultSlotMultipliers))
		for slot, m := range domain.DefaultSlotMultipliers {
			c.Pricing.Multipliers[string(slot)] = m
		}
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("config: storage.path is required")
	}
	if c.Storage.StateKey == "" {
		return fmt.Errorf("config: storage.state_key is required")
	}
	if c.Notifications.TTLSeconds <= 0 {
		return fmt.Errorf("config: notifications.ttl_seconds must be positive")
	}

	for slot := range c.Pricing.Multipliers {
		if !domain.Slot(slot).IsValid() {
			return fmt.Errorf("config: pricing.multipliers references unknown slot %q", slot)
		}
	}

	return nil
}
