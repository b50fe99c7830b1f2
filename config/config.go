// Package config loads the HUD configuration.
//
// Values are applied with priority: defaults, then the TOML file, then the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the HUD configuration.
type Config struct {
	Player   string        `toml:"player"`
	Template string        `toml:"template"` // template file, the embedded template when empty
	Output   string        `toml:"output"`
	Sheets   SheetsConfig  `toml:"sheets"`
	Notion   NotionConfig  `toml:"notion"`
	Market   MarketConfig  `toml:"market"`
	Agent    AgentConfig   `toml:"agent"`
	Cache    CacheConfig   `toml:"cache"`
	Logging  LoggingConfig `toml:"logging"`
	Manual   ManualConfig  `toml:"manual"`
	Links    LinksConfig   `toml:"links"`
	Studies  StudiesConfig `toml:"studies"`
}

// SheetsConfig locates the spreadsheet: a Google Sheets id, or a directory of CSV exports.
type SheetsConfig struct {
	ID  string `toml:"id"`
	Dir string `toml:"dir"`
}

// NotionConfig contains the publishing settings.
type NotionConfig struct {
	Token   string `toml:"token"`
	BlockID string `toml:"block_id"`
}

// MarketConfig contains the market data settings.
type MarketConfig struct {
	WINTicker string `toml:"win_ticker"`
	WDOTicker string `toml:"wdo_ticker"`
	TEAPIKey  string `toml:"te_api_key"`
	NewsItems int    `toml:"news_items"`
}

// AgentConfig contains the market alerts settings.
type AgentConfig struct {
	GeminiAPIKey string `toml:"gemini_api_key"`
	Model        string `toml:"model"`
}

// CacheConfig contains the HTTP cache settings.
type CacheConfig struct {
	Dir string `toml:"dir"`
	TTL string `toml:"ttl"` // a time.Duration, "0s" disables the cache
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// ManualConfig holds values typed by hand.
type ManualConfig struct {
	LossMaxR          string `toml:"loss_max_r"`
	PauseTriggerRegra string `toml:"pause_trigger_regra"`
	LazerStreak       string `toml:"lazer_streak"`
}

// LinksConfig holds the quick links.
type LinksConfig struct {
	Garmin       string `toml:"garmin"`
	Notion       string `toml:"notion"`
	FundScreener string `toml:"fundscreener"`
	SWM          string `toml:"swm"`
}

// StudiesConfig holds the studies progress.
type StudiesConfig struct {
	CGAStatus      string `toml:"cga_status"`
	EstudoMinHoje  string `toml:"estudo_min_hoje"`
	LivroTitulo    string `toml:"livro_titulo"`
	LivroPagAtual  string `toml:"livro_pag_atual"`
	LivroPagTotal  string `toml:"livro_pag_total"`
	LivroProgresso string `toml:"livro_progresso"`
}

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Player:  "Player",
		Output:  "hud_output.md",
		Market:  MarketConfig{NewsItems: 6},
		Agent:   AgentConfig{Model: "gemini-2.5-flash"},
		Cache:   CacheConfig{TTL: "60s"},
		Logging: LoggingConfig{Level: "info"},
		Manual: ManualConfig{
			LossMaxR:          "-",
			PauseTriggerRegra: "-",
			LazerStreak:       "0",
		},
		Links: LinksConfig{
			Garmin:       "-",
			Notion:       "-",
			FundScreener: "-",
			SWM:          "-",
		},
		Studies: StudiesConfig{
			CGAStatus:      "-",
			EstudoMinHoje:  "-",
			LivroTitulo:    "-",
			LivroPagAtual:  "-",
			LivroPagTotal:  "-",
			LivroProgresso: "-",
		},
	}
}

// Load loads the configuration file at path, if any, over the defaults, then
// applies the environment overrides.
func Load(path string) (*Config, error) {
	config := NewDefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(config)
	return config, nil
}

// env lists the environment variables overriding the configuration.
var env = []struct {
	name  string
	field func(*Config) *string
}{
	{"HUD_GSHEET_ID", func(c *Config) *string { return &c.Sheets.ID }},
	{"HUD_SHEETS_DIR", func(c *Config) *string { return &c.Sheets.Dir }},
	{"NOTION_TOKEN", func(c *Config) *string { return &c.Notion.Token }},
	{"NOTION_BLOCK_ID", func(c *Config) *string { return &c.Notion.BlockID }},
	{"TE_API_KEY", func(c *Config) *string { return &c.Market.TEAPIKey }},
	{"GEMINI_API_KEY", func(c *Config) *string { return &c.Agent.GeminiAPIKey }},
	{"HUD_LOG_LEVEL", func(c *Config) *string { return &c.Logging.Level }},
	{"LINK_GARMIN", func(c *Config) *string { return &c.Links.Garmin }},
	{"LINK_NOTION", func(c *Config) *string { return &c.Links.Notion }},
	{"LINK_FUNDSCREENER", func(c *Config) *string { return &c.Links.FundScreener }},
	{"LINK_SWM", func(c *Config) *string { return &c.Links.SWM }},
}

// applyEnvOverrides applies the environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	for _, e := range env {
		if v := os.Getenv(e.name); v != "" {
			*e.field(config) = v
		}
	}
	if n := os.Getenv("HUD_NEWS_ITEMS"); n != "" {
		if i, err := strconv.Atoi(n); err == nil {
			config.Market.NewsItems = i
		}
	}
}

// Validate reports configuration errors that prevent rendering.
func (c *Config) Validate() error {
	var errs []error
	if c.Sheets.ID == "" && c.Sheets.Dir == "" {
		errs = append(errs, errors.New("no spreadsheet: set sheets.id (or HUD_GSHEET_ID) or sheets.dir (or HUD_SHEETS_DIR)"))
	}
	if _, err := c.CacheTTL(); err != nil {
		errs = append(errs, err)
	}
	if c.Market.NewsItems < 0 {
		errs = append(errs, fmt.Errorf("invalid market.news_items %d", c.Market.NewsItems))
	}
	return errors.Join(errs...)
}

// CacheTTL returns the parsed cache TTL.
func (c *Config) CacheTTL() (time.Duration, error) {
	if c.Cache.TTL == "" {
		return 0, nil
	}
	ttl, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return 0, fmt.Errorf("invalid cache.ttl %q: %w", c.Cache.TTL, err)
	}
	return ttl, nil
}

// PushEnabled reports whether the Notion token and block id are both set.
func (c *Config) PushEnabled() bool { return c.Notion.Token != "" && c.Notion.BlockID != "" }

// Placeholders returns the placeholders whose values come from the configuration.
func (c *Config) Placeholders() map[string]string {
	return map[string]string{
		"LOSS_MAX_R":          c.Manual.LossMaxR,
		"PAUSE_TRIGGER_REGRA": c.Manual.PauseTriggerRegra,
		"LAZER_STREAK":        c.Manual.LazerStreak,
		"LINK_GARMIN":         c.Links.Garmin,
		"LINK_NOTION":         c.Links.Notion,
		"LINK_FUNDSCREENER":   c.Links.FundScreener,
		"LINK_SWM":            c.Links.SWM,
		"CGA_STATUS":          c.Studies.CGAStatus,
		"ESTUDO_MIN_HOJE":     c.Studies.EstudoMinHoje,
		"LIVRO_TITULO":        c.Studies.LivroTitulo,
		"LIVRO_PAG_ATUAL":     c.Studies.LivroPagAtual,
		"LIVRO_PAG_TOTAL":     c.Studies.LivroPagTotal,
		"LIVRO_PROGRESSO":     c.Studies.LivroProgresso,
	}
}
