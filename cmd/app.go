// Package cmd implements the CLI application rendering the HUD.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/hud"
	"github.com/etnz/hud/agent"
	"github.com/etnz/hud/config"
	"github.com/etnz/hud/dashboard"
	"github.com/etnz/hud/fetch"
	"github.com/etnz/hud/news"
	"github.com/etnz/hud/renderer"
	"github.com/etnz/hud/sheets"
	"github.com/etnz/hud/yahoo"
	"github.com/google/subcommands"
	"github.com/phuslu/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&renderCmd{}, "dashboard")
	c.Register(&insightsCmd{}, "dashboard")
	c.Register(&returnsCmd{}, "markets")
	c.Register(&mcpCmd{}, "server")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

const defaultConfigFile = "hud.toml"

var configFile = flag.String("config", defaultConfigFile, "Path to the TOML configuration file")

// LoadConfig loads the configuration file and sets up logging.
// A missing default configuration file is not an error.
func LoadConfig() (*config.Config, error) {
	path := *configFile
	if path == defaultConfigFile {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	config.SetupLogging(cfg.Logging.Level, os.Stderr)
	return cfg, nil
}

// newClient returns the HTTP client shared by every source.
func newClient(cfg *config.Config) *http.Client {
	ttl, err := cfg.CacheTTL()
	if err != nil {
		log.Warn().Err(err).Msg("cache disabled")
	}
	return fetch.NewClient(cfg.Cache.Dir, ttl)
}

// newBuilder wires the configured sources into a dashboard.Builder.
func newBuilder(ctx context.Context, cfg *config.Config, client *http.Client) (*dashboard.Builder, error) {
	src, err := sheets.New(cfg.Sheets.ID, cfg.Sheets.Dir, client)
	if err != nil {
		return nil, err
	}
	b := &dashboard.Builder{
		Tables:      src,
		Prices:      yahoo.New(client),
		News:        news.NewReader(client),
		Calendar:    news.NewCalendar(client, cfg.Market.TEAPIKey),
		Instruments: hud.DefaultInstruments(cfg.Market.WINTicker, cfg.Market.WDOTicker),
		NewsItems:   cfg.Market.NewsItems,
		Player:      cfg.Player,
		Manual:      cfg.Placeholders(),
	}
	if cfg.Agent.GeminiAPIKey != "" {
		gc, err := agent.NewClient(ctx, cfg.Agent.GeminiAPIKey, nil, "")
		if err != nil {
			log.Warn().Err(err).Msg("market alerts disabled")
		} else {
			b.Advisor = agent.NewAnalyst(gc, cfg.Agent.Model)
		}
	}
	return b, nil
}

// renderDashboard builds the mapping and renders the configured template.
func renderDashboard(ctx context.Context, cfg *config.Config, client *http.Client) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	tmpl, err := renderer.Load(cfg.Template)
	if err != nil {
		return "", err
	}
	b, err := newBuilder(ctx, cfg, client)
	if err != nil {
		return "", err
	}
	m, err := b.Build(ctx)
	if err != nil {
		return "", err
	}
	return renderer.Render(tmpl, m), nil
}

// printMarkdown prints md on the terminal, or raw when it cannot be styled.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(md)
}
