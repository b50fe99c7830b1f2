package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/etnz/hud/config"
	"github.com/etnz/hud/notion"
	"github.com/etnz/hud/renderer"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/phuslu/log"
)

// renderCmd holds the flags for the 'render' subcommand.
type renderCmd struct {
	output string
	html   string
	print  bool
	push   bool
	watch  int
}

func (*renderCmd) Name() string     { return "render" }
func (*renderCmd) Synopsis() string { return "render the daily HUD" }
func (*renderCmd) Usage() string {
	return `hud render [-o <file>] [-html <file>] [-print] [-push=false] [-w n]

  Renders the daily HUD into a markdown file, optionally exports it to HTML,
  prints it on the terminal and publishes it to Notion when a token and a
  block id are configured.
`
}

func (c *renderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Markdown output file (defaults to the configured output)")
	f.StringVar(&c.html, "html", "", "Also export the HUD as HTML into this file")
	f.BoolVar(&c.print, "print", false, "Print the HUD on the terminal")
	f.BoolVar(&c.push, "push", true, "Publish to Notion when it is configured")
	f.IntVar(&c.watch, "w", 0, "run every n seconds")
}

func (c *renderCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.output == "" {
		c.output = cfg.Output
	}
	client := newClient(cfg)

	for {
		if err := c.run(ctx, cfg, client); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if c.watch <= 0 {
				return subcommands.ExitFailure
			}
		}
		if c.watch <= 0 {
			break
		}
		select {
		case <-ctx.Done():
			return subcommands.ExitSuccess
		case <-time.After(time.Duration(c.watch) * time.Second):
		}
	}
	return subcommands.ExitSuccess
}

// run renders the HUD once and sends it to every requested output.
func (c *renderCmd) run(ctx context.Context, cfg *config.Config, client *http.Client) error {
	id := uuid.NewString()
	start := time.Now()
	log.Info().Str("run", id).Msg("rendering")

	md, err := renderDashboard(ctx, cfg, client)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.output, []byte(md), 0644); err != nil {
		return fmt.Errorf("cannot write %q: %w", c.output, err)
	}
	if c.html != "" {
		if err := writeHTML(c.html, md); err != nil {
			return err
		}
	}
	if c.print {
		if c.watch > 0 {
			fmt.Println("\033[2J")
		}
		printMarkdown(md)
	}
	if c.push && cfg.PushEnabled() {
		// the local file is kept even when publishing fails.
		if err := notion.New(cfg.Notion.Token, client).PushCodeBlock(ctx, cfg.Notion.BlockID, md); err != nil {
			return fmt.Errorf("cannot publish to Notion: %w", err)
		}
		log.Info().Str("run", id).Msg("published to Notion")
	}
	log.Info().Str("run", id).Str("output", c.output).Dur("elapsed", time.Since(start)).Msg("rendered")
	return nil
}

// writeHTML writes md converted to a standalone HTML page.
func writeHTML(path, md string) error {
	body, err := renderer.HTML(md)
	if err != nil {
		return err
	}
	page := "<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>HUD</title></head>\n<body>\n" + body + "</body>\n</html>\n"
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return nil
}
