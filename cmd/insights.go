package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/hud"
	"github.com/etnz/hud/date"
	"github.com/etnz/hud/sheets"
	"github.com/google/subcommands"
)

type insightsCmd struct {
	date string
	raw  bool
}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "display the health insights table" }
func (*insightsCmd) Usage() string {
	return `hud insights [-d <date>] [-raw]

  Displays the WTD, MTD, QTD, YTD and TOTAL aggregates of the daily records.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the report (defaults to today in BRT)")
	f.BoolVar(&c.raw, "raw", false, "Print the raw markdown")
}

func (c *insightsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	today := date.Today()
	if c.date != "" {
		if today, err = date.Parse(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	src, err := sheets.New(cfg.Sheets.ID, cfg.Sheets.Dir, newClient(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	daily, err := src.Daily(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	md := insightsMarkdown(daily, today)
	if c.raw {
		fmt.Print(md)
	} else {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}

// insightsMarkdown titles the insights table with the range of days it covers.
func insightsMarkdown(daily *hud.DailyTable, today date.Date) string {
	title := "# Insights " + today.String()
	if r, ok := date.Total.Range(today, daily.First()); ok {
		title = "# Insights " + r.String()
	}
	return title + "\n\n" + hud.InsightsTable(daily, today) + "\n"
}
