package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/hud"
	"github.com/etnz/hud/date"
	"github.com/etnz/hud/yahoo"
	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
	"github.com/phuslu/log"
)

type returnsCmd struct {
	raw bool
}

func (*returnsCmd) Name() string     { return "returns" }
func (*returnsCmd) Synopsis() string { return "display the market returns table" }
func (*returnsCmd) Usage() string {
	return `hud returns [-raw]

  Displays the level and the D-1, WTD, MTD, QTD, YTD and 12M returns of the
  dashboard instruments.
`
}

func (c *returnsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print the raw markdown")
}

func (c *returnsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	provider := yahoo.New(newClient(cfg))
	today := date.Today()

	instruments := hud.DefaultInstruments(cfg.Market.WINTicker, cfg.Market.WDOTicker)
	series := make([]*hud.Series, len(instruments))
	for i, in := range instruments {
		s, err := provider.Series(ctx, in, today)
		if err != nil {
			log.Warn().Str("instrument", in.Key).Err(err).Msg("prices unavailable")
			s = new(hud.Series)
		}
		series[i] = s
	}

	table := returnsTable(instruments, series, today)
	if c.raw {
		fmt.Println(table)
	} else {
		printMarkdown(table)
	}
	return subcommands.ExitSuccess
}

// returnsTable formats the level and returns of every instrument as a markdown table.
func returnsTable(instruments []hud.Instrument, series []*hud.Series, today date.Date) string {
	header := []string{"Ativo", "Nível"}
	align := []md.TableAlignment{md.AlignLeft, md.AlignRight}
	for _, p := range hud.ReturnPeriods {
		header = append(header, string(p))
		align = append(align, md.AlignRight)
	}

	rows := make([][]string, 0, len(instruments))
	for i, in := range instruments {
		level := in.FormatLevel(series[i])
		if !in.HasLevel {
			level = hud.Placeholder
		}
		set := hud.ComputeReturnSet(series[i], today)
		line := []string{in.Key, level}
		for _, p := range hud.ReturnPeriods {
			line = append(line, hud.PctFormat(set.Get(p)))
		}
		rows = append(rows, line)
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.Table(md.TableSet{Header: header, Rows: rows, Alignment: align})
	return strings.TrimRight(doc.String(), "\r\n")
}
