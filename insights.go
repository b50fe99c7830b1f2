package hud

import (
	"bytes"
	"strings"

	"github.com/etnz/hud/date"
	md "github.com/nao1215/markdown"
)

// NoData is the insights table of an empty dataset.
const NoData = "_Sem dados_"

// Display is how a metric value is formatted.
type Display int

const (
	AsNumber Display = iota // two decimals
	AsTime                  // HH:MM from hours
	AsPace                  // M:SS from minutes
	AsInt                   // grouped integer
)

// Format formats v according to d.
func (d Display) Format(v Value) string {
	switch d {
	case AsTime:
		return HoursToHHMM(v)
	case AsPace:
		return MinutesToMMSS(v)
	case AsInt:
		return IntFormat(v)
	default:
		return NumFormat(v, 2)
	}
}

// Metric is one line of the insights table.
type Metric struct {
	Name    string
	Column  Column
	Mode    Mode
	Display Display
}

// InsightMetrics is the ordered list of metrics of the insights table.
var InsightMetrics = []Metric{
	{"Sono (h) — Média", SleepHours, Mean, AsTime},
	{"Sono Deep (h) — Média", SleepDeep, Mean, AsTime},
	{"Sono REM (h) — Média", SleepREM, Mean, AsTime},
	{"Sono Light (h) — Média", SleepLight, Mean, AsTime},
	{"Qualidade do sono (score)", SleepScore, Mean, AsNumber},
	{"Distância corrida (km) — Soma", RunKm, Sum, AsNumber},
	{"Distância corrida (km) — Média", RunKm, Mean, AsNumber},
	{"Pace médio (min/km)", PaceColumn, Mean, AsPace},
	{"Passos — Média", Steps, Mean, AsInt},
	{"Calorias (total dia) — Média", Calories, Mean, AsNumber},
	{"Body Battery (máx)", BodyBatteryMax, Mean, AsNumber},
	{"Stress médio", Stress, Mean, AsNumber},
	{"Breathwork (min) — Média", Breathwork, Mean, AsInt},
}

// InsightWindows are the columns of the insights table.
var InsightWindows = []date.Window{date.WeekToDate, date.MonthToDate, date.QuarterToDate, date.YearToDate, date.Total}

// InsightsTable returns a markdown table of every InsightMetrics over every InsightWindows.
// Cells without data hold the Placeholder. An empty table returns NoData.
func InsightsTable(t *DailyTable, today date.Date) string {
	if t.Len() == 0 {
		return NoData
	}
	header := []string{"Métrica"}
	align := []md.TableAlignment{md.AlignLeft}
	for _, w := range InsightWindows {
		header = append(header, string(w))
		align = append(align, md.AlignRight)
	}

	rows := make([][]string, 0, len(InsightMetrics))
	for _, m := range InsightMetrics {
		line := []string{m.Name}
		for _, w := range InsightWindows {
			line = append(line, m.Display.Format(PeriodAggregate(t, m.Column, w, m.Mode, today)))
		}
		rows = append(rows, line)
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.Table(md.TableSet{Header: header, Rows: rows, Alignment: align})
	return strings.TrimRight(doc.String(), "\r\n")
}
