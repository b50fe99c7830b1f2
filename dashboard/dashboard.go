// Package dashboard loads the HUD sources and computes the values of every
// template placeholder.
//
// Only the daily table is required: every other source is optional, and a
// failing optional source is logged and leaves its placeholders empty.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/etnz/hud"
	"github.com/etnz/hud/agent"
	"github.com/etnz/hud/date"
	"github.com/etnz/hud/fetch"
	"github.com/etnz/hud/news"
	"github.com/phuslu/log"
)

// Mapping maps template placeholders to their display text.
type Mapping map[string]string

// TableSource provides the spreadsheet data.
type TableSource interface {
	Daily(ctx context.Context) (*hud.DailyTable, error)
	Activities(ctx context.Context) ([]hud.ActivityEvent, error)
	Objective(ctx context.Context, today date.Date) (string, error)
}

// PriceProvider provides daily price series.
type PriceProvider interface {
	Series(ctx context.Context, in hud.Instrument, today date.Date) (*hud.Series, error)
}

// NewsFetcher provides the latest headlines.
type NewsFetcher interface {
	Latest(ctx context.Context, n int) ([]news.Item, error)
}

// CalendarFetcher provides today's macro events, per country.
type CalendarFetcher interface {
	Today(ctx context.Context, today date.Date, loc *time.Location) (br, us []string, err error)
}

// Advisor writes market alerts from market facts.
type Advisor interface {
	Alerts(ctx context.Context, facts agent.Facts) (string, error)
}

// DefaultNewsItems is the number of headlines of the default template.
const DefaultNewsItems = 6

// Builder computes a Mapping from its sources.
type Builder struct {
	Tables      TableSource     // required
	Prices      PriceProvider   // optional
	News        NewsFetcher     // optional
	Calendar    CalendarFetcher // optional
	Advisor     Advisor         // optional
	Instruments []hud.Instrument
	NewsItems   int               // 0 means DefaultNewsItems
	Player      string            // player name
	Manual      map[string]string // values copied as is, like LOSS_MAX_R or LINK_GARMIN
	Location    *time.Location    // nil means date.Location()
	Now         func() time.Time  // nil means time.Now
}

// returned and correlated list the instruments of the returns and correlates tables.
var (
	returned   = []string{"SPX", "WIN", "WDO", "IBOV"}
	correlated = []string{"VIX", "US10Y", "DXY", "USDBRL", "BRENT", "GOLD"}
)

// correlatedPeriods are the returns displayed for correlated instruments.
var correlatedPeriods = []hud.ReturnPeriod{hud.D1, hud.WTD, hud.MTD}

func (b *Builder) location() *time.Location {
	if b.Location != nil {
		return b.Location
	}
	return date.Location()
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

// Build loads every source and returns the values of all placeholders.
//
// It fails only when the daily table cannot be loaded.
func (b *Builder) Build(ctx context.Context) (Mapping, error) {
	if b.Tables == nil {
		return nil, errors.New("no table source")
	}
	loc := b.location()
	now := b.now().In(loc)
	today := date.Of(now)

	daily, err := b.Tables.Daily(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot load daily records: %w", err)
	}

	m := Mapping{}
	for k, v := range b.Manual {
		m[k] = v
	}
	m["PLAYER"] = b.Player
	header(m, now)
	health(m, daily, today)
	m["INSIGHTS_TABLE_MD"] = hud.InsightsTable(daily, today)

	b.running(ctx, m, today)
	b.objective(ctx, m, today)
	facts := b.markets(ctx, m, today)
	b.headlines(ctx, m, loc)
	b.agenda(ctx, m, today, loc)
	b.alerts(ctx, m, facts)
	return m, nil
}

var (
	weekdays = [...]string{"Domingo", "Segunda-feira", "Terça-feira", "Quarta-feira", "Quinta-feira", "Sexta-feira", "Sábado"}
	months   = [...]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"}
)

// header sets the date and time of the title.
func header(m Mapping, now time.Time) {
	m["DATA_EXTENSO"] = fmt.Sprintf("%d de %s de %d", now.Day(), months[now.Month()-1], now.Year())
	m["DIA_SEMANA_PT"] = weekdays[now.Weekday()]
	m["HORA_LOCAL_BRT"] = now.Format("15:04") + " BRT"
}

// health sets the physiological status, mind and sleep values.
func health(m Mapping, t *hud.DailyTable, today date.Date) {
	last, _ := hud.Latest(t)
	pct, ok := hud.LatestEnergyLevel(last)
	m["ENERGY_BAR_10"] = hud.EnergyBar(pct, ok)
	m["ENERGY_PCT"] = hud.Placeholder
	if ok {
		m["ENERGY_PCT"] = strconv.Itoa(pct)
	}
	m["SONO_HORAS"] = hud.NumFormat(last.SleepHours, 1)
	m["SONO_SCORE"] = hud.NumFormat(last.SleepScore, 0)

	yesterday, _ := hud.DayOrLatest(t, today.Add(-1))
	m["KCAL_DIA_ONTEM"] = hud.IntFormat(yesterday.Calories)
	m["PASSOS_ONTEM"] = hud.IntFormat(yesterday.Steps)
	m["STRESS_SCORE"] = hud.NumFormat(hud.WeeklyStressMean(t, today), 2)

	todayMin, avg := hud.BreathworkTodayAndWeekAverage(t, today)
	m["MEDIT_MIN"] = strconv.Itoa(avg)
	m["MEDIT_HOJE"] = strconv.Itoa(todayMin)
	m["MEDIT_STREAK"] = strconv.Itoa(hud.BreathworkStreak(t))

	for key, w := range map[string]date.Window{
		"SONO_7D_H":  date.Rolling7,
		"SONO_MTD_H": date.MonthToDate,
		"SONO_QTD_H": date.QuarterToDate,
		"SONO_YTD_H": date.YearToDate,
	} {
		m[key] = hud.HoursToHHMM(hud.SleepPeriodAverage(t, hud.SleepHours, w, today))
	}
}

// paceCodes maps the pace placeholders to their window codes.
var paceCodes = map[string]string{
	"PACE_7D":   "7D",
	"PACE_SEM":  "SEM",
	"PACE_MES":  "MES",
	"PACE_TRIM": "TRIM",
	"PACE_ANO":  "ANO",
}

// running sets the last run and the pace averages.
func (b *Builder) running(ctx context.Context, m Mapping, today date.Date) {
	ctx, cancel := context.WithTimeout(ctx, fetch.Timeout)
	defer cancel()
	events, err := b.Tables.Activities(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("activities unavailable")
		events = nil
	}
	last := hud.LastRunningSession(events)
	m["RUN_DATA"] = last.Date
	m["RUN_DIST"] = last.Distance
	m["RUN_PACE"] = last.Pace
	m["RUN_FC_MEDIA"] = last.HeartRate

	runs := hud.DailyRunAggregate(events)
	for key, code := range paceCodes {
		m[key] = hud.MinutesToMMSS(hud.RunningPeriodAveragePace(runs, code, today))
	}
	m["VO2MAX"] = hud.NumFormat(hud.LastRunningVO2(runs), 0)
}

// objective sets today's trading objective.
func (b *Builder) objective(ctx context.Context, m Mapping, today date.Date) {
	ctx, cancel := context.WithTimeout(ctx, fetch.Timeout)
	defer cancel()
	text, err := b.Tables.Objective(ctx, today)
	if err != nil {
		log.Warn().Err(err).Msg("objective unavailable")
		text = hud.Placeholder
	}
	m["TURTLE_OBJETIVO_TEXTO"] = text
}

// markets sets the returns and levels of the instruments and returns them as facts.
func (b *Builder) markets(ctx context.Context, m Mapping, today date.Date) agent.Facts {
	for _, key := range returned {
		for _, p := range hud.ReturnPeriods {
			m[key+"_"+string(p)] = hud.Placeholder
		}
	}
	for _, key := range correlated {
		m[key+"_NIVEL"] = hud.Placeholder
		for _, p := range correlatedPeriods {
			m[key+"_"+string(p)] = hud.Placeholder
		}
	}
	facts := agent.Facts{}
	if b.Prices == nil {
		return facts
	}

	series := make([]*hud.Series, len(b.Instruments))
	var wg sync.WaitGroup
	for i, in := range b.Instruments {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(ctx, fetch.Timeout)
			defer cancel()
			s, err := b.Prices.Series(ctx, in, today)
			if err != nil {
				log.Warn().Str("instrument", in.Key).Str("symbol", in.Symbol).Err(err).Msg("prices unavailable")
				s = new(hud.Series)
			}
			series[i] = s
		}()
	}
	wg.Wait()

	for i, in := range b.Instruments {
		set := hud.ComputeReturnSet(series[i], today)
		for _, p := range hud.ReturnPeriods {
			v := hud.PctFormat(set.Get(p))
			m[in.Key+"_"+string(p)] = v
			if v != hud.Placeholder {
				facts[in.Key+" "+string(p)] = v
			}
		}
		if in.HasLevel {
			v := in.FormatLevel(series[i])
			m[in.Key+"_NIVEL"] = v
			if v != hud.Placeholder {
				facts[in.Key+" nível"] = v
			}
		}
	}
	return facts
}

// headlines sets the NEWSn_* placeholders.
func (b *Builder) headlines(ctx context.Context, m Mapping, loc *time.Location) {
	n := b.NewsItems
	if n <= 0 {
		n = DefaultNewsItems
	}
	var items []news.Item
	if b.News != nil {
		ctx, cancel := context.WithTimeout(ctx, fetch.Timeout)
		defer cancel()
		var err error
		items, err = b.News.Latest(ctx, n)
		if err != nil {
			log.Warn().Err(err).Int("items", len(items)).Msg("news partially unavailable")
		}
	}
	for i := range n {
		var it news.Item
		if i < len(items) {
			it = items[i]
		}
		prefix := "NEWS" + strconv.Itoa(i+1) + "_"
		m[prefix+"SOURCE"] = it.Source
		m[prefix+"TITULO"] = it.Title
		m[prefix+"DATAISO_BRT"] = it.Date(loc)
		m[prefix+"URL"] = it.URL
	}
}

// agenda sets today's macro events of Brazil and the United States.
func (b *Builder) agenda(ctx context.Context, m Mapping, today date.Date, loc *time.Location) {
	m["BR_EVENTOS_HOJE_LIST"] = ""
	m["US_EVENTOS_HOJE_LIST"] = ""
	if b.Calendar == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, fetch.Timeout)
	defer cancel()
	br, us, err := b.Calendar.Today(ctx, today, loc)
	if err != nil {
		log.Warn().Err(err).Msg("calendar unavailable")
		return
	}
	m["BR_EVENTOS_HOJE_LIST"] = strings.Join(br, "\n")
	m["US_EVENTOS_HOJE_LIST"] = strings.Join(us, "\n")
}

// alerts sets the market alerts written by the advisor.
func (b *Builder) alerts(ctx context.Context, m Mapping, facts agent.Facts) {
	m["ALERTAS_MERCADO_TXT"] = ""
	if b.Advisor == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, fetch.Timeout)
	defer cancel()
	text, err := b.Advisor.Alerts(ctx, facts)
	if err != nil {
		log.Warn().Err(err).Msg("alerts unavailable")
		return
	}
	m["ALERTAS_MERCADO_TXT"] = text
}
