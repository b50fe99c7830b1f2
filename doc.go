// Package hud computes the metrics of a personal daily dashboard.
//
// The package is a pure engine: it receives already loaded tables and price
// series and returns optional values or display strings. It performs no I/O,
// and reads neither the clock nor any configuration; "today" is always an
// explicit argument.
//
// The main parts are:
//   - Formatting: turning optional numbers into display strings that degrade to
//     a placeholder instead of failing.
//   - Daily records: energy, stress, breathwork and sleep statistics over
//     calendar windows, and the multi-period insights table.
//   - Running: per-day aggregation of running activities, the last session
//     summary and period averages of pace and VO2 max.
//   - Market returns: day-over-day and period anchored returns of a price
//     series.
//
// Sub packages provide the data sources (sheets, yahoo, news), the outputs
// (renderer, notion) and the orchestration (dashboard) used by the `hud`
// command-line tool.
package hud
