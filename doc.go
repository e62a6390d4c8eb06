// Package equate reconciles a holder's equity-plan activity (purchases,
// awards, sales, dividends) against a sparse multi-currency historical
// exchange-rate table.
//
// The core functionalities include:
//   - Rule Engine: classifying raw activity records into investment
//     categories, with per-company override rules on top of generic
//     pattern-based base rules.
//   - Reference Points: one priced, dated, categorized economic event per
//     activity record, each carrying its price in every currency the rate
//     table covers for that date.
//   - Exchange-Rate Cache: reducing a full historical rate table to the
//     handful of rows actually referenced by activity, with nearest-date
//     fallback.
//   - Price Conversion: EUR-pivot conversion from any source currency into
//     every covered currency, degrading to a single-currency quote when
//     coverage is missing.
//   - Timelines: a daily step-function price series synthesized from
//     reference points, or extracted directly from a precomputed daily
//     multi-currency price table when one exists.
//
// This package serves as the foundational logic for the `eqc` command-line
// tool. It is an in-process library: spreadsheet ingestion, display logic
// and persistence of user preferences are external collaborators.
package equate
