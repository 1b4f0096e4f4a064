// Package store archives scenario reports into a SQLite database so
// repeated experiment runs can be compared and re-plotted without
// re-evaluating the engine.
//
// Schema: a runs table (one row per RunAll invocation) and a
// scenario_results table (one row per scenario, holding the headline
// total plus the full result payload as JSON in the stable contract
// shape). The JSON column is the same byte-for-byte structure the
// plotting collaborator consumes from the report file, so a row can be
// extracted and fed to it directly.
package store
