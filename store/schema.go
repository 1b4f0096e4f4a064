package store

// Schema DDL. created_at is RFC 3339 text, consistent across drivers.
const (
	createRuns = `CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TEXT NOT NULL,
    scenario_count INTEGER NOT NULL,
    failure_count INTEGER NOT NULL
);`

	createScenarioResults = `CREATE TABLE IF NOT EXISTS scenario_results (
    run_id INTEGER NOT NULL,
    label TEXT NOT NULL,
    bulk_target INTEGER NOT NULL,
    total_information REAL NOT NULL,
    payload TEXT NOT NULL,
    PRIMARY KEY (run_id, label),
    FOREIGN KEY (run_id) REFERENCES runs(run_id)
);`

	createScenarioFailures = `CREATE TABLE IF NOT EXISTS scenario_failures (
    run_id INTEGER NOT NULL,
    label TEXT NOT NULL,
    cause TEXT NOT NULL,
    PRIMARY KEY (run_id, label),
    FOREIGN KEY (run_id) REFERENCES runs(run_id)
);`
)
