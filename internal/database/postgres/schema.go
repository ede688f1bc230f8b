package postgres

// schema is idempotent; seq columns keep insertion order for listings.
const schema = `
CREATE TABLE IF NOT EXISTS company (
	id             INTEGER PRIMARY KEY,
	name           TEXT NOT NULL DEFAULT '',
	callsign       TEXT NOT NULL DEFAULT '',
	headquarters   TEXT NOT NULL DEFAULT '',
	focus_area     TEXT NOT NULL DEFAULT '',
	balance        DOUBLE PRECISION NOT NULL DEFAULT 0,
	aircraft       INTEGER NOT NULL DEFAULT 0,
	total_flights  INTEGER NOT NULL DEFAULT 0,
	total_earnings DOUBLE PRECISION NOT NULL DEFAULT 0,
	flight_hours   DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS pilot (
	id                 INTEGER PRIMARY KEY,
	name               TEXT NOT NULL DEFAULT '',
	rank               TEXT NOT NULL DEFAULT '',
	total_flights      INTEGER NOT NULL DEFAULT 0,
	total_hours        DOUBLE PRECISION NOT NULL DEFAULT 0,
	total_distance     DOUBLE PRECISION NOT NULL DEFAULT 0,
	total_earnings     DOUBLE PRECISION NOT NULL DEFAULT 0,
	rating             DOUBLE PRECISION NOT NULL DEFAULT 0,
	on_time_percentage INTEGER NOT NULL DEFAULT 0,
	on_time_flights    INTEGER NOT NULL DEFAULT 0,
	experience         INTEGER NOT NULL DEFAULT 0,
	next_rank_xp       INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS fleet (
	seq                    BIGSERIAL,
	id                     TEXT PRIMARY KEY,
	registration           TEXT NOT NULL DEFAULT '',
	"type"                 TEXT NOT NULL DEFAULT '',
	manufacturer           TEXT NOT NULL DEFAULT '',
	model                  TEXT NOT NULL DEFAULT '',
	"year"                 INTEGER NOT NULL DEFAULT 0,
	status                 TEXT NOT NULL DEFAULT '',
	location               TEXT NOT NULL DEFAULT '',
	total_hours            DOUBLE PRECISION NOT NULL DEFAULT 0,
	hours_since_inspection DOUBLE PRECISION NOT NULL DEFAULT 0,
	next_inspection_due    DOUBLE PRECISION NOT NULL DEFAULT 0,
	"condition"            TEXT NOT NULL DEFAULT '',
	condition_details      JSONB,
	mel_list               JSONB,
	locked_by              TEXT,
	current_flight         TEXT,
	price                  DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS active_flights (
	seq             BIGSERIAL,
	id              TEXT PRIMARY KEY,
	from_name       TEXT NOT NULL DEFAULT '',
	from_code       TEXT NOT NULL DEFAULT '',
	to_name         TEXT NOT NULL DEFAULT '',
	to_code         TEXT NOT NULL DEFAULT '',
	duration        DOUBLE PRECISION NOT NULL DEFAULT 0,
	distance        DOUBLE PRECISION NOT NULL DEFAULT 0,
	cargo_type      TEXT NOT NULL DEFAULT '',
	passenger_count INTEGER NOT NULL DEFAULT 0,
	priority        TEXT NOT NULL DEFAULT '',
	weather         TEXT NOT NULL DEFAULT '',
	notes           TEXT NOT NULL DEFAULT '',
	aircraft_id     TEXT NOT NULL,
	registration    TEXT NOT NULL DEFAULT '',
	accepted_at     TIMESTAMPTZ NOT NULL,
	status          TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS completed_flights (
	seq          BIGSERIAL,
	id           TEXT PRIMARY KEY,
	flight_id    TEXT NOT NULL,
	route        TEXT NOT NULL DEFAULT '',
	aircraft_id  TEXT NOT NULL DEFAULT '',
	registration TEXT NOT NULL DEFAULT '',
	duration     DOUBLE PRECISION NOT NULL DEFAULT 0,
	distance     DOUBLE PRECISION NOT NULL DEFAULT 0,
	earnings     DOUBLE PRECISION NOT NULL DEFAULT 0,
	briefing     JSONB,
	completed_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_completed_flights_aircraft ON completed_flights (aircraft_id);

ALTER TABLE pilot ADD COLUMN IF NOT EXISTS on_time_flights INTEGER NOT NULL DEFAULT 0;
`
