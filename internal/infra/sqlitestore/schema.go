package sqlitestore

const schema = `
CREATE TABLE IF NOT EXISTS journals (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL UNIQUE,
    counter     INTEGER NOT NULL DEFAULT 0,
    updated_at  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS entries (
    journal_id  TEXT NOT NULL REFERENCES journals(id) ON DELETE CASCADE,
    position    INTEGER NOT NULL,
    number      INTEGER NOT NULL,
    text        TEXT NOT NULL,
    created_at  INTEGER NOT NULL,
    PRIMARY KEY (journal_id, position)
);
`
