package relational

import "strings"

const schemaTemplate = `
CREATE TABLE IF NOT EXISTS users (
	id {{pk}},
	username TEXT NOT NULL,
	email TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	role TEXT NOT NULL,
	created_at {{ts}} NOT NULL,
	updated_at {{ts}} NOT NULL,
	CONSTRAINT users_username_key UNIQUE (username),
	CONSTRAINT users_email_key UNIQUE (email)
);
CREATE INDEX IF NOT EXISTS users_role_idx ON users (role);
CREATE TABLE IF NOT EXISTS workout_classes (
	id {{pk}},
	trainer_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	scheduled_at {{ts}} NOT NULL,
	duration_minutes INTEGER NOT NULL,
	capacity INTEGER NOT NULL,
	created_at {{ts}} NOT NULL
);
CREATE INDEX IF NOT EXISTS workout_classes_trainer_idx ON workout_classes (trainer_id);
CREATE INDEX IF NOT EXISTS workout_classes_scheduled_idx ON workout_classes (scheduled_at);
CREATE TABLE IF NOT EXISTS memberships (
	id {{pk}},
	member_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	plan TEXT NOT NULL,
	price_cents BIGINT NOT NULL,
	starts_at {{ts}} NOT NULL,
	ends_at {{ts}} NOT NULL,
	created_at {{ts}} NOT NULL
);
CREATE INDEX IF NOT EXISTS memberships_member_idx ON memberships (member_id)
`

// schema returns the DDL statements for the active dialect, one per element.
func (d *DB) schema() []string {
	pk, ts := "INTEGER PRIMARY KEY AUTOINCREMENT", "DATETIME"
	if d.postgres {
		pk, ts = "BIGSERIAL PRIMARY KEY", "TIMESTAMPTZ"
	}
	ddl := strings.NewReplacer("{{pk}}", pk, "{{ts}}", ts).Replace(schemaTemplate)

	var stmts []string
	for _, s := range strings.Split(ddl, ";") {
		if s = strings.TrimSpace(s); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
