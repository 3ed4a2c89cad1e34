package snapshot

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Catalog stores exported attributes across runs in a SQLite database,
// so that resolved configurations of past runs can be listed and compared.
type Catalog struct {
	db *sql.DB
}

// RunInfo identifies one exported run in the catalog.
type RunInfo struct {
	ID      string
	Source  string
	Created time.Time
}

// OpenCatalog opens (creating if needed) the catalog database at path.
func OpenCatalog(path string) (*Catalog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create catalog dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		created TEXT NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create runs table: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS attrs (
		run_id TEXT NOT NULL REFERENCES runs(id),
		grp TEXT NOT NULL,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		fval REAL,
		ival INTEGER,
		sval TEXT,
		PRIMARY KEY (run_id, grp, name)
	)`); err != nil {
		return nil, fmt.Errorf("create attrs table: %w", err)
	}
	return &Catalog{db: db}, nil
}

// Close releases the database handle.
func (c *Catalog) Close() error { return c.db.Close() }

// CreateRun registers a run before its attributes are written.
func (c *Catalog) CreateRun(id, source string) error {
	_, err := c.db.Exec(`INSERT INTO runs (id, source, created) VALUES (?, ?, ?)`,
		id, source, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("register run %q: %w", id, err)
	}
	return nil
}

// Runs lists registered runs, oldest first.
func (c *Catalog) Runs() ([]RunInfo, error) {
	rows, err := c.db.Query(`SELECT id, source, created FROM runs ORDER BY created, id`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var r RunInfo
		var created string
		if err := rows.Scan(&r.ID, &r.Source, &created); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Created, _ = time.Parse(time.RFC3339, created)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Group returns an attribute writer targeting one group of one run.
func (c *Catalog) Group(runID, group string) AttributeWriter {
	return &catalogGroup{c: c, runID: runID, group: group}
}

// Attributes returns every group of a run, attributes in write order.
func (c *Catalog) Attributes(runID string) ([]Group, error) {
	rows, err := c.db.Query(
		`SELECT grp, name, kind, fval, ival, sval FROM attrs WHERE run_id = ? ORDER BY rowid`,
		runID)
	if err != nil {
		return nil, fmt.Errorf("load attributes of %q: %w", runID, err)
	}
	defer rows.Close()

	var groups []Group
	byName := make(map[string]int)
	for rows.Next() {
		var grp, name, kind string
		var fval sql.NullFloat64
		var ival sql.NullInt64
		var sval sql.NullString
		if err := rows.Scan(&grp, &name, &kind, &fval, &ival, &sval); err != nil {
			return nil, fmt.Errorf("scan attribute: %w", err)
		}

		a := Attr{Name: name, Kind: Kind(kind)}
		switch a.Kind {
		case KindFloat:
			a.Value = fval.Float64
		case KindInt:
			a.Value = int(ival.Int64)
		case KindString:
			a.Value = sval.String
		}

		i, ok := byName[grp]
		if !ok {
			i = len(groups)
			byName[grp] = i
			groups = append(groups, Group{Name: grp})
		}
		groups[i].Attrs = append(groups[i].Attrs, a)
	}
	return groups, rows.Err()
}

type catalogGroup struct {
	c     *Catalog
	runID string
	group string
}

func (g *catalogGroup) write(name, kind string, fval any, ival any, sval any) error {
	var exists bool
	err := g.c.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM attrs WHERE run_id = ? AND grp = ? AND name = ?)`,
		g.runID, g.group, name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("probe attribute %q: %w", name, err)
	}
	if exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	_, err = g.c.db.Exec(
		`INSERT INTO attrs (run_id, grp, name, kind, fval, ival, sval) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.runID, g.group, name, kind, fval, ival, sval)
	if err != nil {
		return fmt.Errorf("write attribute %q: %w", name, err)
	}
	return nil
}

func (g *catalogGroup) WriteFloat(name string, value float64) error {
	return g.write(name, string(KindFloat), value, nil, nil)
}

func (g *catalogGroup) WriteInt(name string, value int) error {
	return g.write(name, string(KindInt), nil, value, nil)
}

func (g *catalogGroup) WriteString(name string, value string) error {
	return g.write(name, string(KindString), nil, nil, value)
}
