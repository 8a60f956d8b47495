package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/okian/internmatch/internal/domain/model"
)

// skillListSeparator joins multi-valued skill/interest columns. Skill names
// may contain commas in theory but never do in practice; the original
// dataset used comma-separated fields the same way.
const skillListSeparator = ","

const schema = `
CREATE TABLE IF NOT EXISTS candidates (
	id               TEXT PRIMARY KEY,
	location         TEXT NOT NULL DEFAULT '',
	university       TEXT NOT NULL DEFAULT '',
	major            TEXT NOT NULL DEFAULT '',
	qualification    TEXT NOT NULL DEFAULT '',
	department       TEXT NOT NULL DEFAULT '',
	profile_complete INTEGER NOT NULL DEFAULT 0,
	skills           TEXT NOT NULL DEFAULT '',
	skill_levels     TEXT NOT NULL DEFAULT '',
	interests        TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS internships (
	id              TEXT PRIMARY KEY,
	name            TEXT NOT NULL DEFAULT '',
	company         TEXT NOT NULL DEFAULT '',
	location        TEXT NOT NULL DEFAULT '',
	department      TEXT NOT NULL DEFAULT '',
	qualification   TEXT NOT NULL DEFAULT '',
	remote          INTEGER NOT NULL DEFAULT 0,
	posted_date     TEXT NOT NULL DEFAULT '',
	applicant_count INTEGER NOT NULL DEFAULT 0,
	active          INTEGER NOT NULL DEFAULT 1,
	required_skills TEXT NOT NULL DEFAULT '',
	interests       TEXT NOT NULL DEFAULT '',
	seq             INTEGER
);
CREATE INDEX IF NOT EXISTS idx_internships_active ON internships(active, seq);
`

// SQLStore backs both stores with a sqlite database.
type SQLStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) a sqlite-backed store at path.
func OpenSQLite(path string) (*SQLStore, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite wants a single writer
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}
	return &SQLStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// GetCandidateProfile returns the profile for id or ErrNotFound.
func (s *SQLStore) GetCandidateProfile(ctx context.Context, id string) (model.CandidateProfile, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, location, university, major, qualification, department,
       profile_complete, skills, skill_levels, interests
FROM candidates WHERE id = ?;`, id)

	var p model.CandidateProfile
	var complete int
	var skills, levels, interests string
	err := row.Scan(&p.ID, &p.Location, &p.University, &p.Major, &p.Qualification,
		&p.Department, &complete, &skills, &levels, &interests)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CandidateProfile{}, ErrNotFound
	}
	if err != nil {
		return model.CandidateProfile{}, fmt.Errorf("query candidate: %w", err)
	}
	p.ProfileComplete = complete != 0
	p.Skills = decodeSkills(skills, levels)
	p.Interests = splitList(interests)
	return p, nil
}

// ListActiveInternships returns active listings in insertion order.
func (s *SQLStore) ListActiveInternships(ctx context.Context) ([]model.InternshipListing, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, name, company, location, department, qualification,
       remote, posted_date, applicant_count, active, required_skills, interests
FROM internships WHERE active = 1 ORDER BY seq;`)
	if err != nil {
		return nil, fmt.Errorf("query internships: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.InternshipListing
	for rows.Next() {
		listing, err := scanListing(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate internships: %w", err)
	}
	return out, nil
}

// GetInternship returns the listing for id or ErrNotFound.
func (s *SQLStore) GetInternship(ctx context.Context, id string) (model.InternshipListing, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, name, company, location, department, qualification,
       remote, posted_date, applicant_count, active, required_skills, interests
FROM internships WHERE id = ?;`, id)

	listing, err := scanListing(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.InternshipListing{}, ErrNotFound
	}
	return listing, err
}

// Seed loads a dataset, replacing rows that share an id.
func (s *SQLStore) Seed(ctx context.Context, ds *Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, p := range ds.Profiles {
		skills, levels := encodeSkills(p.Skills)
		_, err := tx.ExecContext(ctx, `
INSERT OR REPLACE INTO candidates
(id, location, university, major, qualification, department, profile_complete, skills, skill_levels, interests)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
			p.ID, p.Location, p.University, p.Major, p.Qualification, p.Department,
			boolToInt(p.ProfileComplete), skills, levels, joinList(p.Interests))
		if err != nil {
			return fmt.Errorf("seed candidate %s: %w", p.ID, err)
		}
	}
	for i, l := range ds.Internships {
		var posted string
		if !l.PostedDate.IsZero() {
			posted = l.PostedDate.Format(time.RFC3339)
		}
		_, err := tx.ExecContext(ctx, `
INSERT OR REPLACE INTO internships
(id, name, company, location, department, qualification, remote, posted_date, applicant_count, active, required_skills, interests, seq)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
			l.ID, l.Name, l.Company, l.Location, l.Department, l.Qualification,
			boolToInt(l.Remote), posted, l.ApplicantCount, boolToInt(l.Active),
			joinList(l.RequiredSkills), joinList(l.Interests), i)
		if err != nil {
			return fmt.Errorf("seed internship %s: %w", l.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

type scanFunc func(dest ...any) error

func scanListing(scan scanFunc) (model.InternshipListing, error) {
	var l model.InternshipListing
	var remote, active int
	var posted, skills, interests string
	err := scan(&l.ID, &l.Name, &l.Company, &l.Location, &l.Department, &l.Qualification,
		&remote, &posted, &l.ApplicantCount, &active, &skills, &interests)
	if err != nil {
		return model.InternshipListing{}, err
	}
	l.Remote = remote != 0
	l.Active = active != 0
	l.RequiredSkills = splitList(skills)
	l.Interests = splitList(interests)
	if posted != "" {
		if ts, perr := time.Parse(time.RFC3339, posted); perr == nil {
			l.PostedDate = ts
		}
	}
	return l, nil
}

func encodeSkills(skills []model.SkillRating) (names, levels string) {
	ns := make([]string, len(skills))
	ls := make([]string, len(skills))
	for i, s := range skills {
		ns[i] = s.Name
		ls[i] = fmt.Sprintf("%d", s.Level)
	}
	return strings.Join(ns, skillListSeparator), strings.Join(ls, skillListSeparator)
}

func decodeSkills(names, levels string) []model.SkillRating {
	ns := splitList(names)
	ls := splitList(levels)
	out := make([]model.SkillRating, len(ns))
	for i, n := range ns {
		out[i] = model.SkillRating{Name: n}
		if i < len(ls) {
			var lvl int
			if _, err := fmt.Sscanf(ls[i], "%d", &lvl); err == nil {
				out[i].Level = lvl
			}
		}
	}
	return out
}

func joinList(items []string) string {
	return strings.Join(items, skillListSeparator)
}

func splitList(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	parts := strings.Split(field, skillListSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
