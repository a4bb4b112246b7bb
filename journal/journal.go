package journal

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/mindfulcampus/bottlesmash/parameter"
)

// Smash is one journal row: an object that reached the wall and burst
type Smash struct {
	ID        string // assigned by Record when empty
	Time      time.Time
	Kind      string
	Glass     string
	Liquid    string
	X, Y      float64
	WallDepth float64
	Shards    int
	Pieces    int
}

// KindCount is a per-kind tally
type KindCount struct {
	Kind  string
	Count int64
}

const schema = `
CREATE TABLE IF NOT EXISTS smashes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    uid TEXT NOT NULL UNIQUE,
    ts INTEGER NOT NULL,
    kind TEXT NOT NULL,
    glass TEXT NOT NULL,
    liquid TEXT NOT NULL,
    x REAL NOT NULL,
    y REAL NOT NULL,
    wall_depth REAL NOT NULL,
    shards INTEGER NOT NULL,
    pieces INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_smashes_ts ON smashes(ts);
`

const insertSmash = `INSERT OR IGNORE INTO smashes (uid, ts, kind, glass, liquid, x, y, wall_depth, shards, pieces)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Journal persists smashes to SQLite, batching writes on a background goroutine
type Journal struct {
	db *sql.DB

	batchChan chan Smash
	stopCh    chan struct{}
	doneCh    chan struct{}
	flushCh   chan chan struct{}
	closeOnce sync.Once

	// sendMu orders Record sends before Close; closed is guarded by it
	sendMu sync.RWMutex
	closed bool

	mu      sync.RWMutex
	dropped atomic.Int64
	failed  atomic.Int64
}

// Open creates or opens the journal database at path
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, "create journal directory")
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(2000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open journal")
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "connect %s", path)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create schema")
	}

	j := &Journal{
		db:        db,
		batchChan: make(chan Smash, parameter.JournalChannelBuffer),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
		flushCh:   make(chan chan struct{}),
	}
	go j.batchWriter()

	log.Printf("Journal: Opened %s", path)
	return j, nil
}

// Record queues a smash for writing. Returns false when the queue is full
// or the journal is closed; the row is dropped. A row accepted here is
// written before Close returns
func (j *Journal) Record(s Smash) bool {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	j.sendMu.RLock()
	defer j.sendMu.RUnlock()
	if j.closed {
		return false
	}
	select {
	case j.batchChan <- s:
		return true
	default:
		j.dropped.Add(1)
		return false
	}
}

// Dropped counts rows rejected by a full queue
func (j *Journal) Dropped() int64 { return j.dropped.Load() }

// Failed counts rows lost to write errors
func (j *Journal) Failed() int64 { return j.failed.Load() }

func (j *Journal) batchWriter() {
	defer close(j.doneCh)

	batch := make([]Smash, 0, parameter.JournalBatchSize)
	timer := time.NewTimer(parameter.JournalBatchTimeout)
	defer timer.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := j.writeBatch(batch); err != nil {
			j.failed.Add(int64(len(batch)))
			log.Printf("Journal: Dropped batch of %d: %v", len(batch), err)
		}
		batch = batch[:0]
	}
	drain := func() {
		for {
			select {
			case s := <-j.batchChan:
				batch = append(batch, s)
			default:
				return
			}
		}
	}

	for {
		select {
		case s := <-j.batchChan:
			batch = append(batch, s)
			if len(batch) >= parameter.JournalBatchSize {
				flush()
				timer.Reset(parameter.JournalBatchTimeout)
			}

		case <-timer.C:
			flush()
			timer.Reset(parameter.JournalBatchTimeout)

		case done := <-j.flushCh:
			drain()
			flush()
			close(done)

		case <-j.stopCh:
			drain()
			flush()
			return
		}
	}
}

func (j *Journal) writeBatch(batch []Smash) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	tx, err := j.db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	stmt, err := tx.Prepare(insertSmash)
	if err != nil {
		tx.Rollback()
		return errors.Wrap(err, "prepare")
	}
	defer stmt.Close()

	for _, s := range batch {
		if _, err := stmt.Exec(s.ID, s.Time.UnixNano(), s.Kind, s.Glass, s.Liquid, s.X, s.Y, s.WallDepth, s.Shards, s.Pieces); err != nil {
			tx.Rollback()
			return errors.Wrap(err, "insert")
		}
	}
	return errors.Wrap(tx.Commit(), "commit")
}

// Flush blocks until every queued row is written
func (j *Journal) Flush() error {
	done := make(chan struct{})
	select {
	case j.flushCh <- done:
	case <-j.doneCh:
		return errors.New("journal closed")
	}
	<-done
	return nil
}

// Close writes pending rows and closes the database. Safe to call twice
func (j *Journal) Close() error {
	var err error
	j.closeOnce.Do(func() {
		j.sendMu.Lock()
		j.closed = true
		j.sendMu.Unlock()

		close(j.stopCh)
		<-j.doneCh
		err = j.db.Close()
	})
	return err
}

// Total returns the number of stored smashes
func (j *Journal) Total() (int64, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var n int64
	if err := j.db.QueryRow("SELECT COUNT(*) FROM smashes").Scan(&n); err != nil {
		return 0, errors.Wrap(err, "count smashes")
	}
	return n, nil
}

// ByKind returns stored smash counts, most smashed kind first
func (j *Journal) ByKind() ([]KindCount, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	rows, err := j.db.Query("SELECT kind, COUNT(*) AS n FROM smashes GROUP BY kind ORDER BY n DESC, kind")
	if err != nil {
		return nil, errors.Wrap(err, "query kinds")
	}
	defer rows.Close()

	var out []KindCount
	for rows.Next() {
		var kc KindCount
		if err := rows.Scan(&kc.Kind, &kc.Count); err != nil {
			return nil, errors.Wrap(err, "scan kind")
		}
		out = append(out, kc)
	}
	return out, rows.Err()
}

// Recent returns up to limit smashes, newest first
func (j *Journal) Recent(limit int) ([]Smash, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	rows, err := j.db.Query(`SELECT uid, ts, kind, glass, liquid, x, y, wall_depth, shards, pieces
		FROM smashes ORDER BY ts DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query recent")
	}
	defer rows.Close()

	var out []Smash
	for rows.Next() {
		var s Smash
		var ts int64
		if err := rows.Scan(&s.ID, &ts, &s.Kind, &s.Glass, &s.Liquid, &s.X, &s.Y, &s.WallDepth, &s.Shards, &s.Pieces); err != nil {
			return nil, errors.Wrap(err, "scan smash")
		}
		s.Time = time.Unix(0, ts)
		out = append(out, s)
	}
	return out, rows.Err()
}
