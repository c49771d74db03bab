package history

import (
	"errors"
	"os/user"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/qjpcpu/benchprobe/assert"
	"github.com/qjpcpu/benchprobe/bench"
	"github.com/qjpcpu/benchprobe/json"
	"github.com/xujiajun/nutsdb"
	"github.com/xujiajun/nutsdb/ds/zset"
	"golang.org/x/mod/semver"
)

const (
	defaultDir = ".benchprobe"
	runBucket  = "runs"
)

// DefaultMaxRuns kept in store
var DefaultMaxRuns = 20

// ErrNoRun no run stored
var ErrNoRun = errors.New("history: no run")

// Store of runs ordered by start time
type Store struct {
	db      *nutsdb.DB
	MaxRuns int
}

// HomeDir of store namespace under ~/.benchprobe
func HomeDir(ns ...string) (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	ps := append([]string{usr.HomeDir, defaultDir}, ns...)
	return filepath.Join(ps...), nil
}

// MustOpenHome open store under ~/.benchprobe
func MustOpenHome(ns ...string) *Store {
	s, err := OpenHome(ns...)
	assert.ShouldBeNilf(err, "Can't open history store")
	return s
}

// OpenHome open store under ~/.benchprobe
func OpenHome(ns ...string) (*Store, error) {
	dir, err := HomeDir(ns...)
	if err != nil {
		return nil, err
	}
	return Open(dir)
}

// Open store in dir
func Open(dir string) (*Store, error) {
	opt := nutsdb.DefaultOptions
	opt.Dir = dir
	db, err := nutsdb.Open(opt)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, MaxRuns: DefaultMaxRuns}, nil
}

// Close store
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) bucketExist() bool {
	if s.db.SortedSetIdx == nil {
		return false
	}
	_, ok := s.db.SortedSetIdx[runBucket]
	return ok
}

// Save run, oldest runs are dropped beyond MaxRuns
func (s *Store) Save(run bench.Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *nutsdb.Tx) error {
		if s.MaxRuns > 0 && s.bucketExist() {
			if size, _ := tx.ZCard(runBucket); size >= s.MaxRuns {
				for i := 0; i < size-s.MaxRuns+1; i++ {
					tx.ZPopMin(runBucket)
				}
			}
		}
		return tx.ZAdd(runBucket, []byte(run.ID), float64(run.StartedAt.UnixNano()), data)
	})
}

// List runs newest first
func (s *Store) List() ([]bench.Run, error) {
	if !s.bucketExist() {
		return nil, nil
	}
	var nodes []*zset.SortedSetNode
	if err := s.db.View(func(tx *nutsdb.Tx) error {
		members, err := tx.ZMembers(runBucket)
		if err != nil {
			return err
		}
		for _, node := range members {
			nodes = append(nodes, node)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	/* sort by start time desc */
	sort.SliceStable(nodes, func(i, j int) bool {
		return float64(nodes[i].Score()) > float64(nodes[j].Score())
	})
	runs := make([]bench.Run, 0, len(nodes))
	for _, node := range nodes {
		var run bench.Run
		if err := json.Unmarshal(node.Value, &run); err != nil {
			continue
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// Latest run built by a toolchain of same major.minor,
// any run matches when toolchain is not a release version
func (s *Store) Latest(toolchain string) (bench.Run, error) {
	runs, err := s.List()
	if err != nil {
		return bench.Run{}, err
	}
	if run, ok := latestOf(runs, toolchain, nil); ok {
		return run, nil
	}
	return bench.Run{}, ErrNoRun
}

// Baseline newest run of runs started before cur with the toolchain of cur
func Baseline(runs []bench.Run, cur bench.Run) (bench.Run, bool) {
	return latestOf(runs, cur.Toolchain, func(r bench.Run) bool {
		return r.StartedAt.Before(cur.StartedAt)
	})
}

func latestOf(runs []bench.Run, toolchain string, accept func(bench.Run) bool) (bench.Run, bool) {
	var found bench.Run
	var ok bool
	for _, run := range runs {
		if !SameToolchain(toolchain, run.Toolchain) || (accept != nil && !accept(run)) {
			continue
		}
		if !ok || run.StartedAt.After(found.StartedAt) {
			found, ok = run, true
		}
	}
	return found, ok
}

// SameToolchain compare go versions like go1.15.2 on major.minor
func SameToolchain(a, b string) bool {
	va, vb := toSemver(a), toSemver(b)
	if va == "" || vb == "" {
		return true
	}
	return semver.MajorMinor(va) == semver.MajorMinor(vb)
}

func toSemver(toolchain string) string {
	v := "v" + strings.TrimPrefix(strings.TrimSpace(toolchain), "go")
	if !semver.IsValid(v) {
		return ""
	}
	return v
}

// Sink save run on completion
type Sink struct {
	Store  *Store
	Config bench.Config
	now    func() time.Time
}

// NewSink save runs into store
func NewSink(s *Store, cfg bench.Config) *Sink {
	return &Sink{Store: s, Config: cfg, now: time.Now}
}

func (s *Sink) OnCycle(bench.CycleEvent) {}

func (s *Sink) OnComplete(e bench.CompleteEvent) error {
	return s.Store.Save(bench.NewRun(s.now().Add(-e.Elapsed), s.Config, e.Results))
}
