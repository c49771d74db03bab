package history

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/qjpcpu/benchprobe/bench"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	dir   string
	store *Store
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (suite *StoreTestSuite) SetupTest() {
	dir, err := ioutil.TempDir("", "history")
	suite.Require().NoError(err)
	suite.dir = dir
	suite.store, err = Open(dir)
	suite.Require().NoError(err)
}

func (suite *StoreTestSuite) TearDownTest() {
	suite.store.Close()
	os.RemoveAll(suite.dir)
}

func makeRun(i int, toolchain string) bench.Run {
	start := time.Date(2021, 1, 1, 0, 0, i, 0, time.UTC)
	run := bench.NewRun(start, bench.DefaultConfig(), []bench.Result{
		{Benchmark: "Recursion", Environment: "native", Size: 100, Mean: time.Duration(i+1) * time.Microsecond},
	})
	run.Toolchain = toolchain
	return run
}

func (suite *StoreTestSuite) TestEmpty() {
	runs, err := suite.store.List()
	suite.NoError(err)
	suite.Empty(runs)
	_, err = suite.store.Latest("go1.15")
	suite.Equal(ErrNoRun, err)
}

func (suite *StoreTestSuite) TestSaveListNewestFirst() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.store.Save(makeRun(i, "go1.15.2")))
	}
	runs, err := suite.store.List()
	suite.NoError(err)
	suite.Len(runs, 3)
	suite.Equal(makeRun(2, "").ID, runs[0].ID)
	suite.Equal(makeRun(0, "").ID, runs[2].ID)
	suite.Equal(3*time.Microsecond, runs[0].Results[0].Mean)
}

func (suite *StoreTestSuite) TestTrim() {
	suite.store.MaxRuns = 2
	for i := 0; i < 5; i++ {
		suite.NoError(suite.store.Save(makeRun(i, "go1.15.2")))
	}
	runs, err := suite.store.List()
	suite.NoError(err)
	suite.Len(runs, 2)
	suite.Equal(makeRun(4, "").ID, runs[0].ID)
	suite.Equal(makeRun(3, "").ID, runs[1].ID)
}

func (suite *StoreTestSuite) TestLatestByToolchain() {
	suite.NoError(suite.store.Save(makeRun(0, "go1.14.6")))
	suite.NoError(suite.store.Save(makeRun(1, "go1.15.2")))
	suite.NoError(suite.store.Save(makeRun(2, "go1.16")))

	run, err := suite.store.Latest("go1.15.8")
	suite.NoError(err)
	suite.Equal("go1.15.2", run.Toolchain)

	run, err = suite.store.Latest("devel +abc")
	suite.NoError(err)
	suite.Equal("go1.16", run.Toolchain)

	_, err = suite.store.Latest("go1.13")
	suite.Equal(ErrNoRun, err)
}

func (suite *StoreTestSuite) TestSink() {
	sink := NewSink(suite.store, bench.DefaultConfig())
	now := time.Date(2021, 3, 3, 3, 3, 3, 0, time.UTC)
	sink.now = func() time.Time { return now }
	suite.NoError(sink.OnComplete(bench.CompleteEvent{Elapsed: time.Second, Results: makeRun(1, "").Results}))
	runs, err := suite.store.List()
	suite.NoError(err)
	suite.Len(runs, 1)
	suite.True(runs[0].StartedAt.Equal(now.Add(-time.Second)))
}

func TestSameToolchain(t *testing.T) {
	cases := []struct {
		a, b string
		same bool
	}{
		{"go1.15.2", "go1.15.8", true},
		{"go1.15", "go1.15.8", true},
		{"go1.15.2", "go1.16", false},
		{"devel go1.17-abc", "go1.16", true},
		{"go1.16beta1", "go1.15", true},
	}
	for _, c := range cases {
		if got := SameToolchain(c.a, c.b); got != c.same {
			t.Errorf("SameToolchain(%q,%q)=%v", c.a, c.b, got)
		}
	}
}

func TestCompare(t *testing.T) {
	prev := bench.Run{Results: []bench.Result{
		{Benchmark: "A", Environment: "native", Size: 1, Mean: 100},
		{Benchmark: "B", Environment: "native", Size: 1, Mean: 0},
		{Benchmark: "C", Environment: "native", Size: 1, Mean: 50},
	}}
	cur := bench.Run{Results: []bench.Result{
		{Benchmark: "A", Environment: "native", Size: 1, Mean: 150},
		{Benchmark: "B", Environment: "native", Size: 1, Mean: 10},
		{Benchmark: "C", Environment: "native", Size: 2, Mean: 50},
		{Benchmark: "D", Environment: "native", Size: 1, Mean: 50},
	}}
	deltas := Compare(prev, cur)
	if len(deltas) != 1 {
		t.Fatalf("expect 1 delta got %+v", deltas)
	}
	if deltas[0].Key != "A: native: 1" || deltas[0].Change != 50 {
		t.Fatalf("bad delta %+v", deltas[0])
	}
}

func TestBaselineSkipOtherToolchain(t *testing.T) {
	runs := []bench.Run{
		makeRun(3, "go1.16.1"),
		makeRun(2, "go1.16"),
		makeRun(1, "go1.15.2"),
		makeRun(0, "go1.15.1"),
	}
	base, ok := Baseline(runs, runs[0])
	if !ok || base.ID != runs[1].ID {
		t.Fatalf("expect %s got %+v", runs[1].ID, base)
	}
	base, ok = Baseline(runs, runs[2])
	if !ok || base.ID != runs[3].ID {
		t.Fatalf("expect %s got %+v", runs[3].ID, base)
	}
	if _, ok = Baseline(runs, runs[1]); ok {
		t.Fatal("no older go1.16 run")
	}
	if _, ok = Baseline(runs[:1], runs[0]); ok {
		t.Fatal("run is not its own baseline")
	}
}

func TestHomeDir(t *testing.T) {
	dir, err := HomeDir("ns")
	if err != nil {
		t.Skip(err)
	}
	if filepath.Base(dir) != "ns" || filepath.Base(filepath.Dir(dir)) != ".benchprobe" {
		t.Fatalf("bad home dir %s", dir)
	}
}
