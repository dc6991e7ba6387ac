package storage

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/michaeljayl/graphicsn/internal/surface"
)

func sampleTrace() Trace {
	return Trace{
		{T: 0, U: 0.9, V: 0.3, X: 1, Y: 2, Z: 3, Sign: 1},
		{T: 0.5, U: 0.1, V: 0.2, X: -1, Y: 0.5, Z: 0, Sign: -1},
		{T: 1, U: 0.6, V: 0.2, X: 4, Y: -2, Z: 1.25, Sign: -1},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	id, err := st.Save(RunMetadata{Dt: 0.5, Duration: 1, V: 0.3, Speed: 0.07}, sampleTrace())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(id, "klein_") {
		t.Errorf("run id = %q, want klein_ prefix", id)
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Demo != "klein" || meta.Steps != 3 || meta.Crossings != 1 {
		t.Errorf("meta = %+v", meta)
	}
	if meta.V != 0.3 || meta.Speed != 0.07 {
		t.Errorf("meta settings = v %v speed %v", meta.V, meta.Speed)
	}

	trace, err := st.LoadTrace(id)
	if err != nil {
		t.Fatalf("load trace failed: %v", err)
	}
	want := sampleTrace()
	if len(trace) != len(want) {
		t.Fatalf("got %d samples, want %d", len(trace), len(want))
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("sample %d = %+v, want %+v", i, trace[i], want[i])
		}
	}
}

func TestStoreSameSecond(t *testing.T) {
	st := New(t.TempDir())
	at := time.Unix(1700000000, 0)

	a, err := st.Save(RunMetadata{Timestamp: at}, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := st.Save(RunMetadata{Timestamp: at}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Errorf("two runs share id %q", a)
	}
	if a != "klein_1700000000" || b != "klein_1700000000_1" {
		t.Errorf("ids = %q, %q", a, b)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list on empty store: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	old, _ := st.Save(RunMetadata{Timestamp: time.Unix(100, 0)}, nil)
	recent, _ := st.Save(RunMetadata{Timestamp: time.Unix(200, 0)}, nil)

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != recent || runs[1].ID != old {
		t.Errorf("order = %s, %s; want newest first", runs[0].ID, runs[1].ID)
	}
}

func TestStoreMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); !errors.Is(err, ErrNoRun) {
		t.Errorf("Load err = %v, want ErrNoRun", err)
	}
	if _, err := st.LoadTrace("nope"); !errors.Is(err, ErrNoRun) {
		t.Errorf("LoadTrace err = %v, want ErrNoRun", err)
	}
}

func TestReadCSV_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"short row", "t,u,v,x,y,z,sign\n0,0,0\n"},
		{"bad float", "t,u,v,x,y,z,sign\n0,zz,0,0,0,0,1\n"},
		{"bad sign", "t,u,v,x,y,z,sign\n0,0,0,0,0,0,up\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(tt.in)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestWriteCSV_Header(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "t,u,v,x,y,z,sign\n" {
		t.Errorf("empty trace csv = %q", got)
	}
}

func TestRecord(t *testing.T) {
	w := surface.NewWalker()
	w.Speed = 1

	trace, err := Record(w, 1, 0.25)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	if len(trace) != 5 {
		t.Fatalf("got %d samples, want 5", len(trace))
	}
	if trace[0].T != 0 || trace[0].U != 0 || trace[0].Sign != 1 {
		t.Errorf("first sample = %+v", trace[0])
	}
	if trace[4].T != 1 || math.Abs(trace[4].U) > 1e-12 || trace[4].Sign != -1 {
		t.Errorf("last sample = %+v, want u=0 after one seam crossing", trace[4])
	}
	if got := trace.Crossings(); got != 1 || w.Crossings != 1 {
		t.Errorf("crossings = %d (walker %d), want 1", got, w.Crossings)
	}
	if trace[0].X == 0 && trace[0].Y == 0 && trace[0].Z == 0 {
		t.Error("sample zero has no world position")
	}
}

func TestRecord_RejectsBadStep(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		dir      surface.UV
		duration float64
		dt       float64
	}{
		{"zero dt", 1, surface.UV{U: 1}, 1, 0},
		{"negative duration", 1, surface.UV{U: 1}, -1, 0.1},
		{"u step over a period", 1, surface.UV{U: 1}, 3, 1.5},
		{"v step over a period", 0.5, surface.UV{V: -3}, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := surface.NewWalker()
			w.Speed = tt.speed
			w.Dir = tt.dir
			trace, err := Record(w, tt.duration, tt.dt)
			if !errors.Is(err, ErrStep) {
				t.Fatalf("err = %v, want ErrStep", err)
			}
			if trace != nil || w.Crossings != 0 {
				t.Errorf("rejected step still ran: %d samples, %d crossings", len(trace), w.Crossings)
			}
		})
	}

	w := surface.NewWalker()
	w.Speed = 1
	if _, err := Record(w, 2, 1); err != nil {
		t.Errorf("full-period step rejected: %v", err)
	}
}

func TestTraceColumn(t *testing.T) {
	tr := sampleTrace()
	if got := tr.Column("y"); len(got) != 3 || got[1] != 0.5 {
		t.Errorf("Column(y) = %v", got)
	}
	if got := tr.Column("sign"); got[0] != 1 || got[2] != -1 {
		t.Errorf("Column(sign) = %v", got)
	}
	if tr.Column("w") != nil {
		t.Error("unknown column should be nil")
	}
	if n := (Trace{}).Crossings(); n != 0 {
		t.Errorf("empty trace crossings = %d", n)
	}
}
