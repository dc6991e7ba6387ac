package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

var traceHeader = []string{"t", "u", "v", "x", "y", "z", "sign"}

// ErrNoRun is returned by Load for a run directory without metadata.
var ErrNoRun = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Dir returns the directory holding run id.
func (s *Store) Dir(id string) string {
	return filepath.Join(s.baseDir, id)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Demo      string    `json:"demo"`
	Timestamp time.Time `json:"timestamp"`
	Dt        float64   `json:"dt"`
	Duration  float64   `json:"duration"`
	V         float64   `json:"v"`
	Speed     float64   `json:"speed"`
	Steps     int       `json:"steps"`
	Crossings int       `json:"crossings"`
}

// Save writes meta and trace under a fresh run directory and returns its id.
// An empty meta.ID is filled with <demo>_<unix>.
func (s *Store) Save(meta RunMetadata, trace Trace) (string, error) {
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	if meta.Demo == "" {
		meta.Demo = "klein"
	}
	if meta.ID == "" {
		meta.ID = s.freeID(fmt.Sprintf("%s_%d", meta.Demo, meta.Timestamp.Unix()))
	}
	meta.Steps = len(trace)
	meta.Crossings = trace.Crossings()

	runDir := s.Dir(meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, trace); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// freeID appends a counter when two runs land in the same second.
func (s *Store) freeID(id string) string {
	candidate := id
	for i := 1; ; i++ {
		if _, err := os.Stat(s.Dir(candidate)); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d", id, i)
	}
}

// List returns the metadata of every run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(id string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir(id), "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoRun, id)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: %s metadata: %w", id, err)
	}
	return &meta, nil
}

func (s *Store) LoadTrace(id string) (Trace, error) {
	file, err := os.Open(filepath.Join(s.Dir(id), "trace.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoRun, id)
		}
		return nil, err
	}
	defer file.Close()
	return ReadCSV(file)
}

// WriteCSV writes the trace with a t,u,v,x,y,z,sign header.
func WriteCSV(out io.Writer, trace Trace) error {
	w := csv.NewWriter(out)
	if err := w.Write(traceHeader); err != nil {
		return err
	}
	for _, p := range trace {
		row := []string{
			strconv.FormatFloat(p.T, 'f', 6, 64),
			strconv.FormatFloat(p.U, 'f', 6, 64),
			strconv.FormatFloat(p.V, 'f', 6, 64),
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(p.Z, 'f', 6, 64),
			strconv.Itoa(p.Sign),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadCSV parses what WriteCSV produced. Malformed rows are an error.
func ReadCSV(in io.Reader) (Trace, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = len(traceHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return Trace{}, nil
	}

	trace := make(Trace, 0, len(records)-1)
	for i, record := range records[1:] {
		var vals [6]float64
		for j := range vals {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("storage: row %d column %s: %w", i+1, traceHeader[j], err)
			}
			vals[j] = v
		}
		sign, err := strconv.Atoi(record[6])
		if err != nil {
			return nil, fmt.Errorf("storage: row %d column sign: %w", i+1, err)
		}
		trace = append(trace, Sample{
			T: vals[0], U: vals[1], V: vals[2],
			X: vals[3], Y: vals[4], Z: vals[5],
			Sign: sign,
		})
	}
	return trace, nil
}
