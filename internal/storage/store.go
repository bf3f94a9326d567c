package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/san-kum/pitchlab/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Integrator string    `json:"integrator"`
	Dt         float64   `json:"dt"`
	Speed      float64   `json:"speed"`
	Elevation  float64   `json:"elevation"`
	Drag       bool      `json:"drag"`
	Magnus     bool      `json:"magnus"`
	Radius     float64   `json:"radius"`
	Phase      string    `json:"phase"`
	Verdict    string    `json:"verdict"`
	Steps      int       `json:"steps"`
	Duration   float64   `json:"duration"`
	DatFile    string    `json:"dat_file"`
}

// Save writes metadata.json, the .dat trajectory and trajectory.csv into a
// new run directory and returns its ID. ID, Timestamp, Phase, Steps,
// Duration and DatFile are filled in from the result.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	base := baseName(meta.Speed, meta.Drag, meta.Magnus)
	meta.ID = fmt.Sprintf("%s_%d", base, time.Now().UnixNano())
	meta.Timestamp = time.Now()
	meta.Phase = result.Phase.String()
	meta.Steps = result.StepsTaken
	meta.Duration = result.Duration()
	meta.DatFile = base + ".dat"

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", fmt.Errorf("writing metadata: %w", err)
	}

	rows := Rows(result, meta.Radius)

	datFile, err := os.Create(filepath.Join(runDir, meta.DatFile))
	if err != nil {
		return "", err
	}
	defer datFile.Close()
	if err := WriteDat(datFile, rows); err != nil {
		return "", fmt.Errorf("writing %s: %w", meta.DatFile, err)
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()
	if err := gocsv.MarshalFile(&rows, csvFile); err != nil {
		return "", fmt.Errorf("writing trajectory.csv: %w", err)
	}

	return meta.ID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// List returns stored runs, oldest first. Unreadable run directories are skipped.
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads the CSV rows of a stored run.
func (s *Store) LoadTrajectory(runID string) ([]Row, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []Row
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("reading trajectory.csv: %w", err)
	}
	return rows, nil
}
