// Package storage keeps a catalog of finished renders on disk. Each run
// gets a directory holding metadata.json, the encoded image and a CSV
// profile of one image row.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"
)

const (
	metadataFile = "metadata.json"
	profileFile  = "profile.csv"
	imageBase    = "image"
)

// ErrNoProfile is returned by LoadProfile for runs saved without one.
var ErrNoProfile = errors.New("storage: run has no profile")

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Scene     string             `json:"scene"`
	Palette   string             `json:"palette"`
	Timestamp time.Time          `json:"timestamp"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Depth     int                `json:"depth"`
	Color     string             `json:"color"`
	Format    string             `json:"format"`
	Image     string             `json:"image"`
	Range     [2]float64         `json:"range"`
	Params    map[string]float64 `json:"params,omitempty"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
	Elapsed   time.Duration      `json:"elapsed_ns"`
}

// Profile is the field sampled along one image row.
type Profile struct {
	Row    int       `json:"row"`
	X      []float64 `json:"x"`
	Values []float64 `json:"values"`
}

// Save creates a run directory, writes the image through encode into
// image.<ext> and records meta. A nil profile is skipped. On failure the
// run directory is removed.
func (s *Store) Save(meta RunMetadata, ext string, encode func(io.Writer) error, profile *Profile) (string, error) {
	ts := s.now()
	runID := fmt.Sprintf("%s_%d", meta.Scene, ts.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = ts
	meta.Image = imageBase + "." + ext

	if err := writeRun(runDir, meta, encode, profile); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	return runID, nil
}

func writeRun(runDir string, meta RunMetadata, encode func(io.Writer) error, profile *Profile) error {
	imgFile, err := os.Create(filepath.Join(runDir, meta.Image))
	if err != nil {
		return err
	}
	if err := encode(imgFile); err != nil {
		imgFile.Close()
		return err
	}
	if err := imgFile.Close(); err != nil {
		return err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		metaFile.Close()
		return err
	}
	if err := metaFile.Close(); err != nil {
		return err
	}

	if profile == nil {
		return nil
	}
	return writeProfile(filepath.Join(runDir, profileFile), profile)
}

func writeProfile(path string, p *Profile) error {
	csvFile, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeCSV(csvFile, p); err != nil {
		csvFile.Close()
		return err
	}
	return csvFile.Close()
}

func writeCSV(out io.Writer, p *Profile) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"row", "x", "value"}); err != nil {
		return err
	}
	row := strconv.Itoa(p.Row)
	for i := range p.Values {
		rec := []string{
			row,
			strconv.FormatFloat(p.X[i], 'g', -1, 64),
			strconv.FormatFloat(p.Values[i], 'g', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns all runs, oldest first.
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

	slices.SortFunc(runs, func(a, b RunMetadata) int { return a.Timestamp.Compare(b.Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// ImagePath returns the path of the run's image file.
func (s *Store) ImagePath(runID string) (string, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.baseDir, runID, meta.Image), nil
}

func (s *Store) LoadProfile(runID string) (*Profile, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, profileFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoProfile
		}
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}

	p := &Profile{}
	for i, rec := range records {
		if i == 0 || len(rec) != 3 {
			continue
		}
		row, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		x, errX := strconv.ParseFloat(rec[1], 64)
		v, errV := strconv.ParseFloat(rec[2], 64)
		if errX != nil || errV != nil {
			continue
		}
		p.Row = row
		p.X = append(p.X, x)
		p.Values = append(p.Values, v)
	}
	return p, nil
}
