package storage

import (
	"encoding/json"
	"errors"
	"io"
)

type ExportData struct {
	RunMetadata
	Profile *Profile `json:"profile,omitempty"`
}

// ExportJSON writes the run's metadata and profile as one JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	data := ExportData{RunMetadata: *meta}

	profile, err := s.LoadProfile(runID)
	switch {
	case err == nil:
		data.Profile = profile
	case !errors.Is(err, ErrNoProfile):
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
