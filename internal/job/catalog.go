package job

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// LoadCatalog reads the job catalog from a JSON file. Items are decoded
// loosely so catalogs with numeric ids or missing fields still load.
func LoadCatalog(path string) (*Jobs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var items []map[string]any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing catalog file %q: %w", path, err)
	}

	var postings []*Job
	cfg := &mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           &postings,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decoding catalog items: %w", err)
	}

	catalog := &Jobs{Items: postings}

	seen := make(map[string]struct{}, len(postings))
	for _, posting := range postings {
		if posting.ID == "" {
			return nil, fmt.Errorf("catalog item %q has no id", posting.Title)
		}
		if _, ok := seen[posting.ID]; ok {
			return nil, fmt.Errorf("duplicate job id %q in catalog", posting.ID)
		}
		seen[posting.ID] = struct{}{}
	}

	return catalog, nil
}

func (s *ScoredJobs) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "jobs_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return file.Name(), nil
}
