package mapping

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadEdges reads a curated mapping table from a JSON file.
func LoadEdges(path string) ([]Edge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read concept mappings file: %w", err)
	}

	var edges []Edge
	if err := json.Unmarshal(data, &edges); err != nil {
		return nil, fmt.Errorf("failed to parse concept mappings: %w", err)
	}

	return edges, nil
}
