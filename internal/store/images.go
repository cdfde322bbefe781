package store

import (
	"encoding/json"
	"fmt"
)

// Image attachment lists are persisted as JSONB. An empty list is stored as
// "[]" rather than NULL so that scans never need a nullable destination.

func encodeImages(images []string) ([]byte, error) {
	if images == nil {
		images = []string{}
	}

	raw, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("error encoding images: %w", err)
	}

	return raw, nil
}

func decodeImages(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}

	var images []string
	if err := json.Unmarshal(raw, &images); err != nil {
		return nil, fmt.Errorf("error decoding images: %w", err)
	}

	return images, nil
}
