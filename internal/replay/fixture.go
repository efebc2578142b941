package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// #region fixture-types

// Transcript is the top-level JSON structure for a replay fixture: an
// ordered sequence of raw chat messages plus the expected action encodings.
type Transcript struct {
	Description string    `json:"description"`
	Messages    []Message `json:"messages"`

	// Expected holds one action encoding per message (see StepResult.Encode):
	// "defer", "none", "predict:<target>", "resolve:<target>:<status>",
	// or "predict:<target>+resolve:<target>:<status>". Empty slice skips
	// verification.
	Expected []string `json:"expected,omitempty"`
}

// Message is one recorded chat message.
type Message struct {
	Text string `json:"text"`
	Note string `json:"note,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadTranscript reads and parses a JSON transcript fixture.
func LoadTranscript(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript %s: %w", path, err)
	}
	var tr Transcript
	if err := json.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("parse transcript %s: %w", path, err)
	}
	if len(tr.Expected) > 0 && len(tr.Expected) != len(tr.Messages) {
		return nil, fmt.Errorf("transcript %s: %d expectations for %d messages",
			path, len(tr.Expected), len(tr.Messages))
	}
	return &tr, nil
}

// #endregion fixture-loader
