package portfolio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ValidateResult reports the outcome of marking a draft as validated.
type ValidateResult struct {
	Path   string `json:"path"`
	Status string `json:"status"`
}

// MarkValidated transitions the workflow state of a generated site from
// draft to validated and stamps validated_at. The state artifact must
// already exist; validating a directory that was never generated is a
// precondition error. Re-validating simply re-stamps the timestamp.
func MarkValidated(outputDir string) (*ValidateResult, error) {
	outputPath, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("resolve output dir: %w", err)
	}
	statePath := filepath.Join(outputPath, "data", "workflow_state.json")

	data, err := os.ReadFile(statePath)
	if err != nil {
		return nil, fmt.Errorf("cannot validate site at %q: %w", outputPath, ErrNoDraft)
	}
	var state WorkflowState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("cannot validate site at %q: %w", outputPath, ErrNoDraft)
	}

	state.Status = StatusValidated
	state.ValidatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := WriteJSONFile(statePath, &state); err != nil {
		return nil, err
	}

	return &ValidateResult{Path: outputPath, Status: StatusValidated}, nil
}
