package portfolio

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkValidated_TransitionsDraft(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	generateFixture(t, dir, TemplateHybrid, ThemeClassic)

	result, err := MarkValidated(dir)
	require.NoError(t, err)
	assert.Equal(t, StatusValidated, result.Status)

	var state WorkflowState
	data, err := os.ReadFile(filepath.Join(dir, "data", "workflow_state.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &state))

	assert.Equal(t, StatusValidated, state.Status)
	validatedAt, err := time.Parse(time.RFC3339, state.ValidatedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), validatedAt, time.Minute)
	assert.Equal(t, TemplateHybrid, state.SiteTemplate, "other state fields survive the transition")
}

func TestMarkValidated_RequiresGeneratedSite(t *testing.T) {
	_, err := MarkValidated(filepath.Join(t.TempDir(), "never-generated"))
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestMarkValidated_CorruptStateFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "workflow_state.json"), []byte("not json"), 0o644))

	_, err := MarkValidated(dir)
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestMarkValidated_RevalidationRestamps(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	generateFixture(t, dir, TemplatePortfolio, ThemeClassic)

	_, err := MarkValidated(dir)
	require.NoError(t, err)

	statePath := filepath.Join(dir, "data", "workflow_state.json")
	var first WorkflowState
	data, err := os.ReadFile(statePath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &first))

	// Force an older stamp so the restamp is observable.
	first.ValidatedAt = time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)
	require.NoError(t, WriteJSONFile(statePath, &first))

	_, err = MarkValidated(dir)
	require.NoError(t, err)

	var second WorkflowState
	data, err = os.ReadFile(statePath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &second))

	assert.Equal(t, StatusValidated, second.Status)
	assert.NotEqual(t, first.ValidatedAt, second.ValidatedAt)
}
