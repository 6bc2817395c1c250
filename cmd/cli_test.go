package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validatedVerdictJSON = `{"overall_result":"VALIDATED","validated_core_insight":"Plans improve when risks are named early."}`

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestInitWritesDefaultFiles(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+filepath.Join(home, ".aito", "personas.toml"))
	assert.Contains(t, stdout, "wrote "+filepath.Join(home, ".aito", "constitution.yaml"))

	info, err := os.Stat(filepath.Join(home, ".aito", "personas.toml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	stdout, _, err = executeCLI(t, home, "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "kept existing")

	stdout, _, err = executeCLI(t, home, "init", "--force")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "kept existing")
}

func TestPersonaListShowsDefaults(t *testing.T) {
	home := t.TempDir()
	_, _, err := executeCLI(t, home, "init")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "persona", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ID")
	for _, id := range []string{"ATOM1", "ATOM2", "ATOM3", "ATOM4", "ATOM5"} {
		assert.Contains(t, stdout, id)
	}
	assert.Contains(t, stdout, "search_memory")
}

func TestPersonaListWithoutInitPointsToInit(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "persona", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aito init")
}

func TestAuthSetKeyRequiresValueFlag(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "auth", "set-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"value\" not set")
}

func TestAuthStatusReadsKeyFromEnvironment(t *testing.T) {
	t.Setenv("AITO_GEMINI_API_KEY", "key-from-env-1234")

	stdout, _, err := executeCLI(t, t.TempDir(), "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "aito/gemini/api_key: configured")
	assert.Contains(t, stdout, "1234")
	assert.NotContains(t, stdout, "key-from-env")
}

func TestAuthStatusReportsMissingKey(t *testing.T) {
	unsetGeminiKeyEnv(t)

	stdout, _, err := executeCLI(t, t.TempDir(), "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "aito/gemini/api_key: missing")
}

func TestAuthSetKeyThenRemoveKey(t *testing.T) {
	unsetGeminiKeyEnv(t)
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "auth", "set-key", "--value", "  stored-key-5678  ")
	require.NoError(t, err)
	assert.Contains(t, stdout, "stored aito/gemini/api_key")

	stdout, _, err = executeCLI(t, home, "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "configured")
	assert.Contains(t, stdout, "5678")

	_, _, err = executeCLI(t, home, "auth", "remove-key")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "missing")
}

func TestReflectWithEmptyHistoryHasNothingToAnalyze(t *testing.T) {
	home := t.TempDir()
	_, _, err := executeCLI(t, home, "init")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "reflect")
	require.NoError(t, err)
	assert.Contains(t, stdout, "AITO Self-Reflection Report")
	assert.Contains(t, stdout, "Nothing to analyze")
}

func TestReflectRejectsNegativeDaysAgo(t *testing.T) {
	home := t.TempDir()
	_, _, err := executeCLI(t, home, "init")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "reflect", "--days-ago", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--days-ago must not be negative")
}

func TestReflectWithoutConstitutionOnEmptyDay(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "reflect")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Nothing to analyze")
}

func TestReflectWithoutConstitutionRejectsValidatedInsight(t *testing.T) {
	fake := newFakeGemini(t)
	home := t.TempDir()
	_, _, err := executeCLI(t, home, "init")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "meet", "Plan the release")
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(home, ".aito", "constitution.yaml")))

	stdout, _, err := executeCLI(t, home, "reflect", "--json")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	validation, ok := report["validation"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, validation["is_safe"])
	assert.Contains(t, validation["reasoning"], "no constitutional principle for ATOM1")
	assert.Zero(t, fake.calls("judge"))
}

func TestHistoryOnEmptySession(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "history")
	require.NoError(t, err)
	assert.Contains(t, stdout, "session aito_shared_log is empty")
}

func TestMeetRunsRoundRobinAndRecordsHistory(t *testing.T) {
	fake := newFakeGemini(t)
	home := t.TempDir()
	_, _, err := executeCLI(t, home, "init")
	require.NoError(t, err)

	stdout, stderr, err := executeCLI(t, home, "meet", "Plan", "the", "release")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[ATOM1]")
	assert.Contains(t, stdout, "[ATOM5]")
	assert.Contains(t, stdout, "[ATOMOD]")
	assert.Contains(t, stdout, "turn from gemini-2.5-pro")
	assert.Contains(t, stderr, "finished after 2 turns")
	assert.Equal(t, 2, fake.calls("gemini-2.5-pro"))

	stdout, _, err = executeCLI(t, home, "history", "--json")
	require.NoError(t, err)

	var messages []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &messages))
	require.NotEmpty(t, messages)
	assert.Equal(t, "Plan the release", messages[0]["content"])

	stdout, _, err = executeCLI(t, home, "history", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ATOMOD REPORT")
	assert.NotContains(t, stdout, "[user]")
}

func TestMeetRejectsUnknownParticipant(t *testing.T) {
	newFakeGemini(t)
	home := t.TempDir()
	_, _, err := executeCLI(t, home, "init")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "meet", "--participant", "ATOM9", "Plan")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ATOM9")
}

func TestMeetRequiresTask(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "meet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestReflectAfterMeetingRendersValidatedReport(t *testing.T) {
	fake := newFakeGemini(t)
	home := t.TempDir()
	_, _, err := executeCLI(t, home, "init")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "meet", "Plan the release")
	require.NoError(t, err)

	fake.slowDown(100 * time.Millisecond)
	stdout, stderr, err := executeCLI(t, home, "reflect")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Reflecting on ATOM1")
	assert.Contains(t, stdout, "Synthesis verdict")
	assert.Contains(t, stdout, "Plans improve when risks are named early.")
	assert.Contains(t, stdout, "SAFE")

	assert.Equal(t, 1, fake.calls("factual-lens"))
	assert.Equal(t, 1, fake.calls("thematic-lens"))
	assert.Equal(t, 1, fake.calls("insight-lens"))
	assert.Equal(t, 1, fake.calls("arbiter"))
	assert.Equal(t, 1, fake.calls("judge"))
}

func TestReflectJSONOutput(t *testing.T) {
	newFakeGemini(t)
	home := t.TempDir()
	_, _, err := executeCLI(t, home, "init")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "meet", "Plan the release")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "reflect", "--json", "--persona", "ATOM1")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, "completed", report["status"])
	assert.Equal(t, "ATOM1", report["persona_id"])

	verdict, ok := report["verdict"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "VALIDATED", verdict["overall_result"])

	validation, ok := report["validation"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, validation["is_safe"])
}

func TestMeetWithoutAPIKeyFailsWithHint(t *testing.T) {
	unsetGeminiKeyEnv(t)
	home := t.TempDir()
	_, _, err := executeCLI(t, home, "init")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "meet", "Plan the release")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aito auth set-key")
	assert.Contains(t, stdout, "[ATOMOD_ERROR]")
}

func TestMeetCancelledMidTurnRecordsModeratorError(t *testing.T) {
	fake := newFakeGemini(t)
	home := t.TempDir()
	_, _, err := executeCLI(t, home, "init")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fake.notify(func(string) { cancel() })
	fake.slowDown(200 * time.Millisecond)

	stdout, _, err := executeCLIContext(t, ctx, home, "meet", "Plan the release")
	require.Error(t, err)
	assert.Contains(t, stdout, "[ATOMOD_ERROR]")

	fake.notify(nil)
	fake.slowDown(0)
	stdout, _, err = executeCLI(t, home, "history", "--json")
	require.NoError(t, err)

	var messages []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &messages))
	var failures int
	for _, msg := range messages {
		if msg["speaker"] == "ATOMOD_ERROR" {
			failures++
			assert.Equal(t, "error", msg["role"])
		}
	}
	assert.Equal(t, 1, failures)
}

type fakeGemini struct {
	mu        sync.Mutex
	counts    map[string]int
	delay     time.Duration
	onRequest func(model string)
}

func (f *fakeGemini) notify(hook func(model string)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onRequest = hook
}

func (f *fakeGemini) slowDown(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delay = d
}

func (f *fakeGemini) calls(model string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[model]
}

// newFakeGemini serves generateContent for every model the CLI is configured
// with and points the CLI at it.
func newFakeGemini(t *testing.T) *fakeGemini {
	t.Helper()

	fake := &fakeGemini{counts: map[string]int{}}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if !strings.HasSuffix(path, ":generateContent") {
			http.NotFound(w, r)
			return
		}
		model := strings.TrimSuffix(path[strings.LastIndex(path, "/")+1:], ":generateContent")

		fake.mu.Lock()
		fake.counts[model]++
		delay := fake.delay
		hook := fake.onRequest
		fake.mu.Unlock()
		if hook != nil {
			hook(model)
		}
		time.Sleep(delay)

		var text string
		switch model {
		case "arbiter":
			text = validatedVerdictJSON
		case "judge":
			text = "PASS The lesson complements the principle."
		default:
			text = "turn from " + model
		}

		payload, err := json.Marshal(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": text}},
				},
				"finishReason": "STOP",
			}},
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, string(payload))
	}))
	t.Cleanup(server.Close)

	t.Setenv("AITO_GEMINI_BASE_URL", server.URL)
	t.Setenv("AITO_GEMINI_API_KEY", "test-key")
	t.Setenv("AITO_MODELS_FACTUAL", "factual-lens")
	t.Setenv("AITO_MODELS_THEMATIC", "thematic-lens")
	t.Setenv("AITO_MODELS_INSIGHT", "insight-lens")
	t.Setenv("AITO_MODELS_ARBITER", "arbiter")
	t.Setenv("AITO_MODELS_JUDGE", "judge")

	return fake
}

func unsetGeminiKeyEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"AITO_GEMINI_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		t.Setenv(name, "")
	}
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIContext(t, context.Background(), home, args...)
}

func executeCLIContext(t *testing.T, ctx context.Context, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("PASSWORD_STORE_DIR", filepath.Join(home, ".password-store"))

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}
