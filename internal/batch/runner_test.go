package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-helper/internal/llm"
)

// scriptedClient answers every job with the same completion, or with an error
// for companies listed in failFor.
type scriptedClient struct {
	completion string
	failFor    map[string]bool
}

func (s *scriptedClient) Complete(_ context.Context, _, userPrompt string, _ llm.ModelTier) (*llm.Completion, error) {
	for company := range s.failFor {
		if strings.Contains(userPrompt, company) {
			return nil, fmt.Errorf("simulated failure for %s", company)
		}
	}
	return &llm.Completion{Text: s.completion, Model: "fake-model"}, nil
}

func (s *scriptedClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (s *scriptedClient) Close() error                  { return nil }

func acceptableCompletion() string {
	const sentence = "This role aligns with my experience in building reliable systems."
	var paragraphs []string
	for p := 0; p < 6; p++ {
		paragraphs = append(paragraphs, strings.TrimSpace(strings.Repeat(sentence+" ", 5)))
	}
	letter := strings.Join(paragraphs, "\n\n")

	return fmt.Sprintf(`## Tailored Bullets
- Built X serving 4 teams (maps to: platform work)
- Led Z, cut cost 10%% (maps to: cost control)
- Wrote SQL pipelines (maps to: SQL)

## Cover Letter
%s

## Skills Gaps
- Gap1
  - Step A
- Gap2
  - Step B
`, letter)
}

func batchFixture(t *testing.T, companies ...string) ([]Job, Options) {
	t.Helper()
	dir := t.TempDir()
	resume := filepath.Join(dir, "resume.md")
	posting := filepath.Join(dir, "posting.txt")
	require.NoError(t, os.WriteFile(resume, []byte("# Resume\nBuilt things."), 0644))
	require.NoError(t, os.WriteFile(posting, []byte("We need a platform engineer."), 0644))

	var jobs []Job
	for _, company := range companies {
		jobs = append(jobs, Job{Role: "SRE", Company: company, Posting: posting, Resume: resume})
	}
	return jobs, Options{Workers: 2, OutputBase: filepath.Join(dir, "outputs")}
}

func TestRun_AllJobsAccepted(t *testing.T) {
	client := &scriptedClient{completion: acceptableCompletion()}
	jobs, opts := batchFixture(t, "Acme", "Globex", "Initech")

	summary, err := Run(t.Context(), client, jobs, opts)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 3, summary.Accepted)
	assert.Equal(t, 0, summary.Failed)
	for _, jr := range summary.Results {
		require.NotNil(t, jr.Result)
		assert.NotEmpty(t, jr.Result.OutDir)
	}
}

func TestRun_ContinueOnError(t *testing.T) {
	client := &scriptedClient{
		completion: acceptableCompletion(),
		failFor:    map[string]bool{"Globex": true},
	}
	jobs, opts := batchFixture(t, "Acme", "Globex", "Initech")
	opts.ContinueOnError = true

	summary, err := Run(t.Context(), client, jobs, opts)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Accepted)
	assert.Equal(t, 1, summary.Failed)
	assert.Error(t, summary.Results[1].Err)
}

func TestRun_FirstFailureAborts(t *testing.T) {
	client := &scriptedClient{
		completion: acceptableCompletion(),
		failFor:    map[string]bool{"Acme": true},
	}
	jobs, opts := batchFixture(t, "Acme")

	summary, err := Run(t.Context(), client, jobs, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Acme")
	assert.Equal(t, 1, summary.Failed)
}

func TestRun_DryRunCallsNothing(t *testing.T) {
	client := &scriptedClient{failFor: map[string]bool{"Acme": true}}
	jobs, opts := batchFixture(t, "Acme")
	opts.DryRun = true

	summary, err := Run(t.Context(), client, jobs, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 0, summary.Accepted)
	assert.Equal(t, 0, summary.Failed)
}
