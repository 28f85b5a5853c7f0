// Package artifacts persists accepted run output: the three markdown
// sections plus a machine-readable metadata record. The gate engine never
// writes anything itself; the orchestrator hands it a RunOutcome.
package artifacts

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/career-helper/internal/llm"
	"github.com/jonathan/career-helper/internal/types"
)

//go:embed run_metadata.schema.json
var metadataSchema string

// SectionRecord is the per-section summary stored in run metadata.
type SectionRecord struct {
	Name        string   `json:"name"`
	Pass        bool     `json:"pass"`
	Rules       []string `json:"rules"`
	BulletCount int      `json:"bullet_count,omitempty"`
	WordCount   int      `json:"word_count,omitempty"`
	GapCount    int      `json:"gap_count,omitempty"`
}

// InputHashes carries SHA-256 digests of the four prompt inputs so a run can
// be traced back to exactly what was sent, without storing the inputs.
type InputHashes struct {
	System  string `json:"system_hash"`
	User    string `json:"user_hash"`
	Resume  string `json:"resume_hash"`
	Posting string `json:"posting_hash"`
}

// Metadata is the run record written alongside the artifacts.
type Metadata struct {
	RunID        string          `json:"run_id"`
	Role         string          `json:"role"`
	Company      string          `json:"company"`
	Model        string          `json:"model"`
	Usage        llm.Usage       `json:"usage"`
	Accept       bool            `json:"accept"`
	WithWarnings bool            `json:"with_warnings"`
	RetriesUsed  int             `json:"retries_used"`
	Sections     []SectionRecord `json:"sections"`
	Inputs       InputHashes     `json:"inputs"`
	CreatedAt    string          `json:"created_at"`
}

// NewMetadata assembles the metadata record for one accepted (or
// accepted-with-warnings) run.
func NewMetadata(outcome *types.RunOutcome, role, company string, completion *llm.Completion, inputs InputHashes) *Metadata {
	meta := &Metadata{
		RunID:        uuid.NewString(),
		Role:         role,
		Company:      company,
		Accept:       outcome.Accept,
		WithWarnings: outcome.WithWarnings,
		RetriesUsed:  outcome.RetriesUsed,
		Inputs:       inputs,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}
	if completion != nil {
		meta.Model = completion.Model
		meta.Usage = completion.Usage
	}
	for _, result := range outcome.Results() {
		rules := result.Rules()
		if rules == nil {
			rules = []string{}
		}
		meta.Sections = append(meta.Sections, SectionRecord{
			Name:        result.Section,
			Pass:        result.Pass,
			Rules:       rules,
			BulletCount: result.BulletCount,
			WordCount:   result.WordCount,
			GapCount:    result.GapCount,
		})
	}
	return meta
}

// Validate checks the serialized metadata against the embedded JSON Schema.
// A schema failure here is a bug, not an input problem, so it blocks the
// write instead of being a warning.
func (m *Metadata) Validate() error {
	doc, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(metadataSchema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("metadata schema validation failed to run: %w", err)
	}
	if !result.Valid() {
		details := ""
		for _, desc := range result.Errors() {
			details += fmt.Sprintf("\n  %s: %s", desc.Field(), desc.Description())
		}
		return fmt.Errorf("metadata does not match schema:%s", details)
	}
	return nil
}

// HashInputs digests the four prompt inputs.
func HashInputs(system, user, resume, posting string) InputHashes {
	return InputHashes{
		System:  sha256Text(system),
		User:    sha256Text(user),
		Resume:  sha256Text(resume),
		Posting: sha256Text(posting),
	}
}

func sha256Text(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
