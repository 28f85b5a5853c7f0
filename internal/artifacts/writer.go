package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/career-helper/internal/types"
)

// Canonical headers restored on the written artifacts
const (
	bulletsHeader = "## Tailored Bullets"
	letterHeader  = "## Cover Letter"
	gapsHeader    = "## Skills Gaps & Next Steps"
)

var slugPattern = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Writer persists run artifacts under a base outputs directory.
type Writer struct {
	baseDir string
	now     func() time.Time // injectable for tests
}

// NewWriter creates a writer rooted at baseDir (usually "outputs").
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, now: time.Now}
}

// OutputDir returns the deterministic, timestamped destination folder for a
// run: <base>/<Company>_<Role>_YYYY-MM-DD_HHMMSS.
func (w *Writer) OutputDir(company, role string) string {
	stamp := w.now().Format("2006-01-02_150405")
	return filepath.Join(w.baseDir, fmt.Sprintf("%s_%s_%s", slug(company), slug(role), stamp))
}

// Write persists the three section artifacts and the metadata record into
// outDir, then updates the last-run pointer file at the base directory.
// The metadata is schema-checked before anything touches disk.
func (w *Writer) Write(outDir string, outcome *types.RunOutcome, meta *Metadata) error {
	if err := meta.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir %s: %w", outDir, err)
	}

	files := map[string]string{
		"bullets.md":      bulletsHeader + "\n" + strings.TrimSpace(outcome.Bullets.Text) + "\n",
		"cover_letter.md": letterHeader + "\n" + strings.TrimSpace(outcome.CoverLetter.Text) + "\n",
		"skills_gaps.md":  gapsHeader + "\n" + strings.TrimSpace(outcome.SkillsGaps.Text) + "\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(outDir, name), []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	metaJSON, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "run_metadata.json"), metaJSON, 0644); err != nil {
		return fmt.Errorf("failed to write run_metadata.json: %w", err)
	}

	return w.writePointer(outDir)
}

// WriteRaw saves the raw model completion for debugging. Best effort
// companion to the structured artifacts, written even for rejected runs.
func (w *Writer) WriteRaw(raw string) error {
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	path := filepath.Join(w.baseDir, "RAW_last.md")
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// writePointer records the most recent run directory so tooling can find it
// without listing the outputs folder.
func (w *Writer) writePointer(outDir string) error {
	pointer, err := json.MarshalIndent(map[string]string{"outputs_dir": outDir}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal pointer: %w", err)
	}
	path := filepath.Join(w.baseDir, "run_metadata.json")
	if err := os.WriteFile(path, pointer, 0644); err != nil {
		return fmt.Errorf("failed to write pointer file %s: %w", path, err)
	}
	return nil
}

// slug makes a string filesystem friendly.
func slug(text string) string {
	return strings.Trim(slugPattern.ReplaceAllString(text, "-"), "-")
}
