// Package batch runs many tailoring jobs from a CSV manifest with a bounded
// worker pool.
package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Job is one row of the batch manifest.
type Job struct {
	Role    string
	Company string
	Posting string // local file path or http(s) URL
	Resume  string
}

// expectedHeader is the required first row of the manifest.
var expectedHeader = []string{"role", "company", "posting", "resume"}

// LoadJobs parses a batch manifest. The first row must be the header
// role,company,posting,resume. Rows with missing fields are skipped with a
// logged warning rather than aborting the whole batch.
func LoadJobs(path string) ([]Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open batch file %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("batch file %s is empty", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read batch header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var jobs []Job
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to parse batch file line %d: %w", line, err)
		}

		job := Job{
			Role:    strings.TrimSpace(record[0]),
			Company: strings.TrimSpace(record[1]),
			Posting: strings.TrimSpace(record[2]),
			Resume:  strings.TrimSpace(record[3]),
		}
		if job.Role == "" || job.Company == "" || job.Posting == "" || job.Resume == "" {
			log.Printf("[WARNING] skipping batch line %d: one or more fields are empty", line)
			continue
		}
		jobs = append(jobs, job)
	}

	if len(jobs) == 0 {
		return nil, fmt.Errorf("batch file %s contains no usable rows", path)
	}
	return jobs, nil
}

func checkHeader(header []string) error {
	if len(header) != len(expectedHeader) {
		return fmt.Errorf("batch header must be %s, got %d columns",
			strings.Join(expectedHeader, ","), len(header))
	}
	for i, want := range expectedHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return fmt.Errorf("batch header column %d must be %q, got %q", i+1, want, header[i])
		}
	}
	return nil
}

// IsURL reports whether a posting source is fetched rather than read from
// disk.
func (j Job) IsURL() bool {
	return strings.HasPrefix(j.Posting, "http://") || strings.HasPrefix(j.Posting, "https://")
}

// ValidatePaths verifies up front that every referenced local file exists, so
// a typo fails the batch before any model calls are spent.
func ValidatePaths(jobs []Job) error {
	var missing []string
	for i, job := range jobs {
		if !job.IsURL() {
			if _, err := os.Stat(job.Posting); err != nil {
				missing = append(missing, fmt.Sprintf("job %d: posting %s", i+1, job.Posting))
			}
		}
		if _, err := os.Stat(job.Resume); err != nil {
			missing = append(missing, fmt.Sprintf("job %d: resume %s", i+1, job.Resume))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("batch references missing files:\n  %s", strings.Join(missing, "\n  "))
	}
	return nil
}
