// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

// 📊 FileStatus represents what happened to a file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusModified             // Content was rewritten
	StatusUnchanged            // File was written back with identical content
	StatusFailed               // Read, decode or write failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileResult is the outcome of processing one file
type FileResult struct {
	Path         string     // Path as returned by discovery
	Status       FileStatus // Outcome
	Replacements int        // Number of replacements made
	Err          error      // Set when Status is StatusFailed
}

// Succeeded builds a successful result
func Succeeded(path string, replacements int, modified bool) FileResult {
	st := StatusUnchanged
	if modified {
		st = StatusModified
	}
	return FileResult{Path: path, Status: st, Replacements: replacements}
}

// Failed builds a failed result
func Failed(path string, err error) FileResult {
	return FileResult{Path: path, Status: StatusFailed, Err: err}
}

// OK reports whether the file was processed successfully
func (r FileResult) OK() bool {
	return r.Status != StatusFailed && r.Status != StatusUnknown
}

// Message returns the error text of a failed result
func (r FileResult) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// 📈 Summary tallies the results of one run
type Summary struct {
	Discovered int
	Succeeded  int
	Failed     int
	Modified   int
	Results    []FileResult
}

// NewSummary creates a summary for a run that discovered n files
func NewSummary(discovered int) *Summary {
	return &Summary{
		Discovered: discovered,
		Results:    make([]FileResult, 0, discovered),
	}
}

// Record adds one file result
func (s *Summary) Record(r FileResult) {
	s.Results = append(s.Results, r)
	if !r.OK() {
		s.Failed++
		return
	}
	s.Succeeded++
	if r.Status == StatusModified {
		s.Modified++
	}
}

// Failures returns the failed results in processing order
func (s *Summary) Failures() []FileResult {
	var out []FileResult
	for _, r := range s.Results {
		if !r.OK() {
			out = append(out, r)
		}
	}
	return out
}

// Skipped is the number of discovered files that were never processed,
// which only happens when a run is cancelled.
func (s *Summary) Skipped() int {
	return s.Discovered - len(s.Results)
}
