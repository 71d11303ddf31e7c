/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"strings"
	"testing"
)

func TestCentralityReportBetweenness(t *testing.T) {
	useTestDataset(t)

	report, err := centralityReport("betweenness", true, 10)
	if err != nil {
		t.Fatalf("centralityReport failed: %v", err)
	}

	// Kendrick and SZA are the two cut vertices, so they top the table.
	if len(report.results) < 3 {
		t.Fatalf("betweenness report too short:\n%s", report.String())
	}
	top := map[string]bool{report.results[1][0]: true, report.results[2][0]: true}
	if !top["Kendrick Lamar"] || !top["SZA"] {
		t.Errorf("Expected Kendrick Lamar and SZA first, got:\n%s", report.String())
	}
	if !strings.Contains(report.String(), "betweenness centrality") {
		t.Errorf("Output missing summary line. Got:\n%s", report.String())
	}
}

func TestCentralityReportCloseness(t *testing.T) {
	useTestDataset(t)

	report, err := centralityReport("closeness", true, 10)
	if err != nil {
		t.Fatalf("centralityReport failed: %v", err)
	}

	if len(report.results) != 6 {
		t.Errorf("closeness report has %d rows, want 6", len(report.results))
	}
}

func TestCentralityReportUnknownMetric(t *testing.T) {
	useTestDataset(t)

	_, err := centralityReport("derp", true, 10)
	if err == nil {
		t.Fatalf("centralityReport should have errored with an unknown metric")
	}
}
