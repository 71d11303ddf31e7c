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
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
)

// Report is a rendered metric table plus a one-line summary. results[0]
// is the header row.
type Report struct {
	results [][]string
	summary string
}

func (r Report) String() string {
	out := new(bytes.Buffer)
	if len(r.results) > 0 {
		table := tablewriter.NewWriter(out)
		table.Header(r.results[0])
		for _, row := range r.results[1:] {
			if err := table.Append(row); err != nil {
				return fmt.Sprintf("Error rendering table: %v", err)
			}
		}
		if err := table.Render(); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	fmt.Fprintf(out, "%s\n", r.summary)
	return out.String()
}
