package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"sweep/scan"
)

// Table renders the report as a table sorted by (target, port), with
// service names where the port is a well known one.
type Table struct {
	writer   io.Writer
	openOnly bool
}

func NewTable(w io.Writer, openOnly bool) *Table {
	return &Table{
		writer:   w,
		openOnly: openOnly,
	}
}

func (t *Table) Update(report scan.Report) error {
	table := tablewriter.NewWriter(t.writer)
	table.Header("Target", "Port", "State", "Service")

	for _, result := range report.Sorted() {
		if t.openOnly && result.State != scan.PortOpen {
			continue
		}
		err := table.Append([]string{
			result.Target,
			fmt.Sprintf("%d/tcp", result.Port),
			strings.ToUpper(result.State.String()),
			scan.DescribePort(result.Port),
		})
		if err != nil {
			return err
		}
	}

	return table.Render()
}
