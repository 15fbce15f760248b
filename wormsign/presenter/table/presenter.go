package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/scylladb/go-set/strset"

	"github.com/wormsign/wormsign/wormsign/presenter/models"
)

// remediationSteps is shown whenever at least one compromised package is found.
var remediationSteps = []string{
	"do NOT run any scripts or code from the packages listed above",
	"remove these packages immediately",
	"review your system for potential compromises",
	"rotate any credentials that may have been exposed",
}

// Presenter is a generic struct for holding fields needed for reporting
type Presenter struct {
	document models.Document
}

// NewPresenter is a *Presenter constructor
func NewPresenter(doc models.Document) *Presenter {
	return &Presenter{
		document: doc,
	}
}

// Present creates a human-readable table-based reporting
func (pres *Presenter) Present(output io.Writer) error {
	summary := pres.document.Summary
	if len(pres.document.Matches) == 0 {
		_, err := fmt.Fprintf(output, "%s (%d packages scanned against %d advisory entries)\n",
			color.Green.Sprint("No compromised packages found"), summary.PackagesScanned, summary.AdvisoryEntries)
		return err
	}

	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"Name", "Installed", "Status"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, row := range getRows(pres.document) {
		table.Rich(row, []tablewriter.Colors{{}, {}, {tablewriter.Bold, tablewriter.FgRedColor}})
	}

	table.Render()

	_, err := fmt.Fprintf(output, "\n%s\n\n%s\n%s\n",
		color.Red.Sprintf("Found %d compromised package(s) out of %d scanned (%d advisory entries)",
			summary.Infected, summary.PackagesScanned, summary.AdvisoryEntries),
		color.Yellow.Sprint("IMMEDIATE ACTIONS REQUIRED:"),
		renderRemediation())
	return err
}

func getRows(doc models.Document) [][]string {
	seen := strset.New()
	var rows [][]string

	for _, m := range doc.Matches {
		key := m.Package + "@" + m.Version
		if seen.Has(key) {
			continue
		}
		seen.Add(key)
		rows = append(rows, []string{m.Package, m.Version, "compromised"})
	}
	return rows
}

func renderRemediation() string {
	lines := make([]string, len(remediationSteps))
	for idx, step := range remediationSteps {
		lines[idx] = fmt.Sprintf(" %d. %s", idx+1, step)
	}
	return strings.Join(lines, "\n")
}
