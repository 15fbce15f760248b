package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/wagoodman/go-partybus"

	wormsignEventParsers "github.com/wormsign/wormsign/wormsign/event/parsers"
)

func handleInfectionScanningFinished(event partybus.Event, reportOutput io.Writer) error {
	// show the report to stdout
	pres, err := wormsignEventParsers.ParseInfectionScanningFinished(event)
	if err != nil {
		return fmt.Errorf("bad %s event: %w", event.Type, err)
	}

	if err := pres.Present(reportOutput); err != nil {
		return fmt.Errorf("unable to show infection report: %w", err)
	}
	return nil
}

func handleNonRootCommandFinished(event partybus.Event, reportOutput io.Writer) error {
	// show the report to stdout
	result, err := wormsignEventParsers.ParseNonRootCommandFinished(event)
	if err != nil {
		return fmt.Errorf("bad %s event: %w", event.Type, err)
	}

	report := *result
	if !strings.HasSuffix(report, "\n") {
		report += "\n"
	}

	if _, err := reportOutput.Write([]byte(report)); err != nil {
		return fmt.Errorf("unable to show command report: %w", err)
	}
	return nil
}
