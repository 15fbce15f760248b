package event

import "github.com/wagoodman/go-partybus"

const (
	AppUpdateAvailable        partybus.EventType = "wormsign-app-update-available"
	UpdateAdvisoryFeed        partybus.EventType = "wormsign-update-advisory-feed"
	InfectionScanningStarted  partybus.EventType = "wormsign-infection-scanning-started"
	InfectionScanningFinished partybus.EventType = "wormsign-infection-scanning-finished"
	NonRootCommandFinished    partybus.EventType = "wormsign-non-root-command-finished"
)
