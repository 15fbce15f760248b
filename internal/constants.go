package internal

const (
	// ApplicationName is the non-capitalized name of the application (do not change this)
	ApplicationName = "wormsign"

	// FeedURL is the default location of the known-compromised-package CSV feed
	FeedURL = "https://raw.githubusercontent.com/wiz-sec-public/wiz-research-iocs/main/reports/shai-hulud-2-packages.csv"
)
