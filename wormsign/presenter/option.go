package presenter

import "strings"

const (
	UnknownPresenter Option = iota
	TablePresenter
	JSONPresenter
)

var optionStr = []string{
	"UnknownPresenter",
	"table",
	"json",
}

// Options is the list of presenter formats available to users.
var Options = []Option{
	TablePresenter,
	JSONPresenter,
}

// Option is a dedicated type to represent a specific kind of presenter output format.
type Option int

// ParseOption returns the presenter option specified by the given user input.
func ParseOption(userStr string) Option {
	switch strings.ToLower(userStr) {
	case strings.ToLower(TablePresenter.String()), "":
		return TablePresenter
	case strings.ToLower(JSONPresenter.String()):
		return JSONPresenter
	default:
		return UnknownPresenter
	}
}

func (o Option) String() string {
	if int(o) >= len(optionStr) || o < 0 {
		return optionStr[0]
	}
	return optionStr[o]
}
