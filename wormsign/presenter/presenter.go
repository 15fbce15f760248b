package presenter

import (
	"io"

	"github.com/wormsign/wormsign/wormsign/presenter/json"
	"github.com/wormsign/wormsign/wormsign/presenter/models"
	"github.com/wormsign/wormsign/wormsign/presenter/table"
)

// Presenter is the main interface other Presenters need to implement
type Presenter interface {
	Present(io.Writer) error
}

// GetPresenter retrieves a Presenter that matches a CLI option
func GetPresenter(option Option, doc models.Document) Presenter {
	switch option {
	case TablePresenter:
		return table.NewPresenter(doc)
	case JSONPresenter:
		return json.NewPresenter(doc)
	default:
		return nil
	}
}
