package pdf

import (
	"fmt"

	"github.com/kpauljoseph/wrt2pdf/pkg/logger"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Validator reads a written PDF back with pdfcpu.
type Validator struct {
	conf   *model.Configuration
	logger *logger.Logger
}

func NewValidator(logger *logger.Logger) *Validator {
	// keep pdfcpu from creating its config directory in the user's home
	api.DisableConfigDir()
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Validator{conf: conf, logger: logger}
}

// Check validates the file and returns its page count.
func (v *Validator) Check(path string) (int, error) {
	v.logger.Trace("Validating %s", path)
	if err := api.ValidateFile(path, v.conf); err != nil {
		return 0, fmt.Errorf("written PDF %s is invalid: %w", path, err)
	}
	pages, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to count pages of %s: %w", path, err)
	}
	return pages, nil
}
