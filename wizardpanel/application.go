package wizardpanel

import (
	"regexp"

	"github.com/pkg/errors"
)

// Business types offered on the first step.
const (
	Individual  = "Individual"
	Corporation = "Corporation"
)

// Expertise lists the skills offered on the second step.
var Expertise = []string{"Combine", "Machinery", "Livestock", "Orchard", "Greenhouse", "Irrigation"}

var registrationPattern = regexp.MustCompile(`^\d{3}-\d{2}-\d{5}$`)

// Application is what the upgrade form collects.
type Application struct {
	BusinessType       string   `json:"business_type" yaml:"business_type"`
	RegistrationNumber string   `json:"registration_number" yaml:"registration_number"`
	CompanyName        string   `json:"company_name" yaml:"company_name"`
	Owner              string   `json:"owner" yaml:"owner"`
	Expertise          []string `json:"expertise" yaml:"expertise"`
}

// Validate checks the fields needed to submit.
func (app Application) Validate() error {

	switch {
	case app.BusinessType != Individual && app.BusinessType != Corporation:
		return errors.Errorf("unknown business type %q", app.BusinessType)
	case !registrationPattern.MatchString(app.RegistrationNumber):
		return errors.Errorf("registration number %q is not like 000-00-00000", app.RegistrationNumber)
	case app.CompanyName == "":
		return errors.New("company name is required")
	case app.Owner == "":
		return errors.New("owner name is required")
	}
	return nil
}
