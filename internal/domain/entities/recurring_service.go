package entities

import "time"

type BillingFrequency string

const (
	FrequencyDaily   BillingFrequency = "daily"
	FrequencyWeekly  BillingFrequency = "weekly"
	FrequencyMonthly BillingFrequency = "monthly"
	FrequencyYearly  BillingFrequency = "yearly"
)

// RecurringService is a recurring service contract billed to a contact.
//
// ContractMonths is optional: a nil value means the contract is open-ended
// and has no end date.
type RecurringService struct {
	ID             string           `json:"id"`
	Description    string           `json:"description"`
	ContactID      string           `json:"contact_id"`
	ContactName    string           `json:"contact_name"`
	StartDate      time.Time        `json:"start_date"`
	ContractMonths *int             `json:"contract_months,omitempty"`
	Amount         float64          `json:"amount"`
	Frequency      BillingFrequency `json:"frequency"`
	Active         bool             `json:"active"`
}

// EndDate returns start date + contract months, or false when the contract
// has no duration or no start date.
func (r RecurringService) EndDate() (time.Time, bool) {
	if r.ContractMonths == nil || r.StartDate.IsZero() {
		return time.Time{}, false
	}
	return r.StartDate.AddDate(0, *r.ContractMonths, 0), true
}
