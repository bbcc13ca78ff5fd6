package entities

type PersonType string

const (
	PersonTypeIndividual   PersonType = "individual"
	PersonTypeOrganization PersonType = "organization"
)

type ContactScope string

const (
	ContactScopeClient   ContactScope = "client"
	ContactScopeSupplier ContactScope = "supplier"
	ContactScopeBoth     ContactScope = "both"
)

type Contact struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	FantasyName string       `json:"fantasy_name,omitempty"`
	PersonType  PersonType   `json:"person_type"`
	Scope       ContactScope `json:"scope"`
	Phone       string       `json:"phone,omitempty"`
	Email       string       `json:"email,omitempty"`
}

// DisplayName prefers the trade name when one is registered.
func (c Contact) DisplayName() string {
	if c.FantasyName != "" {
		return c.FantasyName
	}
	return c.Name
}

// IsClient reports whether the contact buys from us.
func (c Contact) IsClient() bool {
	return c.Scope == ContactScopeClient || c.Scope == ContactScopeBoth
}
