// Package wizard implements the two client-facing state containers of the
// intake flow: the amount selector of step one and the four-section
// details wizard of step two.
package wizard

import (
	"strings"

	"github.com/shopspring/decimal"

	"investintake/internal/domain"
	"investintake/internal/domain/entity"
	"investintake/internal/domain/value"
	"investintake/pkg/errcodes"
)

// Section is one of the four linearly ordered wizard sections.
type Section int

const (
	SectionInvestment Section = iota
	SectionContact
	SectionConfirmation
	SectionPayment
)

var sectionOrder = []Section{ //nolint:gochecknoglobals
	SectionInvestment,
	SectionContact,
	SectionConfirmation,
	SectionPayment,
}

func (s Section) String() string {
	switch s {
	case SectionInvestment:
		return "investment"
	case SectionContact:
		return "contact"
	case SectionConfirmation:
		return "confirmation"
	case SectionPayment:
		return "payment"
	}

	return "unknown"
}

// ContactData holds the investor-type-gated profile fields of the Contact
// section. Changing the investor type discards all of it: field sets are
// type-dependent and stale values under a new type are invalid.
type ContactData struct {
	InvestorType            value.InvestorType
	FirstName               string
	LastName                string
	JointHolderFirstName    string
	JointHolderLastName     string
	EntityName              string
	SigningOfficerFirstName string
	SigningOfficerLastName  string
	Trustees                []entity.TrusteeName
}

// Machine is the section state machine of step two. Sections unlock on
// completion of everything before them; the completed set only grows
// during a session. A machine constructed without an investor identity is
// a guard dead-end: it renders a start-over prompt and permits no
// transitions.
type Machine struct {
	config      entity.InvestmentConfig
	guarded     bool
	amount      decimal.Decimal
	contact     ContactData
	fieldErrors map[string]string
	completed   map[Section]struct{}
	expanded    Section
}

// NewMachine starts a wizard session. hasIdentity is false when the
// wizard was reached without a prior investor identity.
func NewMachine(config entity.InvestmentConfig, amount decimal.Decimal, hasIdentity bool) *Machine {
	return &Machine{
		config:      config,
		guarded:     !hasIdentity,
		amount:      amount,
		fieldErrors: map[string]string{},
		completed:   map[Section]struct{}{},
		expanded:    SectionInvestment,
	}
}

// Guarded reports whether the session is the dead-end state. Nothing can
// be done with a guarded machine except starting over.
func (m *Machine) Guarded() bool {
	return m.guarded
}

func (m *Machine) Expanded() Section {
	return m.expanded
}

func (m *Machine) Completed(s Section) bool {
	_, ok := m.completed[s]
	return ok
}

// Accessible reports whether a section may be opened: it must either be
// completed already or have every section before it completed.
func (m *Machine) Accessible(s Section) bool {
	if m.guarded {
		return false
	}

	if m.Completed(s) {
		return true
	}

	for _, prev := range sectionOrder {
		if prev == s {
			return true
		}

		if !m.Completed(prev) {
			return false
		}
	}

	return false
}

// Toggle re-opens an unlocked section without touching any captured
// values.
func (m *Machine) Toggle(s Section) error {
	if !m.Accessible(s) {
		return domain.NewError(errcodes.SectionLocked, "section is not accessible yet")
	}

	m.expanded = s

	return nil
}

// Continue validates the expanded section and, on success, marks it
// completed and advances to the next section in order. Payment is the
// terminal submission, not a transition; use MarkSubmitted after the
// completion endpoint succeeds.
func (m *Machine) Continue(s Section) error {
	if m.guarded {
		return domain.NewError(errcodes.SectionLocked, "session has no investor identity, start over")
	}

	if !m.Accessible(s) {
		return domain.NewError(errcodes.SectionLocked, "section is not accessible yet")
	}

	switch s {
	case SectionInvestment:
		if !m.config.WithinLimits(m.amount) {
			return domain.NewError(errcodes.InvalidAmount, "amount is outside the allowed investment range")
		}
	case SectionContact:
		if err := m.validateContact(); err != nil {
			return err
		}
	case SectionConfirmation:
		// An acknowledgement click, always valid.
	case SectionPayment:
		return domain.NewError(errcodes.SectionLocked, "payment is submitted, not continued")
	}

	m.complete(s)

	return nil
}

// MarkSubmitted records the terminal payment submission.
func (m *Machine) MarkSubmitted() {
	m.complete(SectionPayment)
}

func (m *Machine) complete(s Section) {
	m.completed[s] = struct{}{}

	for i, section := range sectionOrder {
		if section == s && i+1 < len(sectionOrder) {
			m.expanded = sectionOrder[i+1]
		}
	}
}

func (m *Machine) Amount() decimal.Decimal {
	return m.amount
}

// SetAmount re-captures the amount while the Investment section is open.
func (m *Machine) SetAmount(amount decimal.Decimal) {
	m.amount = amount
}

func (m *Machine) Contact() ContactData {
	return m.contact
}

// SetContact replaces the captured contact fields, keeping the current
// investor type.
func (m *Machine) SetContact(data ContactData) {
	data.InvestorType = m.contact.InvestorType
	m.contact = data
}

// SetInvestorType switches the investor type and clears every
// contact-local field value and validation error.
func (m *Machine) SetInvestorType(t value.InvestorType) {
	m.contact = ContactData{InvestorType: t}
	m.fieldErrors = map[string]string{}
}

func (m *Machine) FieldErrors() map[string]string {
	return m.fieldErrors
}

func (m *Machine) validateContact() error {
	m.fieldErrors = map[string]string{}

	c := m.contact

	if strings.TrimSpace(c.FirstName) == "" {
		m.fieldErrors["firstName"] = "first name is required"
	}

	if strings.TrimSpace(c.LastName) == "" {
		m.fieldErrors["lastName"] = "last name is required"
	}

	if c.InvestorType.RequiresJointHolder() {
		if strings.TrimSpace(c.JointHolderFirstName) == "" {
			m.fieldErrors["jointHolderFirstName"] = "joint holder first name is required"
		}

		if strings.TrimSpace(c.JointHolderLastName) == "" {
			m.fieldErrors["jointHolderLastName"] = "joint holder last name is required"
		}
	}

	if c.InvestorType.RequiresEntityName() && strings.TrimSpace(c.EntityName) == "" {
		m.fieldErrors["entityName"] = "name is required"
	}

	if len(m.fieldErrors) > 0 {
		return domain.NewError(errcodes.ValidationError, "contact details are incomplete")
	}

	return nil
}
