package domain

import (
	"time"
)

// Address is the postal address value object shared by members and deliveries
type Address struct {
	Street  string
	City    string
	Zipcode string
}

// Member represents the member domain entity
type Member struct {
	ID        uint
	Name      string
	Address   Address
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate validates the member entity
func (m *Member) Validate() error {
	if m.Name == "" {
		return ErrNameRequired
	}
	if len(m.Name) > 100 {
		return ErrNameLength
	}
	return nil
}

// NewMember creates a new member with validation
func NewMember(name string, address Address) (*Member, error) {
	member := &Member{
		Name:      name,
		Address:   address,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := member.Validate(); err != nil {
		return nil, err
	}

	return member, nil
}

// Rename changes the member's display name
func (m *Member) Rename(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	if len(name) > 100 {
		return ErrNameLength
	}
	m.Name = name
	m.UpdatedAt = time.Now()
	return nil
}
