package models

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type Person struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	Role         string    `gorm:"not null;default:USER" json:"role"`
	Enabled      bool      `gorm:"not null;default:true" json:"enabled"`
	Expenses     []Expense `gorm:"foreignKey:PersonID" json:"-"`
}

func (Person) TableName() string {
	return "persons"
}

// Authorities returns the authority strings granted to the person.
// A person carries exactly one role, no hierarchy.
func (person Person) Authorities() []string {
	return []string{person.Role}
}

// CredentialIdentity returns the login name used as the token subject.
func (person Person) CredentialIdentity() string {
	return person.Email
}
