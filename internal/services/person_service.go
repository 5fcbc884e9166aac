package services

import (
	"expenses/internal/models"

	"golang.org/x/crypto/bcrypt"
)

type PersonRepository interface {
	FindByID(personID uint) (models.Person, error)
	FindByEmail(email string) (models.Person, error)
	ExistsByID(personID uint) (bool, error)
	Create(person *models.Person) error
	ListAll() ([]models.Person, error)
	DeleteByID(personID uint) (int64, error)
}

// PersonResponse is the safe listing shape: no password material.
type PersonResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type PersonService struct {
	persons PersonRepository
}

func NewPersonService(persons PersonRepository) *PersonService {
	return &PersonService{persons: persons}
}

// Add validates the onboarding input, hashes the plaintext password and
// persists the person. Only the hash is ever stored. Email uniqueness
// is pre-checked so a duplicate reads as ErrEmailTaken rather than a
// raw constraint failure; the unique index backstops the race.
func (service *PersonService) Add(input PersonInput) (models.Person, error) {
	if !ValidatePersonFields(input) {
		return models.Person{}, ErrMandatoryFieldsMissing
	}
	if _, err := service.persons.FindByEmail(input.Email); err == nil {
		return models.Person{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Person{}, err
	}

	person := models.Person{
		Email:        input.Email,
		PasswordHash: string(passwordHash),
		Name:         input.Name,
		Role:         input.Role,
		Enabled:      true,
	}
	if err := service.persons.Create(&person); err != nil {
		return models.Person{}, err
	}
	return person, nil
}

func (service *PersonService) DeleteByID(personID uint) error {
	removed, err := service.persons.DeleteByID(personID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrNoPersonFound
	}
	return nil
}

func (service *PersonService) GetAll() ([]PersonResponse, error) {
	persons, err := service.persons.ListAll()
	if err != nil {
		return nil, err
	}
	if len(persons) == 0 {
		return nil, ErrNoPersonFound
	}

	responses := make([]PersonResponse, 0, len(persons))
	for _, person := range persons {
		responses = append(responses, PersonResponse{
			ID:    person.ID,
			Email: person.Email,
			Name:  person.Name,
			Role:  person.Role,
		})
	}
	return responses, nil
}
