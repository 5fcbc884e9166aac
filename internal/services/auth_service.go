package services

import (
	"expenses/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// Principal is the capability a person grants once authenticated.
type Principal interface {
	Authorities() []string
	CredentialIdentity() string
}

var _ Principal = models.Person{}

type LoginResult struct {
	Token  string        `json:"token"`
	Person models.Person `json:"person"`
}

// AuthService verifies credentials and issues identity tokens. It keeps
// no state beyond its collaborators.
type AuthService struct {
	persons PersonRepository
	tokens  *TokenService
}

func NewAuthService(persons PersonRepository, tokens *TokenService) *AuthService {
	return &AuthService{persons: persons, tokens: tokens}
}

// Authenticate checks the email/password pair against the stored hash
// and returns a signed token bound to the person. Unknown email, wrong
// password and disabled account all collapse to ErrInvalidCredentials.
func (service *AuthService) Authenticate(email string, password string) (LoginResult, error) {
	person, err := service.persons.FindByEmail(email)
	if err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	if !person.Enabled {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(person.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := service.tokens.IssueToken(person.CredentialIdentity(), map[string]any{
		"authorities": person.Authorities(),
	})
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, Person: person}, nil
}

// IdentityFromToken resolves a bearer token back to its person: extract
// the subject, load the person, then verify the token against the
// person's credential identity. Every failure is ErrTokenInvalid.
func (service *AuthService) IdentityFromToken(token string) (models.Person, error) {
	subject, err := service.tokens.ExtractSubject(token)
	if err != nil {
		return models.Person{}, ErrTokenInvalid
	}
	person, err := service.persons.FindByEmail(subject)
	if err != nil {
		return models.Person{}, ErrTokenInvalid
	}
	if !service.tokens.VerifyToken(token, person.CredentialIdentity()) {
		return models.Person{}, ErrTokenInvalid
	}
	return person, nil
}
