package services

import (
	"errors"
	"testing"

	"expenses/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func TestPersonAddRejectsIncompleteInput(t *testing.T) {
	service := NewPersonService(newStubPersonRepo())

	input := PersonInput{Email: "a@b.com", Name: "A", Role: models.RoleUser}
	if _, err := service.Add(input); !errors.Is(err, ErrMandatoryFieldsMissing) {
		t.Fatalf("expected ErrMandatoryFieldsMissing, got %v", err)
	}
}

func TestPersonAddStoresHashNotPlaintext(t *testing.T) {
	repo := newStubPersonRepo()
	service := NewPersonService(repo)

	person, err := service.Add(PersonInput{Email: "a@b.com", Name: "A", Role: models.RoleUser, Password: "pw"})
	if err != nil {
		t.Fatalf("add person: %v", err)
	}
	if person.PasswordHash == "pw" || person.PasswordHash == "" {
		t.Fatalf("expected stored hash distinct from plaintext, got %q", person.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(person.PasswordHash), []byte("pw")); err != nil {
		t.Fatalf("stored hash does not match plaintext: %v", err)
	}
	if !person.Enabled {
		t.Fatal("expected onboarded person to be enabled")
	}
}

func TestPersonAddRejectsDuplicateEmail(t *testing.T) {
	repo := newStubPersonRepo(models.Person{ID: 1, Email: "a@b.com", PasswordHash: "hash", Name: "A", Role: models.RoleUser, Enabled: true})
	service := NewPersonService(repo)

	input := PersonInput{Email: "a@b.com", Name: "B", Role: models.RoleUser, Password: "pw"}
	if _, err := service.Add(input); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("expected no person persisted, got %d", len(repo.created))
	}
}

func TestPersonDeleteByIDMissing(t *testing.T) {
	service := NewPersonService(newStubPersonRepo())
	if err := service.DeleteByID(5); !errors.Is(err, ErrNoPersonFound) {
		t.Fatalf("expected ErrNoPersonFound, got %v", err)
	}
}

func TestPersonGetAllEmptyStore(t *testing.T) {
	service := NewPersonService(newStubPersonRepo())
	if _, err := service.GetAll(); !errors.Is(err, ErrNoPersonFound) {
		t.Fatalf("expected ErrNoPersonFound, got %v", err)
	}
}

func TestPersonGetAllListsSparseIDsInOrder(t *testing.T) {
	repo := newStubPersonRepo(
		models.Person{ID: 42, Email: "late@b.com", PasswordHash: "hash", Name: "Late", Role: models.RoleUser, Enabled: true},
		models.Person{ID: 3, Email: "early@b.com", PasswordHash: "hash", Name: "Early", Role: models.RoleUser, Enabled: true},
	)
	service := NewPersonService(repo)

	responses, err := service.GetAll()
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}
	if responses[0].ID != 3 || responses[1].ID != 42 {
		t.Fatalf("expected ids [3 42], got [%d %d]", responses[0].ID, responses[1].ID)
	}
}

func TestPersonGetAllOmitsPasswordMaterial(t *testing.T) {
	repo := newStubPersonRepo(models.Person{
		ID:           1,
		Email:        "a@b.com",
		PasswordHash: "$2a$10$something",
		Name:         "A",
		Role:         models.RoleUser,
		Enabled:      true,
	})
	service := NewPersonService(repo)

	responses, err := service.GetAll()
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(responses))
	}
	response := responses[0]
	if response.ID != 1 || response.Email != "a@b.com" || response.Name != "A" || response.Role != models.RoleUser {
		t.Fatalf("unexpected response shape: %+v", response)
	}
}
