package db

import (
	"expenses/internal/models"

	"gorm.io/gorm"
)

type PersonRepository struct {
	database *gorm.DB
}

func NewPersonRepository(database *gorm.DB) *PersonRepository {
	return &PersonRepository{database: database}
}

func (repo *PersonRepository) FindByID(personID uint) (models.Person, error) {
	var person models.Person
	if err := repo.database.First(&person, personID).Error; err != nil {
		return models.Person{}, err
	}
	return person, nil
}

func (repo *PersonRepository) FindByEmail(email string) (models.Person, error) {
	var person models.Person
	if err := repo.database.Where("email = ?", email).First(&person).Error; err != nil {
		return models.Person{}, err
	}
	return person, nil
}

func (repo *PersonRepository) ExistsByID(personID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Person{}).
		Where("id = ?", personID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *PersonRepository) Create(person *models.Person) error {
	return repo.database.Create(person).Error
}

func (repo *PersonRepository) ListAll() ([]models.Person, error) {
	persons := make([]models.Person, 0)
	if err := repo.database.Order("id").Find(&persons).Error; err != nil {
		return nil, err
	}
	return persons, nil
}

// DeleteByID removes the person and every expense it owns in one
// transaction. Returns the number of person rows removed.
func (repo *PersonRepository) DeleteByID(personID uint) (int64, error) {
	var removed int64
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("person_id = ?", personID).Delete(&models.Expense{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Person{}, personID)
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
