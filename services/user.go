package services

import (
	"time"

	"github.com/NelushGayashan/demo-api/models"
)

// UserStore is the persistence contract the user service needs.
type UserStore interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindAll() ([]models.User, error)
	ExistsByID(id uint) (bool, error)
	ExistsByUsername(username string) (bool, error)
	ExistsByEmail(email string) (bool, error)
	Update(user *models.User) error
	DeleteByID(id uint) error
	DistinctCountries() ([]string, error)
	DistinctCities() ([]string, error)
}

// UserFilter holds the optional listing criteria. Empty strings mean
// "no filter".
type UserFilter struct {
	Country string
	City    string
	Status  string
}

type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// GetUsers fetches all users and narrows them in memory, preserving store
// order.
func (s *UserService) GetUsers(filter UserFilter) ([]models.User, error) {
	users, err := s.store.FindAll()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.User, 0, len(users))
	for _, u := range users {
		if filter.Country != "" && !equalsFold(u.Country, filter.Country) {
			continue
		}
		if filter.City != "" && !equalsFold(u.City, filter.City) {
			continue
		}
		if filter.Status != "" && !equalsFold(u.Status, filter.Status) {
			continue
		}
		filtered = append(filtered, u)
	}
	return filtered, nil
}

func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.store.FindByID(id)
}

func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	return s.store.FindByUsername(username)
}

func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	return s.store.FindByEmail(email)
}

// SearchUsersByName matches the full name by case-insensitive containment.
// Users without a full name are excluded.
func (s *UserService) SearchUsersByName(name string) ([]models.User, error) {
	users, err := s.store.FindAll()
	if err != nil {
		return nil, err
	}
	matched := make([]models.User, 0)
	for _, u := range users {
		if u.FullName != nil && containsFold(*u.FullName, name) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

func (s *UserService) GetUsersByCountry(country string) ([]models.User, error) {
	return s.GetUsers(UserFilter{Country: country})
}

func (s *UserService) GetUsersByCity(city string) ([]models.User, error) {
	return s.GetUsers(UserFilter{City: city})
}

func (s *UserService) GetUsersByStatus(status string) ([]models.User, error) {
	return s.GetUsers(UserFilter{Status: status})
}

// CreateUser discards any client-supplied id and stamps both timestamps.
// Username and email uniqueness is enforced by the store.
func (s *UserService) CreateUser(user *models.User) (*models.User, error) {
	user.ID = 0
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if err := s.store.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser overwrites every mutable field of the stored user with the
// payload's values, nulls included. Identity and createdAt are carried over.
func (s *UserService) UpdateUser(id uint, payload models.User) (*models.User, error) {
	existing, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}

	existing.Username = payload.Username
	existing.Email = payload.Email
	existing.FullName = payload.FullName
	existing.Phone = payload.Phone
	existing.Address = payload.Address
	existing.City = payload.City
	existing.Country = payload.Country
	existing.Status = payload.Status
	existing.UpdatedAt = time.Now()

	if err := s.store.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *UserService) DeleteUser(id uint) (bool, error) {
	exists, err := s.store.ExistsByID(id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if err := s.store.DeleteByID(id); err != nil {
		return false, err
	}
	return true, nil
}

func (s *UserService) ExistsByUsername(username string) (bool, error) {
	return s.store.ExistsByUsername(username)
}

func (s *UserService) ExistsByEmail(email string) (bool, error) {
	return s.store.ExistsByEmail(email)
}

func (s *UserService) GetAllCountries() ([]string, error) {
	return s.store.DistinctCountries()
}

func (s *UserService) GetAllCities() ([]string, error) {
	return s.store.DistinctCities()
}
