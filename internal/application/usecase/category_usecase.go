package usecase

import (
	"github.com/google/uuid"

	"github.com/nikiya/zaiko-api/internal/domain"
	"github.com/nikiya/zaiko-api/internal/domain/entity"
	"github.com/nikiya/zaiko-api/internal/domain/repository"
)

// CategoryUseCase altas y bajas del vocabulario de clasificación. Los nombres no
// se validan contra entradas existentes (los duplicados se permiten) y el borrado
// no toca los productos que sigan usando ese nombre.
type CategoryUseCase struct {
	categories repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories}
}

// Add crea una entrada con id nuevo e icono por defecto.
func (uc *CategoryUseCase) Add(name, categoryType string) (*entity.Category, error) {
	if name == "" || !entity.ValidCategoryType(categoryType) {
		return nil, domain.ErrInvalidInput
	}
	cat := &entity.Category{
		ID:   uuid.New().String(),
		Name: name,
		Type: categoryType,
		Icon: entity.DefaultCategoryIcon,
	}
	if err := uc.categories.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Delete elimina la entrada. Las referencias colgantes desde productos son
// comportamiento aceptado, no un error.
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.categories.Delete(id)
}

// List devuelve el vocabulario, opcionalmente filtrado por nivel.
func (uc *CategoryUseCase) List(categoryType string) []entity.Category {
	if categoryType == "" {
		return uc.categories.List()
	}
	return uc.categories.ListByType(categoryType)
}
