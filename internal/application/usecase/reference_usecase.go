package usecase

import (
	"github.com/google/uuid"

	"github.com/nikiya/zaiko-api/internal/domain"
	"github.com/nikiya/zaiko-api/internal/domain/entity"
	"github.com/nikiya/zaiko-api/internal/domain/repository"
)

// ReferenceUseCase mantiene las listas planas de referencia (encargados y
// destinos) que alimentan las sugerencias de los formularios de movimiento.
// Sin chequeos cruzados contra el libro: User y Destination son texto libre.
type ReferenceUseCase struct {
	staff        repository.StaffRepository
	destinations repository.DestinationRepository
}

// NewReferenceUseCase construye el caso de uso.
func NewReferenceUseCase(staff repository.StaffRepository, destinations repository.DestinationRepository) *ReferenceUseCase {
	return &ReferenceUseCase{staff: staff, destinations: destinations}
}

// AddStaff alta de encargado.
func (uc *ReferenceUseCase) AddStaff(name string) (*entity.Staff, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.Staff{ID: uuid.New().String(), Name: name}
	if err := uc.staff.Create(s); err != nil {
		return nil, err
	}
	return s, nil
}

// DeleteStaff baja de encargado.
func (uc *ReferenceUseCase) DeleteStaff(id string) error {
	return uc.staff.Delete(id)
}

// ListStaff lista de encargados.
func (uc *ReferenceUseCase) ListStaff() []entity.Staff {
	return uc.staff.List()
}

// AddDestination alta de destino.
func (uc *ReferenceUseCase) AddDestination(name string) (*entity.Destination, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	d := &entity.Destination{ID: uuid.New().String(), Name: name}
	if err := uc.destinations.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

// DeleteDestination baja de destino.
func (uc *ReferenceUseCase) DeleteDestination(id string) error {
	return uc.destinations.Delete(id)
}

// ListDestinations lista de destinos.
func (uc *ReferenceUseCase) ListDestinations() []entity.Destination {
	return uc.destinations.List()
}
