package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/nikiya/zaiko-api/internal/application/dto"
	"github.com/nikiya/zaiko-api/internal/domain"
	"github.com/nikiya/zaiko-api/internal/domain/entity"
	"github.com/nikiya/zaiko-api/internal/domain/repository"
	"github.com/nikiya/zaiko-api/internal/domain/stock"
)

// ProductUseCase registro, edición y baja de productos. La baja arrastra en
// cascada los movimientos del producto, emparejados por nombre.
type ProductUseCase struct {
	products repository.ProductRepository
	ledger   repository.TransactionRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, ledger repository.TransactionRepository) *ProductUseCase {
	return &ProductUseCase{products: products, ledger: ledger}
}

// Create registra un producto nuevo. Si entra con stock inicial mayor que cero se
// asienta además una entrada sintética en el libro marcada con el destino
// reservado de stock inicial.
func (uc *ProductUseCase) Create(in dto.SaveProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.Category == "" || in.Stock < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	product := &entity.Product{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Category:       in.Category,
		MediumCategory: in.MediumCategory,
		SmallCategory:  in.SmallCategory,
		ImageURL:       in.ImageURL,
		Stock:          in.Stock,
		Status:         stock.StatusFor(in.Stock),
		Price:          in.Price,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}

	if in.Stock > 0 {
		mov := &entity.Transaction{
			ID:          uuid.New().String(),
			ProductName: product.Name,
			User:        entity.PlaceholderUser,
			Amount:      in.Stock,
			Date:        time.Now().Format(entity.DateLayout),
			Type:        entity.MovementIn,
			Destination: entity.InitialStockDestination,
		}
		if err := uc.ledger.Prepend(mov); err != nil {
			return nil, err
		}
	}
	return product, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	return uc.products.GetByID(id)
}

// List devuelve los productos en orden de registro.
func (uc *ProductUseCase) List() []entity.Product {
	return uc.products.List()
}

// Update reemplaza el producto con el ID dado. No toca el libro: renombrar un
// producto deja huérfana su historia (el join es por nombre). El estado se
// rederiva siempre del stock entrante.
func (uc *ProductUseCase) Update(id string, in dto.SaveProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.Category == "" || in.Stock < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:             current.ID,
		Name:           in.Name,
		Category:       in.Category,
		MediumCategory: in.MediumCategory,
		SmallCategory:  in.SmallCategory,
		ImageURL:       in.ImageURL,
		Stock:          in.Stock,
		Status:         stock.StatusFor(in.Stock),
		Price:          in.Price,
	}
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete elimina el producto y, en cascada, todos los movimientos cuyo
// productName coincida con el nombre del producto eliminado.
func (uc *ProductUseCase) Delete(id string) error {
	removed, err := uc.products.Delete(id)
	if err != nil {
		return err
	}
	return uc.ledger.DeleteByProductName(removed.Name)
}
