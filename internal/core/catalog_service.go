package core

import "context"

type catalogService struct {
	products ProductRepo
}

func NewCatalogService(products ProductRepo) CatalogService {
	return &catalogService{products: products}
}

func (s *catalogService) List(ctx context.Context) ([]Product, error) {
	return s.products.List(ctx)
}

func (s *catalogService) Create(ctx context.Context, in ProductInput) (Product, error) {
	p, err := in.Validate()
	if err != nil {
		return Product{}, err
	}

	id, err := s.products.Insert(ctx, p)
	if err != nil {
		return Product{}, err
	}
	p.ID = id
	return p, nil
}

func (s *catalogService) Count(ctx context.Context) (int64, error) {
	return s.products.Count(ctx)
}

func (s *catalogService) TotalPrice(ctx context.Context) (float64, error) {
	return s.products.SumPrices(ctx)
}

// ListByCategory matches the category exactly as given. Categories are
// stored lowercase, so a mixed-case argument yields an empty result.
func (s *catalogService) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	return s.products.ListByCategory(ctx, category)
}

func (s *catalogService) ListPriceBelow(ctx context.Context, amount float64) ([]Product, error) {
	return s.products.ListPriceBelow(ctx, amount)
}

// ListPriceAtLeast is inclusive: price >= amount. The lower/greater pair is
// intentionally asymmetric for compatibility with the previous service.
func (s *catalogService) ListPriceAtLeast(ctx context.Context, amount float64) ([]Product, error) {
	return s.products.ListPriceAtLeast(ctx, amount)
}

func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	return s.products.DistinctCategories(ctx)
}

func (s *catalogService) Update(ctx context.Context, patch ProductPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	return s.products.Update(ctx, patch.ID, patch)
}

func (s *catalogService) Delete(ctx context.Context, id string) (int64, error) {
	return s.products.Delete(ctx, id)
}

func (s *catalogService) Get(ctx context.Context, id string) (Product, error) {
	return s.products.GetByID(ctx, id)
}
