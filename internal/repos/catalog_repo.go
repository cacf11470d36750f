package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"minishop/internal/domain"
)

// CatalogRepo covers the product service's two entities: categories and
// the products under them.
type CatalogRepo struct{ DB *sqlx.DB }

func NewCatalogRepo(db *sqlx.DB) *CatalogRepo { return &CatalogRepo{DB: db} }

func (r *CatalogRepo) CreateCategory(cat domain.Category) (domain.Category, error) {
	res, err := r.DB.Exec(`INSERT INTO categories(category_title,image_url) VALUES(?,?)`,
		cat.CategoryTitle, cat.ImageURL)
	if err != nil {
		return domain.Category{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Category{}, err
	}
	cat.CategoryID = int(id)
	return cat, nil
}

func (r *CatalogRepo) CategoryByID(id int) (domain.Category, error) {
	var cat domain.Category
	err := r.DB.Get(&cat, `SELECT category_id,category_title,image_url FROM categories WHERE category_id=?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Category{}, fmt.Errorf("%w: id %d", ErrCategoryNotFound, id)
	}
	return cat, err
}

func (r *CatalogRepo) Categories() ([]domain.Category, error) {
	var out []domain.Category
	err := r.DB.Select(&out, `SELECT category_id,category_title,image_url FROM categories ORDER BY category_id`)
	return out, err
}

// categoryRef maps the zero id to NULL so uncategorized products do
// not trip the categories foreign key.
func categoryRef(id int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(id), Valid: id != 0}
}

func (r *CatalogRepo) CreateProduct(p domain.Product) (domain.Product, error) {
	res, err := r.DB.Exec(`INSERT INTO products(product_title,image_url,sku,price_unit,quantity,category_id) VALUES(?,?,?,?,?,?)`,
		p.ProductTitle, p.ImageURL, p.SKU, p.PriceUnit, p.Quantity, categoryRef(p.CategoryID))
	if err != nil {
		return domain.Product{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Product{}, err
	}
	p.ProductID = int(id)
	return p, nil
}

func (r *CatalogRepo) ProductByID(id int) (domain.Product, error) {
	var p domain.Product
	err := r.DB.Get(&p, `SELECT product_id,product_title,image_url,sku,price_unit,quantity,COALESCE(category_id,0) AS category_id FROM products WHERE product_id=?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
	}
	return p, err
}

func (r *CatalogRepo) Products() ([]domain.Product, error) {
	var out []domain.Product
	err := r.DB.Select(&out, `SELECT product_id,product_title,image_url,sku,price_unit,quantity,COALESCE(category_id,0) AS category_id FROM products ORDER BY product_id`)
	return out, err
}

func (r *CatalogRepo) UpdateProduct(p domain.Product) (domain.Product, error) {
	res, err := r.DB.Exec(`UPDATE products SET product_title=?,image_url=?,sku=?,price_unit=?,quantity=?,category_id=? WHERE product_id=?`,
		p.ProductTitle, p.ImageURL, p.SKU, p.PriceUnit, p.Quantity, categoryRef(p.CategoryID), p.ProductID)
	if err != nil {
		return domain.Product{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Product{}, fmt.Errorf("%w: id %d", ErrProductNotFound, p.ProductID)
	}
	return p, nil
}

func (r *CatalogRepo) DeleteProduct(id int) error {
	res, err := r.DB.Exec(`DELETE FROM products WHERE product_id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: id %d", ErrProductNotFound, id)
	}
	return nil
}
