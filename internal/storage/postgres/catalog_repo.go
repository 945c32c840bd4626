package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/allmart/backoffice/internal/domain/errors"
	"github.com/allmart/backoffice/internal/domain/model"
)

type categoryRepository struct {
	storage *Storage
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	const query = `INSERT INTO categories (id, name, slug, description, image, item_count)
                   VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.storage.pool.Exec(ctx, query,
		category.ID, category.Name, category.Slug, category.Description, category.Image, category.ItemCount)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*model.Category, error) {
	const query = `SELECT id, name, slug, description, image, item_count FROM categories WHERE id=$1`
	var c model.Category
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image, &c.ItemCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT id, name, slug, description, image, item_count FROM categories ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image, &c.ItemCount); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *model.Category) error {
	const query = `UPDATE categories SET name=$1, slug=$2, description=$3, image=$4, item_count=$5 WHERE id=$6`
	tag, err := r.storage.pool.Exec(ctx, query,
		category.Name, category.Slug, category.Description, category.Image, category.ItemCount, category.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

type productRepository struct {
	storage *Storage
}

const productColumns = `id, name, slug, description, short_description, price, original_price, discount,
                        images, category, tags, rating, review_count, in_stock, sku, features, stock, variants`

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	doc, err := marshalProductDocs(product)
	if err != nil {
		return err
	}
	const query = `INSERT INTO products (id, name, slug, description, short_description, price, original_price, discount,
                       images, category, tags, rating, review_count, in_stock, sku, features, stock, variants)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = r.storage.pool.Exec(ctx, query,
		product.ID, product.Name, product.Slug, product.Description, product.ShortDescription,
		product.Price, product.OriginalPrice, product.Discount,
		doc.images, doc.category, doc.tags,
		product.Rating, product.ReviewCount, product.InStock, product.SKU,
		doc.features, product.Stock, doc.variants)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	product, err := scanProductRow(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		product, err := scanProductRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	doc, err := marshalProductDocs(product)
	if err != nil {
		return err
	}
	const query = `UPDATE products SET name=$1, slug=$2, description=$3, short_description=$4, price=$5,
                       original_price=$6, discount=$7, images=$8, category=$9, tags=$10, rating=$11,
                       review_count=$12, in_stock=$13, sku=$14, features=$15, stock=$16, variants=$17
                   WHERE id=$18`
	tag, err := r.storage.pool.Exec(ctx, query,
		product.Name, product.Slug, product.Description, product.ShortDescription, product.Price,
		product.OriginalPrice, product.Discount,
		doc.images, doc.category, doc.tags,
		product.Rating, product.ReviewCount, product.InStock, product.SKU,
		doc.features, product.Stock, doc.variants, product.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) ReplaceVariants(ctx context.Context, productID string, groups []model.VariantGroup) (*model.Product, error) {
	encoded, err := json.Marshal(groups)
	if err != nil {
		return nil, err
	}
	tag, err := r.storage.pool.Exec(ctx, `UPDATE products SET variants=$1 WHERE id=$2`, encoded, productID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return r.GetByID(ctx, productID)
}

type productDocs struct {
	images   []byte
	category []byte
	tags     []byte
	features []byte
	variants []byte
}

func marshalProductDocs(product *model.Product) (*productDocs, error) {
	var doc productDocs
	var err error
	if doc.images, err = json.Marshal(emptySlice(product.Images)); err != nil {
		return nil, err
	}
	if doc.category, err = json.Marshal(product.Category); err != nil {
		return nil, err
	}
	if doc.tags, err = json.Marshal(emptySlice(product.Tags)); err != nil {
		return nil, err
	}
	if doc.features, err = json.Marshal(emptySlice(product.Features)); err != nil {
		return nil, err
	}
	if product.Variants == nil {
		product.Variants = []model.VariantGroup{}
	}
	if doc.variants, err = json.Marshal(product.Variants); err != nil {
		return nil, err
	}
	return &doc, nil
}

func emptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func scanProductRow(row pgx.Row) (*model.Product, error) {
	var p model.Product
	var images, category, tags, features, variants []byte
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.ShortDescription,
		&p.Price, &p.OriginalPrice, &p.Discount,
		&images, &category, &tags,
		&p.Rating, &p.ReviewCount, &p.InStock, &p.SKU,
		&features, &p.Stock, &variants)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(images, &p.Images); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(category, &p.Category); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &p.Tags); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(features, &p.Features); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(variants, &p.Variants); err != nil {
		return nil, err
	}
	return &p, nil
}
