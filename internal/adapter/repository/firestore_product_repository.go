package repository

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"trendkart/internal/domain/entity"
	"trendkart/internal/domain/repository"
	"trendkart/pkg/errors"
	"trendkart/pkg/utils"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	product, err := docToProduct(doc)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *firestoreProductRepository) ListByCategory(ctx context.Context, category string, cursor *utils.Cursor, limit int) ([]*entity.Product, *utils.Cursor, error) {
	// Document ID is a tie-breaker so the cursor is stable across
	// products sharing a name.
	query := r.client.Collection("products").
		Where("category", "==", category).
		OrderBy("name", firestore.Asc).
		OrderBy(firestore.DocumentID, firestore.Asc)

	if cursor != nil {
		query = query.StartAfter(cursor.Name, cursor.ID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, nil, errors.Internal("Failed to iterate category products", err)
		}

		product, err := docToProduct(doc)
		if err != nil {
			return nil, nil, err
		}
		products = append(products, product)
	}

	if len(products) == 0 {
		return nil, nil, nil
	}

	last := products[len(products)-1]
	next := &utils.Cursor{Name: last.Name, ID: last.ID}

	return products, next, nil
}

func (r *firestoreProductRepository) ListByCategoryID(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	iter := r.client.Collection("products").
		Where("categoryId", "==", categoryID).
		Documents(ctx)
	defer iter.Stop()

	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate products by category id", err)
		}

		product, err := docToProduct(doc)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

func (r *firestoreProductRepository) SuggestByKeyword(ctx context.Context, keyword string, limit int) ([]*entity.Product, error) {
	iter := r.client.Collection("products").
		Where("searchkeywords", "array-contains", strings.ToLower(keyword)).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to search products by keyword", err)
		}

		product, err := docToProduct(doc)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

func (r *firestoreProductRepository) ListFirst(ctx context.Context, limit int) ([]*entity.Product, error) {
	iter := r.client.Collection("products").Limit(limit).Documents(ctx)
	defer iter.Stop()

	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list products", err)
		}

		product, err := docToProduct(doc)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

func (r *firestoreProductRepository) Trending(ctx context.Context, limit int) ([]*entity.Product, error) {
	iter := r.client.Collection("products").
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list trending products", err)
		}

		product, err := docToProduct(doc)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

func docToProduct(doc *firestore.DocumentSnapshot) (*entity.Product, error) {
	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}
	product.ID = doc.Ref.ID
	return &product, nil
}
