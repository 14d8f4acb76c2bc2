package firestorex

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const productsCollection = "products"

// ProductStore is the products collection as seen by the gateway: open
// documents in, open documents out, no field validation.
type ProductStore struct {
	Client *firestore.Client
}

// List returns every document with its server-assigned id merged in.
func (s *ProductStore) List(ctx context.Context) ([]map[string]any, error) {
	iter := s.Client.Collection(productsCollection).Documents(ctx)
	defer iter.Stop()

	out := make([]map[string]any, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		rec := doc.Data()
		rec["id"] = doc.Ref.ID
		out = append(out, rec)
	}
	return out, nil
}

// Create stores the fields verbatim and returns the assigned id.
func (s *ProductStore) Create(ctx context.Context, fields map[string]any) (string, error) {
	ref, _, err := s.Client.Collection(productsCollection).Add(ctx, fields)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

// Update merges the submitted fields into the document (last write wins,
// untouched fields survive). A missing document is a collaborator error;
// ids are only ever minted at creation.
func (s *ProductStore) Update(ctx context.Context, id string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range fields {
		// FieldPath keeps dotted keys as single field names.
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{k}, Value: v})
	}
	_, err := s.Client.Collection(productsCollection).Doc(id).Update(ctx, updates)
	return err
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	_, err := s.Client.Collection(productsCollection).Doc(id).Delete(ctx)
	return err
}
