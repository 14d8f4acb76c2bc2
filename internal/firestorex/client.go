package firestorex

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Connect builds the Firestore handle from a service-account credential
// file. Credential parsing fails here; endpoint reachability fails on
// first use.
func Connect(ctx context.Context, credentialsFile, databaseURL string) (*firestore.Client, error) {
	app, err := firebase.NewApp(ctx,
		&firebase.Config{DatabaseURL: databaseURL},
		option.WithCredentialsFile(credentialsFile),
	)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	return client, nil
}
