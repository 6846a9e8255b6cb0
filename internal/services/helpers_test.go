package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dealfinder/internal/catalog"
	"dealfinder/internal/domain"
)

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return cat
}

func offer(store string, price int) domain.Offer {
	return domain.Offer{StoreName: store, Price: price, Link: "https://" + store + ".example.com"}
}

func syntheticCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]domain.Product{
		{
			Name: "Echo Bar", Brand: "Acme", Category: domain.CategorySpeaker,
			Features: []string{"Bluetooth"},
			ImageURL: "https://img.example.com/echo.jpg",
			Offers:   []domain.Offer{offer("first", 500), offer("second", 500), offer("third", 900)},
		},
		{
			Name: "Quiet One", Brand: "Hush", Category: domain.CategoryHeadphone,
			ImageURL: "https://img.example.com/quiet.jpg",
			Offers:   []domain.Offer{offer("solo", 300)},
		},
		{
			Name: "Acme Beam", Brand: "Acme", Category: domain.CategoryProjector,
			Features: []string{"1080p", "Short throw", "HDMI"},
			ImageURL: "https://img.example.com/beam.jpg",
			Offers:   []domain.Offer{offer("pricey", 20000), offer("cheap", 15000)},
		},
	})
	require.NoError(t, err)
	return cat
}
