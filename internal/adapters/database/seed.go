package database

import (
	"catalogapi.app/internal/ports"
	"github.com/shopspring/decimal"
)

type sampleProduct struct {
	name, description, category, price string
	stock                              int
	image                              string
}

var sampleProducts = []sampleProduct{
	{"Smartphone", "Latest smartphone", "electronic", "999", 50, "smartphone.jpg"},
	{"Laptop", "laptop for professionals", "electronic", "1500", 30, "laptop.jpg"},
	{"Headphones", "Wireless headphones", "electronic", "199", 100, "wireless-headphones.jpg"},
	{"Shoes", "Running shoes", "sports", "89", 200, "running-shoes.jpg"},
	{"Mat", "Mat for exercise", "sports", "29", 150, "yoga-mat.jpg"},
	{"Coffee", "Coffee", "home", "80", 80, "coffee-maker.jpg"},
	{"Chess", "Chess", "Games", "100", 120, "games.jpg"},
	{"T-shirt", "T-shirt", "Clothing", "20", 300, "t-shirt.jpg"},
	{"Jeans", "Classic blue jeans", "clothing", "39.99", 200, "jeans.jpg"},
	{"Novel", "Bestselling fiction novel", "books", "14.99", 500, "novel.jpg"},
}

// SampleProducts returns a fresh copy of the demo catalog used by the seed command
func SampleProducts() []*ports.ProductData {
	products := make([]*ports.ProductData, len(sampleProducts))
	for i, p := range sampleProducts {
		products[i] = &ports.ProductData{
			Name:        p.name,
			Description: p.description,
			Category:    p.category,
			Price:       decimal.RequireFromString(p.price),
			Stock:       p.stock,
			Available:   true,
			ImageURL:    "https://example.com/" + p.image,
		}
	}
	return products
}
