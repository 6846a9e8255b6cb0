package domain

import "strings"

type Category string

const (
	CategoryHeadphone Category = "headphone"
	CategoryTV        Category = "tv"
	CategorySpeaker   Category = "speaker"
	CategoryLaptop    Category = "laptop"
	CategoryMobile    Category = "mobile"
	CategoryProjector Category = "projector"
	CategoryConsole   Category = "console"
)

// Categories lists every known category in picker order.
var Categories = []Category{
	CategoryHeadphone,
	CategoryTV,
	CategorySpeaker,
	CategoryLaptop,
	CategoryMobile,
	CategoryProjector,
	CategoryConsole,
}

// ParseCategory matches s case-insensitively against the known categories.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

type Offer struct {
	StoreName string `yaml:"store" db:"store_name" validate:"required"`
	Price     int    `yaml:"price" db:"price" validate:"gt=0"`
	Link      string `yaml:"link" db:"link" validate:"required,url"`
}

type Product struct {
	Name     string   `yaml:"name" db:"name" validate:"required"`
	Brand    string   `yaml:"brand" db:"brand" validate:"required"`
	Category Category `yaml:"type" db:"category" validate:"required"`
	Features []string `yaml:"features" db:"-" validate:"dive,required"`
	ImageURL string   `yaml:"image" db:"image_url" validate:"required,url"`
	Offers   []Offer  `yaml:"stores" db:"-" validate:"required,min=1,dive"`
}

// SuggestionResult is a product annotated with its cheapest offer.
type SuggestionResult struct {
	Name      string   `json:"name"`
	Brand     string   `json:"brand"`
	Category  Category `json:"type"`
	Features  []string `json:"features"`
	ImageURL  string   `json:"image"`
	Price     int      `json:"price"`
	BestStore string   `json:"bestStore"`
	Link      string   `json:"link"`
	Reason    string   `json:"reason"`
}

type ComparisonView struct {
	Name      string   `json:"name"`
	Brand     string   `json:"brand"`
	Category  Category `json:"type"`
	Features  []string `json:"features"`
	ImageURL  string   `json:"image"`
	Price     int      `json:"price"`
	BestStore string   `json:"bestStore"`
	Link      string   `json:"link"`
}

type ComparisonResult struct {
	Product1 ComparisonView `json:"product1"`
	Product2 ComparisonView `json:"product2"`
}
