package models

// Product mirrors the catalog documents served to the storefront.
// Titles and descriptions are stored per locale; the client resolves the
// locale, the server never does.
type Product struct {
	ID            string    `json:"id"`
	TitleEN       string    `json:"title_en"`
	TitleAR       string    `json:"title_ar"`
	DescriptionEN string    `json:"description_en,omitempty"`
	DescriptionAR string    `json:"description_ar,omitempty"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	Images        []string  `json:"images,omitempty"`
	Variants      []Variant `json:"variants,omitempty"`
	// ProductIDs marks a bundled "package" product listing its parts.
	ProductIDs []string `json:"productIds,omitempty"`
}

type Variant struct {
	SKU     string `json:"sku"`
	LabelEN string `json:"label_en,omitempty"`
	LabelAR string `json:"label_ar,omitempty"`
}
