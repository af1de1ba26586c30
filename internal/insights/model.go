// Package insights defines the brand insight data model produced by a
// storefront scrape and the final validation pass applied to every record.
package insights

// Product is a single catalog entry from a storefront's product feed.
type Product struct {
	// Title is the product display name
	Title string `json:"title"`
	// Handle is the product slug, unique within a storefront
	Handle string `json:"handle"`
	// Price is the platform-native price string of the first variant
	Price string `json:"price"`
	// Image is the URL of the first product image, if any
	Image string `json:"image,omitempty"`
}

// Policy holds a discovered policy page and its cleaned content.
type Policy struct {
	// URL is the policy page location
	URL string `json:"url"`
	// Content is the cleaned policy text, empty when extraction failed
	Content string `json:"content,omitempty"`
}

// FAQ is a single question-answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SocialHandle is a recognized social media presence.
type SocialHandle struct {
	// Platform is one of the fixed recognized platform names
	Platform string `json:"platform"`
	// URL is the raw href found on the page
	URL string `json:"url"`
}

// ContactInfo holds deduplicated contact details found in page text.
type ContactInfo struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

// BrandInsights is the aggregate record produced by one storefront scrape.
// A second scrape of the same website overwrites the stored record.
type BrandInsights struct {
	BrandName          string             `json:"brand_name"`
	Website            string             `json:"website"`
	Products           []Product          `json:"products"`
	HeroProducts       []Product          `json:"hero_products"`
	PrivacyPolicy      *Policy            `json:"privacy_policy"`
	ReturnRefundPolicy *Policy            `json:"return_refund_policy"`
	FAQs               []FAQ              `json:"faqs"`
	SocialHandles      []SocialHandle     `json:"social_handles"`
	ContactInfo        ContactInfo        `json:"contact_info"`
	AboutBrand         string             `json:"about_brand"`
	ImportantLinks     map[string]string  `json:"important_links"`
	AdditionalInsights map[string]bool    `json:"additional_insights"`
}
