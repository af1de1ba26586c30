package insights

import "testing"

func TestFinalize_Defaults(t *testing.T) {
	record := Finalize(&BrandInsights{Website: "https://example-store.com"})

	if record.BrandName != DefaultBrandName {
		t.Errorf("expected default brand name, got %q", record.BrandName)
	}
	if record.AboutBrand != DefaultAboutText {
		t.Errorf("expected default about text, got %q", record.AboutBrand)
	}
	if record.Products == nil || record.HeroProducts == nil {
		t.Error("expected product lists to default to empty, not nil")
	}
	if record.FAQs == nil || record.SocialHandles == nil {
		t.Error("expected faq and social lists to default to empty, not nil")
	}
	if record.ContactInfo.Emails == nil || record.ContactInfo.Phones == nil {
		t.Error("expected contact lists to default to empty, not nil")
	}
	if record.ImportantLinks == nil || record.AdditionalInsights == nil {
		t.Error("expected maps to default to empty, not nil")
	}
}

func TestFinalize_PreservesResolvedFields(t *testing.T) {
	record := Finalize(&BrandInsights{
		BrandName:  "Acme",
		AboutBrand: "A fine purveyor of anvils.",
	})

	if record.BrandName != "Acme" {
		t.Errorf("expected resolved brand name preserved, got %q", record.BrandName)
	}
	if record.AboutBrand != "A fine purveyor of anvils." {
		t.Errorf("expected resolved about text preserved, got %q", record.AboutBrand)
	}
}

func TestFinalize_HeroBackfill(t *testing.T) {
	products := make([]Product, 10)
	for i := range products {
		products[i] = Product{Title: "P", Handle: string(rune('a' + i)), Price: "1.00"}
	}

	record := Finalize(&BrandInsights{Products: products})

	if len(record.HeroProducts) != 6 {
		t.Fatalf("expected 6 backfilled hero products, got %d", len(record.HeroProducts))
	}
	if record.HeroProducts[0].Handle != "a" {
		t.Errorf("expected backfill to take leading products, got handle %q", record.HeroProducts[0].Handle)
	}
}

func TestFinalize_HeroBackfillDoesNotOverride(t *testing.T) {
	record := Finalize(&BrandInsights{
		Products:     []Product{{Handle: "a"}, {Handle: "b"}, {Handle: "c"}},
		HeroProducts: []Product{{Handle: "c"}},
	})

	if len(record.HeroProducts) != 1 || record.HeroProducts[0].Handle != "c" {
		t.Errorf("expected matcher-populated hero products preserved, got %+v", record.HeroProducts)
	}
}

func TestFinalize_DedupesFAQs(t *testing.T) {
	record := Finalize(&BrandInsights{
		FAQs: []FAQ{
			{Question: "Do you ship internationally?", Answer: "Yes."},
			{Question: "do you ship INTERNATIONALLY?", Answer: "Different answer."},
			{Question: "What is your return window?", Answer: "30 days."},
		},
	})

	if len(record.FAQs) != 2 {
		t.Fatalf("expected 2 unique faqs, got %d", len(record.FAQs))
	}
	if record.FAQs[0].Answer != "Yes." {
		t.Errorf("expected first occurrence kept, got %q", record.FAQs[0].Answer)
	}
}

func TestFinalize_CapsFAQs(t *testing.T) {
	faqs := make([]FAQ, 12)
	for i := range faqs {
		faqs[i] = FAQ{Question: string(rune('a'+i)) + "?", Answer: "answer"}
	}

	record := Finalize(&BrandInsights{FAQs: faqs})

	if len(record.FAQs) != 8 {
		t.Errorf("expected faqs capped at 8, got %d", len(record.FAQs))
	}
}

func TestFinalize_DropsMalformedSocials(t *testing.T) {
	record := Finalize(&BrandInsights{
		SocialHandles: []SocialHandle{
			{Platform: "Instagram", URL: "https://instagram.com/store"},
			{Platform: "", URL: "https://facebook.com/store"},
			{Platform: "Twitter", URL: ""},
		},
	})

	if len(record.SocialHandles) != 1 {
		t.Fatalf("expected 1 valid social handle, got %d", len(record.SocialHandles))
	}
	if record.SocialHandles[0].Platform != "Instagram" {
		t.Errorf("expected Instagram handle kept, got %q", record.SocialHandles[0].Platform)
	}
}
