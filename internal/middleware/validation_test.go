package middleware

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Query struct mirroring the search endpoint's validation tags
type testSearchQuery struct {
	Query string `validate:"omitempty,max=200"`
	Tier  string `validate:"omitempty,oneof=basic premium"`
	Sort  string `validate:"omitempty,oneof=relevance newest popular"`
}

func TestValidateStruct_OneofRejectsUnknownValues(t *testing.T) {
	valid := []testSearchQuery{
		{},
		{Tier: "basic"},
		{Tier: "premium", Sort: "newest"},
		{Sort: "relevance"},
		{Sort: "popular"},
	}
	for _, q := range valid {
		if err := ValidateStruct(&q); err != nil {
			t.Errorf("expected %+v to validate, got %v", q, err)
		}
	}

	invalid := []testSearchQuery{
		{Tier: "platinum"},
		{Sort: "alphabetical"},
		{Tier: "Basic"},
	}
	for _, q := range invalid {
		if err := ValidateStruct(&q); err == nil {
			t.Errorf("expected %+v to fail validation", q)
		}
	}
}

func TestProperty_OverlongQueriesAreRejected(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("queries within the length cap validate, longer ones fail", prop.ForAll(
		func(length int) bool {
			buf := make([]rune, length)
			for i := range buf {
				buf[i] = 'a'
			}
			q := testSearchQuery{Query: string(buf)}

			err := ValidateStruct(&q)
			if length <= 200 {
				return err == nil
			}
			return err != nil
		},
		gen.IntRange(0, 400),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestFormatValidationErrors(t *testing.T) {
	q := testSearchQuery{Tier: "platinum", Sort: "alphabetical"}
	err := ValidateStruct(&q)
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	formatted := FormatValidationErrors(err)
	if len(formatted) != 2 {
		t.Fatalf("expected 2 validation errors, got %d", len(formatted))
	}
	for _, ve := range formatted {
		if ve.Field == "" || ve.Message == "" {
			t.Errorf("validation error missing field or message: %+v", ve)
		}
	}
}
