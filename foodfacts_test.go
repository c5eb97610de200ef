package tracker

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

// stubTransport serves a canned body for any request, so product lookups can
// be tested without the network.
type stubTransport struct {
	status int
	body   string
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: s.status,
		Status:     http.StatusText(s.status),
		Body:       io.NopCloser(strings.NewReader(s.body)),
		Request:    req,
	}, nil
}

func stubClient(status int, body string) *http.Client {
	return &http.Client{Transport: &stubTransport{status: status, body: body}}
}

const nutellaJSON = `{
	"status": 1,
	"product": {
		"product_name": "Nutella",
		"nutriments": {
			"energy-kcal_100g": 539,
			"proteins_100g": 6.3,
			"carbohydrates_100g": 57.5,
			"fat_100g": 30.9
		}
	}
}`

func TestLookupProduct(t *testing.T) {
	p, err := lookupProduct(stubClient(200, nutellaJSON), "3017620422003")
	if err != nil {
		t.Fatalf("lookupProduct failed: %v", err)
	}

	if p.Name != "Nutella" {
		t.Errorf("Name = %q, want Nutella", p.Name)
	}
	if p.CaloriesPer100g != 539 {
		t.Errorf("CaloriesPer100g = %v, want 539", p.CaloriesPer100g)
	}
	if p.ProteinPer100g != 6.3 || p.CarbsPer100g != 57.5 || p.FatPer100g != 30.9 {
		t.Errorf("macros = %v/%v/%v, want 6.3/57.5/30.9", p.ProteinPer100g, p.CarbsPer100g, p.FatPer100g)
	}
}

func TestLookupProduct_notFound(t *testing.T) {
	if _, err := lookupProduct(stubClient(200, `{"status": 0}`), "000"); err == nil {
		t.Error("lookupProduct accepted a status 0 response")
	}
}

func TestLookupProduct_httpError(t *testing.T) {
	if _, err := lookupProduct(stubClient(500, ""), "000"); err == nil {
		t.Error("lookupProduct accepted a 500 response")
	}
}

func TestLookupProduct_sparseProduct(t *testing.T) {
	// Macros are optional, energy is not.
	sparse := `{"status":1,"product":{"nutriments":{"energy-kcal_100g":42}}}`
	p, err := lookupProduct(stubClient(200, sparse), "12345")
	if err != nil {
		t.Fatalf("lookupProduct failed: %v", err)
	}
	if p.Name != "12345" {
		t.Errorf("Name = %q, want barcode fallback", p.Name)
	}
	if p.ProteinPer100g != 0 || p.CarbsPer100g != 0 || p.FatPer100g != 0 {
		t.Errorf("sparse macros = %v/%v/%v, want zeros", p.ProteinPer100g, p.CarbsPer100g, p.FatPer100g)
	}

	noEnergy := `{"status":1,"product":{"product_name":"Water","nutriments":{}}}`
	if _, err := lookupProduct(stubClient(200, noEnergy), "12345"); err == nil {
		t.Error("lookupProduct accepted a product without an energy figure")
	}
}

func TestProduct_Draft(t *testing.T) {
	p := Product{
		Name:            "Nutella",
		CaloriesPer100g: 539,
		ProteinPer100g:  6.3,
		CarbsPer100g:    57.5,
		FatPer100g:      30.9,
	}
	d := p.Draft(50)

	if d.Name != "Nutella" {
		t.Errorf("Name = %q, want Nutella", d.Name)
	}
	if !d.Calories.Equal(A(269.5)) {
		t.Errorf("Calories = %s, want 269.5", d.Calories)
	}
	if !d.Protein.Equal(A(3.15)) {
		t.Errorf("Protein = %s, want 3.15", d.Protein)
	}
}
