package scrape

import "testing"

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"$1,234.56", 1234.56, false},
		{"$0.25", 0.25, false},
		{"12.5", 12.5, false},
		{"US$ 3.99", 3.99, false},
		{"—", 0, true},
		{"", 0, true},
		{"N/A", 0, true},
	}

	for _, c := range cases {
		got, err := ParseMoney(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseMoney(%q): expected error, got %v", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMoney(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMoney(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseCandidates(t *testing.T) {
	html := `
	<div class="results">
		<div class="search-result">
			<a href="/product/island"><span class="search-result__title">Island</span></a>
		</div>
		<div class="search-result">
			<a href="/product/island-foil"><span class="search-result__title"> Island (Foil) </span></a>
		</div>
		<div class="search-result">
			<a href="/product/blank"><span class="search-result__title"></span></a>
		</div>
	</div>`

	got, err := ParseCandidates(html)
	if err != nil {
		t.Fatalf("ParseCandidates: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
	if got[0].Title != "Island" || got[0].URL != "/product/island" {
		t.Errorf("first candidate: %+v", got[0])
	}
	if got[1].Title != "Island (Foil)" {
		t.Errorf("second candidate title: %q", got[1].Title)
	}
}

func TestParsePrices_LabeledRows(t *testing.T) {
	html := `
	<table class="price-guide">
		<tr><td>Normal</td><td class="price">$0.25</td></tr>
		<tr><td>Foil</td><td class="price">$1.50</td></tr>
	</table>`

	normal, foil := ParsePrices(html)
	if normal == nil || *normal != 0.25 {
		t.Errorf("normal = %v, want 0.25", normal)
	}
	if foil == nil || *foil != 1.5 {
		t.Errorf("foil = %v, want 1.5", foil)
	}
}

func TestParsePrices_FoilUnparseable(t *testing.T) {
	html := `
	<table class="price-guide">
		<tr><td>Normal</td><td class="price">$2.00</td></tr>
		<tr><td>Foil</td><td class="price">—</td></tr>
	</table>`

	normal, foil := ParsePrices(html)
	if normal == nil || *normal != 2.0 {
		t.Errorf("normal = %v, want 2.0", normal)
	}
	if foil != nil {
		t.Errorf("foil = %v, want nil", *foil)
	}
}

func TestParsePrices_PositionalFallback(t *testing.T) {
	html := `
	<table class="price-guide">
		<tr><td class="price">$4.00</td><td class="price">$9.99</td></tr>
	</table>`

	normal, foil := ParsePrices(html)
	if normal == nil || *normal != 4.0 {
		t.Errorf("normal = %v, want 4.0", normal)
	}
	if foil == nil || *foil != 9.99 {
		t.Errorf("foil = %v, want 9.99", foil)
	}
}

func TestParsePrices_NothingParseable(t *testing.T) {
	normal, foil := ParsePrices(`<p>page not found</p>`)
	if normal != nil || foil != nil {
		t.Errorf("got %v/%v, want nil/nil", normal, foil)
	}
}
