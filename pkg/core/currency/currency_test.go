package currency

import "testing"

func TestFindFromUnitRef(t *testing.T) {
	cases := []struct {
		unitRef string
		want    string // expected code, "" means not found
	}{
		{"USD", "USD"},
		{"usd", "USD"},
		{"U_USD", "USD"},
		{"iso4217_EUR", "EUR"},
		{"iso4217:GBP", "GBP"},
		{"EURPerShare", "EUR"}, // leading code wins
		{"shares", ""},
		{"pure", ""},
		{"xx", ""},
	}

	for _, tc := range cases {
		got := Find(tc.unitRef)
		if tc.want == "" {
			if got != nil {
				t.Errorf("Find(%q) = %v, want nil", tc.unitRef, got)
			}
			continue
		}
		if got == nil || got.Code != tc.want {
			t.Errorf("Find(%q) = %v, want code %s", tc.unitRef, got, tc.want)
		}
	}
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("jpy")
	if !ok || c.Name != "Yen" {
		t.Errorf("Lookup(jpy) = %v %v, want Yen", c, ok)
	}
	if _, ok := Lookup("ZZZ"); ok {
		t.Error("Lookup(ZZZ) should not resolve")
	}
}
