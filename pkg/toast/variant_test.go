package toast

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  Variant
	}{
		{"success", VariantSuccess},
		{"SUCCESS", VariantSuccess},
		{"Error", VariantError},
		{"warning", VariantWarning},
		{"info", VariantInfo},
		{"LoAdInG", VariantLoading},
		{"", VariantInfo},
		{"danger", VariantInfo},
		{" success", VariantInfo},
		{"succes", VariantInfo},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestVariantTitle(t *testing.T) {
	for v, want := range map[Variant]string{
		VariantSuccess: "Success",
		VariantError:   "Error",
		VariantWarning: "Warning",
		VariantInfo:    "Info",
		VariantLoading: "Loading",
	} {
		if got := v.Title(); got != want {
			t.Errorf("%s.Title() = %q, want %q", v, got, want)
		}
	}
}

func TestIconFor(t *testing.T) {
	for _, v := range Variants {
		if IconFor(v) == "" {
			t.Errorf("IconFor(%s) is empty", v)
		}
	}
	if IconFor(Variant("unknown")) != "" {
		t.Error("unregistered variant should have no icon")
	}
}
