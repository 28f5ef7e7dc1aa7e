package tracking

import (
	"reflect"
	"testing"
)

func TestNewRegistryDropsDuplicates(t *testing.T) {
	r := NewRegistry([]string{"alpha", "", "beta", "alpha"})
	if got, want := r.Names(), []string{"alpha", "beta"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %q, want %q", got, want)
	}
}

func TestRegistryAdd(t *testing.T) {
	tests := []struct {
		name    string
		add     string
		wantOK  bool
		wantAll []string
	}{
		{"New name goes last", "gamma", true, []string{"alpha", "beta", "gamma"}},
		{"Duplicate rejected", "alpha", false, []string{"alpha", "beta"}},
		{"Blank rejected", "", false, []string{"alpha", "beta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry([]string{"alpha", "beta"})
			if ok := r.Add(tt.add); ok != tt.wantOK {
				t.Errorf("Add(%q) = %v, want %v", tt.add, ok, tt.wantOK)
			}
			if got := r.Names(); !reflect.DeepEqual(got, tt.wantAll) {
				t.Errorf("Names() = %q, want %q", got, tt.wantAll)
			}
		})
	}
}

func TestRegistryMergeKeepsOrder(t *testing.T) {
	r := NewRegistry([]string{"beta", "alpha"})
	added := r.Merge([]string{"alpha", "zeta", "beta", "gamma"})
	if added != 2 {
		t.Errorf("Merge() added %d, want 2", added)
	}
	if got, want := r.Names(), []string{"beta", "alpha", "zeta", "gamma"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %q, want %q", got, want)
	}
	if !r.Contains("zeta") || r.Contains("omega") {
		t.Error("Contains() disagrees with Names()")
	}
	if r.Len() != 4 {
		t.Errorf("Len() = %d, want 4", r.Len())
	}
}

func TestRegistryNamesIsACopy(t *testing.T) {
	r := NewRegistry([]string{"alpha"})
	names := r.Names()
	names[0] = "mutated"
	if got := r.Names()[0]; got != "alpha" {
		t.Errorf("registry mutated through Names(): %q", got)
	}
}
