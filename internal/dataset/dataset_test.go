package dataset

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValueText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{name: "string", value: String("Dental"), want: "Dental"},
		{name: "decimal", value: Number(113.9), want: "113.9"},
		{name: "integer", value: Number(324074), want: "324074"},
		{name: "zero", value: Number(0), want: "0"},
		{name: "negative", value: Number(-4.25), want: "-4.25"},
		{name: "true", value: Bool(true), want: "true"},
		{name: "false", value: Bool(false), want: "false"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.value.Text(); got != tc.want {
				t.Fatalf("Text() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNewRejectsRaggedRecords(t *testing.T) {
	t.Parallel()

	_, err := New("Broken", []string{"A", "B"}, Record{String("x")})
	if err == nil {
		t.Fatal("expected width mismatch error")
	}
}

func TestNewRejectsDuplicateColumns(t *testing.T) {
	t.Parallel()

	if _, err := New("Broken", []string{"A", "A"}); err == nil {
		t.Fatal("expected duplicate column error")
	}
}

func TestDatasetAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	ds, err := New("Copy", []string{"A"}, Record{String("x")})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	columns := ds.Columns()
	columns[0] = "mutated"
	records := ds.Records()
	records[0][0] = String("mutated")

	if got := ds.Columns()[0]; got != "A" {
		t.Fatalf("column = %q, want A", got)
	}
	if got, _ := ds.Value(0, "A"); got.Text() != "x" {
		t.Fatalf("value = %q, want x", got.Text())
	}
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	t.Parallel()

	reg := Default()
	got, err := reg.Categories(MerchantConcentration, "Industry")
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	want := []string{"Dental", "Medspa", "Cosmetic Surgery"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
	if _, err := reg.Categories(Industries, "Missing"); err == nil {
		t.Fatal("expected unknown column error")
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	t.Parallel()

	_, err := Default().Get("Nope")
	if !errors.Is(err, ErrUnknownDataset) {
		t.Fatalf("err = %v, want ErrUnknownDataset", err)
	}
	var typed *UnknownDatasetError
	if !errors.As(err, &typed) || typed.Name != "Nope" {
		t.Fatalf("err = %#v, want *UnknownDatasetError{Name: Nope}", err)
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	t.Parallel()

	a := mustNew("Same", []string{"A"})
	if _, err := NewRegistry(a, a); err == nil {
		t.Fatal("expected duplicate error")
	}
}

func TestDefaultRegistryContents(t *testing.T) {
	t.Parallel()

	reg := Default()
	wantNames := []string{
		StateConcentration, VantageScoreBands, Industries, MerchantConcentration,
		LoanTerms, LoanSize, PromoMix, StaticPool, CreditEnhancement, Clinics,
	}
	if diff := cmp.Diff(wantNames, reg.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	largest := 0
	for _, name := range reg.Names() {
		ds, err := reg.Get(name)
		if err != nil {
			t.Fatalf("Get(%q) error = %v", name, err)
		}
		if ds.Len() > largest {
			largest = ds.Len()
		}
	}
	if largest != 13 {
		t.Fatalf("largest table = %d records, want 13", largest)
	}

	pool, _ := reg.Get(StaticPool)
	if pool.Len() != 6 {
		t.Fatalf("static pool = %d points, want 6", pool.Len())
	}
	waterfall, _ := reg.Get(CreditEnhancement)
	if waterfall.Len() != 5 {
		t.Fatalf("credit enhancement = %d steps, want 5", waterfall.Len())
	}
	last, _ := waterfall.Value(4, "Total")
	if flag, ok := last.Bool(); !ok || !flag {
		t.Fatalf("final waterfall step total flag = %v, want true", last)
	}
}

func TestFilterKeepsOrderAndShape(t *testing.T) {
	t.Parallel()

	ds, _ := Default().Get(Industries)
	got := ds.Filter(func(r Record) bool { return r[0].Text() != "Medspa" })
	if got.Name() != Industries {
		t.Fatalf("name = %q", got.Name())
	}
	var labels []string
	for _, record := range got.Records() {
		labels = append(labels, record[0].Text())
	}
	want := []string{"Dental", "Cosmetic Surgery", "Other"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Fatalf("filtered labels mismatch (-want +got):\n%s", diff)
	}
	if !ds.Filter(func(Record) bool { return true }).Equal(ds) {
		t.Fatal("keep-all filter should equal source")
	}
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	ds := mustNew("Mini", []string{"Name", "Amount", "Total"},
		Record{String("a"), Number(1.5), Bool(true)},
		Record{String("b"), Number(324074), Bool(false)},
	)
	body, err := json.Marshal(ds)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"name":"Mini","columns":["Name","Amount","Total"],"rows":[["a",1.5,true],["b",324074,false]]}`
	if string(body) != want {
		t.Fatalf("json = %s, want %s", body, want)
	}
}
