package export

import (
	"bytes"
	"testing"

	"github.com/louisbranch/poolview/internal/dataset"
	"github.com/louisbranch/poolview/internal/filter"
	"github.com/louisbranch/poolview/internal/view"
)

func industriesView(t *testing.T, selected ...string) dataset.Dataset {
	t.Helper()
	reg := dataset.Default()
	gov := filter.DefaultGovernance()
	state, err := filter.NewState(reg, gov)
	if err != nil {
		t.Fatalf("NewState() error = %v", err)
	}
	if selected != nil {
		if err := state.SetSelection(filter.Industry, selected); err != nil {
			t.Fatalf("SetSelection() error = %v", err)
		}
	}
	projector, err := view.NewProjector(reg, gov)
	if err != nil {
		t.Fatalf("NewProjector() error = %v", err)
	}
	out, err := projector.Project(state, dataset.Industries)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	return out
}

func TestSerializeFilteredView(t *testing.T) {
	t.Parallel()

	got, err := Serialize(industriesView(t, "Dental", "Medspa"))
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	want := "Industry,Balance ($M)\nDental,113.9\nMedspa,111.3\n"
	if string(got) != want {
		t.Fatalf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeEmptyViewWritesHeaderOnly(t *testing.T) {
	t.Parallel()

	got, err := Serialize(industriesView(t, []string{}...))
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if string(got) != "Industry,Balance ($M)\n" {
		t.Fatalf("Serialize() = %q", got)
	}
}

func TestSerializeQuotesAndIsIdempotent(t *testing.T) {
	t.Parallel()

	ds, err := dataset.New("Quoted", []string{"Name", "Flag"},
		dataset.Record{dataset.String("Gulf Coast, Houston"), dataset.Bool(true)},
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	first, err := Serialize(ds)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	second, _ := Serialize(ds)
	if !bytes.Equal(first, second) {
		t.Fatal("Serialize is not idempotent")
	}
	if string(first) != "Name,Flag\n\"Gulf Coast, Houston\",true\n" {
		t.Fatalf("Serialize() = %q", first)
	}
}

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"State Concentration": "state_concentration_data.csv",
		"Vantage Score Bands": "vantage_score_bands_data.csv",
		"Clinics":             "clinics_data.csv",
	}
	for name, want := range tests {
		if got := Filename(name); got != want {
			t.Fatalf("Filename(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestDownload(t *testing.T) {
	t.Parallel()

	artifact, err := Download(industriesView(t))
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	if artifact.Filename != "industries_data.csv" || artifact.MIMEType != "text/csv" {
		t.Fatalf("artifact = %+v", artifact)
	}
	if !bytes.HasPrefix(artifact.Body, []byte("Industry,Balance ($M)\n")) {
		t.Fatalf("body = %q", artifact.Body)
	}
}
