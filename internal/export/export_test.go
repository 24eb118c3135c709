package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jimezsa/salarycli/internal/models"
)

var sample = models.Estimate{
	Input:  models.EstimateRequest{Age: 30, Gender: 1, EducationLevel: 2, YearsOfExperience: 5},
	Result: models.EstimateResult{Salary: 75000, Currency: "USD"},
}

func TestWriteEstimateJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEstimate(&buf, sample, FormatJSON); err != nil {
		t.Fatalf("WriteEstimate() error = %v", err)
	}

	var got models.Estimate
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got != sample {
		t.Fatalf("decoded = %+v, want %+v", got, sample)
	}
	if !strings.Contains(buf.String(), `"Education_Level": 2`) {
		t.Fatalf("expected wire key names in input, got %s", buf.String())
	}
}

func TestWriteEstimateCSVAndTSV(t *testing.T) {
	var csvBuf bytes.Buffer
	if err := WriteEstimate(&csvBuf, sample, FormatCSV); err != nil {
		t.Fatalf("WriteEstimate(csv) error = %v", err)
	}
	want := "age,gender,education_level,years_of_experience,salary,currency\n30,1,2,5,75000,USD\n"
	if csvBuf.String() != want {
		t.Fatalf("csv = %q, want %q", csvBuf.String(), want)
	}

	var tsvBuf bytes.Buffer
	if err := WriteEstimate(&tsvBuf, sample, FormatTSV); err != nil {
		t.Fatalf("WriteEstimate(tsv) error = %v", err)
	}
	if !strings.Contains(tsvBuf.String(), "30\t1\t2\t5\t75000\tUSD") {
		t.Fatalf("tsv = %q", tsvBuf.String())
	}
}

func TestWriteEstimateMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEstimate(&buf, sample, FormatMarkdown); err != nil {
		t.Fatalf("WriteEstimate(md) error = %v", err)
	}
	out := buf.String()
	for _, part := range []string{"**Salary**: 75,000 USD", "Gender: male (1)", "Education level: doctorate (2)"} {
		if !strings.Contains(out, part) {
			t.Fatalf("markdown missing %q:\n%s", part, out)
		}
	}
}

func TestWriteEstimateTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEstimate(&buf, sample, FormatTable); err != nil {
		t.Fatalf("WriteEstimate(table) error = %v", err)
	}
	if !strings.Contains(buf.String(), "75,000") {
		t.Fatalf("table = %q", buf.String())
	}
}

func TestWriteEstimateRejectsCard(t *testing.T) {
	if err := WriteEstimate(&bytes.Buffer{}, sample, FormatCard); err == nil {
		t.Fatalf("card format should be rendered by ui, not export")
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"":         FormatCard,
		"JSON":     FormatJSON,
		"markdown": FormatMarkdown,
		"tsv":      FormatTSV,
		" table ":  FormatTable,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("ParseFormat(%q) error = %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseFormat(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("ParseFormat(xml) should fail")
	}
}
