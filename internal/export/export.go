package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/jimezsa/salarycli/internal/models"
)

type Format string

const (
	FormatCard     Format = "card"
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
)

// ParseFormat accepts the names understood by --format. Empty means card.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "card":
		return FormatCard, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "tsv":
		return FormatTSV, nil
	case "table":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

// WriteEstimate writes est in a machine-readable format. FormatCard is
// rendered by the ui package and is not handled here.
func WriteEstimate(w io.Writer, est models.Estimate, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, est)
	case FormatCSV:
		return writeCSV(w, est, ',')
	case FormatTSV:
		return writeCSV(w, est, '\t')
	case FormatMarkdown:
		return writeMarkdown(w, est)
	case FormatTable:
		return writeTable(w, est)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

func writeJSON(w io.Writer, est models.Estimate) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(est)
}

func writeCSV(w io.Writer, est models.Estimate, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(header()); err != nil {
		return err
	}
	if err := writer.Write(row(est)); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, est models.Estimate) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header(), "\t"))
	cells := row(est)
	cells[4] = humanize.CommafWithDigits(est.Result.Salary, 2)
	fmt.Fprintln(tw, strings.Join(cells, "\t"))
	return tw.Flush()
}

func writeMarkdown(w io.Writer, est models.Estimate) error {
	lines := []string{
		fmt.Sprintf("- **Salary**: %s %s", humanize.CommafWithDigits(est.Result.Salary, 2), safe(est.Result.Currency)),
		fmt.Sprintf("  Age: %d", est.Input.Age),
		fmt.Sprintf("  Gender: %s", optionLabel(models.GenderOptions, est.Input.Gender)),
		fmt.Sprintf("  Education level: %s", optionLabel(models.EducationOptions, est.Input.EducationLevel)),
		fmt.Sprintf("  Years of experience: %d", est.Input.YearsOfExperience),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func header() []string {
	return []string{
		"age",
		"gender",
		"education_level",
		"years_of_experience",
		"salary",
		"currency",
	}
}

func row(est models.Estimate) []string {
	return []string{
		strconv.Itoa(est.Input.Age),
		strconv.Itoa(est.Input.Gender),
		strconv.Itoa(est.Input.EducationLevel),
		strconv.Itoa(est.Input.YearsOfExperience),
		strconv.FormatFloat(est.Result.Salary, 'f', -1, 64),
		safe(est.Result.Currency),
	}
}

func optionLabel(options []models.Option, code int) string {
	if opt, ok := models.LookupOption(options, code); ok {
		return fmt.Sprintf("%s (%d)", opt.Label, code)
	}
	return strconv.Itoa(code)
}

func safe(value string) string {
	return strings.TrimSpace(value)
}
