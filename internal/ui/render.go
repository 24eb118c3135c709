package ui

import (
	"fmt"
	"strings"

	"github.com/jimezsa/salarycli/internal/estimator"
	"github.com/jimezsa/salarycli/internal/form"
	"github.com/jimezsa/salarycli/internal/models"
	"github.com/pterm/pterm"
)

type labels struct {
	title     string
	loading   string
	estimated string
}

var labelSets = map[estimator.Language]labels{
	estimator.English: {
		title:     "Salary estimate",
		loading:   "Estimating...",
		estimated: "Estimated salary",
	},
	estimator.Thai: {
		title:     "ประเมินเงินเดือน",
		loading:   "กำลังคำนวณ...",
		estimated: "เงินเดือนประเมิน",
	},
}

func (u *UI) labels() labels {
	if l, ok := labelSets[u.Language]; ok {
		return l
	}
	return labelSets[estimator.English]
}

// LoadingLabel is the text shown next to the loading indicator.
func (u *UI) LoadingLabel() string {
	return u.labels().loading
}

// RenderState writes the region matching state: nothing when idle, the
// loading line, the error banner or the result card.
func (u *UI) RenderState(state form.State) {
	switch s := state.(type) {
	case form.Loading:
		fmt.Fprintln(u.Err, u.labels().loading)
	case form.Failed:
		u.Errorf("%s", s.Err.Message(u.Language))
	case form.Succeeded:
		fmt.Fprintln(u.Out, u.ResultCard(s.Result))
	}
}

// ResultCard renders the estimate. With colour enabled it is drawn as a box.
func (u *UI) ResultCard(result models.EstimateResult) string {
	l := u.labels()
	amount := FormatSalary(result.Salary)
	currency := strings.TrimSpace(result.Currency)
	if currency == "" {
		currency = estimator.DefaultCurrency
	}

	if !u.ColorEnabled {
		return fmt.Sprintf("%s: %s %s", l.estimated, amount, currency)
	}

	body := ColorizeSalary(pterm.Bold.Sprint(amount), result.Salary) + "\n" + currency
	return pterm.DefaultBox.WithTitle(l.estimated).WithTitleTopCenter().Sprint(body)
}

// Prompt returns the question for an interactive field entry.
func Prompt(field form.Field) string {
	switch field {
	case form.FieldAge:
		return fmt.Sprintf("Age (%d - %d)", form.MinAge, form.MaxAge)
	case form.FieldExperience:
		return fmt.Sprintf("Years of experience (%d - %d)", form.MinExperience, form.MaxExperience)
	case form.FieldGender:
		return "Gender " + optionHint(field.Options())
	case form.FieldEducation:
		return "Education level " + optionHint(field.Options())
	default:
		return field.String()
	}
}

func optionHint(options []models.Option) string {
	parts := make([]string, 0, len(options))
	for _, opt := range options {
		parts = append(parts, fmt.Sprintf("%d=%s", opt.Code, opt.Label))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Title is the heading printed above interactive prompts.
func (u *UI) Title() string {
	return u.labels().title
}
