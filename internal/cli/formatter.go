package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/lifepath/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// RenderMode selects how output is laid out.
type RenderMode int

const (
	// ModeScreen renders styled output for an interactive terminal.
	ModeScreen RenderMode = iota
	// ModePrint renders plain text with no escape sequences, one page break
	// before the pathway.
	ModePrint
)

// ErrUnknownRenderMode is returned by ParseRenderMode for unrecognized names.
var ErrUnknownRenderMode = errors.New("unknown render mode")

// ParseRenderMode maps "screen" (or "") and "print" to a RenderMode.
func ParseRenderMode(s string) (RenderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "screen":
		return ModeScreen, nil
	case "print":
		return ModePrint, nil
	default:
		return ModeScreen, fmt.Errorf("%w: %q (expected screen or print)", ErrUnknownRenderMode, s)
	}
}

func (m RenderMode) String() string {
	if m == ModePrint {
		return "print"
	}
	return "screen"
}

// pageBreak separates the report from the pathway in print mode.
const pageBreak = "\f"

// Formatter renders reports and pathways as text.
type Formatter struct {
	Mode RenderMode
}

// NewFormatter creates a formatter for the given mode.
func NewFormatter(mode RenderMode) *Formatter {
	return &Formatter{Mode: mode}
}

// Report renders the numerology report for a profile. A report whose life
// path is 0 still renders; callers decide whether to show it.
func (f *Formatter) Report(p model.UserProfile, r model.NumerologyReport) string {
	var b strings.Builder

	b.WriteString(f.heading("Numerology Report", strings.TrimSpace(p.Name)))
	b.WriteString("\n")
	if p.DOB != "" {
		b.WriteString(f.style(SubtleStyle, "Born "+p.DOB))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(f.section("Core Numbers"))
	b.WriteString("\n")
	f.readingRow(&b, "Life Path", r.LifePath)
	f.readingRow(&b, "Expression", r.Expression)
	f.readingRow(&b, "Soul Urge", r.SoulUrge)
	for _, opt := range []struct {
		reading *model.Reading
		label   string
	}{
		{label: "Personality", reading: r.Personality},
		{label: "Maturity", reading: r.Maturity},
		{label: "Birthday", reading: r.Birthday},
	} {
		if opt.reading != nil {
			f.readingRow(&b, opt.label, *opt.reading)
		}
	}

	if r.Summary != "" {
		b.WriteString("\n")
		b.WriteString(f.section("Summary"))
		b.WriteString("\n")
		b.WriteString(r.Summary)
		b.WriteString("\n")
	}

	f.cycles(&b, "Pinnacles", r.Pinnacles)
	f.cycles(&b, "Challenges", r.Challenges)

	if len(r.PersonalYears) > 0 {
		b.WriteString("\n")
		b.WriteString(f.section("Personal Years"))
		b.WriteString("\n")
		for _, py := range r.PersonalYears {
			fmt.Fprintf(&b, "  %d  %s  %s\n", py.Year, f.number(py.Number), py.Theme)
		}
	}

	return b.String()
}

// Pathway renders a multi-year pathway.
func (f *Formatter) Pathway(pw model.Pathway) string {
	var b strings.Builder

	b.WriteString(f.heading(fmt.Sprintf("%d-Year Pathway", pw.HorizonYears), ""))
	b.WriteString("\n")

	for _, epoch := range pw.Epochs {
		b.WriteString("\n")
		b.WriteString(f.section(epoch.Years + ": " + epoch.Theme))
		b.WriteString("\n")
		f.list(&b, "Milestones", epoch.Milestones)
		f.list(&b, "Habits", epoch.Habits)
	}

	if len(pw.Risks) > 0 {
		b.WriteString("\n")
		b.WriteString(f.section("Risks"))
		b.WriteString("\n")
		f.bullets(&b, "  ", pw.Risks)
	}
	if len(pw.LeadingIndicators) > 0 {
		b.WriteString("\n")
		b.WriteString(f.section("Leading Indicators"))
		b.WriteString("\n")
		f.bullets(&b, "  ", pw.LeadingIndicators)
	}

	return b.String()
}

// Plan renders the report followed by the pathway. In print mode the pathway
// starts on a new page.
func (f *Formatter) Plan(p model.UserProfile, r model.NumerologyReport, pw model.Pathway) string {
	separator := "\n"
	if f.Mode == ModePrint {
		separator = "\n" + pageBreak + "\n"
	}
	return f.Report(p, r) + separator + f.Pathway(pw)
}

// YearPlan renders the plan for a single personal year number.
func (f *Formatter) YearPlan(number int, plan model.YearPlan) string {
	var b strings.Builder
	b.WriteString(f.heading(fmt.Sprintf("Personal Year %d", number), plan.Theme))
	b.WriteString("\n")
	f.list(&b, "Milestones", plan.Milestones)
	f.list(&b, "Habits", plan.Habits)
	return b.String()
}

// ProfileTable renders saved profiles one per row.
func (f *Formatter) ProfileTable(profiles []model.UserProfile) string {
	if len(profiles) == 0 {
		return "No saved profiles.\n"
	}

	var b strings.Builder
	header := fmt.Sprintf("%-36s  %-10s  %s", "ID", "BORN", "NAME")
	if f.Mode == ModePrint {
		b.WriteString(header + "\n")
	} else {
		b.WriteString(TableHeaderStyle.Render(header) + "\n")
	}
	for _, p := range profiles {
		fmt.Fprintf(&b, "%-36s  %-10s  %s\n", p.ID, p.DOB, p.Name)
	}
	return b.String()
}

// ProfileCard renders the stored details of a profile. Empty fields are
// left out.
func (f *Formatter) ProfileCard(p model.UserProfile) string {
	type row struct {
		label string
		value string
	}
	rows := []row{
		{"ID", p.ID},
		{"Name", p.Name},
		{"Born", p.DOB},
		{"Email", p.Email},
		{"Location", p.Location},
		{"Life goal", p.LifeGoal},
	}
	if !p.UpdatedAt.IsZero() {
		rows = append(rows, row{"Updated", p.UpdatedAt.Format("2006-01-02 15:04")})
	}

	var b strings.Builder
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		fmt.Fprintf(&b, "%-10s %s\n", row.label+":", row.value)
	}
	content := strings.TrimRight(b.String(), "\n")

	if f.Mode == ModePrint {
		return f.section("Profile") + "\n" + content + "\n"
	}
	return RenderBox("Profile", content) + "\n"
}

func (f *Formatter) readingRow(b *strings.Builder, label string, r model.Reading) {
	fmt.Fprintf(b, "  %-12s %s  %s\n", label, f.number(r.Number), r.Interpretation)
}

func (f *Formatter) cycles(b *strings.Builder, title string, cycles []model.Cycle) {
	if len(cycles) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(f.section(title))
	b.WriteString("\n")
	for _, c := range cycles {
		fmt.Fprintf(b, "  %d. %d-%d  %s  %s\n", c.Index, c.StartYear, c.EndYear, f.number(c.Number), c.Meaning)
	}
}

func (f *Formatter) list(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s\n", f.style(BoldStyle, label))
	f.bullets(b, "    ", items)
}

func (f *Formatter) bullets(b *strings.Builder, indent string, items []string) {
	bullet := BulletIcon
	if f.Mode == ModePrint {
		bullet = "-"
	}
	for _, item := range items {
		fmt.Fprintf(b, "%s%s %s\n", indent, bullet, item)
	}
}

func (f *Formatter) number(n int) string {
	return f.style(NumberStyle, fmt.Sprintf("%2d", n))
}

// heading renders a title. In print mode only label is uppercased; detail,
// usually a name, keeps its case.
func (f *Formatter) heading(label, detail string) string {
	if f.Mode == ModePrint {
		label = strings.ToUpper(label)
	}
	text := label
	if detail != "" {
		text += ": " + detail
	}
	if f.Mode == ModePrint {
		return text + "\n" + strings.Repeat("=", lipgloss.Width(text))
	}
	return FormatTitle(text)
}

func (f *Formatter) section(text string) string {
	if f.Mode == ModePrint {
		return text + "\n" + strings.Repeat("-", lipgloss.Width(text))
	}
	return SubtitleStyle.Render(text)
}

func (f *Formatter) style(s lipgloss.Style, text string) string {
	if f.Mode == ModePrint {
		return text
	}
	return s.Render(text)
}
