package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbranch/foreman/internal/config"
	"github.com/tbranch/foreman/internal/workorder"
)

// filter form field indexes, in focus order
const (
	fieldStatus = iota
	fieldPriority
	fieldDepartment
	fieldFrom
	fieldTo
	fieldCount
)

const filterDateLayout = "2006-01-02"

// filterForm is the modal for editing the structured filter. The cycling
// fields include a leading "All" slot meaning no constraint.
type filterForm struct {
	statusIdx   int // 0 = All, 1.. = StatusOptions
	priorityIdx int
	deptIdx     int
	dateInputs  [2]textinput.Model // from, to
	focus       int
}

func newFilterForm(current workorder.Criteria) filterForm {
	f := filterForm{}
	for i, s := range workorder.StatusOptions {
		if s == current.Status {
			f.statusIdx = i + 1
		}
	}
	for i, p := range workorder.PriorityOptions {
		if p == current.Priority {
			f.priorityIdx = i + 1
		}
	}
	for i, d := range workorder.Departments {
		if d == current.Department {
			f.deptIdx = i + 1
		}
	}
	for i := range f.dateInputs {
		input := textinput.New()
		input.Placeholder = "YYYY-MM-DD"
		input.CharLimit = 10
		input.Width = 12
		f.dateInputs[i] = input
	}
	if !current.CreatedFrom.IsZero() {
		f.dateInputs[0].SetValue(current.CreatedFrom.Format(filterDateLayout))
	}
	if !current.CreatedTo.IsZero() {
		f.dateInputs[1].SetValue(current.CreatedTo.Format(filterDateLayout))
	}
	f.setFocus(fieldStatus)
	return f
}

func (f *filterForm) setFocus(idx int) {
	f.focus = idx
	for i := range f.dateInputs {
		f.dateInputs[i].Blur()
	}
	switch idx {
	case fieldFrom:
		f.dateInputs[0].Focus()
	case fieldTo:
		f.dateInputs[1].Focus()
	}
}

func (f *filterForm) nextField() { f.setFocus((f.focus + 1) % fieldCount) }
func (f *filterForm) prevField() { f.setFocus((f.focus + fieldCount - 1) % fieldCount) }

// cycle moves the focused option field by delta, wrapping through "All".
func (f *filterForm) cycle(delta int) {
	wrap := func(idx, count int) int {
		return (idx + delta + count + 1) % (count + 1)
	}
	switch f.focus {
	case fieldStatus:
		f.statusIdx = wrap(f.statusIdx, len(workorder.StatusOptions))
	case fieldPriority:
		f.priorityIdx = wrap(f.priorityIdx, len(workorder.PriorityOptions))
	case fieldDepartment:
		f.deptIdx = wrap(f.deptIdx, len(workorder.Departments))
	}
}

func (f *filterForm) clear() {
	f.statusIdx = 0
	f.priorityIdx = 0
	f.deptIdx = 0
	f.dateInputs[0].SetValue("")
	f.dateInputs[1].SetValue("")
}

func (f *filterForm) applyPreset(p config.Preset) error {
	criteria, err := p.Criteria()
	if err != nil {
		return err
	}
	fresh := newFilterForm(criteria)
	fresh.setFocus(f.focus)
	*f = fresh
	return nil
}

// criteria validates the form and builds the structured filter.
func (f *filterForm) criteria() (workorder.Criteria, error) {
	c := workorder.Criteria{}
	if f.statusIdx > 0 {
		c.Status = workorder.StatusOptions[f.statusIdx-1]
	}
	if f.priorityIdx > 0 {
		c.Priority = workorder.PriorityOptions[f.priorityIdx-1]
	}
	if f.deptIdx > 0 {
		c.Department = workorder.Departments[f.deptIdx-1]
	}
	if raw := strings.TrimSpace(f.dateInputs[0].Value()); raw != "" {
		from, err := time.Parse(filterDateLayout, raw)
		if err != nil {
			return workorder.Criteria{}, fmt.Errorf("invalid from date %q", raw)
		}
		c.CreatedFrom = from
	}
	if raw := strings.TrimSpace(f.dateInputs[1].Value()); raw != "" {
		to, err := time.Parse(filterDateLayout, raw)
		if err != nil {
			return workorder.Criteria{}, fmt.Errorf("invalid to date %q", raw)
		}
		// end of day keeps the bound inclusive
		c.CreatedTo = to.Add(24*time.Hour - time.Nanosecond)
	}
	if !c.CreatedFrom.IsZero() && !c.CreatedTo.IsZero() && c.CreatedTo.Before(c.CreatedFrom) {
		return workorder.Criteria{}, fmt.Errorf("date range is inverted")
	}
	return c, nil
}

// handleFilterKey processes keys while the filter modal is open.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := m.filterForm

	switch msg.String() {
	case "esc":
		m.showFilter = false
		return m, nil

	case "tab", "down":
		form.nextField()
		m.filterForm = form
		return m, nil

	case "shift+tab", "up":
		form.prevField()
		m.filterForm = form
		return m, nil

	case "left":
		form.cycle(-1)
		m.filterForm = form
		return m, nil

	case "right":
		form.cycle(1)
		m.filterForm = form
		return m, nil

	case "ctrl+x":
		form.clear()
		m.filterForm = form
		return m, nil

	case "enter":
		criteria, err := form.criteria()
		if err != nil {
			return m, m.showToast(err.Error(), toastError)
		}
		m.showFilter = false
		m.store.Update(func(s Session) Session {
			s.Criteria = criteria
			return s
		})
		return m.consumeChanges(nil)
	}

	// digit keys apply saved presets
	if len(msg.String()) == 1 && msg.String() >= "1" && msg.String() <= "9" {
		idx := int(msg.String()[0] - '1')
		if idx < len(m.presets) {
			if err := form.applyPreset(m.presets[idx]); err != nil {
				return m, m.showToast(fmt.Sprintf("preset %q: %v", m.presets[idx].Name, err), toastError)
			}
			if term := strings.TrimSpace(m.presets[idx].Term); term != "" {
				m.searchInput.SetValue(term)
				m.store.Update(func(s Session) Session {
					s.Query = term
					return s
				})
			}
			m.filterForm = form
			return m.consumeChanges(nil)
		}
		return m, nil
	}

	// date fields take free text
	if form.focus == fieldFrom || form.focus == fieldTo {
		idx := 0
		if form.focus == fieldTo {
			idx = 1
		}
		var cmd tea.Cmd
		form.dateInputs[idx], cmd = form.dateInputs[idx].Update(msg)
		m.filterForm = form
		return m, cmd
	}

	return m, nil
}

func (m Model) renderFilterForm() string {
	form := m.filterForm

	option := func(label string, idx, field int, all []string) string {
		value := "All"
		if idx > 0 {
			value = all[idx-1]
		}
		line := fmt.Sprintf("%-12s ◂ %s ▸", label, value)
		if form.focus == field {
			return m.styles.FieldFocus.Render(line)
		}
		return m.styles.FieldLabel.Render(line)
	}

	statuses := make([]string, len(workorder.StatusOptions))
	for i, s := range workorder.StatusOptions {
		statuses[i] = string(s)
	}
	priorities := make([]string, len(workorder.PriorityOptions))
	for i, p := range workorder.PriorityOptions {
		priorities[i] = string(p)
	}

	dateLine := func(label string, idx, field int) string {
		prefix := fmt.Sprintf("%-12s ", label)
		if form.focus == field {
			return m.styles.FieldFocus.Render(prefix) + form.dateInputs[idx].View()
		}
		return m.styles.FieldLabel.Render(prefix) + form.dateInputs[idx].View()
	}

	lines := []string{
		m.styles.Title.Render("Filters"),
		"",
		option("Status", form.statusIdx, fieldStatus, statuses),
		option("Priority", form.priorityIdx, fieldPriority, priorities),
		option("Department", form.deptIdx, fieldDepartment, workorder.Departments),
		dateLine("From", 0, fieldFrom),
		dateLine("To", 1, fieldTo),
		"",
		m.styles.MutedText.Render("◂▸ change · tab next · enter apply · ctrl+x clear · esc cancel"),
	}
	if len(m.presets) > 0 {
		names := make([]string, len(m.presets))
		for i, p := range m.presets {
			names[i] = fmt.Sprintf("[%d] %s", i+1, p.Name)
		}
		lines = append(lines, m.styles.MutedText.Render("presets: "+strings.Join(names, "  ")))
	}

	return m.styles.ModalBorder.Render(strings.Join(lines, "\n"))
}
