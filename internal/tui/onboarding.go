// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/fin-tracker-client/internal/service"
	"github.com/MKhiriev/fin-tracker-client/internal/validators"
	"github.com/MKhiriev/fin-tracker-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type onboardingField struct {
	label string
	input textinput.Model
	apply func(p *models.OnboardingProfile, value string) error
}

type onboardingStep struct {
	name     string
	title    string
	subtitle string
	fields   []onboardingField
}

// OnboardingModel walks the user through the six questionnaire steps. A step
// is validated before the next one opens; the last step submits the
// questionnaire.
type OnboardingModel struct {
	ctx        context.Context
	onboarding service.OnboardingService

	steps      []onboardingStep
	step       int
	focus      int
	submitting bool
	errMsg     string
}

// NewOnboardingModel creates an [OnboardingModel] positioned on the first step.
func NewOnboardingModel(ctx context.Context, onboarding service.OnboardingService) *OnboardingModel {
	m := &OnboardingModel{
		ctx:        ctx,
		onboarding: onboarding,
		steps:      newOnboardingSteps(),
	}
	m.reset()
	return m
}

func newOnboardingSteps() []onboardingStep {
	return []onboardingStep{
		{
			name:     validators.FieldPersonal,
			title:    "Расскажите о себе",
			subtitle: "Помогите нам лучше понять вас",
			fields: []onboardingField{
				textField("Имя", "Иван", validators.MaxNameLength, func(p *models.OnboardingProfile, v string) { p.Name = v }),
				intField("Возраст", "25", func(p *models.OnboardingProfile, v int) { p.Age = v }),
				textField("Пол", "male / female / other", 10, func(p *models.OnboardingProfile, v string) { p.Gender = v }),
			},
		},
		{
			name:     validators.FieldIncome,
			title:    "Ваш доход",
			subtitle: "Расскажите о ваших источниках дохода",
			fields: []onboardingField{
				intField("Доход в месяц", "100000", func(p *models.OnboardingProfile, v int) { p.MonthlyIncome = v }),
				textField("Источник дохода", "work / freelance / business / parents / government", 20, func(p *models.OnboardingProfile, v string) { p.IncomeSource = v }),
				intField("Стабильность (1-5)", "3", func(p *models.OnboardingProfile, v int) { p.IncomeStability = v }),
			},
		},
		{
			name:     validators.FieldExpenses,
			title:    "Ваши расходы",
			subtitle: "Какие траты у вас самые частые?",
			fields: []onboardingField{
				intField("Расходы в месяц", "60000", func(p *models.OnboardingProfile, v int) { p.MonthlyExpenses = v }),
				listField("Категории трат", "еда, транспорт, развлечения", func(p *models.OnboardingProfile, v []string) { p.SpendingCategories = v }),
			},
		},
		{
			name:     validators.FieldGoals,
			title:    "Финансовые цели",
			subtitle: "К чему вы стремитесь?",
			fields: []onboardingField{
				listField("Цели", "подушка безопасности, отпуск", func(p *models.OnboardingProfile, v []string) { p.Goals = v }),
			},
		},
		{
			name:     validators.FieldPsychology,
			title:    "Финансовая психология",
			subtitle: "Как вы относитесь к деньгам?",
			fields: []onboardingField{
				intField("Уверенность (1-5)", "3", func(p *models.OnboardingProfile, v int) { p.FinancialConfidence = v }),
				intField("Импульсивность (1-5)", "3", func(p *models.OnboardingProfile, v int) { p.SpendingImpulsiveness = v }),
				intField("Стресс (1-5)", "3", func(p *models.OnboardingProfile, v int) { p.FinancialStress = v }),
				textField("Как часто копите", "never / rarely / sometimes / monthly / weekly", 20, func(p *models.OnboardingProfile, v string) { p.SavingFrequency = v }),
			},
		},
		{
			name:     validators.FieldHabits,
			title:    "Ваши привычки",
			subtitle: "Последний шаг к персонализации",
			fields: []onboardingField{
				boolField("Ведёте учёт трат", func(p *models.OnboardingProfile, v bool) { p.TracksExpenses = v }),
				textField("Финансовые приложения", "yes / sometimes / no", validators.MaxShortTextLength, func(p *models.OnboardingProfile, v string) { p.UsedFinancialApps = v }),
				boolField("Нужна мотивация", func(p *models.OnboardingProfile, v bool) { p.WantsMotivation = v }),
			},
		},
	}
}

func textField(label, placeholder string, limit int, set func(*models.OnboardingProfile, string)) onboardingField {
	return onboardingField{
		label: label,
		input: newInput(placeholder, limit, false),
		apply: func(p *models.OnboardingProfile, v string) error {
			set(p, v)
			return nil
		},
	}
}

func intField(label, placeholder string, set func(*models.OnboardingProfile, int)) onboardingField {
	return onboardingField{
		label: label,
		input: newInput(placeholder, 12, false),
		apply: func(p *models.OnboardingProfile, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("поле «%s»: введите целое число", label)
			}
			set(p, n)
			return nil
		},
	}
}

func listField(label, placeholder string, set func(*models.OnboardingProfile, []string)) onboardingField {
	return onboardingField{
		label: label,
		input: newInput(placeholder, 500, false),
		apply: func(p *models.OnboardingProfile, v string) error {
			var items []string
			for _, item := range strings.Split(v, ",") {
				if item = strings.TrimSpace(item); item != "" {
					items = append(items, item)
				}
			}
			set(p, items)
			return nil
		},
	}
}

func boolField(label string, set func(*models.OnboardingProfile, bool)) onboardingField {
	return onboardingField{
		label: label,
		input: newInput("да / нет", 3, false),
		apply: func(p *models.OnboardingProfile, v string) error {
			switch strings.ToLower(v) {
			case "да", "yes", "y":
				set(p, true)
			case "нет", "no", "n":
				set(p, false)
			default:
				return fmt.Errorf("поле «%s»: ответьте да или нет", label)
			}
			return nil
		},
	}
}

// Init implements [tea.Model].
func (m *OnboardingModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. enter moves to the next field, then to the
// next step once the current one validates; esc goes back one step.
func (m *OnboardingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case onboardingSubmittedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.reset()
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}

		fields := m.steps[m.step].fields
		switch {
		case key.Matches(msg, keys.logoutForm):
			return m, requestLogout
		case key.Matches(msg, keys.esc):
			if m.step > 0 {
				m.errMsg = ""
				m.openStep(m.step - 1)
			}
			return m, nil
		case key.Matches(msg, keys.tab):
			m.focus = m.moveFocus(1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.focus = m.moveFocus(-1)
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.focus < len(fields)-1 {
				m.focus = m.moveFocus(1)
				return m, nil
			}
			return m, m.completeStep()
		}

		var cmd tea.Cmd
		field := &m.steps[m.step].fields[m.focus]
		field.input, cmd = field.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *OnboardingModel) completeStep() tea.Cmd {
	profile, err := m.profile(m.step)
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}

	if err = m.onboarding.ValidateStep(m.ctx, profile, m.steps[m.step].name); err != nil {
		m.errMsg = humanizeError(err)
		return nil
	}
	m.errMsg = ""

	if m.step < len(m.steps)-1 {
		m.openStep(m.step + 1)
		return nil
	}

	m.submitting = true
	ctx := m.ctx
	onboarding := m.onboarding
	return func() tea.Msg {
		return onboardingSubmittedMsg{err: onboarding.Submit(ctx, profile)}
	}
}

// profile builds the questionnaire from the answers of steps 0..upto.
func (m *OnboardingModel) profile(upto int) (models.OnboardingProfile, error) {
	var p models.OnboardingProfile
	for i := 0; i <= upto && i < len(m.steps); i++ {
		for _, f := range m.steps[i].fields {
			value := strings.TrimSpace(f.input.Value())
			if value == "" && i < upto {
				continue
			}
			if value == "" {
				return p, fmt.Errorf("поле «%s» обязательно", f.label)
			}
			if err := f.apply(&p, value); err != nil {
				return p, err
			}
		}
	}
	return p, nil
}

func (m *OnboardingModel) moveFocus(delta int) int {
	fields := m.steps[m.step].fields
	fields[m.focus].input.Blur()
	focus := (m.focus + delta + len(fields)) % len(fields)
	fields[focus].input.Focus()
	return focus
}

func (m *OnboardingModel) openStep(step int) {
	for i := range m.steps[m.step].fields {
		m.steps[m.step].fields[i].input.Blur()
	}
	m.step = step
	m.focus = 0
	m.steps[m.step].fields[0].input.Focus()
}

func (m *OnboardingModel) reset() {
	for s := range m.steps {
		for i := range m.steps[s].fields {
			m.steps[s].fields[i].input.SetValue("")
			m.steps[s].fields[i].input.Blur()
		}
	}
	m.step = 0
	m.focus = 0
	m.errMsg = ""
	m.steps[0].fields[0].input.Focus()
}

// View implements [tea.Model].
func (m *OnboardingModel) View() string {
	step := m.steps[m.step]

	labels := make([]string, len(step.fields))
	inputs := make([]textinput.Model, len(step.fields))
	for i, f := range step.fields {
		labels[i] = f.label
		inputs[i] = f.input
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Шаг %d из %d: %s\n", m.step+1, len(m.steps), step.title))
	b.WriteString(helpStyle.Render(step.subtitle))
	b.WriteString("\n\n")
	b.WriteString(renderForm(labels, inputs))
	b.WriteString("\n")

	switch {
	case m.submitting:
		b.WriteString("\n[Сохраняем...]\n")
	case m.step == len(m.steps)-1:
		b.WriteString("\n[Завершить]\n")
	default:
		b.WriteString("\n[Далее]\n")
	}
	writeFeedback(&b, "", m.errMsg)

	return renderPage("НАСТРОЙКА ПРОФИЛЯ", strings.TrimRight(b.String(), "\n"),
		"esc: назад │ tab: след. поле │ enter: далее │ ctrl+x: выйти из аккаунта")
}
