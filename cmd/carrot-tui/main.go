package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")).
			Strikethrough(true).
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	carrotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringEmail step = iota
	stepEnteringPassword
	stepLoggingIn
	stepListingTodos
	stepEnteringNewTitle
)

type todo struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	Completed bool    `json:"completed"`
	AlarmTime *string `json:"alarm_time,omitempty"`
}

type user struct {
	ID            uint `json:"id"`
	CarrotBalance int  `json:"carrot_balance"`
}

type model struct {
	step         step
	baseURL      string
	email        string
	password     string
	authToken    string
	balance      int
	todos        []todo
	cursor       int
	currentInput string
	message      string
	quitting     bool
}

type loginSuccessMsg struct{ token string }
type todosLoadedMsg []todo
type balanceMsg struct{ balance int }
type todoCreatedMsg struct{}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel(baseURL string) model {
	return model{
		step:    stepEnteringEmail,
		baseURL: baseURL,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func login(baseURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{"email": email, "password": password}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", baseURL+"/api/v1/auth/login", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("could not reach server: %v", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("login failed - check your email and password")}
		}

		var out struct {
			AccessToken string `json:"access_token"`
		}
		body, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(body, &out); err != nil || out.AccessToken == "" {
			return errMsg{fmt.Errorf("unexpected login response")}
		}
		return loginSuccessMsg{token: out.AccessToken}
	}
}

func authedGet(baseURL, token, path string) (*http.Response, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	req, _ := http.NewRequest("GET", baseURL+path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return client.Do(req)
}

func authedPost(baseURL, token, path string, body []byte) (*http.Response, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	req, _ := http.NewRequest("POST", baseURL+path, bytes.NewBuffer(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return client.Do(req)
}

func fetchTodos(baseURL, token string) tea.Cmd {
	return func() tea.Msg {
		resp, err := authedGet(baseURL, token, "/api/v1/todos")
		if err != nil {
			return errMsg{err}
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("could not load todos (status %d)", resp.StatusCode)}
		}
		var todos []todo
		body, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(body, &todos); err != nil {
			return errMsg{err}
		}
		return todosLoadedMsg(todos)
	}
}

func fetchBalance(baseURL, token string) tea.Cmd {
	return func() tea.Msg {
		resp, err := authedGet(baseURL, token, "/api/v1/users/me")
		if err != nil {
			return errMsg{err}
		}
		defer resp.Body.Close()
		var u user
		body, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(body, &u); err != nil {
			return errMsg{err}
		}
		return balanceMsg{balance: u.CarrotBalance}
	}
}

// toggleTodo calls complete or uncomplete; both return the updated user,
// so the balance in the header stays current without an extra fetch.
func toggleTodo(baseURL, token string, t todo) tea.Cmd {
	return func() tea.Msg {
		action := "complete"
		if t.Completed {
			action = "uncomplete"
		}
		resp, err := authedPost(baseURL, token, fmt.Sprintf("/api/v1/todos/%d/%s", t.ID, action), nil)
		if err != nil {
			return errMsg{err}
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("could not %s todo (status %d)", action, resp.StatusCode)}
		}
		var u user
		body, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(body, &u); err != nil {
			return errMsg{err}
		}
		return balanceMsg{balance: u.CarrotBalance}
	}
}

func createTodo(baseURL, token, title string) tea.Cmd {
	return func() tea.Msg {
		payload, _ := json.Marshal(map[string]string{"title": title})
		resp, err := authedPost(baseURL, token, "/api/v1/todos", payload)
		if err != nil {
			return errMsg{err}
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			return errMsg{fmt.Errorf("could not create todo (status %d)", resp.StatusCode)}
		}
		return todoCreatedMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.step != stepEnteringEmail && m.step != stepEnteringPassword && m.step != stepEnteringNewTitle {
				m.quitting = true
				return m, tea.Quit
			}
			if msg.String() == "ctrl+c" {
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m.handleKey(msg)

	case loginSuccessMsg:
		m.authToken = msg.token
		m.step = stepListingTodos
		m.message = ""
		return m, tea.Batch(fetchTodos(m.baseURL, m.authToken), fetchBalance(m.baseURL, m.authToken))

	case todosLoadedMsg:
		m.todos = msg
		if m.cursor >= len(m.todos) {
			m.cursor = 0
		}
		return m, nil

	case balanceMsg:
		m.balance = msg.balance
		return m, fetchTodos(m.baseURL, m.authToken)

	case todoCreatedMsg:
		m.step = stepListingTodos
		return m, fetchTodos(m.baseURL, m.authToken)

	case errMsg:
		m.message = msg.Error()
		if m.step == stepLoggingIn {
			m.step = stepEnteringEmail
			m.currentInput = ""
			m.email = ""
			m.password = ""
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.step {
	case stepEnteringEmail, stepEnteringPassword, stepEnteringNewTitle:
		switch msg.Type {
		case tea.KeyEnter:
			return m.submitInput()
		case tea.KeyBackspace:
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}
		case tea.KeyRunes, tea.KeySpace:
			m.currentInput += string(msg.Runes)
			if msg.Type == tea.KeySpace {
				m.currentInput += " "
			}
		}
		return m, nil

	case stepListingTodos:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.todos)-1 {
				m.cursor++
			}
		case " ", "enter":
			if len(m.todos) > 0 {
				return m, toggleTodo(m.baseURL, m.authToken, m.todos[m.cursor])
			}
		case "n":
			m.step = stepEnteringNewTitle
			m.currentInput = ""
			m.message = ""
		case "r":
			return m, tea.Batch(fetchTodos(m.baseURL, m.authToken), fetchBalance(m.baseURL, m.authToken))
		}
		return m, nil
	}
	return m, nil
}

func (m model) submitInput() (tea.Model, tea.Cmd) {
	input := m.currentInput
	m.currentInput = ""

	switch m.step {
	case stepEnteringEmail:
		if input == "" {
			return m, nil
		}
		m.email = input
		m.step = stepEnteringPassword
		return m, nil
	case stepEnteringPassword:
		m.password = input
		m.step = stepLoggingIn
		return m, login(m.baseURL, m.email, m.password)
	case stepEnteringNewTitle:
		if input == "" {
			m.step = stepListingTodos
			return m, nil
		}
		return m, createTodo(m.baseURL, m.authToken, input)
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b bytes.Buffer
	b.WriteString(titleStyle.Render("Carrot Todo"))
	b.WriteString("\n")

	switch m.step {
	case stepEnteringEmail:
		b.WriteString(promptStyle.Render("Email: "))
		b.WriteString(m.currentInput)
	case stepEnteringPassword:
		b.WriteString(promptStyle.Render("Password: "))
		for range m.currentInput {
			b.WriteString("*")
		}
	case stepLoggingIn:
		b.WriteString("Logging in...")
	case stepEnteringNewTitle:
		b.WriteString(promptStyle.Render("New todo: "))
		b.WriteString(m.currentInput)
	case stepListingTodos:
		b.WriteString(carrotStyle.Render(fmt.Sprintf("🥕 %d carrots", m.balance)))
		b.WriteString("\n\n")
		if len(m.todos) == 0 {
			b.WriteString(normalStyle.Render("No todos yet. Press n to add one."))
		}
		for i, t := range m.todos {
			mark := "[ ]"
			if t.Completed {
				mark = "[x]"
			}
			line := fmt.Sprintf("%s %s", mark, t.Title)
			if t.AlarmTime != nil {
				line += fmt.Sprintf(" (⏰ %s)", *t.AlarmTime)
			}
			switch {
			case i == m.cursor:
				b.WriteString(selectedStyle.Render("> " + line))
			case t.Completed:
				b.WriteString(doneStyle.Render(line))
			default:
				b.WriteString(normalStyle.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(normalStyle.Render("space: toggle  n: new  r: refresh  q: quit"))
	}

	if m.message != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.message))
	}
	b.WriteString("\n")
	return b.String()
}

func main() {
	baseURL := os.Getenv("CARROT_SERVER_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3536"
	}

	p := tea.NewProgram(initialModel(baseURL))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
