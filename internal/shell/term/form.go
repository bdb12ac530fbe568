package term

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quabes/trainbar/internal/intervals"
)

const (
	fieldUsername = iota
	fieldPassword
	fieldAthleteID
	fieldCount
)

// settingsForm is the in-terminal settings dialog: three text inputs
// pre-filled with the current credentials.
type settingsForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

func newSettingsForm(creds intervals.Credentials) settingsForm {
	var f settingsForm

	username := textinput.New()
	username.Prompt = "Username:   "
	username.SetValue(creds.Username)
	username.Focus()

	password := textinput.New()
	password.Prompt = "API Key:    "
	password.SetValue(creds.Password)
	password.EchoMode = textinput.EchoPassword

	athlete := textinput.New()
	athlete.Prompt = "Athlete ID: "
	athlete.SetValue(creds.AthleteID)

	f.inputs[fieldUsername] = username
	f.inputs[fieldPassword] = password
	f.inputs[fieldAthleteID] = athlete
	return f
}

func (f settingsForm) credentials() intervals.Credentials {
	return intervals.Credentials{
		Username:  f.inputs[fieldUsername].Value(),
		Password:  f.inputs[fieldPassword].Value(),
		AthleteID: f.inputs[fieldAthleteID].Value(),
	}
}

func (f settingsForm) moveFocus(delta int) settingsForm {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
	return f
}

func (f settingsForm) update(msg tea.Msg) (settingsForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f settingsForm) view(styles Styles) string {
	out := styles.Title.Render("Settings") + "\n\n"
	for i := range f.inputs {
		out += "  " + f.inputs[i].View() + "\n"
	}
	out += "\n" + styles.StatusBar.Render("enter save · tab next field · esc cancel")
	return out
}
