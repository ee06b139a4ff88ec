// Critical errors that need user attention
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Justice-Caban/irodori/internal/tui/theme"
)

// ErrorNotification represents a user-facing error that requires attention
type ErrorNotification struct {
	Title       string // Brief title (e.g., "Storage Error")
	Message     string // Detailed message
	Severity    ErrorSeverity
	Suggestion  string // What user should do
	Dismissible bool   // Can be dismissed
}

type ErrorSeverity int

const (
	SeverityInfo ErrorSeverity = iota
	SeverityWarning
	SeverityError
	SeverityCritical
)

// ErrorNotificationList manages multiple error notifications
type ErrorNotificationList struct {
	notifications []ErrorNotification
}

// Add adds a new error notification
func (e *ErrorNotificationList) Add(notification ErrorNotification) {
	e.notifications = append(e.notifications, notification)
}

// AddError adds an error with custom fields
func (e *ErrorNotificationList) AddError(title, message, suggestion string, severity ErrorSeverity) {
	e.Add(ErrorNotification{
		Title:       title,
		Message:     message,
		Severity:    severity,
		Suggestion:  suggestion,
		Dismissible: severity != SeverityCritical,
	})
}

// HasErrors returns true if there are any notifications
func (e *ErrorNotificationList) HasErrors() bool {
	return len(e.notifications) > 0
}

// Count returns the number of notifications
func (e *ErrorNotificationList) Count() int {
	return len(e.notifications)
}

// Clear removes all notifications
func (e *ErrorNotificationList) Clear() {
	e.notifications = nil
}

// Render renders all notifications as a styled string
func (e *ErrorNotificationList) Render(width int) string {
	if len(e.notifications) == 0 {
		return ""
	}

	var sections []string

	for _, notif := range e.notifications {
		sections = append(sections, renderNotification(notif, width))
	}

	return strings.Join(sections, "\n\n")
}

func renderNotification(notif ErrorNotification, width int) string {
	// Choose style based on severity
	var (
		iconStyle lipgloss.Style
		borderCol lipgloss.Color
		icon      string
	)

	switch notif.Severity {
	case SeverityInfo:
		iconStyle = lipgloss.NewStyle().Foreground(theme.ColorSecondary).Bold(true)
		borderCol = theme.ColorSecondary
		icon = "i"
	case SeverityWarning:
		iconStyle = lipgloss.NewStyle().Foreground(theme.ColorWarning).Bold(true)
		borderCol = theme.ColorWarning
		icon = "!"
	default:
		iconStyle = lipgloss.NewStyle().Foreground(theme.ColorError).Bold(true)
		borderCol = theme.ColorError
		icon = "x"
	}

	var content strings.Builder

	// Title with icon
	content.WriteString(iconStyle.Render(fmt.Sprintf("%s %s", icon, notif.Title)))
	content.WriteString("\n\n")
	content.WriteString(notif.Message)

	if notif.Suggestion != "" {
		content.WriteString("\n\n")
		content.WriteString(theme.MutedStyle.Italic(true).Render("-> " + notif.Suggestion))
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderCol).
		Padding(1, 2).
		Width(width - 4)

	return boxStyle.Render(content.String())
}
