package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_UnknownTemplateReturnsEmpty(t *testing.T) {
	t.Parallel()

	out := Render("no_such_template", map[string]string{"employee_name": "Jane"})
	assert.Equal(t, "", out)

	subject := RenderSubject("no_such_template", nil)
	assert.Equal(t, "", subject)
}

func TestRender_SubstitutesKnownPlaceholders(t *testing.T) {
	t.Parallel()

	out := Render(LeaveApprovedEmployee, map[string]string{
		"employee_name": "Jane Doe",
		"leave_type":    "Annual Leave",
		"start_date":    "10 Mar 2026",
		"end_date":      "12 Mar 2026",
	})

	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Annual Leave")
	assert.Contains(t, out, "10 Mar 2026")
	assert.NotContains(t, out, "{employee_name}")
}

func TestRender_MissingVariableLeavesPlaceholderVisible(t *testing.T) {
	t.Parallel()

	out := Render(LeaveApprovedEmployee, map[string]string{
		"employee_name": "Jane Doe",
	})

	// Fail open: an unresolved placeholder degrades to visible text
	// instead of blocking the notification.
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "{leave_type}")
}

func TestRender_ExtraVariablesIgnored(t *testing.T) {
	t.Parallel()

	out := Render(BirthdayEmployee, map[string]string{
		"employee_name": "Jane",
		"unrelated_key": "should not appear",
	})

	assert.Contains(t, out, "Jane")
	assert.NotContains(t, out, "should not appear")
}

func TestRender_NilVariables(t *testing.T) {
	t.Parallel()

	out := Render(BirthdayEmployee, nil)
	assert.Contains(t, out, "{employee_name}")
}

func TestRenderSubject(t *testing.T) {
	t.Parallel()

	subject := RenderSubject(LeaveApprovedEmployee, nil)
	assert.True(t, strings.Contains(subject, "approved"))

	subject = RenderSubject(AnniversaryEmployee, map[string]string{"years": "5"})
	assert.Contains(t, subject, "5")
}

func TestCatalog_EveryTemplateHasSubjectAndBody(t *testing.T) {
	t.Parallel()

	for name, block := range catalog {
		assert.NotEmpty(t, block.Subject, "subject of %s", name)
		assert.NotEmpty(t, block.Body, "body of %s", name)
	}
}
