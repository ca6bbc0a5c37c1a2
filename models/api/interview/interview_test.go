package interviewapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequests(t *testing.T) {
	t.Run(`SendReportRequest validate`, func(t *testing.T) {
		require.NoError(t, SendReportRequest{Email: "jane@example.com"}.Validate())
		require.Error(t, SendReportRequest{Email: " "}.Validate())
		require.Error(t, SendReportRequest{Email: "jane"}.Validate())
	})

	t.Run(`StepRequest normalize`, func(t *testing.T) {
		r := StepRequest{Text: "  I am a developer.\n"}
		r.Normalize()
		require.Equal(t, "I am a developer.", r.Text)
	})
}
