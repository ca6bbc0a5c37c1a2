package xlsexport

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	interviewmanager "mock-interview-backend/lib/interview/manager"
	interviewapimodels "mock-interview-backend/models/api/interview"
)

func TestExportReport(t *testing.T) {
	flag := interviewmanager.FlagInappropriate
	buf, err := impl{}.ExportReport(interviewapimodels.ReportResponse{
		Responses: []interviewmanager.ResponseRecord{
			{QuestionIndex: 0, Question: "Tell me about yourself.", Answer: "I am a developer.", Evaluation: "Clear, concise"},
			{QuestionIndex: 1, Question: "Why this role?", Answer: "badword1", Evaluation: "n/a", Flag: &flag},
		},
		QuestionsCount: 2,
		FlaggedCount:   1,
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Interview")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, reportHeaders, rows[0])
	require.GreaterOrEqual(t, len(rows[1]), 4)
	require.Equal(t, []string{"1", "Tell me about yourself.", "I am a developer.", "Clear, concise"}, rows[1][:4])
	require.Equal(t, []string{"2", "Why this role?", "badword1", "n/a", "inappropriate"}, rows[2])
}
