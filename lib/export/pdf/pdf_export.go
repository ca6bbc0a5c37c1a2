package pdfexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	interviewapimodels "mock-interview-backend/models/api/interview"
)

type Provider interface {
	GenerateReport(report interviewapimodels.ReportResponse) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{now: time.Now}
}

type impl struct {
	now func() time.Time
}

func (i impl) GenerateReport(report interviewapimodels.ReportResponse) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Interview Report", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Interview Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Generated %s. Answered %d of %d questions, flagged %d.",
		i.now().Format("02.01.2006 15:04"), len(report.Responses), report.QuestionsCount, report.FlaggedCount)),
		"", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	if report.GreetingResponse != "" {
		writeBlock(pdf, tr, "Greeting response", report.GreetingResponse)
	}
	if len(report.Responses) == 0 {
		pdf.SetFont("Helvetica", "I", 12)
		pdf.MultiCell(0, 6, "No answers were recorded.", "", "L", false)
	}
	for idx, rec := range report.Responses {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d. %s", idx+1, rec.Question)), "", "L", false)
		writeBlock(pdf, tr, "Answer", rec.Answer)
		writeBlock(pdf, tr, "Evaluation", rec.Evaluation)
		if rec.Flag != nil {
			pdf.SetTextColor(200, 30, 30)
			writeBlock(pdf, tr, "Flag", *rec.Flag)
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.Ln(3)
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeBlock(pdf *fpdf.Fpdf, tr func(string) string, title, text string) {
	_, lineHt := pdf.GetFontSize()
	if lineHt < 5 {
		lineHt = 5
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Write(lineHt+1, tr(title+": "))
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, lineHt+1, tr(text), "", "L", false)
}
