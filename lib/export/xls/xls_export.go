package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	interviewapimodels "mock-interview-backend/models/api/interview"
)

type Provider interface {
	ExportReport(report interviewapimodels.ReportResponse) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var (
	reportHeaders = []string{"№", "Question", "Answer", "Evaluation", "Flag"}
	reportWidths  = []float64{6, 45, 60, 45, 15}
)

func (i impl) ExportReport(report interviewapimodels.ReportResponse) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, reportHeaders, reportWidths)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(report.Responses) != 0 {
		_, err = writeReportData(f, sheet, report, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	if err = f.SetSheetName(sheet, "Interview"); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа xlsx")
	}
	return f.WriteToBuffer()
}

func writeReportData(f *excelize.File, sheet string, report interviewapimodels.ReportResponse, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(reportHeaders), len(report.Responses)+1); err != nil {
		return row, err
	}
	for idx, rec := range report.Responses {
		row++
		values := []interface{}{idx + 1, rec.Question, rec.Answer, rec.Evaluation}
		if rec.Flag != nil {
			values = append(values, *rec.Flag)
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return row, err
		}
	}
	return row, nil
}
