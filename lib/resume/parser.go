package resumeparser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrUnsupportedType = errors.New("неподдерживаемый тип файла, допустимы pdf и docx")
	ErrNoText          = errors.New("не удалось извлечь текст из резюме")
)

var whitespace = regexp.MustCompile(`\s+`)

type Provider interface {
	ExtractText(fileName string, content []byte) (text string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func IsAllowedFile(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf", ".docx":
		return true
	}
	return false
}

func (i impl) ExtractText(fileName string, content []byte) (text string, err error) {
	logger := log.WithField("file_name", fileName)
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		text, err = extractPdf(content)
	case ".docx":
		text, err = extractDocx(content)
	default:
		return "", ErrUnsupportedType
	}
	if err != nil {
		logger.WithError(err).Warn("ошибка извлечения текста из резюме")
		return "", err
	}
	text = collapseWhitespace(text)
	if text == "" {
		return "", ErrNoText
	}
	logger.WithField("length", len(text)).Info("текст резюме извлечен")
	return text, nil
}

func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}

func extractPdf(content []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("ошибка чтения структуры PDF: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", errors.Wrap(err, "ошибка чтения структуры PDF")
	}
	builder := strings.Builder{}
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			log.WithError(err).WithField("page", pageNum).Warn("ошибка извлечения текста страницы PDF")
			continue
		}
		builder.WriteString(pageText)
		builder.WriteString(" ")
	}
	return builder.String(), nil
}

func extractDocx(content []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", errors.Wrap(err, "не удалось прочитать DOCX")
	}
	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", errors.Wrap(err, "не удалось прочитать DOCX")
		}
		defer rc.Close()
		return readDocumentXML(rc)
	}
	return "", errors.New("не удалось прочитать DOCX: отсутствует word/document.xml")
}

// readDocumentXML собирает текст из w:t, абзацы разделяются пробелом
func readDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	paragraphs := []string{}
	current := strings.Builder{}
	inText := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.Wrap(err, "не удалось прочитать DOCX")
		}
		switch el := token.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "t":
				inText = true
			case "tab":
				current.WriteString(" ")
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				if current.Len() > 0 {
					paragraphs = append(paragraphs, current.String())
				}
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(el)
			}
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}
	return strings.Join(paragraphs, " "), nil
}
