package gpthandler

import (
	"regexp"
	"strings"
)

var (
	numberedLine     = regexp.MustCompile(`^\s*\d+[.)]?\s*(.*)`)
	ackPattern       = regexp.MustCompile(`(?is)ACKNOWLEDGEMENT:\s*(.*?)(?:\nEVALUATION:|$)`)
	evalPattern      = regexp.MustCompile(`(?i)EVALUATION:\s*(.*)`)
	greetingLabel    = regexp.MustCompile(`(?i)^"|"$|^(Greeting|Response|Rose):\s*`)
	greetingAckLabel = regexp.MustCompile(`(?i)^"|"$|^(Acknowledgement|Response|Rose):\s*`)
)

// parseQuestions разбирает нумерованный список, строки без номера берутся как есть
func parseQuestions(text string) []string {
	questions := []string{}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if match := numberedLine.FindStringSubmatch(line); match != nil {
			line = strings.TrimSpace(match[1])
		}
		if line == "" {
			continue
		}
		questions = append(questions, line)
	}
	return questions
}

func parseEvaluation(text string) (ack, note string) {
	text = strings.TrimSpace(text)
	ack = AckParseFallback
	note = EvalParseFallback
	evalMatch := evalPattern.FindStringSubmatch(text)
	if evalMatch != nil {
		note = strings.TrimSpace(evalMatch[1])
	}
	if ackMatch := ackPattern.FindStringSubmatch(text); ackMatch != nil {
		ack = strings.TrimSpace(ackMatch[1])
		// ответ в одну строку: EVALUATION попадает в текст подтверждения
		if evalMatch != nil && strings.HasSuffix(ack, evalMatch[0]) {
			ack = strings.TrimSpace(strings.TrimSuffix(ack, evalMatch[0]))
		}
	}
	return ack, note
}

func cleanGreeting(text string) string {
	return strings.TrimSpace(greetingLabel.ReplaceAllString(strings.TrimSpace(text), ""))
}

func cleanGreetingAck(text string) string {
	return strings.TrimSpace(greetingAckLabel.ReplaceAllString(strings.TrimSpace(text), ""))
}
