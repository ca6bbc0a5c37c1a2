package interviewmanager

import "strings"

const FlagInappropriate = "inappropriate"

var disallowedTerms = []string{"badword1", "offensive2"}

func isInappropriate(text string) bool {
	lower := strings.ToLower(text)
	for _, term := range disallowedTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// inspectAnswer возвращает метку для ответа или nil, если совпадений нет
func inspectAnswer(text string) *string {
	if !isInappropriate(text) {
		return nil
	}
	flag := FlagInappropriate
	return &flag
}
