package geminiclient

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"google.golang.org/genai"
	yagptclient "mock-interview-backend/lib/gpt/yagpt-client"
)

// Provider совпадает с контрактом клиента YandexGPT
type Provider = yagptclient.Provider

type impl struct {
	apiKey string
	model  string

	once    sync.Once
	client  *genai.Client
	initErr error
}

func NewClient(apiKey, model string) Provider {
	return &impl{
		apiKey: apiKey,
		model:  model,
	}
}

func (i *impl) getClient(ctx context.Context) (*genai.Client, error) {
	i.once.Do(func() {
		i.client, i.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  i.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	return i.client, i.initErr
}

func (i *impl) GenerateByPromtAndText(ctx context.Context, promt, text string) (string, error) {
	client, err := i.getClient(ctx)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания клиента Gemini")
	}
	temperature := float32(0.3)
	genConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 2000,
		SafetySettings:  safetySettings(),
	}
	if promt != "" {
		genConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: promt}},
		}
	}
	result, err := client.Models.GenerateContent(ctx, i.model, genai.Text(text), genConfig)
	if err != nil {
		return "", errors.Wrap(err, "Ошибка при отправке запроса на генерацию в API Gemini")
	}
	if result == nil || len(result.Candidates) == 0 {
		reason := ""
		if result != nil && result.PromptFeedback != nil {
			reason = string(result.PromptFeedback.BlockReason)
		}
		return "", errors.Errorf("Gemini заблокировал запрос: %s", reason)
	}
	return result.Text(), nil
}

func safetySettings() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}
	settings := make([]*genai.SafetySetting, 0, len(categories))
	for _, category := range categories {
		settings = append(settings, &genai.SafetySetting{
			Category:  category,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		})
	}
	return settings
}
