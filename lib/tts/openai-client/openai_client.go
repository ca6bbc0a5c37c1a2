package openaittsclient

import (
	"context"
	"io"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/pkg/errors"
)

type Provider interface {
	Synthesize(ctx context.Context, text string) (wav []byte, err error)
}

type impl struct {
	client openai.Client
	model  string
	voice  string
}

func NewClient(apiKey, model, voice string) Provider {
	return impl{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		voice:  voice,
	}
}

func (i impl) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := i.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Input:          text,
		Model:          openai.SpeechModel(i.model),
		Voice:          openai.AudioSpeechNewParamsVoice(i.voice),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatWAV,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка запроса синтеза речи в API OpenAI")
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения аудио из ответа API OpenAI")
	}
	return body, nil
}
