package ttshandler

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"mock-interview-backend/config"
	filestorage "mock-interview-backend/lib/file-storage"
	"mock-interview-backend/lib/metrics"
	openaittsclient "mock-interview-backend/lib/tts/openai-client"
)

// минимальный размер корректного wav файла
const minAudioSize = 100

type Provider interface {
	// TextToSpeech возвращает имя сохраненного аудио файла или пустую строку
	TextToSpeech(ctx context.Context, text, label string) (fileName string)
	Enabled() bool
}

var Instance Provider

type impl struct {
	client  openaittsclient.Provider
	storage filestorage.Provider
	now     func() time.Time
}

func NewHandler() {
	var client openaittsclient.Provider
	switch {
	case !*config.Conf.TTS.Enabled:
		log.Info("Синтез речи отключен настройкой TTS_ENABLED")
	case config.Conf.TTS.APIKey == "":
		log.Warn("OPENAI_API_KEY не задан, синтез речи отключен")
	default:
		client = openaittsclient.NewClient(config.Conf.TTS.APIKey, config.Conf.TTS.Model, config.Conf.TTS.Voice)
	}
	Instance = NewInstance(client, filestorage.Instance)
}

func NewInstance(client openaittsclient.Provider, storage filestorage.Provider) Provider {
	return impl{
		client:  client,
		storage: storage,
		now:     time.Now,
	}
}

func (i impl) Enabled() bool {
	return i.client != nil && i.storage != nil
}

func (i impl) TextToSpeech(ctx context.Context, text, label string) string {
	logger := log.WithField("label", label)
	if !i.Enabled() {
		logger.Debug("синтез речи недоступен, аудио не сформировано")
		return ""
	}
	start := time.Now()
	defer func() {
		metrics.CollaboratorDuration.WithLabelValues(metrics.CollaboratorSynthesizer).Observe(time.Since(start).Seconds())
	}()

	audio, err := i.client.Synthesize(ctx, prepareText(text))
	if err != nil {
		metrics.CollaboratorFailures.WithLabelValues(metrics.CollaboratorSynthesizer).Inc()
		logger.WithError(err).Error("ошибка синтеза речи")
		return ""
	}
	if len(audio) <= minAudioSize {
		metrics.CollaboratorFailures.WithLabelValues(metrics.CollaboratorSynthesizer).Inc()
		logger.WithField("size", len(audio)).Error("синтез речи вернул пустой аудио файл")
		return ""
	}
	fileName := fmt.Sprintf("%s_%d.wav", label, i.now().UnixMilli())
	if err = i.storage.UploadFile(ctx, fileName, audio, "audio/wav"); err != nil {
		metrics.CollaboratorFailures.WithLabelValues(metrics.CollaboratorSynthesizer).Inc()
		logger.WithError(err).Error("ошибка сохранения аудио файла")
		return ""
	}
	logger.
		WithField("file_name", fileName).
		WithField("size", len(audio)).
		Info("аудио сформировано")
	return fileName
}

var pauseReplacer = strings.NewReplacer("?", "? ...", ".", ". ... ")

// prepareText добавляет паузы после предложений
func prepareText(text string) string {
	return pauseReplacer.Replace(text)
}
