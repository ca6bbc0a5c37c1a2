package gpthandler

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"mock-interview-backend/config"
	geminiclient "mock-interview-backend/lib/gpt/gemini-client"
	yagptclient "mock-interview-backend/lib/gpt/yagpt-client"
	"mock-interview-backend/lib/metrics"
)

var ErrGeneratorUnavailable = errors.New("генератор вопросов не настроен")

type Evaluation struct {
	Acknowledgement string // короткая реплика для озвучивания
	Note            string // заметка для отчета
}

type Provider interface {
	GenerateQuestions(ctx context.Context, resumeText string) ([]string, error)
	EvaluateAnswer(ctx context.Context, question, answer string) (Evaluation, error)
	GenerateGreeting(ctx context.Context) string
	GenerateGreetingAck(ctx context.Context, greetingResponse string) string
}

var Instance Provider

type impl struct {
	client         yagptclient.Provider
	questionsCount int
}

func NewHandler() {
	Instance = NewInstance(newClient(), config.Conf.Interview.QuestionsCount)
}

// NewInstance без client возвращает обработчик с ответами по умолчанию
func NewInstance(client yagptclient.Provider, questionsCount int) Provider {
	if questionsCount <= 0 {
		questionsCount = 10
	}
	return impl{
		client:         client,
		questionsCount: questionsCount,
	}
}

func newClient() yagptclient.Provider {
	switch config.Conf.AI.Provider {
	case "yandex":
		if config.Conf.AI.YandexGPT.IAMToken == "" {
			log.Warn("YANDEX_GPT_IAM_TOKEN не задан, генерация через YandexGPT отключена")
			return nil
		}
		log.Info("Инициализация ИИ: YandexGPT")
		return yagptclient.NewClient(config.Conf.AI.YandexGPT.IAMToken, config.Conf.AI.YandexGPT.CatalogID)
	case "gemini":
		if config.Conf.AI.Gemini.APIKey == "" {
			log.Warn("GOOGLE_API_KEY не задан, генерация через Gemini отключена")
			return nil
		}
		log.Infof("Инициализация ИИ: Gemini, модель: %v", config.Conf.AI.Gemini.Model)
		return geminiclient.NewClient(config.Conf.AI.Gemini.APIKey, config.Conf.AI.Gemini.Model)
	}
	log.WithField("provider", config.Conf.AI.Provider).Warn("провайдер ИИ не задан, используются ответы по умолчанию")
	return nil
}

func (i impl) getLogger() *log.Entry {
	return log.WithField("component", "gpt")
}

func (i impl) generate(ctx context.Context, collaborator, promt, text string) (string, error) {
	start := time.Now()
	result, err := i.client.GenerateByPromtAndText(ctx, promt, text)
	metrics.CollaboratorDuration.WithLabelValues(collaborator).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CollaboratorFailures.WithLabelValues(collaborator).Inc()
	}
	return result, err
}

func (i impl) GenerateQuestions(ctx context.Context, resumeText string) ([]string, error) {
	if i.client == nil {
		return nil, ErrGeneratorUnavailable
	}
	logger := i.getLogger()
	userPromt := fmt.Sprintf(QuestionsTemplate, resumeText, i.questionsCount, i.questionsCount, i.questionsCount)
	raw, err := i.generate(ctx, metrics.CollaboratorQuestions, "", userPromt)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации вопросов интервью")
		return nil, errors.Wrap(err, "ошибка генерации вопросов")
	}
	questions := parseQuestions(raw)
	if len(questions) == 0 {
		metrics.CollaboratorFailures.WithLabelValues(metrics.CollaboratorQuestions).Inc()
		logger.WithField("raw", raw).Warn("не удалось разобрать вопросы интервью")
		return nil, errors.New("не удалось разобрать сгенерированные вопросы")
	}
	logger.WithField("count", len(questions)).Info("вопросы интервью сгенерированы")
	return questions, nil
}

func (i impl) EvaluateAnswer(ctx context.Context, question, answer string) (Evaluation, error) {
	if i.client == nil {
		return Evaluation{Acknowledgement: "Okay.", Note: "Evaluation skipped."}, nil
	}
	raw, err := i.generate(ctx, metrics.CollaboratorEvaluator, InterviewerSysPromt, fmt.Sprintf(EvaluationTemplate, question, answer))
	if err != nil {
		i.getLogger().WithError(err).Error("ошибка оценки ответа")
		return Evaluation{}, errors.Wrap(err, "ошибка оценки ответа")
	}
	ack, note := parseEvaluation(raw)
	i.getLogger().
		WithField("ack", ack).
		WithField("evaluation", note).
		Debug("ответ оценен")
	return Evaluation{Acknowledgement: ack, Note: note}, nil
}

func (i impl) GenerateGreeting(ctx context.Context) string {
	if i.client == nil {
		return DefaultGreeting
	}
	raw, err := i.generate(ctx, metrics.CollaboratorGreeting, InterviewerSysPromt, GreetingTemplate)
	if err != nil {
		i.getLogger().WithError(err).Error("ошибка генерации приветствия")
		return GreetingErrorFallback
	}
	greeting := cleanGreeting(raw)
	if greeting == "" {
		return EmptyGreetingFallback
	}
	return greeting
}

func (i impl) GenerateGreetingAck(ctx context.Context, greetingResponse string) string {
	if i.client == nil {
		return DefaultGreetingAck
	}
	raw, err := i.generate(ctx, metrics.CollaboratorGreeting, InterviewerSysPromt, fmt.Sprintf(GreetingAckTemplate, greetingResponse))
	if err != nil {
		i.getLogger().WithError(err).Error("ошибка генерации ответа на приветствие")
		return GreetingAckFallback
	}
	ack := cleanGreetingAck(raw)
	if ack == "" {
		return EmptyGreetingAck
	}
	return ack
}
