package gpthandler

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	answer string
	err    error
	promts []string
	texts  []string
}

func (f *fakeClient) GenerateByPromtAndText(ctx context.Context, promt, text string) (string, error) {
	f.promts = append(f.promts, promt)
	f.texts = append(f.texts, text)
	return f.answer, f.err
}

func TestParse(t *testing.T) {
	t.Run(`parseQuestions check`, func(t *testing.T) {
		raw := "1. Tell me about Go?\n\n2) Why this role?\n  3 What is a goroutine?\nUnnumbered question?\n4.\n"
		require.Equal(t, []string{
			"Tell me about Go?",
			"Why this role?",
			"What is a goroutine?",
			"Unnumbered question?",
		}, parseQuestions(raw))
		require.Empty(t, parseQuestions("  \n "))
	})

	t.Run(`parseEvaluation multiline`, func(t *testing.T) {
		ack, note := parseEvaluation("ACKNOWLEDGEMENT: Thanks for sharing.\nEVALUATION: Clear, concise")
		require.Equal(t, "Thanks for sharing.", ack)
		require.Equal(t, "Clear, concise", note)
	})

	t.Run(`parseEvaluation single line`, func(t *testing.T) {
		ack, note := parseEvaluation("acknowledgement: Nice one. EVALUATION: Good detail")
		require.Equal(t, "Nice one.", ack)
		require.Equal(t, "Good detail", note)
	})

	t.Run(`parseEvaluation fallbacks`, func(t *testing.T) {
		ack, note := parseEvaluation("something else")
		require.Equal(t, AckParseFallback, ack)
		require.Equal(t, EvalParseFallback, note)
	})

	t.Run(`greeting cleanup`, func(t *testing.T) {
		require.Equal(t, "Hello there!", cleanGreeting("Greeting: Hello there!"))
		require.Equal(t, "Welcome!", cleanGreeting(`"Welcome!"`))
		require.Equal(t, "Glad to hear it.", cleanGreetingAck("Acknowledgement: Glad to hear it."))
	})
}

func TestHandler(t *testing.T) {
	ctx := context.Background()

	t.Run(`no client`, func(t *testing.T) {
		i := NewInstance(nil, 0)
		_, err := i.GenerateQuestions(ctx, "resume")
		require.True(t, errors.Is(err, ErrGeneratorUnavailable))
		require.Equal(t, DefaultGreeting, i.GenerateGreeting(ctx))
		require.Equal(t, DefaultGreetingAck, i.GenerateGreetingAck(ctx, "hi"))
		evaluation, err := i.EvaluateAnswer(ctx, "q", "a")
		require.NoError(t, err)
		require.Equal(t, "Okay.", evaluation.Acknowledgement)
	})

	t.Run(`questions generated`, func(t *testing.T) {
		client := &fakeClient{answer: "1. First?\n2. Second?"}
		i := NewInstance(client, 2)
		questions, err := i.GenerateQuestions(ctx, "Go developer")
		require.NoError(t, err)
		require.Equal(t, []string{"First?", "Second?"}, questions)
		require.True(t, strings.Contains(client.texts[0], "Go developer"))
		require.True(t, strings.Contains(client.texts[0], "Generate exactly 2 "))
	})

	t.Run(`questions unparseable`, func(t *testing.T) {
		i := NewInstance(&fakeClient{answer: "\n\n"}, 2)
		_, err := i.GenerateQuestions(ctx, "resume")
		require.Error(t, err)
	})

	t.Run(`client errors`, func(t *testing.T) {
		i := NewInstance(&fakeClient{err: errors.New("quota")}, 2)
		_, err := i.GenerateQuestions(ctx, "resume")
		require.Error(t, err)
		_, err = i.EvaluateAnswer(ctx, "q", "a")
		require.Error(t, err)
		require.Equal(t, GreetingErrorFallback, i.GenerateGreeting(ctx))
		require.Equal(t, GreetingAckFallback, i.GenerateGreetingAck(ctx, "hi"))
	})

	t.Run(`empty greeting`, func(t *testing.T) {
		i := NewInstance(&fakeClient{answer: `""`}, 2)
		require.Equal(t, EmptyGreetingFallback, i.GenerateGreeting(ctx))
		require.Equal(t, EmptyGreetingAck, i.GenerateGreetingAck(ctx, "hi"))
	})
}
