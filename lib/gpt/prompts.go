package gpthandler

const (
	InterviewerSysPromt = "You are 'Rose', a friendly AI interviewer conducting a mock job interview."

	QuestionsTemplate = `Act as recruiter reviewing resume:
---
%s
---
Generate exactly %d insightful interview questions (mix technical & behavioral). Format ONLY numbered list:
1. Q1?
...
%d. Q%d?`

	EvaluationTemplate = `Question: "%s" Answer: "%s" Provide: 1. Short conversational acknowledgement (1 sentence, friendly/neutral). 2. Concise evaluation note (max 10 words) for a report. Handle "don't know"/refusals neutrally. Format *exactly*: ACKNOWLEDGEMENT: [Ack] EVALUATION: [Eval Note]`

	GreetingTemplate = "Generate 1-2 cheery opening sentences to greet the candidate."

	GreetingAckTemplate = `Candidate replied to greeting: "%s". Generate 1 brief, positive acknowledgement.`
)

const (
	DefaultGreeting       = "Hello! Let's begin."
	GreetingErrorFallback = "Hi! Ready?"
	EmptyGreetingFallback = "Hi! I'm Rose! Ready?"
	DefaultGreetingAck    = "Okay, great!"
	GreetingAckFallback   = "Okay!"
	EmptyGreetingAck      = "Great!"
	AckParseFallback      = "Got it."
	EvalParseFallback     = "Eval parse error."
)
