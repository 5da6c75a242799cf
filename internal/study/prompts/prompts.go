package prompts

import (
	"fmt"

	"github.com/akolanti/StudyAPI/internal/config"
)

const summaryTemplate = `Summarize the following study material as concise bullet points.
Cover every main concept, definition and relationship a student needs to revise from.
Use one bullet per idea and keep the original terminology.

Study material:
%s`

const answerTemplate = `Answer the student's question using only the notes below.
If the notes do not contain the answer, start your reply with "Not found in notes, but" and then give a short general answer.
Format the answer for easy reading: short paragraphs, bullet points or numbered steps where they help.

Notes:
%s

Question: %s`

const quizTemplate = `Create exactly %d multiple-choice questions from the notes below.
Each question must have exactly %d answer options and exactly one correct option.

Reply with a single JSON object and nothing else. No prose before or after it, no Markdown, no code fences.
The object must match this schema:
{"questions":[{"question":"string","options":["string","string","string","string"],"correct_answer":0}]}
"correct_answer" is the zero-based index of the correct option in "options".

Notes:
%s`

func Summary(corpus string) string {
	return fmt.Sprintf(summaryTemplate, corpus)
}

func Answer(note string, question string) string {
	return fmt.Sprintf(answerTemplate, note, question)
}

func Quiz(note string) string {
	return fmt.Sprintf(quizTemplate, config.QuizQuestionCount, config.QuizOptionCount, note)
}
