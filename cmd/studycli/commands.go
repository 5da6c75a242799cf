package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/akolanti/StudyAPI/internal/adapter"
	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/customHttpClient"
	"github.com/akolanti/StudyAPI/internal/data/store"
	"github.com/akolanti/StudyAPI/internal/domain/failures"
	"github.com/akolanti/StudyAPI/internal/domain/quizModel"
	"github.com/akolanti/StudyAPI/internal/session"
	"github.com/akolanti/StudyAPI/internal/study"
	"github.com/akolanti/StudyAPI/internal/study/ingest"
	"github.com/akolanti/StudyAPI/internal/study/llm"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
	"github.com/spf13/cobra"
)

const cliSessionId = "cli"

// above slog.LevelError, so nothing is logged unless --verbose
const quietLevel = slog.LevelError + 4

var newProvider = func(ctx context.Context, settings *config.Settings) (llm.Provider, error) {
	return study.NewProvider(ctx, settings, customHttpClient.GetPooledClient())
}

type pipeline struct {
	service  study.Service
	sessions *session.Manager
}

func newPipeline(ctx context.Context, settings *config.Settings) (*pipeline, error) {
	provider, err := newProvider(ctx, settings)
	if err != nil {
		return nil, err
	}
	sessions := session.NewManager(store.InitInMemoryNoteStore(config.SessionNoteTTL))
	return &pipeline{
		service:  study.NewService(ingest.NewDispatcher(), provider, sessions, settings.ExtractionParallelism),
		sessions: sessions,
	}, nil
}

// summarize stages paths, runs the summary and returns the session holding the working note.
func (p *pipeline) summarize(ctx context.Context, paths []string) (session.Context, string, error) {
	docs, cleanup, err := stageFiles(paths)
	if err != nil {
		return session.Context{}, "", err
	}
	defer cleanup()

	sc, err := p.sessions.Load(ctx, cliSessionId)
	if err != nil {
		return session.Context{}, "", err
	}
	result, err := p.service.Summarize(ctx, &sc, docs)
	if err != nil {
		return session.Context{}, "", explain(err)
	}
	return sc, result.Summary, nil
}

func rootCmd(settings *config.Settings) *cobra.Command {
	var verbose bool
	var provider string

	root := &cobra.Command{
		Use:           "studycli",
		Short:         "Summarize study documents, ask about them and quiz yourself",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if provider != "" {
				settings.LLMProvider = strings.ToLower(provider)
			}
			if !verbose {
				settings.LogLevel = quietLevel
			}
			logger_i.Init(settings)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline progress")
	root.PersistentFlags().StringVar(&provider, "provider", "", "AI provider: gemini|openai (default from LLM_PROVIDER)")

	root.AddCommand(summarizeCmd(settings), askCmd(settings), quizCmd(settings))
	return root
}

func summarizeCmd(settings *config.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <files...>",
		Short: "Summarize one or more PDF, DOCX, PPTX or TXT files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			p, err := newPipeline(ctx, settings)
			if err != nil {
				return err
			}
			_, summary, err := p.summarize(ctx, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		},
	}
}

func askCmd(settings *config.Settings) *cobra.Command {
	var question string

	cmd := &cobra.Command{
		Use:   "ask -q <question> <files...>",
		Short: "Answer a question from the summary of the given files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(question) == "" {
				return explain(failures.NoQuestion())
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			p, err := newPipeline(ctx, settings)
			if err != nil {
				return err
			}
			sc, _, err := p.summarize(ctx, args)
			if err != nil {
				return err
			}
			exchange, err := p.service.Answer(ctx, sc, question)
			if err != nil {
				return explain(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), exchange.Answer)
			return nil
		},
	}
	cmd.Flags().StringVarP(&question, "question", "q", "", "the question to ask")
	return cmd
}

func quizCmd(settings *config.Settings) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "quiz <files...>",
		Short: "Generate a five question multiple-choice quiz from the given files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			p, err := newPipeline(ctx, settings)
			if err != nil {
				return err
			}
			sc, _, err := p.summarize(ctx, args)
			if err != nil {
				return err
			}
			quiz, err := p.service.Quiz(ctx, sc)
			if err != nil {
				return explain(err)
			}

			if asJSON {
				b, _ := json.MarshalIndent(adapter.ToQuizResponse(quiz), "", "  ")
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			printQuiz(cmd.OutOrStdout(), quiz)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the quiz as JSON")
	return cmd
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, config.TRACE_ID_KEY, "cli-"+time.Now().Format("150405"))
	ctx = context.WithValue(ctx, config.SESSION_ID_KEY, cliSessionId)
	return context.WithTimeout(ctx, config.RequestTimeout)
}

func printQuiz(w io.Writer, quiz quizModel.QuizSet) {
	for i, q := range quiz.Questions {
		fmt.Fprintf(w, "%d. %s\n", i+1, q.Text)
		for j, option := range q.Options {
			fmt.Fprintf(w, "   %c) %s\n", 'a'+j, option)
		}
		fmt.Fprintf(w, "   answer: %c\n\n", 'a'+q.CorrectOptionIndex)
	}
}

// explain turns a pipeline failure into the same message the HTTP API shows.
func explain(err error) error {
	res := adapter.ToErrorResponse(err)
	return fmt.Errorf("%s (%s)", res.Error.Message, res.Error.Kind)
}
