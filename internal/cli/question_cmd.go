package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smartrecruiter/smartrec/internal/api"
	"github.com/smartrecruiter/smartrec/internal/domain"
)

func newQuestionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "question",
		Short: "Manage assessment questions",
	}
	cmd.AddCommand(newQuestionListCmd(app), newQuestionAddCmd(app))
	return cmd
}

func newQuestionListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <assessment-id>",
		Short: "List an assessment's questions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(app); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid assessment id %q", args[0])
			}
			if err := app.Store.FetchQuestions(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s", app.Store.Snapshot().Question.Err)
			}
			qs := app.Store.Snapshot().Question.Questions
			if len(qs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No questions.")
				return nil
			}
			for i, q := range qs {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d. [%s] %s\n", i+1, q.Type, q.Text)
				for j, c := range q.Choices {
					fmt.Fprintf(cmd.OutOrStdout(), "      %c) %s\n", 'a'+j, c)
				}
			}
			return nil
		},
	}
}

func newQuestionAddCmd(app *App) *cobra.Command {
	var (
		qtype   string
		text    string
		choices []string
		correct string
	)
	cmd := &cobra.Command{
		Use:   "add <assessment-id>",
		Short: "Add a question to an assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRole(app, domain.RoleRecruiter); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid assessment id %q", args[0])
			}
			t := domain.QuestionType(qtype)
			if t != domain.QuestionMultipleChoice && t != domain.QuestionOpenEnded {
				return fmt.Errorf("invalid question type %q", qtype)
			}
			if t == domain.QuestionMultipleChoice && len(choices) < 2 {
				return fmt.Errorf("multiple-choice questions need at least two --choice flags")
			}
			q, err := app.Store.AddQuestion(cmd.Context(), id, api.QuestionInput{
				Type:          t,
				Text:          text,
				Choices:       choices,
				CorrectAnswer: correct,
			})
			if err != nil {
				return fmt.Errorf("%s", api.ErrorMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added question %d\n", q.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&qtype, "type", string(domain.QuestionOpenEnded), "question type (multiple_choice or open_ended)")
	cmd.Flags().StringVar(&text, "text", "", "question text")
	cmd.Flags().StringArrayVar(&choices, "choice", nil, "choice for multiple-choice questions (repeatable)")
	cmd.Flags().StringVar(&correct, "correct", "", "correct answer")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}
