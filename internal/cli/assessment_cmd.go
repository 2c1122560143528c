package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartrecruiter/smartrec/internal/api"
	"github.com/smartrecruiter/smartrec/internal/cli/formatter"
	"github.com/smartrecruiter/smartrec/internal/domain"
)

func newAssessmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assessment",
		Short: "Manage assessments",
	}

	cmd.AddCommand(
		newAssessmentListCmd(app),
		newAssessmentShowCmd(app),
		newAssessmentCreateCmd(app),
		newAssessmentUpdateCmd(app),
		newAssessmentDeleteCmd(app),
		newAssessmentSubmitCmd(app),
	)
	return cmd
}

func newAssessmentListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List assessments visible to you",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(app); err != nil {
				return err
			}

			var list []domain.Assessment
			switch role := app.Store.Snapshot().Auth.Role; role {
			case domain.RoleRecruiter:
				if err := app.Store.FetchAssessments(cmd.Context()); err != nil {
					return fmt.Errorf("%s", app.Store.Snapshot().Assessment.Err)
				}
				list = app.Store.Snapshot().Assessment.Assessments
			case domain.RoleInterviewee:
				if err := app.Store.FetchIntervieweeAssessments(cmd.Context()); err != nil {
					return fmt.Errorf("%s", app.Store.Snapshot().Assessment.Err)
				}
				list = app.Store.Snapshot().Assessment.IntervieweeAssessments
			default:
				return fmt.Errorf("session has an unrecognized role; log in again")
			}

			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No assessments.")
				return nil
			}
			rows := make([][]string, 0, len(list))
			for _, a := range list {
				rows = append(rows, []string{
					strconv.Itoa(a.ID), a.Title,
					fmt.Sprintf("%d min", a.TimeLimit),
					formatter.PublishedMark(a.IsPublished),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "TITLE", "TIME LIMIT", "STATUS"}, rows))
			return nil
		},
	}
}

func newAssessmentShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one assessment with its questions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(app); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid assessment id %q", args[0])
			}

			if err := app.Store.FetchAssessmentDetail(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s", app.Store.Snapshot().Assessment.Err)
			}
			a := app.Store.Snapshot().Assessment.Current
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n", formatter.StyleHeader.Render(a.Title), formatter.PublishedMark(a.IsPublished))
			if a.Description != "" {
				fmt.Fprintln(out, a.Description)
			}
			fmt.Fprintf(out, "Time limit: %d min\n\n", a.TimeLimit)

			if err := app.Store.FetchQuestions(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s", app.Store.Snapshot().Question.Err)
			}
			qs := app.Store.Snapshot().Question.Questions
			if len(qs) == 0 {
				fmt.Fprintln(out, "No questions yet.")
				return nil
			}
			for i, q := range qs {
				fmt.Fprintf(out, "%2d. [%s] %s\n", i+1, q.Type, q.Text)
				for j, c := range q.Choices {
					fmt.Fprintf(out, "      %c) %s\n", 'a'+j, c)
				}
			}
			return nil
		},
	}
}

func newAssessmentCreateCmd(app *App) *cobra.Command {
	var in api.AssessmentInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRole(app, domain.RoleRecruiter); err != nil {
				return err
			}
			a, err := app.Store.CreateAssessment(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("%s", api.ErrorMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created assessment %d: %s\n", a.ID, a.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Title, "title", "", "assessment title")
	cmd.Flags().StringVar(&in.Description, "description", "", "description")
	cmd.Flags().IntVar(&in.TimeLimit, "time-limit", 60, "time limit in minutes")
	cmd.Flags().BoolVar(&in.IsPublished, "publish", false, "publish immediately")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newAssessmentUpdateCmd(app *App) *cobra.Command {
	var in api.AssessmentInput
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRole(app, domain.RoleRecruiter); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid assessment id %q", args[0])
			}
			a, err := app.Store.UpdateAssessment(cmd.Context(), id, in)
			if err != nil {
				return fmt.Errorf("%s", api.ErrorMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated assessment %d\n", a.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Title, "title", "", "assessment title")
	cmd.Flags().StringVar(&in.Description, "description", "", "description")
	cmd.Flags().IntVar(&in.TimeLimit, "time-limit", 60, "time limit in minutes")
	cmd.Flags().BoolVar(&in.IsPublished, "publish", false, "published flag")
	return cmd
}

func newAssessmentDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRole(app, domain.RoleRecruiter); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid assessment id %q", args[0])
			}
			if err := app.Store.DeleteAssessment(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s", api.ErrorMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted assessment %d\n", id)
			return nil
		},
	}
}

// answers are passed as question_id=text pairs, e.g. 3="Paris".
func newAssessmentSubmitCmd(app *App) *cobra.Command {
	var answerArgs []string
	cmd := &cobra.Command{
		Use:   "submit <id>",
		Short: "Submit answers for an assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRole(app, domain.RoleInterviewee); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid assessment id %q", args[0])
			}

			answers := make([]domain.Answer, 0, len(answerArgs))
			for _, raw := range answerArgs {
				qid, text, ok := strings.Cut(raw, "=")
				if !ok {
					return fmt.Errorf("invalid answer %q, want question_id=text", raw)
				}
				q, err := strconv.Atoi(qid)
				if err != nil {
					return fmt.Errorf("invalid question id in %q", raw)
				}
				answers = append(answers, domain.Answer{QuestionID: q, AnswerText: text})
			}

			res, err := app.Client.SubmitAssessment(cmd.Context(), id, answers)
			if err != nil {
				return fmt.Errorf("%s", api.ErrorMessage(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			if res.Score != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Score: %.1f\n", *res.Score)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&answerArgs, "answer", "a", nil, "answer as question_id=text (repeatable)")
	return cmd
}
