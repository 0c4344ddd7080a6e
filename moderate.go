package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fragmede/modview/internal/comment"
	"github.com/fragmede/modview/internal/store"
)

func init() {
	rootCmd.AddCommand(newModerateCmd())
}

func newModerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moderate <note-id> <status>",
		Short: "Set the moderation status of a comment note",
		Long: `The moderate command records a new status for a comment note.
Status is one of approved, unapproved, spam or trash. A running viewer
picks the change up and fades the comment in with its new look.

Example:
  modview moderate 1001 approved`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.Close()
			return runModerate(os.Stdout, e, id, args[1])
		},
	}
}

func runModerate(out io.Writer, e *env, id int64, raw string) error {
	status := comment.ParseStatus(raw)
	if status == comment.StatusUnknown {
		return fmt.Errorf("unknown status %q", raw)
	}

	n, err := e.db.GetNote(id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("note %d not found", id)
	}
	if err != nil {
		return err
	}
	ub, ok := n.CommentUserBlock()
	if !ok {
		return fmt.Errorf("note %d is not a comment", id)
	}

	origin := "cli-" + uuid.NewString()
	change, err := e.db.SetCommentStatus(id, status, origin)
	if err != nil {
		return err
	}
	e.logger.Info("moderated",
		zap.Int64("note", id),
		zap.Int64("comment", ub.CommentID()),
		zap.Int64("site", ub.SiteID()),
		zap.Int64("post", ub.PostID()),
		zap.String("status", string(change.Status)),
		zap.String("origin", origin))
	fmt.Fprintf(out, "Note %d is now %s\n", id, change.Status.Label())
	return nil
}
