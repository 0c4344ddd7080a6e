package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fragmede/modview/internal/render"
	"github.com/fragmede/modview/internal/store"
	"github.com/fragmede/modview/internal/ui/commentblock"
)

var showWidth int

func init() {
	cmd := newShowCmd()
	cmd.Flags().IntVar(&showWidth, "width", 80, "Render width in terminal cells")
	rootCmd.AddCommand(cmd)
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <note-id>",
		Short: "Print the comment block of a note",
		Long: `The show command renders the comment of a note once, exactly as the
viewer lays it out, and prints it to stdout.

Example:
  modview show 1001 --width 100`,
		Args: cobra.ExactArgs(1),
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
			return runShow(os.Stdout, e, id, showWidth)
		},
	}
}

func runShow(out io.Writer, e *env, id int64, width int) error {
	row, err := e.db.GetRow(id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("note %d not found", id)
	}
	if err != nil {
		return err
	}

	if s := row.Note.SubjectText(); s != "" {
		fmt.Fprintln(out, render.CommentHTMLToText(s, width))
	}
	ub, ok := row.Note.CommentUserBlock()
	if !ok {
		return fmt.Errorf("note %d is a %s note without a comment", id, row.Note.Type)
	}

	block := commentblock.New(id, ub, row.Status, commentblock.OptionsFromConfig(e.cfg))
	view, _ := block.Bind(width)
	fmt.Fprintln(out, view)
	if ref := ub.Ref(); ref != "" {
		fmt.Fprintln(out, ref)
	}
	if avatar := block.AvatarURL(); avatar != "" {
		fmt.Fprintln(out, "avatar: "+avatar)
	}
	return nil
}

func parseNoteID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid note id %q", s)
	}
	return id, nil
}
