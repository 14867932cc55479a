package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	q "github.com/abhisek/algoselect/internal/questionnaire"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the questionnaire (optionally one stage)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stage, _ := cmd.Flags().GetString("stage")

		questions := q.All()
		if stage != "" {
			questions = nil
			for _, s := range q.AllStages() {
				if s.String() == stage {
					questions = q.ByStage(s)
				}
			}
			if questions == nil {
				return fmt.Errorf("unknown stage %q", stage)
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-26s  %-13s  %-6s  %-20s  %s\n",
			"ID", "Stage", "Kind", "Default", "Question")
		fmt.Fprintln(out, strings.Repeat("─", 120))

		for _, question := range questions {
			prompt := question.Prompt
			if len(prompt) > 60 {
				prompt = prompt[:57] + "..."
			}
			fmt.Fprintf(out, "%-26s  %-13s  %-6s  %-20s  %s\n",
				question.ID, question.Stage, question.Kind,
				question.OptionLabel(question.Default), prompt)
		}

		fmt.Fprintf(out, "\n%d questions\n", len(questions))
		return nil
	},
}

func init() {
	questionsCmd.Flags().String("stage", "", "Filter by stage (gating, generic, supervised, unsupervised, reinforcement)")
}
