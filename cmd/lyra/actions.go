package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/garrettladley/lyra/internal/client/lyra"
)

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a new piece of content",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, false)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			client, err := a.authedClient(ctx)
			if err != nil {
				return err
			}

			resp, err := client.Actions.GenerateContent(ctx)
			if err != nil {
				return fmt.Errorf("content generation failed: %w", err)
			}
			if !resp.Succeeded() {
				return fmt.Errorf("content generation failed: %s", resp.Message)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "New %s content generated!\nPreview: %s\n", resp.Platform, resp.ContentPreview)
			return nil
		},
	}
}

func approveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve ID",
		Short: "Approve a pending content item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return errors.New("ID must be a positive integer")
			}

			a, err := newApp(ctx, false)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			client, err := a.authedClient(ctx)
			if err != nil {
				return err
			}

			if err := client.Content.Approve(ctx, id); err != nil {
				var apiErr *lyra.APIError
				if errors.As(err, &apiErr) {
					return fmt.Errorf("failed to approve content #%d: %s", id, apiErr.Message)
				}
				return fmt.Errorf("failed to approve content #%d: %w", id, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Content #%d approved\n", id)
			return nil
		},
	}
}
