package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"provida/internal/ai"
	"provida/internal/gateway/app"
	"provida/internal/gateway/config"
)

func newCLIAdapter(cmd *cobra.Command) (*ai.Adapter, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.Env, cfg.LogLevel, cmd.ErrOrStderr())
	return app.NewAdapter(cmd.Context(), cfg.Gemini, nil, nil, logger)
}

// userError prints the visitor-facing message for adapter errors so the CLI
// behaves like the widgets.
func userError(err error) error {
	if msg, ok := ai.PublicMessage(err); ok {
		return errors.New(msg)
	}
	return err
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <question>",
		Short: "Ask the grounded health assistant one question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := newCLIAdapter(cmd)
			if err != nil {
				return err
			}
			res, err := adapter.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return userError(err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Text)
			if len(res.Sources) > 0 {
				fmt.Fprintln(out, "\nFontes:")
				for _, s := range res.Sources {
					fmt.Fprintf(out, "- %s <%s>\n", s.Title, s.URI)
				}
			}
			return nil
		},
	}
}

func newEditCmd() *cobra.Command {
	var imagePath, prompt, outPath string
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit an image file with a text instruction",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(imagePath)
			if err != nil {
				return err
			}
			adapter, err := newCLIAdapter(cmd)
			if err != nil {
				return err
			}
			mimeType := http.DetectContentType(data)
			if !strings.HasPrefix(mimeType, "image/") {
				mimeType = "image/jpeg"
			}
			edited, err := adapter.EditImage(cmd.Context(), ai.EncodeDataURI(mimeType, data), prompt)
			if err != nil {
				return userError(err)
			}
			if err := os.WriteFile(outPath, ai.ParseDataURI(edited).Bytes(), 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imagem salva em %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&imagePath, "image", "", "input image file")
	cmd.Flags().StringVar(&prompt, "prompt", "", "edit instruction")
	cmd.Flags().StringVar(&outPath, "out", "edited.png", "output PNG file")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("prompt")
	return cmd
}
