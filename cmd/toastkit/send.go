package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/vango-dev/toastkit/pkg/server"
	"github.com/vango-dev/toastkit/pkg/toast"
)

func sendCmd() *cobra.Command {
	var (
		serverURL      string
		req            server.ShowRequest
		duration       int
		noIcon         bool
		dismissOnClick bool
	)

	cmd := &cobra.Command{
		Use:   "send [title] [message]",
		Short: "Show a toast on a running server",
		Long: `Show a toast on a running toastkit server.

Examples:
  toastkit send "Saved" "Your changes are live" --variant=success
  toastkit send "Deploying" --variant=loading
  toastkit send --html='<b>custom</b>' --duration=0`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				req.Title = args[0]
			}
			if len(args) > 1 {
				req.Message = args[1]
			}
			if cmd.Flags().Changed("duration") {
				req.Duration = toast.Int(duration)
			}
			if noIcon {
				req.WithIcon = toast.Bool(false)
			}
			req.DismissOnClick = dismissOnClick

			var resp server.ShowResponse
			if err := call(cmd.Context(), http.MethodPost, serverURL, "/api/toasts", req, &resp); err != nil {
				return err
			}
			success("Toast %s shown", resp.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", defaultServerURL, "Server base URL")
	cmd.Flags().StringVarP(&req.Variant, "variant", "v", "info", "success, error, warning, info or loading")
	cmd.Flags().StringVar(&req.HTML, "html", "", "Raw HTML replacing the built content")
	cmd.Flags().IntVarP(&duration, "duration", "d", 0, "Auto-dismiss delay in ms (0 disables)")
	cmd.Flags().StringToStringVar(&req.Style, "style", nil, "Inline style overrides (prop=value,...)")
	cmd.Flags().BoolVar(&noIcon, "no-icon", false, "Omit the variant icon")
	cmd.Flags().BoolVar(&dismissOnClick, "dismiss-on-click", false, "Dismiss the toast when clicked")

	return cmd
}

func dismissCmd() *cobra.Command {
	var serverURL string

	cmd := &cobra.Command{
		Use:   "dismiss <id>",
		Short: "Dismiss a toast on a running server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := call(cmd.Context(), http.MethodDelete, serverURL, "/api/toasts/"+args[0], nil, nil); err != nil {
				return err
			}
			success("Toast %s dismissed", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", defaultServerURL, "Server base URL")

	return cmd
}
