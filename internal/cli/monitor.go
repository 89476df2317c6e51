package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/example/agora/internal/app"
	"github.com/example/agora/internal/ports/primary"
	"github.com/example/agora/internal/wire"
)

// MonitorCmd returns the monitor command
func MonitorCmd() *cobra.Command {
	var interval time.Duration
	var types []string
	var ack, result string
	var messagesOnly, servicesOnly bool

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Poll for incoming messages and pending services",
		Long: `Poll the contract for incoming messages and pending services and
handle them until interrupted.

Incoming messages addressed to this agent are printed; ones that
require a response are answered with the --ack payload. Pending
services where this agent is the provider are completed with the
--result payload. Items are handled at most once per run.

Examples:
  agora monitor
  agora monitor --interval 10s --type negotiation --type invoice
  agora monitor --services --result '{"status":"done"}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ackPayload, err := parseJSONObject("ack", ack)
			if err != nil {
				return err
			}
			resultPayload, err := parseJSONObject("result", result)
			if err != nil {
				return err
			}

			var typeFilter []primary.MessageType
			for _, name := range types {
				typeFilter = append(typeFilter, parseMessageType(name))
			}

			runMessages := !servicesOnly
			runServices := !messagesOnly

			logger := wire.Logger()
			agentID := wire.AgentID()

			g, ctx := errgroup.WithContext(cmd.Context())

			if runMessages {
				monitor := app.NewMessageMonitor(
					wire.MessageService(),
					agentID,
					typeFilter,
					func(ctx context.Context, msg *primary.Message, content map[string]any) (map[string]any, error) {
						fmt.Printf("← message %s from %s (%s): %s\n", msg.MessageID, msg.FromAgentID, msg.Type.String(), msg.Content)
						if msg.RequiresResponse {
							return ackPayload, nil
						}
						return nil, nil
					},
					interval,
					logger,
				)
				g.Go(func() error { return monitor.Run(ctx) })
			}

			if runServices {
				monitor := app.NewServiceMonitor(
					wire.NegotiationService(),
					agentID,
					func(ctx context.Context, svc *primary.ServiceRequest) (map[string]any, error) {
						fmt.Printf("← service %s from %s (%s, payment %d)\n", svc.ServiceID, svc.RequesterAgentID, svc.ServiceType, svc.Payment)
						return resultPayload, nil
					},
					interval,
					logger,
				)
				g.Go(func() error { return monitor.Run(ctx) })
			}

			logger.Printf("monitoring as %s (interval %s)", agentID, interval)
			return g.Wait()
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", app.DefaultPollInterval, "Poll interval")
	cmd.Flags().StringArrayVar(&types, "type", nil, "Only handle messages of this type (repeatable)")
	cmd.Flags().StringVar(&ack, "ack", `{"status":"acknowledged"}`, "Response payload for messages requiring a response")
	cmd.Flags().StringVar(&result, "result", `{"status":"completed"}`, "Result payload for completed services")
	cmd.Flags().BoolVar(&messagesOnly, "messages", false, "Only monitor messages")
	cmd.Flags().BoolVar(&servicesOnly, "services", false, "Only monitor services")

	return cmd
}
