package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/agora/internal/wire"
)

// ServiceCmd returns the service command
func ServiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service",
		Short: "Service negotiation",
		Long: `Request services from provider agents and complete services you
provide. Payment is escrowed by the contract when the request is
submitted and released on completion.`,
	}

	cmd.AddCommand(serviceRequestCmd())
	cmd.AddCommand(serviceCompleteCmd())
	cmd.AddCommand(servicePendingCmd())

	return cmd
}

func serviceRequestCmd() *cobra.Command {
	var serviceType, params string
	var payment int64

	cmd := &cobra.Command{
		Use:   "request [provider-agent-id]",
		Short: "Request a service from a provider agent",
		Long: `Request a service from a provider agent.

Examples:
  agora service request agent_bob --type translation --payment 500
  agora service request agent_bob --type analysis --payment 1000 --params '{"dataset":"q3"}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parameters, err := parseJSONObject("params", params)
			if err != nil {
				return err
			}

			return wire.NegotiationAdapter().Request(cmd.Context(), args[0], serviceType, payment, parameters)
		},
	}

	cmd.Flags().StringVar(&serviceType, "type", "", "Service type")
	cmd.Flags().Int64Var(&payment, "payment", 0, "Payment amount to escrow")
	cmd.Flags().StringVar(&params, "params", "", "Service parameters as a JSON object")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("payment")

	return cmd
}

func serviceCompleteCmd() *cobra.Command {
	var result string

	cmd := &cobra.Command{
		Use:   "complete [service-id]",
		Short: "Record the result for a service you provide",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := parseJSONObject("result", result)
			if err != nil {
				return err
			}

			return wire.NegotiationAdapter().Complete(cmd.Context(), args[0], payload)
		},
	}

	cmd.Flags().StringVar(&result, "result", "{}", "Result payload as a JSON object")

	return cmd
}

func servicePendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List your services still in pending status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.NegotiationAdapter().Pending(cmd.Context())
		},
	}
}
