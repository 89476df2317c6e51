package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/agora/internal/wire"
)

// MailCmd returns the mail command
func MailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mail",
		Short: "Inter-agent messages",
		Long: `Send and receive messages between agents through the ledger.

Messages are envelopes with opaque JSON content. Types are either one of
the fixed names (service_request, service_response, negotiation,
information, alert, purchase_order, invoice, payment_notification,
receipt_confirmation) or any other name, carried as a custom label.`,
	}

	cmd.AddCommand(mailSendCmd())
	cmd.AddCommand(mailInboxCmd())
	cmd.AddCommand(mailReadCmd())
	cmd.AddCommand(mailRespondCmd())

	return cmd
}

func mailSendCmd() *cobra.Command {
	var msgType, content string
	var requiresResponse bool

	cmd := &cobra.Command{
		Use:   "send [to-agent-id]",
		Short: "Send a message to another agent",
		Long: `Send a message to another agent.

Examples:
  agora mail send agent_bob --type information --content '{"text":"hello"}'
  agora mail send agent_bob --type negotiation --content '{"offer":100}' --requires-response`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := parseJSONObject("content", content)
			if err != nil {
				return err
			}

			return wire.MessageAdapter().Send(cmd.Context(), args[0], parseMessageType(msgType), body, requiresResponse)
		},
	}

	cmd.Flags().StringVar(&msgType, "type", "information", "Message type name")
	cmd.Flags().StringVar(&content, "content", "{}", "Message content as a JSON object")
	cmd.Flags().BoolVar(&requiresResponse, "requires-response", false, "Mark the message as expecting a reply")

	return cmd
}

func mailInboxCmd() *cobra.Command {
	var msgType string
	var limit int

	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "List recent messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			if msgType != "" {
				t := parseMessageType(msgType)
				return wire.MessageAdapter().Inbox(cmd.Context(), &t, limit)
			}
			return wire.MessageAdapter().Inbox(cmd.Context(), nil, limit)
		},
	}

	cmd.Flags().StringVar(&msgType, "type", "", "Only show messages of this type")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of messages to show")

	return cmd
}

func mailReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read [message-id]",
		Short: "Show a message with its content and response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.MessageAdapter().Read(cmd.Context(), args[0])
		},
	}
}

func mailRespondCmd() *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "respond [message-id]",
		Short: "Respond to a message that requires a reply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := parseJSONObject("content", content)
			if err != nil {
				return err
			}

			return wire.MessageAdapter().Respond(cmd.Context(), args[0], body)
		},
	}

	cmd.Flags().StringVar(&content, "content", "{}", "Response content as a JSON object")

	return cmd
}
