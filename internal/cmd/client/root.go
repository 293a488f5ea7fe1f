package client

import (
	"github.com/spf13/cobra"
)

// NewRoot constructs the root command for the bus client CLI.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "pubsub",
		Short: "Event bus client",
		Long:  "Client for the event bus: subscribe to topics, publish events, and inspect topics and schemas.",
	}

	root.PersistentFlags().String("config", "", "Config file (JSON)")
	root.PersistentFlags().String("endpoint", "", "Bus endpoint host:port")
	root.PersistentFlags().Bool("insecure", false, "Disable transport security (local/dev)")
	root.PersistentFlags().String("token", "", "Static access token")
	root.PersistentFlags().String("tenant", "", "Tenant id sent with every RPC")
	root.PersistentFlags().String("log-level", "", "Log level: debug|info|warn|error")
	root.PersistentFlags().String("log-format", "", "Log format: text|json")
	root.PersistentFlags().String("metrics", "", "Serve Prometheus metrics on this address (e.g. :9102)")

	root.AddCommand(
		newSubscribeCommand(),
		newPublishCommand(),
		newTopicCommand(),
		newSchemaCommand(),
	)
	return root
}
