package commands

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/roster/pkg/commands/options"
	"tableflip.dev/roster/pkg/roster"
	"tableflip.dev/roster/pkg/runner/mcp"
	"tableflip.dev/roster/pkg/source"
)

func addMCP(topLevel *cobra.Command) {
	so := &options.SourceOptions{}
	var (
		transport string
		httpHost  string
		httpPort  int
		httpPath  string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that exposes the loaded roster — listing, search and
mutations — through the Model Context Protocol. The roster lives in memory
for the lifetime of the server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := source.LoadConfig()
			if err != nil {
				return err
			}
			students, err := so.Build(cfg).Load(context.Background())
			if err != nil {
				return err
			}
			r := roster.New()
			r.Reset(students)

			path := strings.TrimSpace(httpPath)
			if path == "" {
				path = "/mcp"
			}
			if !strings.HasPrefix(path, "/") {
				path = "/" + path
			}

			runner := mcp.Runner{
				Roster:           r,
				Name:             "roster",
				Version:          "dev",
				HTTPEndpointPath: path,
			}

			switch strings.ToLower(strings.TrimSpace(transport)) {
			case string(mcp.TransportStdio):
				runner.Transport = mcp.TransportStdio
			case "", string(mcp.TransportHTTP):
				host := strings.TrimSpace(httpHost)
				if host == "" {
					host = "127.0.0.1"
				}
				if httpPort < 0 || httpPort > 65535 {
					return fmt.Errorf("invalid http-port %d", httpPort)
				}
				addr := net.JoinHostPort(host, strconv.Itoa(httpPort))
				runner.Transport = mcp.TransportHTTP
				runner.HTTPListenAddr = addr
				runner.OnHTTPListening = func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s%s\n", a, path)
				}
			default:
				return fmt.Errorf("unknown transport %q", transport)
			}

			return runner.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "http", "Transport: http or stdio.")
	cmd.Flags().StringVar(&httpHost, "http-host", "127.0.0.1", "HTTP listen host.")
	cmd.Flags().IntVar(&httpPort, "http-port", 8080, "HTTP listen port.")
	cmd.Flags().StringVar(&httpPath, "http-path", "/mcp", "HTTP endpoint path.")

	options.AddSourceArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
