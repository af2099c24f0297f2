package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	premiumgrpc "github.com/vishxesh10/InsureMate-LIve/internal/presentation/grpc"
	"github.com/vishxesh10/InsureMate-LIve/pkg/tlsutil"
)

type dialFlags struct {
	addr    string
	caFile  string
	timeout time.Duration
}

func (f *dialFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.addr, "addr", "localhost:50051", "premium service gRPC address")
	cmd.Flags().StringVar(&f.caFile, "ca", "", "CA certificate; enables TLS when set")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 5*time.Second, "call timeout")
}

func (f *dialFlags) dial() (*grpc.ClientConn, error) {
	creds := insecure.NewCredentials()
	if f.caFile != "" {
		tlsCreds, err := tlsutil.ClientCredentials(f.caFile)
		if err != nil {
			return nil, err
		}
		creds = tlsCreds
	}
	conn, err := grpc.NewClient(f.addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", f.addr, err)
	}
	return conn, nil
}

func (f *dialFlags) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), f.timeout)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newStatsCmd() *cobra.Command {
	var flags dialFlags
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print prediction statistics from a running service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := flags.dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := flags.context(cmd)
			defer cancel()

			resp, err := premiumgrpc.NewPremiumServiceClient(conn).GetStatistics(ctx, &premiumgrpc.GetStatisticsRequest{})
			if err != nil {
				return fmt.Errorf("failed to get statistics: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	flags.register(cmd)
	return cmd
}

func newResultsCmd() *cobra.Command {
	var (
		flags dialFlags
		req   premiumgrpc.ListResultsRequest
	)
	cmd := &cobra.Command{
		Use:   "results",
		Short: "List stored predictions from a running service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := flags.dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := flags.context(cmd)
			defer cancel()

			resp, err := premiumgrpc.NewPremiumServiceClient(conn).ListResults(ctx, &req)
			if err != nil {
				return fmt.Errorf("failed to list results: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&req.City, "city", "", "only results for this city (exact match)")
	cmd.Flags().StringVar(&req.Category, "category", "", "only results with this premium category")
	return cmd
}

func newGRPCHealthCmd() *cobra.Command {
	var (
		flags   dialFlags
		service string
	)
	cmd := &cobra.Command{
		Use:   "grpc-health",
		Short: "Query the grpc.health.v1 endpoint of a running service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := flags.dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := flags.context(cmd)
			defer cancel()

			resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: service})
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.GetStatus().String())
			if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
				return fmt.Errorf("service %q is %s", service, resp.GetStatus())
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&service, "service", premiumgrpc.HealthServiceName, "health service name")
	return cmd
}
